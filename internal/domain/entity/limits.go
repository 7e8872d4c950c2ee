package entity

// Tabla de límites de campos. Es la única fuente de verdad: la consumen la
// validación de esquema, el decodificador binario (cotas de lectura) y la UI.
// Cambiar un límite aquí cambia el contrato en todas las capas a la vez.
const (
	MaxPartyNameLen   = 120
	MaxEmailLen       = 254
	MaxAddressLen     = 200
	MaxPhoneLen       = 30
	MaxTaxIDLen       = 40
	MaxCurrencyLen    = 12
	MaxDescriptionLen = 200
	MaxRateLen        = 40
	MaxNotesLen       = 500
	MaxInvoiceIDLen   = 64

	// MaxItems acota la cantidad de líneas; con el presupuesto de 2000 bytes
	// de URL una factura con más líneas no cabe de todas formas.
	MaxItems = 50

	// MaxDecimals cubre los tokens ERC-20 conocidos (18 es lo usual; 36 da
	// margen para tokens exóticos).
	MaxDecimals = 36
)
