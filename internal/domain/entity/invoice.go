package entity

import "github.com/shopspring/decimal"

// Versiones del esquema de factura en memoria. La versión corriente es la que
// produce el codificador binario; las anteriores solo se aceptan al decodificar
// (migración hacia adelante en lectura).
const (
	// SchemaV1 guardaba los rates de los ítems como enteros en unidades
	// atómicas del token (ej. 1000000 para 1.00 USDC con 6 decimales).
	SchemaV1 = 1
	// SchemaV2 guarda los rates como cadenas decimales exactas en unidades
	// de presentación (ej. "1000.00"). La aritmética exacta los convierte a
	// unidades atómicas con Decimals al calcular totales.
	SchemaV2 = 2

	// CurrentSchemaVersion es la versión que emite EncodeInvoice.
	CurrentSchemaVersion = SchemaV2
)

// Party es una de las partes de la factura (emisor o cliente).
// Solo Name es obligatorio; el resto son datos de contacto opcionales.
type Party struct {
	Name    string `json:"name"`
	Wallet  string `json:"wallet,omitempty"` // dirección 0x + 40 hex
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	TaxID   string `json:"taxId,omitempty"`
}

// LineItem es una línea de la factura. Rate es una cadena decimal exacta
// (nunca float) cuyo significado depende de la versión del esquema; en la
// versión corriente está en unidades de presentación.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        string          `json:"rate"`
}

// Invoice es el documento canónico que viaja dentro del fragmento hash de la
// URL. El códec nunca lo muta: codificar es puro y decodificar produce un
// objeto nuevo. No se persiste en ningún servidor.
type Invoice struct {
	Version      int        `json:"version"`
	InvoiceID    string     `json:"invoiceId"` // UUID en la práctica
	IssuedAt     int64      `json:"issuedAt"`  // Unix segundos
	DueAt        int64      `json:"dueAt,omitempty"`
	NetworkID    uint64     `json:"networkId"` // chain id EVM
	Currency     string     `json:"currency"`  // símbolo del token
	TokenAddress string     `json:"tokenAddress,omitempty"`
	Decimals     uint8      `json:"decimals"` // precisión para unidades atómicas
	From         Party      `json:"from"`
	Client       Party      `json:"client"`
	Items        []LineItem `json:"items"`
	Tax          string     `json:"tax,omitempty"`      // "10%" o monto fijo
	Discount     string     `json:"discount,omitempty"` // "10%" o monto fijo
	Notes        string     `json:"notes,omitempty"`
}
