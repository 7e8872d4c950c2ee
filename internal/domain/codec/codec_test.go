package codec_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/factulink/internal/domain/codec"
	"github.com/jhoicas/factulink/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUUID   = "550e8400-e29b-41d4-a716-446655440000"
	testWallet = "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"
)

// buildMinimalInvoice arma la factura más chica válida: solo obligatorios.
func buildMinimalInvoice() *entity.Invoice {
	return &entity.Invoice{
		Version:   entity.CurrentSchemaVersion,
		InvoiceID: testUUID,
		IssuedAt:  1700000000,
		NetworkID: 42161,
		Currency:  "USDC",
		Decimals:  6,
		From:      entity.Party{Name: "Acme Inc"},
		Client:    entity.Party{Name: "Cliente SA"},
		Items: []entity.LineItem{
			{Description: "Service", Quantity: decimal.NewFromInt(1), Rate: "1000.00"},
		},
	}
}

// buildFullInvoice arma una factura con todos los opcionales poblados.
func buildFullInvoice() *entity.Invoice {
	inv := buildMinimalInvoice()
	inv.DueAt = 1700600000
	inv.TokenAddress = "0xaf88d065e77c8cc2239327c5edb3a432268e5831"
	inv.From = entity.Party{
		Name:    "Acme Inc",
		Wallet:  testWallet,
		Email:   "pagos@acme.co",
		Address: "Cra 7 # 71-21, Bogotá",
		Phone:   "+57 601 555 0101",
		TaxID:   "900123456-7",
	}
	inv.Client = entity.Party{
		Name:   "Cliente SA",
		Wallet: "0x70997970c51812dc3a010c7d01b50e0d17dc79c8",
		Email:  "tesoreria@cliente.com",
	}
	inv.Items = []entity.LineItem{
		{Description: "Desarrollo backend", Quantity: decimal.NewFromInt(2), Rate: "100.00"},
		{Description: "Horas de soporte", Quantity: decimal.RequireFromString("1.5"), Rate: "50.5"},
	}
	inv.Tax = "19%"
	inv.Discount = "10"
	inv.Notes = "Pago contra entrega del sprint. Transferir a la wallet del emisor " +
		"indicada en la factura; el comprobante on-chain sirve de recibo."
	return inv
}

// ──────────────────────────────────────────────────────────────────────────────
// Ley de round-trip: decode(encode(v)) == v, byte a byte al re-codificar.
// ──────────────────────────────────────────────────────────────────────────────

func TestEncodeDecode_RoundTripMinimo(t *testing.T) {
	inv := buildMinimalInvoice()

	encoded, err := codec.EncodeInvoice(inv)
	require.NoError(t, err)

	decoded, err := codec.DecodeInvoice(encoded)
	require.NoError(t, err)
	assert.Equal(t, inv, decoded, "la factura decodificada debe ser idéntica a la original")
}

func TestEncodeDecode_RoundTripCompleto(t *testing.T) {
	inv := buildFullInvoice()

	encoded, err := codec.EncodeInvoice(inv)
	require.NoError(t, err)

	decoded, err := codec.DecodeInvoice(encoded)
	require.NoError(t, err)
	assert.Equal(t, inv, decoded)

	// Re-codificar la decodificada reproduce los mismos bytes (versión corriente).
	reencoded, err := codec.EncodeInvoice(decoded)
	require.NoError(t, err)
	assert.Equal(t, encoded, reencoded, "re-codificar debe ser byte-idéntico en la versión corriente")
}

func TestEncodeInvoice_Determinista(t *testing.T) {
	inv := buildFullInvoice()

	first, err := codec.EncodeInvoice(inv)
	require.NoError(t, err)
	second, err := codec.EncodeInvoice(inv)
	require.NoError(t, err)

	assert.Equal(t, first, second,
		"la misma factura debe producir siempre la misma cadena (sin sales ni timestamps)")
}

func TestEncodeInvoice_URLSafe(t *testing.T) {
	encoded, err := codec.EncodeInvoice(buildFullInvoice())
	require.NoError(t, err)

	for _, r := range encoded {
		ok := (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
		assert.True(t, ok, "carácter %q fuera del alfabeto URL-safe", r)
	}
}

func TestEncodeInvoice_WalletConChecksumPreservada(t *testing.T) {
	inv := buildMinimalInvoice()
	// Dirección con mayúsculas EIP-55: debe sobrevivir el round-trip tal cual.
	inv.From.Wallet = "0xF39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

	encoded, err := codec.EncodeInvoice(inv)
	require.NoError(t, err)
	decoded, err := codec.DecodeInvoice(encoded)
	require.NoError(t, err)
	assert.Equal(t, inv.From.Wallet, decoded.From.Wallet)
}

func TestEncodeInvoice_NotasLargasComprimen(t *testing.T) {
	inv := buildMinimalInvoice()
	inv.Notes = strings.Repeat("Condiciones de pago estándar. ", 16) // ~480 chars repetitivos

	encoded, err := codec.EncodeInvoice(inv)
	require.NoError(t, err)

	decoded, err := codec.DecodeInvoice(encoded)
	require.NoError(t, err)
	assert.Equal(t, inv.Notes, decoded.Notes, "la compresión selectiva debe ser reversible")
	assert.Less(t, len(encoded), len(inv.Notes),
		"con texto repetitivo la cadena codificada debe ser menor que las notas solas")
}

func TestEncodeInvoice_SinItemsRechazada(t *testing.T) {
	inv := buildMinimalInvoice()
	inv.Items = nil
	_, err := codec.EncodeInvoice(inv)
	assert.Error(t, err, "una factura sin ítems no se codifica")
}

// ──────────────────────────────────────────────────────────────────────────────
// Despacho por versión
// ──────────────────────────────────────────────────────────────────────────────

func TestDecodeInvoice_VersionDesconocida(t *testing.T) {
	_, err := codec.DecodeInvoice("Zabc123def456")
	assert.ErrorIs(t, err, codec.ErrUnsupportedVersion,
		"un prefijo desconocido jamás cae al parser de la versión corriente")
}

func TestDecodeInvoice_CadenaDemasiadoCorta(t *testing.T) {
	_, err := codec.DecodeInvoice("B")
	assert.ErrorIs(t, err, codec.ErrDecodeFailed)
}

func TestDecodeInvoice_CuerpoTruncado(t *testing.T) {
	encoded, err := codec.EncodeInvoice(buildFullInvoice())
	require.NoError(t, err)
	require.Greater(t, len(encoded), 40, "la fixture debe producir una cadena larga")

	_, err = codec.DecodeInvoice(encoded[:10])
	assert.ErrorIs(t, err, codec.ErrDecodeFailed,
		"un copy-paste truncado debe reportarse como decode failed")
}

func TestDecodeInvoice_CaracterInvalido(t *testing.T) {
	encoded, err := codec.EncodeInvoice(buildMinimalInvoice())
	require.NoError(t, err)

	corrupted := encoded[:5] + "!" + encoded[6:]
	_, err = codec.DecodeInvoice(corrupted)
	assert.ErrorIs(t, err, codec.ErrDecodeFailed)
}

func TestDecodeInvoice_ErroresDistinguibles(t *testing.T) {
	_, errVersion := codec.DecodeInvoice("Zabc123")
	_, errCorrupt := codec.DecodeInvoice("B!!!!")

	assert.NotErrorIs(t, errVersion, codec.ErrDecodeFailed)
	assert.NotErrorIs(t, errCorrupt, codec.ErrUnsupportedVersion)
}

// ──────────────────────────────────────────────────────────────────────────────
// Frontera no lanzante
// ──────────────────────────────────────────────────────────────────────────────

func TestParseInvoiceHash_Exito(t *testing.T) {
	inv := buildMinimalInvoice()
	encoded, err := codec.EncodeInvoice(inv)
	require.NoError(t, err)

	result := codec.ParseInvoiceHash("#" + encoded)
	require.True(t, result.Success, "un fragmento válido debe parsear: %v", result.Err)
	assert.Equal(t, inv, result.Data)
	assert.NoError(t, result.Err)
}

func TestParseInvoiceHash_SinNumeral(t *testing.T) {
	encoded, err := codec.EncodeInvoice(buildMinimalInvoice())
	require.NoError(t, err)

	result := codec.ParseInvoiceHash(encoded)
	assert.True(t, result.Success, "el fragmento sin # inicial también es válido")
}

func TestParseInvoiceHash_FragmentoVacio(t *testing.T) {
	result := codec.ParseInvoiceHash("#")
	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Err, codec.ErrDecodeFailed)
	assert.Nil(t, result.Data)
}

func TestParseInvoiceHash_BasuraNoExplota(t *testing.T) {
	result := codec.ParseInvoiceHash("#B-esto-no-es-base62-ñ")
	assert.False(t, result.Success)
	assert.Error(t, result.Err)
}
