package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/factulink/internal/domain"
	"github.com/jhoicas/factulink/internal/domain/entity"
	"github.com/jhoicas/factulink/internal/domain/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// Ruta exacta: la aritmética de pago corre en decimal de precisión arbitraria
// sobre unidades atómicas. Cualquier float aquí es un bug.
// ──────────────────────────────────────────────────────────────────────────────

const testDecimals = 6

func buildItems() []entity.LineItem {
	return []entity.LineItem{
		{Description: "Desarrollo", Quantity: decimal.NewFromInt(2), Rate: "100.00"},
		{Description: "Revisión", Quantity: decimal.NewFromInt(1), Rate: "50.00"},
	}
}

func TestTotal_SubtotalSinAjustes(t *testing.T) {
	total, err := money.Total(buildItems(), testDecimals, "", "")
	require.NoError(t, err)

	// 2·100.00 + 1·50.00 = 250.00 → 250_000_000 unidades atómicas con 6 decimales.
	assert.Equal(t, "250000000", total.String(),
		"el subtotal debe calcularse en unidades atómicas exactas")
	assert.Equal(t, "250.000000", money.FormatAtomic(total, testDecimals))
}

func TestTotal_TaxPorcentual(t *testing.T) {
	total, err := money.Total(buildItems(), testDecimals, "10%", "")
	require.NoError(t, err)
	assert.Equal(t, "275.000000", money.FormatAtomic(total, testDecimals),
		"250 más 10 por ciento de tax debe dar 275 exacto")
}

func TestTotal_DescuentoFijo(t *testing.T) {
	total, err := money.Total(buildItems(), testDecimals, "", "10")
	require.NoError(t, err)
	assert.Equal(t, "240.000000", money.FormatAtomic(total, testDecimals),
		"un descuento fijo de 10 unidades de presentación debe restar 10·10^decimals")
}

func TestTotal_CantidadFraccionaria(t *testing.T) {
	items := []entity.LineItem{
		{Description: "Horas", Quantity: decimal.RequireFromString("1.5"), Rate: "10.00"},
	}
	total, err := money.Total(items, 2, "", "")
	require.NoError(t, err)
	assert.Equal(t, "15.00", money.FormatAtomic(total, 2))
}

func TestTotal_SinPerdidaDePrecisionGrande(t *testing.T) {
	// 18 decimales (wei): un float64 ya no representa esto.
	items := []entity.LineItem{
		{Description: "Pago", Quantity: decimal.NewFromInt(3), Rate: "1.000000000000000001"},
	}
	total, err := money.Total(items, 18, "", "")
	require.NoError(t, err)
	assert.Equal(t, "3000000000000000003", total.String(),
		"la ruta exacta no puede redondear unidades atómicas")
}

// ── Errores ───────────────────────────────────────────────────────────────────

func TestTotal_TotalNegativoRechazado(t *testing.T) {
	_, err := money.Total(buildItems(), testDecimals, "", "300")
	assert.ErrorIs(t, err, domain.ErrNegativeTotal,
		"un total negativo se rechaza, nunca se recorta a cero en silencio")
}

func TestTotal_RateMalformadoFallaRapido(t *testing.T) {
	items := []entity.LineItem{
		{Description: "x", Quantity: decimal.NewFromInt(1), Rate: "abc"},
	}
	_, err := money.Total(items, testDecimals, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un rate malformado debe fallar, no coercionarse a 0")
}

func TestTotal_PorcentajeMalformado(t *testing.T) {
	_, err := money.Total(buildItems(), testDecimals, "diez%", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTotal_SinItems(t *testing.T) {
	_, err := money.Total(nil, testDecimals, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
