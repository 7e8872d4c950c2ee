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
// Ruta de presentación: float64 a 2 decimales, SOLO para la vista previa OG.
// Estos vectores fijan el contrato del monto que aparece en el unfurl.
// ──────────────────────────────────────────────────────────────────────────────

func TestDisplayTotal_ConTaxPorcentual(t *testing.T) {
	total, err := money.DisplayTotal(buildItems(), "10%", "")
	require.NoError(t, err)
	assert.Equal(t, "275.00", total)
}

func TestDisplayTotal_ConDescuentoFijo(t *testing.T) {
	total, err := money.DisplayTotal(buildItems(), "", "10")
	require.NoError(t, err)
	assert.Equal(t, "240.00", total)
}

func TestDisplayTotal_SiempreDosDecimales(t *testing.T) {
	items := []entity.LineItem{
		{Description: "Servicio", Quantity: decimal.NewFromInt(1), Rate: "1000"},
	}
	total, err := money.DisplayTotal(items, "", "")
	require.NoError(t, err)
	assert.Equal(t, "1000.00", total,
		"el monto de la vista previa siempre lleva 2 decimales")
}

func TestDisplayTotal_NegativoRechazado(t *testing.T) {
	_, err := money.DisplayTotal(buildItems(), "", "1000")
	assert.ErrorIs(t, err, domain.ErrNegativeTotal)
}

func TestDisplayTotal_RateMalformado(t *testing.T) {
	items := []entity.LineItem{
		{Description: "x", Quantity: decimal.NewFromInt(1), Rate: "no-numérico"},
	}
	_, err := money.DisplayTotal(items, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
