// Package money implementa la aritmética financiera de la factura.
//
// Hay dos rutas que NUNCA deben mezclarse:
//
//   - La ruta exacta (este archivo): decimal de precisión arbitraria sobre
//     unidades atómicas del token. Es la única válida para montos de pago.
//   - La ruta de presentación (display.go): float64 redondeado a 2 decimales,
//     solo para la vista previa OG. No es apta para pagos.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/factulink/internal/domain"
	"github.com/jhoicas/factulink/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Total calcula el total exacto de la factura en unidades atómicas.
//
// Los rates de los ítems vienen en unidades de presentación (esquema
// corriente) y se convierten a atómicas con decimals antes de operar:
// subtotal = Σ(rate_i · 10^decimals · quantity_i), redondeado a entero por
// línea. Tax/discount con sufijo "%" se aplican sobre el subtotal; sin
// sufijo son montos fijos en unidades de presentación que se convierten
// igual que los rates.
//
// Un total negativo se rechaza con domain.ErrNegativeTotal, nunca se
// recorta a cero en silencio. Cadenas malformadas fallan de inmediato.
func Total(items []entity.LineItem, decimals uint8, tax, discount string) (decimal.Decimal, error) {
	if len(items) == 0 {
		return decimal.Zero, fmt.Errorf("money: %w: sin ítems", domain.ErrInvalidInput)
	}
	subtotal := decimal.Zero
	for i, it := range items {
		rate, err := decimal.NewFromString(it.Rate)
		if err != nil {
			return decimal.Zero, fmt.Errorf("money: items[%d].rate %q: %w", i, it.Rate, domain.ErrInvalidInput)
		}
		if rate.IsNegative() || it.Quantity.Sign() <= 0 {
			return decimal.Zero, fmt.Errorf("money: items[%d] con rate o quantity no positivos: %w", i, domain.ErrInvalidInput)
		}
		// Unidades atómicas por línea; Round(0) fija la política de la línea
		// con cantidades fraccionarias (ej. 1.5 horas) a medio-arriba.
		line := rate.Shift(int32(decimals)).Mul(it.Quantity).Round(0)
		subtotal = subtotal.Add(line)
	}

	taxAmount, err := adjustment("tax", tax, subtotal, decimals)
	if err != nil {
		return decimal.Zero, err
	}
	discountAmount, err := adjustment("discount", discount, subtotal, decimals)
	if err != nil {
		return decimal.Zero, err
	}

	total := subtotal.Add(taxAmount).Sub(discountAmount)
	if total.IsNegative() {
		return decimal.Zero, fmt.Errorf("money: %w (subtotal %s, tax %s, discount %s)",
			domain.ErrNegativeTotal, subtotal, taxAmount, discountAmount)
	}
	return total, nil
}

// adjustment interpreta un tax o discount: porcentaje sobre el subtotal si
// termina en "%", monto fijo en unidades de presentación si no. Cadena vacía
// equivale a cero.
func adjustment(label, raw string, subtotal decimal.Decimal, decimals uint8) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	if pct, ok := strings.CutSuffix(raw, "%"); ok {
		p, err := decimal.NewFromString(pct)
		if err != nil || p.IsNegative() {
			return decimal.Zero, fmt.Errorf("money: %s %q no es un porcentaje válido: %w", label, raw, domain.ErrInvalidInput)
		}
		return subtotal.Mul(p).Div(hundred).Round(0), nil
	}
	fixed, err := decimal.NewFromString(raw)
	if err != nil || fixed.IsNegative() {
		return decimal.Zero, fmt.Errorf("money: %s %q no es un monto válido: %w", label, raw, domain.ErrInvalidInput)
	}
	return fixed.Shift(int32(decimals)).Round(0), nil
}

// FormatAtomic convierte un total en unidades atómicas a su cadena de
// presentación con exactamente decimals dígitos fraccionarios
// (ej. 1500000 con 6 decimales → "1.500000").
func FormatAtomic(total decimal.Decimal, decimals uint8) string {
	return total.Shift(-int32(decimals)).StringFixed(int32(decimals))
}
