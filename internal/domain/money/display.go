package money

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/factulink/internal/domain"
	"github.com/jhoicas/factulink/internal/domain/entity"
)

// DisplayTotal calcula el total de presentación para la vista previa OG.
//
// Opera con float64 sobre los rates ya legibles (unidades de presentación) y
// redondea a 2 decimales. Es deliberadamente una aproximación de menor
// precisión que Total: la vista previa de una red social no paga nada. NO
// usar para montos de pago.
func DisplayTotal(items []entity.LineItem, tax, discount string) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("money: %w: sin ítems", domain.ErrInvalidInput)
	}
	var subtotal float64
	for i, it := range items {
		rate, err := strconv.ParseFloat(it.Rate, 64)
		if err != nil {
			return "", fmt.Errorf("money: items[%d].rate %q: %w", i, it.Rate, domain.ErrInvalidInput)
		}
		subtotal += rate * it.Quantity.InexactFloat64()
	}

	taxAmount, err := displayAdjustment("tax", tax, subtotal)
	if err != nil {
		return "", err
	}
	discountAmount, err := displayAdjustment("discount", discount, subtotal)
	if err != nil {
		return "", err
	}
	total := subtotal + taxAmount - discountAmount
	if total < 0 {
		return "", fmt.Errorf("money: %w", domain.ErrNegativeTotal)
	}
	return strconv.FormatFloat(total, 'f', 2, 64), nil
}

func displayAdjustment(label, raw string, subtotal float64) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	if pct, ok := strings.CutSuffix(raw, "%"); ok {
		p, err := strconv.ParseFloat(pct, 64)
		if err != nil || p < 0 {
			return 0, fmt.Errorf("money: %s %q no es un porcentaje válido: %w", label, raw, domain.ErrInvalidInput)
		}
		return subtotal * p / 100, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("money: %s %q no es un monto válido: %w", label, raw, domain.ErrInvalidInput)
	}
	return v, nil
}
