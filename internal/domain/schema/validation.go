// Package schema contiene la validación estructural de la factura antes de
// entregarla al códec. El códec asume entrada válida al codificar; esta capa
// es quien garantiza esa suposición usando la tabla de límites de entity.
package schema

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/factulink/internal/domain/entity"
)

// ErrInvalidInvoice agrupa errores de validación de factura.
var ErrInvalidInvoice = errors.New("factura inválida")

var (
	// Direcciones EVM: 0x seguido de exactamente 40 dígitos hexadecimales.
	walletPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	// Rates y montos fijos: cadena numérica estricta, sin signo ni notación
	// científica. "10", "10.5" sí; "1e3", "-10", ".5", "10." no.
	ratePattern = regexp.MustCompile(`^\d+(\.\d+)?$`)
	// Tax/discount: monto fijo o porcentaje con sufijo %.
	taxPattern = regexp.MustCompile(`^\d+(\.\d+)?%?$`)
)

// ValidRate indica si s cumple el patrón numérico estricto de rates.
func ValidRate(s string) bool { return ratePattern.MatchString(s) }

// ValidWallet indica si s es una dirección EVM 0x + 40 hex.
func ValidWallet(s string) bool { return walletPattern.MatchString(s) }

// ValidateInvoice valida la factura completa contra la tabla de límites.
// Acumula todos los hallazgos con errors.Join en lugar de cortar en el
// primero, para que la UI pueda mostrarlos de una vez.
func ValidateInvoice(inv *entity.Invoice) error {
	if inv == nil {
		return fmt.Errorf("%w: factura nula", ErrInvalidInvoice)
	}
	var errs []error

	if inv.Version != entity.CurrentSchemaVersion {
		errs = append(errs, fmt.Errorf("version %d no es el esquema corriente (%d); las versiones viejas solo se aceptan al decodificar", inv.Version, entity.CurrentSchemaVersion))
	}
	if inv.InvoiceID == "" {
		errs = append(errs, errors.New("invoiceId es obligatorio"))
	} else if len(inv.InvoiceID) > entity.MaxInvoiceIDLen {
		errs = append(errs, fmt.Errorf("invoiceId excede %d caracteres", entity.MaxInvoiceIDLen))
	}
	if inv.IssuedAt <= 0 {
		errs = append(errs, errors.New("issuedAt debe ser un timestamp Unix positivo"))
	}
	if inv.DueAt < 0 {
		errs = append(errs, errors.New("dueAt no puede ser negativo"))
	}
	if inv.NetworkID == 0 {
		errs = append(errs, errors.New("networkId es obligatorio"))
	}
	if inv.Currency == "" {
		errs = append(errs, errors.New("currency es obligatoria"))
	} else if len(inv.Currency) > entity.MaxCurrencyLen {
		errs = append(errs, fmt.Errorf("currency excede %d caracteres", entity.MaxCurrencyLen))
	}
	if inv.Decimals > entity.MaxDecimals {
		errs = append(errs, fmt.Errorf("decimals (%d) excede el máximo %d", inv.Decimals, entity.MaxDecimals))
	}
	if inv.TokenAddress != "" && !walletPattern.MatchString(inv.TokenAddress) {
		errs = append(errs, fmt.Errorf("tokenAddress %q no es una dirección 0x válida", inv.TokenAddress))
	}

	errs = append(errs, validateParty("from", &inv.From)...)
	errs = append(errs, validateParty("client", &inv.Client)...)
	errs = append(errs, validateItems(inv.Items, int32(inv.Decimals))...)

	errs = append(errs, validateAdjustment("tax", inv.Tax)...)
	errs = append(errs, validateAdjustment("discount", inv.Discount)...)
	if len(inv.Notes) > entity.MaxNotesLen {
		errs = append(errs, fmt.Errorf("notes excede %d caracteres", entity.MaxNotesLen))
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidInvoice}, errs...)...)
	}
	return nil
}

// validateAdjustment valida un tax o discount: la misma cota de longitud que
// el decodificador usa para leerlos y el patrón monto-o-porcentaje. Vacío es
// ausente y pasa.
func validateAdjustment(label, raw string) []error {
	if raw == "" {
		return nil
	}
	if len(raw) > entity.MaxRateLen {
		return []error{fmt.Errorf("%s excede %d caracteres", label, entity.MaxRateLen)}
	}
	if !taxPattern.MatchString(raw) {
		return []error{fmt.Errorf("%s %q no es un porcentaje ni un monto válido", label, raw)}
	}
	return nil
}

// validateParty valida una de las partes; Name es el único campo obligatorio.
func validateParty(label string, p *entity.Party) []error {
	var errs []error
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, fmt.Errorf("%s.name es obligatorio", label))
	} else if len(p.Name) > entity.MaxPartyNameLen {
		errs = append(errs, fmt.Errorf("%s.name excede %d caracteres", label, entity.MaxPartyNameLen))
	}
	if p.Wallet != "" && !walletPattern.MatchString(p.Wallet) {
		errs = append(errs, fmt.Errorf("%s.wallet %q no es una dirección 0x válida", label, p.Wallet))
	}
	if len(p.Email) > entity.MaxEmailLen {
		errs = append(errs, fmt.Errorf("%s.email excede %d caracteres", label, entity.MaxEmailLen))
	}
	if len(p.Address) > entity.MaxAddressLen {
		errs = append(errs, fmt.Errorf("%s.address excede %d caracteres", label, entity.MaxAddressLen))
	}
	if len(p.Phone) > entity.MaxPhoneLen {
		errs = append(errs, fmt.Errorf("%s.phone excede %d caracteres", label, entity.MaxPhoneLen))
	}
	if len(p.TaxID) > entity.MaxTaxIDLen {
		errs = append(errs, fmt.Errorf("%s.taxId excede %d caracteres", label, entity.MaxTaxIDLen))
	}
	return errs
}

// validateItems exige al menos un ítem y revisa cada línea: descripción,
// cantidad positiva y rate con patrón estricto y precisión compatible con
// decimals (no puede tener más dígitos fraccionarios que la moneda).
func validateItems(items []entity.LineItem, decimals int32) []error {
	var errs []error
	if len(items) == 0 {
		errs = append(errs, errors.New("la factura debe tener al menos un ítem"))
		return errs
	}
	if len(items) > entity.MaxItems {
		errs = append(errs, fmt.Errorf("la factura excede el máximo de %d ítems", entity.MaxItems))
	}
	for i, it := range items {
		if strings.TrimSpace(it.Description) == "" {
			errs = append(errs, fmt.Errorf("items[%d].description es obligatoria", i))
		} else if len(it.Description) > entity.MaxDescriptionLen {
			errs = append(errs, fmt.Errorf("items[%d].description excede %d caracteres", i, entity.MaxDescriptionLen))
		}
		if !it.Quantity.IsPositive() {
			errs = append(errs, fmt.Errorf("items[%d].quantity debe ser positiva", i))
		}
		// La cantidad viaja como su representación decimal: misma cota de
		// longitud que el decodificador, o el enlace emitido no se podría leer.
		if len(it.Quantity.String()) > entity.MaxRateLen {
			errs = append(errs, fmt.Errorf("items[%d].quantity %s excede %d caracteres", i, it.Quantity.String(), entity.MaxRateLen))
		}
		if len(it.Rate) > entity.MaxRateLen {
			errs = append(errs, fmt.Errorf("items[%d].rate excede %d caracteres", i, entity.MaxRateLen))
			continue
		}
		if !ratePattern.MatchString(it.Rate) {
			errs = append(errs, fmt.Errorf("items[%d].rate %q no cumple el patrón numérico", i, it.Rate))
			continue
		}
		d, err := decimal.NewFromString(it.Rate)
		if err != nil {
			errs = append(errs, fmt.Errorf("items[%d].rate %q: %v", i, it.Rate, err))
			continue
		}
		if -d.Exponent() > decimals {
			errs = append(errs, fmt.Errorf("items[%d].rate %q tiene más de %d decimales", i, it.Rate, decimals))
		}
	}
	return errs
}
