package codec

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/factulink/internal/domain/entity"
	"github.com/jhoicas/factulink/internal/domain/money"
)

// OGPreviewData es la proyección mínima y no sensible de la factura que
// viaja en el parámetro ?og= para el unfurl en redes sociales. Efímera: se
// deriva bajo demanda y no se persiste. From y Due vacíos significan ausentes.
type OGPreviewData struct {
	ID       string `json:"id"`       // primeros 8 hex del UUID sin guiones
	Amount   string `json:"amount"`   // total de presentación, 2 decimales
	Currency string `json:"currency"` // símbolo tal cual
	Network  string `json:"network"`  // código corto o chain id decimal
	From     string `json:"from,omitempty"`
	Due      string `json:"due,omitempty"` // MMDD en UTC
}

// Caracteres que se eliminan del nombre del emisor antes de incluirlo en la
// cadena OG: el delimitador del formato y los reservados de URL.
const ogUnsafeChars = "_#?&=%"

// ogMaxFromLen acota el nombre del emisor en la vista previa.
const ogMaxFromLen = 20

// duePattern reconoce el campo de vencimiento MMDD. Es también la regla de
// desambiguación del decodificador: el último campo es due si y solo si
// coincide. Ver la limitación documentada en doc.go (nombre de 4 dígitos).
var duePattern = regexp.MustCompile(`^\d{4}$`)

// EncodeOGPreview construye la cadena OG de la factura:
//
//	id_amount_currency_network[_from][_due]
//
// El monto usa la ruta de presentación de money (float64, 2 decimales),
// nunca la ruta exacta de pago. Determinista y segura para query string por
// construcción.
func EncodeOGPreview(inv *entity.Invoice) (string, error) {
	amount, err := money.DisplayTotal(inv.Items, inv.Tax, inv.Discount)
	if err != nil {
		return "", fmt.Errorf("codec: total de vista previa: %w", err)
	}

	id := strings.ReplaceAll(inv.InvoiceID, "-", "")
	if len(id) > 8 {
		id = id[:8]
	}

	parts := []string{id, amount, inv.Currency, NetworkCode(inv.NetworkID)}
	if from := sanitizeOGName(inv.From.Name); from != "" {
		parts = append(parts, from)
	}
	if inv.DueAt > 0 {
		due := time.Unix(inv.DueAt, 0).UTC()
		parts = append(parts, fmt.Sprintf("%02d%02d", int(due.Month()), due.Day()))
	}
	return strings.Join(parts, "_"), nil
}

// DecodeOGPreview parsea una cadena OG. Exige al menos los 4 campos fijos.
// Con 5 campos, el quinto es due si coincide con ^\d{4}$ y from si no; con
// 6, el quinto es from y el sexto debe ser due válido.
func DecodeOGPreview(ogString string) (*OGPreviewData, error) {
	parts := strings.Split(ogString, "_")
	if len(parts) < 4 {
		return nil, fmt.Errorf("codec: %w: %d campos", ErrInvalidOGPreview, len(parts))
	}
	data := &OGPreviewData{
		ID:       parts[0],
		Amount:   parts[1],
		Currency: parts[2],
		Network:  parts[3],
	}
	switch len(parts) {
	case 4:
	case 5:
		if duePattern.MatchString(parts[4]) {
			data.Due = parts[4]
		} else {
			data.From = parts[4]
		}
	case 6:
		if !duePattern.MatchString(parts[5]) {
			return nil, fmt.Errorf("codec: %w: último campo %q no es MMDD", ErrInvalidOGPreview, parts[5])
		}
		data.From = parts[4]
		data.Due = parts[5]
	default:
		return nil, fmt.Errorf("codec: %w: %d campos", ErrInvalidOGPreview, len(parts))
	}
	return data, nil
}

// sanitizeOGName limpia el nombre del emisor para la cadena OG: elimina los
// caracteres inseguros, recorta espacios y trunca a 20 caracteres (runas).
// Devuelve "" si tras limpiar no queda nada; el campo se omite entero.
func sanitizeOGName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(ogUnsafeChars, r) {
			return -1
		}
		return r
	}, name)
	cleaned = strings.TrimSpace(cleaned)
	if runes := []rune(cleaned); len(runes) > ogMaxFromLen {
		cleaned = strings.TrimSpace(string(runes[:ogMaxFromLen]))
	}
	return cleaned
}
