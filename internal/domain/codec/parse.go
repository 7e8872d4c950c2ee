package codec

import (
	"fmt"
	"strings"

	"github.com/jhoicas/factulink/internal/domain/entity"
)

// ParseResult es el resultado discriminado de ParseInvoiceHash: o Success
// con Data, o Err. La UI ramifica sobre Success sin try/catch ni chequeos de
// nil repetidos.
type ParseResult struct {
	Success bool
	Data    *entity.Invoice
	Err     error
}

// ParseInvoiceHash es la frontera segura entre el códec y las capas de UI:
// convierte los errores (y cualquier pánico interno) de DecodeInvoice en un
// resultado discriminado. El fragmento hash es entrada expuesta a corrupción
// —URLs editadas a mano, copy-paste truncado, enlaces de versiones viejas de
// la app— y nada de eso puede tumbar al consumidor.
func ParseInvoiceHash(hash string) (result ParseResult) {
	defer func() {
		if r := recover(); r != nil {
			result = ParseResult{Err: fmt.Errorf("codec: %w: pánico interno: %v", ErrDecodeFailed, r)}
		}
	}()

	fragment := strings.TrimPrefix(hash, "#")
	if fragment == "" {
		return ParseResult{Err: fmt.Errorf("codec: %w: fragmento vacío", ErrDecodeFailed)}
	}
	inv, err := DecodeInvoice(fragment)
	if err != nil {
		return ParseResult{Err: err}
	}
	return ParseResult{Success: true, Data: inv}
}
