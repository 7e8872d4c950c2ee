// Package sharing orquesta el ciclo de compartir una factura: validación de
// esquema → codificación binaria → armado de URL → vista previa OG. Es la
// unidad que consumen el CLI y los handlers HTTP.
package sharing

import (
	"fmt"
	"strings"

	"github.com/jhoicas/factulink/internal/domain/codec"
	"github.com/jhoicas/factulink/internal/domain/entity"
	"github.com/jhoicas/factulink/internal/domain/schema"
)

// ShareResult es el producto de compartir: la URL lista para pegar y,
// opcionalmente, la cadena OG que viaja en el query.
type ShareResult struct {
	URL string
	OG  string
}

// ShareUseCase valida y codifica facturas hacia enlaces compartibles.
type ShareUseCase struct {
	baseURL   string
	includeOG bool
}

// NewShareUseCase construye el caso de uso. baseURL vacío usa el default del
// códec.
func NewShareUseCase(baseURL string, includeOG bool) *ShareUseCase {
	return &ShareUseCase{baseURL: baseURL, includeOG: includeOG}
}

// Share valida la factura y arma la URL compartible. La validación corre
// acá y no en el códec: el códec asume entrada válida por contrato.
func (uc *ShareUseCase) Share(inv *entity.Invoice) (*ShareResult, error) {
	if err := schema.ValidateInvoice(inv); err != nil {
		return nil, err
	}
	url, err := codec.GenerateInvoiceURL(inv, &codec.URLOptions{
		BaseURL:   uc.baseURL,
		IncludeOG: uc.includeOG,
	})
	if err != nil {
		return nil, err
	}
	result := &ShareResult{URL: url}
	if uc.includeOG {
		if result.OG, err = codec.EncodeOGPreview(inv); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Decode acepta una URL completa o solo el fragmento y devuelve la factura.
// Usa la frontera no lanzante del códec; acá se vuelve a error plano porque
// el CLI y los tests prefieren el contrato (valor, error).
func (uc *ShareUseCase) Decode(urlOrFragment string) (*entity.Invoice, error) {
	fragment := urlOrFragment
	if i := strings.IndexByte(fragment, '#'); i >= 0 {
		fragment = fragment[i+1:]
	}
	result := codec.ParseInvoiceHash(fragment)
	if !result.Success {
		return nil, result.Err
	}
	return result.Data, nil
}

// PreviewUseCase decodifica el parámetro ?og= para el handler de unfurl.
type PreviewUseCase struct{}

// NewPreviewUseCase construye el caso de uso.
func NewPreviewUseCase() *PreviewUseCase { return &PreviewUseCase{} }

// Preview parsea la cadena OG y la devuelve junto con textos listos para
// las meta tags.
func (uc *PreviewUseCase) Preview(ogString string) (*codec.OGPreviewData, string, error) {
	data, err := codec.DecodeOGPreview(ogString)
	if err != nil {
		return nil, "", err
	}
	title := fmt.Sprintf("Factura %s — %s %s", data.ID, data.Amount, data.Currency)
	return data, title, nil
}
