package codec

import (
	"fmt"

	"github.com/jhoicas/factulink/internal/domain"
	"github.com/jhoicas/factulink/internal/domain/entity"
)

const (
	// DefaultBaseURL se usa cuando el llamador no indica base propia.
	DefaultBaseURL = "https://factulink.app"

	// MaxURLBytes es el presupuesto duro de la URL completa en bytes UTF-8.
	// Por encima de esto hay navegadores y plataformas que truncan o
	// rechazan el enlace, así que se falla explícito en lugar de emitir un
	// enlace roto.
	MaxURLBytes = 2000
)

// URLOptions ajusta el armado de la URL compartible.
type URLOptions struct {
	BaseURL   string // base sin slash final; vacío = DefaultBaseURL
	IncludeOG bool   // agrega ?og= con la vista previa para el unfurl
}

// GenerateInvoiceURL arma la URL compartible:
//
//	{base}/pay#{factura codificada}
//	{base}/pay?og={vista previa}#{factura codificada}   (IncludeOG)
//
// La factura completa va SOLO en el fragmento hash, que el navegador nunca
// envía al servidor. El query string ?og= es lo único que un servidor ve y
// se limita a la proyección OG. Si la URL supera MaxURLBytes se devuelve
// domain.ErrURLTooLong: el usuario debe acortar notas o ítems, nunca se
// trunca en silencio.
func GenerateInvoiceURL(inv *entity.Invoice, opts *URLOptions) (string, error) {
	base := DefaultBaseURL
	includeOG := false
	if opts != nil {
		if opts.BaseURL != "" {
			base = opts.BaseURL
		}
		includeOG = opts.IncludeOG
	}

	encoded, err := EncodeInvoice(inv)
	if err != nil {
		return "", err
	}

	url := base + "/pay"
	if includeOG {
		og, err := EncodeOGPreview(inv)
		if err != nil {
			return "", err
		}
		url += "?og=" + og
	}
	url += "#" + encoded

	if len(url) > MaxURLBytes {
		return "", fmt.Errorf("codec: %w: %d bytes (máximo %d); acorte notas o ítems",
			domain.ErrURLTooLong, len(url), MaxURLBytes)
	}
	return url, nil
}
