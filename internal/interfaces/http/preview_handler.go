package http

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/factulink/internal/application/dto"
	"github.com/jhoicas/factulink/internal/application/sharing"
)

// PreviewHandler sirve la página /pay con las meta tags Open Graph pobladas
// desde el parámetro ?og=. El servidor SOLO ve ese parámetro: el fragmento
// hash con la factura completa nunca llega (el navegador no lo envía) y este
// handler jamás debe intentar leerlo ni registrarlo.
type PreviewHandler struct {
	uc *sharing.PreviewUseCase
}

// NewPreviewHandler construye el handler.
func NewPreviewHandler(uc *sharing.PreviewUseCase) *PreviewHandler {
	return &PreviewHandler{uc: uc}
}

// payPage es el cascarón HTML mínimo: meta tags para el unfurl y nada más.
// La factura real la renderiza el cliente desde el fragmento.
var payPage = template.Must(template.New("pay").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<meta property="og:title" content="{{.Title}}">
<meta property="og:description" content="{{.Description}}">
<meta property="og:type" content="website">
<meta name="robots" content="noindex">
</head>
<body>
<noscript>Esta página necesita JavaScript para mostrar la factura.</noscript>
</body>
</html>
`))

type payPageData struct {
	Title       string
	Description string
}

// Pay renderiza el cascarón de pago. Un ?og= malformado degrada a la vista
// genérica, nunca a un 500: el enlace sigue funcionando aunque la vista
// previa no.
// GET /pay
func (h *PreviewHandler) Pay(c *fiber.Ctx) error {
	data := payPageData{
		Title:       "FactuLink — factura compartida",
		Description: "Abra el enlace para ver la factura. El contenido vive en su navegador, no en nuestros servidores.",
	}
	if og := c.Query("og"); og != "" {
		if preview, title, err := h.uc.Preview(og); err == nil {
			data.Title = title
			desc := "Red: " + preview.Network
			if preview.From != "" {
				desc = "De " + preview.From + " — " + desc
			}
			if preview.Due != "" {
				desc += " — vence " + preview.Due[:2] + "/" + preview.Due[2:]
			}
			data.Description = desc
		}
	}

	var buf bytes.Buffer
	if err := payPage.Execute(&buf, data); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

// Preview devuelve la proyección OG decodificada en JSON.
// GET /api/preview?og=...
func (h *PreviewHandler) Preview(c *fiber.Ctx) error {
	og := c.Query("og")
	if og == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetro og requerido"})
	}
	preview, _, err := h.uc.Preview(og)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_OG", Message: err.Error()})
	}
	return c.JSON(dto.PreviewResponse{
		ID:       preview.ID,
		Amount:   preview.Amount,
		Currency: preview.Currency,
		Network:  preview.Network,
		From:     preview.From,
		Due:      preview.Due,
	})
}
