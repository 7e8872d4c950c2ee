package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/factulink/internal/application/sharing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PreviewUC *sharing.PreviewUseCase
}

// Router registra las rutas. Todas son públicas: no hay usuarios ni
// sesiones porque no hay nada que proteger en el servidor — las facturas
// viven en los fragmentos hash de quienes las comparten.
func Router(app *fiber.App, deps RouterDeps) {
	previewHandler := NewPreviewHandler(deps.PreviewUC)
	networkHandler := NewNetworkHandler()

	// Página de pago: cascarón con meta tags OG para el unfurl.
	app.Get("/pay", previewHandler.Pay)

	api := app.Group("/api")
	api.Get("/preview", previewHandler.Preview)
	api.Get("/networks", networkHandler.List)
	api.Get("/networks/:code", networkHandler.Resolve)
}
