package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/factulink/internal/application/dto"
	"github.com/jhoicas/factulink/internal/domain/codec"
)

// Redes con código corto en la vista previa OG. Espejo de la tabla del
// códec; se enumera acá porque el códec no expone iteración sobre el mapa.
var supportedChainIDs = []uint64{1, 10, 137, 42161}

// NetworkHandler expone la tabla de redes soportadas.
type NetworkHandler struct{}

// NewNetworkHandler construye el handler.
func NewNetworkHandler() *NetworkHandler { return &NetworkHandler{} }

// List devuelve las redes con su código corto.
// GET /api/networks
func (h *NetworkHandler) List(c *fiber.Ctx) error {
	out := make([]dto.NetworkResponse, 0, len(supportedChainIDs))
	for _, id := range supportedChainIDs {
		out = append(out, dto.NetworkResponse{ChainID: id, Code: codec.NetworkCode(id)})
	}
	return c.JSON(out)
}

// Resolve busca un chain id por código corto (insensible a mayúsculas).
// GET /api/networks/:code
func (h *NetworkHandler) Resolve(c *fiber.Ctx) error {
	code := c.Params("code")
	id, ok := codec.NetworkIDFromCode(code)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "red desconocida: " + code})
	}
	return c.JSON(dto.NetworkResponse{ChainID: id, Code: codec.NetworkCode(id)})
}
