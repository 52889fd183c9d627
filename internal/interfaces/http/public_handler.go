package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
)

// PublicHandler sirve el catálogo a los clientes sin login. El propietario
// cuyo catálogo se expone se fija por configuración al arrancar.
type PublicHandler struct {
	uc      *usecase.ConfigUseCase
	ownerID string
}

// NewPublicHandler construye el handler con el propietario público resuelto.
func NewPublicHandler(uc *usecase.ConfigUseCase, ownerID string) *PublicHandler {
	return &PublicHandler{uc: uc, ownerID: ownerID}
}

// Config godoc
// @Summary      Catálogo completo para el armado público de listas
// @Description  Restaurantes, categorías, productos y unidades en una sola
// @Description  respuesta, cada colección ordenada por nombre.
// @Tags         public
// @Produce      json
// @Success      200  {object}  dto.ConfigResponse
// @Router       /api/public/config [get]
func (h *PublicHandler) Config(c *fiber.Ctx) error {
	if h.ownerID == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "NOT_CONFIGURED", Message: "catálogo público no configurado"})
	}
	out, err := h.uc.Get(c.UserContext(), h.ownerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
