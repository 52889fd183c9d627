package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
)

// RestaurantHandler maneja las peticiones HTTP para restaurantes (protegido).
type RestaurantHandler struct {
	uc *usecase.RestaurantUseCase
}

// NewRestaurantHandler construye el handler.
func NewRestaurantHandler(uc *usecase.RestaurantUseCase) *RestaurantHandler {
	return &RestaurantHandler{uc: uc}
}

// Create godoc
// @Summary      Crear restaurante
// @Tags         restaurants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRestaurantRequest  true  "Datos del restaurante (code entra en el correlativo de series)"
// @Success      201   {object}  dto.RestaurantResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/restaurants [post]
func (h *RestaurantHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRestaurantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar restaurantes
// @Tags         restaurants
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RestaurantResponse
// @Router       /api/restaurants [get]
func (h *RestaurantHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener restaurante por ID
// @Tags         restaurants
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del restaurante"
// @Success      200  {object}  dto.RestaurantResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/restaurants/{id} [get]
func (h *RestaurantHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar restaurante
// @Tags         restaurants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del restaurante"
// @Param        body  body  dto.UpdateRestaurantRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.RestaurantResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/restaurants/{id} [put]
func (h *RestaurantHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRestaurantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar restaurante
// @Tags         restaurants
// @Security     Bearer
// @Param        id  path  string  true  "ID del restaurante"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/restaurants/{id} [delete]
func (h *RestaurantHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
