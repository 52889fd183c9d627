package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/lists"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// OrderSheetRenderer puerto de render del PDF de la lista.
type OrderSheetRenderer interface {
	Generate(ctx context.Context, list *dto.RenderableList) ([]byte, error)
}

// ListHandler maneja el ciclo de vida de las listas de compra. Las rutas de
// armado (crear, agregar ítem, finalizar, completar) se montan también en el
// grupo público: el flujo de compras no exige login para armar listas.
type ListHandler struct {
	uc  *lists.UseCase
	pdf OrderSheetRenderer
}

// NewListHandler construye el handler.
func NewListHandler(uc *lists.UseCase, pdf OrderSheetRenderer) *ListHandler {
	return &ListHandler{uc: uc, pdf: pdf}
}

// Create godoc
// @Summary      Crear lista de compra (nace en borrador)
// @Tags         lists
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateListRequest  true  "restaurant_id, notes, observation"
// @Success      201   {object}  dto.ListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/lists [post]
func (h *ListHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateListRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.RestaurantID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "restaurant_id es requerido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar listas de compra
// @Tags         lists
// @Security     Bearer
// @Produce      json
// @Param        status         query  string  false  "draft | final"
// @Param        restaurant_id  query  string  false  "Filtrar por restaurante"
// @Param        limit          query  int     false  "Límite"
// @Param        offset         query  int     false  "Offset"
// @Success      200  {array}  dto.ListResponse
// @Router       /api/lists [get]
func (h *ListHandler) List(c *fiber.Ctx) error {
	f := repository.ListFilter{
		Status:       c.Query("status"),
		RestaurantID: c.Query("restaurant_id"),
		Limit:        c.QueryInt("limit"),
		Offset:       c.QueryInt("offset"),
	}
	out, err := h.uc.List(c.UserContext(), GetUserID(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener lista con sus ítems
// @Tags         lists
// @Produce      json
// @Param        id   path  string  true  "ID de la lista"
// @Success      200  {object}  dto.ListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lists/{id} [get]
func (h *ListHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar lista en borrador (las finales son inmutables)
// @Tags         lists
// @Security     Bearer
// @Param        id  path  string  true  "ID de la lista"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/lists/{id} [delete]
func (h *ListHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddItem godoc
// @Summary      Agregar ítem a una lista en borrador
// @Tags         lists
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID de la lista"
// @Param        body  body  dto.AddItemRequest  true  "product_id, unit_id, qty (texto decimal), price opcional"
// @Success      201   {object}  dto.ListItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/lists/{id}/items [post]
func (h *ListHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddItem(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdatePrices godoc
// @Summary      Actualizar precios de ítems (borrador)
// @Tags         lists
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la lista"
// @Param        body  body  dto.UpdatePricesRequest  true  "items + observation opcional"
// @Success      200   {object}  dto.UpdatePricesResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/lists/{id}/update_prices [post]
func (h *ListHandler) UpdatePrices(c *fiber.Ctx) error {
	var in dto.UpdatePricesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdatePrices(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Finalize godoc
// @Summary      Finalizar lista (asigna correlativo y la vuelve inmutable)
// @Tags         lists
// @Produce      json
// @Param        id   path  string  true  "ID de la lista"
// @Success      200  {object}  dto.FinalizeResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse  "Ítems sin precio: nombres en message"
// @Router       /api/lists/{id}/finalize [post]
func (h *ListHandler) Finalize(c *fiber.Ctx) error {
	out, err := h.uc.Finalize(c.UserContext(), c.Params("id"))
	if err != nil {
		var incomplete *domain.IncompletePricingError
		if errors.As(err, &incomplete) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Code:    "INCOMPLETE_PRICING",
				Message: incomplete.Error(),
			})
		}
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Completar precios y finalizar en una sola operación
// @Description  Aplica el parche de precios y, si la lista queda completa, la
// @Description  finaliza. Si aún faltan precios responde 200 con finalized=false
// @Description  y los productos pendientes: el avance parcial no es un error.
// @Tags         lists
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de la lista"
// @Param        body  body  dto.CompleteRequest  true  "items + observation opcional"
// @Success      200   {object}  dto.CompleteResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/lists/{id}/complete [post]
func (h *ListHandler) Complete(c *fiber.Ctx) error {
	var in dto.CompleteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Complete(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Descargar la hoja de pedido en PDF
// @Tags         lists
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la lista"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lists/{id}/pdf [get]
func (h *ListHandler) PDF(c *fiber.Ctx) error {
	renderable, err := h.uc.Renderable(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	doc, err := h.pdf.Generate(c.UserContext(), renderable)
	if err != nil {
		return respondError(c, err)
	}
	name := renderable.SeriesCode
	if name == "" {
		name = c.Params("id")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "lista-"+name+".pdf"))
	return c.Send(doc)
}
