package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
)

// respondError mapea errores de dominio a respuestas HTTP consistentes.
// Los handlers con semántica propia (finalización incompleta, por ejemplo)
// atienden sus casos antes de delegar aquí.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un registro con ese nombre"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el registro está referenciado y no puede eliminarse"})
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "qty debe ser un decimal no negativo"})
	case errors.Is(err, domain.ErrInvalidPrice):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PRICE", Message: "price debe ser un decimal no negativo"})
	case errors.Is(err, domain.ErrMissingPrice):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_PRICE", Message: "price es obligatorio para unidades no monetarias al finalizar"})
	case errors.Is(err, domain.ErrInvalidUnit):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_UNIT", Message: "unidad inexistente o de otro propietario"})
	case errors.Is(err, domain.ErrInvalidProduct):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PRODUCT", Message: "producto inexistente o de otro propietario"})
	case errors.Is(err, domain.ErrListFinalized):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LIST_FINALIZED", Message: "la lista ya fue finalizada y es inmutable"})
	case errors.Is(err, domain.ErrAlreadyFinalized):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_FINALIZED", Message: "la lista ya fue finalizada"})
	case errors.Is(err, domain.ErrIntegrityConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SERIES_CONFLICT", Message: "conflicto al asignar el correlativo; reintente"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
