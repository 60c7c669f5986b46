package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-rrhh/internal/application/dto"
	"github.com/jhoicas/portal-rrhh/internal/domain"
	"github.com/jhoicas/portal-rrhh/pkg/logger"
)

// HeaderStorageError se agrega cuando la operación quedó aplicada pero no se pudo guardar.
const HeaderStorageError = "X-Storage-Error"

// markStorageError marca la respuesta si err es solo un fallo de guardado (la mutación quedó aplicada).
func markStorageError(c *fiber.Ctx, log *logger.Logger, err error) bool {
	if !errors.Is(err, domain.ErrStorage) {
		return false
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("no se pudo guardar el documento")
	c.Set(HeaderStorageError, MsgSaveError)
	return true
}

// apiError traduce errores de dominio a {"code","message"}.
func apiError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Message})
	case errors.Is(err, domain.ErrWeakPassword):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "WEAK_PASSWORD", Message: MsgWeakPassword})
	case errors.Is(err, domain.ErrDuplicateEmail):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: MsgEmailExists})
	case errors.Is(err, domain.ErrSelfDelete):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SELF_DELETE", Message: MsgSelfDelete})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: MsgInvalidCredentials})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrNotImplemented):
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_IMPLEMENTED", Message: err.Error()})
	case errors.Is(err, domain.ErrStorage):
		log.Error().Err(err).Str("path", c.Path()).Msg("error de almacenamiento")
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORAGE_ERROR", Message: MsgSaveError})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
