package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-rrhh/internal/application/dto"
	"github.com/jhoicas/portal-rrhh/internal/application/usecase"
	"github.com/jhoicas/portal-rrhh/pkg/logger"
)

// RequestHandler solicitudes de la cuenta autenticada.
type RequestHandler struct {
	uc  *usecase.RequestUseCase
	log *logger.Logger
}

// NewRequestHandler construye el handler de solicitudes.
func NewRequestHandler(uc *usecase.RequestUseCase, log *logger.Logger) *RequestHandler {
	return &RequestHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Mis solicitudes
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200   {array}   dto.RequestResponse
// @Router       /api/requests [get]
func (h *RequestHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListMine(c.UserContext(), GetAccount(c).Email)
	if err != nil {
		return apiError(c, h.log, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear solicitud
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateRequestRequest  true  "type, items"
// @Success      201   {object}  dto.RequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/requests [post]
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetAccount(c).Email, in)
	if err != nil && !markStorageError(c, h.log, err) {
		return apiError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
