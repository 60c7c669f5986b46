package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-rrhh/internal/application/dto"
	"github.com/jhoicas/portal-rrhh/internal/application/usecase"
	"github.com/jhoicas/portal-rrhh/pkg/logger"
)

// AccountHandler administración de cuentas (Admin).
type AccountHandler struct {
	uc  *usecase.AccountUseCase
	log *logger.Logger
}

// NewAccountHandler construye el handler de cuentas.
func NewAccountHandler(uc *usecase.AccountUseCase, log *logger.Logger) *AccountHandler {
	return &AccountHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar cuentas
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200   {array}   dto.AccountResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/accounts [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return apiError(c, h.log, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear cuenta
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AccountRequest  true  "datos de la cuenta"
// @Success      201   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/accounts [post]
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var in dto.AccountRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	acc, err := h.uc.Create(c.UserContext(), in)
	if err != nil && !markStorageError(c, h.log, err) {
		return apiError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToAccountResponse(acc))
}

// Update godoc
// @Summary      Editar cuenta
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID de la cuenta"
// @Param        body  body  dto.AccountRequest  true  "password vacío conserva la actual"
// @Success      200   {object}  dto.AccountResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/accounts/{id} [put]
func (h *AccountHandler) Update(c *fiber.Ctx) error {
	var in dto.AccountRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	acc, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil && !markStorageError(c, h.log, err) {
		return apiError(c, h.log, err)
	}
	return c.JSON(usecase.ToAccountResponse(acc))
}

// ResetPassword godoc
// @Summary      Restablecer contraseña
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID de la cuenta"
// @Param        body  body  dto.PasswordResetRequest  true  "password"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/accounts/{id}/password [post]
func (h *AccountHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.PasswordResetRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.ResetPassword(c.UserContext(), c.Params("id"), in.Password); err != nil && !markStorageError(c, h.log, err) {
		return apiError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: MsgPasswordReset})
}

// Delete godoc
// @Summary      Eliminar cuenta
// @Tags         accounts
// @Security     BearerAuth
// @Param        id    path  string  true  "ID de la cuenta"
// @Success      204
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/accounts/{id} [delete]
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(c.UserContext(), GetAccount(c).ID, c.Params("id"))
	if err != nil && !markStorageError(c, h.log, err) {
		return apiError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
