package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-rrhh/internal/application/auth"
	"github.com/jhoicas/portal-rrhh/internal/application/dto"
	"github.com/jhoicas/portal-rrhh/internal/application/usecase"
	"github.com/jhoicas/portal-rrhh/internal/infrastructure/memory"
	"github.com/jhoicas/portal-rrhh/pkg/logger"
)

// AuthHandler registro, verificación y login de la API. El cliente guarda el token.
type AuthHandler struct {
	gates GateFactory
	log   *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(gates GateFactory, log *logger.Logger) *AuthHandler {
	return &AuthHandler{gates: gates, log: log}
}

// Register godoc
// @Summary      Registrar cuenta
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "firstName, lastName, email, password"
// @Success      201   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	acc, err := h.gates.New(memory.NewKVStore()).Register(c.UserContext(), auth.RegisterInput{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
	})
	if err != nil && !markStorageError(c, h.log, err) {
		return apiError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToAccountResponse(acc))
}

// Verify godoc
// @Summary      Verificar email (simulado)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyEmailRequest  true  "email"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/auth/verify [post]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	var in dto.VerifyEmailRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	err := h.gates.New(memory.NewKVStore()).VerifyEmail(c.UserContext(), in.Email)
	if err != nil && !markStorageError(c, h.log, err) {
		return apiError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: MsgEmailVerified})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	gate := h.gates.New(memory.NewKVStore())
	token, err := gate.Login(c.UserContext(), in.Email, in.Password)
	if err != nil {
		return apiError(c, h.log, err)
	}
	return c.JSON(dto.LoginResponse{Token: token, Account: usecase.ToAccountResponse(gate.Current())})
}

// Me godoc
// @Summary      Cuenta en sesión
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.AccountResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(usecase.ToAccountResponse(GetAccount(c)))
}
