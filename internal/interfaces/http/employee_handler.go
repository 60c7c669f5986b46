package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-rrhh/internal/application/dto"
	"github.com/jhoicas/portal-rrhh/internal/application/usecase"
	"github.com/jhoicas/portal-rrhh/pkg/logger"
)

// EmployeeHandler empleados y departamentos (Admin).
type EmployeeHandler struct {
	employees   *usecase.EmployeeUseCase
	departments *usecase.DepartmentUseCase
	log         *logger.Logger
}

// NewEmployeeHandler construye el handler de empleados.
func NewEmployeeHandler(employees *usecase.EmployeeUseCase, departments *usecase.DepartmentUseCase, log *logger.Logger) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, departments: departments, log: log}
}

// List godoc
// @Summary      Listar empleados (con nombre y departamento)
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200   {array}   dto.EmployeeRow
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	rows, err := h.employees.List(c.UserContext())
	if err != nil {
		return apiError(c, h.log, err)
	}
	return c.JSON(rows)
}

// Create godoc
// @Summary      Crear empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.EmployeeRequest  true  "datos del empleado"
// @Success      201   {object}  entity.Employee
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	e, err := h.employees.Create(c.UserContext(), in)
	if err != nil && !markStorageError(c, h.log, err) {
		return apiError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(e)
}

// Update godoc
// @Summary      Editar empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del empleado"
// @Param        body  body  dto.EmployeeRequest  true  "datos del empleado"
// @Success      200   {object}  entity.Employee
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	e, err := h.employees.Update(c.UserContext(), c.Params("id"), in)
	if err != nil && !markStorageError(c, h.log, err) {
		return apiError(c, h.log, err)
	}
	return c.JSON(e)
}

// Delete godoc
// @Summary      Eliminar empleado
// @Tags         employees
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del empleado"
// @Success      204
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.employees.Delete(c.UserContext(), c.Params("id")); err != nil && !markStorageError(c, h.log, err) {
		return apiError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListDepartments godoc
// @Summary      Listar departamentos
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Success      200   {array}   dto.DepartmentResponse
// @Router       /api/departments [get]
func (h *EmployeeHandler) ListDepartments(c *fiber.Ctx) error {
	list, err := h.departments.List(c.UserContext())
	if err != nil {
		return apiError(c, h.log, err)
	}
	return c.JSON(list)
}
