package http

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-rrhh/internal/application/auth"
	"github.com/jhoicas/portal-rrhh/internal/application/dto"
	"github.com/jhoicas/portal-rrhh/internal/application/notify"
	"github.com/jhoicas/portal-rrhh/internal/application/routing"
	"github.com/jhoicas/portal-rrhh/internal/application/usecase"
	"github.com/jhoicas/portal-rrhh/internal/domain"
	"github.com/jhoicas/portal-rrhh/internal/interfaces/view"
	"github.com/jhoicas/portal-rrhh/pkg/logger"
)

// Avisos del portal.
const (
	MsgSaveError           = "Error saving data"
	MsgLoadError           = "Error loading data"
	MsgUnexpected          = "Something went wrong"
	MsgInvalidForm         = "Invalid form data"
	MsgWeakPassword        = "Password must be at least 6 characters"
	MsgEmailRegistered     = "Email already registered"
	MsgEmailExists         = "Email already exists"
	MsgEmailInUse          = "Email already in use by another account"
	MsgInvalidCredentials  = "Invalid credentials or unverified email"
	MsgAccountNotFound     = "Account not found"
	MsgNotFound            = "Not found"
	MsgSelfDelete          = "Cannot delete your own account"
	MsgNotImplemented      = "Not implemented in this prototype"
	MsgNoPendingVerify     = "No pending verification"
	MsgRegistered          = "Account created! Please verify your email."
	MsgEmailVerified       = "Email verified successfully!"
	MsgLoginOK             = "Login successful!"
	MsgLogoutOK            = "Logged out successfully"
	MsgAccountCreated      = "Account created successfully"
	MsgAccountUpdated      = "Account updated successfully"
	MsgPasswordReset       = "Password reset successfully"
	MsgAccountDeleted      = "Account deleted"
	MsgEmployeeAdded       = "Employee added successfully"
	MsgEmployeeUpdated     = "Employee updated successfully"
	MsgEmployeeDeleted     = "Employee deleted"
	MsgRequestSubmitted    = "Request submitted successfully"
	DefaultRequestItemRows = 3
)

// PortalHandler páginas HTML y acciones de formulario del portal.
type PortalHandler struct {
	views       *view.Renderer
	accounts    *usecase.AccountUseCase
	employees   *usecase.EmployeeUseCase
	departments *usecase.DepartmentUseCase
	requests    *usecase.RequestUseCase
	log         *logger.Logger
}

// NewPortalHandler construye el handler del portal.
func NewPortalHandler(
	views *view.Renderer,
	accounts *usecase.AccountUseCase,
	employees *usecase.EmployeeUseCase,
	departments *usecase.DepartmentUseCase,
	requests *usecase.RequestUseCase,
	log *logger.Logger,
) *PortalHandler {
	return &PortalHandler{
		views:       views,
		accounts:    accounts,
		employees:   employees,
		departments: departments,
		requests:    requests,
		log:         log.Component("portal"),
	}
}

// ── Páginas ──

// Page GET / y GET /:page. Aplica las guardas del router y renderiza la página.
func (h *PortalHandler) Page(c *fiber.Ctx) error {
	res := routing.Resolve(c.Path(), GetGate(c).State())
	if res.Redirect != "" {
		return h.redirectWithNotice(c, res)
	}
	return h.render(c, res.Page, h.load(c, res.Page))
}

// Guard protege una acción con las mismas reglas que la página page.
func (h *PortalHandler) Guard(page routing.Page) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := routing.Resolve(page.Path(), GetGate(c).State())
		if res.Redirect != "" {
			return h.redirectWithNotice(c, res)
		}
		return c.Next()
	}
}

func (h *PortalHandler) load(c *fiber.Ctx, page routing.Page) view.Data {
	ctx := c.UserContext()
	gate := GetGate(c)
	n := GetNotifier(c)
	var data view.Data
	var err error

	switch page {
	case routing.VerifyEmail:
		data.PendingEmail, err = gate.PendingEmail(ctx)
	case routing.Login:
		data.EmailVerified, err = gate.TakeEmailVerified(ctx)
	case routing.Profile:
		if acc := gate.Current(); acc != nil {
			data.Employees, err = h.employees.ForAccount(ctx, acc.Email)
		}
	case routing.Accounts:
		data.Accounts, err = h.accounts.List(ctx)
		if err == nil {
			err = h.loadAccountForm(c, &data)
		}
	case routing.Employees:
		data.Employees, err = h.employees.List(ctx)
		if err == nil {
			data.Departments, err = h.departments.List(ctx)
		}
		if err == nil {
			err = h.loadEmployeeForm(c, &data)
		}
	case routing.Departments:
		data.Departments, err = h.departments.List(ctx)
	case routing.Requests:
		data.RequestTypes = usecase.RequestTypes
		data.ItemRows = DefaultRequestItemRows
		if acc := gate.Current(); acc != nil {
			data.Requests, err = h.requests.ListMine(ctx, acc.Email)
		}
	}
	if err != nil {
		h.log.Error().Err(err).Str("page", string(page)).Msg("error cargando datos de la página")
		n.Notify(MsgLoadError, notify.Danger)
	}
	return data
}

func (h *PortalHandler) loadAccountForm(c *fiber.Ctx, data *view.Data) error {
	if id := c.Query("edit"); id != "" {
		form, err := h.accounts.EditForm(c.UserContext(), id)
		if err != nil {
			return err
		}
		data.AccountForm = form
		data.EditID = id
		return nil
	}
	if c.Query("new") != "" {
		data.AccountForm = &dto.AccountRequest{Role: "User"}
	}
	return nil
}

func (h *PortalHandler) loadEmployeeForm(c *fiber.Ctx, data *view.Data) error {
	if id := c.Query("edit"); id != "" {
		form, err := h.employees.EditForm(c.UserContext(), id)
		if err != nil {
			return err
		}
		data.EmployeeForm = form
		data.EditID = id
		return nil
	}
	if c.Query("new") != "" {
		data.EmployeeForm = &dto.EmployeeRequest{}
	}
	return nil
}

// ── Autenticación ──

// Register POST /register.
func (h *PortalHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return h.invalidForm(c, routing.Register.Path())
	}
	n := GetNotifier(c)
	_, err := GetGate(c).Register(c.UserContext(), auth.RegisterInput{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
	})
	if err != nil && !h.savedDespite(c, err) {
		n.Notify(errorText(err, MsgEmailRegistered), notify.Danger)
		in.Password = ""
		return h.render(c, routing.Register, view.Data{RegisterForm: in})
	}
	n.Notify(MsgRegistered, notify.Success)
	return redirect(c, routing.VerifyEmail.Path())
}

// VerifyEmail POST /verify-email. Sin email en el formulario usa el pendiente de la sesión.
func (h *PortalHandler) VerifyEmail(c *fiber.Ctx) error {
	ctx := c.UserContext()
	gate := GetGate(c)
	n := GetNotifier(c)

	var in dto.VerifyEmailRequest
	_ = c.BodyParser(&in)
	email := strings.TrimSpace(in.Email)
	if email == "" {
		pending, err := gate.PendingEmail(ctx)
		if err != nil {
			return h.fail(c, err, routing.VerifyEmail.Path())
		}
		email = pending
	}
	if email == "" {
		n.Notify(MsgNoPendingVerify, notify.Warning)
		return redirect(c, routing.VerifyEmail.Path())
	}

	err := gate.VerifyEmail(ctx, email)
	switch {
	case err == nil || h.savedDespite(c, err):
		n.Notify(MsgEmailVerified, notify.Success)
		return redirect(c, routing.Login.Path())
	case errors.Is(err, domain.ErrNotFound):
		n.Notify(MsgAccountNotFound, notify.Danger)
		return redirect(c, routing.VerifyEmail.Path())
	default:
		return h.fail(c, err, routing.VerifyEmail.Path())
	}
}

// Login POST /login.
func (h *PortalHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return h.invalidForm(c, routing.Login.Path())
	}
	n := GetNotifier(c)
	if _, err := GetGate(c).Login(c.UserContext(), in.Email, in.Password); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			n.Notify(MsgInvalidCredentials, notify.Danger)
			return redirect(c, routing.Login.Path())
		}
		return h.fail(c, err, routing.Login.Path())
	}
	n.Notify(MsgLoginOK, notify.Success)
	return redirect(c, routing.Profile.Path())
}

// Logout POST /logout.
func (h *PortalHandler) Logout(c *fiber.Ctx) error {
	if err := GetGate(c).Logout(c.UserContext()); err != nil {
		return h.fail(c, err, routing.Home.Path())
	}
	GetNotifier(c).Notify(MsgLogoutOK, notify.Info)
	return redirect(c, routing.Home.Path())
}

// ── Cuentas (Admin) ──

// CreateAccount POST /accounts.
func (h *PortalHandler) CreateAccount(c *fiber.Ctx) error {
	var in dto.AccountRequest
	if err := c.BodyParser(&in); err != nil {
		return h.invalidForm(c, routing.Accounts.Path())
	}
	n := GetNotifier(c)
	if _, err := h.accounts.Create(c.UserContext(), in); err != nil && !h.savedDespite(c, err) {
		n.Notify(errorText(err, MsgEmailExists), notify.Danger)
		return redirect(c, routing.Accounts.Path()+"?new=1")
	}
	n.Notify(MsgAccountCreated, notify.Success)
	return redirect(c, routing.Accounts.Path())
}

// UpdateAccount POST /accounts/:id. Si es la propia cuenta renueva el token de sesión.
func (h *PortalHandler) UpdateAccount(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.AccountRequest
	if err := c.BodyParser(&in); err != nil {
		return h.invalidForm(c, routing.Accounts.Path())
	}
	ctx := c.UserContext()
	n := GetNotifier(c)
	acc, err := h.accounts.Update(ctx, id, in)
	if err != nil && !h.savedDespite(c, err) {
		n.Notify(errorText(err, MsgEmailInUse), notify.Danger)
		return redirect(c, routing.Accounts.Path()+"?edit="+id)
	}
	if err := GetGate(c).Reissue(ctx, acc); err != nil {
		h.log.Warn().Err(err).Str("account_id", id).Msg("no se pudo renovar el token de sesión")
	}
	n.Notify(MsgAccountUpdated, notify.Success)
	return redirect(c, routing.Accounts.Path())
}

// ResetPassword POST /accounts/:id/password.
func (h *PortalHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.PasswordResetRequest
	if err := c.BodyParser(&in); err != nil {
		return h.invalidForm(c, routing.Accounts.Path())
	}
	n := GetNotifier(c)
	if err := h.accounts.ResetPassword(c.UserContext(), c.Params("id"), in.Password); err != nil && !h.savedDespite(c, err) {
		n.Notify(errorText(err, MsgUnexpected), notify.Danger)
		return redirect(c, routing.Accounts.Path())
	}
	n.Notify(MsgPasswordReset, notify.Success)
	return redirect(c, routing.Accounts.Path())
}

// DeleteAccount POST /accounts/:id/delete.
func (h *PortalHandler) DeleteAccount(c *fiber.Ctx) error {
	n := GetNotifier(c)
	currentID := ""
	if acc := GetAccount(c); acc != nil {
		currentID = acc.ID
	}
	if err := h.accounts.Delete(c.UserContext(), currentID, c.Params("id")); err != nil && !h.savedDespite(c, err) {
		n.Notify(errorText(err, MsgUnexpected), notify.Danger)
		return redirect(c, routing.Accounts.Path())
	}
	n.Notify(MsgAccountDeleted, notify.Info)
	return redirect(c, routing.Accounts.Path())
}

// ── Empleados (Admin) ──

// CreateEmployee POST /employees.
func (h *PortalHandler) CreateEmployee(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return h.invalidForm(c, routing.Employees.Path())
	}
	n := GetNotifier(c)
	if _, err := h.employees.Create(c.UserContext(), in); err != nil && !h.savedDespite(c, err) {
		n.Notify(errorText(err, MsgUnexpected), notify.Danger)
		return redirect(c, routing.Employees.Path()+"?new=1")
	}
	n.Notify(MsgEmployeeAdded, notify.Success)
	return redirect(c, routing.Employees.Path())
}

// UpdateEmployee POST /employees/:id.
func (h *PortalHandler) UpdateEmployee(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return h.invalidForm(c, routing.Employees.Path())
	}
	n := GetNotifier(c)
	if _, err := h.employees.Update(c.UserContext(), id, in); err != nil && !h.savedDespite(c, err) {
		n.Notify(errorText(err, MsgUnexpected), notify.Danger)
		return redirect(c, routing.Employees.Path()+"?edit="+id)
	}
	n.Notify(MsgEmployeeUpdated, notify.Success)
	return redirect(c, routing.Employees.Path())
}

// DeleteEmployee POST /employees/:id/delete.
func (h *PortalHandler) DeleteEmployee(c *fiber.Ctx) error {
	n := GetNotifier(c)
	if err := h.employees.Delete(c.UserContext(), c.Params("id")); err != nil && !h.savedDespite(c, err) {
		n.Notify(errorText(err, MsgUnexpected), notify.Danger)
		return redirect(c, routing.Employees.Path())
	}
	n.Notify(MsgEmployeeDeleted, notify.Info)
	return redirect(c, routing.Employees.Path())
}

// ExportEmployees GET /employees/export.xlsx.
func (h *PortalHandler) ExportEmployees(c *fiber.Ctx) error {
	data, err := h.employees.Export(c.UserContext())
	if err != nil {
		return h.fail(c, err, routing.Employees.Path())
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Attachment("employees-" + time.Now().UTC().Format("20060102") + ".xlsx")
	return c.Send(data)
}

// ImportEmployees POST /employees/import (multipart, campo "file"). Renderiza el listado
// con el resumen de la importación.
func (h *PortalHandler) ImportEmployees(c *fiber.Ctx) error {
	n := GetNotifier(c)
	fh, err := c.FormFile("file")
	if err != nil {
		return h.invalidForm(c, routing.Employees.Path())
	}
	f, err := fh.Open()
	if err != nil {
		return h.fail(c, err, routing.Employees.Path())
	}
	defer f.Close()

	result, err := h.employees.Import(c.UserContext(), f)
	if err != nil && !h.savedDespite(c, err) {
		n.Notify(errorText(err, MsgUnexpected), notify.Danger)
	}
	if result == nil {
		return redirect(c, routing.Employees.Path())
	}
	h.log.Info().Int("created", result.Created).Int("updated", result.Updated).
		Int("skipped", len(result.Skipped)).Msg("importación de empleados")
	data := h.load(c, routing.Employees)
	data.ImportResult = result
	return h.render(c, routing.Employees, data)
}

// ── Departamentos y solicitudes ──

// DepartmentAction POST /departments. Las altas y ediciones no están implementadas.
func (h *PortalHandler) DepartmentAction(c *fiber.Ctx) error {
	err := h.departments.Create(c.UserContext(), dto.DepartmentRequest{Name: c.FormValue("name")})
	if errors.Is(err, domain.ErrNotImplemented) {
		GetNotifier(c).Notify(usecase.MsgDepartmentsNotImplemented, notify.Warning)
	} else if err != nil {
		return h.fail(c, err, routing.Departments.Path())
	}
	return redirect(c, routing.Departments.Path())
}

// CreateRequest POST /requests. Las líneas llegan como item_name / item_qty repetidos.
func (h *PortalHandler) CreateRequest(c *fiber.Ctx) error {
	acc := GetAccount(c)
	n := GetNotifier(c)
	in := dto.CreateRequestRequest{Type: c.FormValue("type"), Items: formItems(c)}
	if _, err := h.requests.Create(c.UserContext(), acc.Email, in); err != nil && !h.savedDespite(c, err) {
		n.Notify(errorText(err, MsgUnexpected), notify.Danger)
		return redirect(c, routing.Requests.Path())
	}
	n.Notify(MsgRequestSubmitted, notify.Success)
	return redirect(c, routing.Requests.Path())
}

// ChangeRequestStatus POST /requests/:id/approve y /requests/:id/reject.
func (h *PortalHandler) ChangeRequestStatus(approve bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var err error
		if approve {
			err = h.requests.Approve(c.UserContext(), c.Params("id"))
		} else {
			err = h.requests.Reject(c.UserContext(), c.Params("id"))
		}
		if err != nil {
			GetNotifier(c).Notify(errorText(err, MsgUnexpected), notify.Warning)
		}
		return redirect(c, routing.Requests.Path())
	}
}

// ExportRequests GET /requests/export.pdf.
func (h *PortalHandler) ExportRequests(c *fiber.Ctx) error {
	data, err := h.requests.ExportPDF(c.UserContext(), GetAccount(c))
	if err != nil {
		return h.fail(c, err, routing.Requests.Path())
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment("requests-" + time.Now().UTC().Format("20060102") + ".pdf")
	return c.Send(data)
}

func formItems(c *fiber.Ctx) []dto.RequestItemInput {
	args := c.Context().PostArgs()
	names := args.PeekMulti("item_name")
	qtys := args.PeekMulti("item_qty")
	items := make([]dto.RequestItemInput, 0, len(names))
	for i, name := range names {
		qty := 0
		if i < len(qtys) {
			qty, _ = strconv.Atoi(strings.TrimSpace(string(qtys[i])))
		}
		items = append(items, dto.RequestItemInput{Name: string(name), Qty: qty})
	}
	return items
}

// ── Helpers ──

func (h *PortalHandler) render(c *fiber.Ctx, page routing.Page, data view.Data) error {
	data.Session = h.session(c)
	c.Type("html", "utf-8")
	if err := h.views.Render(c, page, data); err != nil {
		h.log.Error().Err(err).Str("page", string(page)).Msg("error renderizando página")
		return fiber.NewError(fiber.StatusInternalServerError, MsgUnexpected)
	}
	return nil
}

func (h *PortalHandler) session(c *fiber.Ctx) view.Session {
	gate := GetGate(c)
	s := view.Session{State: gate.State()}
	if acc := gate.Current(); acc != nil {
		resp := usecase.ToAccountResponse(acc)
		s.Account = &resp
	}
	if fn, ok := c.Locals(LocalNotifier).(*FlashNotifier); ok {
		s.Flash = fn.Take()
	}
	return s
}

func (h *PortalHandler) redirectWithNotice(c *fiber.Ctx, res routing.Resolution) error {
	if res.Notice != nil {
		GetNotifier(c).Notify(res.Notice.Text, res.Notice.Severity)
	}
	return redirect(c, res.Redirect)
}

// savedDespite notifica el fallo de guardado cuando la mutación quedó aplicada en memoria.
func (h *PortalHandler) savedDespite(c *fiber.Ctx, err error) bool {
	if !errors.Is(err, domain.ErrStorage) {
		return false
	}
	h.log.Error().Err(err).Str("path", c.Path()).Msg("no se pudo guardar el documento")
	GetNotifier(c).Notify(MsgSaveError, notify.Danger)
	return true
}

func (h *PortalHandler) invalidForm(c *fiber.Ctx, back string) error {
	GetNotifier(c).Notify(MsgInvalidForm, notify.Danger)
	return redirect(c, back)
}

func (h *PortalHandler) fail(c *fiber.Ctx, err error, back string) error {
	h.log.Error().Err(err).Str("path", c.Path()).Msg("error procesando la petición")
	GetNotifier(c).Notify(errorText(err, MsgUnexpected), notify.Danger)
	return redirect(c, back)
}

func redirect(c *fiber.Ctx, path string) error {
	return c.Redirect(path, fiber.StatusSeeOther)
}

// errorText texto del aviso para err. duplicate es el texto de ErrDuplicateEmail, que
// cambia según la pantalla.
func errorText(err error, duplicate string) string {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return vErr.Message
	case errors.Is(err, domain.ErrDuplicateEmail):
		return duplicate
	case errors.Is(err, domain.ErrWeakPassword):
		return MsgWeakPassword
	case errors.Is(err, domain.ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, domain.ErrSelfDelete):
		return MsgSelfDelete
	case errors.Is(err, domain.ErrNotFound):
		return MsgNotFound
	case errors.Is(err, domain.ErrNotImplemented):
		return MsgNotImplemented
	case errors.Is(err, domain.ErrStorage):
		return MsgSaveError
	default:
		return MsgUnexpected
	}
}
