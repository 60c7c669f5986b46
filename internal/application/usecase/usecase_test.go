package usecase_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/portal-rrhh/internal/application/dto"
	"github.com/jhoicas/portal-rrhh/internal/application/report"
	"github.com/jhoicas/portal-rrhh/internal/application/usecase"
	"github.com/jhoicas/portal-rrhh/internal/domain"
	"github.com/jhoicas/portal-rrhh/internal/domain/entity"
	"github.com/jhoicas/portal-rrhh/internal/infrastructure/document"
	"github.com/jhoicas/portal-rrhh/internal/infrastructure/memory"
)

type repos struct {
	db          *document.Database
	accounts    *document.AccountRepo
	departments *document.DepartmentRepo
	employees   *document.EmployeeRepo
	requests    *document.RequestRepo
}

func newRepos(t *testing.T) repos {
	t.Helper()
	db, err := document.Open(context.Background(), document.NewStore(memory.NewKVStore(), nil))
	require.NoError(t, err)
	return repos{
		db:          db,
		accounts:    document.NewAccountRepository(db),
		departments: document.NewDepartmentRepository(db),
		employees:   document.NewEmployeeRepository(db),
		requests:    document.NewRequestRepository(db),
	}
}

func seedAdmin(t *testing.T, r repos) *entity.Account {
	t.Helper()
	admin, err := r.accounts.FindByEmail(context.Background(), document.SeedAdminEmail)
	require.NoError(t, err)
	require.NotNil(t, admin)
	return admin
}

// ── Accounts ──

func TestAccountUseCase_CreateValidaciones(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewAccountUseCase(newRepos(t).accounts, nil)

	_, err := uc.Create(ctx, dto.AccountRequest{FirstName: "Ana", Email: "ana@x.com", Password: "12345", Role: "User"})
	assert.ErrorIs(t, err, domain.ErrWeakPassword)

	_, err = uc.Create(ctx, dto.AccountRequest{FirstName: "Ana", Email: "ADMIN@example.com", Password: "123456", Role: "User"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	_, err = uc.Create(ctx, dto.AccountRequest{FirstName: "Ana", Email: "ana@x.com", Password: "123456", Role: "Root"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	acc, err := uc.Create(ctx, dto.AccountRequest{FirstName: "Ana", Email: "Ana@X.com", Password: "123456", Role: "Admin", Verified: true})
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", acc.Email)
	assert.True(t, acc.IsAdmin())

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestAccountUseCase_UpdateConservaContrasena(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	uc := usecase.NewAccountUseCase(r.accounts, nil)
	admin := seedAdmin(t, r)

	form, err := uc.EditForm(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "Password123!", form.Password, "en claro se precarga la contraseña")

	updated, err := uc.Update(ctx, admin.ID, dto.AccountRequest{FirstName: "Root", LastName: "Admin", Email: admin.Email, Role: "Admin", Verified: true})
	require.NoError(t, err)
	assert.Equal(t, "Password123!", updated.Password)
	assert.Equal(t, "Root Admin", updated.DisplayName())

	_, err = uc.Update(ctx, "nope", dto.AccountRequest{FirstName: "X", Email: "x@x.com"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccountUseCase_UpdateEmailEnUso(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	uc := usecase.NewAccountUseCase(r.accounts, nil)
	ana, err := uc.Create(ctx, dto.AccountRequest{FirstName: "Ana", Email: "ana@x.com", Password: "123456"})
	require.NoError(t, err)

	_, err = uc.Update(ctx, ana.ID, dto.AccountRequest{FirstName: "Ana", Email: "admin@example.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestAccountUseCase_ResetPassword(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	uc := usecase.NewAccountUseCase(r.accounts, nil)
	admin := seedAdmin(t, r)

	assert.ErrorIs(t, uc.ResetPassword(ctx, admin.ID, "short"), domain.ErrWeakPassword)
	assert.ErrorIs(t, uc.ResetPassword(ctx, "nope", "longenough"), domain.ErrNotFound)
	require.NoError(t, uc.ResetPassword(ctx, admin.ID, "nueva-clave"))

	got, err := r.accounts.FindByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "nueva-clave", got.Password)
}

func TestAccountUseCase_DeletePropiaCuenta(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	uc := usecase.NewAccountUseCase(r.accounts, nil)
	admin := seedAdmin(t, r)
	ana, err := uc.Create(ctx, dto.AccountRequest{FirstName: "Ana", Email: "ana@x.com", Password: "123456"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(ctx, admin.ID, admin.ID), domain.ErrSelfDelete)

	require.NoError(t, uc.Delete(ctx, admin.ID, ana.ID))
	got, err := r.accounts.FindByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Nil(t, got, "la cuenta eliminada desaparece de las búsquedas")
}

func TestAccountUseCase_VerifyByEmail(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewAccountUseCase(newRepos(t).accounts, nil)
	_, err := uc.Create(ctx, dto.AccountRequest{FirstName: "Ana", Email: "ana@x.com", Password: "123456"})
	require.NoError(t, err)

	acc, err := uc.VerifyByEmail(ctx, "ANA@x.com")
	require.NoError(t, err)
	assert.True(t, acc.Verified)

	_, err = uc.VerifyByEmail(ctx, "nadie@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Employees ──

func TestEmployeeUseCase_EmailDesconocido(t *testing.T) {
	r := newRepos(t)
	uc := usecase.NewEmployeeUseCase(r.employees, r.accounts, r.departments, nil)
	_, err := uc.Create(context.Background(), dto.EmployeeRequest{EmployeeID: "E1", UserEmail: "nadie@x.com", Position: "Dev"})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "userEmail", vErr.Field)
	assert.Equal(t, usecase.MsgUnknownUserEmail, vErr.Message)
}

func TestEmployeeUseCase_ListadoUnido(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	uc := usecase.NewEmployeeUseCase(r.employees, r.accounts, r.departments, nil)
	depts, err := r.departments.List(ctx)
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.EmployeeRequest{EmployeeID: "E1", UserEmail: "ADMIN@example.com", Position: "CTO", DepartmentID: depts[0].ID, HireDate: "2026-01-15"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.EmployeeRequest{EmployeeID: "E2", UserEmail: "admin@example.com", Position: "Temp", DepartmentID: "borrado"})
	require.NoError(t, err, "departmentId no se valida")

	rows, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Admin", rows[0].Name)
	assert.Equal(t, "Engineering", rows[0].DepartmentName)
	assert.Equal(t, "N/A", rows[1].DepartmentName)
}

func TestEmployeeUseCase_ForAccount(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	uc := usecase.NewEmployeeUseCase(r.employees, r.accounts, r.departments, nil)
	accounts := usecase.NewAccountUseCase(r.accounts, nil)
	_, err := accounts.Create(ctx, dto.AccountRequest{FirstName: "Ana", Email: "ana@x.com", Password: "123456"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.EmployeeRequest{EmployeeID: "E1", UserEmail: "admin@example.com", Position: "CTO"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.EmployeeRequest{EmployeeID: "E2", UserEmail: "ana@x.com", Position: "Dev"})
	require.NoError(t, err)

	rows, err := uc.ForAccount(ctx, "ANA@x.com")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "E2", rows[0].EmployeeID)
	assert.Equal(t, "Ana", rows[0].Name)

	rows, err = uc.ForAccount(ctx, "nadie@x.com")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestEmployeeUseCase_NombreCaeAlEmail(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	uc := usecase.NewEmployeeUseCase(r.employees, r.accounts, r.departments, nil)
	accounts := usecase.NewAccountUseCase(r.accounts, nil)
	admin := seedAdmin(t, r)
	ana, err := accounts.Create(ctx, dto.AccountRequest{FirstName: "Ana", Email: "ana@x.com", Password: "123456"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.EmployeeRequest{EmployeeID: "E1", UserEmail: "ana@x.com", Position: "Dev"})
	require.NoError(t, err)

	require.NoError(t, accounts.Delete(ctx, admin.ID, ana.ID))
	rows, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", rows[0].Name)
}

func TestEmployeeUseCase_CamposRequeridos(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	uc := usecase.NewEmployeeUseCase(r.employees, r.accounts, r.departments, nil)
	cases := map[string]dto.EmployeeRequest{
		"employeeId": {UserEmail: "admin@example.com", Position: "Dev"},
		"userEmail":  {EmployeeID: "E1", Position: "Dev"},
		"position":   {EmployeeID: "E1", UserEmail: "admin@example.com"},
		"hireDate":   {EmployeeID: "E1", UserEmail: "admin@example.com", Position: "Dev", HireDate: "15/01/2026"},
	}
	for field, in := range cases {
		t.Run(field, func(t *testing.T) {
			_, err := uc.Create(ctx, in)
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, field, vErr.Field)
		})
	}
}

func TestEmployeeUseCase_UpdateYDelete(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	uc := usecase.NewEmployeeUseCase(r.employees, r.accounts, r.departments, nil)
	e, err := uc.Create(ctx, dto.EmployeeRequest{EmployeeID: "E1", UserEmail: "admin@example.com", Position: "Dev"})
	require.NoError(t, err)

	_, err = uc.Update(ctx, e.ID, dto.EmployeeRequest{EmployeeID: "E1", UserEmail: "admin@example.com", Position: "Lead"})
	require.NoError(t, err)
	form, err := uc.EditForm(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lead", form.Position)

	require.NoError(t, uc.Delete(ctx, e.ID))
	assert.ErrorIs(t, uc.Delete(ctx, e.ID), domain.ErrNotFound)
	_, err = uc.EditForm(ctx, e.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

type fakeSheet struct {
	written []dto.EmployeeRow
	rows    []report.SheetRow
}

func (f *fakeSheet) Write(_ context.Context, rows []dto.EmployeeRow) ([]byte, error) {
	f.written = rows
	return []byte("xlsx"), nil
}

func (f *fakeSheet) Read(context.Context, io.Reader) ([]report.SheetRow, error) {
	return f.rows, nil
}

func TestEmployeeUseCase_ImportCreaActualizaYDescarta(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	sheet := &fakeSheet{rows: []report.SheetRow{
		{Line: 2, Employee: dto.EmployeeRequest{EmployeeID: "E1", UserEmail: "admin@example.com", Position: "Dev"}},
		{Line: 3, Employee: dto.EmployeeRequest{EmployeeID: "E2", UserEmail: "nadie@x.com", Position: "Dev"}},
		{Line: 4, Employee: dto.EmployeeRequest{EmployeeID: "E1", UserEmail: "admin@example.com", Position: "Lead"}},
	}}
	uc := usecase.NewEmployeeUseCase(r.employees, r.accounts, r.departments, sheet)

	res, err := uc.Import(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 1, res.Updated)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 3, res.Skipped[0].Row)

	rows, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Lead", rows[0].Position)

	data, err := uc.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)
	assert.Equal(t, rows, sheet.written)
}

// ── Departments ──

func TestDepartmentUseCase_Stubs(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	uc := usecase.NewDepartmentUseCase(r.departments)

	assert.ErrorIs(t, uc.Create(ctx, dto.DepartmentRequest{Name: "Finance"}), domain.ErrNotImplemented)
	assert.ErrorIs(t, uc.Update(ctx, "x", dto.DepartmentRequest{}), domain.ErrNotImplemented)
	assert.ErrorIs(t, uc.Delete(ctx, "x"), domain.ErrNotImplemented)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2, "los stubs no modifican el documento")
}

// ── Requests ──

func fixedClock() time.Time {
	return time.Date(2026, 10, 19, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600))
}

func TestRequestUseCase_CreateDescartaLineasInvalidas(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	uc := usecase.NewRequestUseCase(r.requests, nil).WithClock(fixedClock)

	got, err := uc.Create(ctx, "Ana@X.com", dto.CreateRequestRequest{
		Type: "Equipment",
		Items: []dto.RequestItemInput{
			{Name: "Laptop", Qty: 1},
			{Name: "  ", Qty: 3},
			{Name: "Mouse", Qty: 0},
			{Name: "Monitor", Qty: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RequestPending, got.Status)
	assert.Equal(t, "2026-10-20", got.Date, "la fecha es el día UTC")
	assert.Equal(t, "ana@x.com", got.EmployeeEmail)
	assert.Equal(t, "Laptop (1), Monitor (2)", got.ItemsSummary)
	assert.Equal(t, "warning", got.StatusClass)
}

func TestRequestUseCase_SinLineasValidas(t *testing.T) {
	uc := usecase.NewRequestUseCase(newRepos(t).requests, nil)
	_, err := uc.Create(context.Background(), "ana@x.com", dto.CreateRequestRequest{
		Type:  "Leave",
		Items: []dto.RequestItemInput{{Name: "Día libre", Qty: -1}},
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, usecase.MsgNoItems, vErr.Message)
}

func TestRequestUseCase_ListMineYStubs(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	uc := usecase.NewRequestUseCase(r.requests, nil)
	items := []dto.RequestItemInput{{Name: "Silla", Qty: 1}}
	mine, err := uc.Create(ctx, "ana@x.com", dto.CreateRequestRequest{Type: "Resources", Items: items})
	require.NoError(t, err)
	_, err = uc.Create(ctx, "otro@x.com", dto.CreateRequestRequest{Type: "Resources", Items: items})
	require.NoError(t, err)

	list, err := uc.ListMine(ctx, "ana@x.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)

	assert.ErrorIs(t, uc.Approve(ctx, mine.ID), domain.ErrNotImplemented)
	assert.ErrorIs(t, uc.Reject(ctx, mine.ID), domain.ErrNotImplemented)
	list, err = uc.ListMine(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RequestPending, list[0].Status)
}

type fakePDF struct {
	owner dto.AccountResponse
	reqs  []dto.RequestResponse
}

func (f *fakePDF) Render(_ context.Context, owner dto.AccountResponse, reqs []dto.RequestResponse, _ time.Time) ([]byte, error) {
	f.owner, f.reqs = owner, reqs
	return []byte("%PDF"), nil
}

func TestRequestUseCase_ExportPDF(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	pdf := &fakePDF{}
	uc := usecase.NewRequestUseCase(r.requests, pdf)
	admin := seedAdmin(t, r)
	_, err := uc.Create(ctx, admin.Email, dto.CreateRequestRequest{Type: "Equipment", Items: []dto.RequestItemInput{{Name: "Laptop", Qty: 1}}})
	require.NoError(t, err)

	data, err := uc.ExportPDF(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
	assert.Equal(t, "Admin", pdf.owner.DisplayName)
	assert.Len(t, pdf.reqs, 1)
}
