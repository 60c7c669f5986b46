package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jhoicas/portal-rrhh/internal/application/dto"
	"github.com/jhoicas/portal-rrhh/internal/application/report"
	"github.com/jhoicas/portal-rrhh/internal/domain"
	"github.com/jhoicas/portal-rrhh/internal/domain/entity"
	"github.com/jhoicas/portal-rrhh/internal/domain/repository"
)

// MsgUnknownUserEmail aviso cuando el email del empleado no corresponde a ninguna cuenta.
const MsgUnknownUserEmail = "User email not found in accounts"

// DepartmentFallback nombre mostrado cuando el departamento no existe.
const DepartmentFallback = "N/A"

// EmployeeUseCase gestión de empleados (solo Admin).
type EmployeeUseCase struct {
	employees   repository.EmployeeRepository
	accounts    repository.AccountRepository
	departments repository.DepartmentRepository
	sheet       report.EmployeeSheet
}

// NewEmployeeUseCase construye el caso de uso. sheet puede ser nil si no se usa Import/Export.
func NewEmployeeUseCase(
	employees repository.EmployeeRepository,
	accounts repository.AccountRepository,
	departments repository.DepartmentRepository,
	sheet report.EmployeeSheet,
) *EmployeeUseCase {
	return &EmployeeUseCase{employees: employees, accounts: accounts, departments: departments, sheet: sheet}
}

// List empleados unidos con el nombre de la cuenta (o su email) y del departamento (o N/A).
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeRow, error) {
	employees, err := uc.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.EmployeeRow, 0, len(employees))
	for _, e := range employees {
		row, err := uc.join(ctx, e)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ForAccount fichas de empleado de la cuenta con ese email, unidas igual que List.
func (uc *EmployeeUseCase) ForAccount(ctx context.Context, email string) ([]dto.EmployeeRow, error) {
	employees, err := uc.employees.ListByUserEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.EmployeeRow, 0, len(employees))
	for _, e := range employees {
		row, err := uc.join(ctx, e)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (uc *EmployeeUseCase) join(ctx context.Context, e *entity.Employee) (dto.EmployeeRow, error) {
	row := dto.EmployeeRow{
		ID:             e.ID,
		EmployeeID:     e.EmployeeID,
		UserEmail:      e.UserEmail,
		Name:           e.UserEmail,
		Position:       e.Position,
		DepartmentID:   e.DepartmentID,
		DepartmentName: DepartmentFallback,
		HireDate:       e.HireDate,
	}
	acc, err := uc.accounts.FindByEmail(ctx, e.UserEmail)
	if err != nil {
		return row, err
	}
	if acc != nil {
		row.Name = acc.DisplayName()
	}
	if e.DepartmentID != "" {
		dept, err := uc.departments.FindByID(ctx, e.DepartmentID)
		if err != nil {
			return row, err
		}
		if dept != nil {
			row.DepartmentName = dept.Name
		}
	}
	return row, nil
}

// EditForm valores para precargar el formulario de edición.
func (uc *EmployeeUseCase) EditForm(ctx context.Context, id string) (*dto.EmployeeRequest, error) {
	e, err := uc.employees.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.EmployeeRequest{
		EmployeeID:   e.EmployeeID,
		UserEmail:    e.UserEmail,
		Position:     e.Position,
		DepartmentID: e.DepartmentID,
		HireDate:     e.HireDate,
	}, nil
}

// Create alta de empleado. userEmail debe corresponder a una cuenta existente.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.EmployeeRequest) (*entity.Employee, error) {
	e := &entity.Employee{ID: entity.NewID()}
	if err := uc.apply(ctx, e, in); err != nil {
		return nil, err
	}
	if err := uc.employees.Create(ctx, e); err != nil {
		return storageTolerant(e, err)
	}
	return e, nil
}

// Update edición de empleado.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.EmployeeRequest) (*entity.Employee, error) {
	e, err := uc.employees.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.apply(ctx, e, in); err != nil {
		return nil, err
	}
	if err := uc.employees.Update(ctx, e); err != nil {
		return storageTolerant(e, err)
	}
	return e, nil
}

// Delete baja de empleado.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	return uc.employees.Delete(ctx, id)
}

// Export libro XLSX con el listado unido.
func (uc *EmployeeUseCase) Export(ctx context.Context) ([]byte, error) {
	if uc.sheet == nil {
		return nil, domain.ErrNotImplemented
	}
	rows, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.sheet.Write(ctx, rows)
}

// Import alta o actualización (por employeeId) de las filas de un libro XLSX. Las filas
// inválidas se descartan y se informan en el resultado. Si algún guardado falla se sigue
// con el resto y se devuelve el último error de almacenamiento junto al resultado.
func (uc *EmployeeUseCase) Import(ctx context.Context, r io.Reader) (*dto.ImportResult, error) {
	if uc.sheet == nil {
		return nil, domain.ErrNotImplemented
	}
	rows, err := uc.sheet.Read(ctx, r)
	if err != nil {
		return nil, domain.NewValidationError("file", err.Error())
	}

	result := &dto.ImportResult{Skipped: []dto.ImportSkip{}}
	var storageErr error
	for _, row := range rows {
		existing, err := uc.findByEmployeeID(ctx, strings.TrimSpace(row.Employee.EmployeeID))
		if err != nil {
			return result, err
		}
		if existing != nil {
			_, err = uc.Update(ctx, existing.ID, row.Employee)
		} else {
			_, err = uc.Create(ctx, row.Employee)
		}
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			result.Skipped = append(result.Skipped, dto.ImportSkip{Row: row.Line, Reason: vErr.Error()})
			continue
		case errors.Is(err, domain.ErrStorage):
			storageErr = err
		case err != nil:
			return result, fmt.Errorf("importar fila %d: %w", row.Line, err)
		}
		if existing != nil {
			result.Updated++
		} else {
			result.Created++
		}
	}
	return result, storageErr
}

func (uc *EmployeeUseCase) findByEmployeeID(ctx context.Context, code string) (*entity.Employee, error) {
	if code == "" {
		return nil, nil
	}
	all, err := uc.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range all {
		if e.EmployeeID == code {
			return e, nil
		}
	}
	return nil, nil
}

func (uc *EmployeeUseCase) apply(ctx context.Context, e *entity.Employee, in dto.EmployeeRequest) error {
	employeeID := strings.TrimSpace(in.EmployeeID)
	userEmail := entity.NormalizeEmail(in.UserEmail)
	position := strings.TrimSpace(in.Position)
	hireDate := strings.TrimSpace(in.HireDate)
	switch {
	case employeeID == "":
		return domain.NewValidationError("employeeId", "Employee ID is required")
	case userEmail == "":
		return domain.NewValidationError("userEmail", "User email is required")
	case position == "":
		return domain.NewValidationError("position", "Position is required")
	}
	if hireDate != "" {
		if _, err := time.Parse(entity.DateLayout, hireDate); err != nil {
			return domain.NewValidationError("hireDate", "Hire date must be YYYY-MM-DD")
		}
	}
	acc, err := uc.accounts.FindByEmail(ctx, userEmail)
	if err != nil {
		return err
	}
	if acc == nil {
		return domain.NewValidationError("userEmail", MsgUnknownUserEmail)
	}

	e.EmployeeID = employeeID
	e.UserEmail = userEmail
	e.Position = position
	e.DepartmentID = strings.TrimSpace(in.DepartmentID)
	e.HireDate = hireDate
	return nil
}

// storageTolerant devuelve v junto al error cuando solo falló el guardado del documento.
func storageTolerant[T any](v *T, err error) (*T, error) {
	if errors.Is(err, domain.ErrStorage) {
		return v, err
	}
	return nil, err
}
