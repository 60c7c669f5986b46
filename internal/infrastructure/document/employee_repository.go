package document

import (
	"context"

	"github.com/jhoicas/portal-rrhh/internal/domain"
	"github.com/jhoicas/portal-rrhh/internal/domain/entity"
	"github.com/jhoicas/portal-rrhh/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre el documento.
// La referencia UserEmail -> Account la valida el caso de uso, no el repositorio.
type EmployeeRepo struct {
	db *Database
}

// NewEmployeeRepository construye el repositorio de empleados.
func NewEmployeeRepository(db *Database) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

func (r *EmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	employee.UserEmail = entity.NormalizeEmail(employee.UserEmail)
	return r.db.write(ctx, func(doc *entity.Document) error {
		doc.Employees = append(doc.Employees, *employee)
		return nil
	})
}

func (r *EmployeeRepo) Update(ctx context.Context, employee *entity.Employee) error {
	employee.UserEmail = entity.NormalizeEmail(employee.UserEmail)
	return r.db.write(ctx, func(doc *entity.Document) error {
		for i := range doc.Employees {
			if doc.Employees[i].ID == employee.ID {
				doc.Employees[i] = *employee
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	return r.db.write(ctx, func(doc *entity.Document) error {
		for i := range doc.Employees {
			if doc.Employees[i].ID == id {
				doc.Employees = append(doc.Employees[:i], doc.Employees[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

func (r *EmployeeRepo) FindByID(_ context.Context, id string) (*entity.Employee, error) {
	var out *entity.Employee
	r.db.read(func(doc *entity.Document) {
		for _, e := range doc.Employees {
			if e.ID == id {
				e := e
				out = &e
				return
			}
		}
	})
	return out, nil
}

// ListByUserEmail fichas de empleado enlazadas a la cuenta email.
func (r *EmployeeRepo) ListByUserEmail(_ context.Context, email string) ([]*entity.Employee, error) {
	email = entity.NormalizeEmail(email)
	return r.filter(func(e *entity.Employee) bool { return e.UserEmail == email }), nil
}

func (r *EmployeeRepo) List(_ context.Context) ([]*entity.Employee, error) {
	return r.filter(func(*entity.Employee) bool { return true }), nil
}

func (r *EmployeeRepo) filter(keep func(*entity.Employee) bool) []*entity.Employee {
	var list []*entity.Employee
	r.db.read(func(doc *entity.Document) {
		list = make([]*entity.Employee, 0, len(doc.Employees))
		for _, e := range doc.Employees {
			e := e
			if keep(&e) {
				list = append(list, &e)
			}
		}
	})
	return list
}
