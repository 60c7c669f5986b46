package repository

import (
	"context"

	"github.com/jhoicas/portal-rrhh/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*entity.Employee, error)
	ListByUserEmail(ctx context.Context, email string) ([]*entity.Employee, error)
	List(ctx context.Context) ([]*entity.Employee, error)
}
