package repository

import (
	"context"

	"github.com/jhoicas/portal-rrhh/internal/domain/entity"
)

// DepartmentRepository define el puerto de persistencia para Department.
type DepartmentRepository interface {
	Create(ctx context.Context, department *entity.Department) error
	Update(ctx context.Context, department *entity.Department) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*entity.Department, error)
	List(ctx context.Context) ([]*entity.Department, error)
}
