package repository

import (
	"context"

	"github.com/jhoicas/portal-rrhh/internal/domain/entity"
)

// RequestRepository define el puerto de persistencia para Request.
type RequestRepository interface {
	Create(ctx context.Context, request *entity.Request) error
	Update(ctx context.Context, request *entity.Request) error
	FindByID(ctx context.Context, id string) (*entity.Request, error)
	ListByOwner(ctx context.Context, email string) ([]*entity.Request, error)
	List(ctx context.Context) ([]*entity.Request, error)
}
