package repository

import (
	"context"

	"github.com/jhoicas/portal-rrhh/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para Account.
// Create y Update validan la unicidad del email y devuelven domain.ErrDuplicateEmail.
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	Update(ctx context.Context, account *entity.Account) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*entity.Account, error)
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	List(ctx context.Context) ([]*entity.Account, error)
}
