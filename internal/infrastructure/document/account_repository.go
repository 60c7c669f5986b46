package document

import (
	"context"

	"github.com/jhoicas/portal-rrhh/internal/domain"
	"github.com/jhoicas/portal-rrhh/internal/domain/entity"
	"github.com/jhoicas/portal-rrhh/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre el documento.
type AccountRepo struct {
	db *Database
}

// NewAccountRepository construye el repositorio de cuentas.
func NewAccountRepository(db *Database) *AccountRepo {
	return &AccountRepo{db: db}
}

// Create inserta la cuenta al final. La unicidad del email se comprueba bajo el mismo lock.
func (r *AccountRepo) Create(ctx context.Context, account *entity.Account) error {
	account.Email = entity.NormalizeEmail(account.Email)
	return r.db.write(ctx, func(doc *entity.Document) error {
		if indexAccountByEmail(doc, account.Email, "") >= 0 {
			return domain.ErrDuplicateEmail
		}
		doc.Accounts = append(doc.Accounts, *account)
		return nil
	})
}

// Update reemplaza la cuenta con el mismo ID. Falla si otro ID ya usa el email.
func (r *AccountRepo) Update(ctx context.Context, account *entity.Account) error {
	account.Email = entity.NormalizeEmail(account.Email)
	return r.db.write(ctx, func(doc *entity.Document) error {
		i := indexAccountByID(doc, account.ID)
		if i < 0 {
			return domain.ErrNotFound
		}
		if indexAccountByEmail(doc, account.Email, account.ID) >= 0 {
			return domain.ErrDuplicateEmail
		}
		doc.Accounts[i] = *account
		return nil
	})
}

// Delete elimina la cuenta por ID.
func (r *AccountRepo) Delete(ctx context.Context, id string) error {
	return r.db.write(ctx, func(doc *entity.Document) error {
		i := indexAccountByID(doc, id)
		if i < 0 {
			return domain.ErrNotFound
		}
		doc.Accounts = append(doc.Accounts[:i], doc.Accounts[i+1:]...)
		return nil
	})
}

// FindByID busca por ID; (nil, nil) si no existe.
func (r *AccountRepo) FindByID(_ context.Context, id string) (*entity.Account, error) {
	var out *entity.Account
	r.db.read(func(doc *entity.Document) {
		if i := indexAccountByID(doc, id); i >= 0 {
			a := doc.Accounts[i]
			out = &a
		}
	})
	return out, nil
}

// FindByEmail busca por email normalizado; (nil, nil) si no existe.
func (r *AccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	email = entity.NormalizeEmail(email)
	var out *entity.Account
	r.db.read(func(doc *entity.Document) {
		if i := indexAccountByEmail(doc, email, ""); i >= 0 {
			a := doc.Accounts[i]
			out = &a
		}
	})
	return out, nil
}

// List devuelve las cuentas en orden de inserción.
func (r *AccountRepo) List(_ context.Context) ([]*entity.Account, error) {
	var list []*entity.Account
	r.db.read(func(doc *entity.Document) {
		list = make([]*entity.Account, 0, len(doc.Accounts))
		for _, a := range doc.Accounts {
			a := a
			list = append(list, &a)
		}
	})
	return list, nil
}

func indexAccountByID(doc *entity.Document, id string) int {
	for i := range doc.Accounts {
		if doc.Accounts[i].ID == id {
			return i
		}
	}
	return -1
}

// indexAccountByEmail ignora la cuenta exceptID (para Update).
func indexAccountByEmail(doc *entity.Document, email, exceptID string) int {
	for i := range doc.Accounts {
		if doc.Accounts[i].Email == email && doc.Accounts[i].ID != exceptID {
			return i
		}
	}
	return -1
}
