package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/portal-rrhh/internal/application/auth"
	"github.com/jhoicas/portal-rrhh/internal/application/dto"
	"github.com/jhoicas/portal-rrhh/internal/domain"
	"github.com/jhoicas/portal-rrhh/internal/domain/entity"
	"github.com/jhoicas/portal-rrhh/internal/domain/repository"
)

// AccountUseCase administración de cuentas (solo Admin).
type AccountUseCase struct {
	repo      repository.AccountRepository
	passwords auth.PasswordPolicy
}

// NewAccountUseCase construye el caso de uso. passwords nil usa contraseñas en claro.
func NewAccountUseCase(repo repository.AccountRepository, passwords auth.PasswordPolicy) *AccountUseCase {
	if passwords == nil {
		passwords = auth.PlainPasswords{}
	}
	return &AccountUseCase{repo: repo, passwords: passwords}
}

// List todas las cuentas en orden de alta.
func (uc *AccountUseCase) List(ctx context.Context) ([]dto.AccountResponse, error) {
	accounts, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, ToAccountResponse(a))
	}
	return out, nil
}

// EditForm valores para precargar el formulario de edición. La contraseña solo se
// precarga si la política la guarda en claro.
func (uc *AccountUseCase) EditForm(ctx context.Context, id string) (*dto.AccountRequest, error) {
	acc, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrNotFound
	}
	form := &dto.AccountRequest{
		FirstName: acc.FirstName,
		LastName:  acc.LastName,
		Email:     acc.Email,
		Role:      acc.Role,
		Verified:  acc.Verified,
	}
	if uc.passwords.Reveals() {
		form.Password = acc.Password
	}
	return form, nil
}

// Create alta de cuenta. Un fallo solo de guardado devuelve la cuenta junto al error.
func (uc *AccountUseCase) Create(ctx context.Context, in dto.AccountRequest) (*entity.Account, error) {
	if len(in.Password) < auth.MinPasswordLength {
		return nil, domain.ErrWeakPassword
	}
	acc := &entity.Account{ID: entity.NewID()}
	if err := uc.apply(acc, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, acc); err != nil {
		if errors.Is(err, domain.ErrStorage) {
			return acc, err
		}
		return nil, err
	}
	return acc, nil
}

// Update edición de cuenta. Password vacío conserva la actual.
func (uc *AccountUseCase) Update(ctx context.Context, id string, in dto.AccountRequest) (*entity.Account, error) {
	if in.Password != "" && len(in.Password) < auth.MinPasswordLength {
		return nil, domain.ErrWeakPassword
	}
	acc, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.apply(acc, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, acc); err != nil {
		if errors.Is(err, domain.ErrStorage) {
			return acc, err
		}
		return nil, err
	}
	return acc, nil
}

// ResetPassword cambia la contraseña de una cuenta.
func (uc *AccountUseCase) ResetPassword(ctx context.Context, id, password string) error {
	if len(password) < auth.MinPasswordLength {
		return domain.ErrWeakPassword
	}
	acc, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if acc == nil {
		return domain.ErrNotFound
	}
	hash, err := uc.passwords.Hash(password)
	if err != nil {
		return err
	}
	acc.Password = hash
	return uc.repo.Update(ctx, acc)
}

// Delete elimina la cuenta id; la cuenta en sesión (currentID) no puede eliminarse a sí misma.
func (uc *AccountUseCase) Delete(ctx context.Context, currentID, id string) error {
	if currentID != "" && currentID == id {
		return domain.ErrSelfDelete
	}
	return uc.repo.Delete(ctx, id)
}

// VerifyByEmail marca una cuenta como verificada (administración fuera de sesión).
func (uc *AccountUseCase) VerifyByEmail(ctx context.Context, email string) (*entity.Account, error) {
	acc, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrNotFound
	}
	acc.Verified = true
	return acc, uc.repo.Update(ctx, acc)
}

func (uc *AccountUseCase) apply(acc *entity.Account, in dto.AccountRequest) error {
	firstName := strings.TrimSpace(in.FirstName)
	email := entity.NormalizeEmail(in.Email)
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = entity.RoleUser
	}
	switch {
	case firstName == "":
		return domain.NewValidationError("firstName", "First name is required")
	case email == "":
		return domain.NewValidationError("email", "Email is required")
	case !entity.ValidRole(role):
		return domain.NewValidationError("role", "Role must be Admin or User")
	}
	if in.Password != "" {
		hash, err := uc.passwords.Hash(in.Password)
		if err != nil {
			return err
		}
		acc.Password = hash
	}
	acc.FirstName = firstName
	acc.LastName = strings.TrimSpace(in.LastName)
	acc.Email = email
	acc.Role = role
	acc.Verified = in.Verified
	return nil
}

// ToAccountResponse salida pública de una cuenta.
func ToAccountResponse(a *entity.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		DisplayName: a.DisplayName(),
		Email:       a.Email,
		Role:        a.Role,
		Verified:    a.Verified,
	}
}
