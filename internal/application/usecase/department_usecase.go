package usecase

import (
	"context"

	"github.com/jhoicas/portal-rrhh/internal/application/dto"
	"github.com/jhoicas/portal-rrhh/internal/domain"
	"github.com/jhoicas/portal-rrhh/internal/domain/repository"
)

// MsgDepartmentsNotImplemented aviso de las acciones de departamento sin implementar.
const MsgDepartmentsNotImplemented = "Department creation not fully implemented in this prototype"

// DepartmentUseCase departamentos: listado real, alta/edición/baja sin implementar.
type DepartmentUseCase struct {
	repo repository.DepartmentRepository
}

// NewDepartmentUseCase construye el caso de uso.
func NewDepartmentUseCase(repo repository.DepartmentRepository) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo}
}

// List departamentos en orden de alta.
func (uc *DepartmentUseCase) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	depts, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepartmentResponse, 0, len(depts))
	for _, d := range depts {
		out = append(out, dto.DepartmentResponse{ID: d.ID, Name: d.Name, Description: d.Description})
	}
	return out, nil
}

// Create sin implementar: no modifica el documento.
func (uc *DepartmentUseCase) Create(context.Context, dto.DepartmentRequest) error {
	return domain.ErrNotImplemented
}

// Update sin implementar.
func (uc *DepartmentUseCase) Update(context.Context, string, dto.DepartmentRequest) error {
	return domain.ErrNotImplemented
}

// Delete sin implementar.
func (uc *DepartmentUseCase) Delete(context.Context, string) error {
	return domain.ErrNotImplemented
}
