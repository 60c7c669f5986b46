package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/portal-rrhh/internal/application/dto"
	"github.com/jhoicas/portal-rrhh/internal/application/report"
	"github.com/jhoicas/portal-rrhh/internal/domain"
	"github.com/jhoicas/portal-rrhh/internal/domain/entity"
	"github.com/jhoicas/portal-rrhh/internal/domain/repository"
)

// MsgNoItems aviso cuando la solicitud no tiene ninguna línea válida.
const MsgNoItems = "Please add at least one item"

// RequestTypes tipos ofrecidos en el formulario de solicitud.
var RequestTypes = []string{"Equipment", "Supplies", "Leave", "Other"}

// RequestUseCase solicitudes de la cuenta en sesión.
type RequestUseCase struct {
	repo repository.RequestRepository
	pdf  report.RequestsPDF
	now  func() time.Time
}

// NewRequestUseCase construye el caso de uso. pdf puede ser nil si no se usa ExportPDF.
func NewRequestUseCase(repo repository.RequestRepository, pdf report.RequestsPDF) *RequestUseCase {
	return &RequestUseCase{repo: repo, pdf: pdf, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *RequestUseCase) WithClock(now func() time.Time) *RequestUseCase {
	uc.now = now
	return uc
}

// Create nueva solicitud Pending con la fecha UTC de hoy. Las líneas sin nombre o con
// cantidad <= 0 se descartan; si no queda ninguna es un error de validación.
func (uc *RequestUseCase) Create(ctx context.Context, ownerEmail string, in dto.CreateRequestRequest) (*dto.RequestResponse, error) {
	reqType := strings.TrimSpace(in.Type)
	if reqType == "" {
		return nil, domain.NewValidationError("type", "Request type is required")
	}
	items := make([]entity.RequestItem, 0, len(in.Items))
	for _, it := range in.Items {
		name := strings.TrimSpace(it.Name)
		if name == "" || it.Qty <= 0 {
			continue
		}
		items = append(items, entity.RequestItem{Name: name, Qty: it.Qty})
	}
	if len(items) == 0 {
		return nil, domain.NewValidationError("items", MsgNoItems)
	}

	req := &entity.Request{
		ID:            entity.NewID(),
		Type:          reqType,
		Items:         items,
		Status:        entity.RequestPending,
		Date:          uc.now().UTC().Format(entity.DateLayout),
		EmployeeEmail: entity.NormalizeEmail(ownerEmail),
	}
	if err := uc.repo.Create(ctx, req); err != nil {
		return storageTolerant(ToRequestResponse(req), err)
	}
	return ToRequestResponse(req), nil
}

// ListMine solicitudes cuyo dueño es email.
func (uc *RequestUseCase) ListMine(ctx context.Context, email string) ([]dto.RequestResponse, error) {
	reqs, err := uc.repo.ListByOwner(ctx, entity.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	out := make([]dto.RequestResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, *ToRequestResponse(r))
	}
	return out, nil
}

// Approve sin implementar: el estado no cambia.
func (uc *RequestUseCase) Approve(context.Context, string) error {
	return domain.ErrNotImplemented
}

// Reject sin implementar.
func (uc *RequestUseCase) Reject(context.Context, string) error {
	return domain.ErrNotImplemented
}

// ExportPDF listado de solicitudes de owner en PDF.
func (uc *RequestUseCase) ExportPDF(ctx context.Context, owner *entity.Account) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.ErrNotImplemented
	}
	mine, err := uc.ListMine(ctx, owner.Email)
	if err != nil {
		return nil, err
	}
	return uc.pdf.Render(ctx, ToAccountResponse(owner), mine, uc.now())
}

// ToRequestResponse salida de una solicitud con el resumen de líneas y la clase del estado.
func ToRequestResponse(r *entity.Request) *dto.RequestResponse {
	items := make([]dto.RequestItemInput, 0, len(r.Items))
	parts := make([]string, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, dto.RequestItemInput{Name: it.Name, Qty: it.Qty})
		parts = append(parts, fmt.Sprintf("%s (%d)", it.Name, it.Qty))
	}
	return &dto.RequestResponse{
		ID:            r.ID,
		Type:          r.Type,
		Items:         items,
		ItemsSummary:  strings.Join(parts, ", "),
		Status:        r.Status,
		StatusClass:   r.StatusClass(),
		Date:          r.Date,
		EmployeeEmail: r.EmployeeEmail,
	}
}
