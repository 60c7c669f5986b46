package document

import (
	"context"

	"github.com/jhoicas/portal-rrhh/internal/domain"
	"github.com/jhoicas/portal-rrhh/internal/domain/entity"
	"github.com/jhoicas/portal-rrhh/internal/domain/repository"
)

var _ repository.RequestRepository = (*RequestRepo)(nil)

// RequestRepo implementación del puerto RequestRepository sobre el documento.
type RequestRepo struct {
	db *Database
}

// NewRequestRepository construye el repositorio de solicitudes.
func NewRequestRepository(db *Database) *RequestRepo {
	return &RequestRepo{db: db}
}

func (r *RequestRepo) Create(ctx context.Context, request *entity.Request) error {
	stored := cloneRequest(*request)
	return r.db.write(ctx, func(doc *entity.Document) error {
		doc.Requests = append(doc.Requests, stored)
		return nil
	})
}

func (r *RequestRepo) Update(ctx context.Context, request *entity.Request) error {
	stored := cloneRequest(*request)
	return r.db.write(ctx, func(doc *entity.Document) error {
		for i := range doc.Requests {
			if doc.Requests[i].ID == request.ID {
				doc.Requests[i] = stored
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

func (r *RequestRepo) FindByID(_ context.Context, id string) (*entity.Request, error) {
	var out *entity.Request
	r.db.read(func(doc *entity.Document) {
		for _, req := range doc.Requests {
			if req.ID == id {
				c := cloneRequest(req)
				out = &c
				return
			}
		}
	})
	return out, nil
}

// ListByOwner solicitudes cuyo EmployeeEmail coincide exactamente con email.
func (r *RequestRepo) ListByOwner(_ context.Context, email string) ([]*entity.Request, error) {
	return r.filter(func(req *entity.Request) bool { return req.EmployeeEmail == email }), nil
}

func (r *RequestRepo) List(_ context.Context) ([]*entity.Request, error) {
	return r.filter(func(*entity.Request) bool { return true }), nil
}

func (r *RequestRepo) filter(keep func(*entity.Request) bool) []*entity.Request {
	var list []*entity.Request
	r.db.read(func(doc *entity.Document) {
		list = make([]*entity.Request, 0)
		for _, req := range doc.Requests {
			if keep(&req) {
				c := cloneRequest(req)
				list = append(list, &c)
			}
		}
	})
	return list
}

func cloneRequest(req entity.Request) entity.Request {
	req.Items = append([]entity.RequestItem{}, req.Items...)
	return req
}
