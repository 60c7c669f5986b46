package document

import (
	"context"

	"github.com/jhoicas/portal-rrhh/internal/domain"
	"github.com/jhoicas/portal-rrhh/internal/domain/entity"
	"github.com/jhoicas/portal-rrhh/internal/domain/repository"
)

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)

// DepartmentRepo implementación del puerto DepartmentRepository sobre el documento.
type DepartmentRepo struct {
	db *Database
}

// NewDepartmentRepository construye el repositorio de departamentos.
func NewDepartmentRepository(db *Database) *DepartmentRepo {
	return &DepartmentRepo{db: db}
}

func (r *DepartmentRepo) Create(ctx context.Context, department *entity.Department) error {
	return r.db.write(ctx, func(doc *entity.Document) error {
		doc.Departments = append(doc.Departments, *department)
		return nil
	})
}

func (r *DepartmentRepo) Update(ctx context.Context, department *entity.Department) error {
	return r.db.write(ctx, func(doc *entity.Document) error {
		for i := range doc.Departments {
			if doc.Departments[i].ID == department.ID {
				doc.Departments[i] = *department
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

func (r *DepartmentRepo) Delete(ctx context.Context, id string) error {
	return r.db.write(ctx, func(doc *entity.Document) error {
		for i := range doc.Departments {
			if doc.Departments[i].ID == id {
				doc.Departments = append(doc.Departments[:i], doc.Departments[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

func (r *DepartmentRepo) FindByID(_ context.Context, id string) (*entity.Department, error) {
	var out *entity.Department
	r.db.read(func(doc *entity.Document) {
		for _, d := range doc.Departments {
			if d.ID == id {
				d := d
				out = &d
				return
			}
		}
	})
	return out, nil
}

func (r *DepartmentRepo) List(_ context.Context) ([]*entity.Department, error) {
	var list []*entity.Department
	r.db.read(func(doc *entity.Document) {
		list = make([]*entity.Department, 0, len(doc.Departments))
		for _, d := range doc.Departments {
			d := d
			list = append(list, &d)
		}
	})
	return list, nil
}
