// Package report define los puertos de exportación e importación de documentos (XLSX, PDF).
package report

import (
	"context"
	"io"
	"time"

	"github.com/jhoicas/portal-rrhh/internal/application/dto"
)

// SheetRow fila leída de una hoja de empleados. Line es el número de fila en la hoja.
type SheetRow struct {
	Line     int
	Employee dto.EmployeeRequest
}

// EmployeeSheet lee y escribe el libro de empleados.
type EmployeeSheet interface {
	Write(ctx context.Context, rows []dto.EmployeeRow) ([]byte, error)
	Read(ctx context.Context, r io.Reader) ([]SheetRow, error)
}

// RequestsPDF genera el listado de solicitudes de una cuenta en PDF.
type RequestsPDF interface {
	Render(ctx context.Context, owner dto.AccountResponse, requests []dto.RequestResponse, generatedAt time.Time) ([]byte, error)
}
