// Package xlsx implementa la hoja de empleados (importación y exportación) con excelize.
package xlsx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/portal-rrhh/internal/application/dto"
	"github.com/jhoicas/portal-rrhh/internal/application/report"
	"github.com/jhoicas/portal-rrhh/internal/domain/entity"
)

var _ report.EmployeeSheet = (*EmployeeSheet)(nil)

// SheetName nombre de la hoja exportada.
const SheetName = "Employees"

// Cabeceras de la hoja. La importación localiza las columnas por nombre sin distinguir mayúsculas.
var header = []string{"Employee ID", "User Email", "Name", "Position", "Department ID", "Department", "Hire Date"}

const (
	colEmployeeID   = "employee id"
	colUserEmail    = "user email"
	colPosition     = "position"
	colDepartmentID = "department id"
	colHireDate     = "hire date"
)

// EmployeeSheet libro XLSX de empleados.
type EmployeeSheet struct{}

// NewEmployeeSheet construye el adaptador.
func NewEmployeeSheet() *EmployeeSheet { return &EmployeeSheet{} }

// Write genera un libro con una fila por empleado, tras la cabecera.
func (s *EmployeeSheet) Write(_ context.Context, rows []dto.EmployeeRow) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: cabecera: %w", err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []any{r.EmployeeID, r.UserEmail, r.Name, r.Position, r.DepartmentID, r.DepartmentName, r.HireDate}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, fmt.Errorf("xlsx: fijar cabecera: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

// Read lee la primera hoja del libro. Las filas vacías se ignoran.
func (s *EmployeeSheet) Read(_ context.Context, r io.Reader) ([]report.SheetRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("no es un libro XLSX válido: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no worksheet found")
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("worksheet is empty")
	}

	idx := map[string]int{}
	for i, h := range rows[0] {
		idx[normalizeHeader(h)] = i
	}
	for _, required := range []string{colEmployeeID, colUserEmail, colPosition} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}
	col := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok {
			return ""
		}
		return cellValue(row, i)
	}

	out := make([]report.SheetRow, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		out = append(out, report.SheetRow{
			Line: i + 2,
			Employee: dto.EmployeeRequest{
				EmployeeID:   col(row, colEmployeeID),
				UserEmail:    col(row, colUserEmail),
				Position:     col(row, colPosition),
				DepartmentID: col(row, colDepartmentID),
				HireDate:     normalizeDate(col(row, colHireDate)),
			},
		})
	}
	return out, nil
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// normalizeDate acepta YYYY-MM-DD o un serial de fecha de Excel.
func normalizeDate(v string) string {
	if v == "" {
		return ""
	}
	if serial, err := strconv.ParseFloat(v, 64); err == nil && serial >= 1 && serial <= 2958465 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t.Format(entity.DateLayout)
		}
	}
	return v
}
