package dto

// EmployeeRequest alta o edición de empleado.
type EmployeeRequest struct {
	EmployeeID   string `json:"employeeId" form:"employeeId"`
	UserEmail    string `json:"userEmail" form:"userEmail"`
	Position     string `json:"position" form:"position"`
	DepartmentID string `json:"departmentId" form:"departmentId"`
	HireDate     string `json:"hireDate" form:"hireDate"`
}

// EmployeeRow empleado unido con el nombre de su cuenta y de su departamento.
type EmployeeRow struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employeeId"`
	UserEmail      string `json:"userEmail"`
	Name           string `json:"name"`
	Position       string `json:"position"`
	DepartmentID   string `json:"departmentId"`
	DepartmentName string `json:"departmentName"`
	HireDate       string `json:"hireDate"`
}

// ImportResult resumen de una importación de empleados.
type ImportResult struct {
	Created int          `json:"created"`
	Updated int          `json:"updated"`
	Skipped []ImportSkip `json:"skipped"`
}

// ImportSkip fila descartada y motivo. Row cuenta desde 1 incluyendo la cabecera.
type ImportSkip struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// DepartmentResponse salida de un departamento.
type DepartmentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DepartmentRequest alta o edición de departamento.
type DepartmentRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}
