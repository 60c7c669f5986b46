package entity

// Employee vincula una cuenta (UserEmail) con datos laborales.
// DepartmentID no se valida contra los departamentos existentes.
type Employee struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	UserEmail    string `json:"userEmail"`
	Position     string `json:"position"`
	DepartmentID string `json:"departmentId"`
	HireDate     string `json:"hireDate"` // YYYY-MM-DD
}
