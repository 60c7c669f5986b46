package entity

// Estados de una solicitud.
const (
	RequestPending  = "Pending"
	RequestApproved = "Approved"
	RequestRejected = "Rejected"
)

// Tipos de solicitud ofrecidos en el formulario.
var RequestTypes = []string{"Equipment", "Leave", "Resources"}

// DateLayout formato de fecha usado en solicitudes y contrataciones.
const DateLayout = "2006-01-02"

// RequestItem línea de una solicitud.
type RequestItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// Request solicitud creada por un usuario autenticado (EmployeeEmail es el dueño).
type Request struct {
	ID            string        `json:"id"`
	Type          string        `json:"type"`
	Items         []RequestItem `json:"items"`
	Status        string        `json:"status"`
	Date          string        `json:"date"`
	EmployeeEmail string        `json:"employeeEmail"`
}

// StatusClass clase de badge según el estado.
func (r *Request) StatusClass() string {
	switch r.Status {
	case RequestApproved:
		return "success"
	case RequestRejected:
		return "danger"
	default:
		return "warning"
	}
}
