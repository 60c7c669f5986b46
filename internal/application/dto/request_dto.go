package dto

// RequestItemInput línea de una solicitud tal como llega del formulario.
type RequestItemInput struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// CreateRequestRequest nueva solicitud.
type CreateRequestRequest struct {
	Type  string             `json:"type"`
	Items []RequestItemInput `json:"items"`
}

// RequestResponse salida de una solicitud.
type RequestResponse struct {
	ID            string             `json:"id"`
	Type          string             `json:"type"`
	Items         []RequestItemInput `json:"items"`
	ItemsSummary  string             `json:"itemsSummary"` // "Laptop (1), Mouse (2)"
	Status        string             `json:"status"`
	StatusClass   string             `json:"statusClass"`
	Date          string             `json:"date"`
	EmployeeEmail string             `json:"employeeEmail"`
}
