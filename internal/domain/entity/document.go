package entity

// Document agregado raíz persistido completo en cada mutación.
type Document struct {
	Accounts    []Account    `json:"accounts"`
	Departments []Department `json:"departments"`
	Employees   []Employee   `json:"employees"`
	Requests    []Request    `json:"requests"`
}

// Normalize reemplaza colecciones nil por slices vacíos para serializar siempre arrays.
func (d *Document) Normalize() {
	if d.Accounts == nil {
		d.Accounts = []Account{}
	}
	if d.Departments == nil {
		d.Departments = []Department{}
	}
	if d.Employees == nil {
		d.Employees = []Employee{}
	}
	if d.Requests == nil {
		d.Requests = []Request{}
	}
	for i := range d.Requests {
		if d.Requests[i].Items == nil {
			d.Requests[i].Items = []RequestItem{}
		}
	}
}

// Clone copia profunda del documento.
func (d *Document) Clone() *Document {
	out := &Document{
		Accounts:    append([]Account(nil), d.Accounts...),
		Departments: append([]Department(nil), d.Departments...),
		Employees:   append([]Employee(nil), d.Employees...),
		Requests:    make([]Request, len(d.Requests)),
	}
	for i, r := range d.Requests {
		r.Items = append([]RequestItem(nil), r.Items...)
		out.Requests[i] = r
	}
	out.Normalize()
	return out
}
