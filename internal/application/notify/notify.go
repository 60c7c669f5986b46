// Package notify define las notificaciones efímeras (toasts) que la interfaz muestra al usuario.
package notify

// Severity nivel visual de una notificación.
type Severity string

const (
	Success Severity = "success"
	Info    Severity = "info"
	Warning Severity = "warning"
	Danger  Severity = "danger"
)

// Valid indica si s es una severidad conocida.
func (s Severity) Valid() bool {
	switch s {
	case Success, Info, Warning, Danger:
		return true
	}
	return false
}

// Message notificación pendiente de mostrar.
type Message struct {
	Text     string   `json:"text"`
	Severity Severity `json:"severity"`
}

// Notifier recibe notificaciones sin esperar respuesta.
type Notifier interface {
	Notify(text string, severity Severity)
}

// Discard Notifier que ignora todo.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Notify(string, Severity) {}
