package http

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/portal-rrhh/internal/application/notify"
	"github.com/jhoicas/portal-rrhh/internal/domain/repository"
	"github.com/jhoicas/portal-rrhh/pkg/logger"
)

// KeyFlash clave del almacenamiento del cliente con las notificaciones pendientes.
const KeyFlash = "flash"

// FlashNotifier acumula notificaciones en el almacenamiento del cliente hasta la
// siguiente página renderizada.
type FlashNotifier struct {
	ctx   context.Context
	store repository.KeyValueStore
	log   *logger.Logger
}

// NewFlashNotifier construye el notifier sobre store.
func NewFlashNotifier(ctx context.Context, store repository.KeyValueStore, log *logger.Logger) *FlashNotifier {
	return &FlashNotifier{ctx: ctx, store: store, log: log}
}

// Notify agrega un mensaje; los fallos solo se registran.
func (n *FlashNotifier) Notify(text string, severity notify.Severity) {
	if !severity.Valid() {
		severity = notify.Info
	}
	msgs := n.read()
	msgs = append(msgs, notify.Message{Text: text, Severity: severity})
	data, err := json.Marshal(msgs)
	if err == nil {
		err = n.store.Set(n.ctx, KeyFlash, string(data))
	}
	if err != nil {
		n.log.Warn().Err(err).Str("text", text).Msg("no se pudo guardar la notificación")
	}
}

// Take devuelve los mensajes pendientes y los borra.
func (n *FlashNotifier) Take() []notify.Message {
	msgs := n.read()
	if len(msgs) > 0 {
		if err := n.store.Delete(n.ctx, KeyFlash); err != nil {
			n.log.Warn().Err(err).Msg("no se pudieron borrar las notificaciones")
		}
	}
	return msgs
}

func (n *FlashNotifier) read() []notify.Message {
	raw, found, err := n.store.Get(n.ctx, KeyFlash)
	if err != nil || !found {
		return nil
	}
	var msgs []notify.Message
	if err := json.Unmarshal([]byte(raw), &msgs); err != nil {
		return nil
	}
	return msgs
}
