package schema

import (
	"encoding/json"
	"time"
)

// Reminder is the dispatch-queue message body. It carries everything the
// notifier needs to build the outgoing email/WhatsApp text without a
// database round trip.
type Reminder struct {
	ID          int64     `json:"id"`
	Titulo      string    `json:"titulo"`
	Descripcion string    `json:"descripcion,omitempty"`
	Tipo        string    `json:"tipo"`
	Prioridad   string    `json:"prioridad"`
	Fecha       time.Time `json:"fecha_recordatorio"`
}

func (r *Reminder) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func (r *Reminder) Unmarshal(data []byte) error {
	return json.Unmarshal(data, r)
}
