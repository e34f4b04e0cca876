package remindersender

import (
	"context"
	"encoding/json"
	"time"

	e "dentalab/internal/core/domain/errors"
	"dentalab/internal/core/domain/reminder"

	"github.com/r3labs/sse/v2"
)

// StreamID is the SSE stream the React app subscribes to for live
// reminder notifications.
const StreamID = "recordatorios"

type SseSender struct {
	sseServer *sse.Server
}

func NewSse(sseServer *sse.Server) *SseSender {
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	sseServer.CreateStream(StreamID)
	return &SseSender{sseServer: sseServer}
}

type sseEvent struct {
	ID        int64     `json:"id"`
	Titulo    string    `json:"titulo"`
	Tipo      string    `json:"tipo"`
	Prioridad string    `json:"prioridad"`
	Fecha     time.Time `json:"fecha_recordatorio"`
}

func (s *SseSender) SendReminder(ctx context.Context, r reminder.Reminder) error {
	data, err := json.Marshal(sseEvent{
		ID:        int64(r.ID),
		Titulo:    r.Title,
		Tipo:      r.Kind.String(),
		Prioridad: r.Priority.String(),
		Fecha:     r.At,
	})
	if err != nil {
		return err
	}
	s.sseServer.Publish(StreamID, &sse.Event{Data: data})
	return nil
}

var _ reminder.Sender = (*SseSender)(nil)
