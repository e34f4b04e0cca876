package response

import (
	"dentalab/internal/core/domain/reminder"
	"time"
)

// Reminder is the JSON view consumed by the React back office; field
// names mirror the recordatorios table.
type Reminder struct {
	ID                int64      `json:"id"`
	Titulo            string     `json:"titulo"`
	Descripcion       *string    `json:"descripcion"`
	Tipo              string     `json:"tipo"`
	TipoEntidad       *string    `json:"tipo_entidad"`
	EntidadID         *string    `json:"entidad_id"`
	FechaRecordatorio time.Time  `json:"fecha_recordatorio"`
	Prioridad         string     `json:"prioridad"`
	AdministradorID   *int64     `json:"administrador_id"`
	Estado            string     `json:"estado"`
	Repetir           bool       `json:"repetir"`
	Frecuencia        *string    `json:"frecuencia"`
	Notificado        bool       `json:"notificado"`
	FechaNotificacion *time.Time `json:"fecha_notificacion"`
	Observaciones     *string    `json:"observaciones"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (r *Reminder) FromDomainType(dr reminder.Reminder) {
	r.ID = int64(dr.ID)
	r.Titulo = dr.Title
	if dr.Description.IsPresent {
		r.Descripcion = &dr.Description.Value
	}
	r.Tipo = dr.Kind.String()
	if dr.Entity.IsPresent {
		tipoEntidad := dr.Entity.Value.Kind.String()
		r.TipoEntidad = &tipoEntidad
		r.EntidadID = &dr.Entity.Value.ID
	}
	r.FechaRecordatorio = dr.At
	r.Prioridad = dr.Priority.String()
	if dr.AdminID.IsPresent {
		r.AdministradorID = &dr.AdminID.Value
	}
	r.Estado = dr.Status.String()
	r.Repetir = dr.Repeat.IsPresent
	if dr.Repeat.IsPresent {
		frecuencia := dr.Repeat.Value.String()
		r.Frecuencia = &frecuencia
	}
	r.Notificado = dr.Notified
	if dr.NotifiedAt.IsPresent {
		r.FechaNotificacion = &dr.NotifiedAt.Value
	}
	if dr.Notes.IsPresent {
		r.Observaciones = &dr.Notes.Value
	}
	r.CreatedAt = dr.CreatedAt
	r.UpdatedAt = dr.UpdatedAt
}

func NewReminders(domainReminders []reminder.Reminder) []Reminder {
	reminders := make([]Reminder, 0, len(domainReminders))
	for _, dr := range domainReminders {
		rem := Reminder{}
		rem.FromDomainType(dr)
		reminders = append(reminders, rem)
	}
	return reminders
}
