package createreminder

import (
	c "dentalab/internal/core/domain/common"
	e "dentalab/internal/core/domain/errors"
	"dentalab/internal/core/domain/reminder"
	"dentalab/internal/core/services"
	service "dentalab/internal/core/services/create_reminder"
	"dentalab/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Titulo            string    `json:"titulo"`
	Descripcion       *string   `json:"descripcion"`
	Tipo              string    `json:"tipo"`
	TipoEntidad       *string   `json:"tipo_entidad"`
	EntidadID         *string   `json:"entidad_id"`
	FechaRecordatorio time.Time `json:"fecha_recordatorio"`
	Prioridad         *string   `json:"prioridad"`
	AdministradorID   *int64    `json:"administrador_id"`
	Repetir           bool      `json:"repetir"`
	Frecuencia        *string   `json:"frecuencia"`
	Observaciones     *string   `json:"observaciones"`
}

type Result struct {
	Reminder response.Reminder `json:"recordatorio"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Titulo, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Descripcion, validation.Length(0, 2048)),
		validation.Field(&i.Tipo, validation.Required),
		validation.Field(&i.FechaRecordatorio, validation.Required),
		validation.Field(&i.Observaciones, validation.Length(0, 2048)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	kind, err := reminder.ParseKind(input.Tipo)
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}

	var priority reminder.Priority
	if input.Prioridad != nil {
		priority, err = reminder.ParsePriority(*input.Prioridad)
		if err != nil {
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
			return
		}
	}

	var entity c.Optional[reminder.EntityRef]
	if input.TipoEntidad != nil {
		entityKind, err := reminder.ParseEntityKind(*input.TipoEntidad)
		if err != nil {
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
			return
		}
		if input.EntidadID == nil {
			response.RenderError(rw, "entidad_id must be set together with tipo_entidad", http.StatusBadRequest)
			return
		}
		entity = c.NewOptional(reminder.EntityRef{Kind: entityKind, ID: *input.EntidadID}, true)
	}

	var repeat c.Optional[reminder.Frequency]
	if input.Repetir {
		if input.Frecuencia == nil {
			response.RenderError(rw, reminder.ErrFrequencyNotSet.Error(), http.StatusBadRequest)
			return
		}
		frequency, err := reminder.ParseFrequency(*input.Frecuencia)
		if err != nil {
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
			return
		}
		repeat = c.NewOptional(frequency, true)
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			Title:       input.Titulo,
			Description: optionalString(input.Descripcion),
			Kind:        kind,
			Entity:      entity,
			At:          input.FechaRecordatorio.UTC(),
			Priority:    priority,
			AdminID:     optionalInt64(input.AdministradorID),
			Repeat:      repeat,
			Notes:       optionalString(input.Observaciones),
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, reminder.ErrReminderTitleNotSet):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	rem := response.Reminder{}
	rem.FromDomainType(result.Reminder)
	response.Render(rw, Result{Reminder: rem}, http.StatusCreated)
}

func optionalString(v *string) (result c.Optional[string]) {
	if v == nil {
		return result
	}
	return c.NewOptional(*v, true)
}

func optionalInt64(v *int64) (result c.Optional[int64]) {
	if v == nil {
		return result
	}
	return c.NewOptional(*v, true)
}
