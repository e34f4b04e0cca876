package updatereminder

import (
	c "dentalab/internal/core/domain/common"
	e "dentalab/internal/core/domain/errors"
	"dentalab/internal/core/domain/reminder"
	"dentalab/internal/core/services"
	service "dentalab/internal/core/services/update_reminder"
	"dentalab/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
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

// Absent fields are left untouched; do_descripcion_update and
// do_observaciones_update allow clearing those fields to null.
type Input struct {
	Titulo                *string    `json:"titulo"`
	DoDescripcionUpdate   bool       `json:"do_descripcion_update"`
	Descripcion           *string    `json:"descripcion"`
	FechaRecordatorio     *time.Time `json:"fecha_recordatorio"`
	Prioridad             *string    `json:"prioridad"`
	Repetir               *bool      `json:"repetir"`
	Frecuencia            *string    `json:"frecuencia"`
	DoObservacionesUpdate bool       `json:"do_observaciones_update"`
	Observaciones         *string    `json:"observaciones"`
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
		validation.Field(&i.Titulo, validation.Length(1, 256)),
		validation.Field(&i.Descripcion, validation.Length(0, 2048)),
		validation.Field(&i.Observaciones, validation.Length(0, 2048)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawReminderID := chi.URLParam(r, "recordatorioID")
	reminderID, err := strconv.ParseInt(rawReminderID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid reminder ID", http.StatusBadRequest)
		return
	}

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	var title string
	var doTitleUpdate bool
	if input.Titulo != nil {
		doTitleUpdate = true
		title = *input.Titulo
	}

	var description c.Optional[string]
	if input.DoDescripcionUpdate && input.Descripcion != nil {
		description = c.NewOptional(*input.Descripcion, true)
	}

	var at time.Time
	var doAtUpdate bool
	if input.FechaRecordatorio != nil {
		doAtUpdate = true
		at = (*input.FechaRecordatorio).UTC()
	}

	var priority reminder.Priority
	var doPriorityUpdate bool
	if input.Prioridad != nil {
		priority, err = reminder.ParsePriority(*input.Prioridad)
		if err != nil {
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
			return
		}
		doPriorityUpdate = true
	}

	var repeat c.Optional[reminder.Frequency]
	var doRepeatUpdate bool
	if input.Repetir != nil {
		doRepeatUpdate = true
		if *input.Repetir {
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
	}

	var notes c.Optional[string]
	if input.DoObservacionesUpdate && input.Observaciones != nil {
		notes = c.NewOptional(*input.Observaciones, true)
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			ReminderID:          reminder.ID(reminderID),
			DoTitleUpdate:       doTitleUpdate,
			Title:               title,
			DoDescriptionUpdate: input.DoDescripcionUpdate,
			Description:         description,
			DoAtUpdate:          doAtUpdate,
			At:                  at,
			DoPriorityUpdate:    doPriorityUpdate,
			Priority:            priority,
			DoRepeatUpdate:      doRepeatUpdate,
			Repeat:              repeat,
			DoNotesUpdate:       input.DoObservacionesUpdate,
			Notes:               notes,
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, reminder.ErrReminderDoesNotExist):
			response.RenderError(rw, err.Error(), http.StatusNotFound)
		case errors.Is(err, reminder.ErrReminderTitleNotSet):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	rem := response.Reminder{}
	rem.FromDomainType(result.Reminder)
	response.Render(rw, Result{Reminder: rem}, http.StatusOK)
}
