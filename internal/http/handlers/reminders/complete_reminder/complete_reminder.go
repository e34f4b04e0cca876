package completereminder

import (
	e "dentalab/internal/core/domain/errors"
	"dentalab/internal/core/domain/reminder"
	"dentalab/internal/core/services"
	service "dentalab/internal/core/services/complete_reminder"
	"dentalab/internal/http/handlers/response"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
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

type Result struct {
	Reminder response.Reminder `json:"recordatorio"`
	// NextReminder carries the successor occurrence spawned by completing
	// a repeating reminder.
	NextReminder *response.Reminder `json:"siguiente_recordatorio,omitempty"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawReminderID := chi.URLParam(r, "recordatorioID")
	reminderID, err := strconv.ParseInt(rawReminderID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid reminder ID", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{ReminderID: reminder.ID(reminderID)})
	if err != nil {
		switch {
		case errors.Is(err, reminder.ErrReminderDoesNotExist):
			response.RenderError(rw, err.Error(), http.StatusNotFound)
		case errors.Is(err, reminder.ErrReminderNotActive):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	rem := response.Reminder{}
	rem.FromDomainType(result.Reminder)
	res := Result{Reminder: rem}
	if result.NextReminder != nil {
		next := response.Reminder{}
		next.FromDomainType(*result.NextReminder)
		res.NextReminder = &next
	}
	response.Render(rw, res, http.StatusOK)
}
