package pendingreminders

import (
	c "dentalab/internal/core/domain/common"
	e "dentalab/internal/core/domain/errors"
	"dentalab/internal/core/services"
	service "dentalab/internal/core/services/get_pending_reminders"
	"dentalab/internal/http/handlers/response"
	"net/http"
	"strconv"
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
	Reminders []response.Reminder `json:"recordatorios"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawAdminID := r.URL.Query().Get("administrador_id")
	var visibleTo c.Optional[int64]
	if rawAdminID != "" {
		adminID, err := strconv.ParseInt(rawAdminID, 10, 64)
		if err != nil {
			response.RenderError(rw, "invalid administrador_id query parameter", http.StatusBadRequest)
			return
		}
		visibleTo = c.NewOptional(adminID, true)
	}

	result, err := h.service.Run(r.Context(), service.Input{VisibleTo: visibleTo})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Reminders: response.NewReminders(result.Reminders)}, http.StatusOK)
}
