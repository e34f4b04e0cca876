package runpendingcheck

import (
	e "dentalab/internal/core/domain/errors"
	ratelimiter "dentalab/internal/core/domain/rate_limiter"
	"dentalab/internal/core/services"
	service "dentalab/internal/core/services/notify_pending_reminders"
	"dentalab/internal/http/handlers/response"
	"errors"
	"net/http"
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
	Notified uint `json:"notificados"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		switch {
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}
	response.Render(rw, Result{Notified: result.Notified}, http.StatusOK)
}
