package listreminders

import (
	c "dentalab/internal/core/domain/common"
	e "dentalab/internal/core/domain/errors"
	"dentalab/internal/core/domain/reminder"
	"dentalab/internal/core/services"
	service "dentalab/internal/core/services/list_reminders"
	"dentalab/internal/http/handlers/response"
	"fmt"
	"net/http"
	"strconv"
	"strings"
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
	Reminders  []response.Reminder `json:"recordatorios"`
	TotalCount uint                `json:"total"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawStatusIn := r.URL.Query().Get("estado")
	statusIn, err := parseStatusIn(rawStatusIn)
	if err != nil {
		response.RenderError(rw, "invalid estado query parameter", http.StatusBadRequest)
		return
	}

	rawKind := r.URL.Query().Get("tipo")
	kindEquals, err := parseKind(rawKind)
	if err != nil {
		response.RenderError(rw, "invalid tipo query parameter", http.StatusBadRequest)
		return
	}

	rawPriority := r.URL.Query().Get("prioridad")
	priorityEquals, err := parsePriority(rawPriority)
	if err != nil {
		response.RenderError(rw, "invalid prioridad query parameter", http.StatusBadRequest)
		return
	}

	rawAdminID := r.URL.Query().Get("administrador_id")
	visibleTo, err := parseAdminID(rawAdminID)
	if err != nil {
		response.RenderError(rw, "invalid administrador_id query parameter", http.StatusBadRequest)
		return
	}

	rawOrderBy := r.URL.Query().Get("order_by")
	orderBy, err := parseOrderBy(rawOrderBy)
	if err != nil {
		response.RenderError(rw, "invalid order_by query parameter", http.StatusBadRequest)
		return
	}

	rawLimit := r.URL.Query().Get("limit")
	limit, err := parseLimit(rawLimit)
	if err != nil {
		response.RenderError(rw, "invalid limit query parameter", http.StatusBadRequest)
		return
	}

	rawOffset := r.URL.Query().Get("offset")
	offset, err := parseOffset(rawOffset)
	if err != nil {
		response.RenderError(rw, "invalid offset query parameter", http.StatusBadRequest)
		return
	}

	input := service.Input{
		StatusIn:       statusIn,
		KindEquals:     kindEquals,
		PriorityEquals: priorityEquals,
		VisibleTo:      visibleTo,
		OrderBy:        orderBy,
		Limit:          limit,
		Offset:         offset,
	}
	result, err := h.service.Run(r.Context(), input)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(
		rw,
		Result{Reminders: response.NewReminders(result.Reminders), TotalCount: result.TotalCount},
		http.StatusOK,
	)
}

func parseStatusIn(raw string) (result c.Optional[[]reminder.Status], err error) {
	if raw == "" {
		return result, nil
	}
	rawStatuses := strings.SplitN(raw, ",", 4)
	statuses := make([]reminder.Status, 0, len(rawStatuses))
	for _, rawStatus := range rawStatuses {
		status, err := reminder.ParseStatus(rawStatus)
		if err != nil {
			return result, err
		}
		statuses = append(statuses, status)
	}

	result.IsPresent = true
	result.Value = statuses
	return result, err
}

func parseKind(raw string) (result c.Optional[reminder.Kind], err error) {
	if raw == "" {
		return result, nil
	}
	kind, err := reminder.ParseKind(raw)
	if err != nil {
		return result, err
	}
	return c.NewOptional(kind, true), nil
}

func parsePriority(raw string) (result c.Optional[reminder.Priority], err error) {
	if raw == "" {
		return result, nil
	}
	priority, err := reminder.ParsePriority(raw)
	if err != nil {
		return result, err
	}
	return c.NewOptional(priority, true), nil
}

func parseAdminID(raw string) (result c.Optional[int64], err error) {
	if raw == "" {
		return result, nil
	}
	adminID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return result, err
	}
	return c.NewOptional(adminID, true), nil
}

func parseOrderBy(raw string) (orderBy reminder.OrderBy, err error) {
	if raw == "" {
		return orderBy, nil
	}
	orderBy, err = reminder.ParseOrderBy(raw)
	return orderBy, err
}

func parseLimit(raw string) (limit c.Optional[uint], err error) {
	if raw == "" {
		return limit, nil
	}
	l, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return limit, err
	}
	if l > service.DEFAULT_LIMIT {
		return limit, fmt.Errorf("limit must be less than or equal to %v", service.DEFAULT_LIMIT)
	}
	limit.IsPresent = true
	limit.Value = uint(l)
	return limit, nil
}

func parseOffset(raw string) (offset uint, err error) {
	if raw == "" {
		return offset, nil
	}
	o, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return offset, err
	}
	return uint(o), nil
}
