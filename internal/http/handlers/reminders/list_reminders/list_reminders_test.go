package listreminders

import (
	"context"
	c "dentalab/internal/core/domain/common"
	"dentalab/internal/core/domain/reminder"
	service "dentalab/internal/core/services/list_reminders"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var Reminders = []reminder.Reminder{
	{
		ID:        reminder.ID(1),
		Title:     "Entrega del pedido #P-0001",
		Kind:      reminder.KindOrderDue,
		At:        time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC),
		Priority:  reminder.PriorityHigh,
		Status:    reminder.StatusPending,
		CreatedAt: time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC),
	},
	{
		ID:        reminder.ID(2),
		Title:     "Llamar al cliente",
		Kind:      reminder.KindCall,
		At:        time.Date(2024, 6, 13, 10, 0, 0, 0, time.UTC),
		Priority:  reminder.PriorityNormal,
		Status:    reminder.StatusOverdue,
		CreatedAt: time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC),
	},
}

type stubService struct {
	reminders  []reminder.Reminder
	totalCount uint
	err        error
	input      *service.Input
}

func newStubService() *stubService {
	return &stubService{
		reminders:  Reminders,
		totalCount: uint(len(Reminders)),
	}
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Reminders = s.reminders
	result.TotalCount = s.totalCount
	return result, nil
}

func TestListRemindersHandler(t *testing.T) {
	cases := []struct {
		url            string
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			url:            "/recordatorios",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{},
		},
		{
			url:            "/recordatorios?order_by=fecha_asc",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{OrderBy: reminder.OrderByAtAsc},
		},
		{
			url:            "/recordatorios?order_by=fecha_desc",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{OrderBy: reminder.OrderByAtDesc},
		},
		{
			url:            "/recordatorios?order_by=asd",
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
		{
			url:            "/recordatorios?estado=PENDIENTE",
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				StatusIn: c.NewOptional([]reminder.Status{reminder.StatusPending}, true),
			},
		},
		{
			url:            "/recordatorios?estado=PENDIENTE,VENCIDO",
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				StatusIn: c.NewOptional(
					[]reminder.Status{reminder.StatusPending, reminder.StatusOverdue},
					true,
				),
			},
		},
		{
			url:            "/recordatorios?estado=pendiente",
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
		{
			url:            "/recordatorios?tipo=PAGO_PENDIENTE",
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				KindEquals: c.NewOptional(reminder.KindPaymentDue, true),
			},
		},
		{
			url:            "/recordatorios?prioridad=URGENTE",
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				PriorityEquals: c.NewOptional(reminder.PriorityUrgent, true),
			},
		},
		{
			url:            "/recordatorios?prioridad=critica",
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
		{
			url:            "/recordatorios?administrador_id=7",
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				VisibleTo: c.NewOptional(int64(7), true),
			},
		},
		{
			url:            "/recordatorios?limit=10&offset=20",
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				Limit:  c.NewOptional(uint(10), true),
				Offset: 20,
			},
		},
		{
			url:            "/recordatorios?limit=1000",
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.url, func(t *testing.T) {
			stub := newStubService()
			handler := New(stub)

			request := httptest.NewRequest(http.MethodGet, testcase.url, nil)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, testcase.expectedStatus, recorder.Code)
			assert.Equal(t, testcase.expectedInput, stub.input)
			if testcase.expectedStatus == http.StatusOK {
				assert.Contains(t, recorder.Body.String(), `"total":2`)
			}
		})
	}
}
