package app

import (
	"dentalab/internal/app/deps"
	"dentalab/internal/app/services"
	cancelreminder "dentalab/internal/http/handlers/reminders/cancel_reminder"
	completereminder "dentalab/internal/http/handlers/reminders/complete_reminder"
	createreminder "dentalab/internal/http/handlers/reminders/create_reminder"
	deletereminder "dentalab/internal/http/handlers/reminders/delete_reminder"
	generatedueorders "dentalab/internal/http/handlers/reminders/generate_due_orders"
	generatepayments "dentalab/internal/http/handlers/reminders/generate_payments"
	listreminders "dentalab/internal/http/handlers/reminders/list_reminders"
	pendingreminders "dentalab/internal/http/handlers/reminders/pending_reminders"
	reminderstats "dentalab/internal/http/handlers/reminders/reminder_stats"
	runpendingcheck "dentalab/internal/http/handlers/reminders/run_pending_check"
	todayreminders "dentalab/internal/http/handlers/reminders/today_reminders"
	updatereminder "dentalab/internal/http/handlers/reminders/update_reminder"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	reminderRouter := chi.NewRouter()
	reminderRouter.Method(http.MethodPost, "/", createreminder.New(s.CreateReminder))
	reminderRouter.Method(http.MethodGet, "/", listreminders.New(s.ListReminders))
	reminderRouter.Method(http.MethodGet, "/pendientes", pendingreminders.New(s.GetPendingReminders))
	reminderRouter.Method(http.MethodGet, "/hoy", todayreminders.New(s.GetTodayReminders))
	reminderRouter.Method(http.MethodGet, "/estadisticas", reminderstats.New(s.GetReminderStats))
	reminderRouter.Method(http.MethodPatch, "/{recordatorioID:[0-9]+}", updatereminder.New(s.UpdateReminder))
	reminderRouter.Method(http.MethodDelete, "/{recordatorioID:[0-9]+}", deletereminder.New(s.DeleteReminder))
	reminderRouter.Method(
		http.MethodPost,
		"/{recordatorioID:[0-9]+}/completar",
		completereminder.New(s.CompleteReminder),
	)
	reminderRouter.Method(
		http.MethodPost,
		"/{recordatorioID:[0-9]+}/cancelar",
		cancelreminder.New(s.CancelReminder),
	)
	reminderRouter.Method(http.MethodPost, "/generar/entregas", generatedueorders.New(s.GenerateDueOrderReminders))
	reminderRouter.Method(http.MethodPost, "/generar/pagos", generatepayments.New(s.GeneratePaymentReminders))
	reminderRouter.Method(http.MethodPost, "/verificar", runpendingcheck.New(s.NotifyPendingReminders))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/api/recordatorios", reminderRouter)
	router.Get("/api/eventos", deps.SseServer.ServeHTTP)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
