package services

import (
	"dentalab/internal/app/deps"
	drl "dentalab/internal/core/domain/rate_limiter"
	"dentalab/internal/core/services"
	cancelreminder "dentalab/internal/core/services/cancel_reminder"
	completereminder "dentalab/internal/core/services/complete_reminder"
	createreminder "dentalab/internal/core/services/create_reminder"
	deletereminder "dentalab/internal/core/services/delete_reminder"
	generatedueorderreminders "dentalab/internal/core/services/generate_due_order_reminders"
	generatepaymentreminders "dentalab/internal/core/services/generate_payment_reminders"
	getpendingreminders "dentalab/internal/core/services/get_pending_reminders"
	getreminderstats "dentalab/internal/core/services/get_reminder_stats"
	gettodayreminders "dentalab/internal/core/services/get_today_reminders"
	listreminders "dentalab/internal/core/services/list_reminders"
	markoverduereminders "dentalab/internal/core/services/mark_overdue_reminders"
	notifypendingreminders "dentalab/internal/core/services/notify_pending_reminders"
	ratelimiting "dentalab/internal/core/services/rate_limiting"
	updatereminder "dentalab/internal/core/services/update_reminder"
)

type Services struct {
	CreateReminder      services.Service[createreminder.Input, createreminder.Result]
	UpdateReminder      services.Service[updatereminder.Input, updatereminder.Result]
	DeleteReminder      services.Service[deletereminder.Input, deletereminder.Result]
	ListReminders       services.Service[listreminders.Input, listreminders.Result]
	GetPendingReminders services.Service[getpendingreminders.Input, getpendingreminders.Result]
	GetTodayReminders   services.Service[gettodayreminders.Input, gettodayreminders.Result]
	GetReminderStats    services.Service[getreminderstats.Input, getreminderstats.Result]
	CompleteReminder    services.Service[completereminder.Input, completereminder.Result]
	CancelReminder      services.Service[cancelreminder.Input, cancelreminder.Result]

	GenerateDueOrderReminders services.Service[generatedueorderreminders.Input, generatedueorderreminders.Result]
	GeneratePaymentReminders  services.Service[generatepaymentreminders.Input, generatepaymentreminders.Result]
	NotifyPendingReminders    services.Service[notifypendingreminders.Input, notifypendingreminders.Result]
	MarkOverdueReminders      services.Service[markoverduereminders.Input, markoverduereminders.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.CreateReminder = createreminder.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.Now,
	)
	s.UpdateReminder = updatereminder.New(
		deps.Logger,
		deps.ReminderRepository,
	)
	s.DeleteReminder = deletereminder.New(
		deps.Logger,
		deps.ReminderRepository,
	)
	s.ListReminders = listreminders.New(
		deps.Logger,
		deps.ReminderRepository,
	)
	s.GetPendingReminders = getpendingreminders.New(
		deps.Logger,
		deps.ReminderRepository,
	)
	s.GetTodayReminders = gettodayreminders.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.Now,
	)
	s.GetReminderStats = getreminderstats.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.StatsCache,
		deps.Now,
	)
	s.CompleteReminder = completereminder.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.Now,
	)
	s.CancelReminder = cancelreminder.New(
		deps.Logger,
		deps.ReminderRepository,
	)

	// Manual trigger endpoints share the scan services with the scheduler,
	// so the scans are rate limited to keep an eager operator from
	// hammering the pedidos tables.
	s.GenerateDueOrderReminders = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Minute, Value: 2},
		generatedueorderreminders.New(
			deps.Logger,
			deps.ReminderRepository,
			deps.OrderProvider,
			deps.Now,
		),
	)
	s.GeneratePaymentReminders = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Minute, Value: 2},
		generatepaymentreminders.New(
			deps.Logger,
			deps.ReminderRepository,
			deps.OrderProvider,
			deps.Now,
		),
	)
	s.NotifyPendingReminders = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Minute, Value: 4},
		notifypendingreminders.New(
			deps.Logger,
			deps.ReminderRepository,
			deps.ReminderDispatcher,
			deps.Now,
		),
	)
	s.MarkOverdueReminders = markoverduereminders.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.Now,
	)

	return s
}
