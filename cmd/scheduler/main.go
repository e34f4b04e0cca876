package main

import (
	"context"
	"dentalab/internal/app/deps"
	"dentalab/internal/app/services"
	"dentalab/internal/core/domain/logging"
	generatedueorderreminders "dentalab/internal/core/services/generate_due_order_reminders"
	generatepaymentreminders "dentalab/internal/core/services/generate_payment_reminders"
	markoverduereminders "dentalab/internal/core/services/mark_overdue_reminders"
	notifypendingreminders "dentalab/internal/core/services/notify_pending_reminders"
	"dentalab/internal/scheduler"
	"os"
	"os/signal"
	"syscall"
)

const (
	JobPendingCheck    = "verificacion-pendientes"
	JobDailyGeneration = "generacion-diaria"
	JobOverdueSweep    = "barrido-vencidos"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	services := services.InitServices(deps)

	sched := scheduler.New(log)

	mustRegister(sched, JobPendingCheck, deps.Config.PendingCheckSpec, func(ctx context.Context) error {
		_, err := services.NotifyPendingReminders.Run(ctx, notifypendingreminders.Input{})
		return err
	})
	mustRegister(sched, JobDailyGeneration, deps.Config.DailyGenerationSpec, func(ctx context.Context) error {
		if _, err := services.GenerateDueOrderReminders.Run(ctx, generatedueorderreminders.Input{}); err != nil {
			return err
		}
		_, err := services.GeneratePaymentReminders.Run(ctx, generatepaymentreminders.Input{})
		return err
	})
	mustRegister(sched, JobOverdueSweep, deps.Config.OverdueSweepSpec, func(ctx context.Context) error {
		_, err := services.MarkOverdueReminders.Run(ctx, markoverduereminders.Input{})
		return err
	})

	// Catch up on anything that came due while the process was down.
	if err := sched.RunNow(JobPendingCheck); err != nil {
		log.Error(context.Background(), "Initial pending check failed.", logging.Entry("err", err))
	}

	sched.Start()

	stopCh, closeCh := createChannel()
	defer closeCh()

	<-stopCh
	log.Info(context.Background(), "Stopping scheduler.")
	sched.StopAll()
}

func mustRegister(sched *scheduler.Service, name string, cronSpec string, task scheduler.Task) {
	if err := sched.RegisterJob(name, cronSpec, task); err != nil {
		panic(err)
	}
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
