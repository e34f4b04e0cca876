package notifypendingreminders

import (
	"context"
	c "dentalab/internal/core/domain/common"
	e "dentalab/internal/core/domain/errors"
	"dentalab/internal/core/domain/logging"
	"dentalab/internal/core/domain/reminder"
	"dentalab/internal/core/services"
	"time"
)

// NOTIFY_WINDOW is how far ahead of the due moment a reminder gets
// dispatched to the notification pipeline.
const NOTIFY_WINDOW = 24 * time.Hour

type Input struct{}

func (i Input) GetRateLimitKey() string {
	return "scan::verificacion"
}

type Result struct {
	Notified uint
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.Repository
	dispatcher         reminder.Dispatcher
	now                func() time.Time
}

func New(
	log logging.Logger,
	reminderRepository reminder.Repository,
	dispatcher reminder.Dispatcher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	if dispatcher == nil {
		panic(e.NewNilArgumentError("dispatcher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
		dispatcher:         dispatcher,
		now:                now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	now := s.now()
	reminders, err := s.reminderRepository.Read(ctx, reminder.ReadOptions{
		StatusIn:       c.NewOptional([]reminder.Status{reminder.StatusPending}, true),
		NotifiedEquals: c.NewOptional(false, true),
		AtBefore:       c.NewOptional(now.Add(NOTIFY_WINDOW), true),
		OrderBy:        reminder.OrderByAtAsc,
	})
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	for _, rem := range reminders {
		if err := s.dispatcher.DispatchReminder(ctx, rem); err != nil {
			// Dispatch is best effort. The reminder is still marked as
			// notified below so it is never dispatched twice.
			logging.Error(ctx, s.log, err, logging.Entry("reminderID", rem.ID))
		}
		_, err := s.reminderRepository.Update(ctx, reminder.UpdateInput{
			ID:               rem.ID,
			DoNotifiedUpdate: true,
			Notified:         true,
			NotifiedAt:       c.NewOptional(now, true),
		})
		if err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("reminderID", rem.ID))
			continue
		}
		result.Notified++
	}

	if len(reminders) > 0 {
		s.log.Info(
			ctx,
			"Pending reminders dispatched.",
			logging.Entry("eligible", len(reminders)),
			logging.Entry("notified", result.Notified),
		)
	}
	return result, nil
}
