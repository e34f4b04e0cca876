package markoverduereminders

import (
	"context"
	e "dentalab/internal/core/domain/errors"
	"dentalab/internal/core/domain/logging"
	"dentalab/internal/core/domain/reminder"
	"dentalab/internal/core/services"
	"time"
)

type Input struct{}

type Result struct {
	MarkedOverdue uint
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.Repository
	now                func() time.Time
}

func New(
	log logging.Logger,
	reminderRepository reminder.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, reminderRepository: reminderRepository, now: now}
}

// Run bulk-transitions expired pending reminders to overdue. Reminders
// already overdue are untouched, which keeps the sweep idempotent.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	count, err := s.reminderRepository.UpdateMany(ctx, reminder.UpdateManyInput{
		StatusEquals: reminder.StatusPending,
		AtBefore:     s.now(),
		SetStatus:    reminder.StatusOverdue,
	})
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	if count > 0 {
		s.log.Info(ctx, "Expired reminders marked as overdue.", logging.Entry("count", count))
	}
	result.MarkedOverdue = count
	return result, nil
}
