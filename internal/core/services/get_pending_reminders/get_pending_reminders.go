package getpendingreminders

import (
	"context"
	c "dentalab/internal/core/domain/common"
	e "dentalab/internal/core/domain/errors"
	"dentalab/internal/core/domain/logging"
	"dentalab/internal/core/domain/reminder"
	"dentalab/internal/core/services"
)

type Input struct {
	// VisibleTo restricts the listing to reminders owned by the given
	// administrator plus broadcast reminders.
	VisibleTo c.Optional[int64]
}

type Result struct {
	Reminders []reminder.Reminder
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.Repository
}

func New(
	log logging.Logger,
	reminderRepository reminder.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	return &service{log: log, reminderRepository: reminderRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	reminders, err := s.reminderRepository.Read(ctx, reminder.ReadOptions{
		StatusIn:  c.NewOptional([]reminder.Status{reminder.StatusPending, reminder.StatusOverdue}, true),
		VisibleTo: input.VisibleTo,
		OrderBy:   reminder.OrderByAtAsc,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	result.Reminders = reminders
	return result, nil
}
