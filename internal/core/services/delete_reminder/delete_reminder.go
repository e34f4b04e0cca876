package deletereminder

import (
	"context"
	e "dentalab/internal/core/domain/errors"
	"dentalab/internal/core/domain/logging"
	"dentalab/internal/core/domain/reminder"
	"dentalab/internal/core/services"
)

type Input struct {
	ReminderID reminder.ID
}

type Result struct{}

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

// Run removes the reminder regardless of its state. Deletion bypasses the
// lifecycle transitions entirely.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := s.reminderRepository.Delete(ctx, input.ReminderID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", input.ReminderID))
		return result, err
	}
	s.log.Info(ctx, "Reminder deleted.", logging.Entry("reminderID", input.ReminderID))
	return result, nil
}
