package cancelreminder

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

type Result struct {
	Reminder reminder.Reminder
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

// Run cancels a pending or overdue reminder. Cancelling never spawns the
// next occurrence: it terminates the recurrence chain, unlike completing.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	rem, err := s.reminderRepository.GetByID(ctx, input.ReminderID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", input.ReminderID))
		return result, err
	}
	if !rem.Status.IsActive() {
		return result, reminder.ErrReminderNotActive
	}

	cancelledReminder, err := s.reminderRepository.Update(ctx, reminder.UpdateInput{
		ID:             rem.ID,
		DoStatusUpdate: true,
		Status:         reminder.StatusCancelled,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", rem.ID))
		return result, err
	}

	s.log.Info(ctx, "Reminder cancelled.", logging.Entry("reminderID", rem.ID))
	result.Reminder = cancelledReminder
	return result, nil
}
