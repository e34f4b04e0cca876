package completereminder

import (
	"context"
	e "dentalab/internal/core/domain/errors"
	"dentalab/internal/core/domain/logging"
	"dentalab/internal/core/domain/reminder"
	"dentalab/internal/core/services"
	"time"
)

type Input struct {
	ReminderID reminder.ID
}

type Result struct {
	Reminder reminder.Reminder
	// NextReminder is set when completing a repeating reminder spawned
	// the successor occurrence.
	NextReminder *reminder.Reminder
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

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	rem, err := s.reminderRepository.GetByID(ctx, input.ReminderID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", input.ReminderID))
		return result, err
	}
	if !rem.Status.IsActive() {
		return result, reminder.ErrReminderNotActive
	}

	completedReminder, err := s.reminderRepository.Update(ctx, reminder.UpdateInput{
		ID:             rem.ID,
		DoStatusUpdate: true,
		Status:         reminder.StatusCompleted,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", rem.ID))
		return result, err
	}
	result.Reminder = completedReminder

	if !rem.Repeat.IsPresent {
		return result, nil
	}

	// The completed record stays completed forever; recurrence creates a
	// brand-new pending reminder one period after the current due date.
	draft, err := reminder.NextOccurrence(rem)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", rem.ID))
		return result, err
	}
	draft.CreatedAt = s.now()
	nextReminder, err := s.reminderRepository.Create(ctx, draft)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", rem.ID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Next occurrence created for repeating reminder.",
		logging.Entry("completedID", rem.ID),
		logging.Entry("nextID", nextReminder.ID),
		logging.Entry("nextAt", nextReminder.At),
	)
	result.NextReminder = &nextReminder
	return result, nil
}
