package createreminder

import (
	"context"
	c "dentalab/internal/core/domain/common"
	e "dentalab/internal/core/domain/errors"
	"dentalab/internal/core/domain/logging"
	"dentalab/internal/core/domain/reminder"
	"dentalab/internal/core/services"
	"time"
)

type Input struct {
	Title       string
	Description c.Optional[string]
	Kind        reminder.Kind
	Entity      c.Optional[reminder.EntityRef]
	At          time.Time
	Priority    reminder.Priority
	AdminID     c.Optional[int64]
	Repeat      c.Optional[reminder.Frequency]
	Notes       c.Optional[string]
}

type Result struct {
	Reminder reminder.Reminder
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
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
		now:                now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.Title == "" {
		return result, reminder.ErrReminderTitleNotSet
	}
	priority := input.Priority
	if priority.IsZero() {
		priority = reminder.PriorityNormal
	}

	createdReminder, err := s.reminderRepository.Create(ctx, reminder.CreateInput{
		Title:       input.Title,
		Description: input.Description,
		Kind:        input.Kind,
		Entity:      input.Entity,
		At:          input.At,
		Priority:    priority,
		AdminID:     input.AdminID,
		Status:      reminder.StatusPending,
		Repeat:      input.Repeat,
		Notes:       input.Notes,
		CreatedAt:   s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"Reminder successfully created.",
		logging.Entry("reminderID", createdReminder.ID),
		logging.Entry("kind", createdReminder.Kind),
	)
	result.Reminder = createdReminder
	return result, nil
}
