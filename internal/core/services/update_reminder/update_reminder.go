package updatereminder

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
	ReminderID          reminder.ID
	DoTitleUpdate       bool
	Title               string
	DoDescriptionUpdate bool
	Description         c.Optional[string]
	DoAtUpdate          bool
	At                  time.Time
	DoPriorityUpdate    bool
	Priority            reminder.Priority
	DoRepeatUpdate      bool
	Repeat              c.Optional[reminder.Frequency]
	DoNotesUpdate       bool
	Notes               c.Optional[string]
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

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.DoTitleUpdate && input.Title == "" {
		return result, reminder.ErrReminderTitleNotSet
	}

	updatedReminder, err := s.reminderRepository.Update(ctx, reminder.UpdateInput{
		ID:                  input.ReminderID,
		DoTitleUpdate:       input.DoTitleUpdate,
		Title:               input.Title,
		DoDescriptionUpdate: input.DoDescriptionUpdate,
		Description:         input.Description,
		DoAtUpdate:          input.DoAtUpdate,
		At:                  input.At,
		DoPriorityUpdate:    input.DoPriorityUpdate,
		Priority:            input.Priority,
		DoRepeatUpdate:      input.DoRepeatUpdate,
		Repeat:              input.Repeat,
		DoNotesUpdate:       input.DoNotesUpdate,
		Notes:               input.Notes,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Reminder successfully updated.", logging.Entry("reminderID", updatedReminder.ID))
	result.Reminder = updatedReminder
	return result, nil
}
