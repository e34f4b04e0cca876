package listreminders

import (
	"context"
	c "dentalab/internal/core/domain/common"
	e "dentalab/internal/core/domain/errors"
	"dentalab/internal/core/domain/logging"
	"dentalab/internal/core/domain/reminder"
	"dentalab/internal/core/services"
)

const DEFAULT_LIMIT = 50

type Input struct {
	StatusIn       c.Optional[[]reminder.Status]
	KindEquals     c.Optional[reminder.Kind]
	PriorityEquals c.Optional[reminder.Priority]
	VisibleTo      c.Optional[int64]
	OrderBy        reminder.OrderBy
	Limit          c.Optional[uint]
	Offset         uint
}

type Result struct {
	Reminders  []reminder.Reminder
	TotalCount uint
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
	limit := c.NewOptional[uint](DEFAULT_LIMIT, true)
	if input.Limit.IsPresent {
		limit.Value = input.Limit.Value
	}

	readOptions := reminder.ReadOptions{
		StatusIn:       input.StatusIn,
		KindEquals:     input.KindEquals,
		PriorityEquals: input.PriorityEquals,
		VisibleTo:      input.VisibleTo,
		OrderBy:        input.OrderBy,
		Limit:          limit,
		Offset:         input.Offset,
	}
	reminders, err := s.reminderRepository.Read(ctx, readOptions)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	totalCount, err := s.reminderRepository.Count(ctx, readOptions)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	result.Reminders = reminders
	result.TotalCount = totalCount
	return result, nil
}
