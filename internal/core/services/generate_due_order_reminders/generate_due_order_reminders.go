package generatedueorderreminders

import (
	"context"
	c "dentalab/internal/core/domain/common"
	e "dentalab/internal/core/domain/errors"
	"dentalab/internal/core/domain/logging"
	"dentalab/internal/core/domain/order"
	"dentalab/internal/core/domain/reminder"
	"dentalab/internal/core/services"
	"fmt"
	"time"
)

// DUE_HORIZON_DAYS is how far ahead the daily scan looks for orders
// approaching their delivery date.
const DUE_HORIZON_DAYS = 7

type Input struct{}

func (i Input) GetRateLimitKey() string {
	return "scan::entregas"
}

type Result struct {
	Created uint
	Skipped uint
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.Repository
	orderProvider      order.Provider
	now                func() time.Time
}

func New(
	log logging.Logger,
	reminderRepository reminder.Repository,
	orderProvider order.Provider,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	if orderProvider == nil {
		panic(e.NewNilArgumentError("orderProvider"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
		orderProvider:      orderProvider,
		now:                now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	now := s.now()
	orders, err := s.orderProvider.DueWithin(ctx, now, now.AddDate(0, 0, DUE_HORIZON_DAYS))
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	for _, ord := range orders {
		created, err := s.generateForOrder(ctx, ord, now)
		if err != nil {
			// One bad order must not abort the scan of the rest.
			logging.Error(ctx, s.log, err, logging.Entry("orderID", ord.ID))
			continue
		}
		if created {
			result.Created++
		} else {
			result.Skipped++
		}
	}

	s.log.Info(
		ctx,
		"Due-order reminder scan finished.",
		logging.Entry("orders", len(orders)),
		logging.Entry("created", result.Created),
		logging.Entry("skipped", result.Skipped),
	)
	return result, nil
}

func (s *service) generateForOrder(ctx context.Context, ord order.Order, now time.Time) (bool, error) {
	entity := reminder.NewOrderRef(int64(ord.ID))
	activeCount, err := s.reminderRepository.Count(ctx, reminder.ReadOptions{
		EntityEquals: c.NewOptional(entity, true),
		KindEquals:   c.NewOptional(reminder.KindOrderDue, true),
		StatusIn: c.NewOptional(
			[]reminder.Status{reminder.StatusPending, reminder.StatusOverdue},
			true,
		),
	})
	if err != nil {
		return false, err
	}
	if activeCount > 0 {
		return false, nil
	}

	daysLeft := ord.DaysUntilDue(now)
	_, err = s.reminderRepository.Create(ctx, reminder.CreateInput{
		Title: fmt.Sprintf("Entrega del pedido #%s", ord.Number),
		Description: c.NewOptional(
			fmt.Sprintf("El pedido de %s debe entregarse en %d día(s).", ord.ClientName, daysLeft),
			true,
		),
		Kind:      reminder.KindOrderDue,
		Entity:    c.NewOptional(entity, true),
		At:        ord.DueDate,
		Priority:  dueDatePriority(daysLeft),
		Status:    reminder.StatusPending,
		CreatedAt: now,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// dueDatePriority thresholds days remaining. The fallback at six or more
// days resolves to NORMAL as well, so this path never assigns BAJA; the
// original back office behaved the same way and callers rely on it.
func dueDatePriority(daysLeft int) reminder.Priority {
	switch {
	case daysLeft <= 1:
		return reminder.PriorityUrgent
	case daysLeft <= 3:
		return reminder.PriorityHigh
	case daysLeft <= 5:
		return reminder.PriorityNormal
	default:
		return reminder.PriorityNormal
	}
}
