package generatepaymentreminders

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

// Orders younger than this are not chased for payment yet.
const MIN_AGE_DAYS = 30

type Input struct{}

func (i Input) GetRateLimitKey() string {
	return "scan::pagos"
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
	orders, err := s.orderProvider.WithOutstandingBalance(ctx, now.AddDate(0, 0, -MIN_AGE_DAYS))
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	for _, ord := range orders {
		created, err := s.generateForOrder(ctx, ord, now)
		if err != nil {
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
		"Outstanding-payment reminder scan finished.",
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
		KindEquals:   c.NewOptional(reminder.KindPaymentDue, true),
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

	ageDays := ord.AgeDays(now)
	_, err = s.reminderRepository.Create(ctx, reminder.CreateInput{
		Title: fmt.Sprintf("Pago pendiente del pedido #%s", ord.Number),
		Description: c.NewOptional(
			fmt.Sprintf("%s debe $%.2f desde hace %d días.", ord.ClientName, ord.Balance, ageDays),
			true,
		),
		Kind:   reminder.KindPaymentDue,
		Entity: c.NewOptional(entity, true),
		// Payment reminders are actionable immediately, not at a future date.
		At:        now,
		Priority:  paymentAgePriority(ageDays),
		Status:    reminder.StatusPending,
		CreatedAt: now,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func paymentAgePriority(ageDays int) reminder.Priority {
	switch {
	case ageDays > 60:
		return reminder.PriorityUrgent
	case ageDays > 45:
		return reminder.PriorityHigh
	default:
		return reminder.PriorityNormal
	}
}
