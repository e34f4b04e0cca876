package getreminderstats

import (
	"context"
	c "dentalab/internal/core/domain/common"
	e "dentalab/internal/core/domain/errors"
	"dentalab/internal/core/domain/logging"
	"dentalab/internal/core/domain/reminder"
	"dentalab/internal/core/services"
	"time"
)

type Input struct{}

type Stats struct {
	Pending     uint `json:"pendientes"`
	Completed   uint `json:"completados"`
	Cancelled   uint `json:"cancelados"`
	Overdue     uint `json:"vencidos"`
	DueToday    uint `json:"hoy"`
	DueNextWeek uint `json:"proximos_7_dias"`
}

type Result struct {
	Stats Stats
}

// Cache stores computed stats for a short TTL. A cache miss or error falls
// through to the repository, so the service works with the cache down.
type Cache interface {
	Get(ctx context.Context) (Stats, bool)
	Set(ctx context.Context, stats Stats)
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.Repository
	cache              Cache
	now                func() time.Time
}

func New(
	log logging.Logger,
	reminderRepository reminder.Repository,
	cache Cache,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	if cache == nil {
		panic(e.NewNilArgumentError("cache"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, reminderRepository: reminderRepository, cache: cache, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if stats, ok := s.cache.Get(ctx); ok {
		result.Stats = stats
		return result, nil
	}

	stats := Stats{}
	countByStatus := []struct {
		status reminder.Status
		target *uint
	}{
		{reminder.StatusPending, &stats.Pending},
		{reminder.StatusCompleted, &stats.Completed},
		{reminder.StatusCancelled, &stats.Cancelled},
		{reminder.StatusOverdue, &stats.Overdue},
	}
	for _, count := range countByStatus {
		n, err := s.reminderRepository.Count(ctx, reminder.ReadOptions{
			StatusIn: c.NewOptional([]reminder.Status{count.status}, true),
		})
		if err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("status", count.status))
			return result, err
		}
		*count.target = n
	}

	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	active := c.NewOptional([]reminder.Status{reminder.StatusPending, reminder.StatusOverdue}, true)

	stats.DueToday, err = s.reminderRepository.Count(ctx, reminder.ReadOptions{
		StatusIn: active,
		AtAfter:  c.NewOptional(dayStart, true),
		AtBefore: c.NewOptional(dayStart.AddDate(0, 0, 1), true),
	})
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	stats.DueNextWeek, err = s.reminderRepository.Count(ctx, reminder.ReadOptions{
		StatusIn: active,
		AtAfter:  c.NewOptional(dayStart, true),
		AtBefore: c.NewOptional(dayStart.AddDate(0, 0, 8), true),
	})
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	s.cache.Set(ctx, stats)
	result.Stats = stats
	return result, nil
}
