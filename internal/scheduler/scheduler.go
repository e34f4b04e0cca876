package scheduler

import (
	"context"
	e "dentalab/internal/core/domain/errors"
	"dentalab/internal/core/domain/logging"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Task is one scheduled unit of work. A returned error is logged and
// dropped; the next tick runs regardless.
type Task func(ctx context.Context) error

// Service owns the process-wide set of named periodic jobs. It is built
// once at startup and passed to whatever needs to stop it, instead of a
// hidden package-level registry.
type Service struct {
	log     logging.Logger
	cron    *cron.Cron
	entries map[string]cron.EntryID
	tasks   map[string]Task
	lock    sync.Mutex
}

func New(log logging.Logger) *Service {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &Service{
		log:     log,
		cron:    cron.New(cron.WithLocation(time.Local)),
		entries: make(map[string]cron.EntryID),
		tasks:   make(map[string]Task),
	}
}

// RegisterJob schedules a named recurring task. Registering a name twice
// replaces the previous schedule, so re-registration is idempotent.
func (s *Service) RegisterJob(name string, cronSpec string, task Task) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if entryID, ok := s.entries[name]; ok {
		s.cron.Remove(entryID)
		s.log.Info(context.Background(), "Existing job replaced.", logging.Entry("job", name))
	}

	entryID, err := s.cron.AddFunc(cronSpec, func() {
		s.runTask(name, task)
	})
	if err != nil {
		return fmt.Errorf("register job %q: %w", name, err)
	}
	s.entries[name] = entryID
	s.tasks[name] = task

	s.log.Info(
		context.Background(),
		"Job registered.",
		logging.Entry("job", name),
		logging.Entry("cron", cronSpec),
	)
	return nil
}

// RunNow executes a registered job once, outside its schedule. Used for
// the immediate pending check at process start.
func (s *Service) RunNow(name string) error {
	s.lock.Lock()
	task, ok := s.tasks[name]
	s.lock.Unlock()
	if !ok {
		return fmt.Errorf("job %q is not registered", name)
	}
	s.runTask(name, task)
	return nil
}

func (s *Service) Start() {
	s.cron.Start()
	s.log.Info(context.Background(), "Scheduler started.", logging.Entry("jobs", s.JobNames()))
}

// StopAll cancels all registered jobs and waits for running invocations
// to finish. Called on process shutdown.
func (s *Service) StopAll() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info(context.Background(), "Scheduler stopped.")
}

func (s *Service) JobNames() []string {
	s.lock.Lock()
	defer s.lock.Unlock()
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	return names
}

// runTask isolates one invocation: a panic or error is logged and must
// never crash the scheduler or suppress the next tick.
func (s *Service) runTask(name string, task Task) {
	ctx := context.Background()
	defer func() {
		if r := recover(); r != nil {
			s.log.Error(
				ctx,
				"Job panicked.",
				logging.Entry("job", name),
				logging.Entry("panic", r),
			)
		}
	}()

	if err := task(ctx); err != nil {
		s.log.Error(ctx, "Job returned an error.", logging.Entry("job", name), logging.Entry("err", err))
	}
}
