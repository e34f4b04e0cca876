package getreminderstats

import (
	"context"
	"dentalab/internal/core/domain/logging"
	"dentalab/internal/core/domain/reminder"
	"dentalab/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var Now = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

type fakeCache struct {
	stats    Stats
	hasStats bool
	setWith  []Stats
}

func (c *fakeCache) Get(ctx context.Context) (Stats, bool) {
	return c.stats, c.hasStats
}

func (c *fakeCache) Set(ctx context.Context, stats Stats) {
	c.setWith = append(c.setWith, stats)
}

type testSuite struct {
	suite.Suite
	logger             *logging.FakeLogger
	reminderRepository *reminder.TestRepository
	cache              *fakeCache
	service            services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.reminderRepository = reminder.NewTestRepository()
	suite.cache = &fakeCache{}
	suite.service = New(
		suite.logger,
		suite.reminderRepository,
		suite.cache,
		func() time.Time { return Now },
	)
}

func TestGetReminderStatsService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) createWithStatus(at time.Time, status reminder.Status) {
	input := reminder.NewTestReminder(at)
	input.Status = status
	_, err := s.reminderRepository.Create(context.Background(), input)
	s.Require().Nil(err)
}

func (s *testSuite) TestCountsByStatusAndHorizon() {
	// Setup ---
	s.createWithStatus(Now.Add(2*time.Hour), reminder.StatusPending)
	s.createWithStatus(Now.AddDate(0, 0, 3), reminder.StatusPending)
	s.createWithStatus(Now.AddDate(0, 0, 20), reminder.StatusPending)
	s.createWithStatus(Now.Add(-3*time.Hour), reminder.StatusOverdue)
	s.createWithStatus(Now.Add(-24*time.Hour), reminder.StatusCompleted)
	s.createWithStatus(Now.Add(-24*time.Hour), reminder.StatusCancelled)

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal(uint(3), result.Stats.Pending)
	assert.Equal(uint(1), result.Stats.Completed)
	assert.Equal(uint(1), result.Stats.Cancelled)
	assert.Equal(uint(1), result.Stats.Overdue)
	assert.Equal(uint(2), result.Stats.DueToday, "today includes the overdue one from this morning")
	assert.Equal(uint(3), result.Stats.DueNextWeek)
	assert.Len(s.cache.setWith, 1)
}

func (s *testSuite) TestCacheHitSkipsRepository() {
	// Setup ---
	s.cache.hasStats = true
	s.cache.stats = Stats{Pending: 7, DueToday: 2}
	s.reminderRepository.CountError = context.DeadlineExceeded

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal(uint(7), result.Stats.Pending)
	assert.Equal(uint(2), result.Stats.DueToday)
	assert.Empty(s.cache.setWith)
}

func (s *testSuite) TestRepositoryErrorIsReturned() {
	// Setup ---
	s.reminderRepository.CountError = context.DeadlineExceeded

	// Exercise ---
	_, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	s.Require().NotNil(err)
}
