package gettodayreminders

import (
	"context"
	c "dentalab/internal/core/domain/common"
	"dentalab/internal/core/domain/logging"
	"dentalab/internal/core/domain/reminder"
	"dentalab/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var Now = time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	logger             *logging.FakeLogger
	reminderRepository *reminder.TestRepository
	service            services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.reminderRepository = reminder.NewTestRepository()
	suite.service = New(
		suite.logger,
		suite.reminderRepository,
		func() time.Time { return Now },
	)
}

func TestGetTodayRemindersService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) create(input reminder.CreateInput) reminder.Reminder {
	created, err := s.reminderRepository.Create(context.Background(), input)
	s.Require().Nil(err)
	return created
}

func (s *testSuite) TestReturnsOnlyRemindersDueToday() {
	// Setup ---
	earlyToday := s.create(reminder.NewTestReminder(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)))
	lateToday := s.create(reminder.NewTestReminder(time.Date(2024, 6, 10, 23, 59, 0, 0, time.UTC)))
	s.create(reminder.NewTestReminder(time.Date(2024, 6, 9, 23, 0, 0, 0, time.UTC)))
	s.create(reminder.NewTestReminder(time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)))

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Len(result.Reminders, 2)
	assert.Equal(earlyToday.ID, result.Reminders[0].ID)
	assert.Equal(lateToday.ID, result.Reminders[1].ID)
}

func (s *testSuite) TestExcludesInactiveReminders() {
	// Setup ---
	completed := reminder.NewTestReminder(Now.Add(time.Hour))
	completed.Status = reminder.StatusCompleted
	s.create(completed)
	overdue := reminder.NewTestReminder(Now.Add(-2 * time.Hour))
	overdue.Status = reminder.StatusOverdue
	kept := s.create(overdue)

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Len(result.Reminders, 1)
	assert.Equal(kept.ID, result.Reminders[0].ID)
}

func (s *testSuite) TestVisibleToFiltersByAdministrator() {
	// Setup ---
	mine := reminder.NewTestReminder(Now.Add(time.Hour))
	mine.AdminID = c.NewOptional(int64(1), true)
	kept := s.create(mine)
	broadcast := s.create(reminder.NewTestReminder(Now.Add(2 * time.Hour)))
	theirs := reminder.NewTestReminder(Now.Add(3 * time.Hour))
	theirs.AdminID = c.NewOptional(int64(2), true)
	s.create(theirs)

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{VisibleTo: c.NewOptional(int64(1), true)})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Len(result.Reminders, 2)
	assert.Equal(kept.ID, result.Reminders[0].ID)
	assert.Equal(broadcast.ID, result.Reminders[1].ID)
}
