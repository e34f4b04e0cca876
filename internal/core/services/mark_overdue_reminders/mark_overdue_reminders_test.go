package markoverduereminders

import (
	"context"
	"dentalab/internal/core/domain/logging"
	"dentalab/internal/core/domain/reminder"
	"dentalab/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var Now = time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)

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

func TestMarkOverdueRemindersService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestMarksOnlyExpiredPendingReminders() {
	// Setup ---
	expired, err := s.reminderRepository.Create(
		context.Background(),
		reminder.NewTestReminder(Now.Add(-time.Hour)),
	)
	s.Require().Nil(err)
	future, err := s.reminderRepository.Create(
		context.Background(),
		reminder.NewTestReminder(Now.Add(time.Hour)),
	)
	s.Require().Nil(err)
	completedInput := reminder.NewTestReminder(Now.Add(-time.Hour))
	completedInput.Status = reminder.StatusCompleted
	completed, err := s.reminderRepository.Create(context.Background(), completedInput)
	s.Require().Nil(err)

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal(uint(1), result.MarkedOverdue)
	assert.Equal(reminder.StatusOverdue, s.reminderRepository.Reminders[expired.ID].Status)
	assert.Equal(reminder.StatusPending, s.reminderRepository.Reminders[future.ID].Status)
	assert.Equal(reminder.StatusCompleted, s.reminderRepository.Reminders[completed.ID].Status)
}

func (s *testSuite) TestSweepIsIdempotent() {
	// Setup ---
	_, err := s.reminderRepository.Create(
		context.Background(),
		reminder.NewTestReminder(Now.Add(-time.Hour)),
	)
	s.Require().Nil(err)

	// Exercise ---
	first, err := s.service.Run(context.Background(), Input{})
	s.Require().Nil(err)
	second, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal(uint(1), first.MarkedOverdue)
	assert.Equal(uint(0), second.MarkedOverdue)
}
