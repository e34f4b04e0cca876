package cancelreminder

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
	suite.service = New(suite.logger, suite.reminderRepository)
}

func TestCancelReminderService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCancelsPendingReminder() {
	// Setup ---
	created, err := s.reminderRepository.Create(
		context.Background(),
		reminder.NewTestReminder(Now.Add(time.Hour)),
	)
	s.Require().Nil(err)

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{ReminderID: created.ID})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal(reminder.StatusCancelled, result.Reminder.Status)
}

func (s *testSuite) TestCancellingRepeatingReminderStopsTheChain() {
	// Setup ---
	input := reminder.NewTestReminder(Now.Add(time.Hour))
	input.Repeat = c.NewOptional(reminder.FrequencyDaily, true)
	created, err := s.reminderRepository.Create(context.Background(), input)
	s.Require().Nil(err)

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{ReminderID: created.ID})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal(reminder.StatusCancelled, result.Reminder.Status)
	assert.Len(s.reminderRepository.Reminders, 1, "cancelling never spawns a successor")
}

func (s *testSuite) TestCancelledReminderCannotBeCancelledAgain() {
	// Setup ---
	input := reminder.NewTestReminder(Now.Add(time.Hour))
	input.Status = reminder.StatusCancelled
	created, err := s.reminderRepository.Create(context.Background(), input)
	s.Require().Nil(err)

	// Exercise ---
	_, err = s.service.Run(context.Background(), Input{ReminderID: created.ID})

	// Verify ---
	s.Require().ErrorIs(err, reminder.ErrReminderNotActive)
}

func (s *testSuite) TestUnknownReminder() {
	// Exercise ---
	_, err := s.service.Run(context.Background(), Input{ReminderID: reminder.ID(999)})

	// Verify ---
	s.Require().ErrorIs(err, reminder.ErrReminderDoesNotExist)
}
