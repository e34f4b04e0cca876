package notifypendingreminders

import (
	"context"
	"dentalab/internal/core/domain/logging"
	"dentalab/internal/core/domain/reminder"
	"dentalab/internal/core/services"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var Now = time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	logger             *logging.FakeLogger
	reminderRepository *reminder.TestRepository
	dispatcher         *reminder.TestDispatcher
	service            services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.reminderRepository = reminder.NewTestRepository()
	suite.dispatcher = reminder.NewTestDispatcher()
	suite.service = New(
		suite.logger,
		suite.reminderRepository,
		suite.dispatcher,
		func() time.Time { return Now },
	)
}

func TestNotifyPendingRemindersService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestDispatchesDueReminders() {
	// Setup ---
	due, err := s.reminderRepository.Create(
		context.Background(),
		reminder.NewTestReminder(Now.Add(2*time.Hour)),
	)
	s.Require().Nil(err)
	farFuture, err := s.reminderRepository.Create(
		context.Background(),
		reminder.NewTestReminder(Now.Add(48*time.Hour)),
	)
	s.Require().Nil(err)

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal(uint(1), result.Notified)
	assert.Len(s.dispatcher.Dispatched, 1)
	assert.Equal(due.ID, s.dispatcher.Dispatched[0].ID)

	notified := s.reminderRepository.Reminders[due.ID]
	assert.True(notified.Notified)
	assert.True(notified.NotifiedAt.IsPresent)
	assert.True(Now.Equal(notified.NotifiedAt.Value))
	assert.False(s.reminderRepository.Reminders[farFuture.ID].Notified)
}

func (s *testSuite) TestMarksNotifiedEvenWhenDispatchFails() {
	// Setup ---
	created, err := s.reminderRepository.Create(
		context.Background(),
		reminder.NewTestReminder(Now.Add(time.Hour)),
	)
	s.Require().Nil(err)
	s.dispatcher.DispatchError = errors.New("broker unavailable")

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal(uint(1), result.Notified)
	assert.True(s.reminderRepository.Reminders[created.ID].Notified)
}

func (s *testSuite) TestNotifiedRemindersAreNotDispatchedTwice() {
	// Setup ---
	_, err := s.reminderRepository.Create(
		context.Background(),
		reminder.NewTestReminder(Now.Add(time.Hour)),
	)
	s.Require().Nil(err)

	// Exercise ---
	first, err := s.service.Run(context.Background(), Input{})
	s.Require().Nil(err)
	second, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal(uint(1), first.Notified)
	assert.Equal(uint(0), second.Notified)
	assert.Len(s.dispatcher.Dispatched, 1)
}

func (s *testSuite) TestOnlyPendingRemindersAreEligible() {
	// Setup ---
	cancelledInput := reminder.NewTestReminder(Now.Add(time.Hour))
	cancelledInput.Status = reminder.StatusCancelled
	_, err := s.reminderRepository.Create(context.Background(), cancelledInput)
	s.Require().Nil(err)

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal(uint(0), result.Notified)
	assert.Empty(s.dispatcher.Dispatched)
}
