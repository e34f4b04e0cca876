package createreminder

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
	suite.service = New(
		suite.logger,
		suite.reminderRepository,
		func() time.Time { return Now },
	)
}

func TestCreateReminderService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCreatesPendingReminder() {
	// Setup ---
	at := Now.AddDate(0, 0, 2)
	input := Input{
		Title:    "Reunión con el protésico",
		Kind:     reminder.KindMeeting,
		At:       at,
		Priority: reminder.PriorityHigh,
		AdminID:  c.NewOptional(int64(5), true),
		Repeat:   c.NewOptional(reminder.FrequencyWeekly, true),
	}

	// Exercise ---
	result, err := s.service.Run(context.Background(), input)

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal(reminder.StatusPending, result.Reminder.Status)
	assert.Equal(reminder.PriorityHigh, result.Reminder.Priority)
	assert.True(at.Equal(result.Reminder.At))
	assert.False(result.Reminder.Notified)
	assert.Equal(input.Repeat, result.Reminder.Repeat)
	assert.True(Now.Equal(result.Reminder.CreatedAt))
}

func (s *testSuite) TestPriorityDefaultsToNormal() {
	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{
		Title: "Llamar al laboratorio",
		Kind:  reminder.KindCall,
		At:    Now.Add(time.Hour),
	})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal(reminder.PriorityNormal, result.Reminder.Priority)
}

func (s *testSuite) TestTitleIsRequired() {
	// Exercise ---
	_, err := s.service.Run(context.Background(), Input{
		Kind: reminder.KindOther,
		At:   Now.Add(time.Hour),
	})

	// Verify ---
	s.Require().ErrorIs(err, reminder.ErrReminderTitleNotSet)
	s.Require().Empty(s.reminderRepository.Reminders)
}
