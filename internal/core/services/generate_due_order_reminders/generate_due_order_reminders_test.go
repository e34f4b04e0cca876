package generatedueorderreminders

import (
	"context"
	"dentalab/internal/core/domain/logging"
	"dentalab/internal/core/domain/order"
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
	orderProvider      *order.TestProvider
	service            services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.reminderRepository = reminder.NewTestRepository()
	suite.orderProvider = order.NewTestProvider()
	suite.service = New(
		suite.logger,
		suite.reminderRepository,
		suite.orderProvider,
		func() time.Time { return Now },
	)
}

func TestGenerateDueOrderRemindersService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func dueOrder(id int64, number string, dueInDays int) order.Order {
	return order.Order{
		ID:         order.ID(id),
		Number:     number,
		ClientID:   id * 10,
		ClientName: "Clínica Dental Sur",
		DueDate:    Now.AddDate(0, 0, dueInDays),
		Status:     "EN_PROCESO",
	}
}

func (s *testSuite) TestCreatesOneReminderPerOrder() {
	// Setup ---
	s.orderProvider.DueOrders = []order.Order{
		dueOrder(1, "P-0001", 2),
		dueOrder(2, "P-0002", 6),
	}

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal(uint(2), result.Created)
	assert.Equal(uint(0), result.Skipped)
	assert.Len(s.reminderRepository.Reminders, 2)
	for _, rem := range s.reminderRepository.Reminders {
		assert.Equal(reminder.KindOrderDue, rem.Kind)
		assert.Equal(reminder.StatusPending, rem.Status)
		assert.True(rem.Entity.IsPresent)
		assert.Equal(reminder.EntityKindOrder, rem.Entity.Value.Kind)
	}
}

func (s *testSuite) TestScanIsIdempotent() {
	// Setup ---
	s.orderProvider.DueOrders = []order.Order{dueOrder(1, "P-0001", 3)}

	// Exercise ---
	first, err := s.service.Run(context.Background(), Input{})
	s.Require().Nil(err)
	second, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal(uint(1), first.Created)
	assert.Equal(uint(0), second.Created)
	assert.Equal(uint(1), second.Skipped)
	assert.Len(s.reminderRepository.Reminders, 1)
}

func (s *testSuite) TestRegeneratesAfterCompletion() {
	// Setup ---
	s.orderProvider.DueOrders = []order.Order{dueOrder(1, "P-0001", 3)}
	_, err := s.service.Run(context.Background(), Input{})
	s.Require().Nil(err)
	_, err = s.reminderRepository.Update(context.Background(), reminder.UpdateInput{
		ID:             reminder.ID(1),
		DoStatusUpdate: true,
		Status:         reminder.StatusCompleted,
	})
	s.Require().Nil(err)

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal(uint(1), result.Created)
	assert.Len(s.reminderRepository.Reminders, 2)
}

func (s *testSuite) TestPriorityDependsOnDaysLeft() {
	cases := []struct {
		id        string
		dueInDays int
		expected  reminder.Priority
	}{
		{id: "due tomorrow", dueInDays: 1, expected: reminder.PriorityUrgent},
		{id: "due in three days", dueInDays: 3, expected: reminder.PriorityHigh},
		{id: "due in five days", dueInDays: 5, expected: reminder.PriorityNormal},
		{id: "due in seven days", dueInDays: 7, expected: reminder.PriorityNormal},
	}

	for _, testcase := range cases {
		s.Run(testcase.id, func() {
			// Setup ---
			repository := reminder.NewTestRepository()
			provider := order.NewTestProvider()
			provider.DueOrders = []order.Order{dueOrder(1, "P-0001", testcase.dueInDays)}
			service := New(logging.NewFakeLogger(), repository, provider, func() time.Time { return Now })

			// Exercise ---
			_, err := service.Run(context.Background(), Input{})

			// Verify ---
			assert := s.Require()
			assert.Nil(err)
			reminders, err := repository.Read(context.Background(), reminder.ReadOptions{})
			assert.Nil(err)
			assert.Len(reminders, 1)
			assert.Equal(testcase.expected, reminders[0].Priority)
		})
	}
}

func (s *testSuite) TestReminderIsDueAtOrderDueDate() {
	// Setup ---
	ord := dueOrder(1, "P-0001", 4)
	s.orderProvider.DueOrders = []order.Order{ord}

	// Exercise ---
	_, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	reminders, err := s.reminderRepository.Read(context.Background(), reminder.ReadOptions{})
	assert.Nil(err)
	assert.Len(reminders, 1)
	assert.True(ord.DueDate.Equal(reminders[0].At))
}

func (s *testSuite) TestOneBadOrderDoesNotAbortScan() {
	// Setup ---
	s.orderProvider.DueOrders = []order.Order{
		dueOrder(1, "P-0001", 2),
		dueOrder(2, "P-0002", 4),
	}
	createCalls := 0
	s.reminderRepository.CreateHook = func(input reminder.CreateInput) error {
		createCalls++
		if createCalls == 1 {
			return errors.New("deadlock detected")
		}
		return nil
	}

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal(uint(1), result.Created)
	assert.Len(s.reminderRepository.Reminders, 1)
}

func (s *testSuite) TestProviderErrorIsReturned() {
	// Setup ---
	s.orderProvider.DueError = errors.New("pedidos table unavailable")

	// Exercise ---
	_, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	s.Require().NotNil(err)
}

func (s *testSuite) TestScanHorizonIsSevenDays() {
	// Exercise ---
	_, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Len(s.orderProvider.DueCalledWith, 1)
	assert.True(Now.Equal(s.orderProvider.DueCalledWith[0][0]))
	assert.True(Now.AddDate(0, 0, 7).Equal(s.orderProvider.DueCalledWith[0][1]))
}
