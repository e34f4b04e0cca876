package scheduler

import (
	"context"
	"dentalab/internal/core/domain/logging"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunNowExecutesRegisteredJob(t *testing.T) {
	assert := require.New(t)
	s := New(logging.NewFakeLogger())

	var calls int32
	err := s.RegisterJob("verificacion", "0 * * * *", func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	assert.Nil(err)

	assert.Nil(s.RunNow("verificacion"))
	assert.Equal(int32(1), atomic.LoadInt32(&calls))
}

func TestRunNowUnknownJob(t *testing.T) {
	assert := require.New(t)
	s := New(logging.NewFakeLogger())

	assert.NotNil(s.RunNow("no-such-job"))
}

func TestRegisterJobReplacesExistingSchedule(t *testing.T) {
	assert := require.New(t)
	s := New(logging.NewFakeLogger())

	var first, second int32
	assert.Nil(s.RegisterJob("generacion", "0 8 * * *", func(ctx context.Context) error {
		atomic.AddInt32(&first, 1)
		return nil
	}))
	assert.Nil(s.RegisterJob("generacion", "0 9 * * *", func(ctx context.Context) error {
		atomic.AddInt32(&second, 1)
		return nil
	}))

	assert.Nil(s.RunNow("generacion"))
	assert.Equal(int32(0), atomic.LoadInt32(&first))
	assert.Equal(int32(1), atomic.LoadInt32(&second))
	assert.Len(s.JobNames(), 1)
}

func TestInvalidCronSpec(t *testing.T) {
	assert := require.New(t)
	s := New(logging.NewFakeLogger())

	err := s.RegisterJob("barrido", "not a cron spec", func(ctx context.Context) error {
		return nil
	})
	assert.NotNil(err)
	assert.Empty(s.JobNames())
}

func TestJobErrorIsLoggedAndSwallowed(t *testing.T) {
	assert := require.New(t)
	log := logging.NewFakeLogger()
	s := New(log)

	assert.Nil(s.RegisterJob("verificacion", "0 * * * *", func(ctx context.Context) error {
		return errors.New("db unavailable")
	}))
	assert.Nil(s.RunNow("verificacion"))
	assert.Contains(log.Logged, "Job returned an error.")
}

func TestJobPanicDoesNotCrashScheduler(t *testing.T) {
	assert := require.New(t)
	log := logging.NewFakeLogger()
	s := New(log)

	assert.Nil(s.RegisterJob("verificacion", "0 * * * *", func(ctx context.Context) error {
		panic("boom")
	}))
	assert.Nil(s.RunNow("verificacion"))
	assert.Contains(log.Logged, "Job panicked.")

	// The scheduler must remain usable afterwards.
	assert.Nil(s.RunNow("verificacion"))
}
