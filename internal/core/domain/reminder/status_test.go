package reminder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	assert := require.New(t)

	status, err := ParseStatus("VENCIDO")
	assert.Nil(err)
	assert.Equal(StatusOverdue, status)

	_, err = ParseStatus("vencido")
	assert.ErrorIs(err, ErrParseStatus)
}

func TestStatusIsActive(t *testing.T) {
	assert := require.New(t)

	assert.True(StatusPending.IsActive())
	assert.True(StatusOverdue.IsActive())
	assert.False(StatusCompleted.IsActive())
	assert.False(StatusCancelled.IsActive())
	assert.False(StatusUnknown.IsActive())
}
