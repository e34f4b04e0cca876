package reminder

import (
	c "dentalab/internal/core/domain/common"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNextOccurrence(t *testing.T) {
	assert := require.New(t)

	at := time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC)
	completed := Reminder{
		ID:          ID(42),
		Title:       "Seguimiento de ortodoncia",
		Description: c.NewOptional("Llamar para revisar el avance.", true),
		Kind:        KindClientFollowUp,
		Entity:      c.NewOptional(NewClientRef(7), true),
		At:          at,
		Priority:    PriorityHigh,
		AdminID:     c.NewOptional(int64(3), true),
		Status:      StatusCompleted,
		Repeat:      c.NewOptional(FrequencyWeekly, true),
		Notified:    true,
		NotifiedAt:  c.NewOptional(at, true),
		Notes:       c.NewOptional("Paciente con brackets.", true),
	}

	// Exercise ---
	draft, err := NextOccurrence(completed)

	// Verify ---
	assert.Nil(err)
	assert.Equal(completed.Title, draft.Title)
	assert.Equal(completed.Description, draft.Description)
	assert.Equal(completed.Kind, draft.Kind)
	assert.Equal(completed.Entity, draft.Entity)
	assert.True(at.AddDate(0, 0, 7).Equal(draft.At))
	assert.Equal(completed.Priority, draft.Priority)
	assert.Equal(completed.AdminID, draft.AdminID)
	assert.Equal(StatusPending, draft.Status)
	assert.Equal(completed.Repeat, draft.Repeat)
	assert.False(draft.Notified)
	assert.False(draft.NotifiedAt.IsPresent)
	assert.Equal(completed.Notes, draft.Notes)
}

func TestNextOccurrenceRequiresFrequency(t *testing.T) {
	assert := require.New(t)

	_, err := NextOccurrence(Reminder{
		ID:     ID(1),
		Title:  "Llamar al cliente",
		Kind:   KindCall,
		Status: StatusCompleted,
	})
	assert.ErrorIs(err, ErrFrequencyNotSet)
}
