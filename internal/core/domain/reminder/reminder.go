package reminder

import (
	c "dentalab/internal/core/domain/common"
	e "dentalab/internal/core/domain/errors"
	"time"
)

type ID int64

type Reminder struct {
	ID          ID
	Title       string
	Description c.Optional[string]
	Kind        Kind
	Entity      c.Optional[EntityRef]
	At          time.Time
	Priority    Priority
	AdminID     c.Optional[int64]
	Status      Status
	Repeat      c.Optional[Frequency]
	Notified    bool
	NotifiedAt  c.Optional[time.Time]
	Notes       c.Optional[string]
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsBroadcast reports whether the reminder is visible to all administrators.
func (r *Reminder) IsBroadcast() bool {
	return !r.AdminID.IsPresent
}

func (r *Reminder) Validate() error {
	if r.Title == "" {
		return e.NewInvalidStateError("reminder title must not be empty")
	}
	if r.Kind == KindUnknown {
		return e.NewInvalidStateError("reminder kind must be set")
	}
	if r.Status == StatusUnknown {
		return e.NewInvalidStateError("reminder status must be set")
	}
	if r.Priority == PriorityUnknown {
		return e.NewInvalidStateError("reminder priority must be set")
	}
	if r.Notified != r.NotifiedAt.IsPresent {
		return e.NewInvalidStateError("Notified and NotifiedAt must be set together")
	}
	return nil
}
