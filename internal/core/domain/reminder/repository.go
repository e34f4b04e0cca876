package reminder

import (
	"context"
	c "dentalab/internal/core/domain/common"
	"time"
)

type CreateInput struct {
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
}

type ReadOptions struct {
	StatusIn       c.Optional[[]Status]
	KindEquals     c.Optional[Kind]
	PriorityEquals c.Optional[Priority]
	EntityEquals   c.Optional[EntityRef]
	// VisibleTo matches reminders owned by the given administrator OR
	// broadcast reminders (no owner).
	VisibleTo      c.Optional[int64]
	NotifiedEquals c.Optional[bool]
	AtBefore       c.Optional[time.Time]
	AtAfter        c.Optional[time.Time]
	OrderBy        OrderBy
	Limit          c.Optional[uint]
	Offset         uint
}

type UpdateInput struct {
	ID                  ID
	DoTitleUpdate       bool
	Title               string
	DoDescriptionUpdate bool
	Description         c.Optional[string]
	DoAtUpdate          bool
	At                  time.Time
	DoPriorityUpdate    bool
	Priority            Priority
	DoStatusUpdate      bool
	Status              Status
	DoRepeatUpdate      bool
	Repeat              c.Optional[Frequency]
	DoNotifiedUpdate    bool
	Notified            bool
	NotifiedAt          c.Optional[time.Time]
	DoNotesUpdate       bool
	Notes               c.Optional[string]
}

// UpdateManyInput is a bulk filter+patch, used by the overdue sweep.
type UpdateManyInput struct {
	StatusEquals Status
	AtBefore     time.Time
	SetStatus    Status
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Reminder, error)
	GetByID(ctx context.Context, id ID) (Reminder, error)
	Read(ctx context.Context, options ReadOptions) ([]Reminder, error)
	Count(ctx context.Context, options ReadOptions) (uint, error)
	Update(ctx context.Context, input UpdateInput) (Reminder, error)
	UpdateMany(ctx context.Context, input UpdateManyInput) (uint, error)
	Delete(ctx context.Context, id ID) error
}
