package reminder

import (
	"context"
	"sort"
	"sync"
	"time"
)

// TestRepository is a functional in-memory Repository for service tests.
type TestRepository struct {
	// CreateHook, when set, runs before each insert; a returned error is
	// propagated and the insert is dropped.
	CreateHook func(input CreateInput) error

	CreateError     error
	ReadError       error
	CountError      error
	UpdateError     error
	UpdateManyError error
	DeleteError     error
	GetByIDError    error

	Reminders map[ID]Reminder
	nextID    ID
	lock      sync.Mutex
}

func NewTestRepository() *TestRepository {
	return &TestRepository{Reminders: make(map[ID]Reminder), nextID: 1}
}

func (r *TestRepository) Create(ctx context.Context, input CreateInput) (rem Reminder, err error) {
	if r.CreateError != nil {
		return rem, r.CreateError
	}
	if r.CreateHook != nil {
		if err := r.CreateHook(input); err != nil {
			return rem, err
		}
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	rem = Reminder{
		ID:          r.nextID,
		Title:       input.Title,
		Description: input.Description,
		Kind:        input.Kind,
		Entity:      input.Entity,
		At:          input.At,
		Priority:    input.Priority,
		AdminID:     input.AdminID,
		Status:      input.Status,
		Repeat:      input.Repeat,
		Notified:    input.Notified,
		NotifiedAt:  input.NotifiedAt,
		Notes:       input.Notes,
		CreatedAt:   input.CreatedAt,
		UpdatedAt:   input.CreatedAt,
	}
	r.Reminders[rem.ID] = rem
	r.nextID++
	return rem, nil
}

func (r *TestRepository) GetByID(ctx context.Context, id ID) (rem Reminder, err error) {
	if r.GetByIDError != nil {
		return rem, r.GetByIDError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	rem, ok := r.Reminders[id]
	if !ok {
		return rem, ErrReminderDoesNotExist
	}
	return rem, nil
}

func (r *TestRepository) Read(ctx context.Context, options ReadOptions) ([]Reminder, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	reminders := r.filter(options)
	if options.Offset >= uint(len(reminders)) {
		return nil, nil
	}
	reminders = reminders[options.Offset:]
	if options.Limit.IsPresent && options.Limit.Value < uint(len(reminders)) {
		reminders = reminders[:options.Limit.Value]
	}
	return reminders, nil
}

func (r *TestRepository) Count(ctx context.Context, options ReadOptions) (uint, error) {
	if r.CountError != nil {
		return 0, r.CountError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return uint(len(r.filter(options))), nil
}

func (r *TestRepository) Update(ctx context.Context, input UpdateInput) (rem Reminder, err error) {
	if r.UpdateError != nil {
		return rem, r.UpdateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	rem, ok := r.Reminders[input.ID]
	if !ok {
		return rem, ErrReminderDoesNotExist
	}
	if input.DoTitleUpdate {
		rem.Title = input.Title
	}
	if input.DoDescriptionUpdate {
		rem.Description = input.Description
	}
	if input.DoAtUpdate {
		rem.At = input.At
	}
	if input.DoPriorityUpdate {
		rem.Priority = input.Priority
	}
	if input.DoStatusUpdate {
		rem.Status = input.Status
	}
	if input.DoRepeatUpdate {
		rem.Repeat = input.Repeat
	}
	if input.DoNotifiedUpdate {
		rem.Notified = input.Notified
		rem.NotifiedAt = input.NotifiedAt
	}
	if input.DoNotesUpdate {
		rem.Notes = input.Notes
	}
	r.Reminders[rem.ID] = rem
	return rem, nil
}

func (r *TestRepository) UpdateMany(ctx context.Context, input UpdateManyInput) (uint, error) {
	if r.UpdateManyError != nil {
		return 0, r.UpdateManyError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	var count uint
	for id, rem := range r.Reminders {
		if rem.Status == input.StatusEquals && rem.At.Before(input.AtBefore) {
			rem.Status = input.SetStatus
			r.Reminders[id] = rem
			count++
		}
	}
	return count, nil
}

func (r *TestRepository) Delete(ctx context.Context, id ID) error {
	if r.DeleteError != nil {
		return r.DeleteError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, ok := r.Reminders[id]; !ok {
		return ErrReminderDoesNotExist
	}
	delete(r.Reminders, id)
	return nil
}

func (r *TestRepository) filter(options ReadOptions) []Reminder {
	reminders := make([]Reminder, 0, len(r.Reminders))
	for _, rem := range r.Reminders {
		if !matches(rem, options) {
			continue
		}
		reminders = append(reminders, rem)
	}
	sort.Slice(reminders, func(i, j int) bool {
		switch options.OrderBy {
		case OrderByIDDesc:
			return reminders[i].ID > reminders[j].ID
		case OrderByAtAsc:
			return reminders[i].At.Before(reminders[j].At)
		case OrderByAtDesc:
			return reminders[j].At.Before(reminders[i].At)
		default:
			return reminders[i].ID < reminders[j].ID
		}
	})
	return reminders
}

func matches(rem Reminder, options ReadOptions) bool {
	if options.StatusIn.IsPresent {
		found := false
		for _, status := range options.StatusIn.Value {
			if rem.Status == status {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if options.KindEquals.IsPresent && rem.Kind != options.KindEquals.Value {
		return false
	}
	if options.PriorityEquals.IsPresent && rem.Priority != options.PriorityEquals.Value {
		return false
	}
	if options.EntityEquals.IsPresent {
		if !rem.Entity.IsPresent || rem.Entity.Value != options.EntityEquals.Value {
			return false
		}
	}
	if options.VisibleTo.IsPresent &&
		rem.AdminID.IsPresent && rem.AdminID.Value != options.VisibleTo.Value {
		return false
	}
	if options.NotifiedEquals.IsPresent && rem.Notified != options.NotifiedEquals.Value {
		return false
	}
	if options.AtBefore.IsPresent && !rem.At.Before(options.AtBefore.Value) {
		return false
	}
	if options.AtAfter.IsPresent && rem.At.Before(options.AtAfter.Value) {
		return false
	}
	return true
}

type TestDispatcher struct {
	Dispatched    []Reminder
	DispatchError error
	lock          sync.Mutex
}

func NewTestDispatcher() *TestDispatcher {
	return &TestDispatcher{}
}

func (d *TestDispatcher) DispatchReminder(ctx context.Context, r Reminder) error {
	if d.DispatchError != nil {
		return d.DispatchError
	}
	d.lock.Lock()
	defer d.lock.Unlock()
	d.Dispatched = append(d.Dispatched, r)
	return nil
}

type TestSender struct {
	Sent      []Reminder
	SendError error
	lock      sync.Mutex
}

func NewTestSender() *TestSender {
	return &TestSender{}
}

func (s *TestSender) SendReminder(ctx context.Context, r Reminder) error {
	if s.SendError != nil {
		return s.SendError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, r)
	return nil
}

// NewTestReminder returns a pending reminder with sane defaults for tests.
func NewTestReminder(at time.Time) CreateInput {
	return CreateInput{
		Title:     "Llamar al cliente",
		Kind:      KindCall,
		At:        at,
		Priority:  PriorityNormal,
		Status:    StatusPending,
		CreatedAt: at.Add(-24 * time.Hour),
	}
}

var _ Repository = (*TestRepository)(nil)
var _ Dispatcher = (*TestDispatcher)(nil)
var _ Sender = (*TestSender)(nil)
