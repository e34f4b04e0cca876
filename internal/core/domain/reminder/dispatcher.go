package reminder

import "context"

// Dispatcher hands a due reminder over to the notification pipeline.
// Delivery is fire-and-forget: the caller marks the reminder as notified
// regardless of the outcome.
type Dispatcher interface {
	DispatchReminder(ctx context.Context, r Reminder) error
}

// Sender performs the actual delivery of a dispatched reminder over one
// concrete channel (email, WhatsApp, SSE feed).
type Sender interface {
	SendReminder(ctx context.Context, r Reminder) error
}
