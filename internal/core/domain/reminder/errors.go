package reminder

import "errors"

var (
	ErrReminderDoesNotExist = errors.New("reminder does not exist")
	ErrReminderNotActive    = errors.New("reminder is neither pending nor overdue")
	ErrReminderTitleNotSet  = errors.New("reminder title is not set")
	ErrFrequencyNotSet      = errors.New("frequency must be set for a repeating reminder")
)
