package reminder

import "errors"

var ErrParseStatus = errors.New("invalid status")

type Status struct {
	v string
}

func (s Status) String() string {
	return s.v
}

// IsActive reports whether a reminder in this status still counts against
// the generator's dedup key and may be completed or cancelled.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusOverdue
}

func ParseStatus(value string) (Status, error) {
	switch value {
	case "PENDIENTE":
		return StatusPending, nil
	case "COMPLETADO":
		return StatusCompleted, nil
	case "CANCELADO":
		return StatusCancelled, nil
	case "VENCIDO":
		return StatusOverdue, nil
	default:
		return StatusUnknown, ErrParseStatus
	}
}

var (
	StatusUnknown   = Status{}
	StatusPending   = Status{v: "PENDIENTE"}
	StatusCompleted = Status{v: "COMPLETADO"}
	StatusCancelled = Status{v: "CANCELADO"}
	StatusOverdue   = Status{v: "VENCIDO"}
)
