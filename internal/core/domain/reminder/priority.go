package reminder

import "errors"

var ErrParsePriority = errors.New("invalid priority")

type Priority struct {
	v string
}

func (p Priority) String() string {
	return p.v
}

func (p Priority) IsZero() bool {
	return p == PriorityUnknown
}

func ParsePriority(value string) (Priority, error) {
	switch value {
	case "BAJA":
		return PriorityLow, nil
	case "NORMAL":
		return PriorityNormal, nil
	case "ALTA":
		return PriorityHigh, nil
	case "URGENTE":
		return PriorityUrgent, nil
	default:
		return PriorityUnknown, ErrParsePriority
	}
}

var (
	PriorityUnknown = Priority{}
	PriorityLow     = Priority{v: "BAJA"}
	PriorityNormal  = Priority{v: "NORMAL"}
	PriorityHigh    = Priority{v: "ALTA"}
	PriorityUrgent  = Priority{v: "URGENTE"}
)
