package reminder

import (
	"errors"
	"time"

	"github.com/golang-module/carbon/v2"
)

var ErrParseFrequency = errors.New("invalid frequency")

// Frequency is the recurrence period of a repeating reminder.
type Frequency struct {
	v string
}

func (f Frequency) String() string {
	return f.v
}

func ParseFrequency(value string) (Frequency, error) {
	switch value {
	case "diaria":
		return FrequencyDaily, nil
	case "semanal":
		return FrequencyWeekly, nil
	case "mensual":
		return FrequencyMonthly, nil
	default:
		return FrequencyUnknown, ErrParseFrequency
	}
}

var (
	FrequencyUnknown = Frequency{}
	FrequencyDaily   = Frequency{v: "diaria"}
	FrequencyWeekly  = Frequency{v: "semanal"}
	FrequencyMonthly = Frequency{v: "mensual"}
)

// NextFrom returns the next occurrence after t. Months are added without
// overflow so a reminder set on Jan 31 recurs on Feb 28, not Mar 3.
func (f Frequency) NextFrom(t time.Time) time.Time {
	switch f {
	case FrequencyDaily:
		return carbon.Time2Carbon(t).AddDay().Carbon2Time()
	case FrequencyWeekly:
		return carbon.Time2Carbon(t).AddWeek().Carbon2Time()
	case FrequencyMonthly:
		return carbon.Time2Carbon(t).AddMonthNoOverflow().Carbon2Time()
	default:
		panic("unexpected frequency: " + f.v)
	}
}
