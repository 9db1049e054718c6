// Package timesheet holds the domain model shared by the calculation
// engine, importers, outputs, and the web UI.
package timesheet

import (
	"fmt"
	"strings"
)

// Day identifies one weekday of the working week, Monday through Friday.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func (d Day) String() string {
	if d < Monday || d > Friday {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d]
}

// Days returns Monday through Friday in week order.
func Days() [5]Day {
	return [5]Day{Monday, Tuesday, Wednesday, Thursday, Friday}
}

// ParseDay resolves a day name (full or three-letter prefix, any case).
func ParseDay(name string) (Day, error) {
	cleaned := strings.ToLower(strings.TrimSpace(name))
	for i, full := range dayNames {
		lower := strings.ToLower(full)
		if cleaned == lower || cleaned == lower[:3] {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("unknown day name %q", name)
}

// Field identifies one of the three raw inputs of a day.
type Field string

const (
	FieldStart Field = "start"
	FieldEnd   Field = "end"
	FieldLunch Field = "lunch"
)

// TimeOfDay is a clock time with no date component. Values are compared
// by minutes since midnight.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// FromMinutes builds a TimeOfDay from minutes since midnight, wrapping
// past 24 hours.
func FromMinutes(minutes int) TimeOfDay {
	minutes %= 24 * 60
	if minutes < 0 {
		minutes += 24 * 60
	}
	return TimeOfDay{Hour: minutes / 60, Minute: minutes % 60}
}

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// After reports whether t is strictly later than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.Minutes() > other.Minutes()
}

// String renders the canonical 12-hour display form, e.g. "8:00 AM" or
// "4:30 PM". Parsing this form again yields the identical value.
func (t TimeOfDay) String() string {
	period := "AM"
	if t.Hour >= 12 {
		period = "PM"
	}
	displayHour := t.Hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, t.Minute, period)
}

// Severity orders messages from most to least urgent.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// FieldRef points a message at the input field that caused it.
type FieldRef struct {
	Day   Day
	Field Field
}

// Message is a single user-facing finding. Messages carry no behavior;
// the presentation layer decides how to surface them.
type Message struct {
	Severity Severity
	Text     string
	Ref      *FieldRef
}

// DayInput is the raw user input for one weekday. The engine never
// mutates it; all derived values are returned on DayResult.
type DayInput struct {
	Day   Day
	Start string
	End   string
	Lunch string
}

// DayResult is the processed outcome for one weekday. Start and End are
// nil when the corresponding raw value was blank or unparseable.
type DayResult struct {
	Day            Day
	Start          *TimeOfDay
	End            *TimeOfDay
	LunchMinutes   int
	HoursWorked    float64
	AssumedFullDay bool
	Messages       []Message
}

// WeekResult is the root aggregate returned for one calculation. Overall
// holds the week-level messages only; per-day messages stay on each
// DayResult. Use calc.Aggregate for the merged, ordered view.
type WeekResult struct {
	Days           [5]DayResult
	TotalHours     float64
	HoursTo40      float64
	FridayClockOut *TimeOfDay
	Overall        []Message
}
