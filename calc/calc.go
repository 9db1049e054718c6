// Package calc is the weekly timesheet engine: it validates five days of
// raw start/end/lunch input and produces per-day worked hours, weekly
// totals, and the Friday clock-out projection.
package calc

import (
	"errors"

	"clockout/timesheet"
)

// Sentinel errors for the per-day duration rules. They never escape the
// engine; ProcessDay converts them into messages on the day result.
var (
	ErrEndBeforeStart    = errors.New("end time is before start time")
	ErrLunchExceedsShift = errors.New("lunch exceeds shift length")
)

// ErrProjectionUnavailable reports that the Friday clock-out projection
// cannot be computed because Friday's start time is invalid. It carries
// the user-facing wording and surfaces as a week-level message.
var ErrProjectionUnavailable = errors.New("Friday clock out cannot be calculated")

// Options tunes the engine. The zero value is not usable; start from
// DefaultOptions.
type Options struct {
	// TargetHours is the weekly goal the Friday projection aims for.
	TargetHours float64
	// DefaultLunchMinutes substitutes for a blank lunch field.
	DefaultLunchMinutes int
	// AssumedDayHours is credited for a day with both times blank.
	AssumedDayHours float64
	// FridayDefaultStart substitutes for a blank Friday start field.
	FridayDefaultStart timesheet.TimeOfDay
}

func DefaultOptions() Options {
	return Options{
		TargetHours:         40,
		DefaultLunchMinutes: 60,
		AssumedDayHours:     8,
		FridayDefaultStart:  timesheet.TimeOfDay{Hour: 8},
	}
}

// Calculator runs the weekly calculation. It holds no state between
// calls; a single Calculator may be shared by concurrent callers.
type Calculator struct {
	opts Options
}

func New(opts Options) *Calculator {
	return &Calculator{opts: opts}
}

func NewDefault() *Calculator {
	return New(DefaultOptions())
}

// dayMinutes applies the duration rules for a complete day and returns
// worked minutes before rounding.
func dayMinutes(start, end timesheet.TimeOfDay, lunchMinutes int) (int, error) {
	if !end.After(start) {
		return 0, ErrEndBeforeStart
	}
	raw := end.Minutes() - start.Minutes()
	if lunchMinutes > raw {
		return 0, ErrLunchExceedsShift
	}
	return raw - lunchMinutes, nil
}

// roundQuarterHours rounds a minute count to the nearest quarter hour,
// ties rounding up, and returns hours.
func roundQuarterHours(minutes int) float64 {
	quarters := (minutes*2 + 15) / 30
	return float64(quarters) * 0.25
}
