// Package timeparse turns free-form time-of-day input into canonical
// timesheet.TimeOfDay values.
package timeparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"clockout/timesheet"
)

// Role selects the default meridiem applied to ambiguous 12-hour input:
// a bare "8" means 8:00 AM for a start field and 8:00 PM for an end field.
type Role int

const (
	RoleStart Role = iota
	RoleEnd
)

// ParseError reports time input that could not be understood.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid time %q", e.Raw)
}

// Accepts "8", "8a", "8 pm", "8:30", "8:30pm", "16:00".
var timePattern = regexp.MustCompile(`^([0-9]{1,2})(?::([0-9]{1,2}))?\s*(a|p|am|pm)?$`)

// Parse normalizes a raw time string. Without a meridiem, hours 1-12 take
// the role default, while hour 0 and hours 13-23 are unambiguous 24-hour
// values and are never re-inflected to AM or PM.
func Parse(raw string, role Role) (timesheet.TimeOfDay, error) {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	if cleaned == "" {
		return timesheet.TimeOfDay{}, &ParseError{Raw: raw}
	}

	match := timePattern.FindStringSubmatch(cleaned)
	if match == nil {
		return timesheet.TimeOfDay{}, &ParseError{Raw: raw}
	}

	hour, err := strconv.Atoi(match[1])
	if err != nil {
		return timesheet.TimeOfDay{}, &ParseError{Raw: raw}
	}
	minute := 0
	if match[2] != "" {
		minute, err = strconv.Atoi(match[2])
		if err != nil {
			return timesheet.TimeOfDay{}, &ParseError{Raw: raw}
		}
	}
	if hour > 23 || minute > 59 {
		return timesheet.TimeOfDay{}, &ParseError{Raw: raw}
	}

	meridiem := match[3]
	switch meridiem {
	case "a":
		meridiem = "am"
	case "p":
		meridiem = "pm"
	}

	switch {
	case meridiem != "":
		if hour < 1 || hour > 12 {
			return timesheet.TimeOfDay{}, &ParseError{Raw: raw}
		}
		if hour == 12 {
			hour = 0
		}
		if meridiem == "pm" {
			hour += 12
		}
	case hour >= 1 && hour <= 12:
		if role == RoleStart {
			if hour == 12 {
				hour = 0
			}
		} else {
			if hour != 12 {
				hour += 12
			}
		}
	}

	return timesheet.TimeOfDay{Hour: hour, Minute: minute}, nil
}
