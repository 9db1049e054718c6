package calc

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError reports a lunch value that is not a non-negative
// integer minute count.
type ValidationError struct {
	Raw string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid lunch duration %q", e.Raw)
}

// LunchOutcome is the resolved lunch duration for one day. Assumed is
// set when the default was substituted for a blank field, in which case
// the caller owes the user a warning.
type LunchOutcome struct {
	Minutes int
	Assumed bool
}

// ValidateLunch resolves a raw lunch field. Blank input yields the
// default; zero is allowed and means no lunch was taken.
func ValidateLunch(raw string, defaultMinutes int) (LunchOutcome, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return LunchOutcome{Minutes: defaultMinutes, Assumed: true}, nil
	}

	minutes, err := strconv.Atoi(cleaned)
	if err != nil || minutes < 0 {
		return LunchOutcome{}, &ValidationError{Raw: raw}
	}

	return LunchOutcome{Minutes: minutes}, nil
}
