package calc

import (
	"fmt"
	"strings"

	"clockout/internal/timeparse"
	"clockout/timesheet"
)

// ProcessDay validates one day's raw input and computes its worked
// hours. A day with both times blank is credited the assumed full day;
// a day with a half-entered or erroneous pair gets zero hours and an
// error, never a silent assumption.
func (c *Calculator) ProcessDay(input timesheet.DayInput) timesheet.DayResult {
	result := timesheet.DayResult{Day: input.Day}
	startRaw := strings.TrimSpace(input.Start)
	endRaw := strings.TrimSpace(input.End)

	if startRaw == "" && endRaw == "" {
		return c.processBlankDay(input, result)
	}

	// Each field is handled independently: a failing start never stops
	// the end or the lunch from being checked.
	start := parseTimeField(&result, startRaw, timesheet.FieldStart)
	end := parseTimeField(&result, endRaw, timesheet.FieldEnd)

	lunch, lunchErr := ValidateLunch(input.Lunch, c.opts.DefaultLunchMinutes)
	if lunchErr != nil {
		addFieldMessage(&result, timesheet.SeverityError, timesheet.FieldLunch, "invalid lunch duration")
	} else {
		// The resolved lunch is recorded even when the day errors out,
		// so an assumption warning always matches the result.
		result.LunchMinutes = lunch.Minutes
		if lunch.Assumed {
			addFieldMessage(&result, timesheet.SeverityWarning, timesheet.FieldLunch,
				fmt.Sprintf("lunch assumed to be %d minutes", lunch.Minutes))
		}
	}

	if start == nil || end == nil || lunchErr != nil {
		return result
	}

	if !end.After(*start) {
		addFieldMessage(&result, timesheet.SeverityError, timesheet.FieldEnd, ErrEndBeforeStart.Error())
		return result
	}

	worked, err := dayMinutes(*start, *end, lunch.Minutes)
	if err != nil {
		addFieldMessage(&result, timesheet.SeverityError, timesheet.FieldLunch, err.Error())
		return result
	}

	result.HoursWorked = roundQuarterHours(worked)
	return result
}

// processBlankDay handles a day with neither start nor end entered: not
// an entry mistake, just incomplete, so the assumed full day applies. An
// entered lunch value is still validated, though the assumption does not
// subtract it.
func (c *Calculator) processBlankDay(input timesheet.DayInput, result timesheet.DayResult) timesheet.DayResult {
	if strings.TrimSpace(input.Lunch) != "" {
		if _, err := ValidateLunch(input.Lunch, c.opts.DefaultLunchMinutes); err != nil {
			addFieldMessage(&result, timesheet.SeverityError, timesheet.FieldLunch, "invalid lunch duration")
			return result
		}
	}

	result.HoursWorked = c.opts.AssumedDayHours
	result.AssumedFullDay = true
	return result
}

// parseTimeField parses one time field into the result, attaching an
// error message when the value is blank or malformed.
func parseTimeField(result *timesheet.DayResult, raw string, field timesheet.Field) *timesheet.TimeOfDay {
	role := timeparse.RoleStart
	label := "start"
	if field == timesheet.FieldEnd {
		role = timeparse.RoleEnd
		label = "end"
	}

	if raw == "" {
		addFieldMessage(result, timesheet.SeverityError, field, fmt.Sprintf("missing %s time", label))
		return nil
	}

	parsed, err := timeparse.Parse(raw, role)
	if err != nil {
		addFieldMessage(result, timesheet.SeverityError, field, fmt.Sprintf("invalid %s time", label))
		return nil
	}

	if field == timesheet.FieldEnd {
		result.End = &parsed
	} else {
		result.Start = &parsed
	}
	return &parsed
}

func addFieldMessage(result *timesheet.DayResult, severity timesheet.Severity, field timesheet.Field, text string) {
	result.Messages = append(result.Messages, timesheet.Message{
		Severity: severity,
		Text:     fmt.Sprintf("%s: %s", result.Day, text),
		Ref:      &timesheet.FieldRef{Day: result.Day, Field: field},
	})
}
