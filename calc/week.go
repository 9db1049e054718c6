package calc

import (
	"fmt"
	"math"
	"strings"

	"clockout/timesheet"
)

// CalculateWeek runs the full weekly calculation over the five days in
// week order. It never aborts: a failing field contributes zero hours
// and an explanatory message while every other field is still processed.
func (c *Calculator) CalculateWeek(days [5]timesheet.DayInput) timesheet.WeekResult {
	var week timesheet.WeekResult

	for day := timesheet.Monday; day < timesheet.Friday; day++ {
		week.Days[day] = c.ProcessDay(days[day])
	}

	preFriday := 0.0
	for day := timesheet.Monday; day < timesheet.Friday; day++ {
		preFriday += week.Days[day].HoursWorked
	}

	c.calculateFriday(&week, days[timesheet.Friday], preFriday)

	week.TotalHours = preFriday + week.Days[timesheet.Friday].HoursWorked
	week.HoursTo40 = c.opts.TargetHours - week.TotalHours
	return week
}

// calculateFriday processes Friday and attaches the clock-out projection.
// Unlike the other days, a blank Friday start is defaulted rather than
// treated as an incomplete day, so the projection stays available.
func (c *Calculator) calculateFriday(week *timesheet.WeekResult, input timesheet.DayInput, preFriday float64) {
	startRaw := strings.TrimSpace(input.Start)
	endRaw := strings.TrimSpace(input.End)

	resolved := input
	assumedStart := startRaw == ""
	if assumedStart {
		resolved.Start = c.opts.FridayDefaultStart.String()
	}

	lunch, lunchErr := ValidateLunch(input.Lunch, c.opts.DefaultLunchMinutes)

	var result timesheet.DayResult
	if endRaw != "" {
		result = c.ProcessDay(resolved)
	} else {
		result = c.partialFriday(resolved, lunch, lunchErr)
	}

	if assumedStart {
		assumption := timesheet.Message{
			Severity: timesheet.SeverityWarning,
			Text:     fmt.Sprintf("Friday start time assumed to be %s", c.opts.FridayDefaultStart),
			Ref:      &timesheet.FieldRef{Day: timesheet.Friday, Field: timesheet.FieldStart},
		}
		result.Messages = append([]timesheet.Message{assumption}, result.Messages...)
	}

	week.Days[timesheet.Friday] = result
	friday := &week.Days[timesheet.Friday]

	if preFriday >= c.opts.TargetHours {
		week.Overall = append(week.Overall, timesheet.Message{
			Severity: timesheet.SeverityInfo,
			Text: fmt.Sprintf("%s hours reached before Friday this week",
				timesheet.FormatHours(c.opts.TargetHours)),
		})
	}

	// An entered Friday end is authoritative; the projection never
	// overrides entered data.
	if friday.End != nil {
		week.FridayClockOut = friday.End
		return
	}

	if friday.Start == nil {
		week.Overall = append(week.Overall, timesheet.Message{
			Severity: timesheet.SeverityError,
			Text:     ErrProjectionUnavailable.Error(),
			Ref:      &timesheet.FieldRef{Day: timesheet.Friday, Field: timesheet.FieldStart},
		})
		return
	}

	if preFriday >= c.opts.TargetHours {
		week.FridayClockOut = friday.Start
		return
	}

	if lunchErr != nil {
		// The invalid lunch already errored the day; without a usable
		// lunch value the projection cannot be computed.
		return
	}

	required := int(math.Round((c.opts.TargetHours-preFriday)*60)) + lunch.Minutes
	clockOut := timesheet.FromMinutes(friday.Start.Minutes() + required)
	week.FridayClockOut = &clockOut
}

// partialFriday handles a Friday with no end time yet: the start and
// lunch are validated for the projection, no hours are credited, and no
// missing-end error is raised.
func (c *Calculator) partialFriday(input timesheet.DayInput, lunch LunchOutcome, lunchErr error) timesheet.DayResult {
	result := timesheet.DayResult{Day: timesheet.Friday}

	parseTimeField(&result, strings.TrimSpace(input.Start), timesheet.FieldStart)

	if lunchErr != nil {
		addFieldMessage(&result, timesheet.SeverityError, timesheet.FieldLunch, "invalid lunch duration")
		return result
	}
	if lunch.Assumed {
		addFieldMessage(&result, timesheet.SeverityWarning, timesheet.FieldLunch,
			fmt.Sprintf("lunch assumed to be %d minutes", lunch.Minutes))
	}
	result.LunchMinutes = lunch.Minutes
	return result
}
