package web

import (
	"fmt"
	"strings"

	"clockout/calc"
	"clockout/timesheet"
)

// DayPayload is one day of raw input as submitted by the JSON API.
type DayPayload struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
	Lunch string `json:"lunch"`
}

// WeekPayload is the JSON calculate request: up to five days, identified
// by name. Omitted days are treated as blank.
type WeekPayload struct {
	Days []DayPayload `json:"days"`
}

// DayInputs maps the payload onto the five ordered day inputs.
func (p WeekPayload) DayInputs() ([5]timesheet.DayInput, error) {
	var week [5]timesheet.DayInput
	for _, day := range timesheet.Days() {
		week[day] = timesheet.DayInput{Day: day}
	}

	seen := make(map[timesheet.Day]bool, len(p.Days))
	for i, payload := range p.Days {
		day, err := timesheet.ParseDay(payload.Day)
		if err != nil {
			return week, fmt.Errorf("days[%d]: %w", i, err)
		}
		if seen[day] {
			return week, fmt.Errorf("days[%d]: duplicate entry for %s", i, day)
		}
		seen[day] = true

		week[day] = timesheet.DayInput{
			Day:   day,
			Start: payload.Start,
			End:   payload.End,
			Lunch: payload.Lunch,
		}
	}

	return week, nil
}

type DayView struct {
	Day            string `json:"day"`
	Start          string `json:"start,omitempty"`
	End            string `json:"end,omitempty"`
	LunchMinutes   int    `json:"lunchMinutes"`
	HoursWorked    string `json:"hoursWorked"`
	AssumedFullDay bool   `json:"assumedFullDay"`
}

type MessageView struct {
	Severity string `json:"severity"`
	Text     string `json:"text"`
	Day      string `json:"day,omitempty"`
	Field    string `json:"field,omitempty"`
}

// WeekView is the JSON calculate response consumed by the form page and
// by API callers.
type WeekView struct {
	Days           []DayView     `json:"days"`
	TotalHours     string        `json:"totalHours"`
	HoursTo40      string        `json:"hoursTo40"`
	Overtime       bool          `json:"overtime"`
	FridayClockOut string        `json:"fridayClockOut,omitempty"`
	Messages       []MessageView `json:"messages"`
}

// BuildWeekView flattens a week result into display-ready strings. The
// aggregated message order is preserved.
func BuildWeekView(week timesheet.WeekResult) WeekView {
	view := WeekView{
		Days:       make([]DayView, 0, len(week.Days)),
		TotalHours: timesheet.FormatHours(week.TotalHours),
		HoursTo40:  timesheet.FormatHours(week.HoursTo40),
		Overtime:   week.HoursTo40 < 0,
	}
	if week.FridayClockOut != nil {
		view.FridayClockOut = week.FridayClockOut.String()
	}

	for _, day := range week.Days {
		dayView := DayView{
			Day:            day.Day.String(),
			LunchMinutes:   day.LunchMinutes,
			HoursWorked:    timesheet.FormatHours(day.HoursWorked),
			AssumedFullDay: day.AssumedFullDay,
		}
		if day.Start != nil {
			dayView.Start = day.Start.String()
		}
		if day.End != nil {
			dayView.End = day.End.String()
		}
		view.Days = append(view.Days, dayView)
	}

	for _, message := range calc.Aggregate(week) {
		item := MessageView{
			Severity: message.Severity.String(),
			Text:     message.Text,
		}
		if message.Ref != nil {
			item.Day = message.Ref.Day.String()
			item.Field = string(message.Ref.Field)
		}
		view.Messages = append(view.Messages, item)
	}

	return view
}

// fieldKey builds the form input name for a day field, e.g. "monday_start".
func fieldKey(day timesheet.Day, field timesheet.Field) string {
	return strings.ToLower(day.String()) + "_" + string(field)
}
