package calc

import (
	"testing"

	"clockout/timesheet"
)

func TestAggregate_OrdersBySeverityThenDay(t *testing.T) {
	t.Parallel()

	var week timesheet.WeekResult
	week.Days[timesheet.Monday] = timesheet.DayResult{
		Day: timesheet.Monday,
		Messages: []timesheet.Message{
			{Severity: timesheet.SeverityWarning, Text: "monday warning"},
		},
	}
	week.Days[timesheet.Wednesday] = timesheet.DayResult{
		Day: timesheet.Wednesday,
		Messages: []timesheet.Message{
			{Severity: timesheet.SeverityError, Text: "wednesday error"},
		},
	}
	week.Days[timesheet.Friday] = timesheet.DayResult{
		Day: timesheet.Friday,
		Messages: []timesheet.Message{
			{Severity: timesheet.SeverityError, Text: "friday error"},
			{Severity: timesheet.SeverityWarning, Text: "friday warning"},
		},
	}
	week.Overall = []timesheet.Message{
		{Severity: timesheet.SeverityInfo, Text: "week info"},
		{Severity: timesheet.SeverityError, Text: "week error"},
	}

	got := Aggregate(week)

	want := []string{
		"wednesday error",
		"friday error",
		"week error",
		"monday warning",
		"friday warning",
		"week info",
	}
	if len(got) != len(want) {
		t.Fatalf("message count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i, text := range want {
		if got[i].Text != text {
			t.Fatalf("message[%d] = %q, want %q (full order: %v)", i, got[i].Text, text, got)
		}
	}
}

func TestAggregate_NothingCollapsed(t *testing.T) {
	t.Parallel()

	var week timesheet.WeekResult
	duplicate := timesheet.Message{Severity: timesheet.SeverityWarning, Text: "same text"}
	week.Days[timesheet.Monday] = timesheet.DayResult{Day: timesheet.Monday, Messages: []timesheet.Message{duplicate}}
	week.Days[timesheet.Tuesday] = timesheet.DayResult{Day: timesheet.Tuesday, Messages: []timesheet.Message{duplicate}}

	if got := Aggregate(week); len(got) != 2 {
		t.Fatalf("message count = %d, want 2 (duplicates retained)", len(got))
	}
}

func TestBySeverity(t *testing.T) {
	t.Parallel()

	messages := []timesheet.Message{
		{Severity: timesheet.SeverityError, Text: "e1"},
		{Severity: timesheet.SeverityError, Text: "e2"},
		{Severity: timesheet.SeverityWarning, Text: "w1"},
		{Severity: timesheet.SeverityInfo, Text: "i1"},
	}

	errorMessages, warnings, infos := BySeverity(messages)
	if len(errorMessages) != 2 || len(warnings) != 1 || len(infos) != 1 {
		t.Fatalf("split = %d/%d/%d, want 2/1/1", len(errorMessages), len(warnings), len(infos))
	}
}
