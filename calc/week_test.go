package calc

import (
	"testing"

	"clockout/timesheet"
)

// fullWeek builds a week where Monday-Thursday share the same times and
// Friday is given explicitly.
func fullWeek(start, end, lunch string, friday timesheet.DayInput) [5]timesheet.DayInput {
	var week [5]timesheet.DayInput
	for d := timesheet.Monday; d < timesheet.Friday; d++ {
		week[d] = timesheet.DayInput{Day: d, Start: start, End: end, Lunch: lunch}
	}
	friday.Day = timesheet.Friday
	week[timesheet.Friday] = friday
	return week
}

func TestCalculateWeek_ProjectsFridayClockOut(t *testing.T) {
	t.Parallel()

	week := NewDefault().CalculateWeek(fullWeek("8:00 AM", "5:00 PM", "60",
		timesheet.DayInput{Start: "8:00 AM"}))

	if week.TotalHours != 32.0 {
		t.Fatalf("total = %v, want 32 (Friday not yet worked)", week.TotalHours)
	}
	if week.HoursTo40 != 8.0 {
		t.Fatalf("hours to 40 = %v, want 8", week.HoursTo40)
	}
	if week.FridayClockOut == nil || week.FridayClockOut.String() != "5:00 PM" {
		t.Fatalf("projection = %v, want 5:00 PM", week.FridayClockOut)
	}
	if !hasMessage(week.Days[timesheet.Friday].Messages, "lunch assumed to be 60 minutes") {
		t.Fatalf("missing Friday lunch warning: %v", week.Days[timesheet.Friday].Messages)
	}
}

func TestCalculateWeek_FortyReachedBeforeFriday(t *testing.T) {
	t.Parallel()

	// 8:00 AM to 7:00 PM minus 60 minutes is 10 hours per day.
	week := NewDefault().CalculateWeek(fullWeek("8:00 AM", "7:00 PM", "60", timesheet.DayInput{}))

	if week.TotalHours != 40.0 {
		t.Fatalf("total = %v, want 40", week.TotalHours)
	}
	if week.HoursTo40 != 0.0 {
		t.Fatalf("hours to 40 = %v, want 0", week.HoursTo40)
	}
	if week.FridayClockOut == nil || week.FridayClockOut.String() != "8:00 AM" {
		t.Fatalf("projection = %v, want assumed Friday start 8:00 AM", week.FridayClockOut)
	}
	if !hasMessage(week.Overall, "40 hours reached before Friday") {
		t.Fatalf("missing info message: %v", week.Overall)
	}
	if !hasMessage(week.Days[timesheet.Friday].Messages, "Friday start time assumed to be 8:00 AM") {
		t.Fatalf("missing Friday start assumption warning: %v", week.Days[timesheet.Friday].Messages)
	}
}

func TestCalculateWeek_DistinctErrorsPerDay(t *testing.T) {
	t.Parallel()

	inputs := fullWeek("", "", "", timesheet.DayInput{})
	inputs[timesheet.Monday] = timesheet.DayInput{Day: timesheet.Monday, Start: "nope", End: "5:00 PM"}
	inputs[timesheet.Tuesday] = timesheet.DayInput{Day: timesheet.Tuesday, Start: "also bad", End: "5:00 PM"}

	week := NewDefault().CalculateWeek(inputs)

	if !hasMessage(week.Days[timesheet.Monday].Messages, "Monday: invalid start time") {
		t.Fatalf("missing Monday error: %v", week.Days[timesheet.Monday].Messages)
	}
	if !hasMessage(week.Days[timesheet.Tuesday].Messages, "Tuesday: invalid start time") {
		t.Fatalf("missing Tuesday error: %v", week.Days[timesheet.Tuesday].Messages)
	}
	// Wednesday and Thursday stay assumed full days.
	if !week.Days[timesheet.Wednesday].AssumedFullDay || !week.Days[timesheet.Thursday].AssumedFullDay {
		t.Fatal("unaffected blank days must still be assumed")
	}
	if week.TotalHours != 16.0 {
		t.Fatalf("total = %v, want 16 (two assumed days only)", week.TotalHours)
	}
}

func TestCalculateWeek_EnteredFridayEndWins(t *testing.T) {
	t.Parallel()

	week := NewDefault().CalculateWeek(fullWeek("8:00 AM", "5:00 PM", "60",
		timesheet.DayInput{Start: "8:00 AM", End: "6:00 PM", Lunch: "60"}))

	if week.FridayClockOut == nil || week.FridayClockOut.String() != "6:00 PM" {
		t.Fatalf("clock out = %v, want entered 6:00 PM", week.FridayClockOut)
	}
	if week.TotalHours != 41.0 {
		t.Fatalf("total = %v, want 41", week.TotalHours)
	}
	if week.HoursTo40 != -1.0 {
		t.Fatalf("hours to 40 = %v, want -1 (overtime)", week.HoursTo40)
	}
}

func TestCalculateWeek_InvalidFridayStartBlocksProjection(t *testing.T) {
	t.Parallel()

	week := NewDefault().CalculateWeek(fullWeek("8:00 AM", "5:00 PM", "60",
		timesheet.DayInput{Start: "garbage"}))

	if week.FridayClockOut != nil {
		t.Fatalf("projection = %v, want none", week.FridayClockOut)
	}
	if !hasMessage(week.Overall, ErrProjectionUnavailable.Error()) {
		t.Fatalf("missing projection error: %v", week.Overall)
	}
	if !hasMessage(week.Days[timesheet.Friday].Messages, "Friday: invalid start time") {
		t.Fatalf("missing Friday field error: %v", week.Days[timesheet.Friday].Messages)
	}
}

func TestCalculateWeek_FullyBlankWeek(t *testing.T) {
	t.Parallel()

	week := NewDefault().CalculateWeek(fullWeek("", "", "", timesheet.DayInput{}))

	// Monday-Thursday are assumed 8-hour days; Friday is projected, not
	// assumed.
	if week.TotalHours != 32.0 {
		t.Fatalf("total = %v, want 32", week.TotalHours)
	}
	if week.Days[timesheet.Friday].AssumedFullDay {
		t.Fatal("Friday must not be an assumed full day")
	}
	// 8:00 AM start plus 8 remaining hours plus 60 minutes lunch.
	if week.FridayClockOut == nil || week.FridayClockOut.String() != "5:00 PM" {
		t.Fatalf("projection = %v, want 5:00 PM", week.FridayClockOut)
	}
	if !hasMessage(week.Days[timesheet.Friday].Messages, "Friday start time assumed to be 8:00 AM") {
		t.Fatalf("missing start assumption warning: %v", week.Days[timesheet.Friday].Messages)
	}
}

func TestCalculateWeek_CustomOptions(t *testing.T) {
	t.Parallel()

	calculator := New(Options{
		TargetHours:         36,
		DefaultLunchMinutes: 30,
		AssumedDayHours:     7.5,
		FridayDefaultStart:  timesheet.TimeOfDay{Hour: 9},
	})

	week := calculator.CalculateWeek(fullWeek("", "", "", timesheet.DayInput{}))

	if week.TotalHours != 30.0 {
		t.Fatalf("total = %v, want 30 (four 7.5-hour assumed days)", week.TotalHours)
	}
	// 9:00 AM plus 6 remaining hours plus 30 minutes lunch.
	if week.FridayClockOut == nil || week.FridayClockOut.String() != "3:30 PM" {
		t.Fatalf("projection = %v, want 3:30 PM", week.FridayClockOut)
	}
	if !hasMessage(week.Days[timesheet.Friday].Messages, "lunch assumed to be 30 minutes") {
		t.Fatalf("missing lunch warning with custom default: %v", week.Days[timesheet.Friday].Messages)
	}
}
