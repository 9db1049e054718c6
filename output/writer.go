// Package output renders a calculated week as text, CSV, or Excel.
package output

import (
	"fmt"
	"strings"

	"clockout/timesheet"
)

type Writer interface {
	Write(path string, week timesheet.WeekResult) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

// summaryHeaders and summaryRows define the tabular form shared by the
// CSV and Excel writers: one row per day plus the weekly totals.
var summaryHeaders = []string{"Day", "Start", "End", "LunchMinutes", "HoursWorked", "AssumedFullDay"}

func summaryRows(week timesheet.WeekResult) [][]string {
	rows := make([][]string, 0, len(week.Days)+3)
	for _, day := range week.Days {
		rows = append(rows, []string{
			day.Day.String(),
			timeCell(day.Start),
			timeCell(day.End),
			fmt.Sprintf("%d", day.LunchMinutes),
			timesheet.FormatHours(day.HoursWorked),
			boolCell(day.AssumedFullDay),
		})
	}
	rows = append(rows,
		[]string{"Total", "", "", "", timesheet.FormatHours(week.TotalHours), ""},
		[]string{"HoursTo40", "", "", "", timesheet.FormatHours(week.HoursTo40), ""},
		[]string{"FridayClockOut", "", timeCell(week.FridayClockOut), "", "", ""},
	)
	return rows
}

func timeCell(value *timesheet.TimeOfDay) string {
	if value == nil {
		return ""
	}
	return value.String()
}

func boolCell(value bool) string {
	if value {
		return "yes"
	}
	return ""
}
