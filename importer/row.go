package importer

import (
	"fmt"
	"strings"
)

// maxWeekRows bounds a file to one row per weekday.
const maxWeekRows = 5

// WeekRow is one weekday line of an input file, already narrowed to the
// four columns a timesheet week carries.
type WeekRow struct {
	RowNumber int
	Day       string
	Start     string
	End       string
	Lunch     string
}

// columns holds the resolved positions of the week columns in a header
// row; -1 marks a column the file does not carry. Only the day column
// is mandatory.
type columns struct {
	day   int
	start int
	end   int
	lunch int
}

func resolveColumns(headers []string) (columns, error) {
	cols := columns{day: -1, start: -1, end: -1, lunch: -1}
	for i, header := range headers {
		switch normalizeHeader(header) {
		case "day", "weekday":
			cols.day = i
		case "start", "starttime", "clockin":
			cols.start = i
		case "end", "endtime", "clockout":
			cols.end = i
		case "lunch", "lunchminutes", "lunch(min)":
			cols.lunch = i
		}
	}
	if cols.day == -1 {
		return cols, fmt.Errorf("input has no day column")
	}
	return cols, nil
}

// row builds a WeekRow from one line of cell values. Short rows read as
// blank fields, matching a day the user left partially empty.
func (c columns) row(number int, values []string) WeekRow {
	pick := func(index int) string {
		if index < 0 || index >= len(values) {
			return ""
		}
		return strings.TrimSpace(values[index])
	}
	return WeekRow{
		RowNumber: number,
		Day:       pick(c.day),
		Start:     pick(c.start),
		End:       pick(c.end),
		Lunch:     pick(c.lunch),
	}
}

func normalizeHeader(input string) string {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	trimmed = strings.ReplaceAll(trimmed, "_", "")
	trimmed = strings.ReplaceAll(trimmed, "-", "")
	trimmed = strings.ReplaceAll(trimmed, " ", "")
	return trimmed
}
