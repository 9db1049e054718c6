package importer

import (
	"fmt"

	"clockout/timesheet"
)

// MapWeek turns file rows into the five ordered day inputs. Each row
// names its weekday; days without a row stay fully blank, duplicate or
// unknown day names are read errors.
func MapWeek(rows []WeekRow) ([5]timesheet.DayInput, error) {
	var week [5]timesheet.DayInput
	for _, day := range timesheet.Days() {
		week[day] = timesheet.DayInput{Day: day}
	}

	seen := make(map[timesheet.Day]int, len(rows))
	for _, row := range rows {
		if row.Day == "" {
			return week, fmt.Errorf("row %d: missing day name", row.RowNumber)
		}

		day, err := timesheet.ParseDay(row.Day)
		if err != nil {
			return week, fmt.Errorf("row %d: %w", row.RowNumber, err)
		}
		if previous, ok := seen[day]; ok {
			return week, fmt.Errorf("row %d: duplicate entry for %s (first seen in row %d)", row.RowNumber, day, previous)
		}
		seen[day] = row.RowNumber

		week[day] = timesheet.DayInput{
			Day:   day,
			Start: row.Start,
			End:   row.End,
			Lunch: row.Lunch,
		}
	}

	return week, nil
}

// ReadWeek reads and maps a week input file in one step. An empty format
// is inferred from the file extension.
func ReadWeek(path, format string) ([5]timesheet.DayInput, error) {
	resolved, err := InferFormat(path, format)
	if err != nil {
		return [5]timesheet.DayInput{}, err
	}

	reader, err := ReaderForFormat(resolved)
	if err != nil {
		return [5]timesheet.DayInput{}, err
	}

	rows, err := reader.Read(path)
	if err != nil {
		return [5]timesheet.DayInput{}, err
	}

	return MapWeek(rows)
}
