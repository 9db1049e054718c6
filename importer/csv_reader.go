package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

type CSVReader struct{}

func (r *CSVReader) Read(path string) ([]WeekRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	rows := make([]WeekRow, 0, maxWeekRows)
	number := 2
	for {
		values, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", number, err)
		}
		if len(rows) == maxWeekRows {
			return nil, fmt.Errorf("row %d: a week has at most %d day rows", number, maxWeekRows)
		}
		rows = append(rows, cols.row(number, values))
		number++
	}

	return rows, nil
}
