package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

type ExcelReader struct{}

func (r *ExcelReader) Read(path string) ([]WeekRow, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file %s: %w", path, err)
	}
	defer file.Close()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("excel file has no sheets: %s", path)
	}

	raw, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %s: %w", sheetName, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheetName)
	}

	cols, err := resolveColumns(raw[0])
	if err != nil {
		return nil, err
	}
	if len(raw)-1 > maxWeekRows {
		return nil, fmt.Errorf("sheet %s has %d day rows; a week has at most %d", sheetName, len(raw)-1, maxWeekRows)
	}

	rows := make([]WeekRow, 0, len(raw)-1)
	for i, values := range raw[1:] {
		rows = append(rows, cols.row(i+2, values))
	}

	return rows, nil
}
