package service

import (
	"fmt"

	"hostel/internal/domains/export/model"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// render writes sheets in order into a single xlsx document.
func render(sheets []model.Sheet) (content []byte, err error) {
	file := excelize.NewFile()
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", closeErr)
		}
	}()

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for idx, sheet := range sheets {
		if idx == 0 {
			err = file.SetSheetName(defaultSheet, sheet.Name)
		} else {
			_, err = file.NewSheet(sheet.Name)
		}

		if err != nil {
			return nil, fmt.Errorf("failed to add sheet %q: %w", sheet.Name, err)
		}

		if err = writeSheet(file, sheet, headerStyle); err != nil {
			return nil, err
		}
	}

	file.SetActiveSheet(0)

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func writeSheet(file *excelize.File, sheet model.Sheet, headerStyle int) error {
	headers := make([]any, len(sheet.Columns))

	for idx, column := range sheet.Columns {
		headers[idx] = column.Header

		name, err := excelize.ColumnNumberToName(idx + 1)
		if err != nil {
			return fmt.Errorf("failed to name column %d: %w", idx+1, err)
		}

		if err = file.SetColWidth(sheet.Name, name, name, column.Width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if err := file.SetSheetRow(sheet.Name, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	if len(sheet.Columns) > 0 {
		last, err := excelize.CoordinatesToCellName(len(sheet.Columns), 1)
		if err != nil {
			return fmt.Errorf("failed to name header cell: %w", err)
		}

		if err = file.SetCellStyle(sheet.Name, "A1", last, headerStyle); err != nil {
			return fmt.Errorf("failed to style header row: %w", err)
		}
	}

	for idx, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, idx+2)
		if err != nil {
			return fmt.Errorf("failed to name row %d: %w", idx+2, err)
		}

		if err = file.SetSheetRow(sheet.Name, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", idx+2, err)
		}
	}

	return nil
}
