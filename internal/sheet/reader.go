// Package sheet reads survey sheets and writes volume reports.
package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/goearth/internal/station"
)

// headerScanRows is how far down the sheet the header row is searched for
const headerScanRows = 50

// ErrNoHeader is returned when no row mentions "Chainage"
var ErrNoHeader = errors.New("sheet: no header row containing \"Chainage\" found")

// ReadFile reads survey rows from an .xlsx or .csv file
func ReadFile(path string) ([]station.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(f)
	case ".xlsx", ".xlsm":
		return ReadXLSX(f, "")
	default:
		return nil, fmt.Errorf("sheet: unsupported file type %q (want .xlsx or .csv)", filepath.Ext(path))
	}
}

// ReadXLSX reads survey rows from a workbook. An empty sheetName selects the
// first sheet.
func ReadXLSX(r io.Reader, sheetName string) ([]station.RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("sheet: open workbook: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("sheet: workbook has no sheets")
		}
		sheetName = sheets[0]
	}

	table, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("sheet: read %s: %w", sheetName, err)
	}
	return rowsFromTable(table)
}

// ReadCSV reads survey rows from comma-separated text
func ReadCSV(r io.Reader) ([]station.RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	table, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("sheet: read csv: %w", err)
	}
	return rowsFromTable(table)
}

// rowsFromTable locates the header row and maps the first seven cells of
// every following row onto the survey columns. Rows whose first cell is
// blank are dropped.
func rowsFromTable(table [][]string) ([]station.RawRow, error) {
	header := -1
	for i := 0; i < len(table) && i < headerScanRows; i++ {
		if containsChainage(table[i]) {
			header = i
			break
		}
	}
	if header < 0 {
		return nil, ErrNoHeader
	}

	var rows []station.RawRow
	for i := header + 1; i < len(table); i++ {
		cells := table[i]
		if len(cells) == 0 || strings.TrimSpace(cells[0]) == "" {
			continue
		}
		rows = append(rows, station.NewRawRow(i+1, cells))
	}
	return rows, nil
}

func containsChainage(cells []string) bool {
	for _, c := range cells {
		if strings.Contains(strings.ToLower(c), "chainage") {
			return true
		}
	}
	return false
}
