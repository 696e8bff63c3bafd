package sheet

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/goearth/internal/pipeline"
	"github.com/alexiusacademia/goearth/internal/station"
)

const surveyCSV = `Project,Ghat road widening
,,,,,,
S.No,Chainage,Finished Roadway Width,Finished Vertical Height,Original Roadway Width,Area Coefficient,Cutting slope
1,0+000,10,2,6,0.5,90
2,0+100,10,2,6,0.5,90
,,,,,,
3,0+150,10,2,6,0.5
`

func TestReadCSV(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(surveyCSV))
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, 4, rows[0].Row)
	assert.Equal(t, "0+000", rows[0].Cells[station.ColChainage])
	assert.Equal(t, "0.5", rows[1].Cells[station.ColAreaCoefficient])
	assert.Equal(t, 7, rows[2].Row)
	assert.Equal(t, "", rows[2].Cells[station.ColCuttingSlope])
}

func TestReadCSVNoHeader(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("1,2,3\n4,5,6\n"))
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestTemplateRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTemplate(&buf))

	rows, err := ReadXLSX(&buf, "")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	res, err := pipeline.Run(rows, pipeline.DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	require.Len(t, res.Stations, 3)
	assert.Equal(t, 40.0, res.Stations[2].Record.Chainage)
	assert.Equal(t, 0.67, res.Stations[1].Record.AreaCoefficient)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "survey.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(surveyCSV), 0o644))
	rows, err := ReadFile(csvPath)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	var buf bytes.Buffer
	require.NoError(t, WriteTemplate(&buf))
	xlsxPath := filepath.Join(dir, "Sample.xlsx")
	require.NoError(t, os.WriteFile(xlsxPath, buf.Bytes(), 0o644))
	rows, err = ReadFile(xlsxPath)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	_, err = ReadFile(filepath.Join(dir, "survey.ods"))
	assert.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(surveyCSV + "4,0+160,10,2,6,,60\n"))
	require.NoError(t, err)

	res, err := pipeline.Run(rows, pipeline.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, res, 3))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	table, err := f.GetRows(volumeSheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)

	// header + 3 stations + total
	require.Len(t, table, 5)
	assert.Equal(t, ReportHeader, table[0])
	assert.Equal(t, "0+100", table[2][1])
	assert.Equal(t, "4", table[2][7])
	assert.Equal(t, "400", table[2][8])
	assert.Equal(t, "200", table[3][8])

	total := table[4]
	assert.Equal(t, "Total", total[0])
	assert.Equal(t, "600", total[len(total)-1])
	for _, c := range total[1 : len(total)-1] {
		assert.Empty(t, c)
	}

	summary, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Integration rule", "end-area"}, summary[0])

	skipped, err := f.GetRows(skippedSheet)
	require.NoError(t, err)
	require.Len(t, skipped, 2)
	assert.Equal(t, "0+160", skipped[1][1])
	assert.Contains(t, skipped[1][2], "Area Coefficient")
}

func TestWriteReportRequiresReport(t *testing.T) {
	assert.Error(t, WriteReport(&bytes.Buffer{}, &pipeline.Result{}, 3))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 1.235, round(1.23456, 3))
	assert.Equal(t, -4.0, round(-4.0004, 2))
}
