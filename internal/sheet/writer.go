package sheet

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/goearth/internal/norms"
	"github.com/alexiusacademia/goearth/internal/pipeline"
	"github.com/alexiusacademia/goearth/internal/station"
)

const (
	volumeSheet  = "Volume"
	summarySheet = "Summary"
	skippedSheet = "Skipped"
	sampleSheet  = "Sample"
)

// ReportHeader is the column layout of the volume sheet
var ReportHeader = append(append([]string{}, station.ColumnNames[:]...), "Area (m²)", "Volume (m³)")

func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// WriteReport writes the per-station table, a trailing Total row, the run
// summary and the skipped rows as an .xlsx workbook.
func WriteReport(w io.Writer, res *pipeline.Result, decimals int32) error {
	if res == nil || res.Report == nil {
		return fmt.Errorf("sheet: no report to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", volumeSheet); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := setRow(f, volumeSheet, 1, toCells(ReportHeader)); err != nil {
		return err
	}
	for i, s := range res.Stations {
		rec := s.Record
		row := []interface{}{
			rec.SequenceNumber,
			rec.ChainageText,
			rec.FinishedWidth,
			rec.FinishedHeight,
			rec.OriginalWidth,
			rec.AreaCoefficient,
			rec.SlopeAngle,
			round(s.Section.Area, decimals),
			round(res.Report.VolumeAt(i), decimals),
		}
		if err := setRow(f, volumeSheet, i+2, row); err != nil {
			return err
		}
	}

	totalRow := len(res.Stations) + 2
	total := make([]interface{}, len(ReportHeader))
	total[0] = "Total"
	for i := 1; i < len(total)-1; i++ {
		total[i] = ""
	}
	total[len(total)-1] = round(res.Report.TotalVolume, decimals)
	if err := setRow(f, volumeSheet, totalRow, total); err != nil {
		return err
	}

	lastCol, _ := excelize.ColumnNumberToName(len(ReportHeader))
	_ = f.SetCellStyle(volumeSheet, "A1", lastCol+"1", bold)
	_ = f.SetCellStyle(volumeSheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("%s%d", lastCol, totalRow), bold)
	_ = f.SetColWidth(volumeSheet, "B", lastCol, 16)

	if err := writeSummary(f, res, decimals); err != nil {
		return err
	}
	if len(res.Warnings) > 0 {
		if err := writeSkipped(f, res); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func writeSummary(f *excelize.File, res *pipeline.Result, decimals int32) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Integration rule", res.Report.Rule.String()},
		{"Formula", res.Report.Rule.Formula()},
		{"Stations", len(res.Stations)},
		{"Skipped rows", len(res.Warnings)},
		{"Total volume (m³)", round(res.Report.TotalVolume, decimals)},
	}
	if n := len(res.Stations); n > 0 {
		rows = append(rows,
			[]interface{}{"From chainage", station.Label(res.Stations[0].Record.ChainageText)},
			[]interface{}{"To chainage", station.Label(res.Stations[n-1].Record.ChainageText)},
		)
	}
	for i, r := range rows {
		if err := setRow(f, summarySheet, i+1, r); err != nil {
			return err
		}
	}
	return nil
}

func writeSkipped(f *excelize.File, res *pipeline.Result) error {
	if _, err := f.NewSheet(skippedSheet); err != nil {
		return err
	}
	if err := setRow(f, skippedSheet, 1, []interface{}{"Row", "Chainage", "Reason"}); err != nil {
		return err
	}
	for i, w := range res.Warnings {
		if err := setRow(f, skippedSheet, i+2, []interface{}{w.Row, w.Chainage, w.Error()}); err != nil {
			return err
		}
	}
	return nil
}

// WriteTemplate writes a blank survey input workbook with a worked example
// for each cutting style.
func WriteTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sampleSheet); err != nil {
		return err
	}
	_ = f.SetCellValue(sampleSheet, "A1", "Earthwork Cross-Section Input")
	_ = f.SetCellValue(sampleSheet, "A2", "Area coefficient: 0.5 fresh, 0.67 back, 1.0 box cutting. Cutting slope in degrees from horizontal.")

	if err := setRow(f, sampleSheet, 4, toCells(station.ColumnNames[:])); err != nil {
		return err
	}
	for i, ct := range norms.CuttingTypes {
		row := []interface{}{
			i + 1,
			station.FormatChainage(float64(i * 20)),
			7.5,
			2.0,
			4.0,
			ct.Coefficient,
			norms.DefaultSlopeAngle,
		}
		if err := setRow(f, sampleSheet, i+5, row); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	_ = f.SetCellStyle(sampleSheet, "A4", "G4", bold)
	_ = f.SetColWidth(sampleSheet, "B", "G", 22)

	return f.Write(w)
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func toCells(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
