package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/goearth/internal/diagram"
	"github.com/alexiusacademia/goearth/internal/pipeline"
	"github.com/alexiusacademia/goearth/internal/sheet"
	"github.com/alexiusacademia/goearth/internal/volume"
	"github.com/spf13/cobra"
)

var (
	volumeFile     string
	volumeOutput   string
	volumeProfile  bool
	volumeDecimals int32
)

var volumeCmd = &cobra.Command{
	Use:   "volume",
	Short: "Compute station areas and earthwork volume from a survey sheet",
	Long: `Read a survey sheet (.xlsx or .csv), compute the cross-sectional area
at every chainage station and integrate the areas into volumes.

The sheet must have a header row containing "Chainage"; the seven columns
after it are read in this order:
  S.No, Chainage, Finished Roadway Width, Finished Vertical Height,
  Original Roadway Width, Area Coefficient, Cutting slope

Area per station:
  A = ac × (fw − ow) × fh

Volume between stations:
  end-area    V = ΔCh × (A₁ + A₂) / 2   (default)
  single-end  V = ΔCh × A₂              (legacy sheets)

Rows with missing values are skipped and listed. A decreasing chainage
stops the calculation.

Examples:
  goearth volume -f Sample.xlsx
  goearth volume -f survey.csv --rule single-end -o volume.xlsx
  goearth volume -f Sample.xlsx --strict --profile`,
	Run: runVolume,
}

func init() {
	rootCmd.AddCommand(volumeCmd)

	volumeCmd.Flags().StringVarP(&volumeFile, "file", "f", "", "Survey sheet (.xlsx or .csv) [required]")
	volumeCmd.Flags().StringVarP(&volumeOutput, "output", "o", "", "Write the volume sheet to this .xlsx file")
	volumeCmd.Flags().BoolVar(&volumeProfile, "profile", false, "Show ASCII area and cumulative volume profiles")
	volumeCmd.Flags().Int32Var(&volumeDecimals, "decimals", -1, "Decimal places in the exported sheet (default from config)")
	volumeCmd.MarkFlagRequired("file")
}

// runSurvey reads a survey file and runs it through the engine
func runSurvey(cmd *cobra.Command, path string) (*pipeline.Result, error) {
	cfg, err := engineConfig(cmd)
	if err != nil {
		return nil, err
	}

	rows, err := sheet.ReadFile(path)
	if err != nil {
		return nil, err
	}

	res, err := pipeline.Run(rows, cfg)
	if err != nil {
		if res != nil && errors.Is(err, volume.ErrNoStations) {
			printWarnings(res.Warnings)
		}
		return nil, err
	}
	return res, nil
}

func runVolume(cmd *cobra.Command, args []string) {
	res, err := runSurvey(cmd, volumeFile)
	if err != nil {
		fail(err)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          EARTHWORK CROSS-SECTION VOLUME")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INTEGRATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Rule:\t%s\n", res.Report.Rule)
	fmt.Fprintf(w, "  Formula:\t%s\n", res.Report.Rule.Formula())
	fmt.Fprintf(w, "  Stations:\t%d\n", len(res.Stations))
	fmt.Fprintf(w, "  Skipped rows:\t%d\n", len(res.Warnings))
	w.Flush()
	fmt.Println()

	fmt.Println("STATIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  S.No\tChainage\tfw (m)\tfh (m)\tow (m)\tac\tSlope (°)\tArea (m²)\tVolume (m³)\tCumulative (m³)\t\n")
	fmt.Fprintf(w, "  ────\t────────\t──────\t──────\t──────\t──\t─────────\t─────────\t───────────\t───────────────\t\n")
	cumulative := res.Report.Cumulative()
	for i, s := range res.Stations {
		rec := s.Record
		slope := fmt.Sprintf("%.1f", rec.SlopeAngle)
		if rec.SlopeDefaulted {
			slope += "*"
		}
		fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%s\t%.3f\t%.3f\t%.3f\t\n",
			rec.SequenceNumber, s.Label,
			rec.FinishedWidth, rec.FinishedHeight, rec.OriginalWidth,
			rec.AreaCoefficient, slope,
			s.Section.Area, res.Report.VolumeAt(i), cumulative[i])
	}
	w.Flush()
	if angle, ok := defaultedSlope(res); ok {
		fmt.Printf("  * cutting slope missing, %g° assumed\n", angle)
	}
	fmt.Println()

	printWarnings(res.Warnings)

	if volumeProfile {
		if g := diagram.AreaProfile(res); g != "" {
			fmt.Println(g)
			fmt.Println()
		}
		if g := diagram.VolumeProfile(res); g != "" {
			fmt.Println(g)
			fmt.Println()
		}
	}

	fmt.Print(diagram.DrawSummaryBox("TOTAL EARTHWORK VOLUME", []string{
		fmt.Sprintf("V = %.3f m³", res.Report.TotalVolume),
		fmt.Sprintf("%s to %s (%s rule)",
			res.Stations[0].Label, res.Stations[len(res.Stations)-1].Label, res.Report.Rule),
	}))
	fmt.Println()

	if volumeOutput != "" {
		decimals := appConfig.Output.Decimals
		if volumeDecimals >= 0 {
			decimals = volumeDecimals
		}
		if err := writeReport(volumeOutput, res, decimals); err != nil {
			fail(err)
		}
		fmt.Printf("Volume sheet exported to: %s\n", volumeOutput)
	}
}

func writeReport(path string, res *pipeline.Result, decimals int32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := sheet.WriteReport(f, res, decimals); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printWarnings(warnings []pipeline.Warning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Println("SKIPPED ROWS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	for _, wr := range warnings {
		fmt.Printf("  ⚠ %v\n", wr.Err)
	}
	fmt.Println()
}

func defaultedSlope(res *pipeline.Result) (float64, bool) {
	for _, s := range res.Stations {
		if s.Record.SlopeDefaulted {
			return s.Record.SlopeAngle, true
		}
	}
	return 0, false
}
