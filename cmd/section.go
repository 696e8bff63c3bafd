package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/alexiusacademia/goearth/internal/diagram"
	"github.com/alexiusacademia/goearth/internal/norms"
	"github.com/alexiusacademia/goearth/internal/pipeline"
	"github.com/alexiusacademia/goearth/internal/station"
	"github.com/spf13/cobra"
)

var (
	// Station inputs
	sectionChainage string
	sectionFw       float64
	sectionFh       float64
	sectionOw       float64
	sectionAc       float64
	sectionType     string
	sectionAngle    string

	// Output options
	sectionShowDiagram bool
	sectionExportFile  string
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Compute the cross-section of a single station",
	Long: `Build the cut/fill cross-section of one chainage station and report
its area and vertices.

Geometry:
  slope = 1 / tan(angle)          horizontal run per unit rise
  h1    = (ac − 0.5) × 2          height fraction of the original ground break
  A     = ac × (fw − ow) × fh

The area coefficient can be given directly (--ac) or by cutting type:
  fresh  0.50
  back   0.67
  box    1.00

Examples:
  # Fresh cutting, 10 m finished width over 6 m existing road, 2 m high
  goearth section --fw 10 --fh 2 --ow 6 --type fresh --angle 75

  # Box cutting at chainage 2+350 with an exported drawing
  goearth section --chainage 2350 --fw 7.5 --fh 3 --ow 4 --ac 1 -o ch2350.png`,
	Run: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	// Geometry flags
	sectionCmd.Flags().StringVar(&sectionChainage, "chainage", "0", "Chainage (e.g. 2350 or 2+350)")
	sectionCmd.Flags().Float64Var(&sectionFw, "fw", 0, "Finished roadway width (m) [required]")
	sectionCmd.Flags().Float64Var(&sectionFh, "fh", 0, "Finished vertical height (m) [required]")
	sectionCmd.Flags().Float64Var(&sectionOw, "ow", 0, "Original roadway width (m)")

	// Coefficient flags
	sectionCmd.Flags().Float64Var(&sectionAc, "ac", norms.FreshCutting, "Area coefficient")
	sectionCmd.Flags().StringVarP(&sectionType, "type", "t", "", "Cutting type: fresh, back or box (overrides --ac)")
	sectionCmd.Flags().StringVarP(&sectionAngle, "angle", "a", "", "Cutting slope, degrees from horizontal (blank uses the default)")

	// Output flags
	sectionCmd.Flags().BoolVar(&sectionShowDiagram, "diagram", false, "Show ASCII cross-section sketch")
	sectionCmd.Flags().StringVarP(&sectionExportFile, "output", "o", "", "Export drawing to file (png, svg, pdf)")

	sectionCmd.MarkFlagRequired("fw")
	sectionCmd.MarkFlagRequired("fh")
}

func runSection(cmd *cobra.Command, args []string) {
	ac := sectionAc
	if sectionType != "" {
		ct, err := norms.LookupCutting(sectionType)
		if err != nil {
			fail(err)
		}
		ac = ct.Coefficient
	}

	cfg, err := engineConfig(cmd)
	if err != nil {
		fail(err)
	}

	// Manual entry goes through the same validation as a sheet row
	raw := station.NewRawRow(1, []string{
		"1",
		sectionChainage,
		formatFloat(sectionFw),
		formatFloat(sectionFh),
		formatFloat(sectionOw),
		formatFloat(ac),
		sectionAngle,
	})
	res, err := pipeline.Run([]station.RawRow{raw}, cfg)
	if err != nil {
		if res != nil && len(res.Warnings) > 0 {
			fail(res.Warnings[0].Err)
		}
		fail(err)
	}
	st := res.Stations[0]
	cs := st.Section
	props := cs.CalculateProperties()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     CROSS-SECTION - CHAINAGE %s\n", st.Label)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Finished roadway width (fw):\t%.3f m\n", cs.FinishedWidth)
	fmt.Fprintf(w, "  Finished vertical height (fh):\t%.3f m\n", cs.FinishedHeight)
	fmt.Fprintf(w, "  Original roadway width (ow):\t%.3f m\n", cs.OriginalWidth)
	if ct, ok := norms.ClassifyCoefficient(cs.AreaCoefficient, 0.005); ok {
		fmt.Fprintf(w, "  Area coefficient (ac):\t%.2f (%s)\n", cs.AreaCoefficient, ct.Description)
	} else {
		fmt.Fprintf(w, "  Area coefficient (ac):\t%.2f\n", cs.AreaCoefficient)
	}
	angleNote := ""
	if st.Record.SlopeDefaulted {
		angleNote = " (default)"
	}
	fmt.Fprintf(w, "  Cutting slope:\t%.1f°%s\n", cs.SlopeAngle, angleNote)
	w.Flush()
	fmt.Println()

	fmt.Println("GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Slope (run per rise):\t%.4f\n", cs.Slope)
	fmt.Fprintf(w, "  h1 coefficient:\t%.4f\n", cs.H1Coefficient)
	fmt.Fprintf(w, "  Drawn fill area:\t%.3f m²\n", props.Area)
	fmt.Fprintf(w, "  Fill centroid:\t(%.3f, %.3f)\n", props.CentroidX, props.CentroidY)
	w.Flush()
	fmt.Println()

	fmt.Println("VERTICES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tFinished X\tFinished Y\tOriginal X\tOriginal Y\n")
	fmt.Fprintf(w, "  ─\t──────────\t──────────\t──────────\t──────────\n")
	for i := range cs.Finished {
		f, o := cs.Finished[i], cs.Original[i]
		fmt.Fprintf(w, "  %d\t%.3f\t%.3f\t%.3f\t%.3f\n", i+1, f.X, f.Y, o.X, o.Y)
	}
	w.Flush()
	fmt.Println()

	kind := "CUT"
	if cs.Area < 0 {
		kind = "FILL"
	}
	fmt.Printf("  ╔═════════════════════════════════════════════════╗\n")
	fmt.Printf("  ║  %s AREA A = %.3f m²\n", kind, cs.Area)
	fmt.Printf("  ╚═════════════════════════════════════════════════╝\n")
	fmt.Println()

	if sectionShowDiagram {
		fmt.Println(diagram.DrawASCIICrossSection(cs, st.Label))
	}

	if sectionExportFile != "" {
		if err := diagram.ExportCrossSection(cs, st.Label, sectionExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", sectionExportFile)
		}
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
