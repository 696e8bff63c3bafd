package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexiusacademia/goearth/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	plotFile    string
	plotDir     string
	plotFormat  string
	plotWorkers int
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Export cross-section drawings for every station",
	Long: `Read a survey sheet and write one cross-section drawing per valid
station. Each drawing shows the finished ground (solid), the original
ground (dashed) and the shaded cut zone with its area.

Drawings are rendered concurrently; volumes are not affected.

Examples:
  goearth plot -f Sample.xlsx -d plots
  goearth plot -f survey.csv -d plots --format svg --workers 8`,
	Run: runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)

	plotCmd.Flags().StringVarP(&plotFile, "file", "f", "", "Survey sheet (.xlsx or .csv) [required]")
	plotCmd.Flags().StringVarP(&plotDir, "dir", "d", "plots", "Output directory")
	plotCmd.Flags().StringVar(&plotFormat, "format", "", "Image format: png, svg or pdf (default from config)")
	plotCmd.Flags().IntVar(&plotWorkers, "workers", 0, "Concurrent renderers (default from config)")
	plotCmd.MarkFlagRequired("file")
}

func runPlot(cmd *cobra.Command, args []string) {
	res, err := runSurvey(cmd, plotFile)
	if err != nil {
		fail(err)
	}

	format := appConfig.Output.PlotFormat
	if plotFormat != "" {
		format = plotFormat
	}
	switch format {
	case "png", "svg", "pdf":
	default:
		fail(fmt.Errorf("unsupported plot format %q (want png, svg or pdf)", format))
	}
	workers := appConfig.Output.Workers
	if plotWorkers > 0 {
		workers = plotWorkers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	printWarnings(res.Warnings)

	paths, err := diagram.ExportAll(ctx, res.Stations, plotDir, format, workers)
	if err != nil {
		fail(err)
	}
	for _, p := range paths {
		fmt.Printf("  %s\n", p)
	}
	fmt.Println()
	fmt.Printf("%d cross-sections exported to: %s\n", len(paths), plotDir)
}
