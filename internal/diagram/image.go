package diagram

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/goearth/internal/pipeline"
	"github.com/alexiusacademia/goearth/internal/section"
)

var (
	finishedColor = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	originalColor = color.RGBA{R: 220, G: 0, B: 0, A: 255}
	fillColor     = color.RGBA{R: 128, G: 128, B: 128, A: 80}
)

// CrossSectionPlot builds the plot of one station: finished ground as a
// solid green line, original ground dashed red, the fill zone shaded gray.
func CrossSectionPlot(cs section.CrossSection, label string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Chainage " + label
	p.X.Label.Text = "Roadway Width (m)"
	p.Y.Label.Text = "Height (m)"
	p.Add(plotter.NewGrid())

	fill, err := plotter.NewPolygon(toXYs(cs.Boundary()))
	if err != nil {
		return nil, err
	}
	fill.Color = fillColor
	fill.LineStyle.Color = color.Black
	fill.LineStyle.Width = vg.Points(0.5)
	p.Add(fill)

	finished, err := plotter.NewLine(toXYs(cs.Finished[:]))
	if err != nil {
		return nil, err
	}
	finished.LineStyle.Width = vg.Points(2)
	finished.LineStyle.Color = finishedColor
	p.Add(finished)

	original, err := plotter.NewLine(toXYs(cs.Original[:]))
	if err != nil {
		return nil, err
	}
	original.LineStyle.Width = vg.Points(2)
	original.LineStyle.Color = originalColor
	original.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(original)

	props := cs.CalculateProperties()

	// Formation level reference
	datum, err := plotter.NewLine(plotter.XYs{
		{X: props.MinX - 0.5, Y: 0},
		{X: props.MaxX + 0.5, Y: 0},
	})
	if err != nil {
		return nil, err
	}
	datum.LineStyle.Width = vg.Points(0.75)
	datum.LineStyle.Color = color.Black
	datum.LineStyle.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
	p.Add(datum)

	fh := cs.FinishedHeight
	anchor := cs.LabelAnchor()
	labels := []struct {
		x, y float64
		text string
	}{
		{anchor.X, anchor.Y, fmt.Sprintf("Area = %.2f m²", cs.Area)},
		{props.MinX, fh + 0.1, fmt.Sprintf("FR: %g m", cs.FinishedWidth)},
		{props.MinX, fh + 0.25, fmt.Sprintf("OR: %g m", cs.OriginalWidth)},
		{props.MinX, fh + 0.4, fmt.Sprintf("Height: %g m", fh)},
	}
	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return nil, err
		}
		p.Add(l)
	}

	return p, nil
}

// ExportCrossSection saves one station plot. The format follows the file
// extension (png, svg, pdf); anything else is saved as png.
func ExportCrossSection(cs section.CrossSection, label, filename string) error {
	p, err := CrossSectionPlot(cs, label)
	if err != nil {
		return err
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// FileName is the file a station plot is written to
func FileName(index int, label, format string) string {
	return fmt.Sprintf("%03d_chainage_%s.%s", index+1, sanitize(label), format)
}

// ExportAll renders every station into dir, at most workers at a time.
// It returns the written paths in station order.
func ExportAll(ctx context.Context, stations []pipeline.StationResult, dir, format string, workers int) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	paths := make([]string, len(stations))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, st := range stations {
		paths[i] = filepath.Join(dir, FileName(i, st.Label, format))
		path := paths[i]
		cs, label := st.Section, st.Label
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := ExportCrossSection(cs, label, path); err != nil {
				return fmt.Errorf("chainage %s: %w", label, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func toXYs(pts []section.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return xys
}

func sanitize(label string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			return r
		case r == '+', r == '-', r == '.', r == '_':
			return r
		default:
			return '_'
		}
	}, label)
}
