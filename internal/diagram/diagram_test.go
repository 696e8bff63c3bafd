package diagram

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goearth/internal/pipeline"
	"github.com/alexiusacademia/goearth/internal/station"
)

func sampleResult(t *testing.T) *pipeline.Result {
	t.Helper()
	rows := []station.RawRow{
		station.NewRawRow(2, []string{"1", "0", "10", "2", "6", "0.5", "60"}),
		station.NewRawRow(3, []string{"2", "50", "9", "2.5", "5", "0.67", "70"}),
		station.NewRawRow(4, []string{"3", "120", "8", "3", "4", "1.0", "75"}),
	}
	res, err := pipeline.Run(rows, pipeline.DefaultConfig())
	require.NoError(t, err)
	return res
}

func TestCrossSectionPlot(t *testing.T) {
	res := sampleResult(t)

	p, err := CrossSectionPlot(res.Stations[0].Section, res.Stations[0].Label)
	require.NoError(t, err)
	assert.Equal(t, "Chainage 0+000", p.Title.Text)
}

func TestExportCrossSection(t *testing.T) {
	res := sampleResult(t)
	dir := t.TempDir()

	for _, ext := range []string{"png", "svg", "pdf"} {
		path := filepath.Join(dir, "sub", "section."+ext)
		require.NoError(t, ExportCrossSection(res.Stations[1].Section, res.Stations[1].Label, path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestExportAll(t *testing.T) {
	res := sampleResult(t)
	dir := filepath.Join(t.TempDir(), "plots")

	paths, err := ExportAll(context.Background(), res.Stations, dir, "png", 2)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, filepath.Join(dir, "003_chainage_0+120.png"), paths[2])
	for _, p := range paths {
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}
}

func TestExportAllCancelled(t *testing.T) {
	res := sampleResult(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ExportAll(ctx, res.Stations, t.TempDir(), "png", 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "001_chainage_2+350.png", FileName(0, "2+350", "png"))
	assert.Equal(t, "012_chainage_CH_A_1.svg", FileName(11, "CH A/1", "svg"))
}

func TestDrawASCIICrossSection(t *testing.T) {
	res := sampleResult(t)
	out := DrawASCIICrossSection(res.Stations[2].Section, res.Stations[2].Label)

	assert.Contains(t, out, "Chainage 0+120")
	assert.Contains(t, out, "=")
	assert.Contains(t, out, "*")
	assert.Contains(t, out, "Area = 12.00 m²")
}

func TestProfiles(t *testing.T) {
	res := sampleResult(t)

	area := AreaProfile(res)
	assert.Contains(t, area, "Area (m²) by station, 0+000 to 0+120")

	vol := VolumeProfile(res)
	assert.Contains(t, vol, "end-area rule")
	assert.Greater(t, strings.Count(vol, "\n"), 5)

	single := &pipeline.Result{Stations: res.Stations[:1]}
	assert.Empty(t, AreaProfile(single))
	assert.Empty(t, VolumeProfile(single))
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("TOTAL", []string{"Volume = 123.45 m³"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	for _, l := range lines[1:] {
		assert.Equal(t, len([]rune(lines[0])), len([]rune(l)))
	}
}
