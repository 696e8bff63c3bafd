package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/goearth/internal/pipeline"
	"github.com/alexiusacademia/goearth/internal/section"
)

// DrawASCIICrossSection sketches a station on a character grid:
// '=' finished ground, '*' original ground (drawn over the finished line
// where they coincide), '.' the formation level.
func DrawASCIICrossSection(cs section.CrossSection, label string) string {
	const widthChars = 60
	const heightChars = 14

	props := cs.CalculateProperties()
	spanX := props.MaxX - props.MinX
	spanY := props.MaxY - props.MinY
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}

	grid := make([][]rune, heightChars+1)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", widthChars+1))
	}

	toCell := func(p section.Point) (int, int) {
		col := int(math.Round((p.X - props.MinX) / spanX * widthChars))
		row := heightChars - int(math.Round((p.Y-props.MinY)/spanY*heightChars))
		return col, row
	}

	// Formation level
	_, datumRow := toCell(section.Point{X: 0, Y: 0})
	if datumRow >= 0 && datumRow <= heightChars {
		for c := range grid[datumRow] {
			grid[datumRow][c] = '.'
		}
	}

	drawPolyline := func(pts []section.Point, mark rune) {
		for i := 1; i < len(pts); i++ {
			c0, r0 := toCell(pts[i-1])
			c1, r1 := toCell(pts[i])
			steps := max(abs(c1-c0), abs(r1-r0))
			for s := 0; s <= steps; s++ {
				t := 0.0
				if steps > 0 {
					t = float64(s) / float64(steps)
				}
				c := c0 + int(math.Round(t*float64(c1-c0)))
				r := r0 + int(math.Round(t*float64(r1-r0)))
				if r >= 0 && r <= heightChars && c >= 0 && c <= widthChars {
					grid[r][c] = mark
				}
			}
		}
	}
	drawPolyline(cs.Finished[:], '=')
	drawPolyline(cs.Original[:], '*')

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  CROSS-SECTION  Chainage %s\n", label))
	sb.WriteString("  ─────────────────────────────\n")
	for _, line := range grid {
		sb.WriteString("  │")
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  === = Finished ground\n")
	sb.WriteString("  *** = Original ground\n")
	sb.WriteString(fmt.Sprintf("  Area = %.2f m²  (drawn %.2f m²)\n", cs.Area, props.Area))

	return sb.String()
}

// AreaProfile charts the cross-sectional area at each station along the
// alignment
func AreaProfile(res *pipeline.Result) string {
	areas := res.Areas()
	if len(areas) < 2 {
		return ""
	}
	return asciigraph.Plot(areas,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("Area (m²) by station, %s to %s",
			res.Stations[0].Label, res.Stations[len(res.Stations)-1].Label)),
	)
}

// VolumeProfile charts the running earthwork volume
func VolumeProfile(res *pipeline.Result) string {
	if res.Report == nil || len(res.Report.Segments) == 0 {
		return ""
	}
	return asciigraph.Plot(res.Report.Cumulative(),
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("Cumulative volume (m³), %s rule", res.Report.Rule)),
	)
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
