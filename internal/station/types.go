package station

import "github.com/alexiusacademia/goearth/internal/norms"

// Column positions of a survey row
const (
	ColSerialNo = iota
	ColChainage
	ColFinishedWidth
	ColFinishedHeight
	ColOriginalWidth
	ColAreaCoefficient
	ColCuttingSlope

	NumColumns
)

// ColumnNames are the expected survey sheet headings, in positional order
var ColumnNames = [NumColumns]string{
	"S.No",
	"Chainage",
	"Finished Roadway Width",
	"Finished Vertical Height",
	"Original Roadway Width",
	"Area Coefficient",
	"Cutting slope",
}

// RawRow is one survey row as supplied by the spreadsheet or a manual-entry
// form. Cells are positional and already aligned to ColumnNames.
type RawRow struct {
	Row   int // 1-based source row, used only for error context
	Cells [NumColumns]string
}

// NewRawRow builds a RawRow from positional cells. Missing trailing cells are
// left blank; cells past the seventh are ignored.
func NewRawRow(row int, cells []string) RawRow {
	r := RawRow{Row: row}
	copy(r.Cells[:], cells)
	return r
}

// Record is one validated cross-section station
type Record struct {
	Row            int
	SequenceNumber string
	ChainageText   string  // chainage as written on the sheet
	Chainage       float64 // parsed distance along the alignment

	// Section parameters (m)
	FinishedWidth  float64 // fw - finished roadway width
	FinishedHeight float64 // fh - vertical height of the cut face
	OriginalWidth  float64 // ow - existing roadway width at the base

	AreaCoefficient float64 // ac - 0.5 fresh, 0.67 back, 1.0 box
	SlopeAngle      float64 // cutting slope, degrees from horizontal
	SlopeDefaulted  bool    // true when SlopeAngle came from the lenient default
}

// SlopePolicy selects how a missing or invalid cutting slope is treated
type SlopePolicy int

const (
	// Lenient defaults a missing or non-numeric slope and leaves a zero slope
	// to be rejected for that row only.
	Lenient SlopePolicy = iota
	// Strict treats any missing, zero or non-numeric slope as fatal to the run.
	Strict
)

func (p SlopePolicy) String() string {
	if p == Strict {
		return "strict"
	}
	return "lenient"
}

// Options controls row validation
type Options struct {
	Policy            SlopePolicy
	DefaultSlopeAngle float64
}

// DefaultOptions returns lenient validation with the standard 75° slope
func DefaultOptions() Options {
	return Options{
		Policy:            Lenient,
		DefaultSlopeAngle: norms.DefaultSlopeAngle,
	}
}
