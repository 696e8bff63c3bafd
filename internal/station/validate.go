package station

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Validate converts one raw survey row into a Record.
//
// Blank width, height or coefficient cells give an IncompleteRowError. The
// cutting slope follows opts.Policy: under Strict a blank, zero, non-numeric
// or out-of-range angle is an InvalidSlopeError; under Lenient a blank or
// non-numeric angle takes opts.DefaultSlopeAngle and anything else numeric is
// passed through for the geometry builder to judge.
func Validate(raw RawRow, opts Options) (Record, error) {
	rec := Record{
		Row:            raw.Row,
		SequenceNumber: strings.TrimSpace(raw.Cells[ColSerialNo]),
		ChainageText:   strings.TrimSpace(raw.Cells[ColChainage]),
	}

	// Required numeric fields are checked before the chainage so a blank
	// row is reported as incomplete rather than as a bad chainage.
	required := []struct {
		col    int
		dst    *float64
		nonNeg bool
	}{
		{ColFinishedWidth, &rec.FinishedWidth, true},
		{ColFinishedHeight, &rec.FinishedHeight, true},
		{ColOriginalWidth, &rec.OriginalWidth, true},
		{ColAreaCoefficient, &rec.AreaCoefficient, false},
	}
	for _, f := range required {
		cell := strings.TrimSpace(raw.Cells[f.col])
		if cell == "" {
			return Record{}, &IncompleteRowError{Row: raw.Row, Field: ColumnNames[f.col]}
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return Record{}, &InvalidFieldError{Row: raw.Row, Field: ColumnNames[f.col], Value: cell, Reason: "not a number"}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Record{}, &InvalidFieldError{Row: raw.Row, Field: ColumnNames[f.col], Value: cell, Reason: "not finite"}
		}
		if f.nonNeg && v < 0 {
			return Record{}, &InvalidFieldError{Row: raw.Row, Field: ColumnNames[f.col], Value: cell, Reason: "must not be negative"}
		}
		*f.dst = v
	}

	ch, err := ParseChainage(rec.ChainageText)
	if err != nil {
		var ce *InvalidChainageError
		if errors.As(err, &ce) {
			ce.Row = raw.Row
		}
		return Record{}, err
	}
	rec.Chainage = ch

	angle, defaulted, err := parseSlope(raw, rec.ChainageText, opts)
	if err != nil {
		return Record{}, err
	}
	rec.SlopeAngle = angle
	rec.SlopeDefaulted = defaulted

	return rec, nil
}

func parseSlope(raw RawRow, chainage string, opts Options) (float64, bool, error) {
	cell := strings.TrimSpace(raw.Cells[ColCuttingSlope])
	v, err := strconv.ParseFloat(cell, 64)
	numeric := err == nil && !math.IsNaN(v) && !math.IsInf(v, 0)

	if opts.Policy == Strict {
		if !numeric || v <= 0 || v >= 180 {
			return 0, false, &InvalidSlopeError{Row: raw.Row, Chainage: chainage, Value: cell}
		}
		return v, false, nil
	}

	if !numeric {
		return opts.DefaultSlopeAngle, true, nil
	}
	return v, false, nil
}
