// Package volume integrates station areas along the alignment into
// earthwork volumes.
package volume

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Rule selects how the volume between two stations is estimated
type Rule int

const (
	// EndArea averages the two bounding areas (trapezoidal rule).
	EndArea Rule = iota
	// SingleEnd uses only the later station's area. It is biased and kept
	// for agreement with legacy volume sheets.
	SingleEnd
)

func (r Rule) String() string {
	switch r {
	case EndArea:
		return "end-area"
	case SingleEnd:
		return "single-end"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// Formula is a short human-readable form of the rule
func (r Rule) Formula() string {
	if r == SingleEnd {
		return "V = ΔCh × A₂"
	}
	return "V = ΔCh × (A₁ + A₂) / 2"
}

// ParseRule reads a rule name as written in config files and flags
func ParseRule(s string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "end-area", "endarea", "trapezoidal", "average-end-area":
		return EndArea, nil
	case "single-end", "singleend", "legacy":
		return SingleEnd, nil
	default:
		return EndArea, fmt.Errorf("unknown integration rule %q (want end-area or single-end)", s)
	}
}

// ErrNoStations is returned when there is nothing to integrate
var ErrNoStations = errors.New("volume: at least one station is required")

// NonMonotonicChainageError reports a station whose chainage is behind the
// previous one. The whole report is unreliable when this occurs.
type NonMonotonicChainageError struct {
	Index int // position of the later station in the input
	From  float64
	To    float64
}

func (e *NonMonotonicChainageError) Error() string {
	return fmt.Sprintf("chainage decreases from %g to %g at station %d", e.From, e.To, e.Index+1)
}

// Station is one (chainage, area) pair in alignment order
type Station struct {
	Chainage float64
	Area     float64
}

// Segment is the earthwork between two adjacent stations
type Segment struct {
	FromChainage  float64
	ToChainage    float64
	DeltaChainage float64
	FromArea      float64
	ToArea        float64
	Volume        float64
	Cumulative    float64 // running total up to and including this segment
}

// Report is the volume summary of one run
type Report struct {
	Rule        Rule
	Segments    []Segment
	TotalVolume float64
}

// SegmentVolume applies rule to one span. delta may be negative here; the
// ordering check belongs to Integrate.
func SegmentVolume(rule Rule, fromArea, toArea, delta float64) float64 {
	if delta == 0 {
		return 0
	}
	if rule == SingleEnd {
		return delta * toArea
	}
	return delta * (fromArea + toArea) / 2
}

// Integrate computes the volume of every span between consecutive stations.
// A decreasing chainage fails the whole integration.
func Integrate(stations []Station, rule Rule) (*Report, error) {
	if len(stations) == 0 {
		return nil, ErrNoStations
	}
	if rule != EndArea && rule != SingleEnd {
		return nil, fmt.Errorf("volume: unsupported rule %v", rule)
	}

	segments := make([]Segment, 0, len(stations)-1)
	volumes := make([]float64, 0, len(stations)-1)
	var running float64
	for i := 1; i < len(stations); i++ {
		prev, cur := stations[i-1], stations[i]
		delta := cur.Chainage - prev.Chainage
		if delta < 0 {
			return nil, &NonMonotonicChainageError{Index: i, From: prev.Chainage, To: cur.Chainage}
		}

		v := SegmentVolume(rule, prev.Area, cur.Area, delta)
		volumes = append(volumes, v)
		running += v
		segments = append(segments, Segment{
			FromChainage:  prev.Chainage,
			ToChainage:    cur.Chainage,
			DeltaChainage: delta,
			FromArea:      prev.Area,
			ToArea:        cur.Area,
			Volume:        v,
			Cumulative:    running,
		})
	}

	return &Report{
		Rule:        rule,
		Segments:    segments,
		TotalVolume: floats.Sum(volumes),
	}, nil
}

// VolumeAt returns the volume of the segment ending at station i, which is
// how volume sheets list it (0 for the first station).
func (r *Report) VolumeAt(i int) float64 {
	if i <= 0 || i > len(r.Segments) {
		return 0
	}
	return r.Segments[i-1].Volume
}

// Cumulative returns the running total at each station, starting at 0
func (r *Report) Cumulative() []float64 {
	out := make([]float64, len(r.Segments)+1)
	for i, s := range r.Segments {
		out[i+1] = s.Cumulative
	}
	return out
}
