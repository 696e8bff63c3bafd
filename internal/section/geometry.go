package section

import (
	"math"

	"github.com/alexiusacademia/goearth/internal/norms"
	"github.com/alexiusacademia/goearth/internal/station"
)

// Builder derives cross-section geometry from validated stations
type Builder struct {
	// BaselineCoefficient is the area coefficient mapped to h1 = 0
	BaselineCoefficient float64
}

// NewBuilder returns a builder using the standard 0.5 baseline
func NewBuilder() Builder {
	return Builder{BaselineCoefficient: norms.BaselineCoefficient}
}

// Slope returns the horizontal run per unit rise of a face cut at angleDeg
// from horizontal. A vertical face (90°) gives exactly 0.
func Slope(angleDeg float64) (float64, error) {
	if math.IsNaN(angleDeg) || angleDeg <= 0 || angleDeg >= 180 {
		return 0, &DegenerateSlopeError{AngleDeg: angleDeg}
	}
	slope := 1 / math.Tan(angleDeg*math.Pi/180)
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return 0, &GeometryComputationError{Quantity: "slope", Value: slope}
	}
	if math.Abs(slope) < norms.SlopeEpsilon {
		slope = 0
	}
	return slope, nil
}

// Build computes the finished and original ground polylines and the
// governing area of one station.
//
//	area = ac × (fw − ow) × fh
//
// The area does not depend on the slope or h1; the polylines do.
func (b Builder) Build(rec station.Record) (CrossSection, error) {
	fw := rec.FinishedWidth
	fh := rec.FinishedHeight
	ow := rec.OriginalWidth
	ac := rec.AreaCoefficient

	slope, err := Slope(rec.SlopeAngle)
	if err != nil {
		return CrossSection{}, err
	}

	h1 := norms.H1Coefficient(ac, b.BaselineCoefficient)

	x1 := -fw / 2
	x3 := fw / 2
	x4 := fw/2 + slope*fh
	x6 := x1 + ow
	x7 := x6 + h1*fh*slope

	cs := CrossSection{
		Finished: [4]Point{
			{X: x1, Y: 0},
			{X: 0, Y: 0},
			{X: x3, Y: 0},
			{X: x4, Y: fh},
		},
		Original: [4]Point{
			{X: x1, Y: 0},
			{X: x6, Y: 0},
			{X: x7, Y: h1 * fh},
			{X: x4, Y: fh},
		},
		Area:            ac * (fw - ow) * fh,
		Slope:           slope,
		H1Coefficient:   h1,
		FinishedWidth:   fw,
		FinishedHeight:  fh,
		OriginalWidth:   ow,
		AreaCoefficient: ac,
		SlopeAngle:      rec.SlopeAngle,
	}

	if err := cs.checkFinite(); err != nil {
		return CrossSection{}, err
	}
	return cs, nil
}

func (cs CrossSection) checkFinite() error {
	if !isFinite(cs.Area) {
		return &GeometryComputationError{Quantity: "area", Value: cs.Area}
	}
	for _, p := range cs.Finished {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return &GeometryComputationError{Quantity: "finished ground vertex", Value: nonFinite(p)}
		}
	}
	for _, p := range cs.Original {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return &GeometryComputationError{Quantity: "original ground vertex", Value: nonFinite(p)}
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func nonFinite(p Point) float64 {
	if !isFinite(p.X) {
		return p.X
	}
	return p.Y
}

// Boundary returns the closed outline of the fill zone: the original ground
// polyline forward followed by the finished ground polyline reversed.
func (cs CrossSection) Boundary() []Point {
	pts := make([]Point, 0, len(cs.Original)+len(cs.Finished))
	pts = append(pts, cs.Original[:]...)
	for i := len(cs.Finished) - 1; i >= 0; i-- {
		pts = append(pts, cs.Finished[i])
	}
	return pts
}

// LabelAnchor is where the area annotation sits on a drawing: midway
// between the top of the finished face and the original ground break.
func (cs CrossSection) LabelAnchor() Point {
	fh := cs.FinishedHeight
	return Point{
		X: (cs.Finished[2].X + cs.Original[2].X) / 2,
		Y: (fh + cs.H1Coefficient*fh) / 2,
	}
}

// CalculateProperties measures the drawn fill region
func (cs CrossSection) CalculateProperties() Properties {
	pts := cs.Boundary()
	props := Properties{}

	props.MinX, props.MaxX = pts[0].X, pts[0].X
	props.MinY, props.MaxY = pts[0].Y, pts[0].Y
	for _, p := range pts {
		props.MinX = math.Min(props.MinX, p.X)
		props.MaxX = math.Max(props.MaxX, p.X)
		props.MinY = math.Min(props.MinY, p.Y)
		props.MaxY = math.Max(props.MaxY, p.Y)
	}

	props.Area, props.CentroidX, props.CentroidY = areaAndCentroid(pts)
	return props
}

// areaAndCentroid uses the shoelace formula
func areaAndCentroid(pts []Point) (area, cx, cy float64) {
	n := len(pts)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
		signedArea += cross
		sumX += (pts[i].X + pts[j].X) * cross
		sumY += (pts[i].Y + pts[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}
