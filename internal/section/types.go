package section

import "fmt"

// CrossSection is the cut/fill geometry of one station.
// Coordinates are in a local system where:
// - X runs across the roadway, origin at the finished centreline
// - Y points upward from formation level
type CrossSection struct {
	// Finished ground polyline, left to right
	Finished [4]Point

	// Original ground polyline, left to right
	Original [4]Point

	// Signed cross-sectional area (m²). Negative when the original
	// width exceeds the finished width (fill rather than cut).
	Area float64

	Slope         float64 // horizontal run per unit rise of the cut face
	H1Coefficient float64 // fraction of the height where the original ground breaks

	// Inputs the section was built from, kept for annotation
	FinishedWidth   float64
	FinishedHeight  float64
	OriginalWidth   float64
	AreaCoefficient float64
	SlopeAngle      float64
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"` // m
	Y float64 `json:"y"` // m
}

// Properties holds measured properties of the drawn fill region
type Properties struct {
	// Area enclosed by the fill boundary (m², unsigned)
	Area float64

	// Centroid of the fill boundary
	CentroidX float64
	CentroidY float64

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// DegenerateSlopeError reports a cutting slope angle for which 1/tan is
// undefined or unbounded (0°, 180° or anything outside that open range)
type DegenerateSlopeError struct {
	AngleDeg float64
}

func (e *DegenerateSlopeError) Error() string {
	return fmt.Sprintf("degenerate cutting slope %g°: angle must be strictly between 0 and 180", e.AngleDeg)
}

// GeometryComputationError reports a non-finite value produced while
// building a section
type GeometryComputationError struct {
	Quantity string
	Value    float64
}

func (e *GeometryComputationError) Error() string {
	return fmt.Sprintf("geometry computation produced non-finite %s (%v)", e.Quantity, e.Value)
}
