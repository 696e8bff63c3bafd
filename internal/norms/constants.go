package norms

// Earthwork defaults for roadway cutting

const (
	// DefaultSlopeAngle is the cutting slope (degrees from horizontal)
	// assumed when a survey row leaves it blank and the lenient policy is active.
	DefaultSlopeAngle = 75.0

	// BaselineCoefficient is the area coefficient at which the original
	// ground breaks at the formation level (h1 = 0).
	BaselineCoefficient = 0.5

	// MetresPerKilometre splits a chainage into its km+m label.
	MetresPerKilometre = 1000

	// Cutting style area coefficients
	FreshCutting = 0.5
	BackCutting  = 0.67
	BoxCutting   = 1.0

	// SlopeEpsilon is the magnitude below which a computed slope is taken
	// as exactly vertical.
	SlopeEpsilon = 1e-12
)

// H1Coefficient maps an area coefficient to the fraction of the cut height
// at which the original ground polyline breaks.
// h1 = (ac - baseline) × 2
func H1Coefficient(ac, baseline float64) float64 {
	return (ac - baseline) * 2
}
