package station

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexiusacademia/goearth/internal/norms"
)

var (
	errNegativeChainage = errors.New("chainage must not be negative")
	errNonFinite        = errors.New("value is not finite")
)

// ParseChainage converts a chainage cell to a distance. Every "+" is removed
// before parsing, so "2+350" reads as 2350 and "1500" as 1500.
func ParseChainage(s string) (float64, error) {
	digits := strings.ReplaceAll(strings.TrimSpace(s), "+", "")
	if digits == "" {
		return 0, &InvalidChainageError{Value: s, Err: errors.New("empty")}
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, &InvalidChainageError{Value: s, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InvalidChainageError{Value: s, Err: errNonFinite}
	}
	if v < 0 {
		return 0, &InvalidChainageError{Value: s, Err: errNegativeChainage}
	}
	return v, nil
}

// Label formats a chainage as km+mmm (e.g. 2350 -> "2+350"). Values that do
// not parse as a plain number are returned unchanged.
func Label(raw string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return raw
	}
	return FormatChainage(v)
}

// FormatChainage formats a distance as km+mmm, truncating fractional metres.
func FormatChainage(ch float64) string {
	m := int64(ch)
	return fmt.Sprintf("%d+%03d", m/norms.MetresPerKilometre, m%norms.MetresPerKilometre)
}
