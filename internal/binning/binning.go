// internal/binning/binning.go

// Package binning converts raw e-value and identity figures into the
// coarse magnitudes and fixed buckets the profile reports use.
package binning

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// EvalBins are the e-value exponent thresholds, least to most negative.
// Exponents more extreme than the last bin, and exactly 0, collapse to it.
var EvalBins = []int{-5, -10, -20, -30, -1000}

// IdentBins are the identity-percentage thresholds in ascending order.
var IdentBins = []int{60, 80, 90, 97, 100}

// evalRe matches upstream scientific notation: one mantissa digit, an
// optional single decimal digit, then a signed zero-padded exponent.
var evalRe = regexp.MustCompile(`^(\d(\.\d)?)e([-+])?0?(\d+)$`)

// Exponent returns the base-10 order of magnitude of an e-value given
// as text. Values that do not match the scientific form fall back to
// the negated count of digits after the decimal point. Non-numeric
// text is an error; callers treat it as fatal.
func Exponent(s string) (int, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "bad e-value %q", s)
	}
	if v == 0 {
		return 0, nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Errorf("bad e-value %q", s)
	}
	// Normalize through float text so "1e-5", "1E-05" and "0.00001"
	// all reduce the way the upstream pipeline renders them.
	t := strconv.FormatFloat(v, 'g', -1, 64)
	if m := evalRe.FindStringSubmatch(t); m != nil {
		n, err := strconv.Atoi(m[4])
		if err != nil {
			return 0, errors.Wrapf(err, "bad e-value %q", s)
		}
		if m[3] == "-" {
			return -n, nil
		}
		return n, nil
	}
	// Only plain integral text reduces like "12.0"; a dotless form
	// that kept its exponent marker (negative values, for one) has no
	// decimal digits to count and is a fatal value error.
	if !strings.ContainsAny(t, ".e") {
		t += ".0"
	}
	parts := strings.Split(t, ".")
	if len(parts) != 2 {
		return 0, errors.Errorf("bad e-value %q", s)
	}
	return -len(parts[1]), nil
}

// EBin returns the first e-value threshold the exponent is >= to.
// Zero and anything below the final threshold collapse to it.
func EBin(exp int) int {
	last := EvalBins[len(EvalBins)-1]
	if exp == 0 || exp < last {
		return last
	}
	for _, e := range EvalBins {
		if exp >= e {
			return e
		}
	}
	return EvalBins[0]
}

// IBin returns the smallest identity threshold >= the value, falling
// back to the lowest bin for out-of-range input.
func IBin(pct float64) int {
	for _, i := range IdentBins {
		if pct <= float64(i) {
			return i
		}
	}
	return IdentBins[0]
}
