// internal/output/format.go

// Package output renders the per-mode statistics as headerless
// tab-separated reports.
package output

import (
	"math"
	"strconv"
)

// Round3 renders a mean for the report: non-finite values become "0",
// integral values print as plain integers, anything else is
// ceiling-rounded to three decimals and printed with exactly three.
func Round3(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "0"
	}
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(math.Ceil(v*1000)/1000, 'f', 3, 64)
}
