// internal/profile/profile.go

// Package profile folds expanded similarity hit records into keyed
// running statistics, one folder per summary mode.
//
// Input precondition: rows sharing a (fragment, match-key) pair must be
// contiguous in the stream. The md5 folder's dedup gate counts each
// pair once per contiguous block only; non-contiguous repeats are
// folded again (use the strict gate for a full-stream guarantee).
package profile

import (
	"bufio"
	"io"
	"strings"
)

// abundanceSource resolves a fragment's weight; satisfied by
// lookup.Abundance and by plain map stubs in tests.
type abundanceSource interface {
	Weight(frag string) int
}

// Folder consumes one tab-split record. Rows with too few fields or
// empty identifiers are skipped silently; malformed numeric fields
// return an error, which callers treat as fatal.
type Folder interface {
	Fold(fields []string) error
}

// Stats is one key's running abundance-weighted sums.
type Stats struct {
	Abun int64
	ESum float64
	LSum float64
	ISum float64
}

func (s *Stats) fold(w int, exp, length, ident float64) {
	s.Abun += int64(w)
	s.ESum += float64(w) * exp
	s.LSum += float64(w) * length
	s.ISum += float64(w) * ident
}

// Scan streams r line by line into the folder. Blank lines are
// skipped; the first fold error aborts the scan.
func Scan(r io.Reader, f Folder) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := f.Fold(strings.Split(line, "\t")); err != nil {
			return err
		}
	}
	return sc.Err()
}
