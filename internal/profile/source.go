// internal/profile/source.go
package profile

import (
	"strconv"

	"github.com/pkg/errors"

	"simsabund/internal/binning"
)

// Source folds source-keyed records into two histograms per source
// label: abundance by e-value bin and abundance by identity bin.
// Sources are remembered in discovery order for the report.
//
// Row layout (>= 6 fields): unused checksum, fragment, identity,
// unused length, e-value, source label.
type Source struct {
	abund abundanceSource

	order      []string
	registered map[string]struct{}
	eval       map[string]map[int]int64
	ident      map[string]map[int]int64
}

func NewSource(abund abundanceSource) *Source {
	return &Source{
		abund:      abund,
		registered: make(map[string]struct{}),
		eval:       make(map[string]map[int]int64),
		ident:      make(map[string]map[int]int64),
	}
}

// Order returns the source labels in discovery order.
func (s *Source) Order() []string { return s.order }

// EvalHist returns abundance counts keyed by source and e-value bin.
func (s *Source) EvalHist() map[string]map[int]int64 { return s.eval }

// IdentHist returns abundance counts keyed by source and identity bin.
func (s *Source) IdentHist() map[string]map[int]int64 { return s.ident }

func (s *Source) Fold(fields []string) error {
	if len(fields) < 6 {
		return nil
	}
	frag, source := fields[1], fields[5]
	if frag == "" || source == "" {
		return nil
	}
	ident, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return errors.Wrapf(err, "bad identity %q", fields[2])
	}
	exp, err := binning.Exponent(fields[4])
	if err != nil {
		return err
	}
	w := s.abund.Weight(frag)
	if w < 1 {
		return nil
	}

	if _, ok := s.registered[source]; !ok {
		s.registered[source] = struct{}{}
		s.order = append(s.order, source)
	}
	bump(s.eval, source, binning.EBin(exp), int64(w))
	bump(s.ident, source, binning.IBin(ident), int64(w))
	return nil
}

func bump(h map[string]map[int]int64, source string, bin int, w int64) {
	m, ok := h[source]
	if !ok {
		m = make(map[int]int64)
		h[source] = m
	}
	m[bin] += w
}
