// internal/profile/lca.go
package profile

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"simsabund/internal/binning"
)

// LCAStats extends the running sums with the taxonomic level of the
// last folded row and the cumulative count of checksum tokens seen.
type LCAStats struct {
	Stats
	Level     int
	Checksums int
}

// LCA folds taxonomy-keyed records. Each row carries semicolon lists
// (one element per underlying hit) that are averaged before folding.
// Unlike the md5 folder there is no per-fragment dedup: every
// qualifying row counts.
//
// Row layout (>= 7 fields): checksum list, fragment, identity list,
// length list, e-value list, taxonomy id, level.
type LCA struct {
	abund abundanceSource
	data  map[string]*LCAStats
}

func NewLCA(abund abundanceSource) *LCA {
	return &LCA{abund: abund, data: make(map[string]*LCAStats)}
}

// Data returns the per-taxon statistics.
func (l *LCA) Data() map[string]*LCAStats { return l.data }

func (l *LCA) Fold(fields []string) error {
	if len(fields) < 7 {
		return nil
	}
	md5s, frag, lca := fields[0], fields[1], fields[5]
	if frag == "" || md5s == "" || lca == "" {
		return nil
	}
	st, ok := l.data[lca]
	if !ok {
		st = &LCAStats{}
		l.data[lca] = st
	}
	w := l.abund.Weight(frag)
	if w < 1 {
		return nil
	}

	eAvg, err := meanExponent(fields[4])
	if err != nil {
		return err
	}
	lAvg, err := meanInt(fields[3])
	if err != nil {
		return errors.Wrapf(err, "bad length list %q", fields[3])
	}
	iAvg, err := meanFloat(fields[2])
	if err != nil {
		return errors.Wrapf(err, "bad identity list %q", fields[2])
	}
	level, err := strconv.Atoi(fields[6])
	if err != nil {
		return errors.Wrapf(err, "bad level %q", fields[6])
	}

	st.Checksums += len(strings.Split(md5s, ";"))
	st.fold(w, eAvg, lAvg, iAvg)
	st.Level = level
	return nil
}

func meanExponent(list string) (float64, error) {
	parts := strings.Split(list, ";")
	sum := 0
	for _, p := range parts {
		e, err := binning.Exponent(p)
		if err != nil {
			return 0, err
		}
		sum += e
	}
	return float64(sum) / float64(len(parts)), nil
}

func meanInt(list string) (float64, error) {
	parts := strings.Split(list, ";")
	sum := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, err
		}
		sum += n
	}
	return float64(sum) / float64(len(parts)), nil
}

func meanFloat(list string) (float64, error) {
	parts := strings.Split(list, ";")
	sum := 0.0
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum / float64(len(parts)), nil
}
