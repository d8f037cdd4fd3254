// internal/profile/md5.go
package profile

import (
	"strconv"

	"github.com/pkg/errors"

	"simsabund/internal/binning"
)

// MD5 folds checksum-keyed records: one stats bucket per match
// checksum, each (fragment, checksum) pair counted once per gate.
//
// Row layout (>= 12 fields): fragment, checksum, identity, length,
// 6 unused alignment columns, e-value, unused bit score.
type MD5 struct {
	abund abundanceSource
	gate  *Gate
	data  map[string]*Stats
}

func NewMD5(abund abundanceSource, strict bool) *MD5 {
	return &MD5{abund: abund, gate: NewGate(strict), data: make(map[string]*Stats)}
}

// Data returns the per-checksum statistics.
func (m *MD5) Data() map[string]*Stats { return m.data }

func (m *MD5) Fold(fields []string) error {
	if len(fields) < 12 {
		return nil
	}
	frag, key := fields[0], fields[1]
	if frag == "" || key == "" {
		return nil
	}
	ident, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return errors.Wrapf(err, "bad identity %q", fields[2])
	}
	length, err := strconv.Atoi(fields[3])
	if err != nil {
		return errors.Wrapf(err, "bad length %q", fields[3])
	}
	exp, err := binning.Exponent(fields[10])
	if err != nil {
		return err
	}

	if m.gate.Admit(frag, key) {
		st, ok := m.data[key]
		if !ok {
			// The bucket exists from first sight, even if the row
			// below turns out to carry no weight.
			st = &Stats{}
			m.data[key] = st
		}
		w := m.abund.Weight(frag)
		if w < 1 {
			return nil
		}
		st.fold(w, float64(exp), float64(length), ident)
		m.gate.Mark(frag, key)
	}
	m.gate.Commit(frag)
	return nil
}
