// internal/output/report.go
package output

import (
	"fmt"
	"io"
	"sort"

	"simsabund/internal/binning"
	"simsabund/internal/lookup"
	"simsabund/internal/profile"
)

// WriteMD5 prints one row per checksum, sorted ascending by key:
// key, abundance, three means, then the seek/length annotation from
// the optional index (zeros when absent). An empty accumulator emits
// nothing.
func WriteMD5(w io.Writer, data map[string]*profile.Stats, ix lookup.Index) error {
	for _, key := range sortedKeys(data) {
		st := data[key]
		seek, length := ix.Annotation(key)
		_, err := fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%d\t%d\n",
			key, st.Abun,
			Round3(st.ESum/float64(st.Abun)),
			Round3(st.LSum/float64(st.Abun)),
			Round3(st.ISum/float64(st.Abun)),
			seek, length,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteLCA prints one row per taxonomy id, sorted ascending by key:
// key, abundance, three means, cumulative checksum-token count, and
// the last-seen level.
func WriteLCA(w io.Writer, data map[string]*profile.LCAStats) error {
	for _, key := range sortedKeys(data) {
		st := data[key]
		_, err := fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%d\t%d\n",
			key, st.Abun,
			Round3(st.ESum/float64(st.Abun)),
			Round3(st.LSum/float64(st.Abun)),
			Round3(st.ISum/float64(st.Abun)),
			st.Checksums, st.Level,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteSource prints sources in discovery order: the label, one count
// per e-value bin, then one count per identity bin, zeros for empty
// bins. A source with no e-value histogram entry is skipped outright,
// identity entries or not.
func WriteSource(w io.Writer, order []string, eval, ident map[string]map[int]int64) error {
	for _, source := range order {
		eh, ok := eval[source]
		if !ok {
			continue
		}
		if _, err := io.WriteString(w, source); err != nil {
			return err
		}
		for _, e := range binning.EvalBins {
			if _, err := fmt.Fprintf(w, "\t%d", eh[e]); err != nil {
				return err
			}
		}
		ih := ident[source]
		for _, i := range binning.IdentBins {
			if _, err := fmt.Fprintf(w, "\t%d", ih[i]); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]*V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
