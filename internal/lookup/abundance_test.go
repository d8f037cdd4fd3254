// internal/lookup/abundance_test.go
package lookup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadAbundanceCoverage(t *testing.T) {
	cov := writeFile(t, "cov.tsv", "f1\t5\nf2\t3.7\nf3\tjunk\nshort\n")
	a, warns := LoadAbundance(cov, nil)
	require.Empty(t, warns)
	require.Equal(t, 5, a.Weight("f1"))
	require.Equal(t, 3, a.Weight("f2")) // float coerces by truncation
	require.Equal(t, 0, a.Weight("f3")) // garbage coerces to zero-evidence
	require.Equal(t, 1, a.Weight("f9")) // unknown fragment defaults to 1
}

func TestLoadAbundanceClusterAdditive(t *testing.T) {
	cov := writeFile(t, "cov.tsv", "c1\t2\n")
	clu := writeFile(t, "clu.tsv", "c1\tm1,m2,m3\nc2\tm4\n")
	a, warns := LoadAbundance(cov, []string{clu, clu})
	require.Empty(t, warns)
	require.Equal(t, 2+3+3, a.Weight("c1")) // coverage + one count per member per pass
	require.Equal(t, 2, a.Weight("c2"))
}

func TestLoadAbundanceMissingFilesDegrade(t *testing.T) {
	a, warns := LoadAbundance("no/such/coverage.tsv", []string{"no/such/cluster.tsv"})
	require.Len(t, warns, 2)
	require.Equal(t, 0, a.Len())
	require.Equal(t, 1, a.Weight("anything"))
}
