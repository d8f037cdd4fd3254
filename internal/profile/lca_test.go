// internal/profile/lca_test.go
package profile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func lcaRow(md5s, frag, idents, lengths, evals, lca, level string) []string {
	return []string{md5s, frag, idents, lengths, evals, lca, level}
}

func TestLCAFoldAveragesSublists(t *testing.T) {
	l := NewLCA(mapAbund{})
	require.NoError(t, l.Fold(lcaRow("m1;m2", "f1", "90;100", "40;60", "1e-10;1e-20", "tax1", "8")))

	st := l.Data()["tax1"]
	require.NotNil(t, st)
	require.EqualValues(t, 1, st.Abun)
	require.Equal(t, -15.0, st.ESum) // mean of -10 and -20
	require.Equal(t, 50.0, st.LSum)
	require.Equal(t, 95.0, st.ISum)
	require.Equal(t, 8, st.Level)
	require.Equal(t, 2, st.Checksums)
}

// Checksum tokens accumulate across rows without dedup, and the last
// row's level wins.
func TestLCAChecksumCountAndLevel(t *testing.T) {
	l := NewLCA(mapAbund{})
	require.NoError(t, l.Fold(lcaRow("m1;m2;m3", "f1", "90", "40", "1e-5", "tax1", "7")))
	require.NoError(t, l.Fold(lcaRow("m1;m2", "f2", "80", "30", "1e-5", "tax1", "6")))

	st := l.Data()["tax1"]
	require.EqualValues(t, 2, st.Abun)
	require.Equal(t, 5, st.Checksums)
	require.Equal(t, 6, st.Level)
}

// Unlike md5 mode there is no per-fragment dedup: repeated rows for
// the same fragment all count.
func TestLCANoDedup(t *testing.T) {
	l := NewLCA(mapAbund{})
	require.NoError(t, l.Fold(lcaRow("m1", "f1", "90", "40", "1e-5", "tax1", "7")))
	require.NoError(t, l.Fold(lcaRow("m1", "f1", "90", "40", "1e-5", "tax1", "7")))
	require.EqualValues(t, 2, l.Data()["tax1"].Abun)
}

func TestLCAZeroWeightCreatesEmptyBucket(t *testing.T) {
	l := NewLCA(mapAbund{"f0": 0})
	require.NoError(t, l.Fold(lcaRow("m1", "f0", "90", "40", "1e-5", "tax1", "7")))

	st := l.Data()["tax1"]
	require.NotNil(t, st)
	require.EqualValues(t, 0, st.Abun)
	require.Zero(t, st.Checksums)
}

func TestLCASkipsShortAndEmptyRows(t *testing.T) {
	l := NewLCA(mapAbund{})
	require.NoError(t, l.Fold([]string{"m1", "f1", "90"}))
	require.NoError(t, l.Fold(lcaRow("", "f1", "90", "40", "1e-5", "tax1", "7")))
	require.NoError(t, l.Fold(lcaRow("m1", "", "90", "40", "1e-5", "tax1", "7")))
	require.NoError(t, l.Fold(lcaRow("m1", "f1", "90", "40", "1e-5", "", "7")))
	require.Empty(t, l.Data())
}

func TestLCAFatalOnBadNumerics(t *testing.T) {
	l := NewLCA(mapAbund{})
	require.Error(t, l.Fold(lcaRow("m1", "f1", "90;x", "40", "1e-5", "tax1", "7")))
	require.Error(t, l.Fold(lcaRow("m1", "f1", "90", "40;", "1e-5", "tax1", "7")))
	require.Error(t, l.Fold(lcaRow("m1", "f1", "90", "40", "1e-5;nope", "tax1", "7")))
	require.Error(t, l.Fold(lcaRow("m1", "f1", "90", "40", "1e-5", "tax1", "deep")))
}
