// internal/lookup/index_test.go
package lookup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadIndex(t *testing.T) {
	ix, warns := LoadIndex(writeFile(t, "idx.tsv",
		"aaaa\t100\t200\n"+
			"bbbb\t5\t2147483648\n"+ // oversize length is treated as absent
			"cccc\t1\n"+ // short line skipped
			"dddd\tx\t9\n")) // bad seek skipped
	require.Empty(t, warns)

	seek, length := ix.Annotation("aaaa")
	require.Equal(t, uint64(100), seek)
	require.Equal(t, uint32(200), length)

	seek, length = ix.Annotation("bbbb")
	require.Zero(t, seek)
	require.Zero(t, length)

	seek, length = ix.Annotation("missing")
	require.Zero(t, seek)
	require.Zero(t, length)
}

func TestLoadIndexFirstDuplicateWins(t *testing.T) {
	ix, warns := LoadIndex(writeFile(t, "idx.tsv",
		"aaaa\t100\t200\n"+
			"aaaa\t999\t999\n"))
	require.Empty(t, warns)

	seek, length := ix.Annotation("aaaa")
	require.Equal(t, uint64(100), seek)
	require.Equal(t, uint32(200), length)
}

func TestLoadIndexUnset(t *testing.T) {
	ix, warns := LoadIndex("")
	require.Nil(t, ix)
	require.Empty(t, warns)
}

func TestLoadIndexMissingFile(t *testing.T) {
	ix, warns := LoadIndex("no/such/index.tsv")
	require.Nil(t, ix)
	require.Len(t, warns, 1)

	seek, length := ix.Annotation("k") // nil index annotates zeros
	require.Zero(t, seek)
	require.Zero(t, length)
}
