// internal/lookup/index.go
package lookup

import (
	"math"
	"strconv"

	"github.com/shenwei356/util/pathutil"
)

// IndexEntry locates a match key's record in the source archive.
type IndexEntry struct {
	Seek   uint64
	Length uint32
}

// Index maps a match key to its byte range. A nil Index annotates
// every key as absent.
type Index map[string]IndexEntry

// Annotation returns the seek/length pair for a key, or zeros when the
// key is unknown or its length exceeds 2147483647 (treated as absent).
func (ix Index) Annotation(key string) (uint64, uint32) {
	e, ok := ix[key]
	if !ok || e.Length > math.MaxInt32 {
		return 0, 0
	}
	return e.Seek, e.Length
}

// LoadIndex reads a 3-column key/seek/length table. A missing file
// yields a nil Index and a warning; malformed lines are skipped.
func LoadIndex(path string) (Index, []string) {
	if path == "" {
		return nil, nil
	}
	if ok, _ := pathutil.Exists(path); !ok {
		return nil, []string{"index file " + path + " not found; ignoring"}
	}
	ix := make(Index)
	err := eachRow(path, func(f []string) {
		if len(f) != 3 {
			return
		}
		// First occurrence wins on duplicate keys.
		if _, ok := ix[f[0]]; ok {
			return
		}
		seek, err := strconv.ParseUint(f[1], 10, 64)
		if err != nil {
			return
		}
		length, err := strconv.ParseUint(f[2], 10, 32)
		if err != nil {
			return
		}
		ix[f[0]] = IndexEntry{Seek: seek, Length: uint32(length)}
	})
	if err != nil {
		return nil, []string{"index file " + path + ": " + err.Error()}
	}
	return ix, nil
}
