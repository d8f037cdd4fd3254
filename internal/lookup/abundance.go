// internal/lookup/abundance.go

// Package lookup builds the optional side tables consumed by the
// profile folders: fragment abundance weights and the md5 seek index.
// Missing or unreadable side files are not errors; the affected table
// degrades to its default and the loader reports a warning string.
package lookup

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/shenwei356/util/pathutil"
)

// Abundance maps fragment ids to integer weights. Fragments absent
// from every side table weigh 1.
type Abundance struct {
	m map[string]int
}

// Weight returns the abundance weight for a fragment. A weight of 0
// means the fragment carries no evidence and its rows are skipped by
// the caller.
func (a *Abundance) Weight(frag string) int {
	if w, ok := a.m[frag]; ok {
		return w
	}
	return 1
}

// Len reports the number of fragments with an explicit weight.
func (a *Abundance) Len() int { return len(a.m) }

// LoadAbundance merges a direct-weight coverage table with additive
// per-member counts from cluster-membership files. The coverage value
// may be written as a float; it is truncated to an int, and anything
// unparsable coerces to 0. Each id listed in a cluster's member column
// adds one to that cluster's weight.
func LoadAbundance(coverage string, clusters []string) (*Abundance, []string) {
	a := &Abundance{m: make(map[string]int)}
	var warns []string

	if coverage != "" {
		if ok, _ := pathutil.Exists(coverage); !ok {
			warns = append(warns, "coverage file "+coverage+" not found; ignoring")
		} else if err := eachRow(coverage, func(f []string) {
			a.m[f[0]] = coerceWeight(f[1])
		}); err != nil {
			warns = append(warns, "coverage file "+coverage+": "+err.Error())
		}
	}

	for _, cf := range clusters {
		if cf == "" {
			continue
		}
		if ok, _ := pathutil.Exists(cf); !ok {
			warns = append(warns, "cluster file "+cf+" not found; ignoring")
			continue
		}
		if err := eachRow(cf, func(f []string) {
			a.m[f[0]] += len(strings.Split(f[1], ","))
		}); err != nil {
			warns = append(warns, "cluster file "+cf+": "+err.Error())
		}
	}
	return a, warns
}

// coerceWeight parses an int, then a float truncated to int, then 0.
func coerceWeight(s string) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return int(v)
	}
	return 0
}

// eachRow streams a 2+ column tab-separated file; short lines are
// silently skipped.
func eachRow(path string, fn func(fields []string)) error {
	fh, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = fh.Close() }()

	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) < 2 {
			continue
		}
		fn(f)
	}
	return sc.Err()
}
