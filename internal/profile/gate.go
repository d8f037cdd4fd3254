// internal/profile/gate.go
package profile

// Gate enforces "count each (fragment, key) pair once". The default
// gate keeps keys only for the currently open fragment and clears them
// when the fragment id changes, so it is exactly as good as the input
// contiguity. The strict gate remembers every pair it has committed.
type Gate struct {
	strict bool
	prev   string
	seen   map[string]struct{}
}

// NewGate returns a contiguity-window gate, or a full-stream gate when
// strict is true.
func NewGate(strict bool) *Gate {
	return &Gate{strict: strict, seen: make(map[string]struct{})}
}

func (g *Gate) pairKey(frag, key string) string {
	if g.strict {
		return frag + "\x00" + key
	}
	return key
}

// Admit reports whether the pair has not been counted yet, clearing
// the window first if the fragment changed.
func (g *Gate) Admit(frag, key string) bool {
	if !g.strict && frag != g.prev {
		clear(g.seen)
	}
	_, dup := g.seen[g.pairKey(frag, key)]
	return !dup
}

// Mark records the pair as counted.
func (g *Gate) Mark(frag, key string) {
	g.seen[g.pairKey(frag, key)] = struct{}{}
}

// Commit advances the open fragment. Rows that are skipped before a
// complete fold (short rows, zero-weight rows) must not commit, so the
// window survives them.
func (g *Gate) Commit(frag string) { g.prev = frag }
