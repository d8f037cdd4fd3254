// internal/progress/progress.go

// Package progress renders an optional per-file byte meter while the
// aggregator streams its inputs.
package progress

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Meter owns the bar container; nil is a valid no-op meter.
type Meter struct {
	p *mpb.Progress
}

// NewMeter renders bars to w (normally stderr).
func NewMeter(w io.Writer) *Meter {
	return &Meter{p: mpb.New(mpb.WithOutput(w), mpb.WithWidth(40))}
}

// Reader wraps r with a bar of total bytes labeled name. The returned
// reader must be drained or closed for the bar to complete.
func (m *Meter) Reader(name string, total int64, r io.Reader) io.ReadCloser {
	if m == nil {
		return io.NopCloser(r)
	}
	bar := m.p.New(total,
		mpb.BarStyle(),
		mpb.PrependDecorators(decor.Name(name+" ")),
		mpb.AppendDecorators(decor.CountersKibiByte("% .1f / % .1f")),
	)
	return bar.ProxyReader(r)
}

// Wait blocks until all bars have rendered their final state.
func (m *Meter) Wait() {
	if m != nil {
		m.p.Wait()
	}
}
