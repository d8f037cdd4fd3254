// internal/output/brokenpipe.go
package output

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means the reader side of our output
// went away, as when usage text is piped into a `head` that closed
// early. Callers treat the run as complete rather than failed.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
