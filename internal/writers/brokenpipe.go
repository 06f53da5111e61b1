package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means the reader of a pipe went away.
// `gfa2fa big.gfa | head` ends this way and should not be reported as a
// failure. A write to a closed file is not a broken pipe: output was lost.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
