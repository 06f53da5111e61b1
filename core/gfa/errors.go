package gfa

import (
	"errors"
	"fmt"
)

var (
	ErrNonDNA          = errors.New("non-DNA sequence")
	ErrOverlappingLink = errors.New("overlapping link is not supported")
	ErrMalformedStep   = errors.New("malformed step")
	ErrUnknownSegment  = errors.New("segment not found")
	ErrTruncatedRecord = errors.New("truncated record")
	ErrBadCoordinate   = errors.New("bad walk coordinate")
)

// LineError ties a record-level failure to its 1-based input line.
type LineError struct {
	Line int
	Tag  string
	Err  error
}

func (e *LineError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %s record: %v", e.Line, e.Tag, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
