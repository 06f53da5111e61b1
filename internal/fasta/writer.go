// Package fasta writes FASTA records: a '>' header line and the sequence on
// a single line.
package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// Writer emits FASTA records to an underlying stream. Output is buffered;
// call Flush (or Close, for writers from Create) when done.
type Writer struct {
	bw      *bufio.Writer
	closers []io.Closer

	Records int
	Bases   int64
}

// NewWriter wraps w. Closing the returned Writer only flushes.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriterSize(w, 1<<20)}
}

// Create opens path for writing. "-" is stdout; a .gz suffix gzips the
// stream.
func Create(path string, stdout io.Writer) (*Writer, error) {
	var (
		dst     io.Writer = stdout
		closers []io.Closer
	)
	if path != "-" && path != "" {
		fh, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		dst = fh
		closers = append(closers, fh)
		if strings.HasSuffix(path, ".gz") {
			gw := gzip.NewWriter(fh)
			dst = gw
			closers = append([]io.Closer{gw}, closers...)
		}
	}
	w := NewWriter(dst)
	w.closers = closers
	return w, nil
}

// Write emits one record. seq is written as-is, without wrapping.
func (w *Writer) Write(name string, seq []byte) error {
	if err := w.bw.WriteByte('>'); err != nil {
		return err
	}
	if _, err := w.bw.WriteString(name); err != nil {
		return err
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		return err
	}
	if _, err := w.bw.Write(seq); err != nil {
		return err
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		return err
	}
	w.Records++
	w.Bases += int64(len(seq))
	return nil
}

func (w *Writer) Flush() error { return w.bw.Flush() }

// Close flushes and closes anything Create opened. The first error wins.
func (w *Writer) Close() error {
	err := w.bw.Flush()
	for _, c := range w.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	w.closers = nil
	return err
}
