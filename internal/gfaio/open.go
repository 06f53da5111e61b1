// Package gfaio opens GFA input: a path or "-" for stdin, gzip or plain.
package gfaio

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader over path. "-" reads stdin. Gzip is detected by
// magic number (1F 8B) or a .gz suffix.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" || path == "" {
		return Wrap(os.Stdin)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := wrap(fh, fh, strings.HasSuffix(path, ".gz"))
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return rc, nil
}

// Wrap sniffs r for gzip and returns a reader over its decompressed
// content. Closing the result does not close r.
func Wrap(r io.Reader) (io.ReadCloser, error) {
	return wrap(r, nil, false)
}

func wrap(r io.Reader, owner io.Closer, forceGzip bool) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(r, 1<<20)
	magic, _ := br.Peek(2)
	isGz := len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b
	var closers []io.Closer
	if owner != nil {
		closers = append(closers, owner)
	}
	if !isGz && !forceGzip {
		return &multiReadCloser{Reader: br, closers: closers}, nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		return nil, err
	}
	return &multiReadCloser{Reader: gr, closers: append([]io.Closer{gr}, closers...)}, nil
}
