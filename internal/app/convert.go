package app

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"gfa2fa/core/gfa"
	"gfa2fa/internal/fasta"
)

// Stats summarises a conversion.
type Stats struct {
	Segments int
	Links    int
	Paths    int
	Records  int
	Bases    int64
}

// writeError marks failures of the FASTA sink so the caller can tell them
// apart from bad input.
type writeError struct{ err error }

func (e *writeError) Error() string { return "write fasta: " + e.err.Error() }
func (e *writeError) Unwrap() error { return e.err }

// Convert parses the GFA on r and writes one record per path to w, in
// input order. w is flushed before returning.
func Convert(ctx context.Context, r io.Reader, w *fasta.Writer, threads int, logger *log.Logger) (Stats, error) {
	var st Stats

	g, err := gfa.Parse(ctx, r)
	if err != nil {
		return st, err
	}
	st.Segments, st.Links, st.Paths = len(g.Segments), g.Links, len(g.Paths)
	logger.Debug("parsed graph", "segments", st.Segments, "links", st.Links, "paths", st.Paths, "bases", g.Bases())

	res := gfa.Resolver{Threads: threads}
	err = res.ResolveAll(ctx, g, func(p *gfa.Path, seq []byte) error {
		logger.Debug("path", "name", p.Name, "kind", p.Kind, "steps", len(p.Steps), "length", len(seq))
		if err := w.Write(p.Name, seq); err != nil {
			return &writeError{err}
		}
		return nil
	})
	st.Records, st.Bases = w.Records, w.Bases
	if ferr := w.Flush(); ferr != nil && err == nil {
		err = &writeError{ferr}
	}
	if err != nil {
		return st, fmt.Errorf("after %d of %d paths: %w", st.Records, st.Paths, err)
	}
	return st, nil
}
