package gfa

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"gfa2fa/core/dna"
)

// Resolve spells out steps against segs. Reverse steps contribute the
// reverse complement of their segment. A step naming a segment that is not
// in segs fails the whole path.
func Resolve(segs map[SegmentRef][]byte, steps []Step) ([]byte, error) {
	n := 0
	for _, s := range steps {
		seq, ok := segs[s.Ref]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSegment, s.Ref)
		}
		n += len(seq)
	}
	out := make([]byte, 0, n)
	for _, s := range steps {
		seq := segs[s.Ref]
		if s.Reverse {
			out = dna.AppendRevComp(out, seq)
		} else {
			out = append(out, seq...)
		}
	}
	return out, nil
}

// Resolver turns every path of a Graph into its sequence.
type Resolver struct {
	// Threads is the number of paths resolved at once. Values below 2 run
	// sequentially.
	Threads int
}

// ResolveAll calls emit once per path, in parse order. If a path fails to
// resolve, every path before it has already been emitted, the failing one
// is not, and its error is returned. An emit error stops the run as well.
func (r Resolver) ResolveAll(ctx context.Context, g *Graph, emit func(*Path, []byte) error) error {
	if r.Threads < 2 {
		for i := range g.Paths {
			if err := ctx.Err(); err != nil {
				return err
			}
			p := &g.Paths[i]
			seq, err := Resolve(g.Segments, p.Steps)
			if err != nil {
				return pathError(p, err)
			}
			if err := emit(p, seq); err != nil {
				return err
			}
		}
		return nil
	}

	// Resolve a window of Threads paths concurrently, then emit the window
	// in order. Memory stays bounded by one window of sequences.
	seqs := make([][]byte, r.Threads)
	errs := make([]error, r.Threads)
	for off := 0; off < len(g.Paths); off += r.Threads {
		end := min(off+r.Threads, len(g.Paths))
		eg, ectx := errgroup.WithContext(ctx)
		for i := off; i < end; i++ {
			eg.Go(func() error {
				if err := ectx.Err(); err != nil {
					return err
				}
				seqs[i-off], errs[i-off] = Resolve(g.Segments, g.Paths[i].Steps)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}
		for i := off; i < end; i++ {
			p := &g.Paths[i]
			if err := errs[i-off]; err != nil {
				return pathError(p, err)
			}
			if err := emit(p, seqs[i-off]); err != nil {
				return err
			}
			seqs[i-off] = nil
		}
	}
	return nil
}

func pathError(p *Path, err error) error {
	return &LineError{Line: p.Line, Tag: p.Kind.String(), Err: fmt.Errorf("path %q: %w", p.Name, err)}
}
