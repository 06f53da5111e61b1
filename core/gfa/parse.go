package gfa

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"gfa2fa/core/dna"
)

// MaxLineSize bounds a single GFA line. Whole-chromosome segments are
// written on one line, so this is generous.
const MaxLineSize = 1 << 30

// minimum field counts per record type, tag included
const (
	segmentFields = 3
	linkFields    = 6
	pathFields    = 3
	walkFields    = 7
)

// Parse reads GFA records from r and returns the segment table and paths.
// The first malformed record aborts the parse with a *LineError. A read
// failure is returned wrapped. ctx is checked between lines.
func Parse(ctx context.Context, r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), MaxLineSize)

	g := &Graph{Segments: make(map[SegmentRef][]byte)}
	lineNo := 0
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		lineNo++
		line := bytes.TrimSuffix(sc.Bytes(), []byte{'\r'})
		if len(line) == 0 {
			continue
		}
		if err := g.parseLine(line, lineNo); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gfa read after line %d: %w", lineNo, err)
	}
	return g, nil
}

func (g *Graph) parseLine(line []byte, lineNo int) error {
	tab := bytes.IndexByte(line, '\t')
	if tab < 0 {
		// a bare tag carries no fields; only recognised tags care
		switch string(line) {
		case "S", "L", "P", "W":
			return &LineError{Line: lineNo, Tag: string(line), Err: ErrTruncatedRecord}
		}
		return nil
	}
	tag := string(line[:tab])
	switch tag {
	case "S", "L", "P", "W":
	default:
		return nil
	}
	fields := bytes.Split(line, []byte{'\t'})
	fail := func(err error) error { return &LineError{Line: lineNo, Tag: tag, Err: err} }

	switch tag {
	case "S":
		if len(fields) < segmentFields {
			return fail(ErrTruncatedRecord)
		}
		seq := fields[2]
		if !dna.IsDNA(seq) {
			i := dna.FirstInvalid(seq)
			return fail(fmt.Errorf("%w in segment %q at position %d (%q)", ErrNonDNA, fields[1], i+1, seq[i]))
		}
		g.Segments[SegmentRef(fields[1])] = append([]byte(nil), seq...)

	case "L":
		if len(fields) < linkFields {
			return fail(ErrTruncatedRecord)
		}
		switch ov := string(fields[5]); ov {
		case "*", "0M":
		default:
			return fail(fmt.Errorf("%w: overlap %q", ErrOverlappingLink, ov))
		}
		g.Links++

	case "P":
		if len(fields) < pathFields {
			return fail(ErrTruncatedRecord)
		}
		steps, err := DecodeCommaSteps(string(fields[2]))
		if err != nil {
			return fail(err)
		}
		g.Paths = append(g.Paths, Path{
			Name:  string(fields[1]),
			Kind:  KindPath,
			Steps: steps,
			Line:  lineNo,
		})

	case "W":
		if len(fields) < walkFields {
			return fail(ErrTruncatedRecord)
		}
		w := &Walk{
			Sample:    string(fields[1]),
			Haplotype: string(fields[2]),
			Contig:    string(fields[3]),
			Start:     string(fields[4]),
			End:       string(fields[5]),
		}
		name, err := w.Name()
		if err != nil {
			return fail(err)
		}
		steps, err := DecodeMarkerSteps(string(fields[6]))
		if err != nil {
			return fail(err)
		}
		g.Paths = append(g.Paths, Path{
			Name:  name,
			Kind:  KindWalk,
			Steps: steps,
			Line:  lineNo,
			Walk:  w,
		})
	}
	return nil
}
