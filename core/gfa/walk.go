package gfa

import (
	"fmt"
	"strconv"
)

const noCoord = "*"

// Name derives the output name of a walk: sample#haplotype#contig, with
// ":start-end" appended when both coordinates are given. Start is 0-based in
// the file and printed 1-based; End is printed as written.
//
// Names are not escaped. Identifiers that themselves contain '#' or ':' can
// produce names that collide or cannot be split back into their parts.
func (w *Walk) Name() (string, error) {
	base := w.Sample + "#" + w.Haplotype + "#" + w.Contig
	if w.Start == noCoord || w.End == noCoord {
		return base, nil
	}
	start, err := strconv.ParseUint(w.Start, 10, 63)
	if err != nil {
		return "", fmt.Errorf("%w: start %q", ErrBadCoordinate, w.Start)
	}
	if _, err := strconv.ParseUint(w.End, 10, 64); err != nil {
		return "", fmt.Errorf("%w: end %q", ErrBadCoordinate, w.End)
	}
	return fmt.Sprintf("%s:%d-%s", base, start+1, w.End), nil
}
