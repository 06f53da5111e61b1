package gfa

import (
	"fmt"
	"strings"
)

// DecodeCommaSteps decodes a P-line segment list such as "s1+,s2-,s3+".
// The orientation is always the final byte of a token; the segment name is
// everything before it, whatever it looks like. Empty tokens are skipped.
func DecodeCommaSteps(field string) ([]Step, error) {
	if field == "" {
		return nil, nil
	}
	steps := make([]Step, 0, strings.Count(field, ",")+1)
	for _, tok := range strings.Split(field, ",") {
		if tok == "" {
			continue
		}
		n := len(tok)
		if n < 2 {
			return nil, fmt.Errorf("%w: %q has no segment name", ErrMalformedStep, tok)
		}
		var rev bool
		switch tok[n-1] {
		case '+':
		case '-':
			rev = true
		default:
			return nil, fmt.Errorf("%w: %q does not end in + or -", ErrMalformedStep, tok)
		}
		steps = append(steps, Step{Ref: SegmentRef(tok[:n-1]), Reverse: rev})
	}
	return steps, nil
}

// DecodeMarkerSteps decodes a W-line walk such as ">s1>s2<s3". Each '>' or
// '<' opens a step that runs up to the next marker or the end of the field.
// An empty field is an empty walk. Text ahead of the first marker, and a
// marker with nothing after it, are rejected.
func DecodeMarkerSteps(field string) ([]Step, error) {
	if field == "" {
		return nil, nil
	}
	if m := field[0]; m != '>' && m != '<' {
		i := strings.IndexAny(field, "><")
		if i < 0 {
			return nil, fmt.Errorf("%w: walk %q has no orientation markers", ErrMalformedStep, field)
		}
		return nil, fmt.Errorf("%w: unexpected %q before first marker", ErrMalformedStep, field[:i])
	}
	steps := make([]Step, 0, strings.Count(field, ">")+strings.Count(field, "<"))
	for pos := 0; pos < len(field); {
		rev := field[pos] == '<'
		end := strings.IndexAny(field[pos+1:], "><")
		if end < 0 {
			end = len(field)
		} else {
			end += pos + 1
		}
		if end == pos+1 {
			return nil, fmt.Errorf("%w: empty segment name at offset %d", ErrMalformedStep, pos)
		}
		steps = append(steps, Step{Ref: SegmentRef(field[pos+1 : end]), Reverse: rev})
		pos = end
	}
	return steps, nil
}

// EncodeCommaSteps is the inverse of DecodeCommaSteps.
func EncodeCommaSteps(steps []Step) string {
	var b strings.Builder
	for i, s := range steps {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(string(s.Ref))
		if s.Reverse {
			b.WriteByte('-')
		} else {
			b.WriteByte('+')
		}
	}
	return b.String()
}

// EncodeMarkerSteps is the inverse of DecodeMarkerSteps.
func EncodeMarkerSteps(steps []Step) string {
	var b strings.Builder
	for _, s := range steps {
		if s.Reverse {
			b.WriteByte('<')
		} else {
			b.WriteByte('>')
		}
		b.WriteString(string(s.Ref))
	}
	return b.String()
}

// String renders the step the way a P line writes it.
func (s Step) String() string {
	if s.Reverse {
		return string(s.Ref) + "-"
	}
	return string(s.Ref) + "+"
}
