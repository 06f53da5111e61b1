// core/dna/rc.go
package dna

var complement [256]byte

func init() {
	pair := func(a, b byte) {
		complement[a], complement[b] = b, a
		complement[a|0x20], complement[b|0x20] = b|0x20, a|0x20
	}
	pair('A', 'T')
	pair('C', 'G')
	pair('R', 'Y')
	pair('K', 'M')
	pair('B', 'V')
	pair('D', 'H')
	pair('S', 'S')
	pair('W', 'W')
	pair('N', 'N')
}

// Complement returns the Watson-Crick complement of a single base, keeping
// its case. Bytes outside the IUPAC alphabet map to 'N'.
func Complement(b byte) byte {
	if c := complement[b]; c != 0 {
		return c
	}
	return 'N'
}

// RevComp returns a newly allocated reverse complement of seq.
// Callers are expected to have validated seq with IsDNA; anything outside
// the alphabet comes back as 'N'.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	return AppendRevComp(make([]byte, 0, n), seq)
}

// AppendRevComp appends the reverse complement of seq to dst and returns the
// extended slice. It is the allocation-free form used when stitching paths.
func AppendRevComp(dst, seq []byte) []byte {
	for i := len(seq) - 1; i >= 0; i-- {
		dst = append(dst, Complement(seq[i]))
	}
	return dst
}
