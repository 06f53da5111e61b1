// core/dna/iupac.go
package dna

/* -------------------------- IUPAC lookup table -------------------------- */

var iupacMask [256]byte // bit0=A bit1=C bit2=G bit3=T

func init() {
	set := func(c byte, bits byte) {
		iupacMask[c] = bits
		iupacMask[c|0x20] = bits // lowercase mirrors uppercase
	}
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any
}

// IsBase reports whether b is an IUPAC nucleotide code (either case).
func IsBase(b byte) bool { return iupacMask[b] != 0 }

// IsDNA reports whether every byte of seq is an IUPAC nucleotide code.
// Case is preserved as written: "acgt" and "ACGT" are both accepted, but
// nothing is upper-cased on the way through. An empty sequence is valid.
func IsDNA(seq []byte) bool { return FirstInvalid(seq) < 0 }

// FirstInvalid returns the index of the first non-nucleotide byte in seq,
// or -1 when the whole sequence is valid.
func FirstInvalid(seq []byte) int {
	for i, b := range seq {
		if !IsBase(b) {
			return i
		}
	}
	return -1
}
