package dna

import (
	"bytes"
	"testing"
)

func TestRevCompSimple(t *testing.T) {
	got := RevComp([]byte("AGTC"))
	want := []byte("GACT")
	if !bytes.Equal(got, want) {
		t.Errorf("RevComp(AGTC) = %s, want %s", got, want)
	}
}

func TestRevCompTable(t *testing.T) {
	for in, want := range map[string]string{
		"RYSWKMBDHVN":     "NBDHVKMWSRY",
		"RYSWKMBDHVNACGT": "ACGTNBDHVKMWSRY",
		"GGAA":            "TTCC",
		"acgtn":           "nacgt",
	} {
		if got := RevComp([]byte(in)); !bytes.Equal(got, []byte(want)) {
			t.Errorf("RevComp(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestRevCompKeepsCase(t *testing.T) {
	got := RevComp([]byte("aTcG"))
	if string(got) != "CgAt" {
		t.Fatalf("RevComp(aTcG) = %s, want CgAt", got)
	}
}

func TestRevCompEmpty(t *testing.T) {
	if RevComp(nil) != nil {
		t.Errorf("RevComp(nil) should return nil")
	}
	if out := RevComp([]byte("")); len(out) != 0 {
		t.Errorf("RevComp(\"\") length = %d, want 0", len(out))
	}
}

func TestRevCompInvolutiveOverAlphabet(t *testing.T) {
	for b := 0; b < 256; b++ {
		base := []byte{byte(b)}
		if !IsDNA(base) {
			continue
		}
		if got := RevComp(RevComp(base)); !bytes.Equal(got, base) {
			t.Errorf("IsDNA(%q) but RevComp(RevComp) = %q", base, got)
		}
	}
}

func TestRevCompInvolutive(t *testing.T) {
	for _, s := range []string{
		"A", "GGAA", "ATCGATCG", "RYSWKMBDHVNACGT", "rysWKmbdhvnacgt", "NNNNacgtNNNN",
	} {
		if got := RevComp(RevComp([]byte(s))); string(got) != s {
			t.Errorf("RevComp(RevComp(%s)) = %s", s, got)
		}
	}
}

func TestRevCompDoesNotAlias(t *testing.T) {
	in := []byte("ACGT")
	out := RevComp(in)
	out[0] = 'X'
	if string(in) != "ACGT" {
		t.Fatalf("input mutated: %s", in)
	}
}

func TestAppendRevCompMatchesRevComp(t *testing.T) {
	dst := []byte("ATCG")
	dst = AppendRevComp(dst, []byte("GGAA"))
	if string(dst) != "ATCGTTCC" {
		t.Fatalf("AppendRevComp = %s, want ATCGTTCC", dst)
	}
}

func TestComplementUnknownIsN(t *testing.T) {
	if c := Complement('X'); c != 'N' {
		t.Fatalf("Complement(X) = %c, want N", c)
	}
	if c := Complement('U'); c != 'N' {
		t.Fatalf("Complement(U) = %c, want N", c)
	}
	if c := Complement('y'); c != 'r' {
		t.Fatalf("Complement(y) = %c, want r", c)
	}
}

func TestRevCompUnknownBytesBecomeN(t *testing.T) {
	if got := RevComp([]byte("AXu")); string(got) != "NNT" {
		t.Fatalf("RevComp(AXu) = %s, want NNT", got)
	}
	if got := AppendRevComp([]byte("C"), []byte("A*")); string(got) != "CNT" {
		t.Fatalf("AppendRevComp = %s, want CNT", got)
	}
}
