package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"gfa2fa/core/gfa"
	"gfa2fa/internal/fasta"
	"gfa2fa/internal/logging"
)

func TestConvertStats(t *testing.T) {
	in := "S\ts1\tATCG\nS\ts2\tGGAA\nL\ts1\t+\ts2\t-\t0M\nP\tp1\ts1+,s2-\n"
	var out, logs bytes.Buffer
	w := fasta.NewWriter(&out)
	st, err := Convert(context.Background(), strings.NewReader(in), w, 2, logging.New(&logs, "debug", false))
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if out.String() != ">p1\nATCGTTCC\n" {
		t.Fatalf("output %q", out.String())
	}
	want := Stats{Segments: 2, Links: 1, Paths: 1, Records: 1, Bases: 8}
	if st != want {
		t.Fatalf("stats = %+v, want %+v", st, want)
	}
	if !strings.Contains(logs.String(), "parsed graph") {
		t.Fatalf("missing debug log: %q", logs.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestConvertWriteErrorIsTagged(t *testing.T) {
	var logs bytes.Buffer
	_, err := Convert(context.Background(), strings.NewReader("S\ts1\tA\nP\tp\ts1+\n"),
		fasta.NewWriter(failWriter{}), 1, logging.New(&logs, "error", false))
	var we *writeError
	if !errors.As(err, &we) {
		t.Fatalf("err = %v, want writeError", err)
	}
}

func TestConvertInputErrorIsNotWriteError(t *testing.T) {
	var logs bytes.Buffer
	_, err := Convert(context.Background(), strings.NewReader("P\tp\tghost+\n"),
		fasta.NewWriter(&bytes.Buffer{}), 1, logging.New(&logs, "error", false))
	if !errors.Is(err, gfa.ErrUnknownSegment) {
		t.Fatalf("err = %v, want ErrUnknownSegment", err)
	}
	var we *writeError
	if errors.As(err, &we) {
		t.Fatalf("input error tagged as write error")
	}
}
