package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func execute(t *testing.T, args ...string) (*viper.Viper, string, string, error) {
	t.Helper()
	v := viper.New()
	var gotConfig string
	var out bytes.Buffer
	cmd := NewRootCommand(v, func(_ *cobra.Command, configFile string) error {
		gotConfig = configFile
		return nil
	})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return v, gotConfig, out.String(), err
}

func TestFlagsBoundToViper(t *testing.T) {
	v, cfg, _, err := execute(t, "-o", "out.fa", "-t", "4", "--log-level", "debug", "-q", "--config", "x.yaml", "g.gfa")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if v.GetString("output") != "out.fa" || v.GetInt("threads") != 4 || v.GetString("log-level") != "debug" || !v.GetBool("quiet") {
		t.Fatalf("flags not bound: %v", v.AllSettings())
	}
	if v.GetString("input") != "g.gfa" {
		t.Fatalf("input = %q", v.GetString("input"))
	}
	if cfg != "x.yaml" {
		t.Fatalf("config = %q", cfg)
	}
}

func TestFlagDefaultsVisibleThroughViper(t *testing.T) {
	v, _, _, err := execute(t)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if v.GetString("output") != "-" || v.GetInt("threads") != 1 {
		t.Fatalf("defaults: %v", v.AllSettings())
	}
	if v.IsSet("input") {
		t.Fatalf("input should be unset without a positional argument")
	}
}

func TestTooManyArgs(t *testing.T) {
	if _, _, _, err := execute(t, "a.gfa", "b.gfa"); err == nil {
		t.Fatalf("expected error for two inputs")
	}
}

func TestUnknownFlag(t *testing.T) {
	if _, _, _, err := execute(t, "--bogus"); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestVersion(t *testing.T) {
	_, _, out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out, "gfa2fa version ") {
		t.Fatalf("version output %q", out)
	}
}
