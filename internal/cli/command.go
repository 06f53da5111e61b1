// Package cli defines the gfa2fa command line and binds it to Viper.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gfa2fa/internal/version"
)

// flag name → config key; identical today, kept apart so flags can be
// renamed without touching config files
var bound = map[string]string{
	"output":    "output",
	"threads":   "threads",
	"log-level": "log-level",
	"quiet":     "quiet",
}

// NewRootCommand builds the root command. Flag values are bound to v; a
// positional input path is set on v under "input". run receives the parsed
// config file path.
func NewRootCommand(v *viper.Viper, run func(cmd *cobra.Command, configFile string) error) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "gfa2fa [flags] [graph.gfa]",
		Short: "Spell out GFA paths and walks as FASTA",
		Long: `Reads a GFA 1.x graph and writes one FASTA record per P (path) and
W (walk) line, in input order. Each record is the concatenation of the
segments the path visits; segments traversed in reverse are
reverse-complemented.

P records keep their name. W records are named sample#haplotype#contig,
followed by :start-end (1-based start) when both coordinates are given.

Input may be gzip-compressed. Use "-" or no argument to read stdin.`,
		Example: `  gfa2fa graph.gfa > paths.fa
  zcat graph.gfa.gz | gfa2fa -t 8 -o paths.fa.gz
  gfa2fa --config gfa2fa.yaml graph.gfa`,
		Version:       version.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				v.Set("input", args[0])
			}
			return run(cmd, configFile)
		},
	}
	cmd.SetVersionTemplate("gfa2fa version {{.Version}}\n")

	f := cmd.Flags()
	f.StringVarP(&configFile, "config", "c", "", "Config file (yaml, toml or json)")
	f.StringP("output", "o", "-", "Output FASTA path; '-' for STDOUT, .gz to compress")
	f.IntP("threads", "t", 1, "Paths resolved concurrently (0=all CPUs)")
	f.String("log-level", "info", "Log level: debug | info | warn | error")
	f.BoolP("quiet", "q", false, "Only log errors")

	for name, key := range bound {
		_ = v.BindPFlag(key, f.Lookup(name))
	}
	return cmd
}
