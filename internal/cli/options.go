// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"simsabund/internal/version"
)

// Summary types
const (
	TypeMD5    = "md5"
	TypeLCA    = "lca"
	TypeSource = "source"
)

// Types lists the accepted -t/--type values in declared order.
var Types = []string{TypeMD5, TypeLCA, TypeSource}

// Options holds all CLI flags and arguments.
type Options struct {
	// Required input / output
	Inputs []string
	Output string
	Type   string

	// Optional side inputs
	Coverage string
	Clusters []string
	MD5Index string

	// Run behavior
	Memory      int // seconds between RSS samples, 0 = off
	StrictDedup bool
	Progress    bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: abundance profiles from expanded similarity files

Version: %s

Input rows sharing a (fragment, match-key) pair must be contiguous;
an e-value significance cutoff is assumed to have been applied upstream.

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var inputs stringSlice
	fs.Var(&inputs, "input", "input file(s): expanded sims (repeatable) [*]")
	fs.Var(&inputs, "i", "alias of --input")
	fs.StringVar(&opt.Output, "output", "", "output file: summary abundance [*]")
	fs.StringVar(&opt.Output, "o", "", "alias of --output")
	fs.StringVar(&opt.Type, "type", "", "type of summary, one of: "+strings.Join(Types, ",")+" [*]")
	fs.StringVar(&opt.Type, "t", "", "alias of --type")

	fs.StringVar(&opt.Coverage, "coverage", "", "optional input file: assembly coverage")
	var clusters stringSlice
	fs.Var(&clusters, "cluster", "optional input file(s): cluster mapping (repeatable)")
	fs.StringVar(&opt.MD5Index, "md5-index", "", "optional input file: md5,seek,length (md5 type only)")

	fs.IntVar(&opt.Memory, "memory", 0, "log memory usage to <output>.mem.log every N seconds (0 = off) [0]")
	fs.BoolVar(&opt.StrictDedup, "strict-dedup", false, "dedup (fragment, key) pairs across the whole stream, not per contiguous block [false]")
	fs.BoolVar(&opt.Progress, "progress", false, "show per-file byte progress on stderr [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Inputs = inputs
	opt.Clusters = clusters

	// Validation
	if len(opt.Inputs) == 0 {
		return opt, errors.New("at least one --input file is required")
	}
	if opt.Output == "" {
		return opt, errors.New("missing required --output file")
	}
	switch opt.Type {
	case TypeMD5, TypeLCA, TypeSource:
	default:
		return opt, fmt.Errorf("missing or invalid --type %q (want one of %s)", opt.Type, strings.Join(Types, ","))
	}
	if opt.Memory < 0 {
		return opt, errors.New("--memory must be ≥ 0")
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
