// internal/cli/options_test.go
package cli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestMinimalMD5OK(t *testing.T) {
	o := mustParse(t,
		"--input", "sims.tsv",
		"--output", "out.tsv",
		"--type", "md5",
	)
	if len(o.Inputs) != 1 || o.Output != "out.tsv" || o.Type != TypeMD5 {
		t.Errorf("bad parse %+v", o)
	}
}

func TestRepeatableInputsAndClusters(t *testing.T) {
	o := mustParse(t,
		"-i", "a.tsv", "-i", "b.tsv",
		"-o", "out.tsv", "-t", "lca",
		"--cluster", "c1.tsv", "--cluster", "c2.tsv",
	)
	if len(o.Inputs) != 2 || len(o.Clusters) != 2 {
		t.Errorf("bad repeatable parse %+v", o)
	}
}

func TestSideInputsAndBehaviorFlags(t *testing.T) {
	o := mustParse(t,
		"-i", "a.tsv", "-o", "out.tsv", "-t", "md5",
		"--coverage", "cov.tsv", "--md5-index", "idx.tsv",
		"--memory", "30", "--strict-dedup", "--progress",
	)
	if o.Coverage != "cov.tsv" || o.MD5Index != "idx.tsv" ||
		o.Memory != 30 || !o.StrictDedup || !o.Progress {
		t.Errorf("bad parse %+v", o)
	}
}

func TestErrorMissingInput(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-o", "out.tsv", "-t", "md5"}); err == nil {
		t.Fatalf("expected error with no inputs")
	}
}

func TestErrorMissingOutput(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-i", "a.tsv", "-t", "md5"}); err == nil {
		t.Fatalf("expected error with no output")
	}
}

func TestErrorBadType(t *testing.T) {
	for _, typ := range []string{"", "md6", "LCA"} {
		if _, err := ParseArgs(newFS(), []string{"-i", "a.tsv", "-o", "out.tsv", "-t", typ}); err == nil {
			t.Fatalf("expected error for type %q", typ)
		}
	}
}

func TestErrorNegativeMemory(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{
		"-i", "a.tsv", "-o", "out.tsv", "-t", "md5", "--memory", "-1",
	}); err == nil {
		t.Fatalf("expected error for negative memory interval")
	}
}

func TestVersionShortCircuitsValidation(t *testing.T) {
	o := mustParse(t, "--version")
	if !o.Version {
		t.Errorf("want version flag set, got %+v", o)
	}
}
