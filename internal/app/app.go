// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"simsabund/internal/cli"
	"simsabund/internal/lookup"
	"simsabund/internal/memwatch"
	"simsabund/internal/output"
	"simsabund/internal/profile"
	"simsabund/internal/progress"
	"simsabund/internal/version"
)

// RunContext wires the whole run: flags, optional supervisor re-exec,
// lookup tables, one folding pass over every input, then the report.
// Exit codes: 0 ok, 1 fatal mid-stream value error, 2 usage/config
// error, 3 output write failure.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("simsabund")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); output.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); output.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "simsabund version %s\n", version.Version)
		if e := outw.Flush(); e != nil && !output.IsBrokenPipe(e) {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	logger := log.New(stderr, "", log.LstdFlags)

	// Supervisor split: the parent samples the worker child's RSS and
	// never touches the aggregation state.
	if opts.Memory > 0 && os.Getenv(memwatch.ChildEnv) == "" {
		return memwatch.Supervise(ctx, argv, opts.Output+".mem.log",
			time.Duration(opts.Memory)*time.Second, stdout, stderr)
	}

	hasInput := false
	for _, in := range opts.Inputs {
		fi, err := os.Stat(in)
		if err != nil {
			logger.Printf("input file %s: %v", in, err)
			return 2
		}
		if fi.Size() > 0 {
			hasInput = true
		}
	}
	if !hasInput {
		logger.Println("missing required input file")
		return 2
	}

	amap, warns := lookup.LoadAbundance(opts.Coverage, opts.Clusters)
	for _, w := range warns {
		logger.Println("warning:", w)
	}

	var (
		folder profile.Folder
		md5    *profile.MD5
		lca    *profile.LCA
		src    *profile.Source
		imap   lookup.Index
	)
	switch opts.Type {
	case cli.TypeMD5:
		imap, warns = lookup.LoadIndex(opts.MD5Index)
		for _, w := range warns {
			logger.Println("warning:", w)
		}
		md5 = profile.NewMD5(amap, opts.StrictDedup)
		folder = md5
	case cli.TypeLCA:
		lca = profile.NewLCA(amap)
		folder = lca
	case cli.TypeSource:
		src = profile.NewSource(amap)
		folder = src
	}

	var meter *progress.Meter
	if opts.Progress {
		meter = progress.NewMeter(stderr)
	}
	for _, in := range opts.Inputs {
		if err := ctx.Err(); err != nil {
			logger.Println(err)
			return 1
		}
		if err := scanFile(in, folder, meter); err != nil {
			logger.Printf("%s: %v", in, err)
			return 1
		}
	}
	meter.Wait()

	fh, err := os.Create(opts.Output)
	if err != nil {
		logger.Println(err)
		return 2
	}
	w := bufio.NewWriter(fh)
	switch opts.Type {
	case cli.TypeMD5:
		err = output.WriteMD5(w, md5.Data(), imap)
	case cli.TypeLCA:
		err = output.WriteLCA(w, lca.Data())
	case cli.TypeSource:
		err = output.WriteSource(w, src.Order(), src.EvalHist(), src.IdentHist())
	}
	if err == nil {
		err = w.Flush()
	}
	if cerr := fh.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.Println(err)
		return 3
	}
	return 0
}

// Run parses argv and executes with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func scanFile(path string, f profile.Folder, meter *progress.Meter) error {
	fh, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = fh.Close() }()

	var r io.Reader = fh
	if meter != nil {
		fi, err := fh.Stat()
		if err != nil {
			return err
		}
		pr := meter.Reader(path, fi.Size(), fh)
		defer func() { _ = pr.Close() }()
		r = pr
	}
	return profile.Scan(r, f)
}
