// internal/memwatch/memwatch.go

// Package memwatch reproduces the legacy memory sampler across a clean
// process boundary: the tool re-executes itself as a worker child and
// the parent periodically records the child's resident set size. The
// two processes share nothing but the child's exit status.
package memwatch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// ChildEnv marks the re-executed worker so it skips supervision.
const ChildEnv = "SIMSABUND_MEMWATCH"

// RSS returns the resident set size of a process in kilobytes, read
// from /proc/<pid>/status (Linux only).
func RSS(pid int) (int64, error) {
	body, err := os.ReadFile("/proc/" + strconv.Itoa(pid) + "/status")
	if err != nil {
		return 0, err
	}
	for _, line := range strings.Split(string(body), "\n") {
		if !strings.HasPrefix(line, "VmRSS:") {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 2 {
			break
		}
		return strconv.ParseInt(f[1], 10, 64)
	}
	return 0, fmt.Errorf("no VmRSS for pid %d", pid)
}

// Supervise re-runs the current binary with the same arguments as a
// worker child, samples its RSS every interval, and appends one
// megabyte figure per line to logPath until the child exits. The
// child's exit code is returned. Sampling failures are logged once and
// never disturb the workload.
func Supervise(ctx context.Context, argv []string, logPath string, interval time.Duration, stdout, stderr io.Writer) int {
	exe, err := os.Executable()
	if err != nil {
		fmt.Fprintln(stderr, "memwatch:", err)
		return 2
	}
	cmd := exec.CommandContext(ctx, exe, argv...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = append(os.Environ(), ChildEnv+"=1")
	if err := cmd.Start(); err != nil {
		fmt.Fprintln(stderr, "memwatch:", err)
		return 2
	}

	fh, err := os.Create(logPath)
	if err != nil {
		fmt.Fprintln(stderr, "memwatch:", err)
		// The workload is already running; keep waiting for it.
		_ = cmd.Wait()
		return cmd.ProcessState.ExitCode()
	}
	defer func() { _ = fh.Close() }()
	w := bufio.NewWriter(fh)
	defer func() { _ = w.Flush() }()

	done := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(done)
	}()

	tick := time.NewTicker(interval)
	defer tick.Stop()
	warned := false
	for {
		kb, err := RSS(cmd.Process.Pid)
		if err != nil {
			if !warned {
				fmt.Fprintln(stderr, "memwatch: sampling failed:", err)
				warned = true
			}
		} else {
			fmt.Fprintf(w, "%d\n", kb/1024)
			_ = w.Flush()
		}
		select {
		case <-done:
			return cmd.ProcessState.ExitCode()
		case <-tick.C:
		}
	}
}
