package bench

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/zkbench/benchtab/log"
)

const nativeCPUFlag = "-C target-cpu=native"

// stderrTailBytes bounds how much captured stderr a failure error carries.
const stderrTailBytes = 4096

// Runner invokes the external cargo benchmark for one configuration at a
// time. Runs are strictly sequential: overlapping benchmark processes would
// contend for the CPU and corrupt the timing measurements.
type Runner struct {
	Workspace string // repository root the benchmark runs in
	Package   string // cargo package holding the bench target
	BenchName string // bench target name, e.g. iterated_f
}

func NewRunner(workspace, benchName string) *Runner {
	return &Runner{
		Workspace: workspace,
		Package:   "binius-examples",
		BenchName: benchName,
	}
}

// Run executes one benchmark configuration and blocks until cargo exits.
// Output is captured rather than streamed; on failure the tail of stderr is
// folded into the returned error.
func (r *Runner) Run(ctx context.Context, cfg Config) error {
	log.Info(log.RunMonitoring, "running benchmark", "lanes", cfg.Lanes, "iterations", cfg.Iterations)

	cmd := exec.CommandContext(ctx, "cargo", "bench", "-p", r.Package, "--bench", r.BenchName, "--", "--noplot")
	cmd.Dir = r.Workspace
	cmd.Env = benchEnv(os.Environ(), cfg)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("benchmark %s failed: %w\n%s", cfg, err, tail(stderr.String(), stderrTailBytes))
	}
	return nil
}

// RunAll executes every configuration in order, stopping at the first
// failure. A failed invocation poisons the data for everything after it, so
// there is no point continuing.
func (r *Runner) RunAll(ctx context.Context, configs []Config) error {
	for _, cfg := range configs {
		if err := r.Run(ctx, cfg); err != nil {
			return err
		}
	}
	return nil
}

// benchEnv returns a child environment carrying the sweep parameters. The
// parent environment is forwarded unchanged; RUSTFLAGS gains the native CPU
// flag on top of whatever was already set. A duplicate flag from a previous
// append is harmless, so no deduplication happens here.
func benchEnv(parent []string, cfg Config) []string {
	rustflags := ""
	env := make([]string, 0, len(parent)+3)
	for _, kv := range parent {
		if v, ok := strings.CutPrefix(kv, "RUSTFLAGS="); ok {
			rustflags = v
			continue
		}
		env = append(env, kv)
	}
	return append(env,
		"ITERATIONS="+strconv.Itoa(cfg.Iterations),
		"LANES="+strconv.Itoa(cfg.Lanes),
		"RUSTFLAGS="+rustflags+" "+nativeCPUFlag,
	)
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
