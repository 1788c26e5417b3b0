// Package criterion reads timing estimates out of the directory tree the
// criterion benchmarking harness writes under target/criterion. The tree is
// treated as read-only foreign data: this package only discovers directories
// by naming convention and decodes the one field it needs.
package criterion

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zkbench/benchtab/bench"
	"github.com/zkbench/benchtab/log"
)

// Phase identifies one measured sub-stage of a circuit benchmark.
type Phase string

const (
	WitnessGeneration Phase = "witness_generation"
	ProofGeneration   Phase = "proof_generation"
	ProofVerification Phase = "proof_verification"
)

// Phases lists the measured phases in collection order.
var Phases = []Phase{WitnessGeneration, ProofGeneration, ProofVerification}

// Estimates mirrors the slice of criterion's estimates.json this tool reads.
// Pointers distinguish an absent field from a zero value.
type Estimates struct {
	Mean *Estimate `json:"mean"`
}

type Estimate struct {
	PointEstimate *float64 `json:"point_estimate"` // nanoseconds
}

// Result holds the mean phase times for one collected configuration.
type Result struct {
	Config    bench.Config
	WitnessMs float64
	ProofMs   float64
	VerifyMs  float64
}

// DirPrefix returns the benchmark-directory prefix encoding a configuration.
// Single-lane runs omit the lanes suffix to match the naming the upstream
// bench harness uses for its default lane count.
func DirPrefix(cfg bench.Config) string {
	if cfg.Lanes == 1 {
		return fmt.Sprintf("iterations_%d_", cfg.Iterations)
	}
	return fmt.Sprintf("iterations_%d_lanes_%d_", cfg.Iterations, cfg.Lanes)
}

// FindBenchmarkDir locates the criterion output directory for one phase of
// one configuration. The phase's group directory is
// <root>/target/criterion/<benchName>_<phase>; the first child directory
// whose name starts with the configuration prefix wins.
func FindBenchmarkDir(root, benchName string, phase Phase, cfg bench.Config) (string, bool) {
	groupDir := filepath.Join(root, "target", "criterion", fmt.Sprintf("%s_%s", benchName, phase))
	entries, err := os.ReadDir(groupDir)
	if err != nil {
		return "", false
	}

	prefix := DirPrefix(cfg)
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), prefix) {
			return filepath.Join(groupDir, entry.Name()), true
		}
	}
	return "", false
}

// ReadBenchmarkTime extracts the mean point estimate from a benchmark
// directory and converts it from nanoseconds to milliseconds. A missing
// estimates file means the benchmark never ran here; a file that does not
// decode, or decodes without the mean point estimate, is reported as
// malformed.
func ReadBenchmarkTime(benchDir string) (float64, bool) {
	estimatesFile := filepath.Join(benchDir, "new", "estimates.json")

	data, err := os.ReadFile(estimatesFile)
	if err != nil {
		log.Debug(log.CollectMonitoring, "no estimates file", "path", estimatesFile)
		return 0, false
	}

	var est Estimates
	if err := json.Unmarshal(data, &est); err != nil {
		log.Warn(log.CollectMonitoring, "malformed estimates file", "path", estimatesFile, "err", err)
		return 0, false
	}
	if est.Mean == nil || est.Mean.PointEstimate == nil {
		log.Warn(log.CollectMonitoring, "estimates file has no mean point estimate", "path", estimatesFile)
		return 0, false
	}

	return *est.Mean.PointEstimate / 1e6, true
}

// Collect gathers all three phase times for a configuration. Partial data
// yields nothing: a configuration is either fully collected or skipped.
func Collect(root, benchName string, cfg bench.Config) (Result, bool) {
	times := make([]float64, 0, len(Phases))
	for _, phase := range Phases {
		benchDir, ok := FindBenchmarkDir(root, benchName, phase, cfg)
		if !ok {
			log.Warn(log.CollectMonitoring, "no benchmark directory found",
				"phase", string(phase), "lanes", cfg.Lanes, "iterations", cfg.Iterations)
			return Result{}, false
		}

		ms, ok := ReadBenchmarkTime(benchDir)
		if !ok {
			log.Warn(log.CollectMonitoring, "no benchmark time readable",
				"phase", string(phase), "lanes", cfg.Lanes, "iterations", cfg.Iterations)
			return Result{}, false
		}
		times = append(times, ms)
	}

	return Result{
		Config:    cfg,
		WitnessMs: times[0],
		ProofMs:   times[1],
		VerifyMs:  times[2],
	}, true
}

// CollectAll collects whatever configurations have complete data, preserving
// the sweep order. Absent configurations are skipped, not errors.
func CollectAll(root, benchName string, configs []bench.Config) []Result {
	results := make([]Result, 0, len(configs))
	for _, cfg := range configs {
		if res, ok := Collect(root, benchName, cfg); ok {
			results = append(results, res)
		}
	}
	return results
}
