package report

import (
	"encoding/json"
	"time"

	"github.com/zkbench/benchtab/criterion"
)

type ResultRow struct {
	Lanes      int     `json:"lanes"`
	Iterations int     `json:"iterations"`
	TotalOps   int     `json:"total_ops"`
	WitnessMs  float64 `json:"witness_time_ms"`
	ProofMs    float64 `json:"proof_time_ms"`
	VerifyMs   float64 `json:"verify_time_ms"`
}

type JSONReport struct {
	Generated   string      `json:"generated"`
	BenchName   string      `json:"bench_name"`
	TotalTimeMs float64     `json:"total_time_ms"`
	Results     []ResultRow `json:"results"`
}

// GenerateJSONReport renders a machine-readable sidecar of the results, for
// downstream tooling that wants numbers rather than a formatted table.
func GenerateJSONReport(benchName string, results []criterion.Result, elapsed time.Duration) ([]byte, error) {
	rows := make([]ResultRow, 0, len(results))
	for _, res := range results {
		rows = append(rows, ResultRow{
			Lanes:      res.Config.Lanes,
			Iterations: res.Config.Iterations,
			TotalOps:   res.Config.TotalOps(),
			WitnessMs:  res.WitnessMs,
			ProofMs:    res.ProofMs,
			VerifyMs:   res.VerifyMs,
		})
	}

	return json.MarshalIndent(JSONReport{
		Generated:   time.Now().Format(time.RFC3339),
		BenchName:   benchName,
		TotalTimeMs: float64(elapsed.Milliseconds()),
		Results:     rows,
	}, "", "  ")
}
