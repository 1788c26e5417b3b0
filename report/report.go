// Package report renders collected benchmark results into publication
// formats: a LaTeX table (the primary output), a Markdown table, a JSON
// sidecar, and an HTML chart.
package report

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/zkbench/benchtab/criterion"
)

// FormatTime renders a millisecond duration in the unit its magnitude calls
// for: microseconds below 1 ms, milliseconds below 1 s, seconds above.
func FormatTime(ms float64) string {
	switch {
	case ms < 1:
		return fmt.Sprintf("%.1f µs", ms*1000)
	case ms < 1000:
		return fmt.Sprintf("%.1f ms", ms)
	default:
		return fmt.Sprintf("%.2f s", ms/1000)
	}
}

// FormatPow2 renders exact powers of two in LaTeX exponent notation and
// everything else as a plain decimal.
func FormatPow2(n int) string {
	if n > 0 && n&(n-1) == 0 {
		return fmt.Sprintf("$2^{%d}$", bits.TrailingZeros(uint(n)))
	}
	return strconv.Itoa(n)
}

// pow2Plain is the Markdown-friendly variant of FormatPow2.
func pow2Plain(n int) string {
	if n > 0 && n&(n-1) == 0 {
		return fmt.Sprintf("2^%d", bits.TrailingZeros(uint(n)))
	}
	return strconv.Itoa(n)
}

// LaTeXTable renders results as a booktabs table, one row per configuration
// with a \midrule between lane groups. Results are expected in sweep order,
// so rows with equal lane counts are contiguous.
func LaTeXTable(results []criterion.Result) string {
	lines := []string{
		`\begin{table}[htbp]`,
		`\centering`,
		`\caption{Iterated f benchmark results}`,
		`\label{tab:iterated-f-benchmark}`,
		`\begin{tabular}{rrrrrr}`,
		`\toprule`,
		`Lanes & Iterations & Total Ops & Witness Gen & Proof Gen & Verification \\`,
		`\midrule`,
	}

	currentLanes := -1
	for _, res := range results {
		if currentLanes != -1 && res.Config.Lanes != currentLanes {
			lines = append(lines, `\midrule`)
		}
		currentLanes = res.Config.Lanes

		lines = append(lines, fmt.Sprintf(`%d & %s & %s & %s & %s & %s \\`,
			res.Config.Lanes,
			FormatPow2(res.Config.Iterations),
			FormatPow2(res.Config.TotalOps()),
			FormatTime(res.WitnessMs),
			FormatTime(res.ProofMs),
			FormatTime(res.VerifyMs),
		))
	}

	lines = append(lines,
		`\bottomrule`,
		`\end{tabular}`,
		`\end{table}`,
	)
	return strings.Join(lines, "\n")
}

// MarkdownTable renders the same columns as LaTeXTable in GitHub-flavored
// Markdown. Markdown tables have no mid-table rule, so lane groups are
// simply contiguous.
func MarkdownTable(results []criterion.Result) string {
	lines := []string{
		"| Lanes | Iterations | Total Ops | Witness Gen | Proof Gen | Verification |",
		"| ---: | ---: | ---: | ---: | ---: | ---: |",
	}
	for _, res := range results {
		lines = append(lines, fmt.Sprintf("| %d | %s | %s | %s | %s | %s |",
			res.Config.Lanes,
			pow2Plain(res.Config.Iterations),
			pow2Plain(res.Config.TotalOps()),
			FormatTime(res.WitnessMs),
			FormatTime(res.ProofMs),
			FormatTime(res.VerifyMs),
		))
	}
	return strings.Join(lines, "\n")
}
