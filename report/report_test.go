package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkbench/benchtab/bench"
	"github.com/zkbench/benchtab/criterion"
)

func TestFormatTime(t *testing.T) {
	testCases := []struct {
		ms   float64
		want string
	}{
		{0.0423, "42.3 µs"},
		{0.5, "500.0 µs"},
		{0.999, "999.0 µs"},
		{1, "1.0 ms"},
		{1.5, "1.5 ms"},
		{2.3, "2.3 ms"},
		{999.9, "999.9 ms"},
		{1000, "1.00 s"},
		{1500, "1.50 s"},
		{123456, "123.46 s"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, FormatTime(tc.ms), "ms=%v", tc.ms)
	}
}

func TestFormatPow2(t *testing.T) {
	assert.Equal(t, "$2^{0}$", FormatPow2(1))
	assert.Equal(t, "$2^{1}$", FormatPow2(2))
	assert.Equal(t, "$2^{13}$", FormatPow2(8192))
	assert.Equal(t, "$2^{17}$", FormatPow2(131072))

	// not powers of two come back as plain decimals
	assert.Equal(t, "3", FormatPow2(3))
	assert.Equal(t, "12", FormatPow2(12))
	assert.Equal(t, "100", FormatPow2(100))
	assert.Equal(t, "0", FormatPow2(0))
	assert.Equal(t, "-4", FormatPow2(-4))
}

func sampleResults() []criterion.Result {
	return []criterion.Result{
		{Config: bench.Config{Lanes: 1, Iterations: 8192}, WitnessMs: 1.5, ProofMs: 2.3, VerifyMs: 0.5},
		{Config: bench.Config{Lanes: 1, Iterations: 16384}, WitnessMs: 3.1, ProofMs: 4.7, VerifyMs: 0.6},
		{Config: bench.Config{Lanes: 4, Iterations: 2048}, WitnessMs: 1.4, ProofMs: 2.1, VerifyMs: 0.4},
	}
}

func TestLaTeXTable(t *testing.T) {
	table := LaTeXTable(sampleResults())
	lines := strings.Split(table, "\n")

	assert.Equal(t, `\begin{table}[htbp]`, lines[0])
	assert.Contains(t, table, `\toprule`)
	assert.Contains(t, table, `\bottomrule`)

	assert.Contains(t, table, `1 & $2^{13}$ & $2^{13}$ & 1.5 ms & 2.3 ms & 500.0 µs \\`)
	assert.Contains(t, table, `4 & $2^{11}$ & $2^{13}$ & 1.4 ms & 2.1 ms & 400.0 µs \\`)

	// one \midrule after the header, one at the 1->4 lane transition
	assert.Equal(t, 2, strings.Count(table, `\midrule`))

	// the group separator sits immediately before the lanes=4 row
	for i, line := range lines {
		if strings.HasPrefix(line, "4 & ") {
			assert.Equal(t, `\midrule`, lines[i-1])
		}
	}
}

func TestLaTeXTableNoSeparatorForSingleGroup(t *testing.T) {
	results := sampleResults()[:2] // both lanes=1
	table := LaTeXTable(results)
	assert.Equal(t, 1, strings.Count(table, `\midrule`), "only the header separator")
}

func TestMarkdownTable(t *testing.T) {
	table := MarkdownTable(sampleResults())
	lines := strings.Split(table, "\n")
	require.Len(t, lines, 5)

	assert.Equal(t, "| Lanes | Iterations | Total Ops | Witness Gen | Proof Gen | Verification |", lines[0])
	assert.Equal(t, "| 1 | 2^13 | 2^13 | 1.5 ms | 2.3 ms | 500.0 µs |", lines[2])
	assert.Equal(t, "| 4 | 2^11 | 2^13 | 1.4 ms | 2.1 ms | 400.0 µs |", lines[4])
}

func TestGenerateJSONReport(t *testing.T) {
	data, err := GenerateJSONReport("iterated_f", sampleResults(), 90*time.Second)
	require.NoError(t, err)

	var decoded JSONReport
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "iterated_f", decoded.BenchName)
	assert.Equal(t, float64(90000), decoded.TotalTimeMs)
	require.Len(t, decoded.Results, 3)
	assert.Equal(t, ResultRow{
		Lanes: 1, Iterations: 8192, TotalOps: 8192,
		WitnessMs: 1.5, ProofMs: 2.3, VerifyMs: 0.5,
	}, decoded.Results[0])
	assert.Equal(t, 8192, decoded.Results[2].TotalOps)
}

func TestRenderChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderChart(&buf, "iterated_f", sampleResults()))

	html := buf.String()
	assert.Contains(t, html, "witness generation")
	assert.Contains(t, html, "proof generation")
	assert.Contains(t, html, "proof verification")
	assert.Contains(t, html, "iterated_f benchmark")
}
