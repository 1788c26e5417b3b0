package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/zkbench/benchtab/criterion"
)

// Chart builds a grouped bar chart of the three phase times per
// configuration, in milliseconds.
func Chart(benchName string, results []criterion.Result) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s benchmark", benchName),
			Subtitle: "mean phase times per configuration",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "time (ms)"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	labels := make([]string, 0, len(results))
	witness := make([]opts.BarData, 0, len(results))
	proof := make([]opts.BarData, 0, len(results))
	verify := make([]opts.BarData, 0, len(results))
	for _, res := range results {
		labels = append(labels, fmt.Sprintf("%dx%s", res.Config.Lanes, pow2Plain(res.Config.Iterations)))
		witness = append(witness, opts.BarData{Value: res.WitnessMs})
		proof = append(proof, opts.BarData{Value: res.ProofMs})
		verify = append(verify, opts.BarData{Value: res.VerifyMs})
	}

	bar.SetXAxis(labels).
		AddSeries("witness generation", witness).
		AddSeries("proof generation", proof).
		AddSeries("proof verification", verify)
	return bar
}

// RenderChart writes the chart as a standalone HTML document.
func RenderChart(w io.Writer, benchName string, results []criterion.Result) error {
	return Chart(benchName, results).Render(w)
}
