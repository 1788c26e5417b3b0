// Benchtab - runs the iterated_f circuit benchmark sweep and renders the
// results as a publication table. The benchmark itself is an external cargo
// process; this tool only orchestrates it, harvests criterion's estimates,
// and formats them.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zkbench/benchtab/bench"
	"github.com/zkbench/benchtab/criterion"
	"github.com/zkbench/benchtab/log"
	"github.com/zkbench/benchtab/report"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "benchtab",
		Short: "Circuit benchmark sweep runner and results table generator",
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	var (
		output    string
		skipRun   bool
		format    string
		jsonPath  string
		chartPath string
		workspace string
		benchName string
		verbosity string
		debug     string
	)

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark sweep, collect results, and emit the table",
		Run: func(cmd *cobra.Command, args []string) {
			log.InitLogger(verbosity)
			log.EnableModules(debug)

			configs := bench.DefaultSweep()
			start := time.Now()

			if !skipRun {
				fmt.Printf("Running benchmarks...\n")
				runner := bench.NewRunner(workspace, benchName)
				if err := runner.RunAll(cmd.Context(), configs); err != nil {
					log.Error(log.RunMonitoring, "benchmark run failed", "err", err)
					os.Exit(1)
				}
			}

			fmt.Printf("\nCollecting results...\n")
			results := criterion.CollectAll(workspace, benchName, configs)
			for _, res := range results {
				fmt.Printf("  %d lanes, %d iters: witness=%s, proof=%s, verify=%s\n",
					res.Config.Lanes, res.Config.Iterations,
					report.FormatTime(res.WitnessMs),
					report.FormatTime(res.ProofMs),
					report.FormatTime(res.VerifyMs))
			}
			if len(results) == 0 {
				log.Error(log.CollectMonitoring, "no benchmark results found", "workspace", workspace, "bench", benchName)
				os.Exit(1)
			}

			var table string
			switch format {
			case "latex", "tex":
				table = report.LaTeXTable(results)
			case "markdown", "md":
				table = report.MarkdownTable(results)
			default:
				log.Error(log.ReportMonitoring, "unknown table format", "format", format)
				os.Exit(1)
			}

			if output != "" {
				if err := os.WriteFile(output, []byte(table), 0644); err != nil {
					log.Error(log.ReportMonitoring, "failed to write table", "path", output, "err", err)
					os.Exit(1)
				}
				log.Info(log.ReportMonitoring, "table written", "path", output)
			} else {
				banner := strings.Repeat("=", 60)
				fmt.Printf("\n%s\nResults Table:\n%s\n%s\n", banner, banner, table)
			}

			if jsonPath != "" {
				data, err := report.GenerateJSONReport(benchName, results, time.Since(start))
				if err != nil {
					log.Error(log.ReportMonitoring, "failed to generate JSON report", "err", err)
					os.Exit(1)
				}
				if err := os.WriteFile(jsonPath, data, 0644); err != nil {
					log.Error(log.ReportMonitoring, "failed to write JSON report", "path", jsonPath, "err", err)
					os.Exit(1)
				}
				log.Info(log.ReportMonitoring, "JSON report written", "path", jsonPath)
			}

			if chartPath != "" {
				f, err := os.Create(chartPath)
				if err != nil {
					log.Error(log.ReportMonitoring, "failed to create chart file", "path", chartPath, "err", err)
					os.Exit(1)
				}
				renderErr := report.RenderChart(f, benchName, results)
				if closeErr := f.Close(); renderErr == nil {
					renderErr = closeErr
				}
				if renderErr != nil {
					log.Error(log.ReportMonitoring, "failed to render chart", "path", chartPath, "err", renderErr)
					os.Exit(1)
				}
				log.Info(log.ReportMonitoring, "chart written", "path", chartPath)
			}
		},
	}

	runCmd.Flags().StringVarP(&output, "output", "o", "", "Output file for the table (default: stdout)")
	runCmd.Flags().BoolVar(&skipRun, "skip-run", false, "Skip running benchmarks, only collect existing results")
	runCmd.Flags().StringVar(&format, "format", "latex", "Table format: latex or markdown")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "Also write a JSON report to this path")
	runCmd.Flags().StringVar(&chartPath, "chart", "", "Also write an HTML bar chart to this path")
	runCmd.Flags().StringVar(&workspace, "workspace", ".", "Benchmark workspace root (holds target/criterion)")
	runCmd.Flags().StringVar(&benchName, "bench-name", "iterated_f", "Cargo bench target to run and collect")
	runCmd.Flags().StringVar(&verbosity, "verbosity", "info", "Log level (trace|debug|info|warn|error)")
	runCmd.Flags().StringVar(&debug, "debug", "", "Comma-separated modules with trace/debug logging enabled")

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("benchtab %s (commit %s, built %s)\n", Version, Commit, BuildTime)
		},
	}

	rootCmd.AddCommand(runCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
