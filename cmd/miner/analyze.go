package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ManhLQ/sentiment-detection/internal/analyzer"
	"github.com/ManhLQ/sentiment-detection/internal/csvio"
	"github.com/ManhLQ/sentiment-detection/internal/display"
	"github.com/ManhLQ/sentiment-detection/pkg/llm"
)

var (
	inputPath  string
	columnName string
	outputPath string
	rowLimit   int
	noSave     bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze every row of a CSV feedback column",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to the input CSV file")
	analyzeCmd.Flags().StringVarP(&columnName, "column", "c", "", "name of the column holding feedback text")
	analyzeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output CSV path (default: <input>_analyzed.csv)")
	analyzeCmd.Flags().IntVarP(&rowLimit, "limit", "n", 0, "only analyze the first N rows")
	analyzeCmd.Flags().BoolVar(&noSave, "no-save", false, "print results without writing a CSV")
	analyzeCmd.MarkFlagRequired("input")
	analyzeCmd.MarkFlagRequired("column")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	client, err := llm.NewClientFromEnv()
	if err != nil {
		return err
	}
	slog.Info("backend configured",
		"backend", llm.BackendName(),
		"model", client.ModelName(),
		"prompt_version", llm.PromptVersion,
	)

	rows, err := csvio.ReadColumn(inputPath, columnName)
	if err != nil {
		return err
	}
	if rowLimit > 0 && rowLimit < len(rows) {
		rows = rows[:rowLimit]
	}
	slog.Info("input loaded", "path", inputPath, "column", columnName, "rows", len(rows))

	var opts []analyzer.Option
	if topic := os.Getenv("FALLBACK_TOPIC"); topic != "" {
		opts = append(opts, analyzer.WithFallbackTopic(topic))
	}
	if debug {
		opts = append(opts, analyzer.WithDebugLog(slog.Default()))
	}

	// The bar and the debug log would interleave on stderr, so debug runs
	// drop the bar.
	var progress analyzer.ProgressFunc
	if !debug && len(rows) > 0 {
		bar := progressbar.Default(int64(len(rows)), "analyzing")
		progress = func(done, total int) {
			bar.Add(1)
		}
	}

	runner := analyzer.NewRunner(analyzer.New(client, opts...), progress)
	table := runner.Run(cmd.Context(), rows)

	if view := display.RenderTable(table); view != "" {
		fmt.Println()
		fmt.Println(view)
	}

	if noSave {
		return nil
	}

	path := outputPath
	if path == "" {
		path = csvio.DefaultOutputPath(inputPath)
	}
	if err := csvio.WriteResults(path, table); err != nil {
		return fmt.Errorf("results shown above were not saved: %w", err)
	}
	fmt.Printf("Results saved to %s\n", path)
	return nil
}
