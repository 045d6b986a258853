package analyzer

import (
	"context"
	"log/slog"

	"github.com/ManhLQ/sentiment-detection/internal/model"
)

// ProgressFunc is called after each row completes, successful or not.
type ProgressFunc func(done, total int)

// Runner drives the analyzer over an ordered batch of feedback rows.
type Runner struct {
	analyzer *Analyzer
	progress ProgressFunc
}

// NewRunner wraps an analyzer for batch use. progress may be nil.
func NewRunner(analyzer *Analyzer, progress ProgressFunc) *Runner {
	return &Runner{
		analyzer: analyzer,
		progress: progress,
	}
}

// Run analyzes rows strictly in input order, one backend call at a time.
// Every input row produces exactly one output row; a failed row carries the
// sentinel result and the batch keeps going.
func (r *Runner) Run(ctx context.Context, rows []model.FeedbackRow) []model.AnalyzedRow {
	results := make([]model.AnalyzedRow, 0, len(rows))
	failed := 0

	for i, row := range rows {
		result, err := r.analyzer.Analyze(ctx, row.Text)
		if err != nil {
			slog.Error("error analyzing row", "error", err, "row", row.Index)
			failed++
		}

		results = append(results, model.AnalyzedRow{Row: row, Result: result})

		if r.progress != nil {
			r.progress(i+1, len(rows))
		}
	}

	slog.Info("analysis complete", "rows", len(rows), "failed", failed)
	return results
}
