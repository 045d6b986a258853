package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ManhLQ/sentiment-detection/internal/model"
)

// Output column order is part of the contract: the untouched original text,
// the sentiment label, then the topics joined with ", ".
var outputHeader = []string{"Original Text", "Sentiment", "Extracted Topics"}

// WriteResults saves the analyzed table as CSV at path, overwriting any
// existing file.
func WriteResults(path string, table []model.AnalyzedRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(outputHeader); err != nil {
		f.Close()
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, analyzed := range table {
		record := []string{
			analyzed.Row.Text,
			string(analyzed.Result.Sentiment),
			strings.Join(analyzed.Result.Topics, ", "),
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("write csv row %d: %w", analyzed.Row.Index, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush output file: %w", err)
	}
	return f.Close()
}

// DefaultOutputPath derives "<name>_analyzed<ext>" next to the input file.
func DefaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + "_analyzed" + ext
}
