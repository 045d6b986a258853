package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ManhLQ/sentiment-detection/internal/model"
)

// ReadColumn loads the named column from a CSV file with a header row. Cell
// text is used as-is; rows shorter than the header read as empty cells so a
// ragged file still yields one row per line.
func ReadColumn(path, column string) ([]model.FeedbackRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input file %s has no header row", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	col := -1
	names := make([]string, 0, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if i == 0 {
			// Excel exports prepend a BOM to the first header cell.
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		names = append(names, name)
		if name == column {
			col = i
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("column %q not found, available columns: %s", column, strings.Join(names, ", "))
	}

	var rows []model.FeedbackRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", len(rows)+1, err)
		}

		text := ""
		if col < len(record) {
			text = record[col]
		}
		rows = append(rows, model.FeedbackRow{Index: len(rows), Text: text})
	}
	return rows, nil
}
