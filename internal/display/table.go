package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ManhLQ/sentiment-detection/internal/model"
)

// maxTextWidth caps the Original Text column so one long review does not
// blow up the console layout. The CSV output keeps the full text.
const maxTextWidth = 50

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	sepStyle    = lipgloss.NewStyle().Faint(true)

	positiveStyle = cellStyle.Foreground(lipgloss.Color("2"))
	negativeStyle = cellStyle.Foreground(lipgloss.Color("1"))
	neutralStyle  = cellStyle.Foreground(lipgloss.Color("3"))
)

// RenderTable renders the analyzed batch as a three-column console table.
// An empty batch renders as an empty string.
func RenderTable(table []model.AnalyzedRow) string {
	if len(table) == 0 {
		return ""
	}

	headers := []string{"Original Text", "Sentiment", "Extracted Topics"}
	rows := make([][]string, 0, len(table))
	for _, analyzed := range table {
		rows = append(rows, []string{
			truncate(analyzed.Row.Text, maxTextWidth),
			string(analyzed.Result.Sentiment),
			strings.Join(analyzed.Result.Topics, ", "),
		})
	}

	colWidths := make([]int, len(headers))
	for i, h := range headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}
	// Widths include the cell padding.
	for i := range colWidths {
		colWidths[i] += 2
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Sentiment Analysis Results"))
	sb.WriteString("\n")

	for i, h := range headers {
		sb.WriteString(headerStyle.Width(colWidths[i]).Render(h))
		if i < len(headers)-1 {
			sb.WriteString(sepStyle.Render("|"))
		}
	}
	sb.WriteString("\n")

	totalWidth := len(headers) - 1
	for _, w := range colWidths {
		totalWidth += w
	}
	sb.WriteString(sepStyle.Render(strings.Repeat("-", totalWidth)))
	sb.WriteString("\n")

	for r, row := range rows {
		for i, cell := range row {
			style := cellStyle
			if i == 1 {
				style = sentimentStyle(table[r].Result.Sentiment)
			}
			sb.WriteString(style.Width(colWidths[i]).Render(cell))
			if i < len(row)-1 {
				sb.WriteString(sepStyle.Render("|"))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func sentimentStyle(s model.Sentiment) lipgloss.Style {
	switch s {
	case model.SentimentPositive:
		return positiveStyle
	case model.SentimentNegative:
		return negativeStyle
	}
	return neutralStyle
}

// truncate shortens s to max runes. Byte slicing would split multibyte
// characters, and most of the input here is not ASCII.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
