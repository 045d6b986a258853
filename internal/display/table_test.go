package display

import (
	"strings"
	"testing"

	"github.com/ManhLQ/sentiment-detection/internal/model"
)

func TestRenderTable(t *testing.T) {
	table := []model.AnalyzedRow{
		{
			Row:    model.FeedbackRow{Index: 0, Text: "Giao hàng chậm"},
			Result: model.AnalysisResult{Sentiment: model.SentimentNegative, Topics: []string{"Slow Shipping"}},
		},
		{
			Row:    model.FeedbackRow{Index: 1, Text: "Hàng ok but ship hơi lâu."},
			Result: model.AnalysisResult{Sentiment: model.SentimentNeutral, Topics: []string{"Good Product", "Slow Shipping"}},
		},
	}

	view := RenderTable(table)

	for _, want := range []string{
		"Sentiment Analysis Results",
		"Original Text",
		"Extracted Topics",
		"Giao hàng chậm",
		"Negative",
		"Good Product, Slow Shipping",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if view := RenderTable(nil); view != "" {
		t.Errorf("expected empty view, got %q", view)
	}
}

func TestRenderTableTruncatesLongText(t *testing.T) {
	long := strings.Repeat("rất dài ", 20)
	table := []model.AnalyzedRow{
		{
			Row:    model.FeedbackRow{Index: 0, Text: long},
			Result: model.AnalysisResult{Sentiment: model.SentimentNeutral, Topics: []string{"Unclear Feedback"}},
		},
	}

	view := RenderTable(table)

	if strings.Contains(view, long) {
		t.Error("long text should be truncated in the console view")
	}
	if !strings.Contains(view, "...") {
		t.Error("truncated text should end with an ellipsis")
	}
}

func TestTruncateRuneSafe(t *testing.T) {
	got := truncate("配送が速い、品質も良い", 8)
	if got != "配送が速い..." {
		t.Errorf("got %q", got)
	}
	if s := "short"; truncate(s, 50) != s {
		t.Errorf("short text should pass through unchanged")
	}
}
