package model

import "strings"

type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

const (
	// ProcessingErrorTopic marks rows whose backend call failed outright.
	ProcessingErrorTopic = "Processing Error"
	// DefaultFallbackTopic replaces a topic list the model botched.
	// Overridable via FALLBACK_TOPIC.
	DefaultFallbackTopic = "Unclear Feedback"
)

// ParseSentiment maps a raw model label onto the enumeration, ignoring case
// and surrounding whitespace. Unrecognized labels report false; what to
// substitute is the caller's policy.
func ParseSentiment(raw string) (Sentiment, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "positive":
		return SentimentPositive, true
	case "negative":
		return SentimentNegative, true
	case "neutral":
		return SentimentNeutral, true
	}
	return "", false
}

// FeedbackRow is one line of customer feedback as read from the input file.
// Index is the zero-based position among the data rows.
type FeedbackRow struct {
	Index int
	Text  string
}

type AnalysisResult struct {
	Sentiment Sentiment
	Topics    []string
}

// AnalyzedRow pairs a feedback row with its analysis. A batch of them stays
// index-aligned with the input file.
type AnalyzedRow struct {
	Row    FeedbackRow
	Result AnalysisResult
}

// FailureResult is the sentinel recorded for a row that could not be
// analyzed at all.
func FailureResult() AnalysisResult {
	return AnalysisResult{
		Sentiment: SentimentNeutral,
		Topics:    []string{ProcessingErrorTopic},
	}
}
