package analyzer

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/ManhLQ/sentiment-detection/internal/model"
	"github.com/ManhLQ/sentiment-detection/pkg/llm"
)

const maxTopics = 3

// Analyzer turns one piece of feedback into a validated AnalysisResult.
// Whatever the backend returns, the result always carries a sentiment from
// the three-way enumeration and a non-empty, usable topic list.
type Analyzer struct {
	client        llm.Client
	fallbackTopic string
	debugLog      *slog.Logger
}

type Option func(*Analyzer)

// WithFallbackTopic overrides the placeholder recorded when the model
// returns no usable topics.
func WithFallbackTopic(topic string) Option {
	return func(a *Analyzer) {
		if strings.TrimSpace(topic) != "" {
			a.fallbackTopic = topic
		}
	}
}

// WithDebugLog records every prompt/response exchange on the given logger,
// for replaying misbehaving rows against a backend by hand.
func WithDebugLog(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.debugLog = logger
	}
}

func New(client llm.Client, opts ...Option) *Analyzer {
	a := &Analyzer{
		client:        client,
		fallbackTopic: model.DefaultFallbackTopic,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze classifies one feedback text. Blank input short-circuits to
// Neutral with no topics and no backend call. On backend failure the
// sentinel result is returned alongside the error so the caller can log it;
// either way the result is well-formed.
func (a *Analyzer) Analyze(ctx context.Context, text string) (model.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return model.AnalysisResult{Sentiment: model.SentimentNeutral}, nil
	}

	raw, err := a.client.Analyze(ctx, text)
	if err != nil {
		return model.FailureResult(), err
	}

	if a.debugLog != nil {
		a.debugLog.Debug("llm exchange",
			"model", a.client.ModelName(),
			"prompt", llm.AnalysisUserPrompt(text),
			"sentiment", raw.Sentiment,
			"topics", string(raw.Topics),
		)
	}

	return a.coerce(raw), nil
}

// coerce enforces the output contract on a raw backend response. A sentiment
// outside the enumeration becomes Neutral. A topics payload that is not a
// non-empty list of non-blank strings becomes the single fallback topic, and
// at most maxTopics entries survive.
func (a *Analyzer) coerce(raw *llm.RawAnalysis) model.AnalysisResult {
	sentiment, ok := model.ParseSentiment(raw.Sentiment)
	if !ok {
		sentiment = model.SentimentNeutral
	}

	var topics []string
	if err := json.Unmarshal(raw.Topics, &topics); err != nil {
		topics = nil
	}

	cleaned := make([]string, 0, maxTopics)
	for _, topic := range topics {
		topic = strings.TrimSpace(topic)
		if topic == "" {
			continue
		}
		cleaned = append(cleaned, topic)
		if len(cleaned) == maxTopics {
			break
		}
	}
	if len(cleaned) == 0 {
		cleaned = append(cleaned, a.fallbackTopic)
	}

	return model.AnalysisResult{Sentiment: sentiment, Topics: cleaned}
}
