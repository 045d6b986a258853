package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// requestTimeout bounds every backend call. A row that exceeds it fails and
// gets the sentinel result; the batch keeps going.
const requestTimeout = 90 * time.Second

// RawAnalysis is a backend response before any validation. Topics stays raw
// JSON because models sometimes return a bare string or other junk where a
// list is required; shape enforcement belongs to the analyzer, not here.
type RawAnalysis struct {
	Sentiment string          `json:"sentiment"`
	Topics    json.RawMessage `json:"topics"`
}

// ChatTurn is one completed question/answer exchange.
type ChatTurn struct {
	Question string
	Answer   string
}

// Client is implemented by every LLM backend. Analyze makes exactly one
// attempt per call; there is no retry, caching or batching layer.
type Client interface {
	Analyze(ctx context.Context, text string) (*RawAnalysis, error)
	Chat(ctx context.Context, history []ChatTurn, question string) (string, error)
	ModelName() string
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}

// decodeAnalysis parses a model payload into RawAnalysis, tolerating fenced
// code blocks and surrounding prose. Output that is not a JSON object at all
// is rejected.
func decodeAnalysis(content string) (*RawAnalysis, error) {
	content = cleanJSONResponse(content)

	var parsed RawAnalysis
	err := json.Unmarshal([]byte(content), &parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}
	return &parsed, nil
}
