package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	defaultOllamaBaseURL = "http://localhost:11434"
	defaultOllamaModel   = "llama3.2"
)

// OllamaClient talks to a local Ollama server over its plain HTTP API. No
// API key involved, so a bad base URL only surfaces on the first call.
type OllamaClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

type OllamaConfig struct {
	BaseURL string
	Model   string
}

func NewOllamaClient(cfg OllamaConfig) *OllamaClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultOllamaModel
	}
	return &OllamaClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

func (c *OllamaClient) ModelName() string {
	return c.model
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	System string `json:"system,omitempty"`
	Prompt string `json:"prompt"`
	Format string `json:"format,omitempty"`
	Stream bool   `json:"stream"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
	Done    bool          `json:"done"`
}

func (c *OllamaClient) Analyze(ctx context.Context, text string) (*RawAnalysis, error) {
	// format=json makes Ollama constrain decoding to valid JSON, which small
	// local models need more than the hosted ones do.
	body, err := json.Marshal(ollamaGenerateRequest{
		Model:  c.model,
		System: AnalysisSystemPrompt,
		Prompt: AnalysisUserPrompt(text),
		Format: "json",
		Stream: false,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	raw, err := c.post(ctx, "/api/generate", body)
	if err != nil {
		return nil, err
	}

	var parsed ollamaGenerateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("unexpected ollama response: %s", string(raw))
	}
	return decodeAnalysis(parsed.Response)
}

func (c *OllamaClient) Chat(ctx context.Context, history []ChatTurn, question string) (string, error) {
	messages := make([]ollamaMessage, 0, 2*len(history)+2)
	messages = append(messages, ollamaMessage{Role: "system", Content: chatSystemPrompt})
	for _, turn := range history {
		messages = append(messages, ollamaMessage{Role: "user", Content: turn.Question})
		messages = append(messages, ollamaMessage{Role: "assistant", Content: turn.Answer})
	}
	messages = append(messages, ollamaMessage{Role: "user", Content: question})

	body, err := json.Marshal(ollamaChatRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	raw, err := c.post(ctx, "/api/chat", body)
	if err != nil {
		return "", err
	}

	var parsed ollamaChatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("unexpected ollama response: %s", string(raw))
	}
	return strings.TrimSpace(parsed.Message.Content), nil
}

func (c *OllamaClient) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama API error: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}
