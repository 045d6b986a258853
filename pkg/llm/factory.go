package llm

import (
	"fmt"
	"os"
	"strings"
)

const (
	BackendOpenAI    = "openai"
	BackendAnthropic = "anthropic"
	BackendOllama    = "ollama"
)

// openaiKeyPlaceholder ships in .env.example. Treat it as unset so a copied
// template fails at startup instead of burning a request per row.
const openaiKeyPlaceholder = "your-openai-api-key-here"

// BackendName reports the backend selected by LLM_BACKEND, defaulting to
// openai when unset.
func BackendName() string {
	backend := strings.ToLower(strings.TrimSpace(os.Getenv("LLM_BACKEND")))
	if backend == "" {
		return BackendOpenAI
	}
	return backend
}

// NewClientFromEnv builds the backend selected by LLM_BACKEND. Selection
// happens once at startup; callers only ever see the Client interface.
func NewClientFromEnv() (Client, error) {
	backend := BackendName()
	switch backend {
	case BackendOpenAI:
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" || apiKey == openaiKeyPlaceholder {
			return nil, fmt.Errorf("OPENAI_API_KEY is not configured")
		}
		return NewOpenAIClient(OpenAIConfig{
			APIKey:  apiKey,
			Model:   os.Getenv("OPENAI_MODEL"),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
		}), nil

	case BackendAnthropic:
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is not configured")
		}
		return NewAnthropicClient(AnthropicConfig{
			APIKey:  apiKey,
			Model:   os.Getenv("ANTHROPIC_MODEL"),
			BaseURL: os.Getenv("ANTHROPIC_BASE_URL"),
		}), nil

	case BackendOllama:
		return NewOllamaClient(OllamaConfig{
			BaseURL: os.Getenv("OLLAMA_BASE_URL"),
			Model:   os.Getenv("OLLAMA_MODEL"),
		}), nil
	}

	return nil, fmt.Errorf("invalid LLM_BACKEND %q: must be one of openai, anthropic, ollama", backend)
}
