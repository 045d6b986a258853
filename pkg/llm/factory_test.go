package llm

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestNewClientFromEnvDefaultsToOpenAI(t *testing.T) {
	t.Setenv("LLM_BACKEND", "")
	t.Setenv("OPENAI_API_KEY", "test-key")

	client, err := NewClientFromEnv()
	assert.Equal(t, nil, err)
	if _, ok := client.(*OpenAIClient); !ok {
		t.Fatalf("expected *OpenAIClient, got %T", client)
	}
	assert.Equal(t, "gpt-4o-mini", client.ModelName())
}

func TestNewClientFromEnvSelectsAnthropic(t *testing.T) {
	t.Setenv("LLM_BACKEND", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("ANTHROPIC_MODEL", "")

	client, err := NewClientFromEnv()
	assert.Equal(t, nil, err)
	if _, ok := client.(*AnthropicClient); !ok {
		t.Fatalf("expected *AnthropicClient, got %T", client)
	}
}

func TestNewClientFromEnvSelectsOllama(t *testing.T) {
	t.Setenv("LLM_BACKEND", "ollama")
	t.Setenv("OLLAMA_MODEL", "mistral")
	t.Setenv("OLLAMA_BASE_URL", "")

	client, err := NewClientFromEnv()
	assert.Equal(t, nil, err)
	if _, ok := client.(*OllamaClient); !ok {
		t.Fatalf("expected *OllamaClient, got %T", client)
	}
	assert.Equal(t, "mistral", client.ModelName())
}

func TestNewClientFromEnvBackendCaseInsensitive(t *testing.T) {
	t.Setenv("LLM_BACKEND", " OLLAMA ")
	t.Setenv("OLLAMA_MODEL", "")
	t.Setenv("OLLAMA_BASE_URL", "")

	client, err := NewClientFromEnv()
	assert.Equal(t, nil, err)
	if _, ok := client.(*OllamaClient); !ok {
		t.Fatalf("expected *OllamaClient, got %T", client)
	}
}

func TestNewClientFromEnvMissingOpenAIKey(t *testing.T) {
	t.Setenv("LLM_BACKEND", "openai")
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := NewClientFromEnv(); err == nil {
		t.Fatal("expected an error when OPENAI_API_KEY is unset")
	}
}

func TestNewClientFromEnvPlaceholderOpenAIKey(t *testing.T) {
	t.Setenv("LLM_BACKEND", "openai")
	t.Setenv("OPENAI_API_KEY", "your-openai-api-key-here")

	if _, err := NewClientFromEnv(); err == nil {
		t.Fatal("expected the .env.example placeholder key to be rejected")
	}
}

func TestNewClientFromEnvUnknownBackend(t *testing.T) {
	t.Setenv("LLM_BACKEND", "bard")

	if _, err := NewClientFromEnv(); err == nil {
		t.Fatal("expected an error for an unknown backend")
	}
}
