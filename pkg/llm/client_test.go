package llm

import "testing"

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON unchanged",
			input: `{"sentiment":"Positive"}`,
			want:  `{"sentiment":"Positive"}`,
		},
		{
			name:  "strips json fenced block",
			input: "```json\n{\"sentiment\":\"Positive\"}\n```",
			want:  `{"sentiment":"Positive"}`,
		},
		{
			name:  "strips plain fenced block",
			input: "```\n{\"sentiment\":\"Positive\"}\n```",
			want:  `{"sentiment":"Positive"}`,
		},
		{
			name:  "trims surrounding whitespace",
			input: "  {\"sentiment\":\"Positive\"}  ",
			want:  `{"sentiment":"Positive"}`,
		},
		{
			name:  "slices prose around JSON",
			input: "Here is the analysis:\n{\"sentiment\":\"Positive\"}\nHope that helps!",
			want:  `{"sentiment":"Positive"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanJSONResponse(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeAnalysis(t *testing.T) {
	raw, err := decodeAnalysis("```json\n{\"sentiment\":\"Negative\",\"topics\":[\"Slow Shipping\"]}\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw.Sentiment != "Negative" {
		t.Errorf("sentiment: got %q, want %q", raw.Sentiment, "Negative")
	}
	if string(raw.Topics) != `["Slow Shipping"]` {
		t.Errorf("topics: got %s, want %s", raw.Topics, `["Slow Shipping"]`)
	}
}

func TestDecodeAnalysisKeepsMalformedTopicsRaw(t *testing.T) {
	// A topics field of the wrong shape must survive decoding untouched so
	// the analyzer can coerce it, rather than failing the whole row here.
	raw, err := decodeAnalysis(`{"sentiment":"Positive","topics":"not a list"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw.Topics) != `"not a list"` {
		t.Errorf("topics: got %s, want %s", raw.Topics, `"not a list"`)
	}
}

func TestDecodeAnalysisRejectsNonJSON(t *testing.T) {
	if _, err := decodeAnalysis("I am unable to process this request."); err == nil {
		t.Fatal("expected an error for a non-JSON response")
	}
}
