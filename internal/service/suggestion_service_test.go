package service

import (
	"context"
	"testing"

	"symptomintake/internal/llm"
	"symptomintake/internal/platform/logger"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		name      string
		client    llm.Client
		wantFirst string
		wantLast  string
	}{
		{
			name:      "provider disabled",
			client:    llm.Disabled{},
			wantFirst: "headache (main symptom)",
			wantLast:  "sweating (excess moisture)",
		},
		{
			name: "short list is padded",
			client: llm.ClientFunc(func(context.Context, llm.Request) (string, error) {
				return "```json\n[\"headache (throbbing pain)\", \"fever (elevated temperature)\"]\n```", nil
			}),
			wantFirst: "headache (throbbing pain)",
			wantLast:  "",
		},
		{
			name: "unparsable reply falls back",
			client: llm.ClientFunc(func(context.Context, llm.Request) (string, error) {
				return "Here are some symptoms: headache", nil
			}),
			wantFirst: "headache (main symptom)",
			wantLast:  "sweating (excess moisture)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSuggestionService(tt.client, logger.NewNop())
			got := svc.Suggest(context.Background(), "headache")

			if tt.wantLast == "" {
				// 2 from the model plus the 4 common symptoms it did not repeat.
				if len(got) != 6 {
					t.Fatalf("expected 6 suggestions, got %d: %v", len(got), got)
				}
				if got[2] != "fatigue (feeling very tired)" {
					t.Fatalf("unexpected padding %v", got)
				}
			} else if len(got) != 10 || got[9] != tt.wantLast {
				t.Fatalf("unexpected suggestions %v", got)
			}
			if got[0] != tt.wantFirst {
				t.Fatalf("first = %q, want %q", got[0], tt.wantFirst)
			}
		})
	}
}

func TestSuggestTruncatesLongLists(t *testing.T) {
	client := llm.ClientFunc(func(context.Context, llm.Request) (string, error) {
		return `["a","b","c","d","e","f","g","h","i","j","k","l"]`, nil
	})
	got := NewSuggestionService(client, nil).Suggest(context.Background(), "x")
	if len(got) != 10 || got[9] != "j" {
		t.Fatalf("unexpected suggestions %v", got)
	}
}
