package service

import (
	"context"

	"symptomintake/internal/clinical"
	"symptomintake/internal/llm"
	"symptomintake/internal/platform/logger"
	"symptomintake/internal/prompt"
)

// SuggestionService completes a partially typed symptom into ten suggestions
type SuggestionService struct {
	chain *Chain[string, []string]
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(client llm.Client, log *logger.Logger) *SuggestionService {
	return &SuggestionService{
		chain: &Chain[string, []string]{
			Task: "symptom_suggestions",
			Log:  log,
			Strategies: []Strategy[string, []string]{
				{Name: StageLLM, Run: func(ctx context.Context, input string) ([]string, error) {
					var out []string
					if err := completeJSON(ctx, client, prompt.Suggestions(input), &out); err != nil {
						return nil, err
					}
					return clinical.PadSuggestions(out), nil
				}},
				{Name: StageFallback, Run: func(_ context.Context, input string) ([]string, error) {
					return clinical.FallbackSuggestions(input), nil
				}},
			},
		},
	}
}

// Suggest never fails; the static list covers every model failure.
func (s *SuggestionService) Suggest(ctx context.Context, input string) []string {
	out, _, err := s.chain.Run(ctx, input)
	if err != nil {
		return clinical.FallbackSuggestions(input)
	}
	return out
}
