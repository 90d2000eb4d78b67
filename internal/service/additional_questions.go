package service

import (
	"context"
	"encoding/json"
	"fmt"

	"symptomintake/internal/llm"
	"symptomintake/internal/model"
	"symptomintake/internal/platform/logger"
	"symptomintake/internal/prompt"
)

type additionalInput struct {
	profile *model.PatientProfile
	max     int
}

// AdditionalQuestionService generates OLDCARTS questions for the extended
// intake form.
type AdditionalQuestionService struct {
	chain *Chain[additionalInput, []model.Question]
}

// NewAdditionalQuestionService creates a new additional question service
func NewAdditionalQuestionService(client llm.Client, log *logger.Logger) *AdditionalQuestionService {
	return &AdditionalQuestionService{
		chain: &Chain[additionalInput, []model.Question]{
			Task: "additional_questions",
			Log:  log,
			Strategies: []Strategy[additionalInput, []model.Question]{
				{Name: StageLLM, Run: func(ctx context.Context, in additionalInput) ([]model.Question, error) {
					text, err := client.Complete(ctx, prompt.AdditionalQuestions(in.profile, in.max))
					if err != nil {
						return nil, err
					}
					return parseAdditionalQuestions(text, in.max)
				}},
				{Name: StageFallback, Run: func(context.Context, additionalInput) ([]model.Question, error) {
					return []model.Question{}, nil
				}},
			},
		},
	}
}

// Generate returns at most max questions; max <= 0 means the default.
func (s *AdditionalQuestionService) Generate(ctx context.Context, p *model.PatientProfile, max int) []model.Question {
	max = prompt.ClampAdditional(max)
	out, _, err := s.chain.Run(ctx, additionalInput{profile: p, max: max})
	if err != nil {
		return []model.Question{}
	}
	return out
}

// parseAdditionalQuestions pulls a JSON array out of free-form output. Entries
// that do not decode or fail validation are dropped.
func parseAdditionalQuestions(text string, max int) ([]model.Question, error) {
	body, ok := llm.ExtractJSONArray(text)
	if !ok {
		body = text
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}

	out := make([]model.Question, 0, len(raw))
	for _, r := range raw {
		var q model.Question
		if err := json.Unmarshal(r, &q); err != nil {
			continue
		}
		if err := q.Validate(); err != nil {
			continue
		}
		out = append(out, q)
		if len(out) == max {
			break
		}
	}
	return out, nil
}
