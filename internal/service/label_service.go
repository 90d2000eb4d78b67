package service

import (
	"context"
	"strings"

	"symptomintake/internal/clinical"
	"symptomintake/internal/llm"
	"symptomintake/internal/model"
	"symptomintake/internal/platform/logger"
	"symptomintake/internal/prompt"
)

// LabelService extracts symptom labels and their correlations.
type LabelService struct {
	chain *Chain[string, *model.LabelResult]
}

// NewLabelService creates a new label service
func NewLabelService(client llm.Client, log *logger.Logger) *LabelService {
	return &LabelService{
		chain: &Chain[string, *model.LabelResult]{
			Task: "label_extraction",
			Log:  log,
			Strategies: []Strategy[string, *model.LabelResult]{
				{Name: StageLLM, Run: func(ctx context.Context, text string) (*model.LabelResult, error) {
					var r model.LabelResult
					if err := completeJSON(ctx, client, prompt.Labels(text), &r); err != nil {
						return nil, err
					}
					if r.ExtractedLabels == nil {
						r.ExtractedLabels = map[string]model.ExtractedLabel{}
					}
					if r.CorrelationMatrix == nil {
						r.CorrelationMatrix = map[string][]model.Correlation{}
					}
					r.LabelCount = len(r.ExtractedLabels)
					r.FeatureQuestions = []model.ChecklistItem{}
					return &r, nil
				}},
				{Name: StageFallback, Run: func(context.Context, string) (*model.LabelResult, error) {
					return model.EmptyLabelResult(), nil
				}},
			},
		},
	}
}

// Extract asks the model for labels. Blank input and model failures both
// yield the empty result.
func (s *LabelService) Extract(ctx context.Context, symptoms []string, narrative string) *model.LabelResult {
	text := prompt.LabelText(symptoms, narrative)
	if strings.TrimSpace(text) == "" {
		return model.EmptyLabelResult()
	}
	out, _, err := s.chain.Run(ctx, text)
	if err != nil {
		return model.EmptyLabelResult()
	}
	return out
}

// ExtractKeywords runs the deterministic keyword detector.
func (s *LabelService) ExtractKeywords(symptoms []string, narrative string) *model.LabelResult {
	return clinical.ExtractLabels(symptoms, narrative)
}
