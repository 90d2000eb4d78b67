package service

import (
	"context"

	"symptomintake/internal/clinical"
	"symptomintake/internal/llm"
	"symptomintake/internal/model"
	"symptomintake/internal/platform/logger"
	"symptomintake/internal/prompt"
)

type analysisChain = Chain[*model.PatientProfile, *model.Analysis]

// AnalysisService produces the differential analysis and the diagnosis with
// recommendations for a patient profile.
type AnalysisService struct {
	analysis  *analysisChain
	diagnosis *analysisChain
	records   *AssessmentLog
}

// NewAnalysisService creates a new analysis service. records may be nil.
func NewAnalysisService(client llm.Client, records *AssessmentLog, log *logger.Logger) *AnalysisService {
	return &AnalysisService{
		analysis:  newAnalysisChain("symptom_analysis", client, prompt.Analysis, clinical.FallbackAnalysis, log),
		diagnosis: newAnalysisChain("diagnosis", client, prompt.Diagnosis, clinical.FallbackDiagnosis, log),
		records:   records,
	}
}

func newAnalysisChain(
	task string,
	client llm.Client,
	build func(*model.PatientProfile) llm.Request,
	fallback func() *model.Analysis,
	log *logger.Logger,
) *analysisChain {
	return &analysisChain{
		Task: task,
		Log:  log,
		Strategies: []Strategy[*model.PatientProfile, *model.Analysis]{
			{Name: StageLLM, Run: func(ctx context.Context, p *model.PatientProfile) (*model.Analysis, error) {
				var a model.Analysis
				if err := completeJSON(ctx, client, build(p), &a); err != nil {
					return nil, err
				}
				clinical.BackfillAnalysis(&a)
				return &a, nil
			}},
			{Name: StageFallback, Run: func(context.Context, *model.PatientProfile) (*model.Analysis, error) {
				return fallback(), nil
			}},
		},
	}
}

// Analyze returns possible conditions, tests, red flags and care advice.
func (s *AnalysisService) Analyze(ctx context.Context, sessionID string, p *model.PatientProfile) *model.Analysis {
	return s.run(ctx, s.analysis, sessionID, model.AssessmentAnalysis, p, clinical.FallbackAnalysis)
}

// Diagnose returns a calibrated differential with recommended investigations.
func (s *AnalysisService) Diagnose(ctx context.Context, sessionID string, p *model.PatientProfile) *model.Analysis {
	return s.run(ctx, s.diagnosis, sessionID, model.AssessmentDiagnosis, p, clinical.FallbackDiagnosis)
}

func (s *AnalysisService) run(
	ctx context.Context,
	chain *analysisChain,
	sessionID string,
	kind model.AssessmentKind,
	p *model.PatientProfile,
	fallback func() *model.Analysis,
) *model.Analysis {
	out, strategy, err := chain.Run(ctx, p)
	if err != nil {
		out, strategy = fallback(), StageFallback
	}
	s.records.Record(ctx, sessionID, kind, strategy, out)
	return out
}
