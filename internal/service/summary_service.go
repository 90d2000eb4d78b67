package service

import (
	"context"

	"symptomintake/internal/clinical"
	"symptomintake/internal/llm"
	"symptomintake/internal/model"
	"symptomintake/internal/platform/logger"
	"symptomintake/internal/prompt"
)

// SummaryService writes the patient history summary with D/O indicators.
type SummaryService struct {
	chain   *Chain[*model.PatientProfile, *model.PatientSummary]
	records *AssessmentLog
}

// NewSummaryService creates a new summary service. records may be nil.
func NewSummaryService(client llm.Client, records *AssessmentLog, log *logger.Logger) *SummaryService {
	return &SummaryService{
		chain: &Chain[*model.PatientProfile, *model.PatientSummary]{
			Task: "patient_summary",
			Log:  log,
			Strategies: []Strategy[*model.PatientProfile, *model.PatientSummary]{
				{Name: StageLLM, Run: func(ctx context.Context, p *model.PatientProfile) (*model.PatientSummary, error) {
					var out model.PatientSummary
					if err := completeJSON(ctx, client, prompt.Summary(p), &out); err != nil {
						return nil, err
					}
					backfillSummary(&out, p)
					return &out, nil
				}},
				{Name: StageFallback, Run: func(_ context.Context, p *model.PatientProfile) (*model.PatientSummary, error) {
					return fallbackSummary(p), nil
				}},
			},
		},
		records: records,
	}
}

// Summarize never fails; sections the model omitted are rebuilt from the
// intake data.
func (s *SummaryService) Summarize(ctx context.Context, sessionID string, p *model.PatientProfile) *model.PatientSummary {
	out, strategy, err := s.chain.Run(ctx, p)
	if err != nil {
		out, strategy = fallbackSummary(p), StageFallback
	}
	s.records.Record(ctx, sessionID, model.AssessmentSummary, strategy, out)
	return out
}

func backfillSummary(s *model.PatientSummary, p *model.PatientProfile) {
	if s.PatientSummary == nil {
		s.PatientSummary = clinical.FallbackSummarySections(p)
	}
	if s.VitalsAbnormalities == nil {
		s.VitalsAbnormalities = clinical.AnalyzeAbnormalities(p.Vitals)
	}
	if s.MedicalSignificance == nil {
		s.MedicalSignificance = clinical.MedicalSignificance()
	}
}

func fallbackSummary(p *model.PatientProfile) *model.PatientSummary {
	return &model.PatientSummary{
		PatientSummary:      clinical.FallbackSummarySections(p),
		VitalsAbnormalities: clinical.AnalyzeAbnormalities(p.Vitals),
		MedicalSignificance: clinical.MedicalSignificance(),
	}
}
