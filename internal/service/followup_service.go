package service

import (
	"context"
	"encoding/json"
	"errors"

	"symptomintake/internal/clinical"
	"symptomintake/internal/llm"
	"symptomintake/internal/model"
	"symptomintake/internal/platform/logger"
	"symptomintake/internal/prompt"
)

var errNoQuestionList = errors.New("model output has no question list")

type followUpInput struct {
	profile  *model.PatientProfile
	outliers *model.OutlierReport
}

// FollowUpService generates follow-up questions that address abnormal vitals
// before anything else.
type FollowUpService struct {
	chain   *Chain[followUpInput, *model.FollowUpQuestionSet]
	records *AssessmentLog
}

// NewFollowUpService creates a new follow-up service. records may be nil.
func NewFollowUpService(client llm.Client, records *AssessmentLog, log *logger.Logger) *FollowUpService {
	return &FollowUpService{
		chain: &Chain[followUpInput, *model.FollowUpQuestionSet]{
			Task: "followup_questions",
			Log:  log,
			Strategies: []Strategy[followUpInput, *model.FollowUpQuestionSet]{
				{Name: StageLLM, Run: func(ctx context.Context, in followUpInput) (*model.FollowUpQuestionSet, error) {
					var raw struct {
						Questions         json.RawMessage `json:"questions"`
						OutliersAddressed []string        `json:"outliers_addressed"`
						DoIndicatorsFocus []string        `json:"do_indicators_focus"`
					}
					if err := completeJSON(ctx, client, prompt.FollowUps(in.profile, in.outliers), &raw); err != nil {
						return nil, err
					}
					var questions []model.Question
					if len(raw.Questions) == 0 || json.Unmarshal(raw.Questions, &questions) != nil || questions == nil {
						return nil, errNoQuestionList
					}

					if len(questions) < clinical.MinFollowUps {
						fallback := clinical.FallbackFollowUps(in.profile, in.outliers).Questions
						if len(fallback) > clinical.FollowUpTopUp {
							fallback = fallback[:clinical.FollowUpTopUp]
						}
						questions = append(questions, fallback...)
					}

					set := &model.FollowUpQuestionSet{
						Questions:         questions,
						TotalQuestions:    len(questions),
						OutliersAddressed: raw.OutliersAddressed,
						DoIndicatorsFocus: raw.DoIndicatorsFocus,
					}
					if set.OutliersAddressed == nil {
						set.OutliersAddressed = in.outliers.Types()
					}
					if set.DoIndicatorsFocus == nil {
						set.DoIndicatorsFocus = append([]string(nil), clinical.DOIndicatorsFocus...)
					}
					return set, nil
				}},
				{Name: StageFallback, Run: func(_ context.Context, in followUpInput) (*model.FollowUpQuestionSet, error) {
					return clinical.FallbackFollowUps(in.profile, in.outliers), nil
				}},
			},
		},
		records: records,
	}
}

// Generate analyses the vitals and returns the follow-up set.
func (s *FollowUpService) Generate(ctx context.Context, sessionID string, p *model.PatientProfile) *model.FollowUpQuestionSet {
	in := followUpInput{profile: p, outliers: clinical.AnalyzeOutliers(p.Vitals)}
	out, strategy, err := s.chain.Run(ctx, in)
	if err != nil {
		out, strategy = clinical.FallbackFollowUps(p, in.outliers), StageFallback
	}
	s.records.Record(ctx, sessionID, model.AssessmentFollowUps, strategy, out)
	return out
}
