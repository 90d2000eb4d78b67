package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"symptomintake/internal/cache"
	"symptomintake/internal/clinical"
	"symptomintake/internal/llm"
	"symptomintake/internal/model"
	"symptomintake/internal/platform/logger"
	"symptomintake/internal/prompt"
)

// IntakeService drives the two questionnaire flows of a session. Every
// operation holds the session's lock for its whole read-modify-write.
type IntakeService struct {
	sessions cache.SessionCache
	events   Broadcaster
	log      *logger.Logger
	locks    *keyedMutex
	batch    *Chain[*model.PatientProfile, []model.ChecklistItem]
	now      func() time.Time
}

// NewIntakeService creates a new intake service
func NewIntakeService(sessions cache.SessionCache, client llm.Client, events Broadcaster, log *logger.Logger) *IntakeService {
	if events == nil {
		events = NopBroadcaster{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &IntakeService{
		sessions: sessions,
		events:   events,
		log:      log,
		locks:    newKeyedMutex(),
		batch:    newChecklistChain(client, log),
		now:      time.Now,
	}
}

func newChecklistChain(client llm.Client, log *logger.Logger) *Chain[*model.PatientProfile, []model.ChecklistItem] {
	return &Chain[*model.PatientProfile, []model.ChecklistItem]{
		Task: "structured_questions",
		Log:  log,
		Strategies: []Strategy[*model.PatientProfile, []model.ChecklistItem]{
			{Name: StageEnhanced, Run: func(_ context.Context, p *model.PatientProfile) ([]model.ChecklistItem, error) {
				items := clinical.EnhancedChecklist(p.CaseType, p.Symptoms, p.Narrative())
				if len(items) == 0 {
					return nil, ErrEmptyResult
				}
				return items, nil
			}},
			{Name: StageDynamic, Run: func(ctx context.Context, p *model.PatientProfile) ([]model.ChecklistItem, error) {
				text, err := client.Complete(ctx, prompt.Checklist(p))
				if err != nil {
					return nil, err
				}
				return parseDynamicChecklist(text)
			}},
			{Name: StageRuleBased, Run: func(_ context.Context, p *model.PatientProfile) ([]model.ChecklistItem, error) {
				return clinical.RuleBasedChecklist(p.CaseType, p.Symptoms, p.Narrative()), nil
			}},
		},
	}
}

type dynamicChecklistItem struct {
	Symptom   string `json:"symptom"`
	Question  string `json:"question"`
	Category  string `json:"category"`
	NotesHint string `json:"notes_hint"`
	Notes     string `json:"notes"`
}

// parseDynamicChecklist accepts a bare array or an object with a questions
// array. Rows without text are skipped and unknown categories become general.
func parseDynamicChecklist(text string) ([]model.ChecklistItem, error) {
	body := []byte(llm.StripFences(text))

	var raw []dynamicChecklistItem
	if err := json.Unmarshal(body, &raw); err != nil {
		var wrapped struct {
			Questions []dynamicChecklistItem `json:"questions"`
		}
		if err2 := json.Unmarshal(body, &wrapped); err2 != nil {
			return nil, fmt.Errorf("decode checklist: %w", err)
		}
		raw = wrapped.Questions
	}

	items := make([]model.ChecklistItem, 0, len(raw))
	for _, r := range raw {
		text := strings.TrimSpace(r.Symptom)
		if text == "" {
			text = strings.TrimSpace(r.Question)
		}
		if text == "" {
			continue
		}
		category := strings.ToLower(strings.TrimSpace(r.Category))
		if !clinical.IsChecklistCategory(category) {
			category = model.ChecklistCategoryDefault
		}
		hint := strings.TrimSpace(r.NotesHint)
		if hint == "" {
			hint = strings.TrimSpace(r.Notes)
		}
		items = append(items, model.ChecklistItem{
			Symptom:   text,
			Category:  category,
			NotesHint: hint,
			Type:      model.QuestionTypeYesNoNotes,
		})
	}

	items = clinical.DedupeChecklist(items)
	if len(items) == 0 {
		return nil, ErrEmptyResult
	}
	return items, nil
}

// load returns the stored session or a fresh one. Callers hold the lock.
func (s *IntakeService) load(ctx context.Context, id string) (*model.IntakeSession, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if sess == nil {
		sess = model.NewIntakeSession(id, s.now())
	}
	return sess, nil
}

func (s *IntakeService) save(ctx context.Context, sess *model.IntakeSession) error {
	sess.UpdatedAt = s.now()
	if err := s.sessions.Save(ctx, sess); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Reset clears the stored state of the session. The next request starts
// both flows from empty.
func (s *IntakeService) Reset(ctx context.Context, sessionID string) error {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to reset session: %w", err)
	}

	s.log.Info("Session reset", "session_id", sessionID)
	s.events.PublishToSession(sessionID, model.EventSessionReset, nil)
	return nil
}

// RequestBatch delivers the whole structured checklist on the first call and
// reports completion on every later call until the session is reset.
func (s *IntakeService) RequestBatch(ctx context.Context, sessionID string, p *model.PatientProfile) (*model.BatchResponse, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	flow := &sess.Batch
	if flow.State() == model.FlowDone {
		return &model.BatchResponse{Completed: true}, nil
	}

	if !flow.Generated {
		s.events.PublishToSession(sessionID, model.EventQuestionsGenerating, map[string]interface{}{
			"flow": "batch",
		})

		chain := *s.batch
		chain.OnFailure = func(stage string, err error) {
			s.events.PublishToSession(sessionID, model.EventStrategyFailed, map[string]interface{}{
				"task":  chain.Task,
				"stage": stage,
			})
		}
		items, strategy, err := chain.Run(ctx, p)
		if err != nil {
			return nil, err
		}

		flow.Questions = items
		flow.Generated = true
		s.log.Info("Structured questions generated",
			"session_id", sessionID,
			"strategy", strategy,
			"count", len(items),
		)
		s.events.PublishToSession(sessionID, model.EventQuestionsReady, map[string]interface{}{
			"flow":     "batch",
			"strategy": strategy,
			"count":    len(items),
		})
	}

	// One-shot delivery: the cursor jumps to the end.
	flow.Cursor = len(flow.Questions)
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	return &model.BatchResponse{
		StructuredQuestions:    flow.Questions,
		QuestionType:           "structured_form",
		LabelExtractionEnabled: true,
	}, nil
}

// RequestNext serves the interview one question per call.
func (s *IntakeService) RequestNext(ctx context.Context, sessionID string, p *model.PatientProfile) (*model.NextQuestionResponse, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	flow := &sess.Individual
	if !flow.Generated {
		flow.Questions = clinical.InterviewQuestions(p.Symptoms, p.Narrative())
		flow.Cursor = 0
		// An empty interview stays EMPTY so a later call with symptoms generates.
		flow.Generated = len(flow.Questions) > 0
		if flow.Generated {
			s.events.PublishToSession(sessionID, model.EventQuestionsReady, map[string]interface{}{
				"flow":  "individual",
				"count": len(flow.Questions),
			})
		}
	}

	if flow.Cursor >= len(flow.Questions) {
		if err := s.save(ctx, sess); err != nil {
			return nil, err
		}
		return &model.NextQuestionResponse{Completed: true}, nil
	}

	q := flow.Questions[flow.Cursor]
	flow.Cursor++
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	return &model.NextQuestionResponse{
		Question:      &q,
		FinalQuestion: flow.Cursor >= len(flow.Questions),
	}, nil
}

// Session returns the stored state of a session, or nil when it has none.
func (s *IntakeService) Session(ctx context.Context, sessionID string) (*model.IntakeSession, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()
	return s.sessions.Get(ctx, sessionID)
}
