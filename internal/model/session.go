package model

import (
	"encoding/json"
	"time"
)

// FlowState is the position of a questionnaire flow
type FlowState string

const (
	FlowEmpty      FlowState = "empty"       // nothing generated yet
	FlowReady      FlowState = "ready"       // generated, cursor at 0
	FlowInProgress FlowState = "in_progress" // 0 < cursor < len
	FlowDone       FlowState = "done"        // cursor >= len
)

func flowState(generated bool, cursor, length int) FlowState {
	switch {
	case !generated:
		return FlowEmpty
	case cursor >= length:
		return FlowDone
	case cursor == 0:
		return FlowReady
	default:
		return FlowInProgress
	}
}

// BatchFlow is the all-at-once structured checklist
type BatchFlow struct {
	Questions []ChecklistItem `json:"questions"`
	Cursor    int             `json:"cursor"`
	Generated bool            `json:"generated"`
}

func (f *BatchFlow) State() FlowState {
	return flowState(f.Generated, f.Cursor, len(f.Questions))
}

// IndividualFlow is the one-question-per-request interview
type IndividualFlow struct {
	Questions []Question `json:"questions"`
	Cursor    int        `json:"cursor"`
	Generated bool       `json:"generated"`
}

func (f *IndividualFlow) State() FlowState {
	return flowState(f.Generated, f.Cursor, len(f.Questions))
}

// IntakeSession holds the questionnaire state of one intake. The two flows
// are independent; a client normally drives only one of them.
type IntakeSession struct {
	ID         string         `json:"id"`
	Batch      BatchFlow      `json:"batch"`
	Individual IndividualFlow `json:"individual"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// NewIntakeSession creates an empty session
func NewIntakeSession(id string, now time.Time) *IntakeSession {
	return &IntakeSession{ID: id, CreatedAt: now, UpdatedAt: now}
}

// BatchResponse is returned by the structured questionnaire endpoint
type BatchResponse struct {
	StructuredQuestions    []ChecklistItem
	Completed              bool
	QuestionType           string
	LabelExtractionEnabled bool
}

func (r BatchResponse) MarshalJSON() ([]byte, error) {
	if r.Completed {
		return json.Marshal(struct {
			Question  *Question `json:"question"`
			Completed bool      `json:"completed"`
		}{nil, true})
	}
	return json.Marshal(struct {
		StructuredQuestions    []ChecklistItem `json:"structured_questions"`
		Completed              bool            `json:"completed"`
		QuestionType           string          `json:"question_type"`
		LabelExtractionEnabled bool            `json:"label_extraction_enabled"`
	}{r.StructuredQuestions, false, r.QuestionType, r.LabelExtractionEnabled})
}

// NextQuestionResponse is returned by the one-by-one interview endpoint
type NextQuestionResponse struct {
	Question      *Question
	Completed     bool
	FinalQuestion bool
}

func (r NextQuestionResponse) MarshalJSON() ([]byte, error) {
	if r.Completed {
		return json.Marshal(struct {
			Completed bool `json:"completed"`
		}{true})
	}
	return json.Marshal(struct {
		Question      *Question `json:"question"`
		Completed     bool      `json:"completed"`
		FinalQuestion bool      `json:"final_question"`
	}{r.Question, false, r.FinalQuestion})
}
