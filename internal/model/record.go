package model

import (
	"encoding/json"
	"time"
)

// AssessmentKind names the operation that produced a record
type AssessmentKind string

const (
	AssessmentAnalysis  AssessmentKind = "analysis"
	AssessmentDiagnosis AssessmentKind = "diagnosis"
	AssessmentSummary   AssessmentKind = "patient_summary"
	AssessmentFollowUps AssessmentKind = "followup_questions"
)

// AssessmentRecord is one persisted generation result
type AssessmentRecord struct {
	ID        string          `json:"id" bson:"_id"`
	SessionID string          `json:"sessionId" bson:"sessionId"`
	Kind      AssessmentKind  `json:"kind" bson:"kind"`
	Strategy  string          `json:"strategy" bson:"strategy"` // stage that produced Payload
	Payload   json.RawMessage `json:"payload" bson:"-"`
	CreatedAt time.Time       `json:"createdAt" bson:"createdAt"`
}

// Progress event types pushed to session subscribers
const (
	EventSessionReset        = "session_reset"
	EventQuestionsGenerating = "questions_generating"
	EventStrategyFailed      = "strategy_failed"
	EventQuestionsReady      = "questions_ready"
	EventAssessmentReady     = "assessment_ready"
)
