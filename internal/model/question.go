package model

import (
	"errors"
	"strings"
)

// QuestionType defines the answer widget of a question
type QuestionType string

const (
	QuestionTypeYesNoNotes     QuestionType = "yes_no_notes"    // Checklist row: yes/no plus a notes box
	QuestionTypeMultipleChoice QuestionType = "multiple_choice" // Pick one of Options
	QuestionTypeTextarea       QuestionType = "textarea"        // Free text
	QuestionTypeScale          QuestionType = "scale"           // Numeric slider between Min and Max
)

var (
	ErrQuestionText    = errors.New("question text is empty")
	ErrQuestionOptions = errors.New("multiple choice question has no options")
	ErrQuestionScale   = errors.New("scale question needs min < max")
	ErrQuestionType    = errors.New("unknown question type")
)

// ChecklistItem is one row of the structured intake form
type ChecklistItem struct {
	Symptom             string       `json:"symptom"`
	Category            string       `json:"category"`
	NotesHint           string       `json:"notes_hint"`
	Type                QuestionType `json:"type"`
	Label               string       `json:"label,omitempty"`                // feature_extraction rows
	QuestionType        string       `json:"question_type,omitempty"`        // feature_extraction | correlation_analysis
	CorrelationStrength string       `json:"correlation_strength,omitempty"` // correlation_analysis rows
}

// Checklist row provenance
const (
	ChecklistFeatureExtraction   = "feature_extraction"
	ChecklistCorrelationAnalysis = "correlation_analysis"
	ChecklistCategoryLabel       = "label_features"
	ChecklistCategoryCorrelation = "correlation"
	ChecklistCategoryDefault     = "general"
)

// Question is an interview or assessment question
type Question struct {
	ID                int          `json:"id,omitempty"`
	Category          string       `json:"category,omitempty"`
	Text              string       `json:"question"`
	Type              QuestionType `json:"type"`
	Options           []string     `json:"options,omitempty"`     // multiple_choice only
	Min               *int         `json:"min,omitempty"`         // scale only
	Max               *int         `json:"max,omitempty"`         // scale only
	MinLabel          string       `json:"min_label,omitempty"`   // scale only
	MaxLabel          string       `json:"max_label,omitempty"`   // scale only
	Placeholder       string       `json:"placeholder,omitempty"` // textarea only
	HelpText          string       `json:"help_text,omitempty"`
	DiagnosticPurpose string       `json:"diagnostic_purpose,omitempty"`
	SymptomFocus      string       `json:"symptom_focus,omitempty"`
	QuestionCategory  string       `json:"question_category,omitempty"`
	Relevance         string       `json:"relevance,omitempty"`
	Priority          string       `json:"priority,omitempty"`
}

// Validate checks the variant-specific fields
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return ErrQuestionText
	}
	switch q.Type {
	case QuestionTypeMultipleChoice:
		if len(q.Options) == 0 {
			return ErrQuestionOptions
		}
	case QuestionTypeScale:
		if q.Min == nil || q.Max == nil || *q.Min >= *q.Max {
			return ErrQuestionScale
		}
	case QuestionTypeTextarea, QuestionTypeYesNoNotes:
	default:
		return ErrQuestionType
	}
	return nil
}

// IntPtr is a helper for scale bounds
func IntPtr(v int) *int {
	return &v
}
