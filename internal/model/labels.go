package model

// Label sources
const (
	LabelSourceSymptoms = "symptoms"
	LabelSourceFreeText = "free_text"
)

// ExtractedLabel describes one detected symptom category
type ExtractedLabel struct {
	Detected   bool     `json:"detected"`
	Source     string   `json:"source,omitempty"`
	Features   []string `json:"features,omitempty"`
	Confidence string   `json:"confidence,omitempty"`
}

// Correlation links a detected label to another detected label
type Correlation struct {
	Label     string   `json:"label"`
	Strength  string   `json:"strength"` // high | moderate
	Questions []string `json:"questions"`
}

// LabelResult is the label extraction payload. Order lists label keys in
// detection order so callers can walk the maps deterministically.
type LabelResult struct {
	ExtractedLabels   map[string]ExtractedLabel `json:"extracted_labels"`
	LabelCount        int                       `json:"label_count"`
	CorrelationMatrix map[string][]Correlation  `json:"correlation_matrix"`
	FeatureQuestions  []ChecklistItem           `json:"feature_questions"`
	Order             []string                  `json:"-"`
}

// EmptyLabelResult is returned when there is nothing to extract or the
// extraction failed.
func EmptyLabelResult() *LabelResult {
	return &LabelResult{
		ExtractedLabels:   map[string]ExtractedLabel{},
		CorrelationMatrix: map[string][]Correlation{},
		FeatureQuestions:  []ChecklistItem{},
	}
}
