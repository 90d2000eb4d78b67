package model

// Condition is one differential-diagnosis candidate
type Condition struct {
	Condition       string  `json:"condition"`
	ConfidenceScore float64 `json:"confidence_score"`
	ICD11Code       string  `json:"icd11_code"`
	ICD11Title      string  `json:"icd11_title"`
	Explanation     string  `json:"explanation"`
}

// DiagnosticTest is a recommended investigation
type DiagnosticTest struct {
	Test            string  `json:"test"`
	ConfidenceScore float64 `json:"confidence_score"`
	Priority        string  `json:"priority"`
	Explanation     string  `json:"explanation"`
}

// FollowUpPlan says how soon the patient should be seen
type FollowUpPlan struct {
	Urgency  string `json:"urgency"`
	Timeline string `json:"timeline"`
	Reason   string `json:"reason"`
}

// Analysis is the symptom analysis / diagnosis payload
type Analysis struct {
	PossibleConditions []Condition      `json:"possible_conditions"`
	DiagnosticTests    []DiagnosticTest `json:"diagnostic_tests"`
	RedFlags           []string         `json:"red_flags"`
	ImmediateCare      []string         `json:"immediate_care"`
	FollowUp           *FollowUpPlan    `json:"follow_up"`
	Lifestyle          []string         `json:"lifestyle"`
	Disclaimer         string           `json:"disclaimer"`
}

// SummarySections is the narrative part of a patient summary (HTML strings)
type SummarySections struct {
	DemographicsSummary   string `json:"demographics_summary"`
	MedicalHistorySummary string `json:"medical_history_summary"`
	RiskFactorsSummary    string `json:"risk_factors_summary"`
	ClinicalRelevance     string `json:"clinical_relevance"`
}

// VitalsAbnormalities buckets human-readable vitals findings by severity
type VitalsAbnormalities struct {
	Critical []string `json:"critical_abnormalities"`
	Moderate []string `json:"moderate_abnormalities"`
	Mild     []string `json:"mild_abnormalities"`
	Normal   []string `json:"normal_findings"`
}

// MedicalSignificance is the D/O interpretation part of a summary (HTML strings)
type MedicalSignificance struct {
	DiagnosticIndicators string `json:"diagnostic_indicators"`
	ObjectiveFindings    string `json:"objective_findings"`
	ClinicalCorrelations string `json:"clinical_correlations"`
	NextSteps            string `json:"next_steps"`
}

// PatientSummary is the summary payload with D/O indicators
type PatientSummary struct {
	PatientSummary      *SummarySections     `json:"patient_summary"`
	VitalsAbnormalities *VitalsAbnormalities `json:"vitals_abnormalities"`
	MedicalSignificance *MedicalSignificance `json:"medical_significance"`
}

// OutlierTier is a vitals severity bucket
type OutlierTier string

const (
	TierCritical OutlierTier = "critical"
	TierModerate OutlierTier = "moderate"
	TierMild     OutlierTier = "mild"
)

// VitalsOutlier is one out-of-range reading
type VitalsOutlier struct {
	Type    string `json:"type"`
	Values  string `json:"values"`
	Concern string `json:"concern"`
}

// OutlierReport groups outliers by tier
type OutlierReport struct {
	Critical []VitalsOutlier `json:"critical"`
	Moderate []VitalsOutlier `json:"moderate"`
	Mild     []VitalsOutlier `json:"mild"`
}

// NewOutlierReport returns a report with empty (non-nil) tiers
func NewOutlierReport() *OutlierReport {
	return &OutlierReport{
		Critical: []VitalsOutlier{},
		Moderate: []VitalsOutlier{},
		Mild:     []VitalsOutlier{},
	}
}

// Add appends an outlier to the given tier
func (r *OutlierReport) Add(tier OutlierTier, o VitalsOutlier) {
	switch tier {
	case TierCritical:
		r.Critical = append(r.Critical, o)
	case TierModerate:
		r.Moderate = append(r.Moderate, o)
	case TierMild:
		r.Mild = append(r.Mild, o)
	}
}

// Types lists outlier types, critical first
func (r *OutlierReport) Types() []string {
	out := make([]string, 0, len(r.Critical)+len(r.Moderate)+len(r.Mild))
	for _, tier := range [][]VitalsOutlier{r.Critical, r.Moderate, r.Mild} {
		for _, o := range tier {
			out = append(out, o.Type)
		}
	}
	return out
}

// FollowUpQuestionSet is the outlier-aware follow-up payload
type FollowUpQuestionSet struct {
	Questions         []Question `json:"questions"`
	TotalQuestions    int        `json:"total_questions"`
	OutliersAddressed []string   `json:"outliers_addressed"`
	DoIndicatorsFocus []string   `json:"do_indicators_focus"`
}
