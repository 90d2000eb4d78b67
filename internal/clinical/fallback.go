package clinical

import (
	"strings"

	"symptomintake/internal/model"
)

// Disclaimer is attached to every analysis and diagnosis payload.
const Disclaimer = "This tool is not a substitute for professional medical advice, diagnosis, or treatment."

// SuggestionCount is the number of suggestions returned for a search.
const SuggestionCount = 10

// commonSymptoms pad a short suggestion list.
var commonSymptoms = []string{
	"fatigue (feeling very tired)",
	"fever (elevated temperature)",
	"pain (general discomfort)",
	"weakness (reduced strength)",
	"dizziness (light headed feeling)",
}

// PadSuggestions tops up a short list with common symptoms it does not
// already contain and truncates to SuggestionCount.
func PadSuggestions(suggestions []string) []string {
	out := append([]string(nil), suggestions...)
	if len(out) < SuggestionCount {
		seen := make(map[string]struct{}, len(out))
		for _, s := range out {
			seen[s] = struct{}{}
		}
		for _, s := range commonSymptoms {
			if _, dup := seen[s]; !dup {
				out = append(out, s)
			}
		}
	}
	if len(out) > SuggestionCount {
		out = out[:SuggestionCount]
	}
	return out
}

// FallbackSuggestions is the static suggestion list, led by the user's input.
func FallbackSuggestions(input string) []string {
	return []string{
		input + " (main symptom)",
		"fever (high temperature)",
		"pain (general discomfort)",
		"fatigue (feeling tired)",
		"headache (head pain)",
		"nausea (feeling sick)",
		"dizziness (light headed)",
		"weakness (reduced strength)",
		"chills (feeling cold)",
		"sweating (excess moisture)",
	}
}

// FallbackAnalysis is returned when the OPQRST analysis cannot be generated.
func FallbackAnalysis() *model.Analysis {
	return &model.Analysis{
		PossibleConditions: []model.Condition{{
			Condition:       "Comprehensive Clinical Assessment Required",
			ConfidenceScore: 95,
			ICD11Code:       "Z51.8",
			ICD11Title:      "Other specified medical care",
			Explanation:     "The symptoms described require professional medical evaluation for accurate diagnosis using complete OPQRST analysis.",
		}},
		DiagnosticTests: []model.DiagnosticTest{{
			Test:            "Comprehensive Medical Evaluation",
			ConfidenceScore: 98,
			Priority:        "urgent",
			Explanation:     "Complete history, physical examination, and appropriate diagnostic testing by a qualified healthcare provider.",
		}},
		RedFlags:      []string{"Any worsening symptoms", "New concerning symptoms"},
		ImmediateCare: []string{"Seek medical attention if symptoms worsen"},
		FollowUp: &model.FollowUpPlan{
			Urgency:  "urgent",
			Timeline: "Within 24-48 hours",
			Reason:   "Professional evaluation needed for accurate diagnosis",
		},
		Lifestyle:  []string{"Follow medical advice from healthcare provider"},
		Disclaimer: Disclaimer,
	}
}

// FallbackDiagnosis is returned when the diagnosis cannot be generated.
func FallbackDiagnosis() *model.Analysis {
	return &model.Analysis{
		PossibleConditions: []model.Condition{{
			Condition:       "Professional Medical Evaluation Required",
			ConfidenceScore: 95,
			ICD11Code:       "Not specified",
			ICD11Title:      "ICD-11 classification pending",
			Explanation:     "Symptoms require comprehensive evaluation by a healthcare professional for accurate diagnosis",
		}},
		DiagnosticTests: []model.DiagnosticTest{{
			Test:            "Complete Medical Assessment",
			ConfidenceScore: 100,
			Priority:        "Urgent",
			Explanation:     "Professional evaluation needed to determine appropriate diagnostic tests",
		}},
		RedFlags:      []string{"Any worsening symptoms", "New concerning symptoms"},
		ImmediateCare: []string{"Seek medical attention if symptoms worsen"},
		FollowUp: &model.FollowUpPlan{
			Urgency:  "Urgent",
			Timeline: "Within 24-48 hours",
			Reason:   "Professional evaluation needed for proper diagnosis",
		},
		Lifestyle:  []string{"Follow medical advice"},
		Disclaimer: Disclaimer,
	}
}

// BackfillAnalysis fills fields the model left out so the payload always has
// the full shape.
func BackfillAnalysis(a *model.Analysis) {
	if a.PossibleConditions == nil {
		a.PossibleConditions = []model.Condition{}
	}
	if a.DiagnosticTests == nil {
		a.DiagnosticTests = []model.DiagnosticTest{}
	}
	if a.RedFlags == nil {
		a.RedFlags = []string{}
	}
	if a.ImmediateCare == nil {
		a.ImmediateCare = []string{}
	}
	if a.FollowUp == nil {
		a.FollowUp = &model.FollowUpPlan{
			Urgency:  "routine",
			Timeline: "As appropriate",
			Reason:   "Professional evaluation recommended",
		}
	}
	if a.Lifestyle == nil {
		a.Lifestyle = []string{}
	}
	if a.Disclaimer == "" {
		a.Disclaimer = Disclaimer
	}
	for i := range a.PossibleConditions {
		c := &a.PossibleConditions[i]
		if c.ICD11Code == "" {
			c.ICD11Code = "Not specified"
		}
		if c.ICD11Title == "" {
			c.ICD11Title = "ICD-11 classification pending"
		}
	}
}

// FallbackSummarySections renders the demographics and conditions the intake
// form collected without any model help.
func FallbackSummarySections(p *model.PatientProfile) *model.SummarySections {
	var demo strings.Builder
	demo.WriteString("<p><strong>Patient Demographics:</strong></p><ul>")
	if age, ok := p.Age(); ok {
		demo.WriteString("<li><strong>Age (O):</strong> " + p.Demographics.String("age") + " years - ")
		switch {
		case age > 65:
			demo.WriteString("<em>Geriatric patient, increased complication risk</em></li>")
		case age < 18:
			demo.WriteString("<em>Pediatric patient, specialized care considerations</em></li>")
		default:
			demo.WriteString("<em>Adult patient</em></li>")
		}
	}
	if gender := p.Demographics.String("gender"); gender != "" {
		demo.WriteString("<li><strong>Gender (O):</strong> " + titleCase(gender) + "</li>")
	}
	demo.WriteString("</ul>")

	var hist strings.Builder
	hist.WriteString("<p><strong>Medical Conditions:</strong></p><ul>")
	if p.MedicalConditions.String("diabetic") == "yes" {
		hist.WriteString("<li><strong>Diabetes (D):</strong> Present - Increased infection risk, wound healing complications</li>")
	}
	if p.MedicalConditions.String("hypertension") == "yes" {
		hist.WriteString("<li><strong>Hypertension (D):</strong> Present - Cardiovascular risk factor</li>")
	}
	hist.WriteString("</ul>")

	return &model.SummarySections{
		DemographicsSummary:   demo.String(),
		MedicalHistorySummary: hist.String(),
		RiskFactorsSummary:    "<p>Basic risk assessment - comprehensive analysis requires AI processing</p>",
		ClinicalRelevance:     "<p>Clinical significance analysis requires AI processing for comprehensive assessment</p>",
	}
}

// MedicalSignificance is the boilerplate D/O interpretation.
func MedicalSignificance() *model.MedicalSignificance {
	return &model.MedicalSignificance{
		DiagnosticIndicators: "<p><strong>Diagnostic Indicators (D):</strong> Patient demographics, medical history, and presenting symptoms provide diagnostic context for clinical evaluation.</p>",
		ObjectiveFindings:    "<p><strong>Objective Findings (O):</strong> Vital signs, physical measurements, and documented medical conditions represent measurable clinical data.</p>",
		ClinicalCorrelations: "<p><strong>Clinical Correlations:</strong> Integration of patient history, risk factors, and current clinical status guides differential diagnosis.</p>",
		NextSteps:            "<p><strong>Recommended Next Steps:</strong> Continue with symptom assessment and clinical evaluation based on collected patient information.</p>",
	}
}

// Follow-up question limits
const (
	MaxFollowUps = 10
	MinFollowUps = 3
	// FollowUpTopUp is how many fallback questions are appended to a short
	// model-generated set.
	FollowUpTopUp = 5
)

// DOIndicatorsFocus is the default focus list of a follow-up set.
var DOIndicatorsFocus = []string{"patient_demographics", "vital_signs_abnormalities", "medical_history", "symptom_assessment"}

// FallbackFollowUps builds follow-up questions from the vitals outliers,
// demographics and conditions without a model. Critical outliers come first.
func FallbackFollowUps(p *model.PatientProfile, outliers *model.OutlierReport) *model.FollowUpQuestionSet {
	var qs []model.Question
	next := func() int { return len(qs) + 1 }

	for _, o := range outliers.Critical {
		switch o.Type {
		case "hypertensive_crisis":
			qs = append(qs, model.Question{
				ID:        next(),
				Category:  "vitals_outlier",
				Text:      "Your blood pressure is critically high (" + o.Values + "). Are you experiencing severe headaches, chest pain, or difficulty breathing?",
				Type:      model.QuestionTypeMultipleChoice,
				Options:   []string{"No symptoms", "Mild headache", "Severe headache", "Chest pain", "Difficulty breathing"},
				Relevance: "Critical hypertension assessment - immediate medical evaluation needed",
				Priority:  "high",
			})
		case "high_fever":
			qs = append(qs, model.Question{
				ID:        next(),
				Category:  "vitals_outlier",
				Text:      "You have a high fever (" + o.Values + "). How long have you had this fever?",
				Type:      model.QuestionTypeMultipleChoice,
				Options:   []string{"Less than 6 hours", "6-12 hours", "1-2 days", "More than 2 days"},
				Relevance: "High fever duration assessment for infection severity",
				Priority:  "high",
			})
		}
	}

	for _, o := range outliers.Moderate {
		if next() > 8 {
			break
		}
		switch o.Type {
		case "fever":
			qs = append(qs, model.Question{
				ID:        next(),
				Category:  "vitals_outlier",
				Text:      "You have a fever (" + o.Values + "). Have you taken any fever-reducing medications?",
				Type:      model.QuestionTypeMultipleChoice,
				Options:   []string{"No medications taken", "Acetaminophen/Tylenol", "Ibuprofen/Advil", "Other pain relievers"},
				Relevance: "Fever management assessment for treatment planning",
				Priority:  "medium",
			})
		case "tachycardia":
			qs = append(qs, model.Question{
				ID:        next(),
				Category:  "vitals_outlier",
				Text:      "Your heart rate is elevated (" + o.Values + "). Do you feel your heart racing or pounding?",
				Type:      model.QuestionTypeMultipleChoice,
				Options:   []string{"No awareness of heartbeat", "Slight awareness", "Noticeable pounding", "Very uncomfortable pounding"},
				Relevance: "Tachycardia symptom assessment for cardiac evaluation",
				Priority:  "medium",
			})
		}
	}

	if age, ok := p.Age(); ok && next() <= 10 {
		switch {
		case age > 65:
			qs = append(qs, model.Question{
				ID:        next(),
				Category:  "demographics",
				Text:      "As a senior patient, do you have any difficulty with balance or have you had any recent falls?",
				Type:      model.QuestionTypeMultipleChoice,
				Options:   []string{"No balance issues", "Occasional unsteadiness", "Frequent balance problems", "Recent falls"},
				Relevance: "Age-related fall risk assessment for elderly patients",
				Priority:  "medium",
			})
		case age < 18:
			qs = append(qs, model.Question{
				ID:        next(),
				Category:  "demographics",
				Text:      "For pediatric patients, have there been any recent changes in eating, sleeping, or behavior patterns?",
				Type:      model.QuestionTypeMultipleChoice,
				Options:   []string{"No changes", "Eating changes", "Sleep changes", "Behavior changes", "Multiple changes"},
				Relevance: "Pediatric health pattern assessment",
				Priority:  "medium",
			})
		}
	}

	if p.Gender() == "female" && next() <= 10 {
		qs = append(qs, model.Question{
			ID:        next(),
			Category:  "demographics",
			Text:      "Are you currently pregnant, breastfeeding, or could you be pregnant?",
			Type:      model.QuestionTypeMultipleChoice,
			Options:   []string{"Not pregnant", "Possibly pregnant", "Currently pregnant", "Breastfeeding"},
			Relevance: "Female reproductive status for medication and treatment safety",
			Priority:  "high",
		})
	}

	if p.MedicalConditions.String("diabetes") == "yes" && next() <= 10 {
		qs = append(qs, model.Question{
			ID:        next(),
			Category:  "medical_history",
			Text:      "How well has your diabetes been controlled in the past month?",
			Type:      model.QuestionTypeMultipleChoice,
			Options:   []string{"Very well controlled", "Moderately controlled", "Poorly controlled", "Not monitoring"},
			Relevance: "Diabetes management assessment affects treatment decisions",
			Priority:  "medium",
		})
	}

	if next() <= 10 {
		qs = append(qs, model.Question{
			ID:        next(),
			Category:  "functional_assessment",
			Text:      "How much do your current symptoms interfere with your daily activities?",
			Type:      model.QuestionTypeScale,
			Min:       model.IntPtr(1),
			Max:       model.IntPtr(10),
			MinLabel:  "No interference",
			MaxLabel:  "Cannot function",
			Relevance: "Functional impact assessment for treatment urgency",
			Priority:  "medium",
		})
	}

	if next() <= 10 {
		qs = append(qs, model.Question{
			ID:        next(),
			Category:  "symptoms",
			Text:      "When did you first notice your current symptoms?",
			Type:      model.QuestionTypeMultipleChoice,
			Options:   []string{"Within the last hour", "Within the last day", "2-7 days ago", "More than a week ago"},
			Relevance: "Symptom onset timing crucial for diagnosis and urgency",
			Priority:  "high",
		})
	}

	for len(qs) < MinFollowUps {
		qs = append(qs, model.Question{
			ID:          next(),
			Category:    "general_health",
			Text:        "Please describe any other symptoms or concerns you would like the doctor to know about.",
			Type:        model.QuestionTypeTextarea,
			Placeholder: "Describe any additional symptoms, concerns, or relevant information...",
			Relevance:   "Additional information gathering for comprehensive assessment",
			Priority:    "low",
		})
	}

	if len(qs) > MaxFollowUps {
		qs = qs[:MaxFollowUps]
	}
	return &model.FollowUpQuestionSet{
		Questions:         qs,
		TotalQuestions:    len(qs),
		OutliersAddressed: outliers.Types(),
		DoIndicatorsFocus: append([]string(nil), DOIndicatorsFocus...),
	}
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
