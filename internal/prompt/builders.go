package prompt

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"symptomintake/internal/clinical"
	"symptomintake/internal/llm"
	"symptomintake/internal/model"
)

// DefaultMaxAdditional is the size of the additional question list when the
// client does not ask for one, and the largest size a client may ask for.
const DefaultMaxAdditional = 20

// ClampAdditional bounds a requested additional question count to
// 1..DefaultMaxAdditional. Zero or negative means the default.
func ClampAdditional(max int) int {
	if max <= 0 || max > DefaultMaxAdditional {
		return DefaultMaxAdditional
	}
	return max
}

// Suggestions asks for ten "symptom (description)" strings related to input.
func Suggestions(input string) llm.Request {
	return llm.Request{
		System:           SuggestionSystem,
		User:             []string{"User input: '" + input + "'" + suggestionExample},
		Temperature:      0.3,
		MaxTokens:        500,
		PresencePenalty:  0.3,
		FrequencyPenalty: 0.3,
	}
}

// Checklist asks for a tailored yes/no intake checklist.
func Checklist(p *model.PatientProfile) llm.Request {
	profile := map[string]interface{}{
		"case_type":    p.CaseType,
		"demographics": orEmpty(p.Demographics),
		"symptoms":     nonNil(p.Symptoms),
		"free_text":    p.Narrative(),
	}

	var b strings.Builder
	b.WriteString("You are a medical intake assistant. Based on the patient profile, generate a structured ")
	b.WriteString("checklist of follow-up items to ask in an intake form.\n\n")
	b.WriteString("PATIENT PROFILE (JSON):\n" + toJSON(profile) + "\n\n")
	b.WriteString("REQUIREMENTS:\n")
	b.WriteString("- Output ONLY valid JSON. No prose, no markdown.\n")
	b.WriteString("- JSON must be an array of 15-25 objects.\n")
	b.WriteString("- Each object must have: \n")
	b.WriteString("  {\n    \"symptom\": \"Short human-readable question/symptom probe\",\n")
	b.WriteString("    \"category\": \"one of: " + strings.Join(clinical.ChecklistCategories, ", ") + "\",\n")
	b.WriteString("    \"notes_hint\": \"Brief hint for notes input\",\n")
	b.WriteString("    \"type\": \"yes_no_notes\"\n  }\n")
	b.WriteString("- Questions must be tailored to the case type, selected symptoms, demographics, and free text.\n")
	b.WriteString("- Include temporal, risk factor, and red-flag probes when appropriate.\n")
	b.WriteString("- Keep 'symptom' field concise (max ~80 chars).\n")

	return llm.Request{
		System:      ChecklistSystem,
		User:        []string{b.String()},
		Temperature: 0.2,
		MaxTokens:   1200,
	}
}

// LabelText is the text label extraction runs over.
func LabelText(symptoms []string, narrative string) string {
	return strings.Join(symptoms, " ") + " " + narrative
}

// Labels asks the model to extract symptom labels and their correlations
// from text.
func Labels(text string) llm.Request {
	user := "You are a medical AI assistant. Analyze the following symptom description and extract key medical symptom labels.\n\n" +
		"SYMPTOM INPUT: \"" + text + "\"" + labelFormat
	return llm.Request{
		System:      LabelSystem,
		User:        []string{user},
		Temperature: 0.2,
		MaxTokens:   1500,
	}
}

// Analysis asks for an OPQRST-based differential with ICD-11 codes.
func Analysis(p *model.PatientProfile) llm.Request {
	var b strings.Builder
	b.WriteString("You are a world-class diagnostic physician conducting comprehensive medical analysis using the complete OPQRST framework.\n\n")
	b.WriteString("PATIENT PROFILE:\n")
	b.WriteString("- Demographics: Age " + orUnknown(p.Demographics.String("age")) + ", Gender: " + orUnknown(p.Demographics.String("gender")) + "\n")
	b.WriteString("- Geographic Regions: " + strings.Join(p.Regions, ", ") + "\n")
	b.WriteString("- Medical History: " + p.History.JSON() + "\n")
	b.WriteString("- Primary Symptoms: " + strings.Join(p.Symptoms, ", ") + "\n")
	b.WriteString("- Patient Description: " + p.Narrative() + "\n")
	b.WriteString("- Detailed OPQRST Analysis: " + p.DetailedSymptoms.JSON() + "\n")
	b.WriteString(analysisFormat)

	return llm.Request{
		System:      AnalysisSystem,
		User:        []string{b.String()},
		Temperature: 0.1,
		MaxTokens:   1500,
	}
}

// Diagnosis asks for conditions, tests and care advice with confidence scores.
func Diagnosis(p *model.PatientProfile) llm.Request {
	var b strings.Builder
	b.WriteString("You are an experienced physician providing diagnostic analysis and recommendations.\n\n")
	b.WriteString("PATIENT DATA:\n")
	b.WriteString("Demographics: " + p.Demographics.JSON() + "\n")
	b.WriteString("Medical History: " + p.History.JSON() + "\n")
	b.WriteString("Primary Symptoms: " + strings.Join(p.Symptoms, ", ") + "\n")
	b.WriteString("Free Text Description: " + p.Narrative() + "\n")
	b.WriteString("Detailed Symptom Analysis: " + p.DetailedSymptoms.JSON() + "\n")
	b.WriteString(diagnosisFormat)

	return llm.Request{
		System:      DiagnosisSystem,
		User:        []string{b.String()},
		Temperature: 0.2,
		MaxTokens:   2000,
	}
}

// AdditionalQuestions asks for up to max OLDCARTS questions. The patient
// context and the output instructions go in separate user turns.
func AdditionalQuestions(p *model.PatientProfile, max int) llm.Request {
	max = ClampAdditional(max)

	var ctx strings.Builder
	ctx.WriteString("Generate additional information questions for a " + p.Demographics.String("age") +
		" year old " + p.Demographics.String("gender") + "\n")
	ctx.WriteString("with the following reported symptoms: " + strings.Join(p.Symptoms, ", ") + "\n\n")
	ctx.WriteString("Additional symptom details: " + p.Narrative() + "\n\n")
	ctx.WriteString("Case type: " + p.CaseType + "\n\n")
	ctx.WriteString("Vital signs:\n")

	v := p.Vitals
	if v.Has(model.VitalTemperature) {
		unit := v.String(model.VitalTemperatureUnit)
		if !v.Has(model.VitalTemperatureUnit) {
			unit = "C"
		}
		ctx.WriteString("- Temperature: " + v.String(model.VitalTemperature) + " " + unit + "\n")
	}
	if v.Has(model.VitalPulseRate) {
		ctx.WriteString("- Pulse rate: " + v.String(model.VitalPulseRate) + " bpm\n")
	}
	if v.Has(model.VitalSystolic) && v.Has(model.VitalDiastolic) {
		ctx.WriteString("- Blood pressure: " + v.String(model.VitalSystolic) + "/" + v.String(model.VitalDiastolic) + " mmHg\n")
	}
	if v.Has(model.VitalOxygenSaturation) {
		ctx.WriteString("- Oxygen saturation: " + v.String(model.VitalOxygenSaturation) + "%\n")
	}
	if v.Has(model.VitalRespiratoryRate) {
		ctx.WriteString("- Respiratory rate: " + v.String(model.VitalRespiratoryRate) + " breaths/min\n")
	}
	if v.Has(model.VitalPainScale) {
		ctx.WriteString("- Pain level: " + v.String(model.VitalPainScale) + "/10\n")
	}

	if len(p.MedicalConditions) > 0 {
		ctx.WriteString("\nMedical conditions:\n")
		keys := make([]string, 0, len(p.MedicalConditions))
		for k := range p.MedicalConditions {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			ctx.WriteString("- " + k + ": " + p.MedicalConditions.String(k) + "\n")
		}
	}

	user := "Based on the patient information provided, generate a maximum of " + strconv.Itoa(max) +
		" clinically relevant additional information questions\nusing the OLDCARTS framework. Focus on questions that " +
		"would help determine the diagnosis and severity of the patient's condition." + additionalExample

	return llm.Request{
		System:      AdditionalSystem,
		User:        []string{ctx.String(), user},
		Temperature: 0.7,
		MaxTokens:   2048,
	}
}

// Summary asks for an HTML patient summary with D/O indicators.
func Summary(p *model.PatientProfile) llm.Request {
	var b strings.Builder
	b.WriteString("You are a medical AI assistant generating a comprehensive patient history summary with Diagnostic (D) and Objective (O) indicators.\n\n")
	writePatientData(&b, p, false)
	b.WriteString(summaryFormat)

	return llm.Request{
		System:      SummarySystem,
		User:        []string{b.String()},
		Temperature: 0.2,
		MaxTokens:   2000,
	}
}

// FollowUps asks for 8-12 follow-up questions that address the detected
// vitals outliers first.
func FollowUps(p *model.PatientProfile, outliers *model.OutlierReport) llm.Request {
	var b strings.Builder
	b.WriteString("You are a medical AI assistant generating targeted follow-up questions based on patient information with D/O (Diagnostic/Objective) indicators and clinical vitals outliers.\n\n")
	writePatientData(&b, p, true)
	b.WriteString("\nVITALS OUTLIERS DETECTED:\n" + toJSON(outliers) + "\n")
	b.WriteString(followUpFormat)

	return llm.Request{
		System:      FollowUpSystem,
		User:        []string{b.String()},
		Temperature: 0.3,
		MaxTokens:   2000,
	}
}

func writePatientData(b *strings.Builder, p *model.PatientProfile, gap bool) {
	b.WriteString("PATIENT DATA:\n")
	b.WriteString("Demographics: " + p.Demographics.JSON() + "\n")
	b.WriteString("Medical Conditions: " + p.MedicalConditions.JSON() + "\n")
	b.WriteString("Medical History: " + p.MedicalHistory.JSON() + "\n")
	if gap {
		b.WriteString("\n")
	}
	b.WriteString("Lifestyle: " + p.Lifestyle.JSON() + "\n")
	b.WriteString("Medical Records: " + p.MedicalRecords.JSON() + "\n")
	b.WriteString("Clinical Vitals: " + p.Vitals.JSON() + "\n")
	b.WriteString("Case Type: " + p.CaseType + "\n")
}

func toJSON(v interface{}) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "{}"
	}
	return strings.TrimSpace(buf.String())
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

func orEmpty(f model.Fields) model.Fields {
	if f == nil {
		return model.Fields{}
	}
	return f
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
