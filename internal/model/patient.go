package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Fields is a free-form JSON object from the intake form. Values are kept as
// decoded so prompts can echo them back verbatim.
type Fields map[string]interface{}

// String returns the value at key as trimmed text, or "" when absent.
func (f Fields) String(key string) string {
	v, ok := f[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// Number returns the numeric value at key. Form fields arrive as either JSON
// numbers or numeric strings; empty, zero and unparsable values report false.
func (f Fields) Number(key string) (float64, bool) {
	v, ok := f[key]
	if !ok || v == nil {
		return 0, false
	}
	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case int:
		n = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// Int is Number truncated toward zero.
func (f Fields) Int(key string) (int, bool) {
	n, ok := f.Number(key)
	if !ok {
		return 0, false
	}
	return int(n), true
}

// Has reports whether key is present at all, regardless of value.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// JSON renders the object for embedding in a prompt. Nil renders as {}.
func (f Fields) JSON() string {
	if f == nil {
		return "{}"
	}
	b, err := json.Marshal(f)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// PatientProfile is rebuilt from each request payload and never stored.
type PatientProfile struct {
	CaseType          string   `json:"caseType"`
	Demographics      Fields   `json:"demographics"`
	Symptoms          []string `json:"symptoms"`
	FreeTextSymptoms  string   `json:"freeTextSymptoms"`
	FreeText          string   `json:"free_text"`
	History           Fields   `json:"history"`
	DetailedSymptoms  Fields   `json:"detailed_symptoms"`
	Regions           []string `json:"regions"`
	Vitals            Fields   `json:"vitals"`
	MedicalConditions Fields   `json:"medicalConditions"`
	MedicalHistory    Fields   `json:"medicalHistory"`
	Lifestyle         Fields   `json:"lifestyle"`
	MedicalRecords    Fields   `json:"medicalRecords"`
}

// Narrative is the patient's own description of their symptoms. The intake
// form posts it as freeTextSymptoms; older clients send free_text.
func (p *PatientProfile) Narrative() string {
	if p.FreeTextSymptoms != "" {
		return p.FreeTextSymptoms
	}
	return p.FreeText
}

// Age returns the patient's age in whole years when supplied.
func (p *PatientProfile) Age() (int, bool) {
	return p.Demographics.Int("age")
}

// Gender returns the lower-cased gender field.
func (p *PatientProfile) Gender() string {
	return strings.ToLower(p.Demographics.String("gender"))
}

// Vital sign keys as posted by the intake form
const (
	VitalSystolic         = "systolic"
	VitalDiastolic        = "diastolic"
	VitalTemperature      = "temperature"
	VitalTemperatureUnit  = "temperatureUnit"
	VitalPulseRate        = "pulseRate"
	VitalOxygenSaturation = "oxygenSaturation"
	VitalRespiratoryRate  = "respiratoryRate"
	VitalBloodSugar       = "bloodSugar"
	VitalPainScale        = "painScale"
)
