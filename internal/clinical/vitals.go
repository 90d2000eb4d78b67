package clinical

import (
	"fmt"
	"strconv"
	"strings"

	"symptomintake/internal/model"
)

// Vital sign thresholds
const (
	crisisSystolic      = 180
	crisisDiastolic     = 120
	hypertensSystolic   = 140
	hypertensDiastolic  = 90
	hypotensSystolic    = 90
	hypotensDiastolic   = 60
	highFeverF          = 103
	feverF              = 100.4
	hypothermiaF        = 96
	highFeverC          = 39.4
	feverC              = 38
	hypothermiaC        = 35.5
	bradycardiaBPM      = 50
	tachycardiaBPM      = 120
	severeHypoxemiaSpO2 = 90
	mildHypoxemiaSpO2   = 95
	severeGlucose       = 300
	highGlucose         = 200
	lowGlucose          = 70
	severePain          = 7
	moderatePain        = 4
)

// bloodPressure returns both readings only when both are present.
func bloodPressure(v model.Fields) (int, int, bool) {
	sys, okS := v.Int(model.VitalSystolic)
	dia, okD := v.Int(model.VitalDiastolic)
	return sys, dia, okS && okD
}

// temperature returns the reading and its unit symbol, "F" or "C". Anything
// other than Fahrenheit is read as Celsius.
func temperature(v model.Fields) (float64, string, bool) {
	t, ok := v.Number(model.VitalTemperature)
	if !ok {
		return 0, "", false
	}
	unit := strings.ToUpper(v.String(model.VitalTemperatureUnit))
	if unit == "" || unit == "F" {
		return t, "F", true
	}
	return t, "C", true
}

// temperatureTier classifies a reading: "high_fever", "fever", "hypothermia" or "".
func temperatureTier(t float64, unit string) string {
	high, fever, low := float64(highFeverF), feverF, float64(hypothermiaF)
	if unit == "C" {
		high, fever, low = highFeverC, feverC, hypothermiaC
	}
	switch {
	case t >= high:
		return "high_fever"
	case t >= fever:
		return "fever"
	case t < low:
		return "hypothermia"
	}
	return ""
}

func formatTemp(t float64, unit string) string {
	return strconv.FormatFloat(t, 'f', -1, 64) + "°" + unit
}

// AnalyzeOutliers classifies each vital sign reading into a severity tier.
// Readings are evaluated independently in the order blood pressure,
// temperature, pulse, oxygen saturation, glucose, pain. Missing readings are
// skipped.
func AnalyzeOutliers(vitals model.Fields) *model.OutlierReport {
	r := model.NewOutlierReport()

	if sys, dia, ok := bloodPressure(vitals); ok {
		bp := fmt.Sprintf("%d/%d mmHg", sys, dia)
		switch {
		case sys >= crisisSystolic || dia >= crisisDiastolic:
			r.Add(model.TierCritical, model.VitalsOutlier{Type: "hypertensive_crisis", Values: bp, Concern: "Immediate medical attention required"})
		case sys >= hypertensSystolic || dia >= hypertensDiastolic:
			r.Add(model.TierModerate, model.VitalsOutlier{Type: "hypertension", Values: bp, Concern: "Elevated blood pressure requiring assessment"})
		case sys < hypotensSystolic || dia < hypotensDiastolic:
			r.Add(model.TierModerate, model.VitalsOutlier{Type: "hypotension", Values: bp, Concern: "Low blood pressure requiring evaluation"})
		}
	}

	if t, unit, ok := temperature(vitals); ok {
		value := formatTemp(t, unit)
		switch temperatureTier(t, unit) {
		case "high_fever":
			r.Add(model.TierCritical, model.VitalsOutlier{Type: "high_fever", Values: value, Concern: "High fever requiring immediate attention"})
		case "fever":
			r.Add(model.TierModerate, model.VitalsOutlier{Type: "fever", Values: value, Concern: "Fever indicating possible infection"})
		case "hypothermia":
			r.Add(model.TierModerate, model.VitalsOutlier{Type: "hypothermia", Values: value, Concern: "Low temperature requiring assessment"})
		}
	}

	if pulse, ok := vitals.Int(model.VitalPulseRate); ok {
		value := fmt.Sprintf("%d BPM", pulse)
		switch {
		case pulse < bradycardiaBPM:
			r.Add(model.TierModerate, model.VitalsOutlier{Type: "bradycardia", Values: value, Concern: "Slow heart rate requiring evaluation"})
		case pulse > tachycardiaBPM:
			r.Add(model.TierModerate, model.VitalsOutlier{Type: "tachycardia", Values: value, Concern: "Fast heart rate requiring assessment"})
		}
	}

	if spo2, ok := vitals.Int(model.VitalOxygenSaturation); ok {
		value := fmt.Sprintf("%d%%", spo2)
		switch {
		case spo2 < severeHypoxemiaSpO2:
			r.Add(model.TierCritical, model.VitalsOutlier{Type: "severe_hypoxemia", Values: value, Concern: "Dangerously low oxygen levels"})
		case spo2 < mildHypoxemiaSpO2:
			r.Add(model.TierModerate, model.VitalsOutlier{Type: "mild_hypoxemia", Values: value, Concern: "Low oxygen saturation requiring monitoring"})
		}
	}

	if glucose, ok := vitals.Int(model.VitalBloodSugar); ok {
		value := fmt.Sprintf("%d mg/dL", glucose)
		switch {
		case glucose >= severeGlucose:
			r.Add(model.TierCritical, model.VitalsOutlier{Type: "severe_hyperglycemia", Values: value, Concern: "Extremely high blood sugar - diabetic emergency risk"})
		case glucose >= highGlucose:
			r.Add(model.TierModerate, model.VitalsOutlier{Type: "hyperglycemia", Values: value, Concern: "High blood sugar requiring assessment"})
		case glucose < lowGlucose:
			r.Add(model.TierModerate, model.VitalsOutlier{Type: "hypoglycemia", Values: value, Concern: "Low blood sugar requiring immediate attention"})
		}
	}

	if pain, ok := vitals.Int(model.VitalPainScale); ok {
		value := fmt.Sprintf("%d/10", pain)
		switch {
		case pain >= severePain:
			r.Add(model.TierModerate, model.VitalsOutlier{Type: "severe_pain", Values: value, Concern: "Severe pain requiring management"})
		case pain >= moderatePain:
			r.Add(model.TierMild, model.VitalsOutlier{Type: "moderate_pain", Values: value, Concern: "Moderate pain affecting function"})
		}
	}

	return r
}

// AnalyzeAbnormalities renders the vitals as human-readable findings for the
// patient summary, including the readings that are in range.
func AnalyzeAbnormalities(vitals model.Fields) *model.VitalsAbnormalities {
	a := &model.VitalsAbnormalities{
		Critical: []string{},
		Moderate: []string{},
		Mild:     []string{},
		Normal:   []string{},
	}

	if sys, dia, ok := bloodPressure(vitals); ok {
		switch {
		case sys >= crisisSystolic || dia >= crisisDiastolic:
			a.Critical = append(a.Critical, fmt.Sprintf("Hypertensive Crisis: BP %d/%d mmHg - Immediate medical attention required", sys, dia))
		case sys >= hypertensSystolic || dia >= hypertensDiastolic:
			a.Moderate = append(a.Moderate, fmt.Sprintf("Hypertension: BP %d/%d mmHg - Cardiovascular risk, medication review needed", sys, dia))
		case sys < hypotensSystolic || dia < hypotensDiastolic:
			a.Moderate = append(a.Moderate, fmt.Sprintf("Hypotension: BP %d/%d mmHg - Risk of organ hypoperfusion", sys, dia))
		default:
			a.Normal = append(a.Normal, fmt.Sprintf("Blood Pressure: %d/%d mmHg - Normal range", sys, dia))
		}
	}

	if t, unit, ok := temperature(vitals); ok {
		value := formatTemp(t, unit)
		switch temperatureTier(t, unit) {
		case "high_fever":
			a.Critical = append(a.Critical, "High Fever: "+value+" - Risk of febrile seizures, dehydration")
		case "fever":
			a.Mild = append(a.Mild, "Fever: "+value+" - Indicates infection or inflammatory process")
		case "hypothermia":
			a.Moderate = append(a.Moderate, "Hypothermia: "+value+" - May indicate sepsis or exposure")
		default:
			a.Normal = append(a.Normal, "Temperature: "+value+" - Normal range")
		}
	}

	if spo2, ok := vitals.Int(model.VitalOxygenSaturation); ok {
		switch {
		case spo2 < severeHypoxemiaSpO2:
			a.Critical = append(a.Critical, fmt.Sprintf("Severe Hypoxemia: SpO2 %d%% - Respiratory failure, requires immediate oxygen", spo2))
		case spo2 < mildHypoxemiaSpO2:
			a.Moderate = append(a.Moderate, fmt.Sprintf("Mild Hypoxemia: SpO2 %d%% - Monitor respiratory status", spo2))
		default:
			a.Normal = append(a.Normal, fmt.Sprintf("Oxygen Saturation: %d%% - Normal oxygenation", spo2))
		}
	}

	if pulse, ok := vitals.Int(model.VitalPulseRate); ok {
		switch {
		case pulse < bradycardiaBPM:
			a.Moderate = append(a.Moderate, fmt.Sprintf("Bradycardia: %d BPM - Consider cardiac conditions, medications", pulse))
		case pulse > tachycardiaBPM:
			a.Moderate = append(a.Moderate, fmt.Sprintf("Tachycardia: %d BPM - May indicate fever, dehydration, cardiac issues", pulse))
		default:
			a.Normal = append(a.Normal, fmt.Sprintf("Pulse Rate: %d BPM - Normal range", pulse))
		}
	}

	if glucose, ok := vitals.Int(model.VitalBloodSugar); ok {
		switch {
		case glucose >= severeGlucose:
			a.Critical = append(a.Critical, fmt.Sprintf("Severe Hyperglycemia: %d mg/dL - Diabetic emergency risk", glucose))
		case glucose >= highGlucose:
			a.Moderate = append(a.Moderate, fmt.Sprintf("Hyperglycemia: %d mg/dL - Diabetic crisis risk", glucose))
		case glucose < lowGlucose:
			a.Moderate = append(a.Moderate, fmt.Sprintf("Hypoglycemia: %d mg/dL - Risk of altered mental status", glucose))
		default:
			a.Normal = append(a.Normal, fmt.Sprintf("Blood Sugar: %d mg/dL - Normal range", glucose))
		}
	}

	return a
}
