package clinical

import (
	"strings"
	"testing"

	"symptomintake/internal/model"
)

func TestPadSuggestions(t *testing.T) {
	got := PadSuggestions([]string{"cough (dry)", "fever (elevated temperature)"})
	if len(got) != 6 {
		t.Fatalf("expected 2 + 4 new common symptoms, got %v", got)
	}
	if got[0] != "cough (dry)" || got[2] != "fatigue (feeling very tired)" {
		t.Fatalf("unexpected order %v", got)
	}

	long := make([]string, 12)
	for i := range long {
		long[i] = strings.Repeat("x", i+1)
	}
	if got := PadSuggestions(long); len(got) != SuggestionCount {
		t.Fatalf("expected truncation to %d, got %d", SuggestionCount, len(got))
	}
}

func TestFallbackSuggestions(t *testing.T) {
	got := FallbackSuggestions("itchy eyes")
	if len(got) != SuggestionCount || got[0] != "itchy eyes (main symptom)" {
		t.Fatalf("got %v", got)
	}
}

func TestBackfillAnalysis(t *testing.T) {
	a := &model.Analysis{PossibleConditions: []model.Condition{{Condition: "Migraine", ICD11Code: "8A80"}}}
	BackfillAnalysis(a)
	if a.DiagnosticTests == nil || a.RedFlags == nil || a.ImmediateCare == nil || a.Lifestyle == nil {
		t.Fatal("expected empty lists, not nil")
	}
	if a.FollowUp == nil || a.FollowUp.Urgency != "routine" || a.Disclaimer != Disclaimer {
		t.Fatalf("unexpected defaults %+v", a)
	}
	c := a.PossibleConditions[0]
	if c.ICD11Code != "8A80" || c.ICD11Title != "ICD-11 classification pending" {
		t.Fatalf("unexpected condition %+v", c)
	}
}

func TestFallbackSummarySections(t *testing.T) {
	p := &model.PatientProfile{
		Demographics:      model.Fields{"age": "70", "gender": "female"},
		MedicalConditions: model.Fields{"diabetic": "yes"},
	}
	s := FallbackSummarySections(p)
	want := "<p><strong>Patient Demographics:</strong></p><ul>" +
		"<li><strong>Age (O):</strong> 70 years - <em>Geriatric patient, increased complication risk</em></li>" +
		"<li><strong>Gender (O):</strong> Female</li></ul>"
	if s.DemographicsSummary != want {
		t.Fatalf("demographics = %q", s.DemographicsSummary)
	}
	if !strings.Contains(s.MedicalHistorySummary, "Diabetes (D)") || strings.Contains(s.MedicalHistorySummary, "Hypertension") {
		t.Fatalf("history = %q", s.MedicalHistorySummary)
	}
}

func TestFallbackFollowUpsCriticalFirst(t *testing.T) {
	p := &model.PatientProfile{Demographics: model.Fields{"age": 40.0, "gender": "male"}}
	outliers := AnalyzeOutliers(model.Fields{"systolic": 190.0, "diastolic": 125.0, "temperature": 101.0})

	set := FallbackFollowUps(p, outliers)
	if !strings.HasPrefix(set.Questions[0].Text, "Your blood pressure is critically high (190/125 mmHg)") {
		t.Fatalf("first question = %q", set.Questions[0].Text)
	}
	if set.Questions[1].Category != "vitals_outlier" || !strings.Contains(set.Questions[1].Text, "101°F") {
		t.Fatalf("second question = %+v", set.Questions[1])
	}
	if set.TotalQuestions != len(set.Questions) {
		t.Fatalf("total %d != %d", set.TotalQuestions, len(set.Questions))
	}
	for i, q := range set.Questions {
		if q.ID != i+1 {
			t.Errorf("question %d has id %d", i, q.ID)
		}
		if err := q.Validate(); err != nil {
			t.Errorf("invalid question %q: %v", q.Text, err)
		}
	}
	if len(set.OutliersAddressed) != 2 || set.OutliersAddressed[0] != "hypertensive_crisis" {
		t.Fatalf("outliers = %v", set.OutliersAddressed)
	}
}

func TestFallbackFollowUpsBounds(t *testing.T) {
	set := FallbackFollowUps(&model.PatientProfile{}, model.NewOutlierReport())
	if len(set.Questions) < MinFollowUps || len(set.Questions) > MaxFollowUps {
		t.Fatalf("got %d questions", len(set.Questions))
	}
	if len(set.DoIndicatorsFocus) != 4 {
		t.Fatalf("focus = %v", set.DoIndicatorsFocus)
	}

	p := &model.PatientProfile{
		Demographics:      model.Fields{"age": 80.0, "gender": "Female"},
		MedicalConditions: model.Fields{"diabetes": "yes"},
	}
	busy := AnalyzeOutliers(model.Fields{"systolic": 200.0, "diastolic": 130.0, "temperature": 104.0, "pulseRate": 140.0})
	set = FallbackFollowUps(p, busy)
	if len(set.Questions) > MaxFollowUps {
		t.Fatalf("expected at most %d, got %d", MaxFollowUps, len(set.Questions))
	}
	var pregnancy bool
	for _, q := range set.Questions {
		if strings.Contains(q.Text, "pregnant") {
			pregnancy = true
		}
	}
	if !pregnancy {
		t.Fatal("expected the reproductive status question for a female patient")
	}
}
