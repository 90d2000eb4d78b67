package prompt

import (
	"strings"
	"testing"

	"symptomintake/internal/clinical"
	"symptomintake/internal/model"
)

func TestSuggestionsSampling(t *testing.T) {
	req := Suggestions("headache")
	if req.System != SuggestionSystem || req.Temperature != 0.3 || req.MaxTokens != 500 {
		t.Fatalf("unexpected request %+v", req)
	}
	if req.PresencePenalty != 0.3 || req.FrequencyPenalty != 0.3 {
		t.Fatalf("unexpected penalties %+v", req)
	}
	if !strings.HasPrefix(req.User[0], "User input: 'headache'") {
		t.Fatalf("unexpected prompt %q", req.User[0][:40])
	}
}

func TestChecklistProfile(t *testing.T) {
	req := Checklist(&model.PatientProfile{CaseType: "sick", FreeTextSymptoms: "sore <throat>"})
	user := req.User[0]
	if !strings.Contains(user, `"case_type":"sick"`) || !strings.Contains(user, `"symptoms":[]`) {
		t.Fatalf("profile JSON missing: %s", user)
	}
	if !strings.Contains(user, "sore <throat>") {
		t.Fatal("expected unescaped free text")
	}
	if !strings.Contains(user, strings.Join(clinical.ChecklistCategories, ", ")) {
		t.Fatal("expected the category list")
	}
	if req.Temperature != 0.2 || req.MaxTokens != 1200 {
		t.Fatalf("unexpected sampling %+v", req)
	}
}

func TestAnalysisDefaults(t *testing.T) {
	req := Analysis(&model.PatientProfile{Symptoms: []string{"cough", "fever"}})
	user := req.User[0]
	if !strings.Contains(user, "Age unknown, Gender: unknown") {
		t.Fatal("expected unknown demographics")
	}
	if !strings.Contains(user, "- Primary Symptoms: cough, fever") || !strings.Contains(user, "- Medical History: {}") {
		t.Fatalf("unexpected profile block:\n%s", user)
	}
	if req.Temperature != 0.1 || req.MaxTokens != 1500 {
		t.Fatalf("unexpected sampling %+v", req)
	}
}

func TestAdditionalQuestionsContext(t *testing.T) {
	p := &model.PatientProfile{
		Demographics: model.Fields{"age": 34.0, "gender": "male"},
		Symptoms:     []string{"headache"},
		Vitals: model.Fields{
			"temperature":      38.2,
			"systolic":         130.0,
			"diastolic":        85.0,
			"oxygenSaturation": 97.0,
			"painScale":        5.0,
		},
		MedicalConditions: model.Fields{"hypertension": "yes", "asthma": "no"},
	}
	req := AdditionalQuestions(p, 0)
	if len(req.User) != 2 {
		t.Fatalf("expected context and instruction turns, got %d", len(req.User))
	}
	ctx := req.User[0]
	for _, want := range []string{
		"for a 34 year old male",
		"- Temperature: 38.2 C\n",
		"- Blood pressure: 130/85 mmHg\n",
		"- Oxygen saturation: 97%\n",
		"- Pain level: 5/10\n",
		"Medical conditions:\n- asthma: no\n- hypertension: yes\n",
	} {
		if !strings.Contains(ctx, want) {
			t.Errorf("context missing %q", want)
		}
	}
	if strings.Contains(ctx, "Pulse rate") {
		t.Error("pulse rate should be omitted when absent")
	}
	if !strings.Contains(req.User[1], "maximum of 20 clinically relevant") {
		t.Fatal("expected the default cap")
	}
	if req.Temperature != 0.7 || req.MaxTokens != 2048 {
		t.Fatalf("unexpected sampling %+v", req)
	}
}

func TestFollowUpsIncludesOutliers(t *testing.T) {
	outliers := clinical.AnalyzeOutliers(model.Fields{"systolic": 190.0, "diastolic": 125.0})
	req := FollowUps(&model.PatientProfile{}, outliers)
	if !strings.Contains(req.User[0], `"type":"hypertensive_crisis"`) {
		t.Fatalf("outliers missing from prompt")
	}
	if req.System != FollowUpSystem || req.Temperature != 0.3 {
		t.Fatalf("unexpected request %+v", req)
	}
}

func TestLabelsPrompt(t *testing.T) {
	req := Labels(LabelText([]string{"fever"}, "and chills"))
	if !strings.Contains(req.User[0], `SYMPTOM INPUT: "fever and chills"`) {
		t.Fatalf("unexpected prompt")
	}
}

func TestClampAdditional(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, DefaultMaxAdditional},
		{-3, DefaultMaxAdditional},
		{5, 5},
		{DefaultMaxAdditional, DefaultMaxAdditional},
		{500, DefaultMaxAdditional},
	}
	for _, tt := range tests {
		if got := ClampAdditional(tt.in); got != tt.want {
			t.Fatalf("ClampAdditional(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}

	req := AdditionalQuestions(&model.PatientProfile{}, 500)
	if !strings.Contains(req.User[1], "generate a maximum of 20 ") {
		t.Fatalf("oversized request not clamped: %q", req.User[1])
	}
}
