package clinical

import (
	"strings"
	"testing"

	"symptomintake/internal/model"
)

func TestInterviewQuestionsCount(t *testing.T) {
	cases := []struct {
		symptoms  []string
		narrative string
		want      int
	}{
		{nil, "", 0},
		{[]string{"cough (dry)"}, "", 3},
		{[]string{"cough", "headache"}, "   ", 6},
		{[]string{"cough", "headache"}, "tired all week", 9},
		{nil, "tired all week", 3},
	}
	for _, tc := range cases {
		got := InterviewQuestions(tc.symptoms, tc.narrative)
		if len(got) != tc.want {
			t.Errorf("InterviewQuestions(%v, %q) = %d questions, want %d", tc.symptoms, tc.narrative, len(got), tc.want)
		}
		for _, q := range got {
			if err := q.Validate(); err != nil {
				t.Errorf("invalid question %q: %v", q.Text, err)
			}
		}
	}
}

func TestInterviewQuestionsIntensityBranch(t *testing.T) {
	qs := InterviewQuestions([]string{"back pain (lower back)", "cough (dry)"}, "")
	if qs[0].Text != "When did your back pain first appear, and how has the timing pattern been?" {
		t.Fatalf("unexpected first question %q", qs[0].Text)
	}
	if qs[1].QuestionCategory != "intensity_duration" {
		t.Fatalf("pain should be rated by intensity, got %s", qs[1].QuestionCategory)
	}
	if qs[4].QuestionCategory != "frequency_pattern" {
		t.Fatalf("cough should be rated by frequency, got %s", qs[4].QuestionCategory)
	}
	if qs[5].Type != model.QuestionTypeTextarea || qs[5].SymptomFocus != "cough" {
		t.Fatalf("unexpected third question %+v", qs[5])
	}
}

func TestInterviewQuestionsNarrativeFocus(t *testing.T) {
	qs := InterviewQuestions(nil, "sharp pain after meals")
	for _, q := range qs {
		if q.SymptomFocus != "free_text_symptoms" {
			t.Fatalf("unexpected focus %q", q.SymptomFocus)
		}
	}
	if qs[2].QuestionCategory != "detailed_characteristics" {
		t.Fatalf("unexpected category %q", qs[2].QuestionCategory)
	}
}

func TestRuleBasedChecklist(t *testing.T) {
	items := RuleBasedChecklist("infection", []string{"chest pain", "dry cough"}, "I feel dizzy")
	if len(items) == 0 {
		t.Fatal("expected a non-empty checklist")
	}
	seen := map[string]bool{}
	for _, it := range items {
		key := strings.ToLower(it.Symptom)
		if seen[key] {
			t.Fatalf("duplicate row %q", it.Symptom)
		}
		seen[key] = true
		if it.Type != model.QuestionTypeYesNoNotes {
			t.Fatalf("unexpected type %s", it.Type)
		}
	}
	for _, want := range []string{"Night sweats", "Pain worse with movement", "Wheezing sounds", "Dizziness when standing up"} {
		if !seen[strings.ToLower(want)] {
			t.Errorf("missing %q", want)
		}
	}
}

func TestRuleBasedChecklistUnknownCase(t *testing.T) {
	items := RuleBasedChecklist("something-else", nil, "")
	if len(items) != len(baseChecklist) {
		t.Fatalf("expected only the base checklist, got %d rows", len(items))
	}
}

func TestDedupeChecklistIgnoresCase(t *testing.T) {
	in := []model.ChecklistItem{{Symptom: "Rash"}, {Symptom: "rash"}, {Symptom: "Fever"}}
	out := DedupeChecklist(in)
	if len(out) != 2 || out[0].Symptom != "Rash" || out[1].Symptom != "Fever" {
		t.Fatalf("got %+v", out)
	}
}

func TestExtractLabelsSourceAndCorrelation(t *testing.T) {
	res := ExtractLabels([]string{"Fever (high temperature)"}, "I have chills at night")
	if res.LabelCount != 2 {
		t.Fatalf("expected 2 labels, got %d (%v)", res.LabelCount, res.Order)
	}
	if res.ExtractedLabels["fever"].Source != model.LabelSourceSymptoms {
		t.Fatalf("fever source = %s", res.ExtractedLabels["fever"].Source)
	}
	if res.ExtractedLabels["chills_shivering"].Source != model.LabelSourceFreeText {
		t.Fatalf("chills source = %s", res.ExtractedLabels["chills_shivering"].Source)
	}

	corr := res.CorrelationMatrix["fever"]
	if len(corr) != 1 || corr[0].Label != "chills_shivering" || corr[0].Strength != "high" {
		t.Fatalf("fever correlations = %+v", corr)
	}
	if got := len(res.FeatureQuestions); got != 9 {
		t.Fatalf("expected 9 feature questions, got %d", got)
	}
	if res.FeatureQuestions[0].NotesHint != "Details about fever" || res.FeatureQuestions[0].QuestionType != model.ChecklistFeatureExtraction {
		t.Fatalf("unexpected feature row %+v", res.FeatureQuestions[0])
	}
}

func TestExtractLabelsNothingDetected(t *testing.T) {
	res := ExtractLabels(nil, "")
	if res.LabelCount != 0 || len(res.ExtractedLabels) != 0 || res.FeatureQuestions == nil {
		t.Fatalf("expected an empty result, got %+v", res)
	}
}

func TestEnhancedChecklistOrder(t *testing.T) {
	items := EnhancedChecklist("sick", []string{"fever", "nausea"}, "")
	if items[0].QuestionType != model.ChecklistFeatureExtraction {
		t.Fatalf("expected feature rows first, got %+v", items[0])
	}

	var sawCorrelation, sawRule bool
	for _, it := range items {
		switch {
		case it.QuestionType == model.ChecklistCorrelationAnalysis:
			if sawRule {
				t.Fatal("correlation row after rule-based rows")
			}
			sawCorrelation = true
		case it.QuestionType == "":
			sawRule = true
		}
	}
	if !sawCorrelation || !sawRule {
		t.Fatalf("expected correlation and rule rows, got %d rows", len(items))
	}
}

func TestCleanSymptom(t *testing.T) {
	if got := CleanSymptom("headache (pain in head)"); got != "headache" {
		t.Fatalf("got %q", got)
	}
	if got := CleanSymptom("  cough "); got != "cough" {
		t.Fatalf("got %q", got)
	}
}
