package clinical

import (
	"testing"

	"symptomintake/internal/model"
)

func TestAnalyzeOutliersHypertensiveCrisis(t *testing.T) {
	r := AnalyzeOutliers(model.Fields{"systolic": 190.0, "diastolic": 125.0})
	if len(r.Critical) != 1 || r.Critical[0].Type != "hypertensive_crisis" {
		t.Fatalf("expected one hypertensive_crisis, got %+v", r.Critical)
	}
	if r.Critical[0].Values != "190/125 mmHg" {
		t.Fatalf("unexpected values %q", r.Critical[0].Values)
	}
	if len(r.Moderate) != 0 || len(r.Mild) != 0 {
		t.Fatalf("expected no other outliers, got %+v", r)
	}
}

func TestAnalyzeOutliersBloodPressureNeedsBoth(t *testing.T) {
	r := AnalyzeOutliers(model.Fields{"systolic": "200"})
	if len(r.Types()) != 0 {
		t.Fatalf("expected no outliers without diastolic, got %v", r.Types())
	}
}

func TestAnalyzeOutliersThresholds(t *testing.T) {
	cases := []struct {
		name   string
		vitals model.Fields
		tier   model.OutlierTier
		typ    string
		values string
	}{
		{"hypertension", model.Fields{"systolic": 150.0, "diastolic": 85.0}, model.TierModerate, "hypertension", "150/85 mmHg"},
		{"hypotension", model.Fields{"systolic": 85.0, "diastolic": 70.0}, model.TierModerate, "hypotension", "85/70 mmHg"},
		{"high fever F", model.Fields{"temperature": 103.0}, model.TierCritical, "high_fever", "103°F"},
		{"fever F", model.Fields{"temperature": "100.4", "temperatureUnit": "F"}, model.TierModerate, "fever", "100.4°F"},
		{"hypothermia F", model.Fields{"temperature": 95.5}, model.TierModerate, "hypothermia", "95.5°F"},
		{"high fever C", model.Fields{"temperature": 39.5, "temperatureUnit": "C"}, model.TierCritical, "high_fever", "39.5°C"},
		{"fever C", model.Fields{"temperature": 38.0, "temperatureUnit": "C"}, model.TierModerate, "fever", "38°C"},
		{"hypothermia C", model.Fields{"temperature": 35.0, "temperatureUnit": "C"}, model.TierModerate, "hypothermia", "35°C"},
		{"bradycardia", model.Fields{"pulseRate": 45.0}, model.TierModerate, "bradycardia", "45 BPM"},
		{"tachycardia", model.Fields{"pulseRate": "130"}, model.TierModerate, "tachycardia", "130 BPM"},
		{"severe hypoxemia", model.Fields{"oxygenSaturation": 85.0}, model.TierCritical, "severe_hypoxemia", "85%"},
		{"mild hypoxemia", model.Fields{"oxygenSaturation": 93.0}, model.TierModerate, "mild_hypoxemia", "93%"},
		{"severe hyperglycemia", model.Fields{"bloodSugar": 320.0}, model.TierCritical, "severe_hyperglycemia", "320 mg/dL"},
		{"hyperglycemia", model.Fields{"bloodSugar": 250.0}, model.TierModerate, "hyperglycemia", "250 mg/dL"},
		{"hypoglycemia", model.Fields{"bloodSugar": 60.0}, model.TierModerate, "hypoglycemia", "60 mg/dL"},
		{"severe pain", model.Fields{"painScale": 8.0}, model.TierModerate, "severe_pain", "8/10"},
		{"moderate pain", model.Fields{"painScale": 4.0}, model.TierMild, "moderate_pain", "4/10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := AnalyzeOutliers(tc.vitals)
			var got []model.VitalsOutlier
			switch tc.tier {
			case model.TierCritical:
				got = r.Critical
			case model.TierModerate:
				got = r.Moderate
			case model.TierMild:
				got = r.Mild
			}
			if len(r.Types()) != 1 || len(got) != 1 {
				t.Fatalf("expected exactly one %s outlier, got %+v", tc.tier, r)
			}
			if got[0].Type != tc.typ || got[0].Values != tc.values || got[0].Concern == "" {
				t.Fatalf("got %+v, want type %s values %s", got[0], tc.typ, tc.values)
			}
		})
	}
}

func TestAnalyzeOutliersNormalAndMissing(t *testing.T) {
	normal := model.Fields{
		"systolic":         120.0,
		"diastolic":        80.0,
		"temperature":      98.6,
		"pulseRate":        72.0,
		"oxygenSaturation": 98.0,
		"bloodSugar":       100.0,
		"painScale":        2.0,
	}
	if types := AnalyzeOutliers(normal).Types(); len(types) != 0 {
		t.Fatalf("expected no outliers for normal vitals, got %v", types)
	}
	if types := AnalyzeOutliers(nil).Types(); len(types) != 0 {
		t.Fatalf("expected no outliers for nil vitals, got %v", types)
	}
	if types := AnalyzeOutliers(model.Fields{"pulseRate": "", "bloodSugar": "abc"}).Types(); len(types) != 0 {
		t.Fatalf("expected blank readings to be skipped, got %v", types)
	}
}

func TestAnalyzeOutliersOrder(t *testing.T) {
	r := AnalyzeOutliers(model.Fields{
		"systolic":         150.0,
		"diastolic":        95.0,
		"temperature":      101.0,
		"pulseRate":        130.0,
		"oxygenSaturation": 93.0,
		"bloodSugar":       250.0,
	})
	want := []string{"hypertension", "fever", "tachycardia", "mild_hypoxemia", "hyperglycemia"}
	if len(r.Moderate) != len(want) {
		t.Fatalf("got %+v", r.Moderate)
	}
	for i, w := range want {
		if r.Moderate[i].Type != w {
			t.Errorf("moderate[%d] = %s, want %s", i, r.Moderate[i].Type, w)
		}
	}
}

// Raising a reading never moves it to a less severe tier.
func TestAnalyzeOutliersSystolicMonotone(t *testing.T) {
	rank := func(r *model.OutlierReport) int {
		switch {
		case len(r.Critical) > 0:
			return 2
		case len(r.Moderate) > 0 && r.Moderate[0].Type == "hypertension":
			return 1
		}
		return 0
	}
	prev := 0
	for sys := 100; sys <= 220; sys += 5 {
		got := rank(AnalyzeOutliers(model.Fields{"systolic": float64(sys), "diastolic": 70.0}))
		if got < prev {
			t.Fatalf("tier dropped at systolic %d", sys)
		}
		prev = got
	}
}

func TestAnalyzeAbnormalities(t *testing.T) {
	a := AnalyzeAbnormalities(model.Fields{
		"systolic":         185.0,
		"diastolic":        100.0,
		"temperature":      101.0,
		"pulseRate":        72.0,
		"oxygenSaturation": 93.0,
		"bloodSugar":       65.0,
	})
	if len(a.Critical) != 1 || a.Critical[0] != "Hypertensive Crisis: BP 185/100 mmHg - Immediate medical attention required" {
		t.Fatalf("critical = %v", a.Critical)
	}
	if len(a.Mild) != 1 || a.Mild[0] != "Fever: 101°F - Indicates infection or inflammatory process" {
		t.Fatalf("mild = %v", a.Mild)
	}
	wantModerate := []string{
		"Mild Hypoxemia: SpO2 93% - Monitor respiratory status",
		"Hypoglycemia: 65 mg/dL - Risk of altered mental status",
	}
	if len(a.Moderate) != len(wantModerate) {
		t.Fatalf("moderate = %v", a.Moderate)
	}
	for i := range wantModerate {
		if a.Moderate[i] != wantModerate[i] {
			t.Errorf("moderate[%d] = %q", i, a.Moderate[i])
		}
	}
	if len(a.Normal) != 1 || a.Normal[0] != "Pulse Rate: 72 BPM - Normal range" {
		t.Fatalf("normal = %v", a.Normal)
	}
}

func TestAnalyzeAbnormalitiesEmptyBuckets(t *testing.T) {
	a := AnalyzeAbnormalities(model.Fields{})
	if a.Critical == nil || a.Moderate == nil || a.Mild == nil || a.Normal == nil {
		t.Fatal("expected non-nil buckets")
	}
}
