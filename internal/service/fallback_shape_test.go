package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"

	"symptomintake/internal/llm"
	"symptomintake/internal/model"
	"symptomintake/internal/platform/logger"
)

// keyPaths collects the dotted key paths of a decoded JSON value. Array
// elements share the path of their array with a "[]" suffix. Paths in skip
// are recorded but not descended into.
func keyPaths(v interface{}, prefix string, skip map[string]bool, out map[string]bool) {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, child := range t {
			p := k
			if prefix != "" {
				p = prefix + "." + k
			}
			out[p] = true
			if !skip[p] {
				keyPaths(child, p, skip, out)
			}
		}
	case []interface{}:
		for _, e := range t {
			keyPaths(e, prefix+"[]", skip, out)
		}
	}
}

func payloadShape(t *testing.T, payload []byte, skip []string) []string {
	t.Helper()
	var decoded interface{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	skipSet := make(map[string]bool, len(skip))
	for _, s := range skip {
		skipSet[s] = true
	}
	set := map[string]bool{}
	keyPaths(decoded, "", skipSet, set)

	paths := make([]string, 0, len(set))
	for p := range set {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func TestFallbackPayloadsMatchSuccessShape(t *testing.T) {
	profile := &model.PatientProfile{
		Demographics: model.Fields{"age": 70.0, "gender": "female"},
		Symptoms:     []string{"fever"},
		Vitals:       model.Fields{"temperature": 101.0, "pulseRate": 130.0},
	}
	conditionsReply := `{
		"possible_conditions": [{"condition": "Influenza", "confidence_score": 70, "explanation": "Fever and aches"}],
		"diagnostic_tests": [{"test": "Flu swab", "confidence_score": 80, "priority": "routine", "explanation": "Confirms infection"}],
		"red_flags": ["Confusion"]
	}`

	tests := []struct {
		name    string
		success string
		skip    []string
		run     func(client llm.Client) interface{}
	}{
		{
			name:    "analysis",
			success: conditionsReply,
			run: func(client llm.Client) interface{} {
				return NewAnalysisService(client, nil, logger.NewNop()).Analyze(context.Background(), "s1", profile)
			},
		},
		{
			name:    "diagnosis",
			success: conditionsReply,
			run: func(client llm.Client) interface{} {
				return NewAnalysisService(client, nil, logger.NewNop()).Diagnose(context.Background(), "s1", profile)
			},
		},
		{
			name:    "summary",
			success: `{"patient_summary": {"demographics_summary": "<p>70 year old woman</p>"}}`,
			run: func(client llm.Client) interface{} {
				return NewSummaryService(client, nil, logger.NewNop()).Summarize(context.Background(), "s1", profile)
			},
		},
		{
			name: "labels",
			success: `{"extracted_labels": {"fever": {"detected": true, "source": "symptoms", "features": ["high"], "confidence": "high"}},
				"correlation_matrix": {}}`,
			skip: []string{"extracted_labels", "correlation_matrix", "feature_questions"},
			run: func(client llm.Client) interface{} {
				return NewLabelService(client, logger.NewNop()).Extract(context.Background(), []string{"fever"}, "")
			},
		},
		{
			name: "follow-ups",
			success: `{"questions": [
				{"id": 1, "category": "vitals_outlier", "question": "How long have you had the fever?", "type": "textarea"},
				{"id": 2, "category": "vitals_outlier", "question": "Does your heart race?", "type": "textarea"},
				{"id": 3, "category": "general", "question": "Anything else?", "type": "textarea"}
			], "outliers_addressed": ["fever"], "do_indicators_focus": ["objective vitals"]}`,
			skip: []string{"questions"},
			run: func(client llm.Client) interface{} {
				return NewFollowUpService(client, nil, logger.NewNop()).Generate(context.Background(), "s1", profile)
			},
		},
		{
			name: "suggestions",
			success: `["fever (high temperature)", "cough (dry)", "rash (skin)", "nausea (queasy)", "chills (cold)",
				"sweating (damp)", "headache (pain)", "fatigue (tired)", "weakness (low energy)", "dizziness (spinning)"]`,
			run: func(client llm.Client) interface{} {
				return NewSuggestionService(client, logger.NewNop()).Suggest(context.Background(), "headache")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			success, err := json.Marshal(tt.run(&scriptedClient{reply: tt.success}))
			if err != nil {
				t.Fatal(err)
			}
			fallback, err := json.Marshal(tt.run(&scriptedClient{err: errors.New("provider down")}))
			if err != nil {
				t.Fatal(err)
			}
			if bytes.Equal(success, fallback) {
				t.Fatalf("model output was not used: %s", success)
			}

			want := payloadShape(t, success, tt.skip)
			got := payloadShape(t, fallback, tt.skip)
			if len(want) != len(got) {
				t.Fatalf("shape mismatch:\nsuccess  %v\nfallback %v", want, got)
			}
			for i := range want {
				if want[i] != got[i] {
					t.Fatalf("shape mismatch:\nsuccess  %v\nfallback %v", want, got)
				}
			}
		})
	}
}

func TestSuggestionShapeIsTenItems(t *testing.T) {
	for _, client := range []llm.Client{
		&scriptedClient{reply: `["cough (dry)"]`},
		&scriptedClient{err: errors.New("provider down")},
	} {
		if got := NewSuggestionService(client, nil).Suggest(context.Background(), "headache"); len(got) != 10 {
			t.Fatalf("expected 10 suggestions, got %d: %v", len(got), got)
		}
	}
}
