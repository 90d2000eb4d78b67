package clinical

import (
	"fmt"
	"strings"

	"symptomintake/internal/model"
)

// RuleBasedChecklist builds the deterministic intake checklist from the base
// table, the case-type table and keyword matches over the selected symptoms
// and free text. It never returns an empty list.
func RuleBasedChecklist(caseType string, symptoms []string, narrative string) []model.ChecklistItem {
	seeds := make([]checklistSeed, 0, len(baseChecklist)+16)
	seeds = append(seeds, baseChecklist...)
	seeds = append(seeds, caseChecklists[strings.ToLower(strings.TrimSpace(caseType))]...)

	for _, symptom := range symptoms {
		lower := strings.ToLower(symptom)
		for _, kc := range symptomChecklists {
			if containsAny(lower, kc.keywords) {
				seeds = append(seeds, kc.rows...)
			}
		}
	}
	if narrative != "" {
		lower := strings.ToLower(narrative)
		for _, nc := range narrativeChecklists {
			if containsAny(lower, nc.keywords) {
				seeds = append(seeds, nc.row)
			}
		}
	}

	items := make([]model.ChecklistItem, 0, len(seeds))
	for _, s := range seeds {
		items = append(items, model.ChecklistItem{
			Symptom:   s.symptom,
			Category:  s.category,
			NotesHint: s.notesHint,
			Type:      model.QuestionTypeYesNoNotes,
		})
	}
	return DedupeChecklist(items)
}

// EnhancedChecklist puts label feature probes and label correlation probes
// ahead of the rule-based checklist.
func EnhancedChecklist(caseType string, symptoms []string, narrative string) []model.ChecklistItem {
	labels := ExtractLabels(symptoms, narrative)

	items := make([]model.ChecklistItem, 0, len(labels.FeatureQuestions)+32)
	items = append(items, labels.FeatureQuestions...)
	for _, label := range labels.Order {
		for _, corr := range labels.CorrelationMatrix[label] {
			for _, q := range corr.Questions {
				items = append(items, model.ChecklistItem{
					Symptom:             q,
					Category:            model.ChecklistCategoryCorrelation,
					NotesHint:           fmt.Sprintf("Relationship between %s and %s", humanizeLabel(label), humanizeLabel(corr.Label)),
					Type:                model.QuestionTypeYesNoNotes,
					CorrelationStrength: corr.Strength,
					QuestionType:        model.ChecklistCorrelationAnalysis,
				})
			}
		}
	}
	items = append(items, RuleBasedChecklist(caseType, symptoms, narrative)...)
	return DedupeChecklist(items)
}

// DedupeChecklist drops rows whose text repeats an earlier row, ignoring case.
func DedupeChecklist(items []model.ChecklistItem) []model.ChecklistItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]model.ChecklistItem, 0, len(items))
	for _, it := range items {
		key := strings.ToLower(it.Symptom)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	return out
}

// ExtractLabels detects known symptom labels by keyword, attaches their
// feature probes and builds the correlation matrix between detected labels.
func ExtractLabels(symptoms []string, narrative string) *model.LabelResult {
	joined := strings.ToLower(strings.Join(symptoms, " "))
	all := joined + " " + strings.ToLower(narrative)

	res := model.EmptyLabelResult()
	for _, rule := range labelRules {
		if !containsAny(all, rule.keywords) {
			continue
		}
		source := model.LabelSourceFreeText
		if containsAny(joined, rule.keywords) {
			source = model.LabelSourceSymptoms
		}
		res.ExtractedLabels[rule.label] = model.ExtractedLabel{
			Detected: true,
			Source:   source,
			Features: rule.features,
		}
		res.Order = append(res.Order, rule.label)
	}
	res.LabelCount = len(res.Order)

	for _, label := range res.Order {
		rule, ok := correlationRules[label]
		if !ok {
			continue
		}
		corrs := []model.Correlation{}
		for _, other := range rule.high {
			if _, found := res.ExtractedLabels[other]; found {
				corrs = append(corrs, model.Correlation{Label: other, Strength: "high", Questions: rule.questions})
			}
		}
		for _, other := range rule.moderate {
			if _, found := res.ExtractedLabels[other]; found {
				corrs = append(corrs, model.Correlation{Label: other, Strength: "moderate", Questions: rule.questions})
			}
		}
		res.CorrelationMatrix[label] = corrs
	}

	for _, label := range res.Order {
		for _, feature := range res.ExtractedLabels[label].Features {
			res.FeatureQuestions = append(res.FeatureQuestions, model.ChecklistItem{
				Symptom:      feature,
				Category:     model.ChecklistCategoryLabel,
				NotesHint:    "Details about " + humanizeLabel(label),
				Type:         model.QuestionTypeYesNoNotes,
				Label:        label,
				QuestionType: model.ChecklistFeatureExtraction,
			})
		}
	}
	return res
}

// CleanSymptom strips the "(description)" suffix from a suggestion label.
func CleanSymptom(symptom string) string {
	name, _, _ := strings.Cut(symptom, "(")
	return strings.TrimSpace(name)
}

// NeedsIntensityRating reports whether a symptom is better described by
// intensity than by frequency.
func NeedsIntensityRating(symptom string) bool {
	return containsAny(strings.ToLower(symptom), intensityKeywords)
}

// InterviewQuestions generates the one-by-one interview: three questions per
// selected symptom and three more when the patient wrote a description.
func InterviewQuestions(symptoms []string, narrative string) []model.Question {
	questions := make([]model.Question, 0, 3*len(symptoms)+3)

	for _, raw := range symptoms {
		name := CleanSymptom(raw)

		questions = append(questions, model.Question{
			Text:              fmt.Sprintf("When did your %s first appear, and how has the timing pattern been?", name),
			Type:              model.QuestionTypeMultipleChoice,
			Options:           onsetOptions,
			HelpText:          "Understanding onset and timing patterns helps identify the underlying cause",
			DiagnosticPurpose: fmt.Sprintf("Analyze temporal characteristics and patterns of %s", name),
			SymptomFocus:      name,
			QuestionCategory:  "onset_timing",
		})

		if NeedsIntensityRating(name) {
			questions = append(questions, model.Question{
				Text:              fmt.Sprintf("How would you describe the intensity and duration of your %s episodes?", name),
				Type:              model.QuestionTypeMultipleChoice,
				Options:           intensityOptions,
				HelpText:          "Intensity and duration patterns help assess severity and underlying pathology",
				DiagnosticPurpose: fmt.Sprintf("Assess severity characteristics and episode duration of %s", name),
				SymptomFocus:      name,
				QuestionCategory:  "intensity_duration",
			})
		} else {
			questions = append(questions, model.Question{
				Text:              fmt.Sprintf("How often does your %s occur and how long does it typically last?", name),
				Type:              model.QuestionTypeMultipleChoice,
				Options:           frequencyOptions,
				HelpText:          "Frequency patterns help identify triggers and underlying mechanisms",
				DiagnosticPurpose: fmt.Sprintf("Determine frequency and persistence patterns of %s", name),
				SymptomFocus:      name,
				QuestionCategory:  "frequency_pattern",
			})
		}

		questions = append(questions, model.Question{
			Text: fmt.Sprintf("What specific characteristics, triggers, or factors affect your %s?", name),
			Type: model.QuestionTypeTextarea,
			Placeholder: fmt.Sprintf("Describe: What does the %s feel like? What makes it worse or better? "+
				"Any specific triggers (food, stress, position, weather, etc.)? How does it affect your daily activities?", name),
			HelpText:          "Detailed characteristics and modifying factors are crucial for accurate diagnosis",
			DiagnosticPurpose: fmt.Sprintf("Identify quality, triggers, relieving factors, and functional impact of %s", name),
			SymptomFocus:      name,
			QuestionCategory:  "characteristics_triggers",
		})
	}

	if strings.TrimSpace(narrative) == "" {
		return questions
	}

	const focus = "free_text_symptoms"
	return append(questions,
		model.Question{
			Text:              "For the symptoms you described, when did they first appear and what is their timing pattern?",
			Type:              model.QuestionTypeMultipleChoice,
			Options:           narrativeOnsetOptions,
			HelpText:          "Timeline helps understand if symptoms are related or separate conditions",
			DiagnosticPurpose: "Establish temporal relationship between patient-described symptoms",
			SymptomFocus:      focus,
			QuestionCategory:  "onset_timing",
		},
		model.Question{
			Text:              "How severe are your described symptoms and how do they impact your daily life?",
			Type:              model.QuestionTypeMultipleChoice,
			Options:           narrativeSeverityOptions,
			HelpText:          "Severity and functional impact help prioritize treatment urgency",
			DiagnosticPurpose: "Assess overall severity and functional impact of described symptoms",
			SymptomFocus:      focus,
			QuestionCategory:  "severity_impact",
		},
		model.Question{
			Text: "What specific details can you provide about your symptoms - their character, what triggers them, and what provides relief?",
			Type: model.QuestionTypeTextarea,
			Placeholder: "Please describe: Exact nature/quality of each symptom, any patterns you've noticed, what makes them worse, " +
				"what helps, any associated factors (stress, food, weather, position), medications tried, etc.",
			HelpText:          "Detailed symptom characteristics are essential for accurate diagnosis",
			DiagnosticPurpose: "Gather comprehensive qualitative information about patient-described symptoms",
			SymptomFocus:      focus,
			QuestionCategory:  "detailed_characteristics",
		},
	)
}

// IsChecklistCategory reports whether category is one of ChecklistCategories.
func IsChecklistCategory(category string) bool {
	for _, c := range ChecklistCategories {
		if c == category {
			return true
		}
	}
	return false
}

func humanizeLabel(label string) string {
	return strings.ReplaceAll(label, "_", " ")
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
