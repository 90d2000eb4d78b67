package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"symptomintake/internal/model"
	"symptomintake/internal/service"
)

// SymptomHandler handles symptom entry helpers: suggestions, label extraction
// and the extended question form
type SymptomHandler struct {
	suggestionSvc *service.SuggestionService
	labelSvc      *service.LabelService
	additionalSvc *service.AdditionalQuestionService
}

// NewSymptomHandler creates a new symptom handler
func NewSymptomHandler(
	suggestionSvc *service.SuggestionService,
	labelSvc *service.LabelService,
	additionalSvc *service.AdditionalQuestionService,
) *SymptomHandler {
	return &SymptomHandler{
		suggestionSvc: suggestionSvc,
		labelSvc:      labelSvc,
		additionalSvc: additionalSvc,
	}
}

type suggestRequest struct {
	Input string `json:"input"`
}

type labelRequest struct {
	Symptoms []string `json:"symptoms"`
	FreeText string   `json:"free_text"`
}

type additionalRequest struct {
	PatientData  *model.PatientProfile `json:"patient_data"`
	MaxQuestions *int                  `json:"max_questions"`
}

// Suggest handles POST /get_symptoms
//
// @Summary Complete a partially typed symptom
// @Tags symptoms
// @Accept json
// @Produce json
// @Success 200 {array} string
// @Router /get_symptoms [post]
func (h *SymptomHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, h.suggestionSvc.Suggest(r.Context(), req.Input))
}

// ExtractLabels handles POST /extract_labels
//
// @Summary Extract symptom labels with the model
// @Tags symptoms
// @Accept json
// @Produce json
// @Success 200 {object} model.LabelResult
// @Router /extract_labels [post]
func (h *SymptomHandler) ExtractLabels(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeLabelRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.labelSvc.Extract(r.Context(), req.Symptoms, req.FreeText))
}

// ExtractKeywordLabels handles POST /extract_labels/keywords
//
// @Summary Extract symptom labels by keyword
// @Tags symptoms
// @Accept json
// @Produce json
// @Success 200 {object} model.LabelResult
// @Router /extract_labels/keywords [post]
func (h *SymptomHandler) ExtractKeywordLabels(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeLabelRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.labelSvc.ExtractKeywords(req.Symptoms, req.FreeText))
}

// AdditionalQuestions handles POST /generate_additional_questions
//
// @Summary OLDCARTS additional information questions
// @Tags symptoms
// @Accept json
// @Produce json
// @Failure 400 {object} map[string]string
// @Router /generate_additional_questions [post]
func (h *SymptomHandler) AdditionalQuestions(w http.ResponseWriter, r *http.Request) {
	var raw map[string]json.RawMessage
	if err := decodeJSON(w, r, &raw); err != nil || len(raw) == 0 {
		writeError(w, http.StatusBadRequest, "No data provided")
		return
	}

	var req additionalRequest
	if err := decodeField(raw, "patient_data", &req.PatientData); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := decodeField(raw, "max_questions", &req.MaxQuestions); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PatientData == nil {
		req.PatientData = &model.PatientProfile{}
	}
	max := 0
	if req.MaxQuestions != nil {
		max = *req.MaxQuestions
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"questions": h.additionalSvc.Generate(r.Context(), req.PatientData, max),
	})
}

func decodeLabelRequest(w http.ResponseWriter, r *http.Request) (*labelRequest, bool) {
	var req labelRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return &req, true
}

func decodeField(raw map[string]json.RawMessage, key string, dst interface{}) error {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	return json.Unmarshal(v, dst)
}
