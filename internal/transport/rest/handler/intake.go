package handler

import (
	"errors"
	"net/http"

	"symptomintake/internal/model"
	"symptomintake/internal/platform/logger"
	"symptomintake/internal/service"
	"symptomintake/internal/transport/rest/middleware"
)

// IntakeHandler handles the questionnaire endpoints
type IntakeHandler struct {
	intakeSvc *service.IntakeService
	log       *logger.Logger
}

// NewIntakeHandler creates a new intake handler
func NewIntakeHandler(intakeSvc *service.IntakeService, log *logger.Logger) *IntakeHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &IntakeHandler{intakeSvc: intakeSvc, log: log}
}

// Reset handles GET /
//
// @Summary Reset the intake session
// @Tags intake
// @Produce json
// @Success 200 {object} model.SessionResponse
// @Router / [get]
func (h *IntakeHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	if err := h.intakeSvc.Reset(r.Context(), sessionID); err != nil {
		h.log.Error("Session reset failed", "session_id", sessionID, "error", err.Error())
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, model.SessionResponse{
		Status:       "reset",
		SessionID:    sessionID,
		SessionToken: middleware.GetSessionToken(r.Context()),
	})
}

// SubmitSymptoms handles POST /submit_symptoms
//
// @Summary Get the structured follow-up checklist
// @Tags intake
// @Accept json
// @Produce json
// @Param profile body model.PatientProfile true "Patient profile"
// @Success 200 {object} model.BatchResponse
// @Router /submit_symptoms [post]
func (h *IntakeHandler) SubmitSymptoms(w http.ResponseWriter, r *http.Request) {
	p, ok := decodeProfile(w, r)
	if !ok {
		return
	}

	sessionID := middleware.GetSessionID(r.Context())
	resp, err := h.intakeSvc.RequestBatch(r.Context(), sessionID, p)
	if err != nil {
		h.log.Error("Structured questions failed", "session_id", sessionID, "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error":     err.Error(),
			"completed": true,
		})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Followup handles POST /followup
//
// @Summary Get the next interview question
// @Tags intake
// @Accept json
// @Produce json
// @Param profile body model.PatientProfile false "Patient profile"
// @Success 200 {object} model.NextQuestionResponse
// @Router /followup [post]
func (h *IntakeHandler) Followup(w http.ResponseWriter, r *http.Request) {
	p, ok := decodeProfile(w, r)
	if !ok {
		return
	}

	sessionID := middleware.GetSessionID(r.Context())
	resp, err := h.intakeSvc.RequestNext(r.Context(), sessionID, p)
	if err != nil {
		h.log.Error("Next question failed", "session_id", sessionID, "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"completed": true,
			"error":     err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// decodeProfile reads the patient profile. An empty body is an empty profile.
func decodeProfile(w http.ResponseWriter, r *http.Request) (*model.PatientProfile, bool) {
	var p model.PatientProfile
	if err := decodeJSON(w, r, &p); err != nil && !errors.Is(err, errEmptyBody) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return &p, true
}
