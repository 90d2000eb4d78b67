package handler

import (
	"errors"
	"net/http"

	"symptomintake/internal/model"
	"symptomintake/internal/platform/logger"
	"symptomintake/internal/service"
	"symptomintake/internal/transport/rest/middleware"
)

// AssessmentHandler handles the model-backed assessment endpoints
type AssessmentHandler struct {
	analysisSvc *service.AnalysisService
	summarySvc  *service.SummaryService
	followUpSvc *service.FollowUpService
	records     *service.AssessmentLog
	log         *logger.Logger
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(
	analysisSvc *service.AnalysisService,
	summarySvc *service.SummaryService,
	followUpSvc *service.FollowUpService,
	records *service.AssessmentLog,
	log *logger.Logger,
) *AssessmentHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &AssessmentHandler{
		analysisSvc: analysisSvc,
		summarySvc:  summarySvc,
		followUpSvc: followUpSvc,
		records:     records,
		log:         log,
	}
}

// Analyze handles POST /analyze
//
// @Summary Analyze symptoms
// @Tags assessment
// @Accept json
// @Produce json
// @Param profile body model.PatientProfile true "Patient profile"
// @Success 200 {object} model.Analysis
// @Router /analyze [post]
func (h *AssessmentHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	p, ok := decodeProfile(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.analysisSvc.Analyze(r.Context(), middleware.GetSessionID(r.Context()), p))
}

// Diagnose handles POST /diagnose
//
// @Summary Diagnosis and recommendations
// @Tags assessment
// @Accept json
// @Produce json
// @Param profile body model.PatientProfile true "Patient profile"
// @Success 200 {object} model.Analysis
// @Router /diagnose [post]
func (h *AssessmentHandler) Diagnose(w http.ResponseWriter, r *http.Request) {
	p, ok := decodeProfile(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.analysisSvc.Diagnose(r.Context(), middleware.GetSessionID(r.Context()), p))
}

// Summary handles POST /generate_patient_summary
//
// @Summary Patient summary with D/O indicators
// @Tags assessment
// @Accept json
// @Produce json
// @Param profile body model.PatientProfile true "Patient profile"
// @Success 200 {object} model.PatientSummary
// @Router /generate_patient_summary [post]
func (h *AssessmentHandler) Summary(w http.ResponseWriter, r *http.Request) {
	p, ok := decodeProfile(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.summarySvc.Summarize(r.Context(), middleware.GetSessionID(r.Context()), p))
}

// FollowUps handles POST /generate_followup_questions
//
// @Summary Follow-up questions for abnormal vitals
// @Tags assessment
// @Accept json
// @Produce json
// @Param profile body model.PatientProfile true "Patient profile"
// @Success 200 {object} model.FollowUpQuestionSet
// @Router /generate_followup_questions [post]
func (h *AssessmentHandler) FollowUps(w http.ResponseWriter, r *http.Request) {
	p, ok := decodeProfile(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.followUpSvc.Generate(r.Context(), middleware.GetSessionID(r.Context()), p))
}

// History handles GET /v1/assessments
//
// @Summary Assessments generated in this session
// @Tags assessment
// @Produce json
// @Success 200 {array} model.AssessmentRecord
// @Failure 503 {object} map[string]string
// @Router /v1/assessments [get]
func (h *AssessmentHandler) History(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	records, err := h.records.History(r.Context(), sessionID)
	if errors.Is(err, service.ErrHistoryDisabled) {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	if err != nil {
		h.log.Error("Assessment history failed", "session_id", sessionID, "error", err.Error())
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if records == nil {
		records = []*model.AssessmentRecord{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id":  sessionID,
		"assessments": records,
	})
}
