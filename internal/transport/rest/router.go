package rest

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/swaggo/swag"

	"symptomintake/internal/platform/logger"
	"symptomintake/internal/service"
	"symptomintake/internal/transport/rest/handler"
	"symptomintake/internal/transport/rest/middleware"
	"symptomintake/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService        *service.AuthService
	IntakeService      *service.IntakeService
	SuggestionService  *service.SuggestionService
	LabelService       *service.LabelService
	AdditionalService  *service.AdditionalQuestionService
	AnalysisService    *service.AnalysisService
	SummaryService     *service.SummaryService
	FollowUpService    *service.FollowUpService
	Assessments        *service.AssessmentLog
	WSHub              *ws.Hub
	SessionTokenMaxAge time.Duration
	Log                *logger.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	intakeHandler := handler.NewIntakeHandler(c.IntakeService, c.Log)
	symptomHandler := handler.NewSymptomHandler(c.SuggestionService, c.LabelService, c.AdditionalService)
	assessmentHandler := handler.NewAssessmentHandler(c.AnalysisService, c.SummaryService, c.FollowUpService, c.Assessments, c.Log)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.Log)

	// Initialize middleware
	sessionMW := middleware.NewSessionMiddleware(c.AuthService, c.SessionTokenMaxAge)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API document
	r.HandleFunc("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, `{"error":"api document not registered"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	}).Methods("GET")

	// WebSocket route (token in query param)
	r.HandleFunc("/ws/session", wsHandler.SessionWS).Methods("GET")

	// Session routes
	s := r.NewRoute().Subrouter()
	s.Use(sessionMW.Resolve)

	s.HandleFunc("/", intakeHandler.Reset).Methods("GET", "OPTIONS")
	s.HandleFunc("/get_symptoms", symptomHandler.Suggest).Methods("POST", "OPTIONS")
	s.HandleFunc("/submit_symptoms", intakeHandler.SubmitSymptoms).Methods("POST", "OPTIONS")
	s.HandleFunc("/followup", intakeHandler.Followup).Methods("POST", "OPTIONS")
	s.HandleFunc("/analyze", assessmentHandler.Analyze).Methods("POST", "OPTIONS")
	s.HandleFunc("/diagnose", assessmentHandler.Diagnose).Methods("POST", "OPTIONS")
	s.HandleFunc("/extract_labels", symptomHandler.ExtractLabels).Methods("POST", "OPTIONS")
	s.HandleFunc("/extract_labels/keywords", symptomHandler.ExtractKeywordLabels).Methods("POST", "OPTIONS")
	s.HandleFunc("/generate_additional_questions", symptomHandler.AdditionalQuestions).Methods("POST", "OPTIONS")
	s.HandleFunc("/generate_patient_summary", assessmentHandler.Summary).Methods("POST", "OPTIONS")
	s.HandleFunc("/generate_followup_questions", assessmentHandler.FollowUps).Methods("POST", "OPTIONS")
	s.HandleFunc("/v1/assessments", assessmentHandler.History).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization, " + middleware.SessionHeader
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
		w.Header().Set("Access-Control-Expose-Headers", middleware.SessionHeader)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
