package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	_ "symptomintake/docs"
	"symptomintake/internal/cache"
	"symptomintake/internal/config"
	"symptomintake/internal/llm"
	"symptomintake/internal/platform/logger"
	"symptomintake/internal/repository"
	"symptomintake/internal/service"
	"symptomintake/internal/transport/rest"
	"symptomintake/internal/transport/ws"
)

// @title Symptom Intake API
// @version 1.0
// @description Multi-step symptom intake with model-backed follow-up questions, analysis and summaries
// @host localhost:5001
// @BasePath /
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()
	appLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer appLog.Sync()

	if err := cfg.Validate(); err != nil {
		appLog.Fatal("Invalid configuration", "error", err.Error())
	}
	if cfg.JWTSecret == "" {
		appLog.Warn("JWT_SECRET not set, using a per-process secret; session tokens will not survive a restart")
		cfg.JWTSecret = uuid.NewString()
	}

	// Load AI config and log model settings
	aiConfig := config.DefaultAIConfig()
	appLog.Info("AI config",
		"model", aiConfig.Model,
		"timeout_ms", aiConfig.TimeoutMS,
		"max_retries", aiConfig.MaxRetries,
		"enabled", aiConfig.IsEnabled(),
	)
	if !aiConfig.IsEnabled() {
		appLog.Warn("OPENAI_API_KEY not set, serving rule-based fallbacks only")
	}
	policy := llm.DefaultRetryPolicy(appLog)
	policy.MaxRetries = aiConfig.MaxRetries
	policy.BaseDelay = aiConfig.BaseDelay()
	client := llm.NewClient(aiConfig, policy)

	// Session store
	var sessions cache.SessionCache
	if cfg.UsesRedis() {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			appLog.Fatal("Failed to ping Redis", "addr", cfg.RedisAddr, "error", err.Error())
		}
		appLog.Info("Connected to Redis", "addr", cfg.RedisAddr)
		sessions = cache.NewRedisSessionCache(rdb, cfg.SessionTTL)
	} else {
		sessions = cache.NewMemorySessionCache(cfg.SessionTTL)
		appLog.Info("Using in-process session store", "ttl", cfg.SessionTTL.String())
	}

	// Assessment log storage is optional
	var assessments repository.AssessmentRepo
	if cfg.MongoURI != "" {
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			appLog.Fatal("Failed to connect to MongoDB", "error", err.Error())
		}
		defer mongoClient.Disconnect(context.Background())

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = mongoClient.Ping(pingCtx, nil)
		cancel()
		if err != nil {
			appLog.Fatal("Failed to ping MongoDB", "error", err.Error())
		}
		appLog.Info("Connected to MongoDB", "database", cfg.MongoDatabase)
		assessments = repository.NewAssessmentRepo(mongoClient.Database(cfg.MongoDatabase))
	} else {
		appLog.Warn("MONGO_URI not set, assessment history disabled")
	}

	wsHub := ws.NewHub(appLog)
	defer wsHub.Close()

	records := service.NewAssessmentLog(assessments, wsHub, appLog)
	container := &rest.Container{
		AuthService:        service.NewAuthService(cfg.JWTSecret, cfg.SessionTokenTTL),
		IntakeService:      service.NewIntakeService(sessions, client, wsHub, appLog),
		SuggestionService:  service.NewSuggestionService(client, appLog),
		LabelService:       service.NewLabelService(client, appLog),
		AdditionalService:  service.NewAdditionalQuestionService(client, appLog),
		AnalysisService:    service.NewAnalysisService(client, records, appLog),
		SummaryService:     service.NewSummaryService(client, records, appLog),
		FollowUpService:    service.NewFollowUpService(client, records, appLog),
		Assessments:        records,
		WSHub:              wsHub,
		SessionTokenMaxAge: cfg.SessionTokenTTL,
		Log:                appLog,
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: rest.NewRouter(container),
	}

	go func() {
		appLog.Info("Server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("ListenAndServe failed", "error", err.Error())
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error("Server forced to shutdown", "error", err.Error())
	}

	appLog.Info("Server exited")
}
