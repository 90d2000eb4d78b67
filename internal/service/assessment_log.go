package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"symptomintake/internal/model"
	"symptomintake/internal/platform/logger"
	"symptomintake/internal/repository"
)

// ErrHistoryDisabled is returned when no assessment store is configured.
var ErrHistoryDisabled = errors.New("assessment history is not configured")

// AssessmentLog records generated assessments against their session and
// announces them to subscribers. Storage is optional.
type AssessmentLog struct {
	repo   repository.AssessmentRepo
	events Broadcaster
	log    *logger.Logger
	now    func() time.Time
}

// NewAssessmentLog creates a new assessment log. repo may be nil.
func NewAssessmentLog(repo repository.AssessmentRepo, events Broadcaster, log *logger.Logger) *AssessmentLog {
	if events == nil {
		events = NopBroadcaster{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &AssessmentLog{repo: repo, events: events, log: log, now: time.Now}
}

// Record stores payload and publishes assessment_ready. Storage failures are
// logged and never reach the caller.
func (l *AssessmentLog) Record(ctx context.Context, sessionID string, kind model.AssessmentKind, strategy string, payload interface{}) {
	if l == nil {
		return
	}
	l.events.PublishToSession(sessionID, model.EventAssessmentReady, map[string]interface{}{
		"kind":     kind,
		"strategy": strategy,
	})
	if l.repo == nil || sessionID == "" {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		l.log.Warn("Failed to encode assessment", "kind", kind, "error", err.Error())
		return
	}
	record := &model.AssessmentRecord{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Kind:      kind,
		Strategy:  strategy,
		Payload:   data,
		CreatedAt: l.now(),
	}
	if err := l.repo.Save(ctx, record); err != nil {
		l.log.Warn("Failed to save assessment",
			"session_id", sessionID,
			"kind", kind,
			"error", err.Error(),
		)
	}
}

// History lists the session's assessments, oldest first.
func (l *AssessmentLog) History(ctx context.Context, sessionID string) ([]*model.AssessmentRecord, error) {
	if l == nil || l.repo == nil {
		return nil, ErrHistoryDisabled
	}
	return l.repo.ListBySession(ctx, sessionID)
}
