package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"symptomintake/internal/model"
)

// AssessmentRepo handles MongoDB operations for generated assessments
type AssessmentRepo interface {
	Save(ctx context.Context, record *model.AssessmentRecord) error
	ListBySession(ctx context.Context, sessionID string) ([]*model.AssessmentRecord, error)
}

// assessmentDoc stores the payload as a native document so it can be queried
// from the shell.
type assessmentDoc struct {
	ID        string               `bson:"_id"`
	SessionID string               `bson:"sessionId"`
	Kind      model.AssessmentKind `bson:"kind"`
	Strategy  string               `bson:"strategy"`
	Payload   bson.Raw             `bson:"payload"`
	CreatedAt time.Time            `bson:"createdAt"`
}

type assessmentRepo struct {
	collection *mongo.Collection
}

// NewAssessmentRepo creates a new assessment repository
func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{collection: db.Collection("assessments")}
}

func (r *assessmentRepo) Save(ctx context.Context, record *model.AssessmentRecord) error {
	var payload bson.Raw
	if err := bson.UnmarshalExtJSON(record.Payload, false, &payload); err != nil {
		return fmt.Errorf("convert payload: %w", err)
	}

	doc := assessmentDoc{
		ID:        record.ID,
		SessionID: record.SessionID,
		Kind:      record.Kind,
		Strategy:  record.Strategy,
		Payload:   payload,
		CreatedAt: record.CreatedAt,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts)
	return err
}

func (r *assessmentRepo) ListBySession(ctx context.Context, sessionID string) ([]*model.AssessmentRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"sessionId": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []assessmentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	records := make([]*model.AssessmentRecord, 0, len(docs))
	for _, d := range docs {
		payload, err := bson.MarshalExtJSON(d.Payload, false, false)
		if err != nil {
			return nil, fmt.Errorf("convert payload: %w", err)
		}
		records = append(records, &model.AssessmentRecord{
			ID:        d.ID,
			SessionID: d.SessionID,
			Kind:      d.Kind,
			Strategy:  d.Strategy,
			Payload:   json.RawMessage(payload),
			CreatedAt: d.CreatedAt,
		})
	}
	return records, nil
}
