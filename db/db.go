package db

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"pitchjury/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const evaluationsCollection = "evaluations"

// Connect establishes a MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// DatabaseName parses the database name from the URI, defaulting to "pitchjury".
func DatabaseName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "pitchjury"
	}
	if u.Path != "" && u.Path != "/" {
		return u.Path[1:]
	}
	return "pitchjury"
}

// EvaluationStore is the Mongo-backed result store. The collection is
// injected rather than held in package globals so the store can be swapped
// for a double in tests.
type EvaluationStore struct {
	collection *mongo.Collection
}

func NewEvaluationStore(client *mongo.Client, dbName string) *EvaluationStore {
	return &EvaluationStore{
		collection: client.Database(dbName).Collection(evaluationsCollection),
	}
}

func (s *EvaluationStore) Append(ctx context.Context, record models.StoredEvaluationRecord) error {
	if _, err := s.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert evaluation record: %w", err)
	}
	return nil
}

// ListAll returns every evaluation record, newest first, for the organizer
// dashboard.
func (s *EvaluationStore) ListAll(ctx context.Context) ([]models.StoredEvaluationRecord, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluation records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.StoredEvaluationRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode evaluation records: %w", err)
	}
	return records, nil
}
