package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/flowventory/backend/models"
)

// MaxRecentLogs caps the log listing page. There is no general pagination;
// history beyond this window stays in the collection but is not served.
const MaxRecentLogs = 100

// LogRepository is the append-only write path for audit entries. Entries are
// never updated or deleted by the application. It is a sink: no component
// reads it back to validate integrity.
type LogRepository interface {
	// Append persists one audit entry, stamping its timestamp at write time.
	Append(ctx context.Context, entry *models.Log) error
	// ListRecent returns entries ordered by timestamp descending, capped at
	// MaxRecentLogs regardless of the requested limit.
	ListRecent(ctx context.Context, limit int64) ([]models.Log, error)
}

type mongoLogRepository struct {
	collection *mongo.Collection
}

// NewLogRepository creates the Mongo-backed log repository.
func NewLogRepository(db *mongo.Database) LogRepository {
	return &mongoLogRepository{collection: db.Collection("logs")}
}

func (r *mongoLogRepository) Append(ctx context.Context, entry *models.Log) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return err
	}
	entry.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoLogRepository) ListRecent(ctx context.Context, limit int64) ([]models.Log, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if limit <= 0 || limit > MaxRecentLogs {
		limit = MaxRecentLogs
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	logs := []models.Log{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
