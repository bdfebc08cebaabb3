package persistence

import (
	"context"
	"fmt"

	"github.com/omkar342/youtube-dashboard-server/domain/model"
	"github.com/omkar342/youtube-dashboard-server/domain/repository"
	"github.com/omkar342/youtube-dashboard-server/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

const auditCollection = "logs"

// MongoAuditLogRepository appends audit events to a MongoDB collection.
type MongoAuditLogRepository struct {
	client *mongo.Client
	dbName string
}

func NewMongoAuditLogRepository(client *mongo.Client, dbName string) repository.IAuditLog {
	return &MongoAuditLogRepository{client: client, dbName: dbName}
}

// Append inserts one event document. Events are never updated or removed.
func (r *MongoAuditLogRepository) Append(ctx context.Context, event model.AuditEvent) error {
	collection := r.client.Database(r.dbName).Collection(auditCollection)
	if _, err := collection.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to append audit event: %w", err)
	}
	return nil
}

// LoggerAuditLogRepository is the fallback sink when no durable backend is
// available: events go to the structured log so mutations still leave a
// trace. Appends never fail.
type LoggerAuditLogRepository struct{}

func NewLoggerAuditLogRepository() repository.IAuditLog {
	return &LoggerAuditLogRepository{}
}

func (r *LoggerAuditLogRepository) Append(_ context.Context, event model.AuditEvent) error {
	logger.GetLogger().
		WithField("event", event.Event).
		WithField("details", event.Details).
		WithField("timestamp", event.Timestamp).
		Info("Audit event")
	return nil
}
