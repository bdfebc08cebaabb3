package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/omkar342/youtube-dashboard-server/domain/model"
	"github.com/omkar342/youtube-dashboard-server/domain/repository"
	"github.com/omkar342/youtube-dashboard-server/infrastructure/logger"

	"cloud.google.com/go/pubsub"
)

// NewPubSub connects a Pub/Sub client for the given project.
func NewPubSub(ctx context.Context, projectID string) (*pubsub.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("pubsub project ID is not configured")
	}
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}
	return client, nil
}

// BroadcastingAuditLog decorates an audit sink with a best-effort Pub/Sub
// fan-out. The durable append drives the result; a publish failure is logged
// and otherwise ignored.
type BroadcastingAuditLog struct {
	inner  repository.IAuditLog
	client *pubsub.Client
	topic  string
}

func NewBroadcastingAuditLog(inner repository.IAuditLog, client *pubsub.Client, topic string) repository.IAuditLog {
	return &BroadcastingAuditLog{inner: inner, client: client, topic: topic}
}

func (b *BroadcastingAuditLog) Append(ctx context.Context, event model.AuditEvent) error {
	if err := b.inner.Append(ctx, event); err != nil {
		return err
	}
	b.publish(ctx, event)
	return nil
}

func (b *BroadcastingAuditLog) publish(ctx context.Context, event model.AuditEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to encode audit event for broadcast")
		return
	}

	topic := b.client.Topic(b.topic)
	result := topic.Publish(ctx, &pubsub.Message{Data: payload})
	if _, err := result.Get(ctx); err != nil {
		logger.GetLogger().
			WithField("error", err).
			WithField("topic", b.topic).
			Warn("Audit event broadcast failed")
	}
}
