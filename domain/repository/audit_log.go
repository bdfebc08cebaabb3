package repository

import (
	"context"

	"github.com/omkar342/youtube-dashboard-server/domain/model"
)

// IAuditLog is the append-only sink for audit events. Implementations must
// treat each append as atomic and independently durable; no ordering between
// concurrent appends is promised. The core has no read path.
type IAuditLog interface {
	Append(ctx context.Context, event model.AuditEvent) error
}
