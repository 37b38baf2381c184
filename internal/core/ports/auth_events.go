package ports

import (
	"context"

	"github.com/epfafrica/user-service/internal/core/domain"
)

// AuthEventRecorder accepts audit events for asynchronous processing.
// Record must not block the calling request beyond a bounded enqueue.
type AuthEventRecorder interface {
	Record(event domain.AuthEvent)
}

// AuthEventService processes a single audit event.
type AuthEventService interface {
	Process(ctx context.Context, event domain.AuthEvent) error
}

// AuthEventRepository persists audit events to the auth_events collection.
type AuthEventRepository interface {
	InsertEvent(ctx context.Context, event *domain.AuthEvent) error
}
