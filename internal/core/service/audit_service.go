package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/epfafrica/user-service/internal/core/domain"
	"github.com/epfafrica/user-service/internal/core/ports"
)

type auditService struct {
	repo ports.AuthEventRepository
	log  zerolog.Logger
}

// NewAuditService returns the processor that persists authentication audit
// events drained from the dispatcher.
func NewAuditService(repo ports.AuthEventRepository, log zerolog.Logger) ports.AuthEventService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Process(ctx context.Context, event domain.AuthEvent) error {
	if err := s.repo.InsertEvent(ctx, &event); err != nil {
		return fmt.Errorf("audit event: %w", err)
	}

	s.log.Debug().
		Str("type", string(event.Type)).
		Str("username", event.Username).
		Msg("audit event recorded")

	return nil
}
