package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/epfafrica/user-service/internal/core/domain"
)

type stubEventRepo struct {
	events []domain.AuthEvent
	err    error
}

func (r *stubEventRepo) InsertEvent(_ context.Context, event *domain.AuthEvent) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, *event)
	return nil
}

func TestAuditService_Process(t *testing.T) {
	repo := &stubEventRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	event := domain.AuthEvent{
		Type:      domain.EventLoginSucceeded,
		Username:  "alice",
		UserID:    "user-1",
		Timestamp: time.Now().UTC(),
	}
	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if len(repo.events) != 1 || repo.events[0].Username != "alice" {
		t.Fatalf("event not persisted: %+v", repo.events)
	}
}

func TestAuditService_Process_RepoError(t *testing.T) {
	repo := &stubEventRepo{err: errors.New("insert failed")}
	svc := NewAuditService(repo, zerolog.Nop())

	if err := svc.Process(context.Background(), domain.AuthEvent{Type: domain.EventLoginFailed}); err == nil {
		t.Fatalf("expected error from repository")
	}
}
