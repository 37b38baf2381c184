package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/epfafrica/user-service/internal/core/domain"
	"github.com/epfafrica/user-service/internal/core/security"
)

func TestSeedUsers_EmptyStore(t *testing.T) {
	repo := newStubUserRepo()
	hasher := security.NewBcryptHasher(bcrypt.MinCost)

	if err := SeedUsers(context.Background(), repo, hasher, zerolog.Nop()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	admin, err := repo.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("admin not seeded: %v", err)
	}
	if !admin.HasRole(domain.RoleAdmin) || !admin.HasRole(domain.RoleUser) {
		t.Fatalf("unexpected admin roles: %v", admin.Roles)
	}
	if !admin.Active {
		t.Fatalf("expected seeded admin to be active")
	}
	if !hasher.Verify("admin123", admin.PasswordHash) {
		t.Fatalf("admin password hash does not verify")
	}

	student, err := repo.FindByUsername(context.Background(), "student")
	if err != nil {
		t.Fatalf("student not seeded: %v", err)
	}
	if len(student.Roles) != 1 || student.Roles[0] != domain.RoleUser {
		t.Fatalf("unexpected student roles: %v", student.Roles)
	}
}

func TestSeedUsers_NonEmptyStoreUntouched(t *testing.T) {
	repo := newStubUserRepo()
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	svc := newTestService(repo, nil, nil)

	if _, err := svc.Register(context.Background(), registerInput("existing", "existing@example.com")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := SeedUsers(context.Background(), repo, hasher, zerolog.Nop()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if _, err := repo.FindByUsername(context.Background(), "admin"); err != domain.ErrUserNotFound {
		t.Fatalf("seed must not run against a non-empty store")
	}
}

func TestSeedUsers_TolerateDuplicateRace(t *testing.T) {
	// Count sees an empty store but another instance wins the insert race.
	repo := newStubUserRepo()
	repo.createErr = domain.ErrDuplicateIdentity
	hasher := security.NewBcryptHasher(bcrypt.MinCost)

	if err := SeedUsers(context.Background(), repo, hasher, zerolog.Nop()); err != nil {
		t.Fatalf("seed must tolerate duplicate errors, got: %v", err)
	}
}
