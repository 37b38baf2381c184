package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/epfafrica/user-service/internal/core/domain"
	"github.com/epfafrica/user-service/internal/core/ports"
)

type seedUser struct {
	username  string
	email     string
	password  string
	firstName string
	lastName  string
	roles     []string
}

var defaultSeedUsers = []seedUser{
	{"admin", "admin@epfafrica.com", "admin123", "Admin", "EPF", []string{domain.RoleAdmin, domain.RoleUser}},
	{"student", "student@epfafrica.com", "student123", "Test", "Student", []string{domain.RoleUser}},
}

// SeedUsers creates the default accounts on first boot. A non-empty store is
// left untouched, and duplicate-identity errors are tolerated so multiple
// instances can race the seed safely.
func SeedUsers(ctx context.Context, users ports.UserRepository, hasher PasswordHasher, log zerolog.Logger) error {
	n, err := users.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if n > 0 {
		return nil
	}

	log.Info().Msg("empty user store, seeding default accounts")

	for _, sd := range defaultSeedUsers {
		hash, err := hasher.Hash(sd.password)
		if err != nil {
			return fmt.Errorf("seed users: hash password: %w", err)
		}

		now := time.Now().UTC()
		user := &domain.User{
			Username:     sd.username,
			Email:        sd.email,
			PasswordHash: hash,
			FirstName:    sd.firstName,
			LastName:     sd.lastName,
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		for _, role := range sd.roles {
			user.AddRole(role)
		}

		if _, err := users.Create(ctx, user); err != nil {
			if errors.Is(err, domain.ErrDuplicateIdentity) {
				log.Debug().Str("username", sd.username).Msg("seed user already exists")
				continue
			}
			return fmt.Errorf("seed users: %w", err)
		}
		log.Info().Str("username", sd.username).Msg("seed user created")
	}

	return nil
}
