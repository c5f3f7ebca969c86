// Package seed bootstraps well-known test accounts on startup. It is meant
// for development and demo environments and is disabled by default.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codigofacilito/blog-backend/internal/config"
	"github.com/codigofacilito/blog-backend/internal/logger"
	"github.com/codigofacilito/blog-backend/internal/model"
	"github.com/codigofacilito/blog-backend/internal/password"
)

// Seeder ensures the bootstrap accounts exist.
type Seeder struct {
	userStore model.UserStore
	cfg       config.Seed
	logger    *logger.Logger
}

// New creates a new Seeder instance.
func New(userStore model.UserStore, cfg config.Seed, logger *logger.Logger) *Seeder {
	return &Seeder{
		userStore: userStore,
		cfg:       cfg,
		logger:    logger,
	}
}

// Run creates the admin and user test accounts if they are missing.
// Accounts are keyed by email, so repeated startups leave existing rows
// untouched.
func (s *Seeder) Run(ctx context.Context) error {
	if !s.cfg.Enabled {
		return nil
	}

	accounts := []struct {
		username string
		email    string
		password string
		roles    []string
	}{
		{"admin_usr", s.cfg.AdminEmail, s.cfg.AdminPassword, []string{model.RoleAdmin, model.RoleUser}},
		{"test_user", s.cfg.UserEmail, s.cfg.UserPassword, []string{model.RoleUser}},
	}

	for _, account := range accounts {
		if err := s.ensure(ctx, account.username, account.email, account.password, account.roles); err != nil {
			return err
		}
	}

	return nil
}

func (s *Seeder) ensure(ctx context.Context, username, email, plaintext string, roles []string) error {
	_, err := s.userStore.GetByEmail(ctx, email)
	if err == nil {
		s.logger.Debug("seed: account already exists", "email", email)
		return nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to look up seed account: %w", err)
	}

	digest, err := password.Hash(plaintext)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: digest,
		Roles:        roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.userStore.Create(ctx, user); err != nil {
		// Another instance may have created the row between the lookup
		// and the insert.
		if errors.Is(err, model.ErrDuplicateEmail) {
			return nil
		}
		return fmt.Errorf("failed to create seed account: %w", err)
	}

	s.logger.Info("seed: account created", "email", email, "roles", roles)
	return nil
}
