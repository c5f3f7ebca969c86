package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codigofacilito/blog-backend/internal/apierrors"
	"github.com/codigofacilito/blog-backend/internal/authz"
	"github.com/codigofacilito/blog-backend/internal/logger"
	"github.com/codigofacilito/blog-backend/internal/model"
	"github.com/codigofacilito/blog-backend/internal/password"
	"github.com/codigofacilito/blog-backend/internal/validate"
)

// User provides account registration, lookup, mutation and login.
type User struct {
	userStore    model.UserStore
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewUser(userStore model.UserStore, tokenManager model.TokenManager, logger *logger.Logger) *User {
	return &User{
		userStore:    userStore,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// LoginResult carries the authenticated user and their access token.
type LoginResult struct {
	User        model.User `json:"user"`
	AccessToken string     `json:"access_token"`
}

// Register validates and stores a new user account. Registration is
// self-service: no caller identity is required and the role defaults to USER.
func (s *User) Register(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	if err := validate.Username(params.Username); err != nil {
		return model.User{}, err
	}
	if err := validate.Email(params.Email); err != nil {
		return model.User{}, err
	}
	if err := validate.Password(params.Password); err != nil {
		return model.User{}, err
	}

	_, err := s.userStore.GetByEmail(ctx, params.Email)
	if err == nil {
		s.logger.Info("User service: email already registered", "email", params.Email)
		return model.User{}, apierrors.NewErrEmailIsTaken(params.Email)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	digest, err := password.Hash(params.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: digest,
		Roles:        []string{model.RoleUser},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := s.userStore.Create(ctx, user)
	if err != nil {
		// The unique constraint closes the small window between the
		// duplicate check above and the insert.
		if errors.Is(err, model.ErrDuplicateEmail) {
			return model.User{}, apierrors.NewErrEmailIsTaken(params.Email)
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user registered",
		"user_id", saved.ID,
		"username", saved.Username)

	return saved, nil
}

// Get returns a single user by id.
func (s *User) Get(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, apierrors.NewErrNotFound("user")
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// List returns every user. Admin only.
func (s *User) List(ctx context.Context, caller model.User) ([]model.User, error) {
	if !authz.IsAdmin(caller) {
		return nil, apierrors.NewErrForbidden()
	}

	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// Update applies a partial update to the target user. Allowed for the user
// themselves or an admin. A password change is re-validated and re-hashed.
func (s *User) Update(ctx context.Context, caller model.User, id uuid.UUID, params model.UpdateUserParams) (model.User, error) {
	if !authz.CanMutate(caller, id) {
		s.logger.Info("User service: update denied",
			"caller_id", caller.ID,
			"target_id", id)
		return model.User{}, apierrors.NewErrForbidden()
	}

	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, apierrors.NewErrNotFound("user")
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if params.Username != nil {
		if err := validate.Username(*params.Username); err != nil {
			return model.User{}, err
		}
		user.Username = *params.Username
	}
	if params.Email != nil {
		if err := validate.Email(*params.Email); err != nil {
			return model.User{}, err
		}
		user.Email = *params.Email
	}
	if params.Password != nil {
		if err := validate.Password(*params.Password); err != nil {
			return model.User{}, err
		}
		digest, err := password.Hash(*params.Password)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = digest
	}
	if params.Roles != nil {
		if err := validate.Roles(params.Roles); err != nil {
			return model.User{}, err
		}
		user.Roles = params.Roles
	}

	saved, err := s.userStore.Update(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			return model.User{}, apierrors.NewErrEmailIsTaken(user.Email)
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("User service: user updated",
		"user_id", saved.ID,
		"caller_id", caller.ID)

	return saved, nil
}

// Delete removes a user account. Admin only.
func (s *User) Delete(ctx context.Context, caller model.User, id uuid.UUID) error {
	if !authz.IsAdmin(caller) {
		s.logger.Info("User service: delete denied",
			"caller_id", caller.ID,
			"target_id", id)
		return apierrors.NewErrForbidden()
	}

	if err := s.userStore.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return apierrors.NewErrNotFound("user")
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User service: user deleted",
		"user_id", id,
		"caller_id", caller.ID)

	return nil
}

// Login validates credentials and issues an access token. Unknown email and
// wrong password produce the same response so the two cases cannot be told
// apart by a caller.
func (s *User) Login(ctx context.Context, email, plaintext string) (LoginResult, error) {
	if err := validate.Credentials(email, plaintext); err != nil {
		return LoginResult{}, err
	}

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return LoginResult{}, apierrors.NewErrUnauthenticated("invalid email or password")
		}
		return LoginResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !password.Verify(plaintext, user.PasswordHash) {
		s.logger.Info("User service: login failed", "email", email)
		return LoginResult{}, apierrors.NewErrUnauthenticated("invalid email or password")
	}

	accessToken, err := s.tokenManager.Issue(user.ID, user.Username)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	s.logger.Info("User service: login succeeded", "user_id", user.ID)

	return LoginResult{User: user, AccessToken: accessToken}, nil
}
