// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, password changes, and
// issuing/refreshing JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/leoAraujo20/lu-estilo-api/internal/common"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/auth"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/config"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/models"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create accounts
// - Login: verify credentials and mint a token
// - Refresh: mint a new token for an already-authenticated principal
// - ChangePassword: rotate the stored credential
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	signingMethod               jwt.SigningMethod
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server
// config. It fails when the configured signing algorithm is unknown, so a
// misconfigured process never starts issuing tokens.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) (*UserService, error) {
	method, err := auth.SigningMethod(cfg.SigningAlgorithm)
	if err != nil {
		return nil, err
	}

	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		signingMethod:               method,
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}, nil
}

// Register creates a new account with the given role. The password is hashed
// before it reaches the repository. A taken username yields
// common.ErrAlreadyExists.
func (s *UserService) Register(ctx context.Context, username, password string, role auth.Role) (*models.User, error) {
	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: username, PasswordHash: passwordHash, Role: role}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	return u, nil
}

// Login verifies the credentials and returns a fresh access token. An
// unknown username and a wrong password both yield the same
// common.ErrInvalidCredentials, so the caller learns nothing about which
// field was wrong.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", common.ErrorInternal
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", common.ErrInvalidCredentials
	}

	return s.generateAccessToken(user)
}

// Refresh issues a new access token for a principal that already passed
// verification. The credential store is not consulted.
func (s *UserService) Refresh(ctx context.Context, principal *auth.Principal) (string, error) {
	if principal == nil {
		return "", common.ErrMissingCredentials
	}

	token, err := auth.GenerateToken(principal.UserID, principal.Role, s.jwtSecret, s.signingMethod, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// ChangePassword replaces the stored hash after verifying the old password.
// A wrong old password yields common.ErrInvalidCredentials.
func (s *UserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrInvalidCredentials
		}
		return common.ErrorInternal
	}

	if !auth.VerifyPassword(oldPassword, user.PasswordHash) {
		return common.ErrInvalidCredentials
	}

	passwordHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := repo.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		return common.ErrorInternal
	}

	return nil
}

func (s *UserService) generateAccessToken(user *models.User) (string, error) {
	token, err := auth.GenerateToken(user.ID, user.Role, s.jwtSecret, s.signingMethod, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}
