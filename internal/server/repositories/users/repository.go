package users

import (
	"context"

	"github.com/leoAraujo20/lu-estilo-api/internal/server/models"
)

// Repository is the credential store consumed by the authentication core.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
