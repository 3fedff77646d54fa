package clients

import (
	"context"

	"github.com/leoAraujo20/lu-estilo-api/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, client *models.Client) (*models.Client, error)
	GetByID(ctx context.Context, id string) (*models.Client, error)
	List(ctx context.Context, filter models.ClientFilter) ([]*models.Client, error)
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id string) error
}
