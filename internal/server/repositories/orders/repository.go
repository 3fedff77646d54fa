package orders

import (
	"context"

	"github.com/leoAraujo20/lu-estilo-api/internal/server/models"
)

type Repository interface {
	// Create inserts the order row and all of its items. Callers that need
	// atomicity construct the repository over a transaction handle.
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context, filter models.OrderFilter) ([]*models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error
	Delete(ctx context.Context, id string) error
}
