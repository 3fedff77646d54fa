package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/leoAraujo20/lu-estilo-api/internal/common"
	"github.com/leoAraujo20/lu-estilo-api/internal/dbx"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/models"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/repositories/repomanager"
)

// OrderService implements order CRUD. Creation validates the client and all
// products, checks inventory, and inserts the order with its items in one
// transaction.
type OrderService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewOrderService(db *sql.DB, m repomanager.RepositoryManager) *OrderService {
	return &OrderService{db: db, repomanager: m}
}

// Create places a new order for a client. The client must exist, every
// referenced product must exist, and each product's inventory must cover the
// requested quantity (common.ErrInsufficientInventory otherwise). The order
// and its items are committed atomically.
func (s *OrderService) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if order.Status == "" {
		order.Status = models.OrderPending
	}

	if _, err := s.repomanager.Clients(s.db).GetByID(ctx, order.ClientID); err != nil {
		return nil, err
	}

	productRepo := s.repomanager.Products(s.db)
	for _, item := range order.Items {
		product, err := productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil, fmt.Errorf("product %s: %w", item.ProductID, common.ErrorNotFound)
			}
			return nil, err
		}
		if product.Inventory < item.Quantity {
			return nil, fmt.Errorf("product %s: %w", product.ID, common.ErrInsufficientInventory)
		}
	}

	var created *models.Order
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.Orders(tx)
		var txErr error
		created, txErr = repoTx.Create(ctx, order)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	repo := s.repomanager.Orders(s.db)
	return repo.GetByID(ctx, id)
}

func (s *OrderService) List(ctx context.Context, filter models.OrderFilter) ([]*models.Order, error) {
	repo := s.repomanager.Orders(s.db)
	return repo.List(ctx, filter)
}

// UpdateStatus moves the order to a new lifecycle state and returns the
// updated order.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	repo := s.repomanager.Orders(s.db)

	if err := repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	return repo.GetByID(ctx, id)
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	repo := s.repomanager.Orders(s.db)
	return repo.Delete(ctx, id)
}
