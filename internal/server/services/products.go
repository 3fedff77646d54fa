package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/leoAraujo20/lu-estilo-api/internal/server/models"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/repositories/repomanager"
)

// ProductUpdate is a partial update: nil fields are left unchanged.
// ExpirationDate is a double pointer so "clear the date" (non-nil pointing
// at nil) and "leave it alone" (nil) stay distinguishable.
type ProductUpdate struct {
	Barcode        *string
	Description    *string
	PriceCents     *int64
	Section        *models.ProductSection
	Inventory      *int
	ExpirationDate **time.Time
}

// ProductService implements catalog CRUD on top of the repository layer.
type ProductService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProductService(db *sql.DB, m repomanager.RepositoryManager) *ProductService {
	return &ProductService{db: db, repomanager: m}
}

// Create adds a product to the catalog. A duplicate barcode yields
// common.ErrAlreadyExists.
func (s *ProductService) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	repo := s.repomanager.Products(s.db)
	return repo.Create(ctx, product)
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	repo := s.repomanager.Products(s.db)
	return repo.GetByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error) {
	repo := s.repomanager.Products(s.db)
	return repo.List(ctx, filter)
}

// Update applies a partial update and returns the updated product.
func (s *ProductService) Update(ctx context.Context, id string, update ProductUpdate) (*models.Product, error) {
	repo := s.repomanager.Products(s.db)

	product, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Barcode != nil {
		product.Barcode = *update.Barcode
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.PriceCents != nil {
		product.PriceCents = *update.PriceCents
	}
	if update.Section != nil {
		product.Section = *update.Section
	}
	if update.Inventory != nil {
		product.Inventory = *update.Inventory
	}
	if update.ExpirationDate != nil {
		product.ExpirationDate = *update.ExpirationDate
	}

	if err := repo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	repo := s.repomanager.Products(s.db)
	return repo.Delete(ctx, id)
}
