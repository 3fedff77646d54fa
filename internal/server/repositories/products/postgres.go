// Package products provides a PostgreSQL-backed repository for the product
// catalog.
package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/leoAraujo20/lu-estilo-api/internal/common"
	"github.com/leoAraujo20/lu-estilo-api/internal/dbx"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new product. A duplicate barcode yields
// common.ErrAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	query :=
		`INSERT INTO products (barcode, description, price_cents, section, inventory, expiration_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		product.Barcode, product.Description, product.PriceCents,
		string(product.Section), product.Inventory, product.ExpirationDate).
		Scan(&product.ID, &product.CreatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return product, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query :=
		`SELECT id, barcode, description, price_cents, section, inventory, expiration_date, created_at
		 FROM products
		 WHERE id = $1
		 `

	return scanProduct(r.db.QueryRowContext(ctx, query, id))
}

// List returns a page of products. Section filters by equality,
// MaxPriceCents caps the price, MinInventory sets an inventory floor.
func (r *PostgresRepository) List(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error) {
	query :=
		`SELECT id, barcode, description, price_cents, section, inventory, expiration_date, created_at
		 FROM products
		 WHERE ($1 = '' OR section = $1)
		   AND ($2 = 0 OR price_cents <= $2)
		   AND inventory >= $3
		 ORDER BY created_at, id
		 LIMIT $4 OFFSET $5
		 `

	rows, err := r.db.QueryContext(ctx, query,
		string(filter.Section), filter.MaxPriceCents, filter.MinInventory, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	productList := []*models.Product{}
	for rows.Next() {
		product, err := scanProductRow(rows)
		if err != nil {
			return nil, err
		}
		productList = append(productList, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return productList, nil
}

// Update rewrites all mutable fields of an existing product.
func (r *PostgresRepository) Update(ctx context.Context, product *models.Product) error {
	query :=
		`UPDATE products
		 SET barcode = $2, description = $3, price_cents = $4, section = $5, inventory = $6, expiration_date = $7
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		product.ID, product.Barcode, product.Description, product.PriceCents,
		string(product.Section), product.Inventory, product.ExpirationDate)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}

	return requireAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query :=
		`DELETE FROM products
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return requireAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row *sql.Row) (*models.Product, error) {
	product, err := scanProductRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return product, nil
}

func scanProductRow(row rowScanner) (*models.Product, error) {
	product := &models.Product{}
	var section string

	err := row.Scan(&product.ID, &product.Barcode, &product.Description,
		&product.PriceCents, &section, &product.Inventory,
		&product.ExpirationDate, &product.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	product.Section, err = models.ParseProductSection(section)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return product, nil
}

func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}
