// Package orders provides a PostgreSQL-backed repository for orders and
// their items.
package orders

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

// Create inserts the order row followed by one row per item. Run it over a
// transaction handle so a failed item insert rolls the order back.
func (r *PostgresRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	query :=
		`INSERT INTO orders (client_id, status)
		 VALUES ($1, $2)
		 RETURNING id, order_date
		 `

	err := r.db.QueryRowContext(ctx, query,
		order.ClientID, string(order.Status)).Scan(&order.ID, &order.OrderDate)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	itemQuery :=
		`INSERT INTO order_items (order_id, product_id, quantity)
		 VALUES ($1, $2, $3)
		 `

	for _, item := range order.Items {
		if _, err := r.db.ExecContext(ctx, itemQuery, order.ID, item.ProductID, item.Quantity); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
	}

	return order, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	query :=
		`SELECT id, client_id, status, order_date FROM orders
		 WHERE id = $1
		 `

	order := &models.Order{}
	var status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.ClientID, &status, &order.OrderDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	order.Status, err = models.ParseOrderStatus(status)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	order.Items, err = r.loadItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// List returns a page of orders with their items, optionally filtered by
// status and client.
func (r *PostgresRepository) List(ctx context.Context, filter models.OrderFilter) ([]*models.Order, error) {
	query :=
		`SELECT id, client_id, status, order_date FROM orders
		 WHERE ($1 = '' OR status = $1)
		   AND ($2 = '' OR client_id::text = $2)
		 ORDER BY order_date, id
		 LIMIT $3 OFFSET $4
		 `

	rows, err := r.db.QueryContext(ctx, query,
		string(filter.Status), filter.ClientID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	orderList := []*models.Order{}
	for rows.Next() {
		order := &models.Order{}
		var status string
		if err := rows.Scan(&order.ID, &order.ClientID, &status, &order.OrderDate); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		order.Status, err = models.ParseOrderStatus(status)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		orderList = append(orderList, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	for _, order := range orderList {
		order.Items, err = r.loadItems(ctx, order.ID)
		if err != nil {
			return nil, err
		}
	}

	return orderList, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	query :=
		`UPDATE orders SET status = $2
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id, string(status))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return requireAffected(res)
}

// Delete removes the order; its items go with it via ON DELETE CASCADE.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query :=
		`DELETE FROM orders
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return requireAffected(res)
}

func (r *PostgresRepository) loadItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	query :=
		`SELECT product_id, quantity FROM order_items
		 WHERE order_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		item := models.OrderItem{}
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
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
