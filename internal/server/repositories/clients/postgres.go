// Package clients provides a PostgreSQL-backed repository for store clients.
package clients

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

// Create inserts a new client. A duplicate email or CPF yields
// common.ErrAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, client *models.Client) (*models.Client, error) {
	query :=
		`INSERT INTO clients (name, email, cpf)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		client.Name, client.Email, client.CPF).Scan(&client.ID, &client.CreatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return client, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Client, error) {
	query :=
		`SELECT id, name, email, cpf, created_at FROM clients
		 WHERE id = $1
		 `

	client := &models.Client{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&client.ID, &client.Name, &client.Email, &client.CPF, &client.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return client, nil
}

// List returns a page of clients, optionally filtered by a name substring
// (case-insensitive) and exact email.
func (r *PostgresRepository) List(ctx context.Context, filter models.ClientFilter) ([]*models.Client, error) {
	query :=
		`SELECT id, name, email, cpf, created_at FROM clients
		 WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		   AND ($2 = '' OR email = $2)
		 ORDER BY created_at, id
		 LIMIT $3 OFFSET $4
		 `

	rows, err := r.db.QueryContext(ctx, query, filter.Name, filter.Email, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	clients := []*models.Client{}
	for rows.Next() {
		client := &models.Client{}
		if err := rows.Scan(&client.ID, &client.Name, &client.Email, &client.CPF, &client.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return clients, nil
}

// Update rewrites the mutable fields (name, email) of an existing client.
func (r *PostgresRepository) Update(ctx context.Context, client *models.Client) error {
	query :=
		`UPDATE clients SET name = $2, email = $3
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, client.ID, client.Name, client.Email)
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
		`DELETE FROM clients
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return requireAffected(res)
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
