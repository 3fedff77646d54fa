// Package repomanager hands out repositories bound to an arbitrary DBTX
// (pool or transaction) and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/leoAraujo20/lu-estilo-api/internal/dbx"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/repositories/clients"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/repositories/orders"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/repositories/products"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Clients(db dbx.DBTX) clients.Repository
	Products(db dbx.DBTX) products.Repository
	Orders(db dbx.DBTX) orders.Repository
}
