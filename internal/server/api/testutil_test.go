package api

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"github.com/leoAraujo20/lu-estilo-api/internal/common"
	"github.com/leoAraujo20/lu-estilo-api/internal/dbx"
	"github.com/leoAraujo20/lu-estilo-api/internal/logging"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/auth"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/config"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/models"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/repositories/clients"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/repositories/orders"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/repositories/products"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/repositories/users"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/services"
)

const (
	testSecret    = "test-secret"
	testAlgorithm = "HS256"
)

// memStore is an in-memory repository manager backing the HTTP tests. Every
// repository ignores the DBTX it is handed.
type memStore struct {
	users    map[string]*models.User
	clients  map[string]*models.Client
	products map[string]*models.Product
	orders   map[string]*models.Order
	seq      int
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[string]*models.User),
		clients:  make(map[string]*models.Client),
		products: make(map[string]*models.Product),
		orders:   make(map[string]*models.Order),
	}
}

func (m *memStore) nextID(prefix string) string {
	m.seq++
	// UUID-shaped so path validation accepts it.
	return fmt.Sprintf("00000000-0000-0000-000%s-%012d", prefix, m.seq)
}

func (m *memStore) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }

func (m *memStore) Users(db dbx.DBTX) users.Repository       { return (*memUserRepo)(m) }
func (m *memStore) Clients(db dbx.DBTX) clients.Repository   { return (*memClientRepo)(m) }
func (m *memStore) Products(db dbx.DBTX) products.Repository { return (*memProductRepo)(m) }
func (m *memStore) Orders(db dbx.DBTX) orders.Repository     { return (*memOrderRepo)(m) }

type memUserRepo memStore

func (r *memUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, common.ErrAlreadyExists
		}
	}
	user.ID = (*memStore)(r).nextID("1")
	r.users[user.ID] = user
	return user, nil
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (r *memUserRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

type memClientRepo memStore

func (r *memClientRepo) Create(ctx context.Context, client *models.Client) (*models.Client, error) {
	for _, c := range r.clients {
		if c.Email == client.Email || c.CPF == client.CPF {
			return nil, common.ErrAlreadyExists
		}
	}
	client.ID = (*memStore)(r).nextID("2")
	r.clients[client.ID] = client
	return client, nil
}

func (r *memClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	if c, ok := r.clients[id]; ok {
		return c, nil
	}
	return nil, common.ErrorNotFound
}

func (r *memClientRepo) List(ctx context.Context, filter models.ClientFilter) ([]*models.Client, error) {
	out := []*models.Client{}
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *memClientRepo) Update(ctx context.Context, client *models.Client) error {
	if _, ok := r.clients[client.ID]; !ok {
		return common.ErrorNotFound
	}
	r.clients[client.ID] = client
	return nil
}

func (r *memClientRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.clients[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.clients, id)
	return nil
}

type memProductRepo memStore

func (r *memProductRepo) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	for _, p := range r.products {
		if p.Barcode == product.Barcode {
			return nil, common.ErrAlreadyExists
		}
	}
	product.ID = (*memStore)(r).nextID("3")
	r.products[product.ID] = product
	return product, nil
}

func (r *memProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, common.ErrorNotFound
}

func (r *memProductRepo) List(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error) {
	out := []*models.Product{}
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) Update(ctx context.Context, product *models.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return common.ErrorNotFound
	}
	r.products[product.ID] = product
	return nil
}

func (r *memProductRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.products, id)
	return nil
}

type memOrderRepo memStore

func (r *memOrderRepo) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	order.ID = (*memStore)(r).nextID("4")
	r.orders[order.ID] = order
	return order, nil
}

func (r *memOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	if o, ok := r.orders[id]; ok {
		return o, nil
	}
	return nil, common.ErrorNotFound
}

func (r *memOrderRepo) List(ctx context.Context, filter models.OrderFilter) ([]*models.Order, error) {
	out := []*models.Order{}
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *memOrderRepo) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	o, ok := r.orders[id]
	if !ok {
		return common.ErrorNotFound
	}
	o.Status = status
	return nil
}

func (r *memOrderRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.orders[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.orders, id)
	return nil
}

type testEnv struct {
	router *gin.Engine
	store  *memStore
	mock   sqlmock.Sqlmock
}

// newTestEnv builds a full router over the in-memory store. The sqlmock
// connection only sees transaction begin/commit pairs from order creation.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		EndpointAddrHTTP:            ":0",
		SecretKey:                   testSecret,
		SigningAlgorithm:            testAlgorithm,
		AccessTokenValidityDuration: 30 * time.Minute,
	}

	store := newMemStore()

	us, err := services.NewUserService(db, store, cfg)
	if err != nil {
		t.Fatalf("NewUserService error: %v", err)
	}
	cs := services.NewClientService(db, store)
	ps := services.NewProductService(db, store)
	ords := services.NewOrderService(db, store)

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	srv, err := NewServer(logger, us, cs, ps, ords, cfg)
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}

	return &testEnv{router: srv.router(), store: store, mock: mock}
}

// seedUser inserts an account directly into the store, bypassing the API.
func (e *testEnv) seedUser(t *testing.T, username, password string, role auth.Role) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	u, err := e.store.Users(nil).Create(context.Background(), &models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		t.Fatalf("seed user error: %v", err)
	}
	return u
}
