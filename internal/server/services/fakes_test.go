package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/leoAraujo20/lu-estilo-api/internal/common"
	"github.com/leoAraujo20/lu-estilo-api/internal/dbx"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/models"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/repositories/clients"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/repositories/orders"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/repositories/products"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/repositories/users"
)

// In-memory repository fakes. The manager hands out the same instances
// regardless of the DBTX, which is fine for service-level tests.

type fakeUserRepo struct {
	byID     map[string]*models.User
	seq      int
	createFn func(ctx context.Context, user *models.User) (*models.User, error)
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if r.createFn != nil {
		return r.createFn(ctx, user)
	}
	for _, u := range r.byID {
		if u.Username == user.Username {
			return nil, common.ErrAlreadyExists
		}
	}
	r.seq++
	user.ID = fmt.Sprintf("u-%d", r.seq)
	r.byID[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	u, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

type fakeClientRepo struct {
	byID map[string]*models.Client
	seq  int
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{byID: make(map[string]*models.Client)}
}

func (r *fakeClientRepo) Create(ctx context.Context, client *models.Client) (*models.Client, error) {
	for _, c := range r.byID {
		if c.Email == client.Email || c.CPF == client.CPF {
			return nil, common.ErrAlreadyExists
		}
	}
	r.seq++
	client.ID = fmt.Sprintf("c-%d", r.seq)
	r.byID[client.ID] = client
	return client, nil
}

func (r *fakeClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	if c, ok := r.byID[id]; ok {
		return c, nil
	}
	return nil, common.ErrorNotFound
}

func (r *fakeClientRepo) List(ctx context.Context, filter models.ClientFilter) ([]*models.Client, error) {
	var out []*models.Client
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeClientRepo) Update(ctx context.Context, client *models.Client) error {
	if _, ok := r.byID[client.ID]; !ok {
		return common.ErrorNotFound
	}
	r.byID[client.ID] = client
	return nil
}

func (r *fakeClientRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeProductRepo struct {
	byID map[string]*models.Product
	seq  int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: make(map[string]*models.Product)}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	for _, p := range r.byID {
		if p.Barcode == product.Barcode {
			return nil, common.ErrAlreadyExists
		}
	}
	r.seq++
	product.ID = fmt.Sprintf("p-%d", r.seq)
	r.byID[product.ID] = product
	return product, nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	if p, ok := r.byID[id]; ok {
		return p, nil
	}
	return nil, common.ErrorNotFound
}

func (r *fakeProductRepo) List(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error) {
	var out []*models.Product
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *models.Product) error {
	if _, ok := r.byID[product.ID]; !ok {
		return common.ErrorNotFound
	}
	r.byID[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeOrderRepo struct {
	byID     map[string]*models.Order
	seq      int
	createFn func(ctx context.Context, order *models.Order) (*models.Order, error)
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{byID: make(map[string]*models.Order)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if r.createFn != nil {
		return r.createFn(ctx, order)
	}
	r.seq++
	order.ID = fmt.Sprintf("o-%d", r.seq)
	r.byID[order.ID] = order
	return order, nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	if o, ok := r.byID[id]; ok {
		return o, nil
	}
	return nil, common.ErrorNotFound
}

func (r *fakeOrderRepo) List(ctx context.Context, filter models.OrderFilter) ([]*models.Order, error) {
	var out []*models.Order
	for _, o := range r.byID {
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	o, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	o.Status = status
	return nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeRepoManager struct {
	users    *fakeUserRepo
	clients  *fakeClientRepo
	products *fakeProductRepo
	orders   *fakeOrderRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:    newFakeUserRepo(),
		clients:  newFakeClientRepo(),
		products: newFakeProductRepo(),
		orders:   newFakeOrderRepo(),
	}
}

func (m *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository { return m.users }

func (m *fakeRepoManager) Clients(db dbx.DBTX) clients.Repository { return m.clients }

func (m *fakeRepoManager) Products(db dbx.DBTX) products.Repository { return m.products }

func (m *fakeRepoManager) Orders(db dbx.DBTX) orders.Repository { return m.orders }
