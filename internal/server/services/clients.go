package services

import (
	"context"
	"database/sql"

	"github.com/leoAraujo20/lu-estilo-api/internal/server/models"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/repositories/repomanager"
)

// ClientUpdate is a partial update: nil fields are left unchanged.
type ClientUpdate struct {
	Name  *string
	Email *string
}

// ClientService implements client CRUD on top of the repository layer.
type ClientService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewClientService(db *sql.DB, m repomanager.RepositoryManager) *ClientService {
	return &ClientService{db: db, repomanager: m}
}

// Create registers a new client. Duplicate email or CPF yields
// common.ErrAlreadyExists.
func (s *ClientService) Create(ctx context.Context, name, email, cpf string) (*models.Client, error) {
	repo := s.repomanager.Clients(s.db)
	return repo.Create(ctx, &models.Client{Name: name, Email: email, CPF: cpf})
}

func (s *ClientService) Get(ctx context.Context, id string) (*models.Client, error) {
	repo := s.repomanager.Clients(s.db)
	return repo.GetByID(ctx, id)
}

func (s *ClientService) List(ctx context.Context, filter models.ClientFilter) ([]*models.Client, error) {
	repo := s.repomanager.Clients(s.db)
	return repo.List(ctx, filter)
}

// Update applies a partial update and returns the updated client.
func (s *ClientService) Update(ctx context.Context, id string, update ClientUpdate) (*models.Client, error) {
	repo := s.repomanager.Clients(s.db)

	client, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		client.Name = *update.Name
	}
	if update.Email != nil {
		client.Email = *update.Email
	}

	if err := repo.Update(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

func (s *ClientService) Delete(ctx context.Context, id string) error {
	repo := s.repomanager.Clients(s.db)
	return repo.Delete(ctx, id)
}
