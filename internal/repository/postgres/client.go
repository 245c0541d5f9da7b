package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wheelshare-backend/internal/domain"
	"wheelshare-backend/internal/repository"
)

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	c := &domain.Client{}
	query := `SELECT id, name, email, COALESCE(phone, ''), created_on FROM clients WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("client %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *clientRepository) HasVerifiedDocument(ctx context.Context, clientID int32) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM driving_documents WHERE client_id = $1 AND status = 'VERIFIED')`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, clientID).Scan(&exists)
	return exists, err
}
