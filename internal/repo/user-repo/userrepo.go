package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/pawhaven/fundraising/internal/domain"
	"github.com/pawhaven/fundraising/internal/pg"
)

// Repository reads the user mirror owned by the identity service. Existence
// and role checks only; accounts are managed elsewhere.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, name, role FROM users WHERE id = $1", id).
		Scan(&user.ID, &user.Name, &user.Role)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindFirstAdmin(ctx context.Context) (*domain.User, error) {
	query := `
		SELECT id, name, role
		FROM users
		WHERE role = 'admin'
		ORDER BY id ASC
		LIMIT 1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query).Scan(&user.ID, &user.Name, &user.Role)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find admin user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}
