package adminrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/carrental/internal/pg"
	"go.uber.org/zap"
)

// Repository manages the single-row ownership table holding the current
// administrator.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// GetAdminID returns 0 when no administrator has been seeded yet.
func (r *Repository) GetAdminID(ctx context.Context) (int, error) {
	var adminID int
	query := `SELECT admin_user_id FROM ownership WHERE id = 1`
	err := r.db.QueryRow(ctx, query).Scan(&adminID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil
		}
		zap.L().Error("can't get admin id", zap.Error(err))
		return 0, err
	}
	return adminID, nil
}

func (r *Repository) SetAdminID(ctx context.Context, userID int) error {
	query := `
        INSERT INTO ownership (id, admin_user_id)
        VALUES (1, $1)
        ON CONFLICT (id) DO UPDATE SET admin_user_id = EXCLUDED.admin_user_id
    `
	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't set admin id", zap.Error(err))
		return err
	}
	return nil
}
