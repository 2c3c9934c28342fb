package balancerepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/carrental/internal/domain"
	"github.com/GlebRadaev/carrental/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT id, user_id, current_balance, debt_total
        FROM balances
        WHERE user_id = $1
    `
	return r.scanOne(ctx, query, userID)
}

// GetByUserIDForUpdate locks the balance row for the rest of the
// surrounding transaction.
func (r *Repository) GetByUserIDForUpdate(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT id, user_id, current_balance, debt_total
        FROM balances
        WHERE user_id = $1
        FOR UPDATE
    `
	return r.scanOne(ctx, query, userID)
}

func (r *Repository) scanOne(ctx context.Context, query string, userID int) (*domain.Balance, error) {
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance, &balance.DebtTotal)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) Create(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        INSERT INTO balances (user_id, current_balance, debt_total)
        VALUES ($1, 0, 0)
        RETURNING id, user_id, current_balance, debt_total
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance, &balance.DebtTotal)
	if err != nil {
		zap.L().Error("failed to create user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) Update(ctx context.Context, userID int, balance *domain.Balance) (*domain.Balance, error) {
	var updated domain.Balance
	query := `
		UPDATE balances
		SET current_balance = $1, debt_total = $2
		WHERE user_id = $3
		RETURNING id, user_id, current_balance, debt_total
	`
	row := r.db.QueryRow(ctx, query, balance.CurrentBalance, balance.DebtTotal, userID)
	err := row.Scan(&updated.ID, &updated.UserID, &updated.CurrentBalance, &updated.DebtTotal)
	if err != nil {
		zap.L().Error("failed to update user balance", zap.Error(err))
		return nil, err
	}
	return &updated, nil
}
