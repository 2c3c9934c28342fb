package paymentrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
        INSERT INTO payments (user_id, amount, kind, processed_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, payment.UserID, payment.Amount, payment.Kind, payment.ProcessedAt).Scan(&payment.ID)
	if err != nil {
		zap.L().Error("can't create payment record", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.Payment, error) {
	query := `
        SELECT id, user_id, amount, kind, processed_at
        FROM payments
        WHERE user_id = $1
        ORDER BY processed_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		err := rows.Scan(&payment.ID, &payment.UserID, &payment.Amount, &payment.Kind, &payment.ProcessedAt)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, nil
}
