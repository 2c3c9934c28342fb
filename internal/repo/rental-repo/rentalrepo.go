package rentalrepo

import (
	"context"
	"time"

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

func (r *Repository) FindOpenByUserID(ctx context.Context, userID int) (*domain.Rental, error) {
	query := `
        SELECT id, user_id, car_id, started_at, ended_at, charge
        FROM rentals
        WHERE user_id = $1 AND ended_at IS NULL
    `
	return r.scanOne(ctx, query, userID)
}

// FindOpenByUserIDForUpdate locks the open rental row for check-in.
func (r *Repository) FindOpenByUserIDForUpdate(ctx context.Context, userID int) (*domain.Rental, error) {
	query := `
        SELECT id, user_id, car_id, started_at, ended_at, charge
        FROM rentals
        WHERE user_id = $1 AND ended_at IS NULL
        FOR UPDATE
    `
	return r.scanOne(ctx, query, userID)
}

func (r *Repository) scanOne(ctx context.Context, query string, userID int) (*domain.Rental, error) {
	row := r.db.QueryRow(ctx, query, userID)
	var rental domain.Rental
	err := row.Scan(&rental.ID, &rental.UserID, &rental.CarID, &rental.StartedAt, &rental.EndedAt, &rental.Charge)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find open rental", zap.Error(err))
		return nil, err
	}
	return &rental, nil
}

func (r *Repository) Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	query := `
        INSERT INTO rentals (user_id, car_id, started_at, charge)
        VALUES ($1, $2, $3, 0)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, rental.UserID, rental.CarID, rental.StartedAt).Scan(&rental.ID)
	if err != nil {
		zap.L().Error("can't create rental", zap.Error(err))
		return nil, err
	}
	return rental, nil
}

func (r *Repository) Close(ctx context.Context, rentalID int, endedAt time.Time, charge int64) error {
	query := `
        UPDATE rentals
        SET ended_at = $1, charge = $2
        WHERE id = $3 AND ended_at IS NULL
    `
	_, err := r.db.Exec(ctx, query, endedAt, charge, rentalID)
	if err != nil {
		zap.L().Error("can't close rental", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.Rental, error) {
	query := `
        SELECT id, user_id, car_id, started_at, ended_at, charge
        FROM rentals
        WHERE user_id = $1
        ORDER BY started_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list rentals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rental domain.Rental
		err := rows.Scan(&rental.ID, &rental.UserID, &rental.CarID, &rental.StartedAt, &rental.EndedAt, &rental.Charge)
		if err != nil {
			zap.L().Error("can't scan rental row", zap.Error(err))
			return nil, err
		}
		rentals = append(rentals, rental)
	}
	return rentals, nil
}
