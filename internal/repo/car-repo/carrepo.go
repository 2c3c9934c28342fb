package carrepo

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

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Car, error) {
	query := `
        SELECT id, name, image_url, enabled, in_use, rent_fee, sale_fee
        FROM cars
        WHERE id = $1
    `
	return r.scanOne(ctx, query, id)
}

// FindByIDForUpdate locks the car row; check-out and check-in load the
// car through this so conflicting calls serialize on the row lock.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Car, error) {
	query := `
        SELECT id, name, image_url, enabled, in_use, rent_fee, sale_fee
        FROM cars
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanOne(ctx, query, id)
}

func (r *Repository) scanOne(ctx context.Context, query string, id int64) (*domain.Car, error) {
	row := r.db.QueryRow(ctx, query, id)
	var car domain.Car
	err := row.Scan(&car.ID, &car.Name, &car.ImageURL, &car.Enabled, &car.InUse, &car.RentFee, &car.SaleFee)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find car", zap.Error(err))
		return nil, err
	}
	return &car, nil
}

func (r *Repository) ListIDs(ctx context.Context) ([]int64, error) {
	query := `
        SELECT id
        FROM cars
        ORDER BY created_at, id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list car ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan car id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *Repository) Create(ctx context.Context, car *domain.Car) error {
	query := `
        INSERT INTO cars (id, name, image_url, enabled, in_use, rent_fee, sale_fee)
        VALUES ($1, $2, $3, $4, FALSE, $5, $6)
    `
	_, err := r.db.Exec(ctx, query, car.ID, car.Name, car.ImageURL, car.Enabled, car.RentFee, car.SaleFee)
	if err != nil {
		zap.L().Error("can't save car", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, car *domain.Car) error {
	query := `
        UPDATE cars
        SET name = $1, image_url = $2, enabled = $3, rent_fee = $4, sale_fee = $5
        WHERE id = $6
    `
	_, err := r.db.Exec(ctx, query, car.Name, car.ImageURL, car.Enabled, car.RentFee, car.SaleFee, car.ID)
	if err != nil {
		zap.L().Error("can't update car", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	query := `
        UPDATE cars
        SET enabled = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, enabled, id)
	if err != nil {
		zap.L().Error("can't set car enabled flag", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetInUse(ctx context.Context, id int64, inUse bool) error {
	query := `
        UPDATE cars
        SET in_use = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, inUse, id)
	if err != nil {
		zap.L().Error("can't set car in_use flag", zap.Error(err))
		return err
	}
	return nil
}
