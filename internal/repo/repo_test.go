package repo

import (
	"testing"

	adminrepo "github.com/GlebRadaev/carrental/internal/repo/admin-repo"
	balancerepo "github.com/GlebRadaev/carrental/internal/repo/balance-repo"
	carrepo "github.com/GlebRadaev/carrental/internal/repo/car-repo"
	paymentrepo "github.com/GlebRadaev/carrental/internal/repo/payment-repo"
	rentalrepo "github.com/GlebRadaev/carrental/internal/repo/rental-repo"
	userrepo "github.com/GlebRadaev/carrental/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.CarRepo)
	assert.NotNil(t, repo.BalanceRepo)
	assert.NotNil(t, repo.RentalRepo)
	assert.NotNil(t, repo.PaymentRepo)
	assert.NotNil(t, repo.AdminRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &carrepo.Repository{}, repo.CarRepo)
	assert.IsType(t, &balancerepo.Repository{}, repo.BalanceRepo)
	assert.IsType(t, &rentalrepo.Repository{}, repo.RentalRepo)
	assert.IsType(t, &paymentrepo.Repository{}, repo.PaymentRepo)
	assert.IsType(t, &adminrepo.Repository{}, repo.AdminRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
