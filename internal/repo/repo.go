package repo

import (
	"github.com/GlebRadaev/carrental/internal/pg"
	adminrepo "github.com/GlebRadaev/carrental/internal/repo/admin-repo"
	balancerepo "github.com/GlebRadaev/carrental/internal/repo/balance-repo"
	carrepo "github.com/GlebRadaev/carrental/internal/repo/car-repo"
	paymentrepo "github.com/GlebRadaev/carrental/internal/repo/payment-repo"
	rentalrepo "github.com/GlebRadaev/carrental/internal/repo/rental-repo"
	userrepo "github.com/GlebRadaev/carrental/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo    *userrepo.Repository
	CarRepo     *carrepo.Repository
	BalanceRepo *balancerepo.Repository
	RentalRepo  *rentalrepo.Repository
	PaymentRepo *paymentrepo.Repository
	AdminRepo   *adminrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		CarRepo:     carrepo.New(conn),
		BalanceRepo: balancerepo.New(conn),
		RentalRepo:  rentalrepo.New(conn),
		PaymentRepo: paymentrepo.New(conn),
		AdminRepo:   adminrepo.New(conn),
	}
}
