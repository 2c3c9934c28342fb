package service

import (
	"github.com/GlebRadaev/carrental/internal/handlers/auth"
	"github.com/GlebRadaev/carrental/internal/handlers/cars"
	"github.com/GlebRadaev/carrental/internal/handlers/rental"

	pkgauth "github.com/GlebRadaev/carrental/pkg/auth"
	"github.com/GlebRadaev/carrental/pkg/clock"

	"github.com/GlebRadaev/carrental/internal/pg"
	"github.com/GlebRadaev/carrental/internal/repo"
	authservice "github.com/GlebRadaev/carrental/internal/service/authservice"
	carservice "github.com/GlebRadaev/carrental/internal/service/carservice"
	rentalservice "github.com/GlebRadaev/carrental/internal/service/rentalservice"
)

type Services struct {
	AuthService   auth.Service
	CarService    cars.Service
	RentalService rental.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, clk clock.Clock) *Services {
	authService := authservice.New(repo.UserRepo, repo.BalanceRepo, &pkgauth.HashService{}, &pkgauth.JWTService{}, txManager)
	carService := carservice.New(repo.CarRepo, repo.AdminRepo, repo.UserRepo, txManager)
	rentalService := rentalservice.New(repo.UserRepo, repo.CarRepo, repo.BalanceRepo, repo.RentalRepo, repo.PaymentRepo, txManager, clk)

	return &Services{
		AuthService:   authService,
		CarService:    carService,
		RentalService: rentalService,
	}
}
