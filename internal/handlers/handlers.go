package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/carrental/docs"
	authhandlers "github.com/GlebRadaev/carrental/internal/handlers/auth"
	carshandlers "github.com/GlebRadaev/carrental/internal/handlers/cars"
	rentalhandlers "github.com/GlebRadaev/carrental/internal/handlers/rental"
	"github.com/GlebRadaev/carrental/internal/service"
	"github.com/GlebRadaev/carrental/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type CarsHandler interface {
	AddCar(w http.ResponseWriter, r *http.Request)
	EditCar(w http.ResponseWriter, r *http.Request)
	ActivateCar(w http.ResponseWriter, r *http.Request)
	DeactivateCar(w http.ResponseWriter, r *http.Request)
	GetCar(w http.ResponseWriter, r *http.Request)
	ListCars(w http.ResponseWriter, r *http.Request)
	IsAvailable(w http.ResponseWriter, r *http.Request)
	GetAdmin(w http.ResponseWriter, r *http.Request)
	TransferAdmin(w http.ResponseWriter, r *http.Request)
}

type RentalHandler interface {
	GetUser(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	MakePayment(w http.ResponseWriter, r *http.Request)
	GetPayments(w http.ResponseWriter, r *http.Request)
	GetRentals(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	CarsHandler   CarsHandler
	RentalHandler RentalHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		CarsHandler:   carshandlers.New(s.CarService),
		RentalHandler: rentalhandlers.New(s.RentalService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api/cars", func(r chi.Router) {
		r.Get("/", h.CarsHandler.ListCars)
		r.Get("/{id}", h.CarsHandler.GetCar)
		r.Get("/{id}/available", h.CarsHandler.IsAvailable)
	})

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Get("/", h.RentalHandler.GetUser)
			r.Route("/balance", func(r chi.Router) {
				r.Post("/deposit", h.RentalHandler.Deposit)
				r.Post("/pay", h.RentalHandler.MakePayment)
			})
			r.Route("/rental", func(r chi.Router) {
				r.Post("/checkout", h.RentalHandler.CheckOut)
				r.Post("/checkin", h.RentalHandler.CheckIn)
			})
			r.Get("/payments", h.RentalHandler.GetPayments)
			r.Get("/rentals", h.RentalHandler.GetRentals)
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Get("/", h.CarsHandler.GetAdmin)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/cars", h.CarsHandler.AddCar)
			r.Put("/cars/{id}", h.CarsHandler.EditCar)
			r.Post("/cars/{id}/activate", h.CarsHandler.ActivateCar)
			r.Post("/cars/{id}/deactivate", h.CarsHandler.DeactivateCar)
			r.Post("/transfer", h.CarsHandler.TransferAdmin)
		})
	})

	return r
}
