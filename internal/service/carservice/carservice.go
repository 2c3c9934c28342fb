package carservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/carrental/internal/domain"
	"github.com/GlebRadaev/carrental/internal/pg"
	"github.com/GlebRadaev/carrental/pkg/validate"
	"go.uber.org/zap"
)

type CarRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Car, error)
	ListIDs(ctx context.Context) ([]int64, error)
	Create(ctx context.Context, car *domain.Car) error
	Update(ctx context.Context, car *domain.Car) error
	SetEnabled(ctx context.Context, id int64, enabled bool) error
}

type AdminRepo interface {
	GetAdminID(ctx context.Context) (int, error)
	SetAdminID(ctx context.Context, userID int) error
}

type UserRepo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

var (
	ErrNotAdmin        = errors.New("caller is not the administrator")
	ErrCarExists       = errors.New("car id already exists")
	ErrCarNotFound     = errors.New("car not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Service owns the car catalog and the administrator identity. Every
// mutation is admin-gated; reads are open to any caller.
type Service struct {
	carRepo   CarRepo
	adminRepo AdminRepo
	userRepo  UserRepo
	txManager pg.TXManager
}

func New(carRepo CarRepo, adminRepo AdminRepo, userRepo UserRepo, txManager pg.TXManager) *Service {
	return &Service{
		carRepo:   carRepo,
		adminRepo: adminRepo,
		userRepo:  userRepo,
		txManager: txManager,
	}
}

func (s *Service) requireAdmin(ctx context.Context, callerID int) error {
	adminID, err := s.adminRepo.GetAdminID(ctx)
	if err != nil {
		return err
	}
	if adminID == 0 || adminID != callerID {
		zap.L().Info("admin operation rejected", zap.Int("callerID", callerID))
		return ErrNotAdmin
	}
	return nil
}

func (s *Service) AddCar(ctx context.Context, callerID int, car *domain.Car) error {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}
	if !validate.IsCarID(car.ID) || car.RentFee < 0 || car.SaleFee < 0 || !validate.IsImageURL(car.ImageURL) {
		return ErrInvalidArgument
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.carRepo.FindByID(ctx, car.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrCarExists
		}
		car.Enabled = true
		if err := s.carRepo.Create(ctx, car); err != nil {
			return err
		}
		zap.L().Info("car added", zap.Int64("carID", car.ID))
		return nil
	})
}

// EditCar overwrites all mutable fields, including the admin policy flag.
// The in_use flag belongs to the rental protocol and is never touched here.
func (s *Service) EditCar(ctx context.Context, callerID int, car *domain.Car) error {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}
	if car.RentFee < 0 || car.SaleFee < 0 || !validate.IsImageURL(car.ImageURL) {
		return ErrInvalidArgument
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.carRepo.FindByID(ctx, car.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrCarNotFound
		}
		if err := s.carRepo.Update(ctx, car); err != nil {
			return err
		}
		zap.L().Info("car updated", zap.Int64("carID", car.ID))
		return nil
	})
}

func (s *Service) ActivateCar(ctx context.Context, callerID int, id int64) error {
	return s.setEnabled(ctx, callerID, id, true)
}

func (s *Service) DeactivateCar(ctx context.Context, callerID int, id int64) error {
	return s.setEnabled(ctx, callerID, id, false)
}

func (s *Service) setEnabled(ctx context.Context, callerID int, id int64, enabled bool) error {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		car, err := s.carRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if car == nil {
			return ErrCarNotFound
		}
		// Idempotent: re-applying the current state is a no-op success.
		if car.Enabled == enabled {
			return nil
		}
		return s.carRepo.SetEnabled(ctx, id, enabled)
	})
}

func (s *Service) GetCar(ctx context.Context, id int64) (*domain.Car, error) {
	car, err := s.carRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, ErrCarNotFound
	}
	return car, nil
}

func (s *Service) ListCarIDs(ctx context.Context) ([]int64, error) {
	return s.carRepo.ListIDs(ctx)
}

func (s *Service) IsAvailable(ctx context.Context, id int64) (bool, error) {
	car, err := s.GetCar(ctx, id)
	if err != nil {
		return false, err
	}
	return car.Available(), nil
}

func (s *Service) GetAdmin(ctx context.Context) (*domain.User, error) {
	adminID, err := s.adminRepo.GetAdminID(ctx)
	if err != nil {
		return nil, err
	}
	if adminID == 0 {
		return nil, ErrUserNotFound
	}
	admin, err := s.userRepo.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrUserNotFound
	}
	return admin, nil
}

// TransferAdmin replaces the administrator with a registered successor.
func (s *Service) TransferAdmin(ctx context.Context, callerID int, newAdminLogin string) error {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}
	if newAdminLogin == "" {
		return ErrInvalidArgument
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		successor, err := s.userRepo.FindByLogin(ctx, newAdminLogin)
		if err != nil {
			return err
		}
		if successor == nil {
			return ErrUserNotFound
		}
		if err := s.adminRepo.SetAdminID(ctx, successor.ID); err != nil {
			return err
		}
		zap.L().Info("administrator transferred", zap.String("login", newAdminLogin))
		return nil
	})
}
