package rentalservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/carrental/internal/domain"
	"github.com/GlebRadaev/carrental/internal/pg"
	"github.com/GlebRadaev/carrental/pkg/clock"
	"github.com/GlebRadaev/carrental/pkg/validate"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type CarRepo interface {
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Car, error)
	SetInUse(ctx context.Context, id int64, inUse bool) error
}

type BalanceRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Balance, error)
	GetByUserIDForUpdate(ctx context.Context, userID int) (*domain.Balance, error)
	Update(ctx context.Context, userID int, balance *domain.Balance) (*domain.Balance, error)
}

type RentalRepo interface {
	FindOpenByUserID(ctx context.Context, userID int) (*domain.Rental, error)
	FindOpenByUserIDForUpdate(ctx context.Context, userID int) (*domain.Rental, error)
	Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error)
	Close(ctx context.Context, rentalID int, endedAt time.Time, charge int64) error
	ListByUserID(ctx context.Context, userID int) ([]domain.Rental, error)
}

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	ListByUserID(ctx context.Context, userID int) ([]domain.Payment, error)
}

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrCarNotFound         = errors.New("car not found")
	ErrAlreadyRenting      = errors.New("user already has an open rental")
	ErrNotRenting          = errors.New("user has no open rental")
	ErrOutstandingDebt     = errors.New("user has outstanding debt")
	ErrCarUnavailable      = errors.New("car is not available for rent")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNoDebt              = errors.New("user has no debt to pay")
	ErrInvalidAmount       = errors.New("amount must be positive")
)

// UserInfo is the committed view of one account: identity, money and the
// open rental, if any.
type UserInfo struct {
	User    *domain.User
	Balance *domain.Balance
	Rental  *domain.Rental
}

type CheckInResult struct {
	CarID   int64
	Minutes int64
	Charge  int64
	Debt    int64
}

// Service is the rental ledger core. Every mutation runs inside one
// transaction and loads the rows it changes with FOR UPDATE, so two
// conflicting calls serialize at the database and the loser observes the
// committed outcome of the winner.
type Service struct {
	userRepo    UserRepo
	carRepo     CarRepo
	balanceRepo BalanceRepo
	rentalRepo  RentalRepo
	paymentRepo PaymentRepo
	txManager   pg.TXManager
	clock       clock.Clock
}

func New(userRepo UserRepo, carRepo CarRepo, balanceRepo BalanceRepo, rentalRepo RentalRepo, paymentRepo PaymentRepo, txManager pg.TXManager, clk clock.Clock) *Service {
	return &Service{
		userRepo:    userRepo,
		carRepo:     carRepo,
		balanceRepo: balanceRepo,
		rentalRepo:  rentalRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
		clock:       clk,
	}
}

// CheckOut opens a rental for the caller. A user with an open rental or a
// nonzero debt cannot rent; a car that is disabled or already in use
// cannot be rented.
func (s *Service) CheckOut(ctx context.Context, userID int, carID int64) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		open, err := s.rentalRepo.FindOpenByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if open != nil {
			return ErrAlreadyRenting
		}

		balance, err := s.balanceRepo.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if balance == nil {
			return ErrUserNotFound
		}
		if balance.DebtTotal != 0 {
			return ErrOutstandingDebt
		}

		car, err := s.carRepo.FindByIDForUpdate(ctx, carID)
		if err != nil {
			return err
		}
		if car == nil {
			return ErrCarNotFound
		}
		if !car.Available() {
			return ErrCarUnavailable
		}

		if err := s.carRepo.SetInUse(ctx, carID, true); err != nil {
			return err
		}
		rental := &domain.Rental{
			UserID:    userID,
			CarID:     carID,
			StartedAt: s.clock.Now(),
		}
		if _, err := s.rentalRepo.Create(ctx, rental); err != nil {
			return err
		}

		zap.L().Info("car checked out", zap.Int("userID", userID), zap.Int64("carID", carID))
		return nil
	})
}

// CheckIn closes the caller's open rental and accrues debt for whole
// elapsed minutes: floor((now - start) / 60s), partial minutes free.
func (s *Service) CheckIn(ctx context.Context, userID int) (*CheckInResult, error) {
	var result CheckInResult

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		rental, err := s.rentalRepo.FindOpenByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if rental == nil {
			return ErrNotRenting
		}

		car, err := s.carRepo.FindByIDForUpdate(ctx, rental.CarID)
		if err != nil {
			return err
		}
		if car == nil {
			return ErrCarNotFound
		}

		now := s.clock.Now()
		minutes := int64(now.Sub(rental.StartedAt) / time.Minute)
		if minutes < 0 {
			minutes = 0
		}
		charge := minutes * car.RentFee

		balance, err := s.balanceRepo.GetByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if balance == nil {
			return ErrUserNotFound
		}
		balance.DebtTotal += charge
		if _, err := s.balanceRepo.Update(ctx, userID, balance); err != nil {
			return err
		}

		if err := s.carRepo.SetInUse(ctx, rental.CarID, false); err != nil {
			return err
		}
		if err := s.rentalRepo.Close(ctx, rental.ID, now, charge); err != nil {
			return err
		}

		result = CheckInResult{
			CarID:   rental.CarID,
			Minutes: minutes,
			Charge:  charge,
			Debt:    balance.DebtTotal,
		}
		zap.L().Info("car checked in",
			zap.Int("userID", userID),
			zap.Int64("carID", rental.CarID),
			zap.Int64("charge", charge),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Deposit credits the balance. Deposits never touch the debt; payoff is a
// separate operation.
func (s *Service) Deposit(ctx context.Context, userID int, amount int64) (*domain.Balance, error) {
	if !validate.IsPositiveAmount(amount) {
		return nil, ErrInvalidAmount
	}

	var updated *domain.Balance
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.balanceRepo.GetByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if balance == nil {
			return ErrUserNotFound
		}

		balance.CurrentBalance += amount
		updated, err = s.balanceRepo.Update(ctx, userID, balance)
		if err != nil {
			return err
		}

		_, err = s.paymentRepo.Create(ctx, &domain.Payment{
			UserID:      userID,
			Amount:      amount,
			Kind:        domain.PaymentKindDeposit,
			ProcessedAt: s.clock.Now(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("deposit accepted", zap.Int("userID", userID), zap.Int64("amount", amount))
	return updated, nil
}

// MakePayment pays off the full debt from the balance; partial payoff is
// not supported.
func (s *Service) MakePayment(ctx context.Context, userID int) (*domain.Balance, error) {
	var updated *domain.Balance
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.balanceRepo.GetByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if balance == nil {
			return ErrUserNotFound
		}
		if balance.DebtTotal == 0 {
			return ErrNoDebt
		}
		if balance.CurrentBalance < balance.DebtTotal {
			return ErrInsufficientBalance
		}

		debt := balance.DebtTotal
		balance.CurrentBalance -= debt
		balance.DebtTotal = 0
		updated, err = s.balanceRepo.Update(ctx, userID, balance)
		if err != nil {
			return err
		}

		_, err = s.paymentRepo.Create(ctx, &domain.Payment{
			UserID:      userID,
			Amount:      debt,
			Kind:        domain.PaymentKindPayoff,
			ProcessedAt: s.clock.Now(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("debt paid off", zap.Int("userID", userID))
	return updated, nil
}

func (s *Service) GetUser(ctx context.Context, userID int) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	balance, err := s.balanceRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		return nil, ErrUserNotFound
	}
	rental, err := s.rentalRepo.FindOpenByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UserInfo{User: user, Balance: balance, Rental: rental}, nil
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.balanceRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		return nil, ErrUserNotFound
	}
	return balance, nil
}

func (s *Service) ListPayments(ctx context.Context, userID int) ([]domain.Payment, error) {
	return s.paymentRepo.ListByUserID(ctx, userID)
}

func (s *Service) ListRentals(ctx context.Context, userID int) ([]domain.Rental, error) {
	return s.rentalRepo.ListByUserID(ctx, userID)
}
