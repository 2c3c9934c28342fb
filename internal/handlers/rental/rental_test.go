package rental

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GlebRadaev/carrental/internal/domain"
	"github.com/GlebRadaev/carrental/internal/dto"
	rentalservice "github.com/GlebRadaev/carrental/internal/service/rentalservice"
	"github.com/GlebRadaev/carrental/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*RentalHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authCtx(userID int) context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, userID)
}

func TestGetUserHandler(t *testing.T) {
	handler, service := NewMock(t)
	started := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.UserResponseDTO
	}{
		{
			name: "User with open rental",
			prepareMock: func() {
				service.EXPECT().
					GetUser(gomock.Any(), 1).
					Return(&rentalservice.UserInfo{
						User:    &domain.User{ID: 1, Login: "renter", Name: "Alex", Lastname: "Doe"},
						Balance: &domain.Balance{CurrentBalance: 100, DebtTotal: 0},
						Rental:  &domain.Rental{ID: 9, UserID: 1, CarID: 7, StartedAt: started},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.UserResponseDTO{
				Login:       "renter",
				Name:        "Alex",
				Lastname:    "Doe",
				Balance:     100,
				RentedCarID: 7,
				RentalStart: &started,
			},
		},
		{
			name: "User not found",
			prepareMock: func() {
				service.EXPECT().
					GetUser(gomock.Any(), 1).
					Return(nil, rentalservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetUser(gomock.Any(), 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/user", nil)
			r = r.WithContext(authCtx(1))
			w := httptest.NewRecorder()
			handler.GetUser(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.UserResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestCheckOutHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful checkout",
			body: `{"car_id":7}`,
			prepareMock: func() {
				service.EXPECT().CheckOut(gomock.Any(), 1, int64(7)).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{"car_id":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Non-positive car id",
			body:         `{"car_id":0}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Car not found",
			body: `{"car_id":404}`,
			prepareMock: func() {
				service.EXPECT().CheckOut(gomock.Any(), 1, int64(404)).Return(rentalservice.ErrCarNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Already renting",
			body: `{"car_id":7}`,
			prepareMock: func() {
				service.EXPECT().CheckOut(gomock.Any(), 1, int64(7)).Return(rentalservice.ErrAlreadyRenting)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Outstanding debt",
			body: `{"car_id":7}`,
			prepareMock: func() {
				service.EXPECT().CheckOut(gomock.Any(), 1, int64(7)).Return(rentalservice.ErrOutstandingDebt)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Car unavailable",
			body: `{"car_id":7}`,
			prepareMock: func() {
				service.EXPECT().CheckOut(gomock.Any(), 1, int64(7)).Return(rentalservice.ErrCarUnavailable)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/user/rental/checkout", strings.NewReader(tt.body))
			r = r.WithContext(authCtx(1))
			w := httptest.NewRecorder()
			handler.CheckOut(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestCheckInHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.CheckInResponseDTO
	}{
		{
			name: "Successful checkin",
			prepareMock: func() {
				service.EXPECT().CheckIn(gomock.Any(), 1).Return(&rentalservice.CheckInResult{
					CarID:   7,
					Minutes: 2,
					Charge:  20,
					Debt:    20,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.CheckInResponseDTO{CarID: 7, Minutes: 2, Charge: 20, Debt: 20},
		},
		{
			name: "No open rental",
			prepareMock: func() {
				service.EXPECT().CheckIn(gomock.Any(), 1).Return(nil, rentalservice.ErrNotRenting)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/user/rental/checkin", nil)
			r = r.WithContext(authCtx(1))
			w := httptest.NewRecorder()
			handler.CheckIn(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.CheckInResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestDepositHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name: "Successful deposit",
			body: `{"amount":100}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), 1, int64(100)).
					Return(&domain.Balance{CurrentBalance: 150, DebtTotal: 0}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{Balance: 150, Debt: 0},
		},
		{
			name:         "Invalid request body",
			body:         `{"amount":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Non-positive amount",
			body: `{"amount":-5}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), 1, int64(-5)).
					Return(nil, rentalservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/user/balance/deposit", strings.NewReader(tt.body))
			r = r.WithContext(authCtx(1))
			w := httptest.NewRecorder()
			handler.Deposit(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestMakePaymentHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name: "Successful payoff",
			prepareMock: func() {
				service.EXPECT().MakePayment(gomock.Any(), 1).
					Return(&domain.Balance{CurrentBalance: 70, DebtTotal: 0}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{Balance: 70, Debt: 0},
		},
		{
			name: "No debt",
			prepareMock: func() {
				service.EXPECT().MakePayment(gomock.Any(), 1).
					Return(nil, rentalservice.ErrNoDebt)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Insufficient balance",
			prepareMock: func() {
				service.EXPECT().MakePayment(gomock.Any(), 1).
					Return(nil, rentalservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/user/balance/pay", nil)
			r = r.WithContext(authCtx(1))
			w := httptest.NewRecorder()
			handler.MakePayment(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetPaymentsHandler(t *testing.T) {
	handler, service := NewMock(t)
	processed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Payments returned",
			prepareMock: func() {
				service.EXPECT().ListPayments(gomock.Any(), 1).Return([]domain.Payment{
					{ID: 5, UserID: 1, Amount: 100, Kind: domain.PaymentKindDeposit, ProcessedAt: processed},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No payments",
			prepareMock: func() {
				service.EXPECT().ListPayments(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().ListPayments(gomock.Any(), 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/user/payments", nil)
			r = r.WithContext(authCtx(1))
			w := httptest.NewRecorder()
			handler.GetPayments(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetRentalsHandler(t *testing.T) {
	handler, service := NewMock(t)
	started := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Rentals returned",
			prepareMock: func() {
				service.EXPECT().ListRentals(gomock.Any(), 1).Return([]domain.Rental{
					{ID: 9, UserID: 1, CarID: 7, StartedAt: started},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No rentals",
			prepareMock: func() {
				service.EXPECT().ListRentals(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/user/rentals", nil)
			r = r.WithContext(authCtx(1))
			w := httptest.NewRecorder()
			handler.GetRentals(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
