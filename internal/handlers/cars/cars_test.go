package cars

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/carrental/internal/domain"
	"github.com/GlebRadaev/carrental/internal/dto"
	carservice "github.com/GlebRadaev/carrental/internal/service/carservice"
	"github.com/GlebRadaev/carrental/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*CarsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withCarID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func authCtx(userID int) context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, userID)
}

func TestAddCarHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful addition",
			body: `{"id":7,"name":"Tesla Model S","rent_fee":10,"sale_fee":50000}`,
			prepareMock: func() {
				service.EXPECT().AddCar(gomock.Any(), 1, gomock.Any()).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{"id":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Caller is not the administrator",
			body: `{"id":7,"name":"Tesla Model S","rent_fee":10,"sale_fee":50000}`,
			prepareMock: func() {
				service.EXPECT().AddCar(gomock.Any(), 1, gomock.Any()).Return(carservice.ErrNotAdmin)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Duplicate car id",
			body: `{"id":7,"name":"Tesla Model S","rent_fee":10,"sale_fee":50000}`,
			prepareMock: func() {
				service.EXPECT().AddCar(gomock.Any(), 1, gomock.Any()).Return(carservice.ErrCarExists)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Invalid argument",
			body: `{"id":7,"name":"Tesla Model S","rent_fee":-1,"sale_fee":50000}`,
			prepareMock: func() {
				service.EXPECT().AddCar(gomock.Any(), 1, gomock.Any()).Return(carservice.ErrInvalidArgument)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/admin/cars", strings.NewReader(tt.body))
			r = r.WithContext(authCtx(1))
			w := httptest.NewRecorder()
			handler.AddCar(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestEditCarHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		carID        string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:  "Successful edit",
			carID: "7",
			body:  `{"name":"Tesla Model 3","enabled":true,"rent_fee":12,"sale_fee":40000}`,
			prepareMock: func() {
				service.EXPECT().EditCar(gomock.Any(), 1, gomock.Any()).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid car id",
			carID:        "abc",
			body:         `{"name":"Tesla Model 3"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:  "Car not found",
			carID: "404",
			body:  `{"name":"Ghost"}`,
			prepareMock: func() {
				service.EXPECT().EditCar(gomock.Any(), 1, gomock.Any()).Return(carservice.ErrCarNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPut, "/api/admin/cars/"+tt.carID, strings.NewReader(tt.body))
			r = r.WithContext(authCtx(1))
			r = withCarID(r, tt.carID)
			w := httptest.NewRecorder()
			handler.EditCar(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestSetEnabledHandlers(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		activate     bool
		carID        string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:     "Activate car",
			activate: true,
			carID:    "7",
			prepareMock: func() {
				service.EXPECT().ActivateCar(gomock.Any(), 1, int64(7)).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:     "Deactivate car",
			activate: false,
			carID:    "7",
			prepareMock: func() {
				service.EXPECT().DeactivateCar(gomock.Any(), 1, int64(7)).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid car id",
			activate:     true,
			carID:        "0",
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "Car not found",
			activate: false,
			carID:    "404",
			prepareMock: func() {
				service.EXPECT().DeactivateCar(gomock.Any(), 1, int64(404)).Return(carservice.ErrCarNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/admin/cars/"+tt.carID+"/activate", nil)
			r = r.WithContext(authCtx(1))
			r = withCarID(r, tt.carID)
			w := httptest.NewRecorder()
			if tt.activate {
				handler.ActivateCar(w, r)
			} else {
				handler.DeactivateCar(w, r)
			}
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetCarHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		carID        string
		prepareMock  func()
		expectedCode int
		expectedBody dto.CarResponseDTO
	}{
		{
			name:  "Car found",
			carID: "7",
			prepareMock: func() {
				service.EXPECT().GetCar(gomock.Any(), int64(7)).Return(&domain.Car{
					ID:      7,
					Name:    "Tesla Model S",
					Enabled: true,
					RentFee: 10,
					SaleFee: 50000,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.CarResponseDTO{
				ID:        7,
				Name:      "Tesla Model S",
				Enabled:   true,
				Available: true,
				RentFee:   10,
				SaleFee:   50000,
			},
		},
		{
			name:  "Car not found",
			carID: "404",
			prepareMock: func() {
				service.EXPECT().GetCar(gomock.Any(), int64(404)).Return(nil, carservice.ErrCarNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/cars/"+tt.carID, nil)
			r = withCarID(r, tt.carID)
			w := httptest.NewRecorder()
			handler.GetCar(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.CarResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestListCarsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.ListCarIDsResponseDTO
	}{
		{
			name: "Ids returned",
			prepareMock: func() {
				service.EXPECT().ListCarIDs(gomock.Any()).Return([]int64{3, 7, 12}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.ListCarIDsResponseDTO{IDs: []int64{3, 7, 12}},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().ListCarIDs(gomock.Any()).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/cars", nil)
			w := httptest.NewRecorder()
			handler.ListCars(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ListCarIDsResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestIsAvailableHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		carID        string
		prepareMock  func()
		expectedCode int
		expectedBody dto.CarAvailabilityResponseDTO
	}{
		{
			name:  "Available",
			carID: "7",
			prepareMock: func() {
				service.EXPECT().IsAvailable(gomock.Any(), int64(7)).Return(true, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.CarAvailabilityResponseDTO{ID: 7, Available: true},
		},
		{
			name:  "Not available",
			carID: "7",
			prepareMock: func() {
				service.EXPECT().IsAvailable(gomock.Any(), int64(7)).Return(false, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.CarAvailabilityResponseDTO{ID: 7, Available: false},
		},
		{
			name:  "Car not found",
			carID: "404",
			prepareMock: func() {
				service.EXPECT().IsAvailable(gomock.Any(), int64(404)).Return(false, carservice.ErrCarNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/cars/"+tt.carID+"/available", nil)
			r = withCarID(r, tt.carID)
			w := httptest.NewRecorder()
			handler.IsAvailable(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.CarAvailabilityResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetAdminHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.AdminResponseDTO
	}{
		{
			name: "Administrator found",
			prepareMock: func() {
				service.EXPECT().GetAdmin(gomock.Any()).Return(&domain.User{ID: 1, Login: "admin"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.AdminResponseDTO{UserID: 1, Login: "admin"},
		},
		{
			name: "No administrator",
			prepareMock: func() {
				service.EXPECT().GetAdmin(gomock.Any()).Return(nil, carservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/admin", nil)
			w := httptest.NewRecorder()
			handler.GetAdmin(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.AdminResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestTransferAdminHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful transfer",
			body: `{"login":"successor"}`,
			prepareMock: func() {
				service.EXPECT().TransferAdmin(gomock.Any(), 1, "successor").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Successor not registered",
			body: `{"login":"stranger"}`,
			prepareMock: func() {
				service.EXPECT().TransferAdmin(gomock.Any(), 1, "stranger").Return(carservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Caller is not the administrator",
			body: `{"login":"successor"}`,
			prepareMock: func() {
				service.EXPECT().TransferAdmin(gomock.Any(), 1, "successor").Return(carservice.ErrNotAdmin)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Empty login",
			body: `{"login":""}`,
			prepareMock: func() {
				service.EXPECT().TransferAdmin(gomock.Any(), 1, "").Return(carservice.ErrInvalidArgument)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/admin/transfer", strings.NewReader(tt.body))
			r = r.WithContext(authCtx(1))
			w := httptest.NewRecorder()
			handler.TransferAdmin(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
