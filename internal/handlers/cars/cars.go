package cars

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/carrental/internal/domain"
	"github.com/GlebRadaev/carrental/internal/dto"
	carservice "github.com/GlebRadaev/carrental/internal/service/carservice"
	"github.com/GlebRadaev/carrental/pkg/auth"
	"github.com/GlebRadaev/carrental/pkg/utils"
)

type Service interface {
	AddCar(ctx context.Context, callerID int, car *domain.Car) error
	EditCar(ctx context.Context, callerID int, car *domain.Car) error
	ActivateCar(ctx context.Context, callerID int, id int64) error
	DeactivateCar(ctx context.Context, callerID int, id int64) error
	GetCar(ctx context.Context, id int64) (*domain.Car, error)
	ListCarIDs(ctx context.Context) ([]int64, error)
	IsAvailable(ctx context.Context, id int64) (bool, error)
	GetAdmin(ctx context.Context) (*domain.User, error)
	TransferAdmin(ctx context.Context, callerID int, newAdminLogin string) error
}

type CarsHandler struct {
	carService Service
}

func New(carService Service) *CarsHandler {
	return &CarsHandler{
		carService: carService,
	}
}

func carIDFromURL(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, carservice.ErrNotAdmin):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, carservice.ErrCarNotFound), errors.Is(err, carservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, carservice.ErrCarExists):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, carservice.ErrInvalidArgument):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toCarResponse(car *domain.Car) dto.CarResponseDTO {
	return dto.CarResponseDTO{
		ID:        car.ID,
		Name:      car.Name,
		ImageURL:  car.ImageURL,
		Enabled:   car.Enabled,
		InUse:     car.InUse,
		Available: car.Available(),
		RentFee:   car.RentFee,
		SaleFee:   car.SaleFee,
	}
}

// AddCar godoc
//
//	@Summary		Add a car to the catalog
//	@Description	Insert a new car with a caller-supplied id. Administrator only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddCarRequestDTO	true	"Car payload"
//	@Success		200		{object}	dto.CarResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Caller is not the administrator"
//	@Failure		409		{object}	utils.Response	"Car id already exists"
//	@Failure		422		{object}	utils.Response	"Invalid argument"
//	@Router			/api/admin/cars [post]
func (h *CarsHandler) AddCar(w http.ResponseWriter, r *http.Request) {
	callerID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AddCarRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	car := &domain.Car{
		ID:       req.ID,
		Name:     req.Name,
		ImageURL: req.ImageURL,
		RentFee:  req.RentFee,
		SaleFee:  req.SaleFee,
	}
	if err := h.carService.AddCar(r.Context(), callerID, car); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCarResponse(car))
}

// EditCar godoc
//
//	@Summary		Edit a car
//	@Description	Overwrite all mutable fields of a car, including the enabled flag. Administrator only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Car id"
//	@Param			request	body		dto.EditCarRequestDTO	true	"Car payload"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Caller is not the administrator"
//	@Failure		404		{object}	utils.Response	"Car not found"
//	@Router			/api/admin/cars/{id} [put]
func (h *CarsHandler) EditCar(w http.ResponseWriter, r *http.Request) {
	callerID := r.Context().Value(auth.UserIDKey).(int)

	id, ok := carIDFromURL(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid car id")
		return
	}
	var req dto.EditCarRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	car := &domain.Car{
		ID:       id,
		Name:     req.Name,
		ImageURL: req.ImageURL,
		Enabled:  req.Enabled,
		RentFee:  req.RentFee,
		SaleFee:  req.SaleFee,
	}
	if err := h.carService.EditCar(r.Context(), callerID, car); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Car updated"})
}

// ActivateCar godoc
//
//	@Summary		Activate a car
//	@Description	Re-enable a car for rent. Idempotent. Administrator only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Car id"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Caller is not the administrator"
//	@Failure		404	{object}	utils.Response	"Car not found"
//	@Router			/api/admin/cars/{id}/activate [post]
func (h *CarsHandler) ActivateCar(w http.ResponseWriter, r *http.Request) {
	h.setEnabled(w, r, true)
}

// DeactivateCar godoc
//
//	@Summary		Deactivate a car
//	@Description	Withdraw a car from rental. Idempotent; an open rental is not affected. Administrator only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Car id"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Caller is not the administrator"
//	@Failure		404	{object}	utils.Response	"Car not found"
//	@Router			/api/admin/cars/{id}/deactivate [post]
func (h *CarsHandler) DeactivateCar(w http.ResponseWriter, r *http.Request) {
	h.setEnabled(w, r, false)
}

func (h *CarsHandler) setEnabled(w http.ResponseWriter, r *http.Request, enabled bool) {
	callerID := r.Context().Value(auth.UserIDKey).(int)

	id, ok := carIDFromURL(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid car id")
		return
	}

	var err error
	if enabled {
		err = h.carService.ActivateCar(r.Context(), callerID, id)
	} else {
		err = h.carService.DeactivateCar(r.Context(), callerID, id)
	}
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Car status updated"})
}

// GetCar godoc
//
//	@Summary		Get a car
//	@Description	Retrieve one car by id
//	@Tags			Cars
//	@Produce		json
//	@Param			id	path		int	true	"Car id"
//	@Success		200	{object}	dto.CarResponseDTO
//	@Failure		404	{object}	utils.Response	"Car not found"
//	@Router			/api/cars/{id} [get]
func (h *CarsHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	id, ok := carIDFromURL(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid car id")
		return
	}
	car, err := h.carService.GetCar(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCarResponse(car))
}

// ListCars godoc
//
//	@Summary		List car ids
//	@Description	Car ids in catalog insertion order
//	@Tags			Cars
//	@Produce		json
//	@Success		200	{object}	dto.ListCarIDsResponseDTO
//	@Router			/api/cars [get]
func (h *CarsHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	ids, err := h.carService.ListCarIDs(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ListCarIDsResponseDTO{IDs: ids})
}

// IsAvailable godoc
//
//	@Summary		Check car availability
//	@Description	A car is available when it is enabled and not rented
//	@Tags			Cars
//	@Produce		json
//	@Param			id	path		int	true	"Car id"
//	@Success		200	{object}	dto.CarAvailabilityResponseDTO
//	@Failure		404	{object}	utils.Response	"Car not found"
//	@Router			/api/cars/{id}/available [get]
func (h *CarsHandler) IsAvailable(w http.ResponseWriter, r *http.Request) {
	id, ok := carIDFromURL(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid car id")
		return
	}
	available, err := h.carService.IsAvailable(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CarAvailabilityResponseDTO{ID: id, Available: available})
}

// GetAdmin godoc
//
//	@Summary		Get the current administrator
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	dto.AdminResponseDTO
//	@Failure		404	{object}	utils.Response	"No administrator"
//	@Router			/api/admin [get]
func (h *CarsHandler) GetAdmin(w http.ResponseWriter, r *http.Request) {
	admin, err := h.carService.GetAdmin(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminResponseDTO{UserID: admin.ID, Login: admin.Login})
}

// TransferAdmin godoc
//
//	@Summary		Transfer administrator rights
//	@Description	Name a registered user as the new administrator. Administrator only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferAdminRequestDTO	true	"Successor login"
//	@Success		200		{object}	utils.Response
//	@Failure		403		{object}	utils.Response	"Caller is not the administrator"
//	@Failure		404		{object}	utils.Response	"Successor not registered"
//	@Failure		422		{object}	utils.Response	"Invalid argument"
//	@Router			/api/admin/transfer [post]
func (h *CarsHandler) TransferAdmin(w http.ResponseWriter, r *http.Request) {
	callerID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.TransferAdminRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.carService.TransferAdmin(r.Context(), callerID, req.Login); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Administrator transferred"})
}
