package rental

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/carrental/internal/domain"
	"github.com/GlebRadaev/carrental/internal/dto"
	rentalservice "github.com/GlebRadaev/carrental/internal/service/rentalservice"
	"github.com/GlebRadaev/carrental/pkg/auth"
	"github.com/GlebRadaev/carrental/pkg/utils"
)

type Service interface {
	CheckOut(ctx context.Context, userID int, carID int64) error
	CheckIn(ctx context.Context, userID int) (*rentalservice.CheckInResult, error)
	Deposit(ctx context.Context, userID int, amount int64) (*domain.Balance, error)
	MakePayment(ctx context.Context, userID int) (*domain.Balance, error)
	GetUser(ctx context.Context, userID int) (*rentalservice.UserInfo, error)
	ListPayments(ctx context.Context, userID int) ([]domain.Payment, error)
	ListRentals(ctx context.Context, userID int) ([]domain.Rental, error)
}

type RentalHandler struct {
	rentalService Service
}

func New(rentalService Service) *RentalHandler {
	return &RentalHandler{
		rentalService: rentalService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, rentalservice.ErrUserNotFound), errors.Is(err, rentalservice.ErrCarNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, rentalservice.ErrAlreadyRenting),
		errors.Is(err, rentalservice.ErrNotRenting),
		errors.Is(err, rentalservice.ErrOutstandingDebt),
		errors.Is(err, rentalservice.ErrCarUnavailable),
		errors.Is(err, rentalservice.ErrNoDebt):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, rentalservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, rentalservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// GetUser godoc
//
//	@Summary		Get the authenticated user
//	@Description	Display name, balance, debt and the open rental if any
//	@Tags			Rental
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.UserResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Router			/api/user [get]
func (h *RentalHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	info, err := h.rentalService.GetUser(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	resp := dto.UserResponseDTO{
		Login:    info.User.Login,
		Name:     info.User.Name,
		Lastname: info.User.Lastname,
		Balance:  info.Balance.CurrentBalance,
		Debt:     info.Balance.DebtTotal,
	}
	if info.Rental != nil {
		resp.RentedCarID = info.Rental.CarID
		resp.RentalStart = &info.Rental.StartedAt
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// CheckOut godoc
//
//	@Summary		Check out a car
//	@Description	Open a rental for the authenticated user. Blocked while another rental is open or debt is outstanding.
//	@Tags			Rental
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CheckOutRequestDTO	true	"Car to rent"
//	@Success		200		{object}	utils.Response
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Car not found"
//	@Failure		409		{object}	utils.Response	"Already renting, outstanding debt or car unavailable"
//	@Router			/api/user/rental/checkout [post]
func (h *RentalHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CheckOutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CarID <= 0 {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid car id")
		return
	}
	if err := h.rentalService.CheckOut(r.Context(), userID, req.CarID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Car checked out"})
}

// CheckIn godoc
//
//	@Summary		Check in the rented car
//	@Description	Close the open rental and accrue debt for whole elapsed minutes
//	@Tags			Rental
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CheckInResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		409	{object}	utils.Response	"No open rental"
//	@Router			/api/user/rental/checkin [post]
func (h *RentalHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	result, err := h.rentalService.CheckIn(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CheckInResponseDTO{
		CarID:   result.CarID,
		Minutes: result.Minutes,
		Charge:  result.Charge,
		Debt:    result.Debt,
	})
}

// Deposit godoc
//
//	@Summary		Deposit funds
//	@Description	Credit the balance with a positive amount in the smallest currency unit
//	@Tags			Rental
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit amount"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Non-positive amount"
//	@Router			/api/user/balance/deposit [post]
func (h *RentalHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	balance, err := h.rentalService.Deposit(r.Context(), userID, req.Amount)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance: balance.CurrentBalance,
		Debt:    balance.DebtTotal,
	})
}

// MakePayment godoc
//
//	@Summary		Pay off debt
//	@Description	Pay the full outstanding debt from the balance
//	@Tags			Rental
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		402	{object}	utils.Response	"Insufficient balance"
//	@Failure		409	{object}	utils.Response	"No debt to pay"
//	@Router			/api/user/balance/pay [post]
func (h *RentalHandler) MakePayment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.rentalService.MakePayment(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance: balance.CurrentBalance,
		Debt:    balance.DebtTotal,
	})
}

// GetPayments godoc
//
//	@Summary		Payment history
//	@Description	Deposits and payoffs for the authenticated user, newest first
//	@Tags			Rental
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PaymentResponseDTO
//	@Success		204	{object}	utils.Response	"No payments"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/user/payments [get]
func (h *RentalHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	payments, err := h.rentalService.ListPayments(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch payments")
		return
	}
	if len(payments) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Payments not found")
		return
	}

	response := make([]dto.PaymentResponseDTO, len(payments))
	for i, p := range payments {
		response[i] = dto.PaymentResponseDTO{
			Amount:      p.Amount,
			Kind:        string(p.Kind),
			ProcessedAt: p.ProcessedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetRentals godoc
//
//	@Summary		Rental history
//	@Description	Open and closed rentals for the authenticated user, newest first
//	@Tags			Rental
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RentalResponseDTO
//	@Success		204	{object}	utils.Response	"No rentals"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/user/rentals [get]
func (h *RentalHandler) GetRentals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	rentals, err := h.rentalService.ListRentals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch rentals")
		return
	}
	if len(rentals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Rentals not found")
		return
	}

	response := make([]dto.RentalResponseDTO, len(rentals))
	for i, rr := range rentals {
		response[i] = dto.RentalResponseDTO{
			CarID:     rr.CarID,
			StartedAt: rr.StartedAt,
			EndedAt:   rr.EndedAt,
			Charge:    rr.Charge,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
