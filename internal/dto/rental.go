package dto

import "time"

type UserResponseDTO struct {
	Login       string     `json:"login" example:"alice"`
	Name        string     `json:"name" example:"Alice"`
	Lastname    string     `json:"lastname" example:"Smith"`
	Balance     int64      `json:"balance" example:"100"`
	Debt        int64      `json:"debt" example:"0"`
	RentedCarID int64      `json:"rented_car_id" example:"0"`
	RentalStart *time.Time `json:"rental_start,omitempty"`
}

type CheckOutRequestDTO struct {
	CarID int64 `json:"car_id" example:"1"`
}

type CheckInResponseDTO struct {
	CarID   int64 `json:"car_id" example:"1"`
	Minutes int64 `json:"minutes" example:"2"`
	Charge  int64 `json:"charge" example:"20"`
	Debt    int64 `json:"debt" example:"20"`
}

type DepositRequestDTO struct {
	Amount int64 `json:"amount" example:"100"`
}

type BalanceResponseDTO struct {
	Balance int64 `json:"balance" example:"100"`
	Debt    int64 `json:"debt" example:"0"`
}

type PaymentResponseDTO struct {
	Amount      int64     `json:"amount" example:"100"`
	Kind        string    `json:"kind" example:"deposit"`
	ProcessedAt time.Time `json:"processed_at" example:"2024-06-01T12:00:00+00:00"`
}

type RentalResponseDTO struct {
	CarID     int64      `json:"car_id" example:"1"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	Charge    int64      `json:"charge" example:"20"`
}
