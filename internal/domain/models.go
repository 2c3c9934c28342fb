package domain

import "time"

// All monetary values are integer amounts in the smallest currency unit.

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	Lastname     string    `db:"lastname"`
	CreatedAt    time.Time `db:"created_at"`
}

type Balance struct {
	ID             int   `db:"id"`
	UserID         int   `db:"user_id"`
	CurrentBalance int64 `db:"current_balance"`
	DebtTotal      int64 `db:"debt_total"`
}

// Car availability is two independent flags: Enabled is the admin policy
// switch, InUse is set while a rental is open. A car can be rented only
// when Enabled && !InUse.
type Car struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	ImageURL  string    `db:"image_url"`
	Enabled   bool      `db:"enabled"`
	InUse     bool      `db:"in_use"`
	RentFee   int64     `db:"rent_fee"`
	SaleFee   int64     `db:"sale_fee"`
	CreatedAt time.Time `db:"created_at"`
}

func (c *Car) Available() bool {
	return c.Enabled && !c.InUse
}

// Rental is open while EndedAt is nil; at most one open rental per user.
type Rental struct {
	ID        int        `db:"id"`
	UserID    int        `db:"user_id"`
	CarID     int64      `db:"car_id"`
	StartedAt time.Time  `db:"started_at"`
	EndedAt   *time.Time `db:"ended_at"`
	Charge    int64      `db:"charge"`
}

type PaymentKind string

const (
	PaymentKindDeposit PaymentKind = "deposit"
	PaymentKindPayoff  PaymentKind = "payoff"
)

type Payment struct {
	ID          int         `db:"id"`
	UserID      int         `db:"user_id"`
	Amount      int64       `db:"amount"`
	Kind        PaymentKind `db:"kind"`
	ProcessedAt time.Time   `db:"processed_at"`
}
