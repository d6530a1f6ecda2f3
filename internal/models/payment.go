package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supported payment method codes
const (
	PaymentCash       = "CASH"
	PaymentCreditCard = "CC"
	PaymentDebitCard  = "DC"
	PaymentPayPal     = "PP"
)

// PaymentMethods lists every valid payment method code.
var PaymentMethods = []string{PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentPayPal}

// PaymentDB represents a payment made by a user for a reservation
type PaymentDB struct {
	ID            int64           `json:"id" db:"id"`
	UserID        int64           `json:"user_id" db:"user_id"`
	ReservationID int64           `json:"reservation_id" db:"reservation_id"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`                 // NUMERIC(10,2)
	PaymentDate   time.Time       `json:"payment_date" db:"payment_date"`     // Defaults to the time of creation
	PaymentMethod string          `json:"payment_method" db:"payment_method"` // One of PaymentMethods
	TransactionID *string         `json:"transaction_id" db:"transaction_id"` // Optional external reference
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}
