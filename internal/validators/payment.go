package validators

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/room-booking/internal/models"
)

// AmountPlaces is the number of decimal places a payment amount may carry.
const AmountPlaces = 2

// MaxAmount is the largest amount the amount column holds.
var MaxAmount = decimal.RequireFromString("99999999.99")

// ValidatePayment checks that the amount is positive, fits two decimal places
// and MaxAmount, and that the method is supported.
func ValidatePayment(payment models.PaymentDB) error {
	amount := payment.Amount
	if !amount.IsPositive() {
		return newValidationError(ErrInvalidValue, "amount", "payment amount must be greater than zero")
	}
	if !amount.Equal(amount.Truncate(AmountPlaces)) {
		return newValidationError(ErrInvalidValue, "amount", "payment amount must have at most 2 decimal places")
	}
	if amount.GreaterThan(MaxAmount) {
		return newValidationError(ErrInvalidValue, "amount", "payment amount must not exceed "+MaxAmount.StringFixed(AmountPlaces))
	}
	if !slices.Contains(models.PaymentMethods, payment.PaymentMethod) {
		return newValidationError(ErrInvalidValue, "payment_method", "payment method is not valid")
	}
	return nil
}
