package kernel

import (
	"github.com/shopspring/decimal"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrPriceIsNotConstructed is returned when attempting to use an improperly initialized Price.
// Prices must be created using NewPrice or PriceFromString constructors to ensure validity.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPrice or PriceFromString constructors")

// Price represents a non-negative fixed-point monetary amount.
// Price is an immutable value object backed by a decimal so that unit
// prices survive round trips through storage without floating point drift.
// The zero value is invalid and will fail validation - use constructors
// to create instances.
//
// Example:
//
//	price, err := kernel.NewPrice(decimal.NewFromFloat(19.99))
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(price.String()) // Output: 19.99
type Price struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewPrice creates a new Price from a decimal amount.
// The amount must not be negative.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsInvalidError("price")
	}

	return Price{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// PriceFromString parses a Price from its decimal string representation,
// for example "19.99". Returns an error if the string is not a valid
// decimal or the amount is negative.
func PriceFromString(value string) (Price, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}

	return NewPrice(amount)
}

// Validate ensures the Price was created through a constructor.
// Returns ErrPriceIsNotConstructed for zero-value instances.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// IsEqual compares two prices by numeric value.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

// IsPositive reports whether the price is strictly greater than zero.
func (p Price) IsPositive() bool {
	return p.amount.IsPositive()
}

// Amount returns the underlying decimal value.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// String returns the price formatted as a plain decimal string.
func (p Price) String() string {
	return p.amount.String()
}
