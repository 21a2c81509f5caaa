package kernel

import (
	"net/mail"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrEmailIsNotConstructed is returned when attempting to use an improperly initialized Email.
// Emails must be created using the NewEmail constructor to ensure validity.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError(
	"email must be created via the NewEmail constructor")

// Email represents a validated customer email address.
// Email is an immutable value object; the zero value is invalid and will
// fail validation - use NewEmail to create instances.
//
// Example:
//
//	email, err := kernel.NewEmail("customer@example.com")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(email.String()) // Output: customer@example.com
type Email struct { //nolint:recvcheck //using for validation
	address string
	guard   guard.ConstructorGuard
}

// NewEmail creates a new Email from its string representation.
// The address is trimmed and must parse as an RFC 5322 address.
// Returns an error if the address is empty or malformed.
func NewEmail(address string) (Email, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}

	parsed, err := mail.ParseAddress(address)
	if err != nil || parsed.Address != address {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", err)
	}

	return Email{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Email was created through NewEmail.
// Returns ErrEmailIsNotConstructed for zero-value instances.
func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}

// IsEqual compares two emails by their address.
func (e Email) IsEqual(other Email) bool {
	return e.address == other.address
}

// String returns the email's address.
func (e Email) String() string {
	return e.address
}
