package order

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
)

// ErrOrderAlreadyCanceled is returned when cancellation is requested for an
// order that has already been canceled. Cancellation is deliberately not
// idempotent so that caller mistakes surface instead of being swallowed.
var ErrOrderAlreadyCanceled = errors.New("order has been canceled already")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Created ──┬──> Canceled   (terminal)
//	          └──> Completed  (terminal)
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first created.
	// Only orders in this status hold active stock reservations that
	// can still be edited or released.
	Created

	// Canceled indicates the order was canceled and its reserved stock
	// returned to inventory. This is a final state.
	Canceled

	// Completed indicates the order was fulfilled. This is a final state
	// with no stock side effects on transition.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Created:   "created",
		Canceled:  "canceled",
		Completed: "completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "created",
		Canceled:  "canceled",
		Completed: "completed",
	}
}

// StatusFromString parses a Status from its persisted string form.
// Returns an error for strings that do not name a valid status.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", value))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Created, Canceled, Completed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status, matching its persisted
// form. Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Canceled || s == Completed
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - Created -> Canceled
//
// Invalid transitions:
//   - Canceled -> Canceled (ErrOrderAlreadyCanceled, cancellation is not idempotent)
//   - Completed -> Canceled (terminal state)
//
// Returns:
//   - (Canceled, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Cancel() (Status, error) {
	if s == Canceled {
		return 0, ErrOrderAlreadyCanceled
	}
	if s != Created {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to cancel", s))
	}

	return Canceled, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Created -> Completed
//
// Invalid transitions:
//   - Canceled -> Completed (terminal state)
//   - Completed -> Completed (terminal state)
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Complete() (Status, error) {
	if s != Created {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to complete", s))
	}

	return Completed, nil
}
