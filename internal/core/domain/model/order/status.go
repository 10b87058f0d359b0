package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	pending ──> confirmed ──> processing ──> shipped ──> delivered
//	   │            │             │
//	   └────────────┴─────────────┴──> cancelled
//
// Shipped and delivered orders can no longer be cancelled; delivered and
// cancelled are terminal states. Status is a value object that validates
// state transitions and provides string representations for persistence
// and the API.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Items can only be added while the order is pending.
	Pending

	// Confirmed indicates the order has been accepted.
	Confirmed

	// Processing indicates the order is being prepared for shipment.
	Processing

	// Shipped indicates the order has left the warehouse.
	// Shipped orders can no longer be cancelled.
	Shipped

	// Delivered indicates the order reached the customer.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled before shipping.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Confirmed:  "confirmed",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Confirmed:  "confirmed",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses a Status from its wire/persistence name.
// Returns an error for names outside the closed status set.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is a member of the closed status set.
// Unknown (0) and any other values are invalid. Used to ensure Status values
// from external sources (database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("pending", "confirmed", ...).
// Returns "unknown" for invalid status values. Implements fmt.Stringer and
// is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed
//
// Returns (Confirmed, nil) on a valid transition, or (0, error) carrying the
// rejected operation and current status otherwise.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("confirm", s.String())
	}
	return Confirmed, nil
}

// Process transitions the status to Processing.
//
// Valid transitions:
//   - Confirmed -> Processing
func (s Status) Process() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewInvalidTransitionError("process", s.String())
	}
	return Processing, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Processing -> Shipped
func (s Status) Ship() (Status, error) {
	if s != Processing {
		return 0, errs.NewInvalidTransitionError("ship", s.String())
	}
	return Shipped, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Shipped -> Delivered
//
// Delivered is a terminal state with no further transitions possible.
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return 0, errs.NewInvalidTransitionError("deliver", s.String())
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Confirmed -> Cancelled
//   - Processing -> Cancelled
//
// Shipped and delivered orders cannot be cancelled. Cancelling an already
// cancelled order is also rejected: cancel carries a closed allow-list and
// cancelled is not on it.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Confirmed && s != Processing {
		return 0, errs.NewInvalidTransitionError("cancel", s.String())
	}
	return Cancelled, nil
}

// ValidateAddItem checks whether the order's item list may be modified
// in the current status. Items can only be added to pending orders.
func (s Status) ValidateAddItem() error {
	if s != Pending {
		return errs.NewInvalidTransitionError("add_item", s.String())
	}
	return nil
}
