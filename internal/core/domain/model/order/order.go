package order

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a customer order. It is the aggregate root that manages
// the order lifecycle from creation through confirmation, processing,
// shipping and delivery, or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid user reference
//   - Total always equals the sum of item subtotals; it is recomputed
//     whenever the item list changes and is never independently mutable
//   - Status transitions follow the state machine defined by Status
//   - Items can only be added while the order is pending
//   - Can only be created through NewOrder or RestoreOrder
//
// Every failed transition is an atomic no-op: the guard runs before any
// mutation, so the aggregate is left exactly as it was.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID references the user who placed the order. The reference is
	// checked at creation time by the application service and is not
	// re-validated afterwards.
	userID kernel.UUID

	// items is the ordered list of lines owned by this order
	items []Item

	// status represents the current state in the order lifecycle
	status Status

	// total is derived from items; see recalcTotal
	total float64

	// shippingAddress is the destination for the order
	shippingAddress string

	// notes holds optional free-form delivery notes ("" when absent)
	notes string

	createdAt time.Time
	updatedAt *time.Time

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// UpdateRequest enumerates the order fields that may be patched after
// creation. Nil fields are left untouched.
type UpdateRequest struct {
	ShippingAddress *string
	Notes           *string
}

// NewOrder creates a new Order with validation. This is the only way to
// create an order that does not already exist in storage.
//
// The order starts in Pending status with its total computed from the given
// items and createdAt set to now. An empty item list is accepted; the total
// is then zero until items are added.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []Item,
	shippingAddress string,
	notes string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		notes:         notes,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
		o.setShippingAddress(shippingAddress),
	); err != nil {
		return nil, err
	}

	o.recalcTotal()
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
// The status must be a member of the valid status set. The total is
// recomputed from the items rather than trusted from storage, preserving
// the derived-total invariant.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []Item,
	status Status,
	shippingAddress string,
	notes string,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Order, error) {
	o := &Order{
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
		o.setShippingAddress(shippingAddress),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	o.recalcTotal()
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the user who placed the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Items returns a copy of the order's lines.
// Mutating the returned slice does not affect the order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the sum of item subtotals.
func (o *Order) Total() float64 {
	return o.total
}

// ShippingAddress returns the destination for the order.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// Notes returns the optional delivery notes ("" when absent).
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp, nil if never mutated.
func (o *Order) UpdatedAt() *time.Time {
	return o.updatedAt
}

// Confirm moves a pending order to Confirmed.
// Fails with an invalid-transition error from any other status.
func (o *Order) Confirm(now time.Time) error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch(now)
	return nil
}

// Process moves a confirmed order to Processing.
func (o *Order) Process(now time.Time) error {
	newStatus, err := o.status.Process()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch(now)
	return nil
}

// Ship moves a processing order to Shipped.
func (o *Order) Ship(now time.Time) error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch(now)
	return nil
}

// Deliver moves a shipped order to Delivered, the final state of the
// forward progression.
func (o *Order) Deliver(now time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch(now)
	return nil
}

// Cancel moves the order to Cancelled.
// Allowed from pending, confirmed and processing; rejected once the order
// has shipped, been delivered, or was already cancelled.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch(now)
	return nil
}

// AddItem appends a line to a pending order and recomputes the total.
// Fails with an invalid-transition error once the order left Pending.
func (o *Order) AddItem(item Item, now time.Time) error {
	if err := o.status.ValidateAddItem(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.recalcTotal()
	o.touch(now)
	return nil
}

// Update applies the non-nil fields of the request and stamps updatedAt.
// The shipping address cannot be cleared, only replaced.
func (o *Order) Update(req UpdateRequest, now time.Time) error {
	if req.ShippingAddress != nil {
		if err := o.setShippingAddress(*req.ShippingAddress); err != nil {
			return err
		}
	}
	if req.Notes != nil {
		o.notes = *req.Notes
	}

	o.touch(now)
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setShippingAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("shipping address")
	}
	o.shippingAddress = address
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) recalcTotal() {
	total := 0.0
	for _, item := range o.items {
		total += item.Subtotal()
	}
	o.total = total
}

func (o *Order) touch(now time.Time) {
	t := now
	o.updatedAt = &t
}
