package order

import (
	"errors"
	"fmt"

	"shop/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a value object describing one line of an order: a product
// reference, the quantity ordered and the unit price at the time of
// ordering. Items are owned exclusively by their containing Order and
// have no independent lifecycle.
type Item struct {
	productID   string
	productName string
	quantity    int
	unitPrice   float64

	isConstructed bool
}

// NewItem creates an order line with validation.
// Quantity must be a positive integer and unit price a positive number.
func NewItem(productID, productName string, quantity int, unitPrice float64) (Item, error) {
	item := Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the identifier of the ordered product.
func (i Item) ProductID() string {
	return i.productID
}

// ProductName returns the display name of the ordered product.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// Subtotal returns quantity * unit price for this line.
func (i Item) Subtotal() float64 {
	return float64(i.quantity) * i.unitPrice
}

func (i *Item) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("product id")
	}
	i.productID = productID
	return nil
}

func (i *Item) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	i.productName = productName
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("unit price", fmt.Errorf("%v is not greater than 0", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
