package order_test

import (
	"testing"

	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create valid item", func(t *testing.T) {
		item, err := order.NewItem("PROD-001", "Laptop", 2, 10.0)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "PROD-001", item.ProductID())
		assert.Equal(t, "Laptop", item.ProductName())
		assert.Equal(t, 2, item.Quantity())
		assert.InDelta(t, 10.0, item.UnitPrice(), 0.0001)
	})

	t.Run("should fail without product id", func(t *testing.T) {
		_, err := order.NewItem("", "Laptop", 1, 10.0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail without product name", func(t *testing.T) {
		_, err := order.NewItem("PROD-001", "", 1, 10.0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero or negative quantity", func(t *testing.T) {
		for _, qty := range []int{0, -3} {
			_, err := order.NewItem("PROD-001", "Laptop", qty, 10.0)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should fail with zero or negative unit price", func(t *testing.T) {
		for _, price := range []float64{0, -1.5} {
			_, err := order.NewItem("PROD-001", "Laptop", 1, price)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		_, err := order.NewItem("", "", 0, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "product id")
		assert.Contains(t, err.Error(), "product name")
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "unit price")
	})
}

func TestItem_Subtotal(t *testing.T) {
	t.Run("subtotal is quantity times unit price", func(t *testing.T) {
		item, _ := order.NewItem("PROD-001", "Laptop", 3, 12.5)

		assert.InDelta(t, 37.5, item.Subtotal(), 0.0001)
	})

	t.Run("single unit subtotal equals unit price", func(t *testing.T) {
		item, _ := order.NewItem("PROD-001", "Laptop", 1, 99.99)

		assert.InDelta(t, 99.99, item.Subtotal(), 0.0001)
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("zero value item is not constructed", func(t *testing.T) {
		var item order.Item

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})
}
