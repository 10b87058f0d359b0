// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Order lines are embedded as a JSONB document since they have no lifecycle
// outside their order. The total column is stored for reporting queries but
// never read back; the aggregate recomputes it from the items on restore.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;index"`
	Items           []ItemDTO `gorm:"serializer:json;type:jsonb"`
	Status          int       `gorm:"index"`
	Total           float64
	ShippingAddress string
	Notes           string
	CreatedAt       time.Time  `gorm:"autoCreateTime:false"`
	UpdatedAt       *time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line inside the items document.
type ItemDTO struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	domainItems := o.Items()
	items := make([]ItemDTO, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, ItemDTO{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:              o.ID().Bytes(),
		UserID:          o.UserID().Bytes(),
		Items:           items,
		Status:          int(o.Status()),
		Total:           o.Total(),
		ShippingAddress: o.ShippingAddress(),
		Notes:           o.Notes(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, which revalidates the status and recomputes the total.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(
			itemDTO.ProductID,
			itemDTO.ProductName,
			itemDTO.Quantity,
			itemDTO.UnitPrice,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		userID,
		items,
		order.Status(dto.Status),
		dto.ShippingAddress,
		dto.Notes,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
