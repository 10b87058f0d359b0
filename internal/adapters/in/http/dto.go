package http

import (
	"time"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/user"
)

// ErrorResponse is the error body returned by every failing endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateUserRequest is the body of POST /users in both API versions.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// UpdateUserRequest is the body of PUT /users/{id}.
// Absent fields are left untouched. The is_active field is only honored
// by the v2 endpoint.
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

// UserResponse is the user representation returned by both API versions.
type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

// PaginatedUsersResponse is the paginated list returned by GET /api/v2/users.
type PaginatedUsersResponse struct {
	Items      []UserResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// HealthResponse is the body of GET /api/v2/users/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// OrderItemRequest describes one order line in create and add-item bodies.
type OrderItemRequest struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	UserID          string             `json:"user_id"`
	Items           []OrderItemRequest `json:"items"`
	ShippingAddress string             `json:"shipping_address"`
	Notes           string             `json:"notes"`
}

// UpdateOrderRequest is the body of PUT /orders/{id}.
// Absent fields are left untouched.
type UpdateOrderRequest struct {
	ShippingAddress *string `json:"shipping_address"`
	Notes           *string `json:"notes"`
}

// OrderItemResponse is one order line in an order response.
type OrderItemResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

// OrderResponse is the order representation returned by the order API.
type OrderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	Items           []OrderItemResponse `json:"items"`
	Status          string              `json:"status"`
	Total           float64             `json:"total"`
	ShippingAddress string              `json:"shipping_address"`
	Notes           string              `json:"notes"`
	CreatedAt       string              `json:"created_at"`
	UpdatedAt       *string             `json:"updated_at"`
}

// OrderListResponse wraps a list of orders with its length.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID().String(),
		Email:     u.Email(),
		Name:      u.Name(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt().Format(time.RFC3339),
		UpdatedAt: formatOptionalTime(u.UpdatedAt()),
	}
}

func toUserResponses(users []*user.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toUserResponse(u))
	}
	return responses
}

func toOrderResponse(o *order.Order) OrderResponse {
	domainItems := o.Items()
	items := make([]OrderItemResponse, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Subtotal:    item.Subtotal(),
		})
	}

	return OrderResponse{
		ID:              o.ID().String(),
		UserID:          o.UserID().String(),
		Items:           items,
		Status:          o.Status().String(),
		Total:           o.Total(),
		ShippingAddress: o.ShippingAddress(),
		Notes:           o.Notes(),
		CreatedAt:       o.CreatedAt().Format(time.RFC3339),
		UpdatedAt:       formatOptionalTime(o.UpdatedAt()),
	}
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o))
	}
	return responses
}

func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
