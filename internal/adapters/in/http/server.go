// Package http exposes the application use cases over a REST API.
// Handlers translate HTTP requests into service calls and domain errors
// into status codes; no business rules live here.
package http

import (
	"github.com/labstack/echo/v4"

	"shop/internal/core/application/services"
)

// Server implements the HTTP handlers for the user and order APIs.
// It coordinates between HTTP requests and application services.
type Server struct {
	users  *services.UserService
	orders *services.OrderService
}

// NewServer creates a new HTTP server over the given application services.
func NewServer(users *services.UserService, orders *services.OrderService) *Server {
	return &Server{
		users:  users,
		orders: orders,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
// The user API is served in two versions: v1 is the plain CRUD surface,
// v2 adds pagination, filtering, activation endpoints and a health check.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.GET("/users", s.ListUsersV1)
	v1.POST("/users", s.CreateUserV1)
	v1.GET("/users/:id", s.GetUserV1)
	v1.PUT("/users/:id", s.UpdateUserV1)
	v1.DELETE("/users/:id", s.DeleteUserV1)

	v1.GET("/orders", s.ListOrders)
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PUT("/orders/:id", s.UpdateOrder)
	v1.DELETE("/orders/:id", s.DeleteOrder)
	v1.POST("/orders/:id/items", s.AddOrderItem)
	v1.POST("/orders/:id/confirm", s.ConfirmOrder)
	v1.POST("/orders/:id/process", s.ProcessOrder)
	v1.POST("/orders/:id/ship", s.ShipOrder)
	v1.POST("/orders/:id/deliver", s.DeliverOrder)
	v1.POST("/orders/:id/cancel", s.CancelOrder)

	v2 := e.Group("/api/v2")

	v2.GET("/users/health", s.HealthV2)
	v2.GET("/users", s.ListUsersV2)
	v2.POST("/users", s.CreateUserV2)
	v2.GET("/users/:id", s.GetUserV2)
	v2.PUT("/users/:id", s.UpdateUserV2)
	v2.DELETE("/users/:id", s.DeleteUserV1)
	v2.POST("/users/:id/activate", s.ActivateUserV2)
	v2.POST("/users/:id/deactivate", s.DeactivateUserV2)
}
