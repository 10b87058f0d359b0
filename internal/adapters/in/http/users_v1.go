package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shop/internal/core/domain/model/user"
)

// ListUsersV1 handles GET /api/v1/users - retrieves all users.
func (s *Server) ListUsersV1(ctx echo.Context) error {
	users, err := s.users.GetAllUsers(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserResponses(users))
}

// GetUserV1 handles GET /api/v1/users/{id} - retrieves a user by id.
func (s *Server) GetUserV1(ctx echo.Context) error {
	id, ok, errResp := parseID(ctx)
	if !ok {
		return errResp
	}

	u, err := s.users.GetUserByID(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserResponse(u))
}

// CreateUserV1 handles POST /api/v1/users - registers a new user.
// Responds 409 when the email is already registered.
func (s *Server) CreateUserV1(ctx echo.Context) error {
	var req CreateUserRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	u, err := s.users.CreateUser(ctx.Request().Context(), req.Email, req.Name, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toUserResponse(u))
}

// UpdateUserV1 handles PUT /api/v1/users/{id} - patches name and email.
func (s *Server) UpdateUserV1(ctx echo.Context) error {
	id, ok, errResp := parseID(ctx)
	if !ok {
		return errResp
	}

	var req UpdateUserRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	u, err := s.users.UpdateUser(ctx.Request().Context(), id, user.UpdateRequest{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserResponse(u))
}

// DeleteUserV1 handles DELETE /users/{id} for both API versions.
// Responds 204 when deleted, 404 when the user does not exist.
func (s *Server) DeleteUserV1(ctx echo.Context) error {
	id, ok, errResp := parseID(ctx)
	if !ok {
		return errResp
	}

	deleted, err := s.users.DeleteUser(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}
	if !deleted {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "user not found",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}
