package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"shop/internal/core/domain/model/user"
)

const apiVersionV2 = "2.0.0"

const (
	defaultPageSize = 10
	maxPageSize     = 100

	minNameLength     = 2
	minPasswordLength = 8
)

// HealthV2 handles GET /api/v2/users/health - reports service liveness.
func (s *Server) HealthV2(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Version:   apiVersionV2,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// ListUsersV2 handles GET /api/v2/users - lists users with pagination and
// an optional active-only filter.
func (s *Server) ListUsersV2(ctx echo.Context) error {
	page := queryInt(ctx, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := queryInt(ctx, "page_size", defaultPageSize)
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	activeOnly := ctx.QueryParam("active_only") == "true"

	users, err := s.users.GetAllUsers(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, err)
	}

	if activeOnly {
		active := users[:0]
		for _, u := range users {
			if u.IsActive() {
				active = append(active, u)
			}
		}
		users = active
	}

	total := len(users)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return ctx.JSON(http.StatusOK, PaginatedUsersResponse{
		Items:      toUserResponses(users[start:end]),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

// GetUserV2 handles GET /api/v2/users/{id} - retrieves a user by id.
func (s *Server) GetUserV2(ctx echo.Context) error {
	return s.GetUserV1(ctx)
}

// CreateUserV2 handles POST /api/v2/users - registers a new user with
// stricter input validation than v1.
func (s *Server) CreateUserV2(ctx echo.Context) error {
	var req CreateUserRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	if len(req.Name) < minNameLength {
		return writeBadRequest(ctx, "name must be at least 2 characters")
	}
	if len(req.Password) < minPasswordLength {
		return writeBadRequest(ctx, "password must be at least 8 characters")
	}

	u, err := s.users.CreateUser(ctx.Request().Context(), req.Email, req.Name, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toUserResponse(u))
}

// UpdateUserV2 handles PUT /api/v2/users/{id} - patches name, email and the
// active flag.
func (s *Server) UpdateUserV2(ctx echo.Context) error {
	id, ok, errResp := parseID(ctx)
	if !ok {
		return errResp
	}

	var req UpdateUserRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	u, err := s.users.UpdateUser(ctx.Request().Context(), id, user.UpdateRequest{
		Email:    req.Email,
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserResponse(u))
}

// ActivateUserV2 handles POST /api/v2/users/{id}/activate.
func (s *Server) ActivateUserV2(ctx echo.Context) error {
	id, ok, errResp := parseID(ctx)
	if !ok {
		return errResp
	}

	u, err := s.users.ActivateUser(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserResponse(u))
}

// DeactivateUserV2 handles POST /api/v2/users/{id}/deactivate.
func (s *Server) DeactivateUserV2(ctx echo.Context) error {
	id, ok, errResp := parseID(ctx)
	if !ok {
		return errResp
	}

	u, err := s.users.DeactivateUser(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserResponse(u))
}

func queryInt(ctx echo.Context, name string, fallback int) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
