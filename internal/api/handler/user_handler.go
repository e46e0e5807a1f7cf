package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kingkebab/timetrack/internal/core/ports"
)

// UserHandler handles admin user management.
type UserHandler struct {
	users       ports.UserRepository
	authService ports.AuthService
}

func NewUserHandler(users ports.UserRepository, authService ports.AuthService) *UserHandler {
	return &UserHandler{users: users, authService: authService}
}

type registerWorkerRequest struct {
	Username   string `json:"username"    validate:"required,min=3"`
	Password   string `json:"password"    validate:"required,min=6"`
	Position   string `json:"position"    validate:"required,oneof=worker rider"`
	EmployeeID string `json:"employee_id" validate:"required"`
	IsAdmin    bool   `json:"is_admin"`
}

// List returns all accounts without credentials. Admin only.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userSummary
// @Failure      403  {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.FindAll(c.Request().Context())
	if err != nil {
		return err
	}

	summaries := make([]*userSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, toUserSummary(u))
	}
	return c.JSON(http.StatusOK, summaries)
}

// RegisterWorker creates an account on behalf of an admin.
//
// @Summary      Register a worker
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerWorkerRequest  true  "Account details"
// @Success      201   {object}  userSummary
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/users/register [post]
func (h *UserHandler) RegisterWorker(c echo.Context) error {
	var req registerWorkerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Admin-created accounts do not receive a token; the new worker logs in
	// with their own credentials.
	_, user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:   req.Username,
		Password:   req.Password,
		Position:   req.Position,
		EmployeeID: req.EmployeeID,
		IsAdmin:    req.IsAdmin,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toUserSummary(user))
}
