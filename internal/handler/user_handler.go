package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"phonecat/internal/apperr"
	"phonecat/internal/middleware"
	"phonecat/internal/service"
)

// UserHandler handles account endpoints behind the auth middleware.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateUserRequest represents a partial profile update.
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}

// AssignCarrierRequest binds a carrier to a user.
type AssignCarrierRequest struct {
	CarrierID string `json:"carrierId" validate:"required"`
}

// Me godoc
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	return respond(c, http.StatusOK, echo.Map{"user": middleware.Principal(c)})
}

// Dashboard godoc
// @Summary Dashboard page
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /dashboard [get]
func (h *UserHandler) Dashboard(c echo.Context) error {
	user := middleware.Principal(c)
	return respond(c, http.StatusOK, echo.Map{"data": fmt.Sprintf("User id: %s", user.ID)})
}

// List godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"users": users})
}

// Get godoc
// @Summary Find user by ID
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondErr(c, apperr.Validation("invalid user id"))
	}
	user, err := h.userService.Get(c.Request().Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"user": user})
}

// Update godoc
// @Summary Update an existing user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondErr(c, apperr.Validation("invalid user id"))
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid request body"))
	}

	user, err := h.userService.Update(c.Request().Context(), id, service.ProfileUpdate{
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"message": "updated user", "user": user})
}

// Delete godoc
// @Summary Delete user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondErr(c, apperr.Validation("invalid user id"))
	}
	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AssignCarrier godoc
// @Summary Assign carrier to user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body AssignCarrierRequest true "Carrier to bind"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /users/{id}/carrier [post]
func (h *UserHandler) AssignCarrier(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondErr(c, apperr.Validation("invalid user id"))
	}

	var req AssignCarrierRequest
	if err := c.Bind(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return respondErr(c, apperr.Validation(err.Error()))
	}

	carrierID, err := uuid.Parse(req.CarrierID)
	if err != nil {
		return respondErr(c, apperr.Validation("invalid carrier id"))
	}

	if err := h.userService.AssignCarrier(c.Request().Context(), userID, carrierID); err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{
		"message": fmt.Sprintf("carrier %s saved to user %s", carrierID, userID),
	})
}
