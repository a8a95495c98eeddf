package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"phonecat/internal/apperr"
	"phonecat/internal/auth"
	"phonecat/internal/service"
)

// AuthHandler handles registration and login endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// CredentialsRequest represents the registration/login payload. Clients may
// identify themselves by unique_key, email, or phone.
type CredentialsRequest struct {
	UniqueKey string `json:"unique_key"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

func (r CredentialsRequest) credentials() auth.Credentials {
	return auth.Credentials{
		UniqueKey: r.UniqueKey,
		Email:     r.Email,
		Phone:     r.Phone,
		Password:  r.Password,
	}
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /users [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid request body"))
	}

	user, token, err := h.authService.Register(c.Request().Context(), req.credentials())
	if err != nil {
		return respondErr(c, err)
	}

	return respond(c, http.StatusCreated, echo.Map{
		"message": "successfully created new user",
		"user":    user,
		"token":   token,
	})
}

// Login godoc
// @Summary Login user
// @Tags users
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid request body"))
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.credentials())
	if err != nil {
		return respondErr(c, err)
	}

	return respond(c, http.StatusOK, echo.Map{
		"user":  user,
		"token": token,
	})
}
