package middleware

import (
	"errors"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"phonecat/internal/apperr"
	"phonecat/internal/auth"
	"phonecat/internal/model"
	"phonecat/internal/repository"
)

// principalKey is the echo context key under which the authenticated user is
// stored for downstream handlers.
const principalKey = "principal"

// JWT returns middleware that authenticates bearer tokens on protected routes.
// The token is verified statelessly, then the subject is resolved against
// storage; the loaded user becomes the request principal. Any failure short-
// circuits with the rejection envelope before the downstream handler runs.
func JWT(tokens *auth.TokenService, users repository.UserRepository) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  principalKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			userID, err := tokens.Verify(token)
			if err != nil {
				return nil, err
			}
			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					// subject vanished since issuance; token no longer usable
					return nil, apperr.TokenInvalid()
				}
				return nil, apperr.Internal(err)
			}
			return user, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var ae *apperr.Error
			if !errors.As(err, &ae) {
				// extraction failures (missing/malformed header) arrive untyped
				ae = apperr.TokenInvalid()
			}
			return c.JSON(ae.HTTPStatus(), echo.Map{"success": false, "error": ae.Message})
		},
	})
}

// Principal returns the authenticated user attached by JWT, or nil on an
// unprotected route.
func Principal(c echo.Context) *model.User {
	user, _ := c.Get(principalKey).(*model.User)
	return user
}
