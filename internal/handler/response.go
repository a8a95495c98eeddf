package handler

import (
	"github.com/labstack/echo/v4"

	"phonecat/internal/apperr"
)

// respond writes the success envelope, merging data into {"success": true}.
func respond(c echo.Context, code int, data echo.Map) error {
	body := echo.Map{"success": true}
	for k, v := range data {
		body[k] = v
	}
	return c.JSON(code, body)
}

// respondErr translates a typed failure into the rejection envelope. This is
// the single place a failure kind becomes a transport-level response; internal
// causes never reach the client message.
func respondErr(c echo.Context, err error) error {
	ae := apperr.From(err)
	return c.JSON(ae.HTTPStatus(), echo.Map{"success": false, "error": ae.Message})
}
