package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"phonecat/internal/service"
)

// SeedHandler handles catalog fixture seeding.
type SeedHandler struct {
	seedService service.SeedService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(seedService service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// SeedCatalog godoc
// @Summary Seed catalog fixtures
// @Tags seed
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /seed/catalog [get]
func (h *SeedHandler) SeedCatalog(c echo.Context) error {
	count, err := h.seedService.SeedCatalog(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{
		"message": "catalog seeded",
		"count":   count,
	})
}
