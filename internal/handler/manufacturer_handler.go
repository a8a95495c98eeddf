package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"phonecat/internal/apperr"
	"phonecat/internal/service"
)

// ManufacturerHandler handles manufacturer catalog endpoints.
type ManufacturerHandler struct {
	manufacturerService service.ManufacturerService
}

// NewManufacturerHandler creates a new manufacturer handler.
func NewManufacturerHandler(manufacturerService service.ManufacturerService) *ManufacturerHandler {
	return &ManufacturerHandler{manufacturerService: manufacturerService}
}

// ManufacturerRequest represents a manufacturer create/update payload.
type ManufacturerRequest struct {
	Name string `json:"name" validate:"required"`
}

// List godoc
// @Summary List all phone manufacturers
// @Tags manufacturers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /manufacturer/list [get]
func (h *ManufacturerHandler) List(c echo.Context) error {
	manufacturers, err := h.manufacturerService.List(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"manufacturers": manufacturers})
}

// Get godoc
// @Summary Find manufacturer by ID
// @Tags manufacturers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Manufacturer ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /manufacturer/{id} [get]
func (h *ManufacturerHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondErr(c, apperr.Validation("invalid manufacturer id"))
	}
	manufacturer, err := h.manufacturerService.Get(c.Request().Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"manufacturer": manufacturer})
}

// Create godoc
// @Summary Add a new manufacturer
// @Tags manufacturers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ManufacturerRequest true "Manufacturer to add"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /manufacturer [post]
func (h *ManufacturerHandler) Create(c echo.Context) error {
	var req ManufacturerRequest
	if err := c.Bind(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return respondErr(c, apperr.Validation(err.Error()))
	}

	manufacturer, err := h.manufacturerService.Create(c.Request().Context(), req.Name)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusCreated, echo.Map{"manufacturer": manufacturer})
}

// Update godoc
// @Summary Update an existing manufacturer
// @Tags manufacturers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Manufacturer ID"
// @Param request body ManufacturerRequest true "New manufacturer name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /manufacturer/{id} [put]
func (h *ManufacturerHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondErr(c, apperr.Validation("invalid manufacturer id"))
	}

	var req ManufacturerRequest
	if err := c.Bind(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return respondErr(c, apperr.Validation(err.Error()))
	}

	manufacturer, err := h.manufacturerService.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"manufacturer": manufacturer})
}

// Delete godoc
// @Summary Delete manufacturer
// @Tags manufacturers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Manufacturer ID"
// @Success 204
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /manufacturer/{id} [delete]
func (h *ManufacturerHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondErr(c, apperr.Validation("invalid manufacturer id"))
	}
	if err := h.manufacturerService.Delete(c.Request().Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
