package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"phonecat/internal/apperr"
	"phonecat/internal/service"
)

// CarrierHandler handles carrier catalog endpoints.
type CarrierHandler struct {
	carrierService service.CarrierService
}

// NewCarrierHandler creates a new carrier handler.
func NewCarrierHandler(carrierService service.CarrierService) *CarrierHandler {
	return &CarrierHandler{carrierService: carrierService}
}

// CarrierRequest represents a carrier create/update payload.
type CarrierRequest struct {
	Name string `json:"name" validate:"required"`
}

// List godoc
// @Summary List all phone carriers
// @Tags carriers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /carrier/list [get]
func (h *CarrierHandler) List(c echo.Context) error {
	carriers, err := h.carrierService.List(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"carriers": carriers})
}

// Get godoc
// @Summary Find carrier by ID
// @Tags carriers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Carrier ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /carrier/{id} [get]
func (h *CarrierHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondErr(c, apperr.Validation("invalid carrier id"))
	}
	carrier, err := h.carrierService.Get(c.Request().Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"carrier": carrier})
}

// Create godoc
// @Summary Add a new carrier
// @Tags carriers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CarrierRequest true "Carrier to add"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /carrier [post]
func (h *CarrierHandler) Create(c echo.Context) error {
	var req CarrierRequest
	if err := c.Bind(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return respondErr(c, apperr.Validation(err.Error()))
	}

	carrier, err := h.carrierService.Create(c.Request().Context(), req.Name)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusCreated, echo.Map{"carrier": carrier})
}

// Update godoc
// @Summary Update an existing carrier
// @Tags carriers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Carrier ID"
// @Param request body CarrierRequest true "New carrier name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /carrier/{id} [put]
func (h *CarrierHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondErr(c, apperr.Validation("invalid carrier id"))
	}

	var req CarrierRequest
	if err := c.Bind(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return respondErr(c, apperr.Validation(err.Error()))
	}

	carrier, err := h.carrierService.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"carrier": carrier})
}

// Delete godoc
// @Summary Delete carrier
// @Tags carriers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Carrier ID"
// @Success 204
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /carrier/{id} [delete]
func (h *CarrierHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondErr(c, apperr.Validation("invalid carrier id"))
	}
	if err := h.carrierService.Delete(c.Request().Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
