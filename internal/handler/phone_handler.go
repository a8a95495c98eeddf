package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"phonecat/internal/apperr"
	"phonecat/internal/service"
)

// PhoneHandler handles phone catalog endpoints.
type PhoneHandler struct {
	phoneService service.PhoneService
}

// NewPhoneHandler creates a new phone handler.
func NewPhoneHandler(phoneService service.PhoneService) *PhoneHandler {
	return &PhoneHandler{phoneService: phoneService}
}

// PhoneRequest represents a phone create/update payload.
type PhoneRequest struct {
	Name           string   `json:"name"`
	Status         string   `json:"status"`
	ManufacturerID string   `json:"manufacturer_id"`
	CarrierIDs     []string `json:"carrier_ids"`
}

// PhoneListRequest represents a bulk phone insert payload.
type PhoneListRequest struct {
	Phones []PhoneRequest `json:"phones" validate:"required,min=1"`
}

func (r PhoneRequest) input() (service.PhoneInput, error) {
	in := service.PhoneInput{Name: r.Name, Status: r.Status}
	if r.ManufacturerID != "" {
		id, err := uuid.Parse(r.ManufacturerID)
		if err != nil {
			return in, apperr.Validation("invalid manufacturer id")
		}
		in.ManufacturerID = id
	}
	for _, raw := range r.CarrierIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return in, apperr.Validation("invalid carrier id")
		}
		in.CarrierIDs = append(in.CarrierIDs, id)
	}
	return in, nil
}

// List godoc
// @Summary List all phone models
// @Tags phones
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /phone/list [get]
func (h *PhoneHandler) List(c echo.Context) error {
	phones, err := h.phoneService.List(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"phones": phones})
}

// Get godoc
// @Summary Find phone by ID
// @Tags phones
// @Produce json
// @Security BearerAuth
// @Param id path string true "Phone ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /phone/{id} [get]
func (h *PhoneHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondErr(c, apperr.Validation("invalid phone id"))
	}
	phone, err := h.phoneService.Get(c.Request().Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"phone": phone})
}

// Create godoc
// @Summary Add a new phone
// @Tags phones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PhoneRequest true "Phone to add"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /phone [post]
func (h *PhoneHandler) Create(c echo.Context) error {
	var req PhoneRequest
	if err := c.Bind(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid request body"))
	}

	in, err := req.input()
	if err != nil {
		return respondErr(c, err)
	}
	phone, err := h.phoneService.Create(c.Request().Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusCreated, echo.Map{"phone": phone})
}

// CreateBatch godoc
// @Summary Add a list of phones
// @Tags phones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PhoneListRequest true "Phones to add"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /phone/addList [post]
func (h *PhoneHandler) CreateBatch(c echo.Context) error {
	var req PhoneListRequest
	if err := c.Bind(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return respondErr(c, apperr.Validation(err.Error()))
	}

	inputs := make([]service.PhoneInput, 0, len(req.Phones))
	for _, item := range req.Phones {
		in, err := item.input()
		if err != nil {
			return respondErr(c, err)
		}
		inputs = append(inputs, in)
	}

	count, err := h.phoneService.CreateBatch(c.Request().Context(), inputs)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusCreated, echo.Map{"message": "phones added", "count": count})
}

// Update godoc
// @Summary Update an existing phone
// @Tags phones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Phone ID"
// @Param request body PhoneRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /phone/{id} [put]
func (h *PhoneHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondErr(c, apperr.Validation("invalid phone id"))
	}

	var req PhoneRequest
	if err := c.Bind(&req); err != nil {
		return respondErr(c, apperr.Validation("invalid request body"))
	}

	in, err := req.input()
	if err != nil {
		return respondErr(c, err)
	}
	phone, err := h.phoneService.Update(c.Request().Context(), id, in)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"phone": phone})
}

// Delete godoc
// @Summary Delete phone
// @Tags phones
// @Produce json
// @Security BearerAuth
// @Param id path string true "Phone ID"
// @Success 204
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /phone/{id} [delete]
func (h *PhoneHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondErr(c, apperr.Validation("invalid phone id"))
	}
	if err := h.phoneService.Delete(c.Request().Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
