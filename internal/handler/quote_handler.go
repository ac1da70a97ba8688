package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "floorquote/internal/errors"
	"floorquote/internal/service"
)

// QuoteHandler handles the public contact and order entry points plus the
// admin order listing.
type QuoteHandler struct {
	quoteService service.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(quoteService service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// ContactRequest is the contact-form schema.
type ContactRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=80"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=40"`
	Type     string `json:"type" validate:"omitempty,max=60"`
	Timeline string `json:"timeline" validate:"omitempty,max=60"`
	Message  string `json:"message" validate:"required,min=5,max=1000"`
}

// Contact godoc
// @Summary Submit a contact inquiry
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Inquiry"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /contact [post]
func (h *QuoteHandler) Contact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.Validation("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	err := h.quoteService.SubmitContact(c.Request().Context(), service.ContactInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ProjectType: req.Type,
		Timeline:    req.Timeline,
		Message:     req.Message,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// Order godoc
// @Summary Submit a store cart quote request
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body service.OrderRequest true "Cart"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /order [post]
func (h *QuoteHandler) Order(c echo.Context) error {
	var req service.OrderRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.Validation("invalid request body"))
	}

	if _, err := h.quoteService.SubmitOrder(c.Request().Context(), req); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// ListOrders godoc
// @Summary List order requests
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Order
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/orders [get]
func (h *QuoteHandler) ListOrders(c echo.Context) error {
	orders, err := h.quoteService.ListOrders(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}
