package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"floorquote/internal/service"
)

// CustomerHandler handles the admin customer read surface.
type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List godoc
// @Summary List customers
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Customer
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.customerService.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, customers)
}
