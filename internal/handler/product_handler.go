package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "floorquote/internal/errors"
	"floorquote/internal/service"
)

// ProductHandler handles catalog endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func productForm(c echo.Context) service.ProductForm {
	return service.ProductForm{
		Name:        formField(c, "name"),
		Description: formField(c, "description"),
		Price:       formField(c, "price"),
		SalePrice:   formField(c, "salePrice"),
		Stock:       formField(c, "stock"),
		SKU:         formField(c, "sku"),
		Category:    formField(c, "category"),
		IsActive:    formField(c, "isActive"),
	}
}

// ListAdmin godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Product
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/products [get]
func (h *ProductHandler) ListAdmin(c echo.Context) error {
	products, err := h.productService.ListAdmin(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, products)
}

// ListPublic godoc
// @Summary List active products
// @Tags products
// @Produce json
// @Success 200 {array} model.Product
// @Router /products [get]
func (h *ProductHandler) ListPublic(c echo.Context) error {
	products, err := h.productService.ListPublic(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, products)
}

// Create godoc
// @Summary Create a product
// @Tags products
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Name"
// @Param price formData number true "Price"
// @Param stock formData integer true "Stock"
// @Param image formData file false "Main image"
// @Success 201 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	image, err := formImage(c)
	if err != nil {
		return httpError(err)
	}

	product, err := h.productService.Create(c.Request().Context(), productForm(c), image)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, product)
}

// Update godoc
// @Summary Update a product
// @Tags products
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param image formData file false "Replacement image"
// @Success 200 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	image, err := formImage(c)
	if err != nil {
		return httpError(err)
	}

	product, err := h.productService.Update(c.Request().Context(), c.Param("id"), productForm(c), image)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, product)
}

// Delete godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.productService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// AttachImage godoc
// @Summary Attach an image to a product
// @Description Legacy path: prepends the image and only sets the main image if unset.
// @Tags products
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param image formData file true "Image"
// @Success 200 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/products/{id}/images [post]
func (h *ProductHandler) AttachImage(c echo.Context) error {
	image, err := formImage(c)
	if err != nil {
		return httpError(err)
	}
	if image == nil {
		return httpError(apperrors.Validation("image is required"))
	}

	product, err := h.productService.AttachImage(c.Request().Context(), c.Param("id"), image)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, product)
}
