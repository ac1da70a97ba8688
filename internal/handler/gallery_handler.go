package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "floorquote/internal/errors"
	"floorquote/internal/service"
)

// GalleryHandler handles gallery endpoints.
type GalleryHandler struct {
	galleryService service.GalleryService
}

// NewGalleryHandler creates a new gallery handler.
func NewGalleryHandler(galleryService service.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

// List godoc
// @Summary List gallery images
// @Tags gallery
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} model.GalleryImage
// @Failure 400 {object} errors.ErrorResponse
// @Router /gallery [get]
func (h *GalleryHandler) List(c echo.Context) error {
	images, err := h.galleryService.List(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, images)
}

// Create godoc
// @Summary Upload a gallery image
// @Tags gallery
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image"
// @Param category formData string true "Category"
// @Success 201 {object} model.GalleryImage
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/gallery [post]
func (h *GalleryHandler) Create(c echo.Context) error {
	image, err := formImage(c)
	if err != nil {
		return httpError(err)
	}
	if image == nil {
		return httpError(apperrors.Validation("image is required"))
	}

	record, err := h.galleryService.Create(c.Request().Context(), image, c.FormValue("category"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, record)
}

// Delete godoc
// @Summary Delete a gallery image
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path string true "Image ID"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/gallery/{id} [delete]
func (h *GalleryHandler) Delete(c echo.Context) error {
	if err := h.galleryService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
