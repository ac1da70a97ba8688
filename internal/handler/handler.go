package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "floorquote/internal/errors"
)

// httpError translates a domain error into an Echo error carrying the
// standard response body.
func httpError(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

// validationError builds a 400 response naming the first violated field.
func validationError(err error) *echo.HTTPError {
	return httpError(apperrors.Validation(firstValidationMessage(err)))
}

// firstValidationMessage renders the first violation as a human-readable
// message referencing the offending field.
func firstValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "required":
			return field + " is required"
		case "email":
			return field + " must be a valid email address"
		case "min":
			return field + " must be at least " + fe.Param() + " characters"
		case "max":
			return field + " must be at most " + fe.Param() + " characters"
		}
		return field + " is invalid"
	}
	return "invalid request"
}

// formField returns a pointer to the form value, or nil when the field was
// not supplied at all. Update handlers rely on the distinction.
func formField(c echo.Context, name string) *string {
	params, err := c.FormParams()
	if err != nil {
		return nil
	}
	if vs, ok := params[name]; ok && len(vs) > 0 {
		v := vs[0]
		return &v
	}
	return nil
}

// formImage returns the optional image upload, nil when absent.
func formImage(c echo.Context) (*multipart.FileHeader, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, nil
	}
	return file, nil
}
