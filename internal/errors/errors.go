package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// The message is identical whether or not the email exists.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrMissingCredential is returned when no Authorization header is presented.
	ErrMissingCredential = errors.New("missing credentials")
	// ErrMalformedCredential is returned when the Authorization header is not a bearer token.
	ErrMalformedCredential = errors.New("malformed authorization header")
	// ErrInvalidOrExpiredCredential is returned when token verification fails.
	ErrInvalidOrExpiredCredential = errors.New("invalid or expired token")
	// ErrForbidden is returned when the token role is not admin.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned when a record does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateSKU is returned on a unique-index conflict on product sku.
	ErrDuplicateSKU = errors.New("a product with this SKU already exists")
	// ErrNoItems is returned when an order submission carries an empty items array.
	ErrNoItems = errors.New("order must contain at least one item")
	// ErrInvalidNumeric is returned when price or stock cannot be parsed as a number.
	ErrInvalidNumeric = errors.New("price and stock must be valid non-negative numbers")
	// ErrImageTooLarge is returned when an uploaded file exceeds the size limit.
	ErrImageTooLarge = errors.New("image must be smaller than 10MB")
	// ErrNotAnImage is returned when an uploaded file is not an image mimetype.
	ErrNotAnImage = errors.New("uploaded file must be an image")
)

// ValidationError carries a field-specific message for a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation creates a ValidationError with the given message.
func Validation(message string) error {
	return &ValidationError{Message: message}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unrecognized errors map
// to a generic 500 so internal detail never leaks to the client.
func MapErrorToHTTP(err error) *HTTPError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return NewHTTPError(http.StatusBadRequest, verr.Message, "VALIDATION_ERROR")
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrMissingCredential):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "MISSING_CREDENTIAL")
	case errors.Is(err, ErrMalformedCredential):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "MALFORMED_CREDENTIAL")
	case errors.Is(err, ErrInvalidOrExpiredCredential):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_OR_EXPIRED_CREDENTIAL")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrDuplicateSKU):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DUPLICATE_SKU")
	case errors.Is(err, ErrNoItems):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_ITEMS")
	case errors.Is(err, ErrInvalidNumeric):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_NUMERIC")
	case errors.Is(err, ErrImageTooLarge):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "IMAGE_TOO_LARGE")
	case errors.Is(err, ErrNotAnImage):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NOT_AN_IMAGE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
