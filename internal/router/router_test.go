package router

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"floorquote/internal/auth"
	"floorquote/internal/config"
	"floorquote/internal/handler"
	"floorquote/internal/model"
	"floorquote/internal/service"
)

const testSecret = "router-test-secret"

type stubAuthService struct{}

func (stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return "", nil
}

type stubProductService struct{}

func (stubProductService) ListAdmin(ctx context.Context) ([]model.Product, error) {
	return []model.Product{}, nil
}

func (stubProductService) ListPublic(ctx context.Context) ([]model.Product, error) {
	return []model.Product{}, nil
}

func (stubProductService) Create(ctx context.Context, form service.ProductForm, image *multipart.FileHeader) (*model.Product, error) {
	return &model.Product{}, nil
}

func (stubProductService) Update(ctx context.Context, id string, form service.ProductForm, image *multipart.FileHeader) (*model.Product, error) {
	return &model.Product{}, nil
}

func (stubProductService) Delete(ctx context.Context, id string) error { return nil }

func (stubProductService) AttachImage(ctx context.Context, id string, image *multipart.FileHeader) (*model.Product, error) {
	return &model.Product{}, nil
}

type stubGalleryService struct{}

func (stubGalleryService) List(ctx context.Context, category string) ([]model.GalleryImage, error) {
	return []model.GalleryImage{}, nil
}

func (stubGalleryService) Create(ctx context.Context, image *multipart.FileHeader, category string) (*model.GalleryImage, error) {
	return &model.GalleryImage{}, nil
}

func (stubGalleryService) Delete(ctx context.Context, id string) error { return nil }

type stubCustomerService struct{}

func (stubCustomerService) List(ctx context.Context) ([]model.Customer, error) {
	return []model.Customer{}, nil
}

type stubQuoteService struct{}

func (stubQuoteService) SubmitContact(ctx context.Context, in service.ContactInput) error {
	return nil
}

func (stubQuoteService) SubmitOrder(ctx context.Context, req service.OrderRequest) (*model.Order, error) {
	return &model.Order{}, nil
}

func (stubQuoteService) ListOrders(ctx context.Context) ([]model.Order, error) {
	return []model.Order{}, nil
}

func newTestServer(t *testing.T) (*echo.Echo, *auth.JWTService) {
	t.Helper()

	e := echo.New()
	jwtService := auth.NewJWTService(testSecret, time.Hour)
	cfg := &config.Config{UploadsDir: t.TempDir()}

	Register(e, cfg, jwtService, nil,
		handler.NewAuthHandler(stubAuthService{}),
		handler.NewProductHandler(stubProductService{}),
		handler.NewGalleryHandler(stubGalleryService{}),
		handler.NewCustomerHandler(stubCustomerService{}),
		handler.NewQuoteHandler(stubQuoteService{}),
	)
	return e, jwtService
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		Code string `json:"code"`
	}
	assert.NoError(t, json.Unmarshal(body, &resp))
	return resp.Code
}

func signToken(t *testing.T, role string, expiresIn time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := &auth.Claims{
		Email: "someone@example.com",
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "abc123",
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Minute)),
			NotBefore: jwt.NewNumericDate(now.Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return token
}

func TestAdminRoutes_CredentialTaxonomy(t *testing.T) {
	e, jwtService := newTestServer(t)

	validToken, err := jwtService.GenerateToken("abc123", "admin@example.com")
	assert.NoError(t, err)

	tests := []struct {
		name         string
		authHeader   string
		expectedCode int
		expectedErr  string
	}{
		{
			name:         "no header",
			authHeader:   "",
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "MISSING_CREDENTIAL",
		},
		{
			name:         "non-bearer scheme",
			authHeader:   "Basic dXNlcjpwYXNz",
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "MALFORMED_CREDENTIAL",
		},
		{
			name:         "garbage bearer token",
			authHeader:   "Bearer not-a-jwt",
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "INVALID_OR_EXPIRED_CREDENTIAL",
		},
		{
			name:         "expired token",
			authHeader:   "Bearer " + signToken(t, auth.RoleAdmin, -time.Hour),
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "INVALID_OR_EXPIRED_CREDENTIAL",
		},
		{
			name:         "valid token with wrong role",
			authHeader:   "Bearer " + signToken(t, "editor", time.Hour),
			expectedCode: http.StatusForbidden,
			expectedErr:  "FORBIDDEN",
		},
		{
			name:         "valid admin token",
			authHeader:   "Bearer " + validToken,
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/products", nil)
			if tt.authHeader != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authHeader)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, errorCode(t, rec.Body.Bytes()))
			}
		})
	}
}

func TestAdminRoutes_AllGated(t *testing.T) {
	e, _ := newTestServer(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/me"},
		{http.MethodGet, "/api/admin/products"},
		{http.MethodPost, "/api/admin/products"},
		{http.MethodPut, "/api/admin/products/abc"},
		{http.MethodDelete, "/api/admin/products/abc"},
		{http.MethodPost, "/api/admin/products/abc/images"},
		{http.MethodGet, "/api/admin/customers"},
		{http.MethodGet, "/api/admin/orders"},
		{http.MethodPost, "/api/admin/gallery"},
		{http.MethodDelete, "/api/admin/gallery/abc"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			req := httptest.NewRequest(rt.method, rt.path, nil)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "MISSING_CREDENTIAL", errorCode(t, rec.Body.Bytes()))
		})
	}
}

func TestPublicRoutes_NoCredentialRequired(t *testing.T) {
	e, _ := newTestServer(t)

	for _, path := range []string{"/api/products", "/api/gallery", "/healthz"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestMeReturnsTokenIdentity(t *testing.T) {
	e, jwtService := newTestServer(t)

	token, err := jwtService.GenerateToken("abc123", "admin@example.com")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "abc123", body["id"])
	assert.Equal(t, "admin@example.com", body["email"])
	assert.Equal(t, auth.RoleAdmin, body["role"])
}
