package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"floorquote/internal/auth"
	"floorquote/internal/cache"
	"floorquote/internal/config"
	apperrors "floorquote/internal/errors"
	"floorquote/internal/handler"
)

const (
	contactRateLimit  = 10
	contactRateWindow = 15 * time.Minute
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	cacheClient *cache.Client,
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	galleryHandler *handler.GalleryHandler,
	customerHandler *handler.CustomerHandler,
	quoteHandler *handler.QuoteHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded images are served statically with the permissive CORS above.
	e.Static("/uploads", cfg.UploadsDir)

	api := e.Group("/api")

	// Public routes
	api.POST("/admin/login", authHandler.Login)
	api.GET("/products", productHandler.ListPublic)
	api.GET("/gallery", galleryHandler.List)
	api.POST("/contact", quoteHandler.Contact, RateLimit(cacheClient, contactRateLimit, contactRateWindow))
	api.POST("/order", quoteHandler.Order)

	// Admin routes (bearer-token gated)
	admin := api.Group("/admin", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(tokenString)
			if err != nil {
				return nil, err
			}
			return claims, nil
		},
		ErrorHandler: credentialErrorHandler,
	}), requireAdmin)

	admin.GET("/me", authHandler.Me)
	admin.GET("/products", productHandler.ListAdmin)
	admin.POST("/products", productHandler.Create)
	admin.PUT("/products/:id", productHandler.Update)
	admin.DELETE("/products/:id", productHandler.Delete)
	admin.POST("/products/:id/images", productHandler.AttachImage)
	admin.GET("/customers", customerHandler.List)
	admin.GET("/orders", quoteHandler.ListOrders)
	admin.POST("/gallery", galleryHandler.Create)
	admin.DELETE("/gallery/:id", galleryHandler.Delete)
}

// credentialErrorHandler maps token extraction/verification failures onto the
// credential error taxonomy. It inspects the raw header because echo-jwt
// collapses every failure mode into one error.
func credentialErrorHandler(c echo.Context, _ error) error {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	var err error
	switch {
	case header == "":
		err = apperrors.ErrMissingCredential
	case !strings.HasPrefix(header, "Bearer "):
		err = apperrors.ErrMalformedCredential
	default:
		err = apperrors.ErrInvalidOrExpiredCredential
	}
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

// requireAdmin rejects tokens whose role claim is not admin. Runs after the
// JWT middleware stored the verified claims.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get("user").(*auth.Claims)
		if !ok || claims.Role != auth.RoleAdmin {
			he := apperrors.MapErrorToHTTP(apperrors.ErrForbidden)
			return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
		}
		return next(c)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
