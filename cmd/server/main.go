package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "floorquote/docs" // swagger docs

	"floorquote/internal/auth"
	"floorquote/internal/cache"
	"floorquote/internal/config"
	"floorquote/internal/db"
	"floorquote/internal/handler"
	"floorquote/internal/mailer"
	"floorquote/internal/repository"
	"floorquote/internal/router"
	"floorquote/internal/service"
	"floorquote/internal/storage"
)

// @title Floor Quote API
// @version 1.0
// @description Marketing site backend for a flooring contractor: catalog, gallery, and quote pipeline with an admin back office.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	indexCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := db.EnsureIndexes(indexCtx, database); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	uploadStore, err := storage.NewStore(cfg.UploadsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("uploads init")
	}

	// The SMTP client is constructed once here and passed by handle.
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)

	// Initialize repositories
	adminRepo := repository.NewAdminRepository(database)
	productRepo := repository.NewProductRepository(database)
	customerRepo := repository.NewCustomerRepository(database)
	galleryRepo := repository.NewGalleryRepository(database)
	orderRepo := repository.NewOrderRepository(database)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHrs)*time.Hour)

	// Initialize services
	authService := service.NewAuthService(adminRepo, jwtService)
	productService := service.NewProductService(productRepo, uploadStore, cacheClient)
	galleryService := service.NewGalleryService(galleryRepo, uploadStore)
	customerService := service.NewCustomerService(customerRepo)
	quoteService := service.NewQuoteService(customerRepo, orderRepo, smtpMailer, cfg.ContactEmail)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	galleryHandler := handler.NewGalleryHandler(galleryService)
	customerHandler := handler.NewCustomerHandler(customerService)
	quoteHandler := handler.NewQuoteHandler(quoteService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		cacheClient,
		authHandler,
		productHandler,
		galleryHandler,
		customerHandler,
		quoteHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
