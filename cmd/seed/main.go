package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"floorquote/internal/config"
	"floorquote/internal/db"
	"floorquote/internal/model"
	"floorquote/internal/repository"
	"floorquote/internal/service"
)

// Admin users are provisioned out of band: this command creates or updates
// the admin identified by ADMIN_EMAIL with the ADMIN_PASSWORD hash, and can
// optionally install a small sample catalog.
func main() {
	sampleProducts := flag.Bool("sample-products", false, "also insert a sample catalog")
	flag.Parse()

	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
	log.Println("Indexes ensured")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), service.BcryptCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	adminRepo := repository.NewAdminRepository(database)
	if err := adminRepo.Upsert(ctx, email, string(hash)); err != nil {
		log.Fatalf("Failed to provision admin: %v", err)
	}
	log.Printf("Admin provisioned: %s", email)

	if *sampleProducts {
		created, err := seedProducts(ctx, repository.NewProductRepository(database))
		if err != nil {
			log.Fatalf("Failed to seed products: %v", err)
		}
		log.Printf("Sample products created: %d", created)
	}

	log.Println("Seed completed successfully!")
}

func seedProducts(ctx context.Context, repo repository.ProductRepository) (int, error) {
	sku1, sku2 := "OAK-NAT-5", "LVP-GRY-7"
	sale := 4.49
	samples := []model.Product{
		{
			Name:        "Natural Oak Hardwood 5in",
			Description: "Solid oak plank, natural finish, 5 inch width.",
			Price:       6.99,
			Stock:       1200,
			SKU:         &sku1,
			Category:    model.CategoryHardwood,
			IsActive:    true,
		},
		{
			Name:        "Luxury Vinyl Plank Slate Grey 7in",
			Description: "Waterproof LVP, slate grey, 7 inch width.",
			Price:       4.99,
			SalePrice:   &sale,
			Stock:       800,
			SKU:         &sku2,
			Category:    model.CategoryVinyl,
			IsActive:    true,
		},
	}

	created := 0
	for i := range samples {
		if err := repo.Create(ctx, &samples[i]); err != nil {
			// Duplicate skus mean the sample set was installed before.
			log.Printf("Skipping %s: %v", samples[i].Name, err)
			continue
		}
		created++
	}
	return created, nil
}
