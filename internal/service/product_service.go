package service

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"floorquote/internal/cache"
	apperrors "floorquote/internal/errors"
	"floorquote/internal/model"
	"floorquote/internal/repository"
	"floorquote/internal/storage"
)

const (
	publicProductsKey = "products:public"
	publicProductsTTL = 60 * time.Second
)

// ProductForm carries the raw multipart form fields of a catalog write. A nil
// field was not supplied and must stay untouched on update.
type ProductForm struct {
	Name        *string
	Description *string
	Price       *string
	SalePrice   *string
	Stock       *string
	SKU         *string
	Category    *string
	IsActive    *string
}

// ProductService handles catalog operations.
type ProductService interface {
	ListAdmin(ctx context.Context) ([]model.Product, error)
	ListPublic(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, form ProductForm, image *multipart.FileHeader) (*model.Product, error)
	Update(ctx context.Context, id string, form ProductForm, image *multipart.FileHeader) (*model.Product, error)
	Delete(ctx context.Context, id string) error
	AttachImage(ctx context.Context, id string, image *multipart.FileHeader) (*model.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
	files       storage.FileStore
	cache       *cache.Client
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, files storage.FileStore, cacheClient *cache.Client) ProductService {
	return &productService{
		productRepo: productRepo,
		files:       files,
		cache:       cacheClient,
	}
}

// ListAdmin returns all products newest-first, regardless of isActive.
func (s *productService) ListAdmin(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.List(ctx, false)
}

// ListPublic returns active products newest-first, served through a short-TTL
// cache. Cache failures degrade to a straight read.
func (s *productService) ListPublic(ctx context.Context) ([]model.Product, error) {
	if data, _ := s.cache.Get(ctx, publicProductsKey); data != nil {
		var products []model.Product
		if err := json.Unmarshal(data, &products); err == nil {
			return products, nil
		}
	}

	products, err := s.productRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(products); err == nil {
		_ = s.cache.Set(ctx, publicProductsKey, data, publicProductsTTL)
	}
	return products, nil
}

// Create validates and coerces the form, stores the optional image, and
// inserts the product.
func (s *productService) Create(ctx context.Context, form ProductForm, image *multipart.FileHeader) (*model.Product, error) {
	name := formValue(form.Name)
	if name == "" || form.Price == nil || form.Stock == nil {
		return nil, apperrors.Validation("name, price and stock are required")
	}

	price, err := parsePrice(*form.Price)
	if err != nil {
		return nil, err
	}
	stock, err := parseStock(*form.Stock)
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:        name,
		Description: formValue(form.Description),
		Price:       price,
		Stock:       stock,
		Category:    model.CategoryOther,
		IsActive:    true,
		Images:      []string{},
	}

	if form.SalePrice != nil && strings.TrimSpace(*form.SalePrice) != "" {
		sale, err := parsePrice(*form.SalePrice)
		if err != nil {
			return nil, err
		}
		product.SalePrice = &sale
	}

	// A blank sku is stored as absent so the partial unique index never
	// collides on empty strings.
	if sku := formValue(form.SKU); sku != "" {
		product.SKU = &sku
	}

	if category := formValue(form.Category); category != "" {
		if !model.ValidProductCategory(category) {
			return nil, apperrors.Validation("invalid category")
		}
		product.Category = category
	}

	if form.IsActive != nil {
		active, err := strconv.ParseBool(strings.TrimSpace(*form.IsActive))
		if err != nil {
			return nil, apperrors.Validation("isActive must be true or false")
		}
		product.IsActive = active
	}

	if image != nil {
		path, err := s.files.Save(image)
		if err != nil {
			return nil, err
		}
		product.MainImage = path
		product.Images = []string{path}
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.bustPublicCache(ctx)
	return product, nil
}

// Update applies the same coercion rules as Create to supplied fields only.
// Supplying an image replaces mainImage and the images list wholesale; the
// previously stored files are removed best-effort.
func (s *productService) Update(ctx context.Context, id string, form ProductForm, image *multipart.FileHeader) (*model.Product, error) {
	fields := map[string]interface{}{}
	var unset []string

	if form.Name != nil {
		name := strings.TrimSpace(*form.Name)
		if name == "" {
			return nil, apperrors.Validation("name cannot be blank")
		}
		fields["name"] = name
	}
	if form.Description != nil {
		fields["description"] = strings.TrimSpace(*form.Description)
	}
	if form.Price != nil {
		price, err := parsePrice(*form.Price)
		if err != nil {
			return nil, err
		}
		fields["price"] = price
	}
	if form.SalePrice != nil {
		if strings.TrimSpace(*form.SalePrice) == "" {
			unset = append(unset, "salePrice")
		} else {
			sale, err := parsePrice(*form.SalePrice)
			if err != nil {
				return nil, err
			}
			fields["salePrice"] = sale
		}
	}
	if form.Stock != nil {
		stock, err := parseStock(*form.Stock)
		if err != nil {
			return nil, err
		}
		fields["stock"] = stock
	}
	if form.SKU != nil {
		if sku := strings.TrimSpace(*form.SKU); sku != "" {
			fields["sku"] = sku
		} else {
			unset = append(unset, "sku")
		}
	}
	if form.Category != nil {
		category := strings.TrimSpace(*form.Category)
		if !model.ValidProductCategory(category) {
			return nil, apperrors.Validation("invalid category")
		}
		fields["category"] = category
	}
	if form.IsActive != nil {
		active, err := strconv.ParseBool(strings.TrimSpace(*form.IsActive))
		if err != nil {
			return nil, apperrors.Validation("isActive must be true or false")
		}
		fields["isActive"] = active
	}

	var replaced []string
	if image != nil {
		existing, err := s.productRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		replaced = existing.Images

		path, err := s.files.Save(image)
		if err != nil {
			return nil, err
		}
		fields["mainImage"] = path
		fields["images"] = []string{path}
	}

	product, err := s.productRepo.UpdateFields(ctx, id, fields, unset)
	if err != nil {
		return nil, err
	}

	s.removeFiles(replaced)
	s.bustPublicCache(ctx)
	return product, nil
}

// Delete removes the product and its stored image files.
func (s *productService) Delete(ctx context.Context, id string) error {
	existing, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.removeFiles(existing.Images)
	s.bustPublicCache(ctx)
	return nil
}

// AttachImage is the legacy single-image path: the new image is prepended to
// the images list and mainImage is only set if previously unset
// (first-image-wins). Nothing is deleted.
func (s *productService) AttachImage(ctx context.Context, id string, image *multipart.FileHeader) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	path, err := s.files.Save(image)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"images": append([]string{path}, existing.Images...),
	}
	if existing.MainImage == "" {
		fields["mainImage"] = path
	}

	product, err := s.productRepo.UpdateFields(ctx, id, fields, nil)
	if err != nil {
		return nil, err
	}

	s.bustPublicCache(ctx)
	return product, nil
}

func (s *productService) bustPublicCache(ctx context.Context) {
	_ = s.cache.Delete(ctx, publicProductsKey)
}

func (s *productService) removeFiles(paths []string) {
	for _, path := range paths {
		if err := s.files.Remove(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("failed to remove stored file")
		}
	}
}

func formValue(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || price < 0 {
		return 0, apperrors.ErrInvalidNumeric
	}
	return price, nil
}

func parseStock(raw string) (int, error) {
	stock, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || stock < 0 {
		return 0, apperrors.ErrInvalidNumeric
	}
	return stock, nil
}
