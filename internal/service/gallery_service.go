package service

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog/log"

	apperrors "floorquote/internal/errors"
	"floorquote/internal/model"
	"floorquote/internal/repository"
	"floorquote/internal/storage"
)

// GalleryService handles gallery CRUD. There is no update operation.
type GalleryService interface {
	List(ctx context.Context, category string) ([]model.GalleryImage, error)
	Create(ctx context.Context, image *multipart.FileHeader, category string) (*model.GalleryImage, error)
	Delete(ctx context.Context, id string) error
}

type galleryService struct {
	galleryRepo repository.GalleryRepository
	files       storage.FileStore
}

// NewGalleryService creates a new gallery service.
func NewGalleryService(galleryRepo repository.GalleryRepository, files storage.FileStore) GalleryService {
	return &galleryService{
		galleryRepo: galleryRepo,
		files:       files,
	}
}

// List returns images newest-first, optionally filtered by category.
func (s *galleryService) List(ctx context.Context, category string) ([]model.GalleryImage, error) {
	if category != "" && !model.ValidGalleryCategory(category) {
		return nil, apperrors.Validation("invalid category")
	}
	return s.galleryRepo.List(ctx, category)
}

func (s *galleryService) Create(ctx context.Context, image *multipart.FileHeader, category string) (*model.GalleryImage, error) {
	category = strings.TrimSpace(category)
	if !model.ValidGalleryCategory(category) {
		return nil, apperrors.Validation("invalid category")
	}
	if image == nil {
		return nil, apperrors.Validation("image is required")
	}

	path, err := s.files.Save(image)
	if err != nil {
		return nil, err
	}

	record := &model.GalleryImage{
		URL:      path,
		Category: category,
	}
	if err := s.galleryRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Delete removes the record, then its backing file best-effort.
func (s *galleryService) Delete(ctx context.Context, id string) error {
	image, err := s.galleryRepo.Delete(ctx, id)
	if err != nil {
		return err
	}

	if err := s.files.Remove(image.URL); err != nil {
		log.Warn().Err(err).Str("path", image.URL).Msg("failed to remove stored file")
	}
	return nil
}
