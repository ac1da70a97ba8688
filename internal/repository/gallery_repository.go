package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "floorquote/internal/errors"
	"floorquote/internal/model"
)

// GalleryRepository defines gallery persistence operations.
type GalleryRepository interface {
	Create(ctx context.Context, image *model.GalleryImage) error
	List(ctx context.Context, category string) ([]model.GalleryImage, error)
	// Delete removes the record and returns it so callers can clean up the file.
	Delete(ctx context.Context, id string) (*model.GalleryImage, error)
}

type galleryRepository struct {
	db *mongo.Database
}

// NewGalleryRepository builds a Mongo-backed repository.
func NewGalleryRepository(db *mongo.Database) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) collection() *mongo.Collection {
	return r.db.Collection("gallery")
}

func (r *galleryRepository) Create(ctx context.Context, image *model.GalleryImage) error {
	now := time.Now().UTC()
	image.CreatedAt = now
	image.UpdatedAt = now

	result, err := r.collection().InsertOne(ctx, image)
	if err != nil {
		return err
	}
	image.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *galleryRepository) List(ctx context.Context, category string) ([]model.GalleryImage, error) {
	filter := bson.D{}
	if category != "" {
		filter = bson.D{{Key: "category", Value: category}}
	}

	cursor, err := r.collection().Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, err
	}

	images := []model.GalleryImage{}
	if err := cursor.All(ctx, &images); err != nil {
		return nil, err
	}
	return images, nil
}

func (r *galleryRepository) Delete(ctx context.Context, id string) (*model.GalleryImage, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}

	var image model.GalleryImage
	err = r.collection().FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&image)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &image, nil
}
