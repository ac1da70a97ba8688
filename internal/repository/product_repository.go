package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "floorquote/internal/errors"
	"floorquote/internal/model"
)

// ProductRepository defines catalog persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	List(ctx context.Context, onlyActive bool) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	// UpdateFields applies a partial $set; absent fields stay untouched.
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}, unset []string) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	db *mongo.Database
}

// NewProductRepository builds a Mongo-backed repository.
func NewProductRepository(db *mongo.Database) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) collection() *mongo.Collection {
	return r.db.Collection("products")
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	if product.Images == nil {
		product.Images = []string{}
	}

	result, err := r.collection().InsertOne(ctx, product)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicateSKU
		}
		return err
	}
	product.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *productRepository) List(ctx context.Context, onlyActive bool) ([]model.Product, error) {
	filter := bson.D{}
	if onlyActive {
		filter = bson.D{{Key: "isActive", Value: true}}
	}

	cursor, err := r.collection().Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, err
	}

	products := []model.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}

	var product model.Product
	err = r.collection().FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}, unset []string) (*model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		u := bson.M{}
		for _, k := range unset {
			u[k] = ""
		}
		update["$unset"] = u
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var product model.Product
	err = r.collection().FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, opts).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrDuplicateSKU
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrNotFound
	}

	result, err := r.collection().DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
