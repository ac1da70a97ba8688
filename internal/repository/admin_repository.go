package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "floorquote/internal/errors"
	"floorquote/internal/model"
)

// AdminRepository defines admin persistence operations.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	Upsert(ctx context.Context, email, passwordHash string) error
}

type adminRepository struct {
	db *mongo.Database
}

// NewAdminRepository builds a Mongo-backed repository.
func NewAdminRepository(db *mongo.Database) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) collection() *mongo.Collection {
	return r.db.Collection("admins")
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	err := r.collection().FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// Upsert creates or updates the admin keyed by email. Used by provisioning only.
func (r *adminRepository) Upsert(ctx context.Context, email, passwordHash string) error {
	now := time.Now().UTC()
	filter := bson.D{{Key: "email", Value: email}}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "passwordHash", Value: passwordHash},
			{Key: "updatedAt", Value: now},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "email", Value: email},
			{Key: "createdAt", Value: now},
		}},
	}
	_, err := r.collection().UpdateOne(ctx, filter, update, upsertOpts())
	return err
}
