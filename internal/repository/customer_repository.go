package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"floorquote/internal/model"
)

// CustomerRepository defines customer persistence operations. Customers are
// only ever written through Upsert: insert-if-absent keyed by email, else
// update name/phone.
type CustomerRepository interface {
	Upsert(ctx context.Context, email, name, phone string) error
	List(ctx context.Context) ([]model.Customer, error)
}

type customerRepository struct {
	db *mongo.Database
}

// NewCustomerRepository builds a Mongo-backed repository.
func NewCustomerRepository(db *mongo.Database) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) collection() *mongo.Collection {
	return r.db.Collection("customers")
}

func (r *customerRepository) Upsert(ctx context.Context, email, name, phone string) error {
	now := time.Now().UTC()
	set := bson.D{{Key: "updatedAt", Value: now}}
	if name != "" {
		set = append(set, bson.E{Key: "name", Value: name})
	}
	if phone != "" {
		set = append(set, bson.E{Key: "phone", Value: phone})
	}

	filter := bson.D{{Key: "email", Value: email}}
	update := bson.D{
		{Key: "$set", Value: set},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "email", Value: email},
			{Key: "createdAt", Value: now},
		}},
	}
	_, err := r.collection().UpdateOne(ctx, filter, update, upsertOpts())
	return err
}

func (r *customerRepository) List(ctx context.Context) ([]model.Customer, error) {
	cursor, err := r.collection().Find(ctx, bson.D{}, newestFirst())
	if err != nil {
		return nil, err
	}

	customers := []model.Customer{}
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}
