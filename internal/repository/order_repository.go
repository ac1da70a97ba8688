package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"floorquote/internal/model"
)

// OrderRepository defines order persistence operations. Orders are an
// append-only audit log of quote requests.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	List(ctx context.Context) ([]model.Order, error)
}

type orderRepository struct {
	db *mongo.Database
}

// NewOrderRepository builds a Mongo-backed repository.
func NewOrderRepository(db *mongo.Database) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) collection() *mongo.Collection {
	return r.db.Collection("orders")
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	order.CreatedAt = time.Now().UTC()
	if order.Items == nil {
		order.Items = []model.OrderItem{}
	}

	result, err := r.collection().InsertOne(ctx, order)
	if err != nil {
		return err
	}
	order.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	cursor, err := r.collection().Find(ctx, bson.D{}, newestFirst())
	if err != nil {
		return nil, err
	}

	orders := []model.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
