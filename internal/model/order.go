package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order sources.
const (
	OrderSourceContact = "contact"
	OrderSourceStore   = "store"
)

// OrderCustomer is the normalized contact block attached to an order.
type OrderCustomer struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// OrderItem is one normalized line item. UnitPrice and LineTotal are pointers
// because the quote flow distinguishes "unknown" from zero.
type OrderItem struct {
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Qty         float64  `bson:"qty" json:"qty"`
	UnitPrice   *float64 `bson:"unitPrice,omitempty" json:"unitPrice,omitempty"`
	LineTotal   *float64 `bson:"lineTotal,omitempty" json:"lineTotal,omitempty"`
}

// Order is the durable record of a quote/contact request. Only its side
// effects (customer upsert, emails) existed historically; persisting it gives
// the back office an auditable log.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Customer  OrderCustomer      `bson:"customer" json:"customer"`
	Items     []OrderItem        `bson:"items" json:"items"`
	Total     *float64           `bson:"total,omitempty" json:"total,omitempty"`
	Source    string             `bson:"source" json:"source"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
