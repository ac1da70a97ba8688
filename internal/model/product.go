package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product categories form a closed label set; unknown labels are rejected at
// the service boundary and absent ones default to CategoryOther.
const (
	CategoryHardwood = "Hardwood"
	CategoryLaminate = "Laminate"
	CategoryVinyl    = "Vinyl"
	CategoryTile     = "Tile"
	CategoryCarpet   = "Carpet"
	CategoryOther    = "Other"
)

// ProductCategories lists the allowed product category labels.
var ProductCategories = []string{
	CategoryHardwood,
	CategoryLaminate,
	CategoryVinyl,
	CategoryTile,
	CategoryCarpet,
	CategoryOther,
}

// ValidProductCategory reports whether label is in the closed category set.
func ValidProductCategory(label string) bool {
	for _, c := range ProductCategories {
		if c == label {
			return true
		}
	}
	return false
}

// Product is a catalog record. SKU is a pointer so a blank sku is stored as
// absent rather than "", keeping the partial unique index collision-free.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	SalePrice   *float64           `bson:"salePrice,omitempty" json:"salePrice,omitempty"`
	Stock       int                `bson:"stock" json:"stock"`
	SKU         *string            `bson:"sku,omitempty" json:"sku,omitempty"`
	Category    string             `bson:"category" json:"category"`
	MainImage   string             `bson:"mainImage,omitempty" json:"mainImage,omitempty"`
	Images      []string           `bson:"images" json:"images"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
