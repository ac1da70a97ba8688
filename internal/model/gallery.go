package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gallery categories form a closed label set.
const (
	GalleryResidential = "Residential"
	GalleryCommercial  = "Commercial"
	GalleryRestoration = "Restoration"
	GalleryOther       = "Other"
)

// GalleryCategories lists the allowed gallery category labels.
var GalleryCategories = []string{
	GalleryResidential,
	GalleryCommercial,
	GalleryRestoration,
	GalleryOther,
}

// ValidGalleryCategory reports whether label is in the closed category set.
func ValidGalleryCategory(label string) bool {
	for _, c := range GalleryCategories {
		if c == label {
			return true
		}
	}
	return false
}

// GalleryImage is a category-tagged photo consumed by the public marketing pages.
type GalleryImage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	URL       string             `bson:"url" json:"url"`
	Category  string             `bson:"category" json:"category"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
