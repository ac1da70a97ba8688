package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// newestFirst sorts by creation time descending.
func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

func upsertOpts() *options.UpdateOptions {
	return options.Update().SetUpsert(true)
}
