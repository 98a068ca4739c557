package db

import (
	"context"
	"time"

	"github.com/ukydev/fleet-compliance/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AssetEventCollection defines the interface for asset custody log operations.
// The log is append-only; events are never updated or deleted.
type AssetEventCollection interface {
	InsertAssetEvent(ctx context.Context, event models.AssetEvent) error
	FindAssetEventsByVehicle(ctx context.Context, vehicleID string) ([]models.AssetEvent, error)
}

// MongoAssetEventCollection implements AssetEventCollection for MongoDB
type MongoAssetEventCollection struct {
	Collection *mongo.Collection
}

// InsertAssetEvent appends a custody event to the log
func (c *MongoAssetEventCollection) InsertAssetEvent(ctx context.Context, event models.AssetEvent) error {
	event.CreatedAt = time.Now()

	_, err := c.Collection.InsertOne(ctx, event)
	return err
}

// FindAssetEventsByVehicle returns the full custody log for one vehicle.
// Ordering is left to the custody reducer.
func (c *MongoAssetEventCollection) FindAssetEventsByVehicle(ctx context.Context, vehicleID string) ([]models.AssetEvent, error) {
	cursor, err := c.Collection.Find(ctx, bson.M{"vehicle_id": vehicleID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.AssetEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
