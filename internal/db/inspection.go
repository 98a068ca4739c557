package db

import (
	"context"
	"time"

	"github.com/ukydev/fleet-compliance/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InspectionCollection defines the interface for inspection record operations
type InspectionCollection interface {
	InsertInspection(ctx context.Context, inspection models.Inspection) error
	FindInspections(ctx context.Context, filter bson.M) ([]models.Inspection, error)
	FindInspectionByID(ctx context.Context, id string) (*models.Inspection, error)
	FindInspectionsByVehicle(ctx context.Context, vehicleID string) ([]models.Inspection, error)
	UpdateInspection(ctx context.Context, id string, inspection models.Inspection) error
	DeleteInspection(ctx context.Context, id string) error
}

// MongoInspectionCollection implements InspectionCollection for MongoDB
type MongoInspectionCollection struct {
	Collection *mongo.Collection
}

// InsertInspection inserts an inspection record into the database
func (c *MongoInspectionCollection) InsertInspection(ctx context.Context, inspection models.Inspection) error {
	inspection.CreatedAt = time.Now()
	inspection.UpdatedAt = time.Now()

	_, err := c.Collection.InsertOne(ctx, inspection)
	return err
}

// FindInspections finds inspection records matching a filter, newest first
func (c *MongoInspectionCollection) FindInspections(ctx context.Context, filter bson.M) ([]models.Inspection, error) {
	opts := options.Find().SetSort(bson.D{{Key: "inspected_on", Value: -1}})
	cursor, err := c.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.Inspection
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FindInspectionByID finds an inspection record by its ID
func (c *MongoInspectionCollection) FindInspectionByID(ctx context.Context, id string) (*models.Inspection, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var inspection models.Inspection
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&inspection)
	if err != nil {
		return nil, err
	}

	return &inspection, nil
}

// FindInspectionsByVehicle finds all inspection records for one vehicle
func (c *MongoInspectionCollection) FindInspectionsByVehicle(ctx context.Context, vehicleID string) ([]models.Inspection, error) {
	return c.FindInspections(ctx, bson.M{"vehicle_id": vehicleID})
}

// UpdateInspection updates an inspection record in the database
func (c *MongoInspectionCollection) UpdateInspection(ctx context.Context, id string, inspection models.Inspection) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	inspection.UpdatedAt = time.Now()
	inspection.ID = objectID

	_, err = c.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, inspection)
	return err
}

// DeleteInspection deletes an inspection record from the database
func (c *MongoInspectionCollection) DeleteInspection(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = c.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}
