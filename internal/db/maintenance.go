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

// MaintenanceCollection defines the interface for maintenance record operations
type MaintenanceCollection interface {
	InsertMaintenance(ctx context.Context, maintenance models.Maintenance) error
	FindMaintenance(ctx context.Context, filter bson.M) ([]models.Maintenance, error)
	FindMaintenanceByID(ctx context.Context, id string) (*models.Maintenance, error)
	FindMaintenanceByVehicle(ctx context.Context, vehicleID string) ([]models.Maintenance, error)
	UpdateMaintenance(ctx context.Context, id string, maintenance models.Maintenance) error
	DeleteMaintenance(ctx context.Context, id string) error
}

// MongoMaintenanceCollection implements MaintenanceCollection for MongoDB
type MongoMaintenanceCollection struct {
	Collection *mongo.Collection
}

// InsertMaintenance inserts a maintenance record into the database
func (c *MongoMaintenanceCollection) InsertMaintenance(ctx context.Context, maintenance models.Maintenance) error {
	maintenance.CreatedAt = time.Now()
	maintenance.UpdatedAt = time.Now()

	_, err := c.Collection.InsertOne(ctx, maintenance)
	return err
}

// FindMaintenance finds maintenance records matching a filter, newest first
func (c *MongoMaintenanceCollection) FindMaintenance(ctx context.Context, filter bson.M) ([]models.Maintenance, error) {
	opts := options.Find().SetSort(bson.D{{Key: "performed_on", Value: -1}})
	cursor, err := c.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.Maintenance
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FindMaintenanceByID finds a maintenance record by its ID
func (c *MongoMaintenanceCollection) FindMaintenanceByID(ctx context.Context, id string) (*models.Maintenance, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var maintenance models.Maintenance
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&maintenance)
	if err != nil {
		return nil, err
	}

	return &maintenance, nil
}

// FindMaintenanceByVehicle finds all maintenance records for one vehicle
func (c *MongoMaintenanceCollection) FindMaintenanceByVehicle(ctx context.Context, vehicleID string) ([]models.Maintenance, error) {
	return c.FindMaintenance(ctx, bson.M{"vehicle_id": vehicleID})
}

// UpdateMaintenance updates a maintenance record in the database
func (c *MongoMaintenanceCollection) UpdateMaintenance(ctx context.Context, id string, maintenance models.Maintenance) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	maintenance.UpdatedAt = time.Now()
	maintenance.ID = objectID

	_, err = c.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, maintenance)
	return err
}

// DeleteMaintenance deletes a maintenance record from the database
func (c *MongoMaintenanceCollection) DeleteMaintenance(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = c.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}
