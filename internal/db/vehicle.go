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

// VehicleCollection defines the interface for vehicle database operations
type VehicleCollection interface {
	InsertVehicle(ctx context.Context, vehicle models.Vehicle) error
	FindVehicles(ctx context.Context, filter bson.M) ([]models.Vehicle, error)
	FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error)
	FindVehicleByPlate(ctx context.Context, plateNo string) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, vehicle models.Vehicle) error
	UpdateVehicleStatus(ctx context.Context, id string, status models.VehicleStatus) error
	DeleteVehicle(ctx context.Context, id string) error
}

// MongoVehicleCollection implements VehicleCollection for MongoDB
type MongoVehicleCollection struct {
	Collection *mongo.Collection
}

// InsertVehicle inserts a new vehicle into the database
func (c *MongoVehicleCollection) InsertVehicle(ctx context.Context, vehicle models.Vehicle) error {
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = time.Now()

	_, err := c.Collection.InsertOne(ctx, vehicle)
	return err
}

// FindVehicles finds vehicles matching a filter, sorted by plate number
func (c *MongoVehicleCollection) FindVehicles(ctx context.Context, filter bson.M) ([]models.Vehicle, error) {
	opts := options.Find().SetSort(bson.D{{Key: "plate_no", Value: 1}})
	cursor, err := c.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var vehicles []models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// FindVehicleByID finds a vehicle by its ID
func (c *MongoVehicleCollection) FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var vehicle models.Vehicle
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&vehicle)
	if err != nil {
		return nil, err
	}

	return &vehicle, nil
}

// FindVehicleByPlate finds a vehicle by its plate number
func (c *MongoVehicleCollection) FindVehicleByPlate(ctx context.Context, plateNo string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := c.Collection.FindOne(ctx, bson.M{"plate_no": plateNo}).Decode(&vehicle)
	if err != nil {
		return nil, err
	}

	return &vehicle, nil
}

// UpdateVehicle updates a vehicle in the database
func (c *MongoVehicleCollection) UpdateVehicle(ctx context.Context, id string, vehicle models.Vehicle) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	vehicle.UpdatedAt = time.Now()
	vehicle.ID = objectID

	_, err = c.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, vehicle)
	return err
}

// UpdateVehicleStatus updates only the lifecycle status of a vehicle
func (c *MongoVehicleCollection) UpdateVehicleStatus(ctx context.Context, id string, status models.VehicleStatus) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = c.Collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	return err
}

// DeleteVehicle deletes a vehicle from the database
func (c *MongoVehicleCollection) DeleteVehicle(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = c.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}
