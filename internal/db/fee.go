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

// FeeCollection defines the interface for fee record operations
type FeeCollection interface {
	InsertFee(ctx context.Context, fee models.Fee) error
	FindFees(ctx context.Context, filter bson.M) ([]models.Fee, error)
	FindFeeByID(ctx context.Context, id string) (*models.Fee, error)
	UpdateFee(ctx context.Context, id string, fee models.Fee) error
	DeleteFee(ctx context.Context, id string) error
}

// MongoFeeCollection implements FeeCollection for MongoDB
type MongoFeeCollection struct {
	Collection *mongo.Collection
}

// InsertFee inserts a fee record into the database
func (c *MongoFeeCollection) InsertFee(ctx context.Context, fee models.Fee) error {
	fee.CreatedAt = time.Now()
	fee.UpdatedAt = time.Now()

	_, err := c.Collection.InsertOne(ctx, fee)
	return err
}

// FindFees finds fee records matching a filter, newest first
func (c *MongoFeeCollection) FindFees(ctx context.Context, filter bson.M) ([]models.Fee, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := c.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var fees []models.Fee
	if err := cursor.All(ctx, &fees); err != nil {
		return nil, err
	}
	return fees, nil
}

// FindFeeByID finds a fee record by its ID
func (c *MongoFeeCollection) FindFeeByID(ctx context.Context, id string) (*models.Fee, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var fee models.Fee
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&fee)
	if err != nil {
		return nil, err
	}

	return &fee, nil
}

// UpdateFee updates a fee record in the database
func (c *MongoFeeCollection) UpdateFee(ctx context.Context, id string, fee models.Fee) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	fee.UpdatedAt = time.Now()
	fee.ID = objectID

	_, err = c.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, fee)
	return err
}

// DeleteFee deletes a fee record from the database
func (c *MongoFeeCollection) DeleteFee(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = c.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}
