package db

import (
	"context"
	"time"

	"github.com/ukydev/fleet-compliance/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DisposalCollection defines the interface for disposal record operations
type DisposalCollection interface {
	InsertDisposal(ctx context.Context, disposal models.Disposal) error
	FindDisposals(ctx context.Context, filter bson.M) ([]models.Disposal, error)
}

// MongoDisposalCollection implements DisposalCollection for MongoDB
type MongoDisposalCollection struct {
	Collection *mongo.Collection
}

// InsertDisposal inserts a disposal record into the database
func (c *MongoDisposalCollection) InsertDisposal(ctx context.Context, disposal models.Disposal) error {
	disposal.CreatedAt = time.Now()

	_, err := c.Collection.InsertOne(ctx, disposal)
	return err
}

// FindDisposals finds disposal records matching a filter, newest first
func (c *MongoDisposalCollection) FindDisposals(ctx context.Context, filter bson.M) ([]models.Disposal, error) {
	opts := options.Find().SetSort(bson.D{{Key: "disposed_on", Value: -1}})
	cursor, err := c.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var disposals []models.Disposal
	if err := cursor.All(ctx, &disposals); err != nil {
		return nil, err
	}
	return disposals, nil
}
