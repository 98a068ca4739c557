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

// AttachmentCollection defines the interface for attachment metadata operations
type AttachmentCollection interface {
	InsertAttachment(ctx context.Context, attachment models.Attachment) (*models.Attachment, error)
	FindAttachmentsByEntity(ctx context.Context, entityType models.AttachmentEntity, entityID string) ([]models.Attachment, error)
}

// MongoAttachmentCollection implements AttachmentCollection for MongoDB
type MongoAttachmentCollection struct {
	Collection *mongo.Collection
}

// InsertAttachment stores attachment metadata and returns it with its new ID
func (c *MongoAttachmentCollection) InsertAttachment(ctx context.Context, attachment models.Attachment) (*models.Attachment, error) {
	attachment.UploadedAt = time.Now()

	result, err := c.Collection.InsertOne(ctx, attachment)
	if err != nil {
		return nil, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		attachment.ID = oid
	}
	return &attachment, nil
}

// FindAttachmentsByEntity finds attachments linked to one record
func (c *MongoAttachmentCollection) FindAttachmentsByEntity(ctx context.Context, entityType models.AttachmentEntity, entityID string) ([]models.Attachment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	cursor, err := c.Collection.Find(ctx, bson.M{"entity_type": entityType, "entity_id": entityID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var attachments []models.Attachment
	if err := cursor.All(ctx, &attachments); err != nil {
		return nil, err
	}
	return attachments, nil
}
