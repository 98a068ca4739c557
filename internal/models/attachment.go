package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// AttachmentEntity names the record types an attachment can belong to.
type AttachmentEntity string

const (
	EntityVehicle     AttachmentEntity = "vehicle"
	EntityMaintenance AttachmentEntity = "maintenance"
	EntityInspection  AttachmentEntity = "inspection"
	EntityFee         AttachmentEntity = "fee"
	EntityDisposal    AttachmentEntity = "disposal"
)

// Attachment is uploaded-file metadata linked to another record by
// (entity type, entity ID).
type Attachment struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EntityType  AttachmentEntity   `json:"entity_type" bson:"entity_type"`
	EntityID    string             `json:"entity_id" bson:"entity_id"`
	FileName    string             `json:"file_name" bson:"file_name"` // original name as uploaded
	FilePath    string             `json:"file_path" bson:"file_path"` // stored name under the upload dir
	Description string             `json:"description" bson:"description"`
	UploadedAt  time.Time          `json:"uploaded_at" bson:"uploaded_at"`
}

// IsValidAttachmentEntity checks if an attachment entity type is valid
func IsValidAttachmentEntity(e AttachmentEntity) bool {
	switch e {
	case EntityVehicle, EntityMaintenance, EntityInspection, EntityFee, EntityDisposal:
		return true
	default:
		return false
	}
}
