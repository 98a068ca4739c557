package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// AssetType identifies a class of physical asset tied to a vehicle.
type AssetType string

const (
	AssetKey     AssetType = "key"
	AssetDashcam AssetType = "dashcam"
	AssetTollTag AssetType = "toll_tag"
	AssetOther   AssetType = "other"
)

// AssetStatus is the custody state recorded by a single event.
// "assigned" and "returned" both mean the organization still holds the asset;
// "lost" and "disposed" are terminal exits.
type AssetStatus string

const (
	AssetAssigned AssetStatus = "assigned"
	AssetReturned AssetStatus = "returned"
	AssetLost     AssetStatus = "lost"
	AssetDisposed AssetStatus = "disposed"
)

// AssetEvent is one entry in a vehicle's append-only asset custody log.
// There is no stored "current asset" record; current holdings are always
// derived from the event history.
type AssetEvent struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VehicleID   string             `json:"vehicle_id" bson:"vehicle_id"`
	UserID      string             `json:"user_id" bson:"user_id"` // custodian (employee ID)
	LogDate     time.Time          `json:"log_date" bson:"log_date"`
	AssetType   AssetType          `json:"asset_type" bson:"asset_type"`
	Description string             `json:"description" bson:"description"` // free text, may be empty
	Status      AssetStatus        `json:"status" bson:"status"`
	Notes       string             `json:"notes" bson:"notes"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}

// IsValidAssetType checks if an asset type is valid
func IsValidAssetType(t AssetType) bool {
	switch t {
	case AssetKey, AssetDashcam, AssetTollTag, AssetOther:
		return true
	default:
		return false
	}
}

// IsValidAssetStatus checks if an asset status is valid
func IsValidAssetStatus(s AssetStatus) bool {
	switch s {
	case AssetAssigned, AssetReturned, AssetLost, AssetDisposed:
		return true
	default:
		return false
	}
}
