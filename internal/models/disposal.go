package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// Disposal records the scrapping of a vehicle. Creating one retires the
// vehicle in the same write path.
type Disposal struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VehicleID        string             `json:"vehicle_id" bson:"vehicle_id"`
	UserID           string             `json:"user_id" bson:"user_id"` // last assigned driver
	NotificationDate *time.Time         `json:"notification_date,omitempty" bson:"notification_date,omitempty"`
	DisposedOn       time.Time          `json:"disposed_on" bson:"disposed_on"`
	FinalMileage     int                `json:"final_mileage" bson:"final_mileage"`
	Reason           string             `json:"reason" bson:"reason"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
}
