package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// Employee represents a staff member who can drive vehicles, handle
// maintenance errands, hold assets, and claim fees.
type Employee struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name                 string             `json:"name" bson:"name"`
	Phone                string             `json:"phone" bson:"phone"`
	HasCarLicense        bool               `json:"has_car_license" bson:"has_car_license"`
	HasMotorcycleLicense bool               `json:"has_motorcycle_license" bson:"has_motorcycle_license"`
	CreatedAt            time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at" bson:"updated_at"`
}
