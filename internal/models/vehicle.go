package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// VehicleType identifies the regulatory class of a vehicle.
type VehicleType string

const (
	TypeCar        VehicleType = "car"
	TypeMotorcycle VehicleType = "motorcycle"
	TypeVan        VehicleType = "van"
	TypeTruck      VehicleType = "truck"
	TypeEVScooter  VehicleType = "ev_scooter"
)

// VehicleStatus tracks the lifecycle state of a vehicle.
type VehicleStatus string

const (
	StatusActive      VehicleStatus = "active"
	StatusMaintenance VehicleStatus = "maintenance"
	StatusRetired     VehicleStatus = "retired"
)

// Vehicle represents a fleet vehicle.
type Vehicle struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PlateNo             string             `bson:"plate_no" json:"plate_no"`
	Company             string             `bson:"company" json:"company"`
	Type                VehicleType        `bson:"vehicle_type" json:"vehicle_type"`
	Make                string             `bson:"make" json:"make"`
	Model               string             `bson:"model" json:"model"`
	ManufactureDate     *time.Time         `bson:"manufacture_date,omitempty" json:"manufacture_date,omitempty"`
	DisplacementCC      int                `bson:"displacement_cc" json:"displacement_cc"`
	CurrentMileage      int                `bson:"current_mileage" json:"current_mileage"` // in kilometers
	MaintenanceInterval int                `bson:"maintenance_interval" json:"maintenance_interval"` // in kilometers, informational only
	Status              VehicleStatus      `bson:"status" json:"status"`
	UserID              string             `bson:"user_id" json:"user_id"` // primary driver (employee ID)
	CreatedAt           time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time          `bson:"updated_at" json:"updated_at"`
}

// IsValidVehicleType checks if a vehicle type is valid
func IsValidVehicleType(t VehicleType) bool {
	switch t {
	case TypeCar, TypeMotorcycle, TypeVan, TypeTruck, TypeEVScooter:
		return true
	default:
		return false
	}
}

// IsValidVehicleStatus checks if a vehicle status is valid
func IsValidVehicleStatus(s VehicleStatus) bool {
	switch s {
	case StatusActive, StatusMaintenance, StatusRetired:
		return true
	default:
		return false
	}
}
