package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// MaintenanceCategory classifies a shop visit. Only CategoryMaintenance
// (routine service) counts toward the service cadence.
type MaintenanceCategory string

const (
	CategoryMaintenance MaintenanceCategory = "maintenance"
	CategoryRepair      MaintenanceCategory = "repair"
	CategoryCarwash     MaintenanceCategory = "carwash"
)

// Maintenance represents a vehicle maintenance record.
type Maintenance struct {
	ID              primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	VehicleID       string              `json:"vehicle_id" bson:"vehicle_id"`
	UserID          string              `json:"user_id" bson:"user_id"`       // driver at the time of service
	HandlerID       string              `json:"handler_id" bson:"handler_id"` // employee who took the vehicle in
	Category        MaintenanceCategory `json:"category" bson:"category"`
	Vendor          string              `json:"vendor" bson:"vendor"`
	PerformedOn     time.Time           `json:"performed_on" bson:"performed_on"`
	ReturnDate      *time.Time          `json:"return_date,omitempty" bson:"return_date,omitempty"`
	ServiceTargetKm int                 `json:"service_target_km" bson:"service_target_km"`
	OdometerKm      float64             `json:"odometer_km" bson:"odometer_km"`
	Amount          float64             `json:"amount" bson:"amount"`
	IsReconciled    bool                `json:"is_reconciled" bson:"is_reconciled"`
	Notes           string              `json:"notes" bson:"notes"`
	HandlerNotes    string              `json:"handler_notes" bson:"handler_notes"`
	CreatedAt       time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at" bson:"updated_at"`
}

// IsValidMaintenanceCategory checks if a maintenance category is valid
func IsValidMaintenanceCategory(c MaintenanceCategory) bool {
	switch c {
	case CategoryMaintenance, CategoryRepair, CategoryCarwash:
		return true
	default:
		return false
	}
}
