package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// InspectionKind identifies the kind of regulatory inspection.
type InspectionKind string

const (
	KindPeriodic     InspectionKind = "periodic"
	KindEmission     InspectionKind = "emission"
	KindReinspection InspectionKind = "reinspection"
)

// Inspection represents a regulatory inspection record. A record may exist
// for a notified-but-not-yet-completed inspection, in which case InspectedOn
// is nil; only completed records feed the due-date computation.
type Inspection struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VehicleID          string             `json:"vehicle_id" bson:"vehicle_id"`
	UserID             string             `json:"user_id" bson:"user_id"`
	HandlerID          string             `json:"handler_id" bson:"handler_id"`
	Kind               InspectionKind     `json:"kind" bson:"kind"`
	Result             string             `json:"result" bson:"result"`
	NotificationDate   *time.Time         `json:"notification_date,omitempty" bson:"notification_date,omitempty"`
	NotificationSource string             `json:"notification_source" bson:"notification_source"`
	DeadlineDate       *time.Time         `json:"deadline_date,omitempty" bson:"deadline_date,omitempty"`
	InspectedOn        *time.Time         `json:"inspected_on,omitempty" bson:"inspected_on,omitempty"`
	ReturnDate         *time.Time         `json:"return_date,omitempty" bson:"return_date,omitempty"`
	NextDueOn          *time.Time         `json:"next_due_on,omitempty" bson:"next_due_on,omitempty"`
	Amount             float64            `json:"amount" bson:"amount"`
	IsReconciled       bool               `json:"is_reconciled" bson:"is_reconciled"`
	Notes              string             `json:"notes" bson:"notes"`
	HandlerNotes       string             `json:"handler_notes" bson:"handler_notes"`
	CreatedAt          time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" bson:"updated_at"`
}

// IsValidInspectionKind checks if an inspection kind is valid
func IsValidInspectionKind(k InspectionKind) bool {
	switch k {
	case KindPeriodic, KindEmission, KindReinspection:
		return true
	default:
		return false
	}
}
