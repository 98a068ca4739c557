package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// FeeType classifies a cost entry for billing.
type FeeType string

const (
	FeeLicenseTax         FeeType = "license_tax"
	FeeFuel               FeeType = "fuel_fee"
	FeeParking            FeeType = "parking"
	FeeToll               FeeType = "toll"
	FeeSupplies           FeeType = "supplies"
	FeeMaintenanceService FeeType = "maintenance_service"
	FeeRepairParts        FeeType = "repair_parts"
	FeeInspection         FeeType = "inspection_fee"
	FeeOther              FeeType = "other"
)

// Fee represents a cost entry, either entered directly or auto-derived from
// a maintenance or inspection record's amount.
type Fee struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VehicleID     string             `json:"vehicle_id" bson:"vehicle_id"` // empty for private-vehicle expense claims
	UserID        string             `json:"user_id" bson:"user_id"`       // payee (employee ID); empty means unresolved
	FeeType       FeeType            `json:"fee_type" bson:"fee_type"`
	ReceiveDate   *time.Time         `json:"receive_date,omitempty" bson:"receive_date,omitempty"`
	RequestDate   *time.Time         `json:"request_date,omitempty" bson:"request_date,omitempty"`
	PeriodStart   *time.Time         `json:"period_start,omitempty" bson:"period_start,omitempty"`
	PeriodEnd     *time.Time         `json:"period_end,omitempty" bson:"period_end,omitempty"`
	InvoiceNumber string             `json:"invoice_number" bson:"invoice_number"`
	Amount        float64            `json:"amount" bson:"amount"`
	IsPaid        bool               `json:"is_paid" bson:"is_paid"`
	Notes         string             `json:"notes" bson:"notes"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// IsValidFeeType checks if a fee type is valid
func IsValidFeeType(t FeeType) bool {
	switch t {
	case FeeLicenseTax, FeeFuel, FeeParking, FeeToll, FeeSupplies,
		FeeMaintenanceService, FeeRepairParts, FeeInspection, FeeOther:
		return true
	default:
		return false
	}
}
