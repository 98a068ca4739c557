package compliance

import (
	"fmt"

	"github.com/ukydev/fleet-compliance/internal/models"
)

// DeriveMaintenanceFee builds the billing entry for a maintenance record, or
// returns nil when the record carries no positive amount. Repairs bill as
// repair parts, everything else as maintenance service. The fee is a
// snapshot at creation time: later edits to the source record never touch
// previously derived fees.
func DeriveMaintenanceFee(m models.Maintenance) *models.Fee {
	if m.Amount <= 0 {
		return nil
	}
	feeType := models.FeeMaintenanceService
	if m.Category == models.CategoryRepair {
		feeType = models.FeeRepairParts
	}
	performed := m.PerformedOn
	return &models.Fee{
		VehicleID:   m.VehicleID,
		UserID:      resolvePayee(m.HandlerID, m.UserID),
		FeeType:     feeType,
		ReceiveDate: &performed,
		RequestDate: &performed,
		Amount:      m.Amount,
		IsPaid:      m.IsReconciled,
		Notes:       fmt.Sprintf("auto-created - %s: %s", m.Category, m.Notes),
	}
}

// DeriveInspectionFee builds the billing entry for an inspection record, or
// returns nil when the record carries no positive amount.
func DeriveInspectionFee(in models.Inspection) *models.Fee {
	if in.Amount <= 0 {
		return nil
	}
	date := in.InspectedOn
	if date == nil {
		date = in.NotificationDate
	}
	return &models.Fee{
		VehicleID:   in.VehicleID,
		UserID:      resolvePayee(in.HandlerID, in.UserID),
		FeeType:     models.FeeInspection,
		ReceiveDate: date,
		RequestDate: date,
		Amount:      in.Amount,
		IsPaid:      in.IsReconciled,
		Notes:       fmt.Sprintf("auto-created - inspection fee: %s", in.Kind),
	}
}

// resolvePayee picks the fee claimant: the handler when present, else the
// driver. Empty means unresolved; record creation proceeds and the caller
// surfaces the data-quality warning.
func resolvePayee(handlerID, userID string) string {
	if handlerID != "" {
		return handlerID
	}
	return userID
}
