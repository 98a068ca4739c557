package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/fleet-compliance/internal/compliance"
	"github.com/ukydev/fleet-compliance/internal/db"
	"github.com/ukydev/fleet-compliance/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// MaintenanceHandler handles maintenance record requests. A create or an
// update that first introduces a positive amount also derives a linked fee
// record in the same write path.
type MaintenanceHandler struct {
	maintenance db.MaintenanceCollection
	fees        db.FeeCollection
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(maintenance db.MaintenanceCollection, fees db.FeeCollection) *MaintenanceHandler {
	return &MaintenanceHandler{maintenance: maintenance, fees: fees}
}

// Create handles maintenance record creation
func (h *MaintenanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var record models.Maintenance
	if !readJSON(w, r, &record) {
		return
	}

	if record.VehicleID == "" {
		http.Error(w, "Vehicle ID is required", http.StatusBadRequest)
		return
	}
	if !models.IsValidMaintenanceCategory(record.Category) {
		http.Error(w, "Invalid maintenance category", http.StatusBadRequest)
		return
	}
	if record.PerformedOn.IsZero() {
		http.Error(w, "performed_on is required", http.StatusBadRequest)
		return
	}

	if err := h.maintenance.InsertMaintenance(r.Context(), record); err != nil {
		log.WithError(err).Error("Failed to insert maintenance record")
		http.Error(w, "Failed to create maintenance record", http.StatusInternalServerError)
		return
	}

	h.generateFee(r, record)
	writeJSON(w, http.StatusCreated, record)
}

// Update handles maintenance record updates. A fee is derived only when the
// stored record had no positive amount before this edit; previously derived
// fees are never touched.
func (h *MaintenanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	existing, err := h.maintenance.FindMaintenanceByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Maintenance record not found", http.StatusNotFound)
		return
	}

	var record models.Maintenance
	if !readJSON(w, r, &record) {
		return
	}
	if !models.IsValidMaintenanceCategory(record.Category) {
		http.Error(w, "Invalid maintenance category", http.StatusBadRequest)
		return
	}
	record.CreatedAt = existing.CreatedAt

	if err := h.maintenance.UpdateMaintenance(r.Context(), id, record); err != nil {
		log.WithError(err).Error("Failed to update maintenance record")
		http.Error(w, "Failed to update maintenance record", http.StatusInternalServerError)
		return
	}

	if existing.Amount <= 0 {
		h.generateFee(r, record)
	}
	writeJSON(w, http.StatusOK, record)
}

// List handles maintenance record listing with an optional vehicle filter
func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if vehicleID := r.URL.Query().Get("vehicle_id"); vehicleID != "" {
		filter["vehicle_id"] = vehicleID
	}

	records, err := h.maintenance.FindMaintenance(r.Context(), filter)
	if err != nil {
		log.WithError(err).Error("Failed to list maintenance records")
		http.Error(w, "Failed to list maintenance records", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []models.Maintenance{}
	}

	writeJSON(w, http.StatusOK, records)
}

// Get handles fetching a single maintenance record
func (h *MaintenanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.maintenance.FindMaintenanceByID(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, "Maintenance record not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// Delete handles maintenance record deletion. Derived fees survive deletion
// of their source; the provenance note keeps them auditable.
func (h *MaintenanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.maintenance.DeleteMaintenance(r.Context(), r.PathValue("id")); err != nil {
		http.Error(w, "Failed to delete maintenance record", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *MaintenanceHandler) generateFee(r *http.Request, record models.Maintenance) {
	fee := compliance.DeriveMaintenanceFee(record)
	if fee == nil {
		return
	}
	if fee.UserID == "" {
		log.WithFields(log.Fields{
			"vehicle_id": record.VehicleID,
			"amount":     fee.Amount,
		}).Warn("Auto-created maintenance fee has no payee")
	}
	if err := h.fees.InsertFee(r.Context(), *fee); err != nil {
		log.WithError(err).Error("Failed to insert auto-created fee")
		return
	}
	log.WithFields(log.Fields{
		"vehicle_id": record.VehicleID,
		"fee_type":   fee.FeeType,
		"amount":     fee.Amount,
	}).Info("Auto-created fee for maintenance record")
}
