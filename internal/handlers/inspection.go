package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/fleet-compliance/internal/compliance"
	"github.com/ukydev/fleet-compliance/internal/db"
	"github.com/ukydev/fleet-compliance/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// InspectionHandler handles inspection record requests, deriving a linked
// inspection fee when a positive amount is first recorded.
type InspectionHandler struct {
	inspections db.InspectionCollection
	fees        db.FeeCollection
}

// NewInspectionHandler creates a new inspection handler
func NewInspectionHandler(inspections db.InspectionCollection, fees db.FeeCollection) *InspectionHandler {
	return &InspectionHandler{inspections: inspections, fees: fees}
}

// Create handles inspection record creation. A record without an inspected_on
// date is valid: it represents a notified but not yet completed inspection.
func (h *InspectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var record models.Inspection
	if !readJSON(w, r, &record) {
		return
	}

	if record.VehicleID == "" {
		http.Error(w, "Vehicle ID is required", http.StatusBadRequest)
		return
	}
	if !models.IsValidInspectionKind(record.Kind) {
		http.Error(w, "Invalid inspection kind", http.StatusBadRequest)
		return
	}

	if err := h.inspections.InsertInspection(r.Context(), record); err != nil {
		log.WithError(err).Error("Failed to insert inspection record")
		http.Error(w, "Failed to create inspection record", http.StatusInternalServerError)
		return
	}

	h.generateFee(r, record)
	writeJSON(w, http.StatusCreated, record)
}

// Update handles inspection record updates; fee derivation re-triggers only
// when the stored record had no positive amount before the edit.
func (h *InspectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	existing, err := h.inspections.FindInspectionByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Inspection record not found", http.StatusNotFound)
		return
	}

	var record models.Inspection
	if !readJSON(w, r, &record) {
		return
	}
	if !models.IsValidInspectionKind(record.Kind) {
		http.Error(w, "Invalid inspection kind", http.StatusBadRequest)
		return
	}
	record.CreatedAt = existing.CreatedAt

	if err := h.inspections.UpdateInspection(r.Context(), id, record); err != nil {
		log.WithError(err).Error("Failed to update inspection record")
		http.Error(w, "Failed to update inspection record", http.StatusInternalServerError)
		return
	}

	if existing.Amount <= 0 {
		h.generateFee(r, record)
	}
	writeJSON(w, http.StatusOK, record)
}

// List handles inspection record listing with an optional vehicle filter
func (h *InspectionHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if vehicleID := r.URL.Query().Get("vehicle_id"); vehicleID != "" {
		filter["vehicle_id"] = vehicleID
	}

	records, err := h.inspections.FindInspections(r.Context(), filter)
	if err != nil {
		log.WithError(err).Error("Failed to list inspection records")
		http.Error(w, "Failed to list inspection records", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []models.Inspection{}
	}

	writeJSON(w, http.StatusOK, records)
}

// Get handles fetching a single inspection record
func (h *InspectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.inspections.FindInspectionByID(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, "Inspection record not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// Delete handles inspection record deletion
func (h *InspectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.inspections.DeleteInspection(r.Context(), r.PathValue("id")); err != nil {
		http.Error(w, "Failed to delete inspection record", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *InspectionHandler) generateFee(r *http.Request, record models.Inspection) {
	fee := compliance.DeriveInspectionFee(record)
	if fee == nil {
		return
	}
	if fee.UserID == "" {
		log.WithFields(log.Fields{
			"vehicle_id": record.VehicleID,
			"amount":     fee.Amount,
		}).Warn("Auto-created inspection fee has no payee")
	}
	if err := h.fees.InsertFee(r.Context(), *fee); err != nil {
		log.WithError(err).Error("Failed to insert auto-created fee")
		return
	}
	log.WithFields(log.Fields{
		"vehicle_id": record.VehicleID,
		"fee_type":   fee.FeeType,
		"amount":     fee.Amount,
	}).Info("Auto-created fee for inspection record")
}
