package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/fleet-compliance/internal/db"
	"github.com/ukydev/fleet-compliance/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// FeeHandler handles directly entered fee records (fuel, parking, tax and so
// on). Auto-derived maintenance and inspection fees arrive through the
// maintenance and inspection handlers instead.
type FeeHandler struct {
	fees db.FeeCollection
}

// NewFeeHandler creates a new fee handler
func NewFeeHandler(fees db.FeeCollection) *FeeHandler {
	return &FeeHandler{fees: fees}
}

// Create handles fee creation. An empty vehicle ID is allowed: it marks a
// private-vehicle expense claim not tied to a fleet vehicle.
func (h *FeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var fee models.Fee
	if !readJSON(w, r, &fee) {
		return
	}

	if fee.FeeType == "" {
		fee.FeeType = models.FeeOther
	}
	if !models.IsValidFeeType(fee.FeeType) {
		http.Error(w, "Invalid fee type", http.StatusBadRequest)
		return
	}
	if fee.UserID == "" {
		http.Error(w, "Payee is required", http.StatusBadRequest)
		return
	}

	if err := h.fees.InsertFee(r.Context(), fee); err != nil {
		log.WithError(err).Error("Failed to insert fee")
		http.Error(w, "Failed to create fee", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, fee)
}

// List handles fee listing with optional vehicle and payee filters
func (h *FeeHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if vehicleID := r.URL.Query().Get("vehicle_id"); vehicleID != "" {
		filter["vehicle_id"] = vehicleID
	}
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		filter["user_id"] = userID
	}

	fees, err := h.fees.FindFees(r.Context(), filter)
	if err != nil {
		log.WithError(err).Error("Failed to list fees")
		http.Error(w, "Failed to list fees", http.StatusInternalServerError)
		return
	}
	if fees == nil {
		fees = []models.Fee{}
	}

	writeJSON(w, http.StatusOK, fees)
}

// Get handles fetching a single fee record
func (h *FeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	fee, err := h.fees.FindFeeByID(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, "Fee not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, fee)
}

// Update handles fee updates
func (h *FeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	existing, err := h.fees.FindFeeByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Fee not found", http.StatusNotFound)
		return
	}

	var fee models.Fee
	if !readJSON(w, r, &fee) {
		return
	}
	if !models.IsValidFeeType(fee.FeeType) {
		http.Error(w, "Invalid fee type", http.StatusBadRequest)
		return
	}
	fee.CreatedAt = existing.CreatedAt

	if err := h.fees.UpdateFee(r.Context(), id, fee); err != nil {
		log.WithError(err).Error("Failed to update fee")
		http.Error(w, "Failed to update fee", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, fee)
}

// Delete handles fee deletion
func (h *FeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.fees.DeleteFee(r.Context(), r.PathValue("id")); err != nil {
		http.Error(w, "Failed to delete fee", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
