package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/fleet-compliance/internal/custody"
	"github.com/ukydev/fleet-compliance/internal/db"
	"github.com/ukydev/fleet-compliance/internal/models"
)

// AssetHandler handles the asset custody log and its derived views
type AssetHandler struct {
	events   db.AssetEventCollection
	vehicles db.VehicleCollection
}

// AssetStateResponse carries both views of a vehicle's asset custody log:
// the raw audit trail (newest first) and the derived current holdings.
type AssetStateResponse struct {
	History         []models.AssetEvent `json:"history"`
	CurrentHoldings []models.AssetEvent `json:"current_holdings"`
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(events db.AssetEventCollection, vehicles db.VehicleCollection) *AssetHandler {
	return &AssetHandler{events: events, vehicles: vehicles}
}

// CreateEvent appends a custody event to a vehicle's log
func (h *AssetHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var event models.AssetEvent
	if !readJSON(w, r, &event) {
		return
	}

	if event.VehicleID == "" {
		http.Error(w, "Vehicle ID is required", http.StatusBadRequest)
		return
	}
	if !models.IsValidAssetType(event.AssetType) {
		http.Error(w, "Invalid asset type", http.StatusBadRequest)
		return
	}
	if !models.IsValidAssetStatus(event.Status) {
		http.Error(w, "Invalid asset status", http.StatusBadRequest)
		return
	}
	if event.LogDate.IsZero() {
		http.Error(w, "log_date is required", http.StatusBadRequest)
		return
	}
	if _, err := h.vehicles.FindVehicleByID(r.Context(), event.VehicleID); err != nil {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}

	if err := h.events.InsertAssetEvent(r.Context(), event); err != nil {
		log.WithError(err).Error("Failed to insert asset event")
		http.Error(w, "Failed to create asset event", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

// VehicleAssets returns the custody audit trail and current holdings for a
// vehicle, both derived fresh from the event log.
func (h *AssetHandler) VehicleAssets(w http.ResponseWriter, r *http.Request) {
	vehicleID := r.PathValue("id")
	if _, err := h.vehicles.FindVehicleByID(r.Context(), vehicleID); err != nil {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}

	events, err := h.events.FindAssetEventsByVehicle(r.Context(), vehicleID)
	if err != nil {
		log.WithError(err).Error("Failed to load asset events")
		http.Error(w, "Failed to load asset events", http.StatusInternalServerError)
		return
	}

	resp := AssetStateResponse{
		History:         custody.History(events),
		CurrentHoldings: custody.CurrentHoldings(events),
	}
	if resp.History == nil {
		resp.History = []models.AssetEvent{}
	}
	if resp.CurrentHoldings == nil {
		resp.CurrentHoldings = []models.AssetEvent{}
	}

	writeJSON(w, http.StatusOK, resp)
}
