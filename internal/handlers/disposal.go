package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/fleet-compliance/internal/db"
	"github.com/ukydev/fleet-compliance/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// DisposalHandler handles vehicle disposal requests. Recording a disposal
// retires the vehicle in the same write path.
type DisposalHandler struct {
	disposals db.DisposalCollection
	vehicles  db.VehicleCollection
}

// NewDisposalHandler creates a new disposal handler
func NewDisposalHandler(disposals db.DisposalCollection, vehicles db.VehicleCollection) *DisposalHandler {
	return &DisposalHandler{disposals: disposals, vehicles: vehicles}
}

// Create handles disposal record creation
func (h *DisposalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var disposal models.Disposal
	if !readJSON(w, r, &disposal) {
		return
	}

	if disposal.VehicleID == "" {
		http.Error(w, "Vehicle ID is required", http.StatusBadRequest)
		return
	}
	if disposal.DisposedOn.IsZero() {
		http.Error(w, "disposed_on is required", http.StatusBadRequest)
		return
	}
	vehicle, err := h.vehicles.FindVehicleByID(r.Context(), disposal.VehicleID)
	if err != nil {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}

	if err := h.disposals.InsertDisposal(r.Context(), disposal); err != nil {
		log.WithError(err).Error("Failed to insert disposal record")
		http.Error(w, "Failed to create disposal record", http.StatusInternalServerError)
		return
	}

	if err := h.vehicles.UpdateVehicleStatus(r.Context(), disposal.VehicleID, models.StatusRetired); err != nil {
		log.WithError(err).Error("Failed to retire disposed vehicle")
		http.Error(w, "Failed to retire vehicle", http.StatusInternalServerError)
		return
	}

	log.WithFields(log.Fields{
		"plate_no":   vehicle.PlateNo,
		"vehicle_id": disposal.VehicleID,
	}).Info("Vehicle disposed and retired")
	writeJSON(w, http.StatusCreated, disposal)
}

// List handles disposal record listing with an optional vehicle filter
func (h *DisposalHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if vehicleID := r.URL.Query().Get("vehicle_id"); vehicleID != "" {
		filter["vehicle_id"] = vehicleID
	}

	disposals, err := h.disposals.FindDisposals(r.Context(), filter)
	if err != nil {
		log.WithError(err).Error("Failed to list disposal records")
		http.Error(w, "Failed to list disposal records", http.StatusInternalServerError)
		return
	}
	if disposals == nil {
		disposals = []models.Disposal{}
	}

	writeJSON(w, http.StatusOK, disposals)
}
