package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/fleet-compliance/internal/db"
	"github.com/ukydev/fleet-compliance/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// VehicleHandler handles vehicle CRUD requests
type VehicleHandler struct {
	vehicles db.VehicleCollection
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicles db.VehicleCollection) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

// Create handles vehicle creation
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var vehicle models.Vehicle
	if !readJSON(w, r, &vehicle) {
		return
	}

	if vehicle.PlateNo == "" {
		http.Error(w, "Plate number is required", http.StatusBadRequest)
		return
	}
	if vehicle.Type == "" {
		vehicle.Type = models.TypeCar
	}
	if !models.IsValidVehicleType(vehicle.Type) {
		http.Error(w, "Invalid vehicle type", http.StatusBadRequest)
		return
	}
	if vehicle.Status == "" {
		vehicle.Status = models.StatusActive
	}
	if !models.IsValidVehicleStatus(vehicle.Status) {
		http.Error(w, "Invalid vehicle status", http.StatusBadRequest)
		return
	}

	// plate numbers are unique across the fleet
	if _, err := h.vehicles.FindVehicleByPlate(r.Context(), vehicle.PlateNo); err == nil {
		http.Error(w, "Plate number already exists", http.StatusConflict)
		return
	}

	if err := h.vehicles.InsertVehicle(r.Context(), vehicle); err != nil {
		log.WithError(err).Error("Failed to insert vehicle")
		http.Error(w, "Failed to create vehicle", http.StatusInternalServerError)
		return
	}

	log.WithField("plate_no", vehicle.PlateNo).Info("Vehicle created")
	writeJSON(w, http.StatusCreated, vehicle)
}

// List handles vehicle listing with an optional status filter
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		if !models.IsValidVehicleStatus(models.VehicleStatus(status)) {
			http.Error(w, "Invalid vehicle status", http.StatusBadRequest)
			return
		}
		filter["status"] = status
	}

	vehicles, err := h.vehicles.FindVehicles(r.Context(), filter)
	if err != nil {
		log.WithError(err).Error("Failed to list vehicles")
		http.Error(w, "Failed to list vehicles", http.StatusInternalServerError)
		return
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}

	writeJSON(w, http.StatusOK, vehicles)
}

// Get handles fetching a single vehicle
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	vehicle, err := h.vehicles.FindVehicleByID(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, vehicle)
}

// Update handles vehicle updates
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	existing, err := h.vehicles.FindVehicleByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}

	var vehicle models.Vehicle
	if !readJSON(w, r, &vehicle) {
		return
	}
	if !models.IsValidVehicleType(vehicle.Type) {
		http.Error(w, "Invalid vehicle type", http.StatusBadRequest)
		return
	}
	if !models.IsValidVehicleStatus(vehicle.Status) {
		http.Error(w, "Invalid vehicle status", http.StatusBadRequest)
		return
	}
	vehicle.CreatedAt = existing.CreatedAt

	if err := h.vehicles.UpdateVehicle(r.Context(), id, vehicle); err != nil {
		log.WithError(err).Error("Failed to update vehicle")
		http.Error(w, "Failed to update vehicle", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, vehicle)
}

// Delete handles vehicle deletion
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.vehicles.DeleteVehicle(r.Context(), r.PathValue("id")); err != nil {
		http.Error(w, "Failed to delete vehicle", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
