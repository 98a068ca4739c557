package handlers

import (
	"net/http"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/fleet-compliance/internal/compliance"
	"github.com/ukydev/fleet-compliance/internal/db"
	"github.com/ukydev/fleet-compliance/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// ReminderHandler serves the compliance dashboard: sorted inspection and
// maintenance reminder lists, derived fresh on every request.
type ReminderHandler struct {
	vehicles        db.VehicleCollection
	inspections     db.InspectionCollection
	maintenance     db.MaintenanceCollection
	lookaheadMonths int
	now             func() time.Time
}

// ReminderResponse is the dashboard payload
type ReminderResponse struct {
	AsOf                 time.Time                        `json:"as_of"`
	InspectionReminders  []compliance.InspectionReminder  `json:"inspection_reminders"`
	MaintenanceReminders []compliance.MaintenanceReminder `json:"maintenance_reminders"`
}

// NewReminderHandler creates a new reminder handler. The lookahead window is
// taken from the REMINDER_LOOKAHEAD environment variable (whole months).
func NewReminderHandler(vehicles db.VehicleCollection, inspections db.InspectionCollection, maintenance db.MaintenanceCollection) *ReminderHandler {
	lookahead := compliance.DefaultLookaheadMonths
	if v := os.Getenv("REMINDER_LOOKAHEAD"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			lookahead = parsed
		}
	}

	return &ReminderHandler{
		vehicles:        vehicles,
		inspections:     inspections,
		maintenance:     maintenance,
		lookaheadMonths: lookahead,
		now:             time.Now,
	}
}

// Dashboard handles the reminder dashboard request
func (h *ReminderHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicles.FindVehicles(r.Context(), bson.M{"status": models.StatusActive})
	if err != nil {
		log.WithError(err).Error("Failed to load vehicles for dashboard")
		http.Error(w, "Failed to load vehicles", http.StatusInternalServerError)
		return
	}

	fleet := make([]compliance.VehicleHistory, 0, len(vehicles))
	for _, v := range vehicles {
		inspections, err := h.inspections.FindInspectionsByVehicle(r.Context(), v.ID.Hex())
		if err != nil {
			log.WithError(err).Error("Failed to load inspections for dashboard")
			http.Error(w, "Failed to load inspections", http.StatusInternalServerError)
			return
		}
		maintenance, err := h.maintenance.FindMaintenanceByVehicle(r.Context(), v.ID.Hex())
		if err != nil {
			log.WithError(err).Error("Failed to load maintenance for dashboard")
			http.Error(w, "Failed to load maintenance", http.StatusInternalServerError)
			return
		}
		fleet = append(fleet, compliance.VehicleHistory{
			Vehicle:     v,
			Inspections: inspections,
			Maintenance: maintenance,
		})
	}

	today := h.now().Truncate(24 * time.Hour)
	classifier := compliance.Classifier{Today: today, LookaheadMonths: h.lookaheadMonths}

	resp := ReminderResponse{
		AsOf:                 today,
		InspectionReminders:  classifier.InspectionReminders(fleet),
		MaintenanceReminders: classifier.MaintenanceReminders(fleet),
	}
	if resp.InspectionReminders == nil {
		resp.InspectionReminders = []compliance.InspectionReminder{}
	}
	if resp.MaintenanceReminders == nil {
		resp.MaintenanceReminders = []compliance.MaintenanceReminder{}
	}

	writeJSON(w, http.StatusOK, resp)
}
