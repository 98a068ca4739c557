package compliance

import (
	"fmt"
	"sort"
	"time"

	"github.com/ukydev/fleet-compliance/internal/models"
)

// DefaultLookaheadMonths is the reminder window when none is configured.
const DefaultLookaheadMonths = 1

// VehicleHistory bundles a vehicle snapshot with its event history, fully
// loaded by the caller before classification.
type VehicleHistory struct {
	Vehicle     models.Vehicle
	Inspections []models.Inspection
	Maintenance []models.Maintenance
}

// InspectionReminder flags a vehicle whose mandatory inspection falls inside
// the lookahead window.
type InspectionReminder struct {
	VehicleID     string     `json:"vehicle_id"`
	PlateNo       string     `json:"plate_no"`
	Cadence       Cadence    `json:"cadence"`
	LastInspected *time.Time `json:"last_inspected,omitempty"`
	DueDate       time.Time  `json:"due_date"`
	Overdue       bool       `json:"overdue"`
	Status        string     `json:"status"`
}

// MaintenanceReminder flags a vehicle whose routine service falls inside the
// lookahead window.
type MaintenanceReminder struct {
	VehicleID    string     `json:"vehicle_id"`
	PlateNo      string     `json:"plate_no"`
	LastServiced *time.Time `json:"last_serviced,omitempty"`
	DueDate      time.Time  `json:"due_date"`
	Overdue      bool       `json:"overdue"`
	Status       string     `json:"status"`
}

// Classifier computes reminder lists for a fixed point in time. It holds no
// state beyond its inputs; identical inputs yield identical lists.
type Classifier struct {
	Today           time.Time
	LookaheadMonths int
}

// NewClassifier returns a classifier with the default lookahead window.
func NewClassifier(today time.Time) Classifier {
	return Classifier{Today: today, LookaheadMonths: DefaultLookaheadMonths}
}

func (c Classifier) horizon() time.Time {
	return c.Today.AddDate(0, c.LookaheadMonths, 0)
}

// InspectionReminders returns one reminder per active vehicle whose next
// inspection due date falls on or before today plus the lookahead window,
// sorted ascending by due date (most overdue first). Vehicles that are
// exempt or have no manufacture date produce nothing.
func (c Classifier) InspectionReminders(fleet []VehicleHistory) []InspectionReminder {
	horizon := c.horizon()
	var out []InspectionReminder
	for _, vh := range fleet {
		if vh.Vehicle.Status != models.StatusActive {
			continue
		}
		last := LastCompletedInspection(vh.Inspections)
		due := NextInspectionDue(vh.Vehicle, last, c.Today)
		if due == nil || due.DueDate.After(horizon) {
			continue
		}
		overdue := due.DueDate.Before(c.Today)
		status := fmt.Sprintf("inspection due %s", due.DueDate.Format("2006-01-02"))
		if overdue {
			status = fmt.Sprintf("inspection overdue since %s", due.DueDate.Format("2006-01-02"))
		}
		out = append(out, InspectionReminder{
			VehicleID:     vh.Vehicle.ID.Hex(),
			PlateNo:       vh.Vehicle.PlateNo,
			Cadence:       due.Cadence,
			LastInspected: last,
			DueDate:       due.DueDate,
			Overdue:       overdue,
			Status:        status,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}

// MaintenanceReminders returns one reminder per active vehicle whose routine
// service falls due inside the lookahead window. The list is sorted
// ascending by last service date, with never-serviced vehicles first.
func (c Classifier) MaintenanceReminders(fleet []VehicleHistory) []MaintenanceReminder {
	horizon := c.horizon()
	var out []MaintenanceReminder
	for _, vh := range fleet {
		if vh.Vehicle.Status != models.StatusActive {
			continue
		}
		last := LastRoutineService(vh.Maintenance)
		due := NextMaintenanceDue(vh.Vehicle, last, c.Today)
		if due == nil || due.After(horizon) {
			continue
		}
		overdue := due.Before(c.Today)
		status := fmt.Sprintf("service due %s", due.Format("2006-01-02"))
		if last == nil {
			status = "no maintenance history"
		} else if overdue {
			status = fmt.Sprintf("service overdue since %s", due.Format("2006-01-02"))
		}
		out = append(out, MaintenanceReminder{
			VehicleID:    vh.Vehicle.ID.Hex(),
			PlateNo:      vh.Vehicle.PlateNo,
			LastServiced: last,
			DueDate:      *due,
			Overdue:      overdue,
			Status:       status,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].LastServiced, out[j].LastServiced
		if a == nil {
			return b != nil
		}
		if b == nil {
			return false
		}
		return a.Before(*b)
	})
	return out
}
