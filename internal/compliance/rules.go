package compliance

import (
	"time"

	"github.com/ukydev/fleet-compliance/internal/models"
)

// Cadence is the required inspection recurrence interval.
type Cadence string

const (
	CadenceAnnual     Cadence = "annual"
	CadenceSemiannual Cadence = "semiannual"
)

// InspectionDue is the computed next mandatory inspection for a vehicle.
type InspectionDue struct {
	Cadence Cadence   `json:"cadence"`
	DueDate time.Time `json:"due_date"`
}

const noMaxAge = -1

// cadenceRule is one row of the inspection rule table. It applies to vehicles
// whose age in whole years falls in [minAge, maxAge). The next inspection is
// the last completed inspection shifted by months; a vehicle never inspected
// is due firstDueYears after its manufacture date. Ages with no matching row
// are exempt.
type cadenceRule struct {
	minAge        int
	maxAge        int // exclusive; noMaxAge means open-ended
	cadence       Cadence
	months        int
	firstDueYears int
}

var inspectionRules = map[models.VehicleType][]cadenceRule{
	models.TypeCar: {
		{minAge: 5, maxAge: 10, cadence: CadenceAnnual, months: 12, firstDueYears: 5},
		{minAge: 10, maxAge: noMaxAge, cadence: CadenceSemiannual, months: 6, firstDueYears: 10},
	},
	models.TypeMotorcycle: {
		{minAge: 5, maxAge: noMaxAge, cadence: CadenceAnnual, months: 12, firstDueYears: 5},
	},
	models.TypeEVScooter: {
		{minAge: 5, maxAge: noMaxAge, cadence: CadenceAnnual, months: 12, firstDueYears: 5},
	},
	models.TypeVan: {
		{minAge: 0, maxAge: 5, cadence: CadenceAnnual, months: 12, firstDueYears: 1},
		{minAge: 5, maxAge: noMaxAge, cadence: CadenceSemiannual, months: 6, firstDueYears: 5},
	},
	models.TypeTruck: {
		{minAge: 0, maxAge: 5, cadence: CadenceAnnual, months: 12, firstDueYears: 1},
		{minAge: 5, maxAge: noMaxAge, cadence: CadenceSemiannual, months: 6, firstDueYears: 5},
	},
}

// VehicleAge returns the whole elapsed years between the manufacture date and
// today. The year only counts once the anniversary has passed.
func VehicleAge(manufactured, today time.Time) int {
	years := today.Year() - manufactured.Year()
	if manufactured.AddDate(years, 0, 0).After(today) {
		years--
	}
	return years
}

func ruleFor(t models.VehicleType, age int) *cadenceRule {
	for i := range inspectionRules[t] {
		r := &inspectionRules[t][i]
		if age >= r.minAge && (r.maxAge == noMaxAge || age < r.maxAge) {
			return r
		}
	}
	return nil
}

// NextInspectionDue computes the cadence and next due date for a vehicle.
// It returns nil when the vehicle is exempt at its current age or has no
// manufacture date (age undecidable). All date shifts are calendar additions.
func NextInspectionDue(v models.Vehicle, lastInspected *time.Time, today time.Time) *InspectionDue {
	if v.ManufactureDate == nil {
		return nil
	}
	rule := ruleFor(v.Type, VehicleAge(*v.ManufactureDate, today))
	if rule == nil {
		return nil
	}
	due := v.ManufactureDate.AddDate(rule.firstDueYears, 0, 0)
	if lastInspected != nil {
		due = lastInspected.AddDate(0, rule.months, 0)
	}
	return &InspectionDue{Cadence: rule.cadence, DueDate: due}
}

const (
	routineIntervalMonths = 6
	newVehicleGraceDays   = 180
)

// NextMaintenanceDue computes when the next routine service is due. With no
// routine service on record, a vehicle is due immediately once it is more
// than newVehicleGraceDays past its manufacture date; a vehicle with neither
// history nor manufacture date yields nil.
func NextMaintenanceDue(v models.Vehicle, lastRoutine *time.Time, today time.Time) *time.Time {
	if lastRoutine != nil {
		due := lastRoutine.AddDate(0, routineIntervalMonths, 0)
		return &due
	}
	if v.ManufactureDate == nil {
		return nil
	}
	if today.Sub(*v.ManufactureDate) > newVehicleGraceDays*24*time.Hour {
		due := today
		return &due
	}
	return nil
}

// LastCompletedInspection returns the most recent InspectedOn date in the
// history, or nil. Notified-but-not-completed records have no InspectedOn
// and are ignored.
func LastCompletedInspection(records []models.Inspection) *time.Time {
	var last *time.Time
	for i := range records {
		done := records[i].InspectedOn
		if done == nil {
			continue
		}
		if last == nil || done.After(*last) {
			last = done
		}
	}
	return last
}

// LastRoutineService returns the most recent routine maintenance date, or
// nil. Repairs and washes do not reset the service cadence.
func LastRoutineService(records []models.Maintenance) *time.Time {
	var last *time.Time
	for i := range records {
		if records[i].Category != models.CategoryMaintenance {
			continue
		}
		performed := &records[i].PerformedOn
		if last == nil || performed.After(*last) {
			last = performed
		}
	}
	return last
}
