package compliance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/fleet-compliance/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func vehicle(t models.VehicleType, manufactured *time.Time) models.Vehicle {
	return models.Vehicle{
		PlateNo:         "ABC-1234",
		Type:            t,
		ManufactureDate: manufactured,
		Status:          models.StatusActive,
	}
}

func TestVehicleAge(t *testing.T) {
	tests := []struct {
		name         string
		manufactured time.Time
		today        time.Time
		want         int
	}{
		{"day before anniversary", date(2015, time.June, 15), date(2020, time.June, 14), 4},
		{"on anniversary", date(2015, time.June, 15), date(2020, time.June, 15), 5},
		{"day after anniversary", date(2015, time.June, 15), date(2020, time.June, 16), 5},
		{"same year", date(2020, time.January, 1), date(2020, time.December, 31), 0},
		{"decade boundary", date(2015, time.January, 1), date(2025, time.June, 1), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VehicleAge(tt.manufactured, tt.today))
		})
	}
}

func TestNextInspectionDue_Car(t *testing.T) {
	tests := []struct {
		name        string
		mfg         *time.Time
		last        *time.Time
		today       time.Time
		wantCadence Cadence
		wantDue     *time.Time
	}{
		{
			name:  "under five years exempt",
			mfg:   datePtr(2022, time.March, 1),
			today: date(2025, time.June, 1),
		},
		{
			name:        "exactly five no prior inspection",
			mfg:         datePtr(2020, time.June, 1),
			today:       date(2025, time.June, 1),
			wantCadence: CadenceAnnual,
			wantDue:     datePtr(2025, time.June, 1),
		},
		{
			name:        "five to ten with last inspection",
			mfg:         datePtr(2018, time.January, 1),
			last:        datePtr(2024, time.March, 15),
			today:       date(2025, time.January, 1),
			wantCadence: CadenceAnnual,
			wantDue:     datePtr(2025, time.March, 15),
		},
		{
			name:        "ten year boundary goes semiannual",
			mfg:         datePtr(2015, time.January, 1),
			last:        datePtr(2024, time.July, 1),
			today:       date(2025, time.June, 1),
			wantCadence: CadenceSemiannual,
			wantDue:     datePtr(2025, time.January, 1),
		},
		{
			name:        "over ten never inspected",
			mfg:         datePtr(2012, time.April, 10),
			today:       date(2025, time.June, 1),
			wantCadence: CadenceSemiannual,
			wantDue:     datePtr(2022, time.April, 10),
		},
		{
			name:  "no manufacture date",
			today: date(2025, time.June, 1),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextInspectionDue(vehicle(models.TypeCar, tt.mfg), tt.last, tt.today)
			if tt.wantDue == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantCadence, got.Cadence)
			assert.Equal(t, *tt.wantDue, got.DueDate)
		})
	}
}

func TestNextInspectionDue_MotorcycleAndScooter(t *testing.T) {
	for _, vt := range []models.VehicleType{models.TypeMotorcycle, models.TypeEVScooter} {
		t.Run(string(vt), func(t *testing.T) {
			// under five: exempt
			got := NextInspectionDue(vehicle(vt, datePtr(2022, time.May, 1)), nil, date(2025, time.June, 1))
			assert.Nil(t, got)

			// over five, never inspected: manufacture + 5 years
			got = NextInspectionDue(vehicle(vt, datePtr(2018, time.May, 1)), nil, date(2025, time.June, 1))
			require.NotNil(t, got)
			assert.Equal(t, CadenceAnnual, got.Cadence)
			assert.Equal(t, date(2023, time.May, 1), got.DueDate)

			// over five with a last inspection: last + 1 year
			got = NextInspectionDue(vehicle(vt, datePtr(2018, time.May, 1)), datePtr(2024, time.August, 20), date(2025, time.June, 1))
			require.NotNil(t, got)
			assert.Equal(t, date(2025, time.August, 20), got.DueDate)
		})
	}
}

func TestNextInspectionDue_VanAndTruck(t *testing.T) {
	for _, vt := range []models.VehicleType{models.TypeVan, models.TypeTruck} {
		t.Run(string(vt), func(t *testing.T) {
			// under five, never inspected: manufacture + 1 year, annual from the start
			got := NextInspectionDue(vehicle(vt, datePtr(2023, time.January, 1)), nil, date(2024, time.February, 1))
			require.NotNil(t, got)
			assert.Equal(t, CadenceAnnual, got.Cadence)
			assert.Equal(t, date(2024, time.January, 1), got.DueDate)

			// under five with a last inspection: last + 1 year
			got = NextInspectionDue(vehicle(vt, datePtr(2023, time.January, 1)), datePtr(2024, time.January, 10), date(2024, time.June, 1))
			require.NotNil(t, got)
			assert.Equal(t, date(2025, time.January, 10), got.DueDate)

			// over five with a last inspection: last + 6 months
			got = NextInspectionDue(vehicle(vt, datePtr(2018, time.January, 1)), datePtr(2024, time.November, 5), date(2025, time.January, 1))
			require.NotNil(t, got)
			assert.Equal(t, CadenceSemiannual, got.Cadence)
			assert.Equal(t, date(2025, time.May, 5), got.DueDate)

			// over five, never inspected: manufacture + 5 years
			got = NextInspectionDue(vehicle(vt, datePtr(2018, time.January, 1)), nil, date(2025, time.January, 1))
			require.NotNil(t, got)
			assert.Equal(t, date(2023, time.January, 1), got.DueDate)
		})
	}
}

func TestNextMaintenanceDue(t *testing.T) {
	today := date(2025, time.June, 1)

	t.Run("six months after last routine service", func(t *testing.T) {
		got := NextMaintenanceDue(vehicle(models.TypeCar, datePtr(2020, time.January, 1)), datePtr(2025, time.February, 10), today)
		require.NotNil(t, got)
		assert.Equal(t, date(2025, time.August, 10), *got)
	})

	t.Run("never serviced and past grace period", func(t *testing.T) {
		got := NextMaintenanceDue(vehicle(models.TypeCar, datePtr(2024, time.January, 1)), nil, today)
		require.NotNil(t, got)
		assert.Equal(t, today, *got)
	})

	t.Run("never serviced inside grace period", func(t *testing.T) {
		got := NextMaintenanceDue(vehicle(models.TypeCar, datePtr(2025, time.March, 1)), nil, today)
		assert.Nil(t, got)
	})

	t.Run("never serviced and no manufacture date", func(t *testing.T) {
		got := NextMaintenanceDue(vehicle(models.TypeCar, nil), nil, today)
		assert.Nil(t, got)
	})
}

func TestLastCompletedInspection(t *testing.T) {
	records := []models.Inspection{
		{Kind: models.KindPeriodic, InspectedOn: datePtr(2023, time.March, 1)},
		{Kind: models.KindPeriodic, InspectedOn: nil, NotificationDate: datePtr(2025, time.May, 1)}, // notified, not completed
		{Kind: models.KindEmission, InspectedOn: datePtr(2024, time.July, 1)},
		{Kind: models.KindReinspection, InspectedOn: datePtr(2024, time.February, 1)},
	}
	got := LastCompletedInspection(records)
	require.NotNil(t, got)
	assert.Equal(t, date(2024, time.July, 1), *got)

	assert.Nil(t, LastCompletedInspection(nil))
	assert.Nil(t, LastCompletedInspection([]models.Inspection{{InspectedOn: nil}}))
}

func TestLastRoutineService(t *testing.T) {
	records := []models.Maintenance{
		{Category: models.CategoryMaintenance, PerformedOn: date(2024, time.January, 10)},
		{Category: models.CategoryRepair, PerformedOn: date(2025, time.April, 1)},  // does not reset cadence
		{Category: models.CategoryCarwash, PerformedOn: date(2025, time.May, 20)}, // neither does this
		{Category: models.CategoryMaintenance, PerformedOn: date(2024, time.September, 3)},
	}
	got := LastRoutineService(records)
	require.NotNil(t, got)
	assert.Equal(t, date(2024, time.September, 3), *got)

	assert.Nil(t, LastRoutineService([]models.Maintenance{
		{Category: models.CategoryRepair, PerformedOn: date(2025, time.April, 1)},
	}))
}
