package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/fleet-compliance/internal/models"
)

// MockAssetEventCollection is a mock implementation of AssetEventCollection
type MockAssetEventCollection struct {
	mock.Mock
}

func (m *MockAssetEventCollection) InsertAssetEvent(ctx context.Context, event models.AssetEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockAssetEventCollection) FindAssetEventsByVehicle(ctx context.Context, vehicleID string) ([]models.AssetEvent, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AssetEvent), args.Error(1)
}

func TestAssetHandler_CreateEvent(t *testing.T) {
	logDate := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	vehicle := &models.Vehicle{PlateNo: "12A-3456", Status: models.StatusActive}

	eventBody := func(t *testing.T, event models.AssetEvent) *bytes.Buffer {
		t.Helper()
		body, err := json.Marshal(event)
		require.NoError(t, err)
		return bytes.NewBuffer(body)
	}

	t.Run("valid event is appended", func(t *testing.T) {
		events := new(MockAssetEventCollection)
		vehicles := new(MockVehicleCollection)
		handler := NewAssetHandler(events, vehicles)

		vehicles.On("FindVehicleByID", mock.Anything, "veh-1").Return(vehicle, nil)
		events.On("InsertAssetEvent", mock.Anything, mock.AnythingOfType("models.AssetEvent")).Return(nil)

		event := models.AssetEvent{
			VehicleID: "veh-1",
			UserID:    "emp-1",
			LogDate:   logDate,
			AssetType: models.AssetKey,
			Status:    models.AssetAssigned,
		}
		req := httptest.NewRequest("POST", "/api/asset-events", eventBody(t, event))
		w := httptest.NewRecorder()

		handler.CreateEvent(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		events.AssertExpectations(t)
	})

	t.Run("unknown vehicle rejected", func(t *testing.T) {
		events := new(MockAssetEventCollection)
		vehicles := new(MockVehicleCollection)
		handler := NewAssetHandler(events, vehicles)

		vehicles.On("FindVehicleByID", mock.Anything, "missing").Return(nil, assert.AnError)

		event := models.AssetEvent{
			VehicleID: "missing",
			LogDate:   logDate,
			AssetType: models.AssetKey,
			Status:    models.AssetAssigned,
		}
		req := httptest.NewRequest("POST", "/api/asset-events", eventBody(t, event))
		w := httptest.NewRecorder()

		handler.CreateEvent(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		events.AssertNotCalled(t, "InsertAssetEvent", mock.Anything, mock.Anything)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		events := new(MockAssetEventCollection)
		vehicles := new(MockVehicleCollection)
		handler := NewAssetHandler(events, vehicles)

		event := models.AssetEvent{
			VehicleID: "veh-1",
			LogDate:   logDate,
			AssetType: models.AssetKey,
			Status:    "misplaced",
		}
		req := httptest.NewRequest("POST", "/api/asset-events", eventBody(t, event))
		w := httptest.NewRecorder()

		handler.CreateEvent(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing log date rejected", func(t *testing.T) {
		events := new(MockAssetEventCollection)
		vehicles := new(MockVehicleCollection)
		handler := NewAssetHandler(events, vehicles)

		event := models.AssetEvent{
			VehicleID: "veh-1",
			AssetType: models.AssetKey,
			Status:    models.AssetAssigned,
		}
		req := httptest.NewRequest("POST", "/api/asset-events", eventBody(t, event))
		w := httptest.NewRecorder()

		handler.CreateEvent(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAssetHandler_VehicleAssets(t *testing.T) {
	vehicle := &models.Vehicle{PlateNo: "12A-3456", Status: models.StatusActive}
	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("returns history and derived holdings", func(t *testing.T) {
		events := new(MockAssetEventCollection)
		vehicles := new(MockVehicleCollection)
		handler := NewAssetHandler(events, vehicles)

		log := []models.AssetEvent{
			{VehicleID: "veh-1", AssetType: models.AssetKey, Status: models.AssetAssigned, UserID: "emp-1", LogDate: day(1)},
			{VehicleID: "veh-1", AssetType: models.AssetKey, Status: models.AssetAssigned, UserID: "emp-2", LogDate: day(5)},
			{VehicleID: "veh-1", AssetType: models.AssetDashcam, Status: models.AssetLost, LogDate: day(3)},
		}
		vehicles.On("FindVehicleByID", mock.Anything, "veh-1").Return(vehicle, nil)
		events.On("FindAssetEventsByVehicle", mock.Anything, "veh-1").Return(log, nil)

		req := httptest.NewRequest("GET", "/api/vehicles/veh-1/assets", nil)
		req.SetPathValue("id", "veh-1")
		w := httptest.NewRecorder()

		handler.VehicleAssets(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp AssetStateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		require.Len(t, resp.History, 3)
		assert.Equal(t, day(5), resp.History[0].LogDate)

		// latest key event wins; lost dashcam drops out of holdings
		require.Len(t, resp.CurrentHoldings, 1)
		assert.Equal(t, models.AssetKey, resp.CurrentHoldings[0].AssetType)
		assert.Equal(t, "emp-2", resp.CurrentHoldings[0].UserID)
	})

	t.Run("empty log returns empty lists not null", func(t *testing.T) {
		events := new(MockAssetEventCollection)
		vehicles := new(MockVehicleCollection)
		handler := NewAssetHandler(events, vehicles)

		vehicles.On("FindVehicleByID", mock.Anything, "veh-1").Return(vehicle, nil)
		events.On("FindAssetEventsByVehicle", mock.Anything, "veh-1").Return([]models.AssetEvent{}, nil)

		req := httptest.NewRequest("GET", "/api/vehicles/veh-1/assets", nil)
		req.SetPathValue("id", "veh-1")
		w := httptest.NewRecorder()

		handler.VehicleAssets(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"history":[]`)
		assert.Contains(t, w.Body.String(), `"current_holdings":[]`)
	})

	t.Run("unknown vehicle returns not found", func(t *testing.T) {
		events := new(MockAssetEventCollection)
		vehicles := new(MockVehicleCollection)
		handler := NewAssetHandler(events, vehicles)

		vehicles.On("FindVehicleByID", mock.Anything, "missing").Return(nil, assert.AnError)

		req := httptest.NewRequest("GET", "/api/vehicles/missing/assets", nil)
		req.SetPathValue("id", "missing")
		w := httptest.NewRecorder()

		handler.VehicleAssets(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
