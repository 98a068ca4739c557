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
	"go.mongodb.org/mongo-driver/bson"
)

// MockDisposalCollection is a mock implementation of DisposalCollection
type MockDisposalCollection struct {
	mock.Mock
}

func (m *MockDisposalCollection) InsertDisposal(ctx context.Context, disposal models.Disposal) error {
	args := m.Called(ctx, disposal)
	return args.Error(0)
}

func (m *MockDisposalCollection) FindDisposals(ctx context.Context, filter bson.M) ([]models.Disposal, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Disposal), args.Error(1)
}

func TestDisposalHandler_Create(t *testing.T) {
	disposedOn := time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)
	vehicle := &models.Vehicle{PlateNo: "12A-3456", Status: models.StatusActive}

	disposalBody := func(t *testing.T, disposal models.Disposal) *bytes.Buffer {
		t.Helper()
		body, err := json.Marshal(disposal)
		require.NoError(t, err)
		return bytes.NewBuffer(body)
	}

	t.Run("disposal retires the vehicle", func(t *testing.T) {
		disposals := new(MockDisposalCollection)
		vehicles := new(MockVehicleCollection)
		handler := NewDisposalHandler(disposals, vehicles)

		vehicles.On("FindVehicleByID", mock.Anything, "veh-1").Return(vehicle, nil)
		disposals.On("InsertDisposal", mock.Anything, mock.AnythingOfType("models.Disposal")).Return(nil)
		vehicles.On("UpdateVehicleStatus", mock.Anything, "veh-1", models.StatusRetired).Return(nil)

		disposal := models.Disposal{
			VehicleID:  "veh-1",
			DisposedOn: disposedOn,
			Reason:     "end of service life",
		}
		req := httptest.NewRequest("POST", "/api/disposals", disposalBody(t, disposal))
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		disposals.AssertExpectations(t)
		vehicles.AssertExpectations(t)
	})

	t.Run("unknown vehicle rejected", func(t *testing.T) {
		disposals := new(MockDisposalCollection)
		vehicles := new(MockVehicleCollection)
		handler := NewDisposalHandler(disposals, vehicles)

		vehicles.On("FindVehicleByID", mock.Anything, "missing").Return(nil, assert.AnError)

		disposal := models.Disposal{VehicleID: "missing", DisposedOn: disposedOn}
		req := httptest.NewRequest("POST", "/api/disposals", disposalBody(t, disposal))
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		disposals.AssertNotCalled(t, "InsertDisposal", mock.Anything, mock.Anything)
	})

	t.Run("missing disposed_on rejected", func(t *testing.T) {
		disposals := new(MockDisposalCollection)
		vehicles := new(MockVehicleCollection)
		handler := NewDisposalHandler(disposals, vehicles)

		disposal := models.Disposal{VehicleID: "veh-1"}
		req := httptest.NewRequest("POST", "/api/disposals", disposalBody(t, disposal))
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		vehicles.AssertNotCalled(t, "UpdateVehicleStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}
