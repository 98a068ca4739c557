package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/fleet-compliance/internal/db"
	"github.com/ukydev/fleet-compliance/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// EmployeeHandler handles employee registry requests
type EmployeeHandler struct {
	employees db.EmployeeCollection
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employees db.EmployeeCollection) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

// Create handles employee creation
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var employee models.Employee
	if !readJSON(w, r, &employee) {
		return
	}

	if employee.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	if _, err := h.employees.FindEmployeeByName(r.Context(), employee.Name); err == nil {
		http.Error(w, "Employee already exists", http.StatusConflict)
		return
	}

	if err := h.employees.InsertEmployee(r.Context(), employee); err != nil {
		log.WithError(err).Error("Failed to insert employee")
		http.Error(w, "Failed to create employee", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, employee)
}

// List handles employee listing
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.FindEmployees(r.Context(), bson.M{})
	if err != nil {
		log.WithError(err).Error("Failed to list employees")
		http.Error(w, "Failed to list employees", http.StatusInternalServerError)
		return
	}
	if employees == nil {
		employees = []models.Employee{}
	}

	writeJSON(w, http.StatusOK, employees)
}

// Get handles fetching a single employee
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	employee, err := h.employees.FindEmployeeByID(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, "Employee not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, employee)
}

// Update handles employee updates
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	existing, err := h.employees.FindEmployeeByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Employee not found", http.StatusNotFound)
		return
	}

	var employee models.Employee
	if !readJSON(w, r, &employee) {
		return
	}
	if employee.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	employee.CreatedAt = existing.CreatedAt

	if err := h.employees.UpdateEmployee(r.Context(), id, employee); err != nil {
		log.WithError(err).Error("Failed to update employee")
		http.Error(w, "Failed to update employee", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, employee)
}

// Delete handles employee deletion
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.employees.DeleteEmployee(r.Context(), r.PathValue("id")); err != nil {
		http.Error(w, "Failed to delete employee", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
