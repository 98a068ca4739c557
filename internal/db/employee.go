package db

import (
	"context"
	"time"

	"github.com/ukydev/fleet-compliance/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EmployeeCollection defines the interface for employee database operations
type EmployeeCollection interface {
	InsertEmployee(ctx context.Context, employee models.Employee) error
	FindEmployees(ctx context.Context, filter bson.M) ([]models.Employee, error)
	FindEmployeeByID(ctx context.Context, id string) (*models.Employee, error)
	FindEmployeeByName(ctx context.Context, name string) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, id string, employee models.Employee) error
	DeleteEmployee(ctx context.Context, id string) error
}

// MongoEmployeeCollection implements EmployeeCollection for MongoDB
type MongoEmployeeCollection struct {
	Collection *mongo.Collection
}

// InsertEmployee inserts a new employee into the database
func (c *MongoEmployeeCollection) InsertEmployee(ctx context.Context, employee models.Employee) error {
	employee.CreatedAt = time.Now()
	employee.UpdatedAt = time.Now()

	_, err := c.Collection.InsertOne(ctx, employee)
	return err
}

// FindEmployees finds employees matching a filter, sorted by name
func (c *MongoEmployeeCollection) FindEmployees(ctx context.Context, filter bson.M) ([]models.Employee, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := c.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// FindEmployeeByID finds an employee by their ID
func (c *MongoEmployeeCollection) FindEmployeeByID(ctx context.Context, id string) (*models.Employee, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var employee models.Employee
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&employee)
	if err != nil {
		return nil, err
	}

	return &employee, nil
}

// FindEmployeeByName finds an employee by their exact name
func (c *MongoEmployeeCollection) FindEmployeeByName(ctx context.Context, name string) (*models.Employee, error) {
	var employee models.Employee
	err := c.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&employee)
	if err != nil {
		return nil, err
	}

	return &employee, nil
}

// UpdateEmployee updates an employee in the database
func (c *MongoEmployeeCollection) UpdateEmployee(ctx context.Context, id string, employee models.Employee) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	employee.UpdatedAt = time.Now()
	employee.ID = objectID

	_, err = c.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, employee)
	return err
}

// DeleteEmployee deletes an employee from the database
func (c *MongoEmployeeCollection) DeleteEmployee(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = c.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}
