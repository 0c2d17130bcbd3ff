package core

import (
	"context"

	"technician-portal/internal/reconcile"
)

// Employee is one directory entry. The directory is owned by an external
// system of record; this service only reads it.
type Employee struct {
	ID             int
	Name           string
	Position       *string
	Phone          *string
	Email          *string
	Certifications *string
}

// EmployeeService provides read access to the employee directory.
type EmployeeService interface {
	// List returns every employee ordered by id.
	List(ctx context.Context) ([]Employee, error)

	// Directory returns the id/name snapshot the reconciliation engine
	// builds its index from.
	Directory(ctx context.Context) ([]reconcile.Entry, error)
}
