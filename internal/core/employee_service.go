package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"technician-portal/internal/reconcile"
)

type employeeService struct {
	pool *pgxpool.Pool
}

// NewEmployeeService constructs an EmployeeService backed by PostgreSQL.
func NewEmployeeService(pool *pgxpool.Pool) EmployeeService {
	return &employeeService{pool: pool}
}

func (s *employeeService) List(ctx context.Context) ([]Employee, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, position, phone, email, certifications
		FROM employees
		ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Position, &e.Phone, &e.Email, &e.Certifications); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}
	return employees, nil
}

func (s *employeeService) Directory(ctx context.Context) ([]reconcile.Entry, error) {
	rows, err := s.pool.Query(ctx, "SELECT id, name FROM employees ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("load employee directory: %w", err)
	}
	defer rows.Close()

	var directory []reconcile.Entry
	for rows.Next() {
		var e reconcile.Entry
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, fmt.Errorf("scan directory entry: %w", err)
		}
		directory = append(directory, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate directory: %w", err)
	}
	return directory, nil
}
