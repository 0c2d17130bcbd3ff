package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type eventService struct {
	pool *pgxpool.Pool
}

// NewEventService constructs an EventService backed by PostgreSQL.
func NewEventService(pool *pgxpool.Pool) EventService {
	return &eventService{pool: pool}
}

const calendarColumns = `
	id, employee_id, planned_start_time_utc, name, property,
	job_number, visit_number, description, event_type,
	technician_name, department_name, status, additional_technicians,
	last_updated_by, last_updated_by_name, last_updated_time_utc, created_at`

func (s *eventService) ListSchedule(ctx context.Context) ([]ScheduleEvent, error) {
	rows, err := s.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s
		FROM calendar_events
		ORDER BY planned_start_time_utc ASC`, calendarColumns),
	)
	if err != nil {
		return nil, fmt.Errorf("list schedule events: %w", err)
	}
	defer rows.Close()

	var events []ScheduleEvent
	for rows.Next() {
		var e ScheduleEvent
		if err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.PlannedStartTimeUTC, &e.Name, &e.Property,
			&e.JobNumber, &e.VisitNumber, &e.Description, &e.EventType,
			&e.TechnicianName, &e.DepartmentName, &e.Status, &e.AdditionalTechnicians,
			&e.LastUpdatedBy, &e.LastUpdatedByName, &e.LastUpdatedTimeUTC, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan schedule event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedule events: %w", err)
	}
	return events, nil
}

func (s *eventService) ListTravel(ctx context.Context, viewer User) ([]TravelEvent, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM travel_events
		ORDER BY planned_start_time_utc ASC`, calendarColumns)
	args := []any{}
	if !viewer.CanViewAllEvents() {
		query = fmt.Sprintf(`
			SELECT %s
			FROM travel_events
			WHERE employee_id = $1
			ORDER BY planned_start_time_utc ASC`, calendarColumns)
		args = append(args, viewer.ID)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list travel events: %w", err)
	}
	defer rows.Close()

	var events []TravelEvent
	for rows.Next() {
		var e TravelEvent
		if err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.PlannedStartTimeUTC, &e.Name, &e.Property,
			&e.JobNumber, &e.VisitNumber, &e.Description, &e.EventType,
			&e.TechnicianName, &e.DepartmentName, &e.Status, &e.AdditionalTechnicians,
			&e.LastUpdatedBy, &e.LastUpdatedByName, &e.LastUpdatedTimeUTC, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan travel event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate travel events: %w", err)
	}
	return events, nil
}

func (s *eventService) ListWork(ctx context.Context, viewer User) ([]WorkEvent, error) {
	const workColumns = `
		id, employee_id, date_and_time, customer_name, property,
		job, visit, description, job_type, primary_technician,
		department, visit_status, last_updated_by, last_updated_by_name,
		last_updated_time_utc, address_line, city, state, zipcode, created_at`

	query := fmt.Sprintf(`
		SELECT %s
		FROM work_events
		ORDER BY date_and_time ASC`, workColumns)
	args := []any{}
	if !viewer.CanViewAllEvents() {
		query = fmt.Sprintf(`
			SELECT %s
			FROM work_events
			WHERE employee_id = $1
			ORDER BY date_and_time ASC`, workColumns)
		args = append(args, viewer.ID)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list work events: %w", err)
	}
	defer rows.Close()

	var events []WorkEvent
	for rows.Next() {
		var e WorkEvent
		if err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.DateAndTime, &e.CustomerName, &e.Property,
			&e.Job, &e.Visit, &e.Description, &e.JobType, &e.PrimaryTechnician,
			&e.Department, &e.VisitStatus, &e.LastUpdatedBy, &e.LastUpdatedByName,
			&e.LastUpdatedTimeUTC, &e.AddressLine, &e.City, &e.State, &e.Zipcode, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan work event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate work events: %w", err)
	}
	return events, nil
}

func (s *eventService) ClearTravel(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, "DELETE FROM travel_events")
	if err != nil {
		return 0, fmt.Errorf("clear travel events: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (s *eventService) ClearWork(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, "DELETE FROM work_events")
	if err != nil {
		return 0, fmt.Errorf("clear work events: %w", err)
	}
	return tag.RowsAffected(), nil
}
