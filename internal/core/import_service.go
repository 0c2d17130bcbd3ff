package core

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"technician-portal/internal/reconcile"
)

// ImportSummary reports the outcome of one bulk upload. Unmatched technician
// names are a data-quality signal for human follow-up, not an error: the rows
// were inserted with a null employee reference.
type ImportSummary struct {
	Inserted             int
	UnmatchedTechnicians []string
}

// ImportService ingests parsed spreadsheet rows into the three event streams.
// Each call is one atomic batch: either every row is inserted or none are.
// Rows are not deduplicated here; uniqueness is the store's concern.
type ImportService interface {
	// ImportSchedule ingests scheduling-export rows into calendar_events.
	ImportSchedule(ctx context.Context, rows []Row, uploader User) (*ImportSummary, error)

	// ImportTravel ingests travel-export rows into travel_events.
	ImportTravel(ctx context.Context, rows []Row, uploader User) (*ImportSummary, error)

	// ImportWork ingests work-order-export rows into work_events.
	ImportWork(ctx context.Context, rows []Row, uploader User) (*ImportSummary, error)
}

type importService struct {
	pool *pgxpool.Pool
}

// NewImportService constructs an ImportService backed by PostgreSQL.
func NewImportService(pool *pgxpool.Pool) ImportService {
	return &importService{pool: pool}
}

// streamSpec parameterizes the shared pipeline per record stream: which cell
// holds the technician name, which insert receives the record, and how a row
// maps onto the insert arguments. The three streams differ only here.
type streamSpec struct {
	stream     string
	techColumn string
	insertSQL  string
	args       func(row Row, employeeID *int, uploader User) []any
}

// calendarSpec builds the spec shared by the schedule and travel streams,
// which carry identical column sets into different tables.
func calendarSpec(stream, table string) streamSpec {
	return streamSpec{
		stream:     stream,
		techColumn: "Technician Name",
		insertSQL: fmt.Sprintf(`
			INSERT INTO %s (
				employee_id, planned_start_time_utc, name, property,
				job_number, visit_number, description, event_type,
				technician_name, department_name, status, additional_technicians,
				last_updated_by, last_updated_by_name, last_updated_time_utc, created_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())`,
			table,
		),
		args: func(row Row, employeeID *int, uploader User) []any {
			return []any{
				employeeID,
				row.CellTime("Planned Start Time Utc"),
				row.CellRef("Name"),
				row.CellRef("Property"),
				row.CellRef("Job Number"),
				row.CellRef("Visit Number"),
				row.CellRef("Description"),
				row.CellRef("Event Type"),
				row.CellRef("Technician Name"),
				row.CellRef("Department Name"),
				row.CellRef("Status"),
				row.CellRef("Additional Technicians"),
				uploader.ID,
				uploader.Name,
				row.CellTime("Last Updated Time Utc"),
			}
		},
	}
}

var (
	scheduleSpec = calendarSpec("schedule", "calendar_events")
	travelSpec   = calendarSpec("travel", "travel_events")

	workSpec = streamSpec{
		stream:     "work",
		techColumn: "Primary Technician",
		insertSQL: `
			INSERT INTO work_events (
				employee_id, date_and_time, customer_name, property,
				job, visit, description, job_type, primary_technician,
				department, visit_status, last_updated_by, last_updated_by_name,
				last_updated_time_utc, address_line, city, state, zipcode, created_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, NOW())`,
		args: func(row Row, employeeID *int, uploader User) []any {
			return []any{
				employeeID,
				row.CellTime("Date and Time"),
				row.CellRef("Customer Name"),
				row.CellRef("Property"),
				row.CellRef("Job"),
				row.CellRef("Visit"),
				row.CellRef("Description"),
				row.CellRef("Job Type"),
				row.CellRef("Primary Technician"),
				row.CellRef("Department"),
				row.CellRef("Visit Status"),
				uploader.ID,
				uploader.Name,
				row.CellTime("Last Updated Time Utc"),
				row.CellRef("Address Line 1"),
				row.CellRef("City"),
				row.CellRef("State"),
				row.CellRef("Zipcode"),
			}
		},
	}
)

func (s *importService) ImportSchedule(ctx context.Context, rows []Row, uploader User) (*ImportSummary, error) {
	return s.runImport(ctx, scheduleSpec, rows, uploader)
}

func (s *importService) ImportTravel(ctx context.Context, rows []Row, uploader User) (*ImportSummary, error) {
	return s.runImport(ctx, travelSpec, rows, uploader)
}

func (s *importService) ImportWork(ctx context.Context, rows []Row, uploader User) (*ImportSummary, error) {
	return s.runImport(ctx, workSpec, rows, uploader)
}

// runImport is the shared pipeline: one transaction, one directory index
// built inside it, one insert per row, one commit. The deferred rollback
// guarantees a mid-batch failure leaves nothing visible and no transaction
// open.
func (s *importService) runImport(ctx context.Context, spec streamSpec, rows []Row, uploader User) (*ImportSummary, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin %s import: %w", spec.stream, err)
	}
	defer tx.Rollback(ctx)

	directory, err := loadDirectory(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("%s import: %w", spec.stream, err)
	}

	batch := reconcile.NewBatch(directory)
	for _, c := range batch.Collisions() {
		log.Printf("employee directory: names collide on key %q (kept id=%d, dropped id=%d)", c.Key, c.KeptID, c.DroppedID)
	}

	inserted := 0
	for i, row := range rows {
		// The unmatched set records the trimmed cell text, matching what
		// CellRef stores in the technician-name column below.
		outcome := batch.Resolve(row.CellString(spec.techColumn))
		// last_updated_by is always the authenticated uploader, never row data.
		if _, err := tx.Exec(ctx, spec.insertSQL, spec.args(row, outcome.EmployeeRef(), uploader)...); err != nil {
			return nil, fmt.Errorf("insert %s row %d: %w", spec.stream, i+1, err)
		}
		inserted++
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit %s import: %w", spec.stream, err)
	}

	return &ImportSummary{
		Inserted:             inserted,
		UnmatchedTechnicians: batch.Unmatched(),
	}, nil
}

// loadDirectory reads the id/name snapshot inside the import transaction so
// the index and the inserts see the same directory state.
func loadDirectory(ctx context.Context, tx pgx.Tx) ([]reconcile.Entry, error) {
	rows, err := tx.Query(ctx, "SELECT id, name FROM employees ORDER BY id")
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
