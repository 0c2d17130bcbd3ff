package core

import (
	"context"
	"time"
)

// ScheduleEvent is one row of the calendar_events stream: a planned visit as
// exported by the scheduling system. EmployeeID is nil exactly when the
// technician name could not be reconciled against the directory.
type ScheduleEvent struct {
	ID                    int
	EmployeeID            *int
	PlannedStartTimeUTC   *time.Time
	Name                  *string
	Property              *string
	JobNumber             *string
	VisitNumber           *string
	Description           *string
	EventType             *string
	TechnicianName        *string
	DepartmentName        *string
	Status                *string
	AdditionalTechnicians *string
	LastUpdatedBy         int
	LastUpdatedByName     string
	LastUpdatedTimeUTC    *time.Time
	CreatedAt             time.Time
}

// TravelEvent is one row of the travel_events stream. The travel export
// carries the same column set as the schedule export but lands in its own
// table.
type TravelEvent struct {
	ID                    int
	EmployeeID            *int
	PlannedStartTimeUTC   *time.Time
	Name                  *string
	Property              *string
	JobNumber             *string
	VisitNumber           *string
	Description           *string
	EventType             *string
	TechnicianName        *string
	DepartmentName        *string
	Status                *string
	AdditionalTechnicians *string
	LastUpdatedBy         int
	LastUpdatedByName     string
	LastUpdatedTimeUTC    *time.Time
	CreatedAt             time.Time
}

// WorkEvent is one row of the work_events stream: a completed or in-progress
// visit as exported by the work-order system.
type WorkEvent struct {
	ID                 int
	EmployeeID         *int
	DateAndTime        *time.Time
	CustomerName       *string
	Property           *string
	Job                *string
	Visit              *string
	Description        *string
	JobType            *string
	PrimaryTechnician  *string
	Department         *string
	VisitStatus        *string
	LastUpdatedBy      int
	LastUpdatedByName  string
	LastUpdatedTimeUTC *time.Time
	AddressLine        *string
	City               *string
	State              *string
	Zipcode            *string
	CreatedAt          time.Time
}

// EventService reads back the persisted event streams and hosts the bulk
// maintenance operations.
type EventService interface {
	// ListSchedule returns all calendar events ordered by planned start time.
	ListSchedule(ctx context.Context) ([]ScheduleEvent, error)

	// ListTravel returns travel events visible to the viewer: everything for
	// schedulers and admins, otherwise only rows linked to the viewer.
	ListTravel(ctx context.Context, viewer User) ([]TravelEvent, error)

	// ListWork returns work events visible to the viewer, with the same role
	// rule as ListTravel.
	ListWork(ctx context.Context, viewer User) ([]WorkEvent, error)

	// ClearTravel deletes every travel event and returns the removed count.
	ClearTravel(ctx context.Context) (int64, error)

	// ClearWork deletes every work event and returns the removed count.
	ClearWork(ctx context.Context) (int64, error)
}
