package app

import "context"

// ApplicationService is the single interface outer adapters (CLI tools, a
// future HTTP layer) call. It decouples transport from business logic;
// implementations contain no display logic of any kind.
type ApplicationService interface {
	// ImportScheduleEvents ingests parsed schedule rows as one atomic batch
	// and returns the inserted count plus the unmatched technician names.
	ImportScheduleEvents(ctx context.Context, req ImportRequest) (*ImportResult, error)

	// ImportTravelEvents ingests parsed travel rows, same contract as
	// ImportScheduleEvents.
	ImportTravelEvents(ctx context.Context, req ImportRequest) (*ImportResult, error)

	// ImportWorkEvents ingests parsed work-order rows, same contract as
	// ImportScheduleEvents.
	ImportWorkEvents(ctx context.Context, req ImportRequest) (*ImportResult, error)

	// CurrentUser resolves the portal account for an identity-provider subject.
	CurrentUser(ctx context.Context, authUID string) (*UserResult, error)

	// ListEmployees returns the employee directory ordered by id.
	ListEmployees(ctx context.Context) (*EmployeeListResult, error)

	// ListMaterials returns the materials catalog entries of one type
	// (data or electrical) ordered by id.
	ListMaterials(ctx context.Context, materialType string) (*MaterialListResult, error)

	// ListScheduleEvents returns all calendar events ordered by planned start.
	ListScheduleEvents(ctx context.Context) (*ScheduleListResult, error)

	// ListTravelEvents returns the travel events visible to the viewer:
	// schedulers and admins see everything, everyone else their own rows.
	ListTravelEvents(ctx context.Context, viewerAuthUID string) (*TravelListResult, error)

	// ListWorkEvents returns the work events visible to the viewer, with the
	// same role rule as ListTravelEvents.
	ListWorkEvents(ctx context.Context, viewerAuthUID string) (*WorkListResult, error)

	// ClearTravelEvents deletes every travel event. Maintenance operation.
	ClearTravelEvents(ctx context.Context) (*ClearResult, error)

	// ClearWorkEvents deletes every work event. Maintenance operation.
	ClearWorkEvents(ctx context.Context) (*ClearResult, error)
}
