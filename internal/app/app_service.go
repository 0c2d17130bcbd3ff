package app

import (
	"context"
	"fmt"

	"technician-portal/internal/core"
)

type appService struct {
	imports   core.ImportService
	events    core.EventService
	employees core.EmployeeService
	materials core.MaterialService
	users     core.UserService
}

// NewAppService wires the domain services into the single application
// service the outer adapters depend on.
func NewAppService(
	imports core.ImportService,
	events core.EventService,
	employees core.EmployeeService,
	materials core.MaterialService,
	users core.UserService,
) ApplicationService {
	return &appService{
		imports:   imports,
		events:    events,
		employees: employees,
		materials: materials,
		users:     users,
	}
}

// resolveUploader maps the request's identity fields onto a portal account.
// The auth-provider subject wins when both are supplied.
func (s *appService) resolveUploader(ctx context.Context, req ImportRequest) (*core.User, error) {
	switch {
	case req.UploaderAuthUID != "":
		return s.users.GetByAuthUID(ctx, req.UploaderAuthUID)
	case req.UploaderEmail != "":
		return s.users.GetByEmail(ctx, req.UploaderEmail)
	default:
		return nil, fmt.Errorf("import request carries no uploader identity")
	}
}

func (s *appService) runImport(
	ctx context.Context,
	stream string,
	req ImportRequest,
	doImport func(context.Context, []core.Row, core.User) (*core.ImportSummary, error),
) (*ImportResult, error) {
	uploader, err := s.resolveUploader(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s import: %w", stream, err)
	}
	summary, err := doImport(ctx, req.Rows, *uploader)
	if err != nil {
		return nil, err
	}
	return &ImportResult{
		Stream:               stream,
		Inserted:             summary.Inserted,
		UnmatchedTechnicians: summary.UnmatchedTechnicians,
	}, nil
}

func (s *appService) ImportScheduleEvents(ctx context.Context, req ImportRequest) (*ImportResult, error) {
	return s.runImport(ctx, "schedule", req, s.imports.ImportSchedule)
}

func (s *appService) ImportTravelEvents(ctx context.Context, req ImportRequest) (*ImportResult, error) {
	return s.runImport(ctx, "travel", req, s.imports.ImportTravel)
}

func (s *appService) ImportWorkEvents(ctx context.Context, req ImportRequest) (*ImportResult, error) {
	return s.runImport(ctx, "work", req, s.imports.ImportWork)
}

func (s *appService) CurrentUser(ctx context.Context, authUID string) (*UserResult, error) {
	u, err := s.users.GetByAuthUID(ctx, authUID)
	if err != nil {
		return nil, err
	}
	return &UserResult{User: u}, nil
}

func (s *appService) ListEmployees(ctx context.Context) (*EmployeeListResult, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	return &EmployeeListResult{Employees: employees}, nil
}

func (s *appService) ListMaterials(ctx context.Context, materialType string) (*MaterialListResult, error) {
	materials, err := s.materials.ListByType(ctx, materialType)
	if err != nil {
		return nil, err
	}
	return &MaterialListResult{Materials: materials}, nil
}

func (s *appService) ListScheduleEvents(ctx context.Context) (*ScheduleListResult, error) {
	events, err := s.events.ListSchedule(ctx)
	if err != nil {
		return nil, err
	}
	return &ScheduleListResult{Events: events}, nil
}

func (s *appService) ListTravelEvents(ctx context.Context, viewerAuthUID string) (*TravelListResult, error) {
	viewer, err := s.users.GetByAuthUID(ctx, viewerAuthUID)
	if err != nil {
		return nil, err
	}
	events, err := s.events.ListTravel(ctx, *viewer)
	if err != nil {
		return nil, err
	}
	return &TravelListResult{Events: events}, nil
}

func (s *appService) ListWorkEvents(ctx context.Context, viewerAuthUID string) (*WorkListResult, error) {
	viewer, err := s.users.GetByAuthUID(ctx, viewerAuthUID)
	if err != nil {
		return nil, err
	}
	events, err := s.events.ListWork(ctx, *viewer)
	if err != nil {
		return nil, err
	}
	return &WorkListResult{Events: events}, nil
}

func (s *appService) ClearTravelEvents(ctx context.Context) (*ClearResult, error) {
	deleted, err := s.events.ClearTravel(ctx)
	if err != nil {
		return nil, err
	}
	return &ClearResult{Deleted: deleted}, nil
}

func (s *appService) ClearWorkEvents(ctx context.Context) (*ClearResult, error) {
	deleted, err := s.events.ClearWork(ctx)
	if err != nil {
		return nil, err
	}
	return &ClearResult{Deleted: deleted}, nil
}
