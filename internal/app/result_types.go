package app

import "technician-portal/internal/core"

// ImportResult is returned by the three import operations.
type ImportResult struct {
	Stream               string
	Inserted             int
	UnmatchedTechnicians []string
}

// UserResult is returned by CurrentUser.
type UserResult struct {
	User *core.User
}

// EmployeeListResult is returned by ListEmployees.
type EmployeeListResult struct {
	Employees []core.Employee
}

// MaterialListResult is returned by ListMaterials.
type MaterialListResult struct {
	Materials []core.Material
}

// ScheduleListResult is returned by ListScheduleEvents.
type ScheduleListResult struct {
	Events []core.ScheduleEvent
}

// TravelListResult is returned by ListTravelEvents.
type TravelListResult struct {
	Events []core.TravelEvent
}

// WorkListResult is returned by ListWorkEvents.
type WorkListResult struct {
	Events []core.WorkEvent
}

// ClearResult is returned by the bulk delete operations.
type ClearResult struct {
	Deleted int64
}
