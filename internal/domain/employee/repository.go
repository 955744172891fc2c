package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, staffID int) (Employee, error)
	GetManagerAndPosition(ctx context.Context, staffID int) (ManagerPosition, error)
	GetAll(ctx context.Context, filter DirectoryFilter) ([]Employee, error)
	// GetReportingLine returns the employees reporting to managerID plus the
	// manager's own record.
	GetReportingLine(ctx context.Context, managerID int) ([]Employee, error)
}

// DirectoryFilter narrows GetAll by exact department/position match.
// Empty slices mean no filtering on that column.
type DirectoryFilter struct {
	Departments []string
	Positions   []string
}
