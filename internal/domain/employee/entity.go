package employee

import "time"

type Employee struct {
	StaffID          int
	FirstName        string
	LastName         string
	Department       string
	Position         string
	Country          string
	Email            string
	ReportingManager *int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ManagerPosition is the reporting linkage of a single staff member.
type ManagerPosition struct {
	ReportingManager *int
	Position         string
}
