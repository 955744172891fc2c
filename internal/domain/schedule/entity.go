package schedule

// StatusInOffice is the default attendance status; an approved WFH day
// overrides it with the day's sub-type (AM, PM or WD).
const StatusInOffice = "IN"

// DaySchedule is the canonical output shape of the schedule builder: an
// ordered list of dates, each grouping members by department then team.
// Ordering is deterministic (dates ascending, groups in roster order) so
// rebuilding from identical inputs serializes byte-identically.
type DaySchedule struct {
	Date        string               `json:"date"`
	Departments []DepartmentSchedule `json:"departments"`
}

type DepartmentSchedule struct {
	Department string         `json:"department"`
	Teams      []TeamSchedule `json:"teams"`
}

type TeamSchedule struct {
	Team    string         `json:"team"`
	Members []MemberStatus `json:"members"`
}

type MemberStatus struct {
	StaffID   int    `json:"staff_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Status    string `json:"status"`
}
