package request

import "time"

type RequestStatus string

const (
	StatusPending   RequestStatus = "Pending"
	StatusApproved  RequestStatus = "Approved"
	StatusRejected  RequestStatus = "Rejected"
	StatusWithdrawn RequestStatus = "Withdrawn"
)

// WFHType is the granularity of a single approved day.
type WFHType string

const (
	WFHTypeMorning   WFHType = "AM"
	WFHTypeAfternoon WFHType = "PM"
	WFHTypeFullDay   WFHType = "WD"
)

var WFHTypeValues = []string{
	string(WFHTypeMorning),
	string(WFHTypeAfternoon),
	string(WFHTypeFullDay),
}

// WFHRequest entity
type WFHRequest struct {
	RequestID     int           `json:"request_id"`
	StaffID       int           `json:"staff_id"`
	Status        RequestStatus `json:"status"`
	RequestReason string        `json:"request_reason"`
	ManagerReason *string       `json:"manager_reason,omitempty"`
	Documents     []string      `json:"documents,omitempty"`
	UserSeen      bool          `json:"user_seen"`
	ManagerSeen   bool          `json:"manager_seen"`
	CreatedAt     time.Time     `json:"created_at"`
	LastUpdated   time.Time     `json:"last_updated"`

	Days []WFHDay `json:"days,omitempty"`
}

// WFHDay belongs to exactly one request; one calendar date, one sub-type.
type WFHDay struct {
	RequestID int       `json:"request_id"`
	Date      time.Time `json:"date"`
	Type      WFHType   `json:"wfh_type"`
}

// ApprovedDay is one approved leave day for one employee, as returned by the
// aggregation join feeding the schedule builder.
type ApprovedDay struct {
	StaffID int
	Date    time.Time
	Type    WFHType
}
