package request

import (
	"github.com/aio-wfh/wfh-backend-go/internal/pkg/validator"
)

type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type CreateWFHRequest struct {
	StaffID   int       `json:"-"` // set from JWT claims, never from the body
	DateRange DateRange `json:"date_range"`
	WFHType   string    `json:"wfh_type"`
	Reason    string    `json:"reason"`
	Documents []string  `json:"documents,omitempty"` // base64 payloads
}

func (r CreateWFHRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.DateRange.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "date_range.start_date", Message: "Start date must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.DateRange.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "date_range.end_date", Message: "End date must be YYYY-MM-DD"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "date_range", Message: "End date must not be before start date"})
	}
	if !validator.IsInSlice(r.WFHType, WFHTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "wfh_type", Message: "WFH type must be one of AM, PM, WD"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "Reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectWFHRequest struct {
	RequestID     int    `json:"-"`
	ManagerReason string `json:"manager_reason"`
}

func (r RejectWFHRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ManagerReason) {
		errs = append(errs, validator.ValidationError{Field: "manager_reason", Message: "Manager reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateStatusRequest is the partial update applied on approve, reject and
// withdraw transitions.
type UpdateStatusRequest struct {
	RequestID     int
	Status        RequestStatus
	ManagerReason *string
	UserSeen      *bool
	ManagerSeen   *bool
}
