package schedule

import (
	"time"

	"github.com/aio-wfh/wfh-backend-go/internal/domain/auth"
	"github.com/aio-wfh/wfh-backend-go/internal/pkg/validator"
)

// GetScheduleRequest carries the requester's identity and the window to
// aggregate. StaffID and Role come from the verified token, never the body.
type GetScheduleRequest struct {
	StaffID     int
	Role        auth.Role
	StartDate   time.Time
	EndDate     time.Time
	Departments []string
	Positions   []string
}

func (r GetScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !auth.IsValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role is not recognized"})
	}
	if r.EndDate.Before(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
