package notification

import "github.com/aio-wfh/wfh-backend-go/internal/pkg/validator"

type ListResponse struct {
	Manager []Notification `json:"manager,omitempty"`
	User    []Notification `json:"user"`
}

// MarkSeenRequest clears notifications from one of the two feeds. AsManager
// flips the manager-side flag; otherwise the owner-side flag is flipped.
type MarkSeenRequest struct {
	RequestIDs []int `json:"request_ids"`
	AsManager  bool  `json:"as_manager,omitempty"`
}

func (r MarkSeenRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.RequestIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "request_ids", Message: "At least one request ID is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
