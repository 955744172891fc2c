package request

import "errors"

var (
	ErrRequestNotFound       = errors.New("WFH request not found")
	ErrConflictingDates      = errors.New("Conflicting request dates found")
	ErrAlreadyProcessed      = errors.New("Request already processed")
	ErrNotRequestOwner       = errors.New("Request belongs to another employee")
	ErrNotReportingManager   = errors.New("Request is outside your reporting line")
	ErrManagerReasonRequired = errors.New("Manager reason must be provided")
)
