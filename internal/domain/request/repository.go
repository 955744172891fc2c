package request

import (
	"context"
	"time"
)

type WFHRequestRepository interface {
	Create(ctx context.Context, req WFHRequest) (WFHRequest, error)
	GetByID(ctx context.Context, requestID int) (WFHRequest, error)
	GetByStaffID(ctx context.Context, staffID int) ([]WFHRequest, error)
	GetPendingByManager(ctx context.Context, managerID int) ([]WFHRequest, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) error
	// HasConflictingDays reports whether the staff member already holds any of
	// the given dates on a request that has not been withdrawn.
	HasConflictingDays(ctx context.Context, staffID int, dates []time.Time) (bool, error)
	// GetApprovedDays returns the approved leave days intersecting
	// [startDate, endDate] for the given employees.
	GetApprovedDays(ctx context.Context, startDate, endDate time.Time, staffIDs []int) ([]ApprovedDay, error)
}
