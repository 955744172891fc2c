package request

import (
	"context"

	"github.com/aio-wfh/wfh-backend-go/internal/domain/auth"
)

type WFHService interface {
	// Apply validates and files a new WFH request on behalf of StaffID,
	// storing any attached documents and notifying the reporting manager.
	Apply(ctx context.Context, req CreateWFHRequest) (WFHRequest, error)

	// Approve moves a pending request to Approved. The approver must be
	// the reporting manager of the request owner; HR may approve any
	// request.
	Approve(ctx context.Context, approver auth.Identity, requestID int) error

	// Reject moves a pending request to Rejected with a mandatory reason.
	Reject(ctx context.Context, approver auth.Identity, req RejectWFHRequest) error

	// Withdraw lets the owner pull back a request that is still pending.
	Withdraw(ctx context.Context, staffID, requestID int) error

	GetMyRequests(ctx context.Context, staffID int) ([]WFHRequest, error)
	GetPendingForManager(ctx context.Context, managerID int) ([]WFHRequest, error)
}
