package notification

import (
	"context"

	"github.com/aio-wfh/wfh-backend-go/internal/domain/auth"
)

type Service interface {
	// List returns the unseen notifications for the requester, split into
	// the manager feed (pending requests from reports) and the user feed
	// (own requests whose status changed).
	List(ctx context.Context, staffID int, role auth.Role) (ListResponse, error)

	// MarkSeen flips the seen flag the requester is entitled to flip.
	MarkSeen(ctx context.Context, staffID int, role auth.Role, req MarkSeenRequest) error
}
