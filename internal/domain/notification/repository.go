package notification

import "context"

type NotificationRepository interface {
	// GetUnseenForManager returns requests of the manager's direct reports
	// that the manager has not yet seen.
	GetUnseenForManager(ctx context.Context, managerID int) ([]Notification, error)
	// GetUnseenForOwner returns the staff member's own requests with updates
	// they have not yet seen.
	GetUnseenForOwner(ctx context.Context, staffID int) ([]Notification, error)
	MarkUserSeen(ctx context.Context, staffID int, requestIDs []int) error
	MarkManagerSeen(ctx context.Context, managerID int, requestIDs []int) error
}
