package notification

import (
	"context"
	"fmt"

	"github.com/aio-wfh/wfh-backend-go/internal/domain/auth"
	"github.com/aio-wfh/wfh-backend-go/internal/domain/notification"
)

type notificationServiceImpl struct {
	notificationRepo notification.NotificationRepository
}

func NewNotificationService(notificationRepo notification.NotificationRepository) notification.Service {
	return &notificationServiceImpl{notificationRepo: notificationRepo}
}

// List implements notification.Service. Everyone gets their own feed; HR and
// managers additionally get the pending-approvals feed for their reports.
func (s *notificationServiceImpl) List(ctx context.Context, staffID int, role auth.Role) (notification.ListResponse, error) {
	user, err := s.notificationRepo.GetUnseenForOwner(ctx, staffID)
	if err != nil {
		return notification.ListResponse{}, fmt.Errorf("failed to list notifications: %w", err)
	}

	response := notification.ListResponse{User: user}

	if role == auth.RoleManager || role == auth.RoleHR {
		manager, err := s.notificationRepo.GetUnseenForManager(ctx, staffID)
		if err != nil {
			return notification.ListResponse{}, fmt.Errorf("failed to list notifications: %w", err)
		}
		response.Manager = manager
	}

	return response, nil
}

// MarkSeen implements notification.Service.
func (s *notificationServiceImpl) MarkSeen(ctx context.Context, staffID int, role auth.Role, req notification.MarkSeenRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if req.AsManager {
		if role != auth.RoleManager && role != auth.RoleHR {
			return auth.ErrInvalidRole
		}
		return s.notificationRepo.MarkManagerSeen(ctx, staffID, req.RequestIDs)
	}

	return s.notificationRepo.MarkUserSeen(ctx, staffID, req.RequestIDs)
}
