package postgresql

import (
	"context"
	"fmt"

	"github.com/aio-wfh/wfh-backend-go/internal/domain/notification"
	"github.com/aio-wfh/wfh-backend-go/internal/domain/request"
	"github.com/aio-wfh/wfh-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.NotificationRepository {
	return &notificationRepositoryImpl{db: db}
}

// GetUnseenForManager implements notification.NotificationRepository. Pending
// requests raised by the manager's reports that the manager has not looked at
// yet, with the date span aggregated from the day rows.
func (r *notificationRepositoryImpl) GetUnseenForManager(ctx context.Context, managerID int) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.request_id, r.status, MIN(d.date), MAX(d.date)
		FROM wfh_requests r
		INNER JOIN employees e ON r.staff_id = e.staff_id
		INNER JOIN wfh_days d ON r.request_id = d.request_id
		WHERE e.reporting_manager = $1
		  AND r.status = $2
		  AND r.manager_seen = FALSE
		GROUP BY r.request_id, r.status
		ORDER BY r.request_id
	`

	rows, err := q.Query(ctx, query, managerID, request.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to get unseen notifications for manager %d: %w", managerID, err)
	}
	defer rows.Close()

	return scanNotifications(rows)
}

// GetUnseenForOwner implements notification.NotificationRepository. Requests
// the owner raised whose status changed without the owner having seen it.
func (r *notificationRepositoryImpl) GetUnseenForOwner(ctx context.Context, staffID int) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.request_id, r.status, MIN(d.date), MAX(d.date)
		FROM wfh_requests r
		INNER JOIN wfh_days d ON r.request_id = d.request_id
		WHERE r.staff_id = $1
		  AND r.user_seen = FALSE
		GROUP BY r.request_id, r.status
		ORDER BY r.request_id
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to get unseen notifications for staff id %d: %w", staffID, err)
	}
	defer rows.Close()

	return scanNotifications(rows)
}

// MarkUserSeen implements notification.NotificationRepository. Only rows the
// staff member owns are touched.
func (r *notificationRepositoryImpl) MarkUserSeen(ctx context.Context, staffID int, requestIDs []int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE wfh_requests
		SET user_seen = TRUE
		WHERE staff_id = $1 AND request_id = ANY($2::int[])
	`, staffID, requestIDs)
	if err != nil {
		return fmt.Errorf("failed to mark requests seen by owner %d: %w", staffID, err)
	}
	if tag.RowsAffected() == 0 {
		return request.ErrRequestNotFound
	}

	return nil
}

// MarkManagerSeen implements notification.NotificationRepository. Only rows
// raised by the manager's reports are touched.
func (r *notificationRepositoryImpl) MarkManagerSeen(ctx context.Context, managerID int, requestIDs []int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE wfh_requests
		SET manager_seen = TRUE
		WHERE request_id = ANY($2::int[])
		  AND staff_id IN (SELECT staff_id FROM employees WHERE reporting_manager = $1)
	`, managerID, requestIDs)
	if err != nil {
		return fmt.Errorf("failed to mark requests seen by manager %d: %w", managerID, err)
	}
	if tag.RowsAffected() == 0 {
		return request.ErrRequestNotFound
	}

	return nil
}

func scanNotifications(rows pgx.Rows) ([]notification.Notification, error) {
	var notifications []notification.Notification
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.RequestID, &n.Status, &n.EarliestDate, &n.LatestDate); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
