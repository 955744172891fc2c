package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aio-wfh/wfh-backend-go/internal/domain/request"
	"github.com/aio-wfh/wfh-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type wfhRequestRepositoryImpl struct {
	db *database.DB
}

func NewWFHRequestRepository(db *database.DB) request.WFHRequestRepository {
	return &wfhRequestRepositoryImpl{db: db}
}

const requestColumns = `request_id, staff_id, status, request_reason, manager_reason, documents, user_seen, manager_seen, created_at, last_updated`

// Create implements request.WFHRequestRepository. The request row and its day
// rows are inserted with the querier from ctx, so callers wrap this in
// WithTransaction to keep them atomic.
func (r *wfhRequestRepositoryImpl) Create(ctx context.Context, req request.WFHRequest) (request.WFHRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO wfh_requests (staff_id, status, request_reason, manager_reason, documents, user_seen, manager_seen, created_at, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + requestColumns + `
	`

	var created request.WFHRequest
	err := q.QueryRow(ctx, query,
		req.StaffID, req.Status, req.RequestReason, req.ManagerReason,
		req.Documents, req.UserSeen, req.ManagerSeen,
	).Scan(
		&created.RequestID, &created.StaffID, &created.Status, &created.RequestReason,
		&created.ManagerReason, &created.Documents, &created.UserSeen, &created.ManagerSeen,
		&created.CreatedAt, &created.LastUpdated,
	)
	if err != nil {
		return request.WFHRequest{}, fmt.Errorf("failed to insert WFH request: %w", err)
	}

	for _, day := range req.Days {
		_, err := q.Exec(ctx, `
			INSERT INTO wfh_days (request_id, date, wfh_type)
			VALUES ($1, $2, $3)
		`, created.RequestID, day.Date, day.Type)
		if err != nil {
			return request.WFHRequest{}, fmt.Errorf("failed to insert WFH day %s: %w", day.Date.Format("2006-01-02"), err)
		}
		created.Days = append(created.Days, request.WFHDay{
			RequestID: created.RequestID,
			Date:      day.Date,
			Type:      day.Type,
		})
	}

	return created, nil
}

// GetByID implements request.WFHRequestRepository.
func (r *wfhRequestRepositoryImpl) GetByID(ctx context.Context, requestID int) (request.WFHRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + requestColumns + `
		FROM wfh_requests
		WHERE request_id = $1
	`

	var req request.WFHRequest
	err := q.QueryRow(ctx, query, requestID).Scan(
		&req.RequestID, &req.StaffID, &req.Status, &req.RequestReason,
		&req.ManagerReason, &req.Documents, &req.UserSeen, &req.ManagerSeen,
		&req.CreatedAt, &req.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.WFHRequest{}, request.ErrRequestNotFound
		}
		return request.WFHRequest{}, fmt.Errorf("failed to get WFH request %d: %w", requestID, err)
	}

	days, err := r.getDays(ctx, req.RequestID)
	if err != nil {
		return request.WFHRequest{}, err
	}
	req.Days = days

	return req, nil
}

// GetByStaffID implements request.WFHRequestRepository.
func (r *wfhRequestRepositoryImpl) GetByStaffID(ctx context.Context, staffID int) ([]request.WFHRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + requestColumns + `
		FROM wfh_requests
		WHERE staff_id = $1
		ORDER BY request_id
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanRequestsWithDays(ctx, rows)
}

// GetPendingByManager implements request.WFHRequestRepository.
func (r *wfhRequestRepositoryImpl) GetPendingByManager(ctx context.Context, managerID int) ([]request.WFHRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.request_id, r.staff_id, r.status, r.request_reason, r.manager_reason,
			r.documents, r.user_seen, r.manager_seen, r.created_at, r.last_updated
		FROM wfh_requests r
		INNER JOIN employees e ON r.staff_id = e.staff_id
		WHERE r.status = $1 AND e.reporting_manager = $2
		ORDER BY r.request_id
	`

	rows, err := q.Query(ctx, query, request.StatusPending, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanRequestsWithDays(ctx, rows)
}

// UpdateStatus implements request.WFHRequestRepository.
func (r *wfhRequestRepositoryImpl) UpdateStatus(ctx context.Context, req request.UpdateStatusRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE wfh_requests
		SET status = $1,
			manager_reason = COALESCE($2, manager_reason),
			user_seen = COALESCE($3, user_seen),
			manager_seen = COALESCE($4, manager_seen),
			last_updated = NOW()
		WHERE request_id = $5
	`

	tag, err := q.Exec(ctx, query, req.Status, req.ManagerReason, req.UserSeen, req.ManagerSeen, req.RequestID)
	if err != nil {
		return fmt.Errorf("failed to update WFH request %d: %w", req.RequestID, err)
	}
	if tag.RowsAffected() == 0 {
		return request.ErrRequestNotFound
	}

	return nil
}

// HasConflictingDays implements request.WFHRequestRepository.
func (r *wfhRequestRepositoryImpl) HasConflictingDays(ctx context.Context, staffID int, dates []time.Time) (bool, error) {
	if len(dates) == 0 {
		return false, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1
			FROM wfh_days d
			INNER JOIN wfh_requests r ON d.request_id = r.request_id
			WHERE r.staff_id = $1
			  AND d.date = ANY($2::date[])
			  AND r.status != $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, staffID, dates, request.StatusWithdrawn).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check conflicting days for staff id %d: %w", staffID, err)
	}

	return exists, nil
}

// GetApprovedDays implements request.WFHRequestRepository.
func (r *wfhRequestRepositoryImpl) GetApprovedDays(ctx context.Context, startDate, endDate time.Time, staffIDs []int) ([]request.ApprovedDay, error) {
	if len(staffIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.staff_id, d.date, d.wfh_type
		FROM wfh_requests r
		INNER JOIN wfh_days d ON r.request_id = d.request_id
		WHERE r.status = $1
		  AND d.date BETWEEN $2 AND $3
		  AND r.staff_id = ANY($4::int[])
		ORDER BY d.date, r.staff_id
	`

	rows, err := q.Query(ctx, query, request.StatusApproved, startDate, endDate, staffIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []request.ApprovedDay
	for rows.Next() {
		var day request.ApprovedDay
		if err := rows.Scan(&day.StaffID, &day.Date, &day.Type); err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return days, nil
}

func (r *wfhRequestRepositoryImpl) getDays(ctx context.Context, requestID int) ([]request.WFHDay, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT request_id, date, wfh_type
		FROM wfh_days
		WHERE request_id = $1
		ORDER BY date
	`, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []request.WFHDay
	for rows.Next() {
		var day request.WFHDay
		if err := rows.Scan(&day.RequestID, &day.Date, &day.Type); err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return days, nil
}

func (r *wfhRequestRepositoryImpl) scanRequestsWithDays(ctx context.Context, rows pgx.Rows) ([]request.WFHRequest, error) {
	var requests []request.WFHRequest
	for rows.Next() {
		var req request.WFHRequest
		err := rows.Scan(
			&req.RequestID, &req.StaffID, &req.Status, &req.RequestReason,
			&req.ManagerReason, &req.Documents, &req.UserSeen, &req.ManagerSeen,
			&req.CreatedAt, &req.LastUpdated,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for i := range requests {
		days, err := r.getDays(ctx, requests[i].RequestID)
		if err != nil {
			return nil, err
		}
		requests[i].Days = days
	}

	return requests, nil
}
