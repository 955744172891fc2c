package request

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aio-wfh/wfh-backend-go/internal/domain/auth"
	"github.com/aio-wfh/wfh-backend-go/internal/domain/employee"
	"github.com/aio-wfh/wfh-backend-go/internal/domain/request"
	"github.com/aio-wfh/wfh-backend-go/internal/pkg/email"
	"github.com/aio-wfh/wfh-backend-go/internal/repository/postgresql"
)

// DocumentUploader stores request attachments and returns their storage keys.
type DocumentUploader interface {
	UploadDocuments(ctx context.Context, documents []string) ([]string, error)
}

type wfhServiceImpl struct {
	tx           postgresql.TxManager
	requestRepo  request.WFHRequestRepository
	employeeRepo employee.EmployeeRepository
	uploader     DocumentUploader
	emailService email.EmailService
	logger       *slog.Logger
}

func NewWFHService(
	tx postgresql.TxManager,
	requestRepo request.WFHRequestRepository,
	employeeRepo employee.EmployeeRepository,
	uploader DocumentUploader,
	emailService email.EmailService,
	logger *slog.Logger,
) request.WFHService {
	return &wfhServiceImpl{
		tx:           tx,
		requestRepo:  requestRepo,
		employeeRepo: employeeRepo,
		uploader:     uploader,
		emailService: emailService,
		logger:       logger,
	}
}

// Apply implements request.WFHService.
func (s *wfhServiceImpl) Apply(ctx context.Context, req request.CreateWFHRequest) (request.WFHRequest, error) {
	if err := req.Validate(); err != nil {
		return request.WFHRequest{}, err
	}

	requester, err := s.employeeRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return request.WFHRequest{}, fmt.Errorf("unable to resolve requester: %w", err)
	}

	start, _ := time.Parse("2006-01-02", req.DateRange.StartDate)
	end, _ := time.Parse("2006-01-02", req.DateRange.EndDate)
	dates := datesBetween(start, end)

	conflict, err := s.requestRepo.HasConflictingDays(ctx, req.StaffID, dates)
	if err != nil {
		return request.WFHRequest{}, fmt.Errorf("failed to check for conflicting requests: %w", err)
	}
	if conflict {
		return request.WFHRequest{}, request.ErrConflictingDates
	}

	documents, err := s.uploader.UploadDocuments(ctx, req.Documents)
	if err != nil {
		return request.WFHRequest{}, fmt.Errorf("failed to store request documents: %w", err)
	}

	days := make([]request.WFHDay, len(dates))
	for i, date := range dates {
		days[i] = request.WFHDay{Date: date, Type: request.WFHType(req.WFHType)}
	}

	var created request.WFHRequest
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		created, err = s.requestRepo.Create(txCtx, request.WFHRequest{
			StaffID:       req.StaffID,
			Status:        request.StatusPending,
			RequestReason: req.Reason,
			Documents:     documents,
			UserSeen:      true,
			ManagerSeen:   false,
			Days:          days,
		})
		return err
	})
	if err != nil {
		return request.WFHRequest{}, fmt.Errorf("failed to create WFH request: %w", err)
	}

	if requester.ReportingManager != nil {
		s.notify(ctx, *requester.ReportingManager, created, true)
	}

	return created, nil
}

// Approve implements request.WFHService.
func (s *wfhServiceImpl) Approve(ctx context.Context, approver auth.Identity, requestID int) error {
	req, err := s.transitionable(ctx, approver, requestID)
	if err != nil {
		return err
	}

	userSeen := false
	managerSeen := true
	err = s.requestRepo.UpdateStatus(ctx, request.UpdateStatusRequest{
		RequestID:   requestID,
		Status:      request.StatusApproved,
		UserSeen:    &userSeen,
		ManagerSeen: &managerSeen,
	})
	if err != nil {
		return fmt.Errorf("failed to approve WFH request %d: %w", requestID, err)
	}

	req.Status = request.StatusApproved
	s.notify(ctx, req.StaffID, req, false)
	return nil
}

// Reject implements request.WFHService.
func (s *wfhServiceImpl) Reject(ctx context.Context, approver auth.Identity, rejection request.RejectWFHRequest) error {
	if err := rejection.Validate(); err != nil {
		return err
	}

	req, err := s.transitionable(ctx, approver, rejection.RequestID)
	if err != nil {
		return err
	}

	userSeen := false
	managerSeen := true
	err = s.requestRepo.UpdateStatus(ctx, request.UpdateStatusRequest{
		RequestID:     rejection.RequestID,
		Status:        request.StatusRejected,
		ManagerReason: &rejection.ManagerReason,
		UserSeen:      &userSeen,
		ManagerSeen:   &managerSeen,
	})
	if err != nil {
		return fmt.Errorf("failed to reject WFH request %d: %w", rejection.RequestID, err)
	}

	req.Status = request.StatusRejected
	s.notify(ctx, req.StaffID, req, false)
	return nil
}

// Withdraw implements request.WFHService.
func (s *wfhServiceImpl) Withdraw(ctx context.Context, staffID, requestID int) error {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.StaffID != staffID {
		return request.ErrNotRequestOwner
	}
	if req.Status != request.StatusPending {
		return request.ErrAlreadyProcessed
	}

	// The owner pulled it back, so neither side has anything left to see.
	seen := true
	err = s.requestRepo.UpdateStatus(ctx, request.UpdateStatusRequest{
		RequestID:   requestID,
		Status:      request.StatusWithdrawn,
		UserSeen:    &seen,
		ManagerSeen: &seen,
	})
	if err != nil {
		return fmt.Errorf("failed to withdraw WFH request %d: %w", requestID, err)
	}

	return nil
}

// GetMyRequests implements request.WFHService.
func (s *wfhServiceImpl) GetMyRequests(ctx context.Context, staffID int) ([]request.WFHRequest, error) {
	requests, err := s.requestRepo.GetByStaffID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch WFH requests from the database: %w", err)
	}
	return requests, nil
}

// GetPendingForManager implements request.WFHService.
func (s *wfhServiceImpl) GetPendingForManager(ctx context.Context, managerID int) ([]request.WFHRequest, error) {
	requests, err := s.requestRepo.GetPendingByManager(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch WFH requests from the database: %w", err)
	}
	return requests, nil
}

// transitionable loads a request and checks the approver may move it out of
// Pending. HR is not bound to a reporting line.
func (s *wfhServiceImpl) transitionable(ctx context.Context, approver auth.Identity, requestID int) (request.WFHRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return request.WFHRequest{}, err
	}
	if req.Status != request.StatusPending {
		return request.WFHRequest{}, request.ErrAlreadyProcessed
	}

	if approver.Role == auth.RoleHR {
		return req, nil
	}

	owner, err := s.employeeRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return request.WFHRequest{}, fmt.Errorf("unable to resolve request owner: %w", err)
	}
	if owner.ReportingManager == nil || *owner.ReportingManager != approver.StaffID {
		return request.WFHRequest{}, request.ErrNotReportingManager
	}

	return req, nil
}

// notify emails the given employee about the request. Delivery is best
// effort: a failure is logged and the workflow proceeds.
func (s *wfhServiceImpl) notify(ctx context.Context, staffID int, req request.WFHRequest, requiresAction bool) {
	recipient, err := s.employeeRepo.GetByID(ctx, staffID)
	if err != nil {
		s.logger.Warn("skipping request notification, recipient lookup failed",
			slog.Int("staff_id", staffID), slog.Any("error", err))
		return
	}

	err = s.emailService.SendRequestUpdate(
		recipient.Email, recipient.FirstName, recipient.LastName,
		string(req.Status), req.RequestID, requiresAction,
	)
	if err != nil {
		s.logger.Warn("failed to send request notification email",
			slog.Int("request_id", req.RequestID), slog.Any("error", err))
	}
}

func datesBetween(start, end time.Time) []time.Time {
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
