package request

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aio-wfh/wfh-backend-go/internal/domain/auth"
	"github.com/aio-wfh/wfh-backend-go/internal/domain/employee"
	"github.com/aio-wfh/wfh-backend-go/internal/domain/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asManager(staffID int) auth.Identity {
	return auth.Identity{StaffID: staffID, Role: auth.RoleManager}
}

type fakeTxManager struct{}

func (fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeEmployeeRepo struct {
	employees map[int]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, staffID int) (employee.Employee, error) {
	e, ok := f.employees[staffID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetManagerAndPosition(_ context.Context, staffID int) (employee.ManagerPosition, error) {
	e, ok := f.employees[staffID]
	if !ok {
		return employee.ManagerPosition{}, employee.ErrEmployeeNotFound
	}
	return employee.ManagerPosition{ReportingManager: e.ReportingManager, Position: e.Position}, nil
}

func (f *fakeEmployeeRepo) GetAll(_ context.Context, _ employee.DirectoryFilter) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) GetReportingLine(_ context.Context, _ int) ([]employee.Employee, error) {
	return nil, nil
}

type fakeRequestRepo struct {
	requests map[int]request.WFHRequest
	conflict bool

	created     *request.WFHRequest
	lastUpdate  *request.UpdateStatusRequest
	conflictErr error
}

func (f *fakeRequestRepo) Create(_ context.Context, req request.WFHRequest) (request.WFHRequest, error) {
	req.RequestID = 42
	f.created = &req
	return req, nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, requestID int) (request.WFHRequest, error) {
	req, ok := f.requests[requestID]
	if !ok {
		return request.WFHRequest{}, request.ErrRequestNotFound
	}
	return req, nil
}

func (f *fakeRequestRepo) GetByStaffID(_ context.Context, staffID int) ([]request.WFHRequest, error) {
	var out []request.WFHRequest
	for _, req := range f.requests {
		if req.StaffID == staffID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) GetPendingByManager(_ context.Context, _ int) ([]request.WFHRequest, error) {
	return nil, nil
}

func (f *fakeRequestRepo) UpdateStatus(_ context.Context, req request.UpdateStatusRequest) error {
	f.lastUpdate = &req
	return nil
}

func (f *fakeRequestRepo) HasConflictingDays(_ context.Context, _ int, _ []time.Time) (bool, error) {
	if f.conflictErr != nil {
		return false, f.conflictErr
	}
	return f.conflict, nil
}

func (f *fakeRequestRepo) GetApprovedDays(_ context.Context, _, _ time.Time, _ []int) ([]request.ApprovedDay, error) {
	return nil, nil
}

type fakeUploader struct {
	keys []string
}

func (f *fakeUploader) UploadDocuments(_ context.Context, documents []string) ([]string, error) {
	f.keys = make([]string, len(documents))
	for i := range documents {
		f.keys[i] = "reasons/doc"
	}
	return f.keys, nil
}

type fakeEmailService struct {
	sent []string
}

func (f *fakeEmailService) SendRequestUpdate(to, _, _, _ string, _ int, _ bool) error {
	f.sent = append(f.sent, to)
	return nil
}

func intPtr(v int) *int { return &v }

func testService(employees *fakeEmployeeRepo, requests *fakeRequestRepo, emails *fakeEmailService) request.WFHService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewWFHService(fakeTxManager{}, requests, employees, &fakeUploader{}, emails, logger)
}

func testEmployees() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees: map[int]employee.Employee{
			1: {StaffID: 1, FirstName: "Maya", LastName: "Lim", Email: "maya@example.com"},
			2: {StaffID: 2, FirstName: "Alice", LastName: "Tan", Email: "alice@example.com", ReportingManager: intPtr(1)},
		},
	}
}

func validApplication() request.CreateWFHRequest {
	return request.CreateWFHRequest{
		StaffID:   2,
		DateRange: request.DateRange{StartDate: "2025-06-02", EndDate: "2025-06-04"},
		WFHType:   "WD",
		Reason:    "focus time",
	}
}

func TestApply_CreatesPendingRequestWithDays(t *testing.T) {
	requests := &fakeRequestRepo{}
	emails := &fakeEmailService{}
	svc := testService(testEmployees(), requests, emails)

	created, err := svc.Apply(context.Background(), validApplication())
	require.NoError(t, err)

	assert.Equal(t, 42, created.RequestID)
	assert.Equal(t, request.StatusPending, created.Status)
	assert.True(t, requests.created.UserSeen)
	assert.False(t, requests.created.ManagerSeen)
	require.Len(t, requests.created.Days, 3)
	assert.Equal(t, request.WFHTypeFullDay, requests.created.Days[0].Type)
	assert.Equal(t, "2025-06-02", requests.created.Days[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2025-06-04", requests.created.Days[2].Date.Format("2006-01-02"))
}

func TestApply_NotifiesReportingManager(t *testing.T) {
	emails := &fakeEmailService{}
	svc := testService(testEmployees(), &fakeRequestRepo{}, emails)

	_, err := svc.Apply(context.Background(), validApplication())
	require.NoError(t, err)

	require.Len(t, emails.sent, 1)
	assert.Equal(t, "maya@example.com", emails.sent[0])
}

func TestApply_RejectsConflictingDates(t *testing.T) {
	requests := &fakeRequestRepo{conflict: true}
	svc := testService(testEmployees(), requests, &fakeEmailService{})

	_, err := svc.Apply(context.Background(), validApplication())
	assert.ErrorIs(t, err, request.ErrConflictingDates)
	assert.Nil(t, requests.created)
}

func TestApply_RejectsInvalidInput(t *testing.T) {
	svc := testService(testEmployees(), &fakeRequestRepo{}, &fakeEmailService{})

	req := validApplication()
	req.WFHType = "FULLWEEK"
	_, err := svc.Apply(context.Background(), req)
	require.Error(t, err)

	req = validApplication()
	req.DateRange.EndDate = "2025-06-01"
	_, err = svc.Apply(context.Background(), req)
	require.Error(t, err)
}

func TestApply_UnknownRequesterFails(t *testing.T) {
	svc := testService(testEmployees(), &fakeRequestRepo{}, &fakeEmailService{})

	req := validApplication()
	req.StaffID = 999
	_, err := svc.Apply(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestApprove_UpdatesStatusAndNotifiesOwner(t *testing.T) {
	requests := &fakeRequestRepo{
		requests: map[int]request.WFHRequest{
			7: {RequestID: 7, StaffID: 2, Status: request.StatusPending},
		},
	}
	emails := &fakeEmailService{}
	svc := testService(testEmployees(), requests, emails)

	require.NoError(t, svc.Approve(context.Background(), asManager(1), 7))

	require.NotNil(t, requests.lastUpdate)
	assert.Equal(t, request.StatusApproved, requests.lastUpdate.Status)
	assert.False(t, *requests.lastUpdate.UserSeen)
	assert.True(t, *requests.lastUpdate.ManagerSeen)
	require.Len(t, emails.sent, 1)
	assert.Equal(t, "alice@example.com", emails.sent[0])
}

func TestApprove_OnlyReportingManagerMayApprove(t *testing.T) {
	requests := &fakeRequestRepo{
		requests: map[int]request.WFHRequest{
			7: {RequestID: 7, StaffID: 2, Status: request.StatusPending},
		},
	}
	svc := testService(testEmployees(), requests, &fakeEmailService{})

	err := svc.Approve(context.Background(), asManager(99), 7)
	assert.ErrorIs(t, err, request.ErrNotReportingManager)
}

func TestApprove_HRMayApproveAnyRequest(t *testing.T) {
	requests := &fakeRequestRepo{
		requests: map[int]request.WFHRequest{
			7: {RequestID: 7, StaffID: 2, Status: request.StatusPending},
		},
	}
	svc := testService(testEmployees(), requests, &fakeEmailService{})

	hr := auth.Identity{StaffID: 99, Role: auth.RoleHR}
	require.NoError(t, svc.Approve(context.Background(), hr, 7))
	assert.Equal(t, request.StatusApproved, requests.lastUpdate.Status)
}

func TestApprove_AlreadyProcessedRequestRejected(t *testing.T) {
	requests := &fakeRequestRepo{
		requests: map[int]request.WFHRequest{
			7: {RequestID: 7, StaffID: 2, Status: request.StatusApproved},
		},
	}
	svc := testService(testEmployees(), requests, &fakeEmailService{})

	err := svc.Approve(context.Background(), asManager(1), 7)
	assert.ErrorIs(t, err, request.ErrAlreadyProcessed)
}

func TestReject_RequiresManagerReason(t *testing.T) {
	svc := testService(testEmployees(), &fakeRequestRepo{}, &fakeEmailService{})

	err := svc.Reject(context.Background(), asManager(1), request.RejectWFHRequest{RequestID: 7})
	require.Error(t, err)
}

func TestReject_StoresReason(t *testing.T) {
	requests := &fakeRequestRepo{
		requests: map[int]request.WFHRequest{
			7: {RequestID: 7, StaffID: 2, Status: request.StatusPending},
		},
	}
	svc := testService(testEmployees(), requests, &fakeEmailService{})

	err := svc.Reject(context.Background(), asManager(1), request.RejectWFHRequest{RequestID: 7, ManagerReason: "team onsite"})
	require.NoError(t, err)

	require.NotNil(t, requests.lastUpdate)
	assert.Equal(t, request.StatusRejected, requests.lastUpdate.Status)
	require.NotNil(t, requests.lastUpdate.ManagerReason)
	assert.Equal(t, "team onsite", *requests.lastUpdate.ManagerReason)
}

func TestWithdraw_OwnerOnly(t *testing.T) {
	requests := &fakeRequestRepo{
		requests: map[int]request.WFHRequest{
			7: {RequestID: 7, StaffID: 2, Status: request.StatusPending},
		},
	}
	svc := testService(testEmployees(), requests, &fakeEmailService{})

	assert.ErrorIs(t, svc.Withdraw(context.Background(), 1, 7), request.ErrNotRequestOwner)

	require.NoError(t, svc.Withdraw(context.Background(), 2, 7))
	assert.Equal(t, request.StatusWithdrawn, requests.lastUpdate.Status)
}

func TestWithdraw_PendingOnly(t *testing.T) {
	requests := &fakeRequestRepo{
		requests: map[int]request.WFHRequest{
			7: {RequestID: 7, StaffID: 2, Status: request.StatusRejected},
		},
	}
	svc := testService(testEmployees(), requests, &fakeEmailService{})

	assert.ErrorIs(t, svc.Withdraw(context.Background(), 2, 7), request.ErrAlreadyProcessed)
}

func TestApply_ConflictCheckFailureSurfaced(t *testing.T) {
	requests := &fakeRequestRepo{conflictErr: errors.New("connection reset")}
	svc := testService(testEmployees(), requests, &fakeEmailService{})

	_, err := svc.Apply(context.Background(), validApplication())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflicting")
}
