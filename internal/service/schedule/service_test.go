package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aio-wfh/wfh-backend-go/internal/domain/auth"
	"github.com/aio-wfh/wfh-backend-go/internal/domain/employee"
	"github.com/aio-wfh/wfh-backend-go/internal/domain/request"
	"github.com/aio-wfh/wfh-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[int]employee.Employee
	all       []employee.Employee
	lines     map[int][]employee.Employee

	allErr  error
	lineErr error
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

func (f *fakeEmployeeRepo) GetAll(_ context.Context, filter employee.DirectoryFilter) ([]employee.Employee, error) {
	if f.allErr != nil {
		return nil, f.allErr
	}
	var out []employee.Employee
	for _, e := range f.all {
		if len(filter.Departments) > 0 && !contains(filter.Departments, e.Department) {
			continue
		}
		if len(filter.Positions) > 0 && !contains(filter.Positions, e.Position) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) GetReportingLine(_ context.Context, managerID int) ([]employee.Employee, error) {
	if f.lineErr != nil {
		return nil, f.lineErr
	}
	return f.lines[managerID], nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

type fakeRequestRepo struct {
	request.WFHRequestRepository

	approved    []request.ApprovedDay
	approvedErr error

	lastStaffIDs []int
	calls        int
}

func (f *fakeRequestRepo) GetApprovedDays(_ context.Context, _, _ time.Time, staffIDs []int) ([]request.ApprovedDay, error) {
	f.calls++
	f.lastStaffIDs = staffIDs
	if f.approvedErr != nil {
		return nil, f.approvedErr
	}
	return f.approved, nil
}

func intPtr(v int) *int { return &v }

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

// Small org: manager 1 (Engineering) reports to nobody, staff 2 and 3 report
// to 1, staff 4 is in HR with no manager.
func testOrg() *fakeEmployeeRepo {
	mgr := employee.Employee{StaffID: 1, FirstName: "Maya", LastName: "Lim", Department: "Engineering", Position: "Manager"}
	alice := employee.Employee{StaffID: 2, FirstName: "Alice", LastName: "Tan", Department: "Engineering", Position: "Developer", ReportingManager: intPtr(1)}
	bob := employee.Employee{StaffID: 3, FirstName: "Bob", LastName: "Ong", Department: "Engineering", Position: "Developer", ReportingManager: intPtr(1)}
	hr := employee.Employee{StaffID: 4, FirstName: "Dana", LastName: "Koh", Department: "HR", Position: "HR Executive"}

	return &fakeEmployeeRepo{
		employees: map[int]employee.Employee{1: mgr, 2: alice, 3: bob, 4: hr},
		all:       []employee.Employee{mgr, alice, bob, hr},
		lines: map[int][]employee.Employee{
			1: {mgr, alice, bob},
		},
	}
}

func TestGetSchedule_ExpandsDatesAcrossLeapDay(t *testing.T) {
	svc := NewScheduleService(testOrg(), &fakeRequestRepo{})

	result, err := svc.GetSchedule(context.Background(), schedule.GetScheduleRequest{
		StaffID:   4,
		Role:      auth.RoleHR,
		StartDate: day("2024-02-28"),
		EndDate:   day("2024-03-01"),
	})
	require.NoError(t, err)

	require.Len(t, result, 3)
	assert.Equal(t, "2024-02-28", result[0].Date)
	assert.Equal(t, "2024-02-29", result[1].Date)
	assert.Equal(t, "2024-03-01", result[2].Date)
}

func TestGetSchedule_DefaultsEveryoneToInOffice(t *testing.T) {
	svc := NewScheduleService(testOrg(), &fakeRequestRepo{})

	result, err := svc.GetSchedule(context.Background(), schedule.GetScheduleRequest{
		StaffID:   4,
		Role:      auth.RoleHR,
		StartDate: day("2025-06-02"),
		EndDate:   day("2025-06-02"),
	})
	require.NoError(t, err)
	require.Len(t, result, 1)

	count := 0
	for _, dept := range result[0].Departments {
		for _, team := range dept.Teams {
			for _, member := range team.Members {
				assert.Equal(t, schedule.StatusInOffice, member.Status)
				count++
			}
		}
	}
	assert.Equal(t, 4, count)
}

func TestGetSchedule_ApprovedDayOverridesDefault(t *testing.T) {
	requestRepo := &fakeRequestRepo{
		approved: []request.ApprovedDay{
			{StaffID: 2, Date: day("2025-06-02"), Type: request.WFHTypeMorning},
			{StaffID: 3, Date: day("2025-06-03"), Type: request.WFHTypeFullDay},
		},
	}
	svc := NewScheduleService(testOrg(), requestRepo)

	result, err := svc.GetSchedule(context.Background(), schedule.GetScheduleRequest{
		StaffID:   4,
		Role:      auth.RoleHR,
		StartDate: day("2025-06-02"),
		EndDate:   day("2025-06-03"),
	})
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "AM", statusOf(t, result[0], 2))
	assert.Equal(t, schedule.StatusInOffice, statusOf(t, result[0], 3))
	assert.Equal(t, schedule.StatusInOffice, statusOf(t, result[1], 2))
	assert.Equal(t, "WD", statusOf(t, result[1], 3))
}

func TestGetSchedule_SkipsApprovedDaysOutsideRoster(t *testing.T) {
	requestRepo := &fakeRequestRepo{
		approved: []request.ApprovedDay{
			{StaffID: 999, Date: day("2025-06-02"), Type: request.WFHTypeAfternoon},
		},
	}
	svc := NewScheduleService(testOrg(), requestRepo)

	result, err := svc.GetSchedule(context.Background(), schedule.GetScheduleRequest{
		StaffID:   4,
		Role:      auth.RoleHR,
		StartDate: day("2025-06-02"),
		EndDate:   day("2025-06-02"),
	})
	require.NoError(t, err)

	for _, dept := range result[0].Departments {
		for _, team := range dept.Teams {
			for _, member := range team.Members {
				assert.Equal(t, schedule.StatusInOffice, member.Status)
			}
		}
	}
}

func TestGetSchedule_HRSeesWholeDirectory(t *testing.T) {
	svc := NewScheduleService(testOrg(), &fakeRequestRepo{})

	result, err := svc.GetSchedule(context.Background(), schedule.GetScheduleRequest{
		StaffID:   4,
		Role:      auth.RoleHR,
		StartDate: day("2025-06-02"),
		EndDate:   day("2025-06-02"),
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{1, 2, 3, 4}, rosterIDs(result[0]))
}

func TestGetSchedule_HRHonorsDirectoryFilter(t *testing.T) {
	svc := NewScheduleService(testOrg(), &fakeRequestRepo{})

	result, err := svc.GetSchedule(context.Background(), schedule.GetScheduleRequest{
		StaffID:     4,
		Role:        auth.RoleHR,
		StartDate:   day("2025-06-02"),
		EndDate:     day("2025-06-02"),
		Departments: []string{"Engineering"},
		Positions:   []string{"Developer"},
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{2, 3}, rosterIDs(result[0]))
}

func TestGetSchedule_StaffSeesOwnReportingLine(t *testing.T) {
	svc := NewScheduleService(testOrg(), &fakeRequestRepo{})

	result, err := svc.GetSchedule(context.Background(), schedule.GetScheduleRequest{
		StaffID:   2,
		Role:      auth.RoleStaff,
		StartDate: day("2025-06-02"),
		EndDate:   day("2025-06-02"),
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{1, 2, 3}, rosterIDs(result[0]))
}

func TestGetSchedule_ManagerSeesReportsAndPeerCohort(t *testing.T) {
	repo := testOrg()
	// Give the manager a superior so both branches of the union apply:
	// manager 5 oversees manager 1 and peer manager 6.
	boss := employee.Employee{StaffID: 5, FirstName: "Vik", LastName: "Rao", Department: "Engineering", Position: "Director"}
	peer := employee.Employee{StaffID: 6, FirstName: "Nora", LastName: "Wee", Department: "Engineering", Position: "Manager", ReportingManager: intPtr(5)}
	mgr := repo.employees[1]
	mgr.ReportingManager = intPtr(5)
	repo.employees[1] = mgr
	repo.employees[5] = boss
	repo.employees[6] = peer
	repo.lines[1] = []employee.Employee{mgr, repo.employees[2], repo.employees[3]}
	repo.lines[5] = []employee.Employee{boss, mgr, peer}

	svc := NewScheduleService(repo, &fakeRequestRepo{})

	result, err := svc.GetSchedule(context.Background(), schedule.GetScheduleRequest{
		StaffID:   1,
		Role:      auth.RoleManager,
		StartDate: day("2025-06-02"),
		EndDate:   day("2025-06-02"),
	})
	require.NoError(t, err)

	// Manager 1 appears in both lines but must show up once.
	assert.ElementsMatch(t, []int{1, 2, 3, 5, 6}, rosterIDs(result[0]))
}

func TestGetSchedule_EmptyRosterSkipsRequestFetch(t *testing.T) {
	repo := testOrg()
	repo.all = nil
	requestRepo := &fakeRequestRepo{}
	svc := NewScheduleService(repo, requestRepo)

	result, err := svc.GetSchedule(context.Background(), schedule.GetScheduleRequest{
		StaffID:   4,
		Role:      auth.RoleHR,
		StartDate: day("2025-06-02"),
		EndDate:   day("2025-06-04"),
	})
	require.NoError(t, err)

	require.Len(t, result, 3)
	for _, d := range result {
		assert.Empty(t, d.Departments)
	}
	assert.Zero(t, requestRepo.calls)
}

func TestGetSchedule_Idempotent(t *testing.T) {
	requestRepo := &fakeRequestRepo{
		approved: []request.ApprovedDay{
			{StaffID: 2, Date: day("2025-06-02"), Type: request.WFHTypeAfternoon},
		},
	}
	svc := NewScheduleService(testOrg(), requestRepo)
	req := schedule.GetScheduleRequest{
		StaffID:   4,
		Role:      auth.RoleHR,
		StartDate: day("2025-06-02"),
		EndDate:   day("2025-06-04"),
	}

	first, err := svc.GetSchedule(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.GetSchedule(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetSchedule_UnknownRoleRejected(t *testing.T) {
	svc := NewScheduleService(testOrg(), &fakeRequestRepo{})

	_, err := svc.GetSchedule(context.Background(), schedule.GetScheduleRequest{
		StaffID:   4,
		Role:      auth.Role("9"),
		StartDate: day("2025-06-02"),
		EndDate:   day("2025-06-02"),
	})
	require.Error(t, err)
}

func TestGetSchedule_DirectoryFailureWrapped(t *testing.T) {
	repo := testOrg()
	repo.allErr = errors.New("connection reset")
	svc := NewScheduleService(repo, &fakeRequestRepo{})

	_, err := svc.GetSchedule(context.Background(), schedule.GetScheduleRequest{
		StaffID:   4,
		Role:      auth.RoleHR,
		StartDate: day("2025-06-02"),
		EndDate:   day("2025-06-02"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to fetch employees from the database")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestGetSchedule_RequestFetchFailureWrapped(t *testing.T) {
	requestRepo := &fakeRequestRepo{approvedErr: errors.New("connection reset")}
	svc := NewScheduleService(testOrg(), requestRepo)

	_, err := svc.GetSchedule(context.Background(), schedule.GetScheduleRequest{
		StaffID:   4,
		Role:      auth.RoleHR,
		StartDate: day("2025-06-02"),
		EndDate:   day("2025-06-02"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to fetch WFH requests from the database")
}

func TestGetSchedule_ScopesRequestFetchToRoster(t *testing.T) {
	requestRepo := &fakeRequestRepo{}
	svc := NewScheduleService(testOrg(), requestRepo)

	_, err := svc.GetSchedule(context.Background(), schedule.GetScheduleRequest{
		StaffID:   2,
		Role:      auth.RoleStaff,
		StartDate: day("2025-06-02"),
		EndDate:   day("2025-06-02"),
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{1, 2, 3}, requestRepo.lastStaffIDs)
}

func TestGetSchedule_GroupsByDepartmentThenPosition(t *testing.T) {
	svc := NewScheduleService(testOrg(), &fakeRequestRepo{})

	result, err := svc.GetSchedule(context.Background(), schedule.GetScheduleRequest{
		StaffID:   4,
		Role:      auth.RoleHR,
		StartDate: day("2025-06-02"),
		EndDate:   day("2025-06-02"),
	})
	require.NoError(t, err)

	require.Len(t, result[0].Departments, 2)
	eng := result[0].Departments[0]
	assert.Equal(t, "Engineering", eng.Department)
	require.Len(t, eng.Teams, 2)
	assert.Equal(t, "Manager", eng.Teams[0].Team)
	assert.Equal(t, "Developer", eng.Teams[1].Team)
	assert.Equal(t, "HR", result[0].Departments[1].Department)
}

func TestExpandDates_SingleDay(t *testing.T) {
	dates := expandDates(day("2025-06-02"), day("2025-06-02"))
	require.Len(t, dates, 1)
	assert.Equal(t, "2025-06-02", dates[0].Format("2006-01-02"))
}

func TestExpandDates_YearRollover(t *testing.T) {
	dates := expandDates(day("2024-12-30"), day("2025-01-02"))
	require.Len(t, dates, 4)
	assert.Equal(t, "2024-12-31", dates[1].Format("2006-01-02"))
	assert.Equal(t, "2025-01-01", dates[2].Format("2006-01-02"))
}

func statusOf(t *testing.T, d schedule.DaySchedule, staffID int) string {
	t.Helper()
	for _, dept := range d.Departments {
		for _, team := range dept.Teams {
			for _, member := range team.Members {
				if member.StaffID == staffID {
					return member.Status
				}
			}
		}
	}
	t.Fatalf("staff id %d not found on %s", staffID, d.Date)
	return ""
}

func rosterIDs(d schedule.DaySchedule) []int {
	var ids []int
	for _, dept := range d.Departments {
		for _, team := range dept.Teams {
			for _, member := range team.Members {
				ids = append(ids, member.StaffID)
			}
		}
	}
	return ids
}
