package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/aio-wfh/wfh-backend-go/internal/domain/auth"
	"github.com/aio-wfh/wfh-backend-go/internal/domain/employee"
	"github.com/aio-wfh/wfh-backend-go/internal/domain/request"
	"github.com/aio-wfh/wfh-backend-go/internal/domain/schedule"
)

type scheduleServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	requestRepo  request.WFHRequestRepository
}

func NewScheduleService(employeeRepo employee.EmployeeRepository, requestRepo request.WFHRequestRepository) schedule.ScheduleService {
	return &scheduleServiceImpl{
		employeeRepo: employeeRepo,
		requestRepo:  requestRepo,
	}
}

// GetSchedule implements schedule.ScheduleService. The roster is resolved
// from the requester's role, every day in the window starts as in-office, and
// approved WFH days overwrite the default. Calling it twice with the same
// input yields the same output, byte for byte.
func (s *scheduleServiceImpl) GetSchedule(ctx context.Context, req schedule.GetScheduleRequest) ([]schedule.DaySchedule, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	roster, err := s.resolveRoster(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve schedule: %w", err)
	}

	dates := expandDates(req.StartDate, req.EndDate)

	var approved []request.ApprovedDay
	if len(roster) > 0 {
		staffIDs := make([]int, len(roster))
		for i, member := range roster {
			staffIDs[i] = member.StaffID
		}

		approved, err = s.requestRepo.GetApprovedDays(ctx, dates[0], dates[len(dates)-1], staffIDs)
		if err != nil {
			return nil, fmt.Errorf("unable to retrieve schedule: unable to fetch WFH requests from the database: %w", err)
		}
	}

	return buildSchedule(dates, roster, approved), nil
}

// resolveRoster picks the set of employees the requester may see. HR sees the
// whole directory, staff see their own reporting line, managers see their own
// line plus the line they belong to under their manager.
func (s *scheduleServiceImpl) resolveRoster(ctx context.Context, req schedule.GetScheduleRequest) ([]employee.Employee, error) {
	switch req.Role {
	case auth.RoleHR:
		roster, err := s.employeeRepo.GetAll(ctx, employee.DirectoryFilter{
			Departments: req.Departments,
			Positions:   req.Positions,
		})
		if err != nil {
			return nil, fmt.Errorf("unable to fetch employees from the database: %w", err)
		}
		return roster, nil

	case auth.RoleStaff:
		mp, err := s.employeeRepo.GetManagerAndPosition(ctx, req.StaffID)
		if err != nil {
			return nil, fmt.Errorf("unable to resolve requester: %w", err)
		}
		if mp.ReportingManager == nil {
			self, err := s.employeeRepo.GetByID(ctx, req.StaffID)
			if err != nil {
				return nil, fmt.Errorf("unable to resolve requester: %w", err)
			}
			return []employee.Employee{self}, nil
		}
		roster, err := s.employeeRepo.GetReportingLine(ctx, *mp.ReportingManager)
		if err != nil {
			return nil, fmt.Errorf("unable to fetch employees from the database: %w", err)
		}
		return roster, nil

	case auth.RoleManager:
		own, err := s.employeeRepo.GetReportingLine(ctx, req.StaffID)
		if err != nil {
			return nil, fmt.Errorf("unable to fetch employees from the database: %w", err)
		}

		mp, err := s.employeeRepo.GetManagerAndPosition(ctx, req.StaffID)
		if err != nil {
			return nil, fmt.Errorf("unable to resolve requester: %w", err)
		}
		if mp.ReportingManager == nil {
			return dedupRoster(own), nil
		}

		upper, err := s.employeeRepo.GetReportingLine(ctx, *mp.ReportingManager)
		if err != nil {
			return nil, fmt.Errorf("unable to fetch employees from the database: %w", err)
		}
		return dedupRoster(append(own, upper...)), nil

	default:
		return nil, auth.ErrInvalidRole
	}
}

// dedupRoster drops repeated staff IDs, keeping the first occurrence so the
// result stays in a stable order.
func dedupRoster(roster []employee.Employee) []employee.Employee {
	seen := make(map[int]struct{}, len(roster))
	deduped := make([]employee.Employee, 0, len(roster))
	for _, member := range roster {
		if _, ok := seen[member.StaffID]; ok {
			continue
		}
		seen[member.StaffID] = struct{}{}
		deduped = append(deduped, member)
	}
	return deduped
}

// expandDates returns every calendar day from start to end inclusive,
// normalized to midnight UTC.
func expandDates(start, end time.Time) []time.Time {
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// rosterGroup is the department/team skeleton derived once from the roster
// and stamped onto every day.
type rosterGroup struct {
	department string
	teams      []rosterTeam
}

type rosterTeam struct {
	team    string
	members []employee.Employee
}

// buildSchedule stamps the roster skeleton onto every date with the
// in-office default, then overlays the approved WFH days. Approved days for
// staff outside the roster are ignored; if the same staff/date pair appears
// more than once the last row wins.
func buildSchedule(dates []time.Time, roster []employee.Employee, approved []request.ApprovedDay) []schedule.DaySchedule {
	groups := groupRoster(roster)

	result := make([]schedule.DaySchedule, 0, len(dates))
	byDay := make(map[string]map[int]*schedule.MemberStatus, len(dates))

	for _, date := range dates {
		key := date.Format("2006-01-02")
		index := make(map[int]*schedule.MemberStatus, len(roster))

		day := schedule.DaySchedule{
			Date:        key,
			Departments: make([]schedule.DepartmentSchedule, 0, len(groups)),
		}
		for _, group := range groups {
			dept := schedule.DepartmentSchedule{
				Department: group.department,
				Teams:      make([]schedule.TeamSchedule, 0, len(group.teams)),
			}
			for _, team := range group.teams {
				ts := schedule.TeamSchedule{
					Team:    team.team,
					Members: make([]schedule.MemberStatus, len(team.members)),
				}
				for i, member := range team.members {
					ts.Members[i] = schedule.MemberStatus{
						StaffID:   member.StaffID,
						FirstName: member.FirstName,
						LastName:  member.LastName,
						Status:    schedule.StatusInOffice,
					}
				}
				dept.Teams = append(dept.Teams, ts)
			}
			day.Departments = append(day.Departments, dept)
		}

		result = append(result, day)

		// Index after the day is fully built so no append can move the
		// members out from under the pointers.
		for d := range result[len(result)-1].Departments {
			for t := range result[len(result)-1].Departments[d].Teams {
				members := result[len(result)-1].Departments[d].Teams[t].Members
				for m := range members {
					index[members[m].StaffID] = &members[m]
				}
			}
		}
		byDay[key] = index
	}

	for _, day := range approved {
		index, ok := byDay[day.Date.Format("2006-01-02")]
		if !ok {
			continue
		}
		member, ok := index[day.StaffID]
		if !ok {
			continue
		}
		member.Status = string(day.Type)
	}

	return result
}

// groupRoster splits the roster into departments and teams in first-seen
// order, so the output ordering follows the roster ordering.
func groupRoster(roster []employee.Employee) []rosterGroup {
	var groups []rosterGroup
	deptIndex := make(map[string]int)
	teamIndex := make(map[string]map[string]int)

	for _, member := range roster {
		di, ok := deptIndex[member.Department]
		if !ok {
			di = len(groups)
			deptIndex[member.Department] = di
			teamIndex[member.Department] = make(map[string]int)
			groups = append(groups, rosterGroup{department: member.Department})
		}

		ti, ok := teamIndex[member.Department][member.Position]
		if !ok {
			ti = len(groups[di].teams)
			teamIndex[member.Department][member.Position] = ti
			groups[di].teams = append(groups[di].teams, rosterTeam{team: member.Position})
		}

		groups[di].teams[ti].members = append(groups[di].teams[ti].members, member)
	}

	return groups
}
