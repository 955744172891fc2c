package schedule

import "context"

type ScheduleService interface {
	// GetSchedule returns the per-day WFH schedule for everyone the
	// requester is allowed to see, grouped by department and team.
	GetSchedule(ctx context.Context, req GetScheduleRequest) ([]DaySchedule, error)
}
