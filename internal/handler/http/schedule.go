package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aio-wfh/wfh-backend-go/internal/domain/schedule"
	"github.com/aio-wfh/wfh-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	GetSchedule(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// GetSchedule implements ScheduleHandler. Date parseability and ordering are
// checked here so the service layer only ever sees a well-formed window.
func (h *scheduleHandlerImpl) GetSchedule(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	query := r.URL.Query()

	startDate, err := time.Parse("2006-01-02", query.Get("start_date"))
	if err != nil {
		response.BadRequest(w, "start_date must be YYYY-MM-DD", nil)
		return
	}
	endDate, err := time.Parse("2006-01-02", query.Get("end_date"))
	if err != nil {
		response.BadRequest(w, "end_date must be YYYY-MM-DD", nil)
		return
	}
	if endDate.Before(startDate) {
		response.BadRequest(w, "end_date must not be before start_date", nil)
		return
	}

	result, err := h.scheduleService.GetSchedule(r.Context(), schedule.GetScheduleRequest{
		StaffID:     identity.StaffID,
		Role:        identity.Role,
		StartDate:   startDate,
		EndDate:     endDate,
		Departments: query["department"],
		Positions:   query["position"],
	})
	if err != nil {
		slog.Error("GetSchedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
