package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aio-wfh/wfh-backend-go/internal/domain/notification"
	"github.com/aio-wfh/wfh-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkSeen(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notificationService notification.Service
}

func NewNotificationHandler(notificationService notification.Service) NotificationHandler {
	return &notificationHandlerImpl{notificationService: notificationService}
}

// List implements NotificationHandler.
func (h *notificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.notificationService.List(r.Context(), identity.StaffID, identity.Role)
	if err != nil {
		slog.Error("List notifications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MarkSeen implements NotificationHandler.
func (h *notificationHandlerImpl) MarkSeen(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var markReq notification.MarkSeenRequest
	if err := json.NewDecoder(r.Body).Decode(&markReq); err != nil {
		slog.Error("MarkSeen decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.notificationService.MarkSeen(r.Context(), identity.StaffID, identity.Role, markReq); err != nil {
		slog.Error("MarkSeen service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notifications marked as seen", nil)
}
