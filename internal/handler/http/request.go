package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aio-wfh/wfh-backend-go/internal/domain/request"
	"github.com/aio-wfh/wfh-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RequestHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
}

type requestHandlerImpl struct {
	wfhService request.WFHService
}

func NewRequestHandler(wfhService request.WFHService) RequestHandler {
	return &requestHandlerImpl{wfhService: wfhService}
}

// Apply implements RequestHandler.
func (h *requestHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var applyReq request.CreateWFHRequest
	if err := json.NewDecoder(r.Body).Decode(&applyReq); err != nil {
		slog.Error("Apply decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	applyReq.StaffID = identity.StaffID

	created, err := h.wfhService.Apply(r.Context(), applyReq)
	if err != nil {
		slog.Error("Apply service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "WFH request submitted", created)
}

// Approve implements RequestHandler.
func (h *requestHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID, err := requestIDParam(r)
	if err != nil {
		response.BadRequest(w, "requestID must be a positive integer", nil)
		return
	}

	if err := h.wfhService.Approve(r.Context(), identity, requestID); err != nil {
		slog.Error("Approve service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "WFH request approved", nil)
}

// Reject implements RequestHandler.
func (h *requestHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID, err := requestIDParam(r)
	if err != nil {
		response.BadRequest(w, "requestID must be a positive integer", nil)
		return
	}

	var rejectReq request.RejectWFHRequest
	if err := json.NewDecoder(r.Body).Decode(&rejectReq); err != nil {
		slog.Error("Reject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	rejectReq.RequestID = requestID

	if err := h.wfhService.Reject(r.Context(), identity, rejectReq); err != nil {
		slog.Error("Reject service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "WFH request rejected", nil)
}

// Withdraw implements RequestHandler.
func (h *requestHandlerImpl) Withdraw(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID, err := requestIDParam(r)
	if err != nil {
		response.BadRequest(w, "requestID must be a positive integer", nil)
		return
	}

	if err := h.wfhService.Withdraw(r.Context(), identity.StaffID, requestID); err != nil {
		slog.Error("Withdraw service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "WFH request withdrawn", nil)
}

// ListMine implements RequestHandler.
func (h *requestHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.wfhService.GetMyRequests(r.Context(), identity.StaffID)
	if err != nil {
		slog.Error("ListMine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListPending implements RequestHandler.
func (h *requestHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.wfhService.GetPendingForManager(r.Context(), identity.StaffID)
	if err != nil {
		slog.Error("ListPending service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

func requestIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "requestID"))
	if err != nil || id <= 0 {
		return 0, strconv.ErrSyntax
	}
	return id, nil
}
