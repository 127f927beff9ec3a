package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/leave"
	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/staff"
	"github.com/cmlabs-hris/staff-leave-backend/internal/handler/http/response"
)

type LeaveHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListStaffOnLeave(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetQuota(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// List implements LeaveHandler.
func (l *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	leaves, err := l.leaveService.List(r.Context())
	if err != nil {
		slog.Error("List leaves service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, leaves)
}

// ListStaffOnLeave implements LeaveHandler.
func (l *LeaveHandlerImpl) ListStaffOnLeave(w http.ResponseWriter, r *http.Request) {
	groups, err := l.leaveService.ListStaffOnLeave(r.Context())
	if err != nil {
		slog.Error("ListStaffOnLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, groups)
}

// Get implements LeaveHandler.
func (l *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, leave.ErrLeaveNotFound)
	if !ok {
		return
	}

	found, err := l.leaveService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Get leave service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// Create implements LeaveHandler.
func (l *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq leave.CreateLeaveRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Create leave validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	created, err := l.leaveService.Create(r.Context(), createReq)
	if err != nil {
		slog.Warn("Create leave rejected", "staff_id", createReq.StaffID, "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave created successfully", created)
}

// Update implements LeaveHandler.
func (l *LeaveHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, leave.ErrLeaveNotFound)
	if !ok {
		return
	}

	var updateReq leave.UpdateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		slog.Error("Update leave validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := l.leaveService.Update(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Update leave service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave updated successfully", updated)
}

// Delete implements LeaveHandler.
func (l *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, leave.ErrLeaveNotFound)
	if !ok {
		return
	}

	if err := l.leaveService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete leave service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave deleted successfully", nil)
}

// GetQuota implements LeaveHandler.
func (l *LeaveHandlerImpl) GetQuota(w http.ResponseWriter, r *http.Request) {
	staffID, ok := uuidParamNamed(w, r, "staffID", staff.ErrStaffNotFound)
	if !ok {
		return
	}

	var year int
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 9999 {
			response.ValidationError(w, map[string]string{"year": "year must be a valid year"})
			return
		}
		year = parsed
	}

	summary, err := l.leaveService.QuotaSummary(r.Context(), staffID, year)
	if err != nil {
		slog.Error("GetQuota service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}
