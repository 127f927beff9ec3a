package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/staff"
	"github.com/cmlabs-hris/staff-leave-backend/internal/handler/http/response"
)

type StaffHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type StaffHandlerImpl struct {
	staffService staff.StaffService
}

func NewStaffHandler(staffService staff.StaffService) StaffHandler {
	return &StaffHandlerImpl{staffService: staffService}
}

// List implements StaffHandler.
func (s *StaffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	members, err := s.staffService.List(r.Context())
	if err != nil {
		slog.Error("List staff service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, members)
}

// Get implements StaffHandler.
func (s *StaffHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, staff.ErrStaffNotFound)
	if !ok {
		return
	}

	member, err := s.staffService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Get staff service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, member)
}

// Create implements StaffHandler.
func (s *StaffHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq staff.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create staff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Create staff validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := s.staffService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create staff service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Staff created successfully", created)
}

// Update implements StaffHandler.
func (s *StaffHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, staff.ErrStaffNotFound)
	if !ok {
		return
	}

	var updateReq staff.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update staff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		slog.Error("Update staff validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := s.staffService.Update(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Update staff service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Staff updated successfully", updated)
}

// Delete implements StaffHandler.
func (s *StaffHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, staff.ErrStaffNotFound)
	if !ok {
		return
	}

	if err := s.staffService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete staff service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Staff deleted successfully", nil)
}
