package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/admin"
	"github.com/cmlabs-hris/staff-leave-backend/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type AdminHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AdminHandlerImpl struct {
	adminService admin.AdminService
}

func NewAdminHandler(adminService admin.AdminService) AdminHandler {
	return &AdminHandlerImpl{adminService: adminService}
}

// Login implements AdminHandler.
func (a *AdminHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq admin.LoginRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	loginResponse, err := a.adminService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Admin logged in successfully", "admin_id", loginResponse.Admin.ID)
	response.SuccessWithMessage(w, "Login successful", loginResponse)
}

// Logout implements AdminHandler.
func (a *AdminHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	token, _, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		response.HandleError(w, admin.ErrInvalidToken)
		return
	}

	a.adminService.Logout(r.Context(), jwtauth.TokenFromHeader(r), token.Expiration().Unix())

	slog.Info("Admin logged out", "admin_id", adminIDFromRequest(r))
	response.SuccessWithMessage(w, "Logout successful", nil)
}

// GetProfile implements AdminHandler.
func (a *AdminHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := a.adminService.GetProfile(r.Context(), adminIDFromRequest(r))
	if err != nil {
		slog.Error("GetProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, profile)
}

// UpdateProfile implements AdminHandler.
func (a *AdminHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var updateReq admin.UpdateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		slog.Error("UpdateProfile validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	profile, err := a.adminService.UpdateProfile(r.Context(), adminIDFromRequest(r), updateReq)
	if err != nil {
		slog.Error("UpdateProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Profile updated successfully", profile)
}

// List implements AdminHandler.
func (a *AdminHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	admins, err := a.adminService.List(r.Context())
	if err != nil {
		slog.Error("List admins service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, admins)
}

// Get implements AdminHandler.
func (a *AdminHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, admin.ErrAdminNotFound)
	if !ok {
		return
	}

	found, err := a.adminService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Get admin service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// Create implements AdminHandler.
func (a *AdminHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq admin.CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create admin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Create admin validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := a.adminService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create admin service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Admin created successfully", created)
}

// Update implements AdminHandler.
func (a *AdminHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, admin.ErrAdminNotFound)
	if !ok {
		return
	}

	var updateReq admin.UpdateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update admin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		slog.Error("Update admin validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := a.adminService.Update(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Update admin service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Admin updated successfully", updated)
}

// Delete implements AdminHandler.
func (a *AdminHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, admin.ErrAdminNotFound)
	if !ok {
		return
	}

	if err := a.adminService.Delete(r.Context(), adminIDFromRequest(r), id); err != nil {
		slog.Error("Delete admin service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Admin deleted successfully", nil)
}
