package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/admin"
	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/leave"
	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/staff"
	"github.com/cmlabs-hris/staff-leave-backend/internal/handler/http/response"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/calendar"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	handlerTestSecret = "test-secret-key-for-jwt"
	testAdminID       = "0192d1f0-0000-7000-8000-00000000a001"
	testStaffID       = "0192d1f0-0000-7000-8000-000000000001"
	testLeaveID       = "0192d1f0-0000-7000-8000-00000000b001"
)

type stubAdminService struct {
	admin.AdminService
	jwtService jwt.Service
	deleted    []string
}

func (s *stubAdminService) Login(ctx context.Context, req admin.LoginRequest) (admin.LoginResponse, error) {
	if req.Password != "password123" {
		return admin.LoginResponse{}, admin.ErrInvalidCredentials
	}
	token, exp, err := s.jwtService.GenerateAccessToken(testAdminID, req.Email)
	if err != nil {
		return admin.LoginResponse{}, err
	}
	return admin.LoginResponse{Token: token, ExpiresAt: exp, Admin: admin.AdminSummary{ID: testAdminID, Email: req.Email}}, nil
}

func (s *stubAdminService) Logout(ctx context.Context, token string, expiresAt int64) {
	s.jwtService.RevokeToken(token, expiresAt)
}

func (s *stubAdminService) GetProfile(ctx context.Context, adminID string) (admin.AdminResponse, error) {
	return admin.AdminResponse{ID: adminID, Email: "root@example.com"}, nil
}

func (s *stubAdminService) Delete(ctx context.Context, requesterID, id string) error {
	if requesterID == id {
		return admin.ErrCannotDeleteSelf
	}
	s.deleted = append(s.deleted, id)
	return nil
}

type stubStaffService struct {
	staff.StaffService
}

func (s *stubStaffService) Get(ctx context.Context, id string) (staff.StaffResponse, error) {
	if id != testStaffID {
		return staff.StaffResponse{}, staff.ErrStaffNotFound
	}
	return staff.StaffResponse{ID: id, FirstName: "Alice"}, nil
}

type stubLeaveService struct {
	leave.LeaveService
	createErr error
	lastYear  int
}

func (s *stubLeaveService) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if s.createErr != nil {
		return leave.LeaveResponse{}, s.createErr
	}
	start, end, err := req.Dates()
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.LeaveResponse{
		ID:        testLeaveID,
		Reason:    req.Reason,
		DateStart: start,
		DateEnd:   end,
		Days:      end.DaysSince(start) + 1,
		StaffID:   req.StaffID,
		Staff:     &staff.Summary{ID: req.StaffID, FirstName: "Alice"},
	}, nil
}

func (s *stubLeaveService) Get(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return leave.LeaveResponse{}, leave.ErrLeaveNotFound
}

func (s *stubLeaveService) Delete(ctx context.Context, id string) error {
	return nil
}

func (s *stubLeaveService) QuotaSummary(ctx context.Context, staffID string, year int) (leave.QuotaSummaryResponse, error) {
	s.lastYear = year
	return leave.QuotaSummaryResponse{StaffID: staffID, Year: year, Used: 5, Remaining: 7, Limit: 12, MonthsTaken: []string{"2024-03"}}, nil
}

type routerFixture struct {
	router     *chi.Mux
	jwtService *jwt.JWTService
	admins     *stubAdminService
	leaves     *stubLeaveService
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	jwtService := jwt.NewJWTService(handlerTestSecret, "1h")
	admins := &stubAdminService{jwtService: jwtService}
	leaves := &stubLeaveService{}
	router := NewRouter(
		RouterOptions{AllowedOrigins: []string{"http://localhost:3000"}},
		jwtService,
		NewAdminHandler(admins),
		NewStaffHandler(&stubStaffService{}),
		NewLeaveHandler(leaves),
	)
	return &routerFixture{router: router, jwtService: jwtService, admins: admins, leaves: leaves}
}

func (f *routerFixture) token(t *testing.T) string {
	t.Helper()
	token, _, err := f.jwtService.GenerateAccessToken(testAdminID, "root@example.com")
	require.NoError(t, err)
	return token
}

func (f *routerFixture) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec, resp
}

func TestLogin(t *testing.T) {
	f := newRouterFixture(t)

	rec, resp := f.do(t, http.MethodPost, "/api/v1/admin/auth/login", "", map[string]string{
		"email": "root@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	rec, resp = f.do(t, http.MethodPost, "/api/v1/admin/auth/login", "", map[string]string{
		"email": "root@example.com", "password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, resp.Success)

	rec, resp = f.do(t, http.MethodPost, "/api/v1/admin/auth/login", "", map[string]string{
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Details, "email")
	assert.Contains(t, resp.Error.Details, "password")
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	f := newRouterFixture(t)

	rec, _ := f.do(t, http.MethodGet, "/api/v1/leave/"+testLeaveID, "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/api/v1/leave/"+testLeaveID, "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/api/v1/admin/profile", f.token(t), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogout_RevokesToken(t *testing.T) {
	f := newRouterFixture(t)
	token := f.token(t)

	rec, _ := f.do(t, http.MethodPost, "/api/v1/admin/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/api/v1/admin/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeleteAdmin_Self(t *testing.T) {
	f := newRouterFixture(t)

	rec, _ := f.do(t, http.MethodDelete, "/api/v1/admin/manage/"+testAdminID, f.token(t), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, f.admins.deleted)
}

func validLeaveBody() map[string]string {
	return map[string]string{
		"reason":     "family",
		"date_start": "2024-03-01",
		"date_end":   "2024-03-05",
		"staff_id":   testStaffID,
	}
}

func TestCreateLeave_Success(t *testing.T) {
	f := newRouterFixture(t)

	rec, resp := f.do(t, http.MethodPost, "/api/v1/leave", f.token(t), validLeaveBody())

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Leave created successfully", resp.Message)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "2024-03-01", data["date_start"])
	assert.Equal(t, float64(5), data["days"])
	staffData, ok := data["staff"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Alice", staffData["first_name"])
}

func TestCreateLeave_Validation(t *testing.T) {
	f := newRouterFixture(t)
	body := validLeaveBody()
	body["date_start"] = "01/03/2024"
	body["staff_id"] = "not-a-uuid"

	rec, resp := f.do(t, http.MethodPost, "/api/v1/leave", f.token(t), body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "date_start")
	assert.Contains(t, resp.Error.Details, "staff_id")
}

func TestCreateLeave_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantDetail map[string]string
		wantMsg    string
	}{
		{
			name:       "staff not found",
			err:        staff.ErrStaffNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantMsg:    "Staff not found",
		},
		{
			name:       "invalid range",
			err:        leave.ErrInvalidDateRange,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_DATE_RANGE",
			wantMsg:    "Start date cannot be after end date",
		},
		{
			name:       "annual limit",
			err:        &leave.AnnualLimitError{Used: 10, Requested: 3, Limit: 12},
			wantStatus: http.StatusBadRequest,
			wantCode:   "ANNUAL_LIMIT_EXCEEDED",
			wantDetail: map[string]string{"used": "10", "requested": "3", "limit": "12"},
			wantMsg:    "Annual leave limit exceeded. Used: 10 days, Requesting: 3 days, Limit: 12 days per year",
		},
		{
			name:       "monthly limit",
			err:        &leave.MonthlyLimitError{Month: calendar.MustParse("2024-03-01")},
			wantStatus: http.StatusBadRequest,
			wantCode:   "MONTHLY_LIMIT_EXCEEDED",
			wantDetail: map[string]string{"month": "2024-03"},
			wantMsg:    "Staff can only take 1 leave per month. Leave already exists in March 2024",
		},
		{
			name:       "store failure",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantMsg:    "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t)
			f.leaves.createErr = tt.err

			rec, resp := f.do(t, http.MethodPost, "/api/v1/leave", f.token(t), validLeaveBody())

			assert.Equal(t, tt.wantStatus, rec.Code)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantMsg, resp.Error.Message)
			if tt.wantDetail != nil {
				assert.Equal(t, tt.wantDetail, resp.Error.Details)
			}
		})
	}
}

func TestLeaveByID(t *testing.T) {
	f := newRouterFixture(t)

	rec, resp := f.do(t, http.MethodGet, "/api/v1/leave/"+testLeaveID, f.token(t), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Leave not found", resp.Error.Message)

	rec, _ = f.do(t, http.MethodGet, "/api/v1/leave/not-a-uuid", f.token(t), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, resp = f.do(t, http.MethodDelete, "/api/v1/leave/"+testLeaveID, f.token(t), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Leave deleted successfully", resp.Message)
}

func TestGetQuota(t *testing.T) {
	f := newRouterFixture(t)

	rec, resp := f.do(t, http.MethodGet, "/api/v1/leave/staff/"+testStaffID+"/quota?year=2024", f.token(t), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2024, f.leaves.lastYear)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(7), data["remaining"])

	_, _ = f.do(t, http.MethodGet, "/api/v1/leave/staff/"+testStaffID+"/quota", f.token(t), nil)
	assert.Equal(t, 0, f.leaves.lastYear)

	rec, _ = f.do(t, http.MethodGet, "/api/v1/leave/staff/"+testStaffID+"/quota?year=abc", f.token(t), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetStaff(t *testing.T) {
	f := newRouterFixture(t)

	rec, _ := f.do(t, http.MethodGet, "/api/v1/staff/"+testStaffID, f.token(t), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp := f.do(t, http.MethodGet, "/api/v1/staff/0192d1f0-0000-7000-8000-0000000000ff", f.token(t), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Staff not found", resp.Error.Message)
}
