package admin

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/admin"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/jwt"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

type memoryAdmins struct {
	mu     sync.Mutex
	admins map[string]admin.Admin
	seq    int
}

func (m *memoryAdmins) Create(ctx context.Context, newAdmin admin.Admin) (admin.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.admins {
		if a.Email == newAdmin.Email {
			return admin.Admin{}, admin.ErrEmailExists
		}
	}
	m.seq++
	newAdmin.ID = fmt.Sprintf("admin-%d", m.seq)
	newAdmin.CreatedAt = time.Now()
	newAdmin.UpdatedAt = newAdmin.CreatedAt
	m.admins[newAdmin.ID] = newAdmin
	return newAdmin, nil
}

func (m *memoryAdmins) GetByID(ctx context.Context, id string) (admin.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.admins[id]
	if !ok {
		return admin.Admin{}, pgx.ErrNoRows
	}
	return a, nil
}

func (m *memoryAdmins) GetByEmail(ctx context.Context, email string) (admin.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return admin.Admin{}, pgx.ErrNoRows
}

func (m *memoryAdmins) List(ctx context.Context) ([]admin.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]admin.Admin, 0, len(m.admins))
	for _, a := range m.admins {
		out = append(out, a)
	}
	return out, nil
}

func (m *memoryAdmins) Update(ctx context.Context, id string, update admin.UpdateAdmin) (admin.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.admins[id]
	if !ok {
		return admin.Admin{}, pgx.ErrNoRows
	}
	if update.FirstName != nil {
		a.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		a.LastName = *update.LastName
	}
	if update.Email != nil {
		a.Email = *update.Email
	}
	if update.DateOfBirth != nil {
		a.DateOfBirth = *update.DateOfBirth
	}
	if update.Gender != nil {
		a.Gender = *update.Gender
	}
	if update.PasswordHash != nil {
		a.PasswordHash = *update.PasswordHash
	}
	m.admins[id] = a
	return a, nil
}

func (m *memoryAdmins) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.admins[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.admins, id)
	return nil
}

func newTestAdminService() (*AdminServiceImpl, *jwt.JWTService) {
	jwtService := jwt.NewJWTService(testSecret, "1h")
	svc := NewAdminService(&memoryAdmins{admins: make(map[string]admin.Admin)}, jwtService).(*AdminServiceImpl)
	svc.hashCost = bcrypt.MinCost
	return svc, jwtService
}

func createTestAdmin(t *testing.T, svc *AdminServiceImpl, email string) admin.AdminResponse {
	t.Helper()
	created, err := svc.Create(context.Background(), admin.CreateAdminRequest{
		FirstName:   "Ayu",
		LastName:    "Lestari",
		Email:       email,
		DateOfBirth: "1990-05-17",
		Gender:      "female",
		Password:    "password123",
	})
	require.NoError(t, err)
	return created
}

// Test Login with valid credentials
func TestAdminService_Login_Success(t *testing.T) {
	svc, jwtService := newTestAdminService()
	created := createTestAdmin(t, svc, "ayu@example.com")

	resp, err := svc.Login(context.Background(), admin.LoginRequest{Email: "ayu@example.com", Password: "password123"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
	assert.Equal(t, created.ID, resp.Admin.ID)

	_, err = jwtService.JWTAuth().Decode(resp.Token)
	assert.NoError(t, err)
}

// Test Login with invalid password or unknown email
func TestAdminService_Login_InvalidCredentials(t *testing.T) {
	svc, _ := newTestAdminService()
	createTestAdmin(t, svc, "ayu@example.com")

	_, err := svc.Login(context.Background(), admin.LoginRequest{Email: "ayu@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), admin.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)
}

func TestAdminService_Logout_RevokesToken(t *testing.T) {
	svc, jwtService := newTestAdminService()
	createTestAdmin(t, svc, "ayu@example.com")
	resp, err := svc.Login(context.Background(), admin.LoginRequest{Email: "ayu@example.com", Password: "password123"})
	require.NoError(t, err)

	svc.Logout(context.Background(), resp.Token, resp.ExpiresAt)

	assert.True(t, jwtService.IsTokenRevoked(resp.Token))
}

func TestAdminService_Create_HashesPassword(t *testing.T) {
	svc, _ := newTestAdminService()
	created := createTestAdmin(t, svc, "ayu@example.com")

	stored, err := svc.AdminRepository.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
	assert.Equal(t, "1990-05-17", created.DateOfBirth.String())
}

func TestAdminService_Create_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAdminService()
	createTestAdmin(t, svc, "ayu@example.com")

	_, err := svc.Create(context.Background(), admin.CreateAdminRequest{
		FirstName:   "Other",
		LastName:    "Admin",
		Email:       "ayu@example.com",
		DateOfBirth: "1991-01-01",
		Gender:      "male",
		Password:    "password123",
	})
	assert.ErrorIs(t, err, admin.ErrEmailExists)
}

func TestAdminService_Update(t *testing.T) {
	svc, _ := newTestAdminService()
	created := createTestAdmin(t, svc, "ayu@example.com")
	firstName := "Ayunda"
	password := "new-password"

	updated, err := svc.UpdateProfile(context.Background(), created.ID, admin.UpdateAdminRequest{FirstName: &firstName, Password: &password})
	require.NoError(t, err)
	assert.Equal(t, "Ayunda", updated.FirstName)
	assert.Equal(t, "Lestari", updated.LastName)

	_, err = svc.Login(context.Background(), admin.LoginRequest{Email: "ayu@example.com", Password: "new-password"})
	assert.NoError(t, err)

	_, err = svc.Update(context.Background(), "missing", admin.UpdateAdminRequest{FirstName: &firstName})
	assert.ErrorIs(t, err, admin.ErrAdminNotFound)
}

func TestAdminService_Delete(t *testing.T) {
	svc, _ := newTestAdminService()
	requester := createTestAdmin(t, svc, "ayu@example.com")
	target := createTestAdmin(t, svc, "budi@example.com")

	assert.ErrorIs(t, svc.Delete(context.Background(), requester.ID, requester.ID), admin.ErrCannotDeleteSelf)
	require.NoError(t, svc.Delete(context.Background(), requester.ID, target.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), requester.ID, target.ID), admin.ErrAdminNotFound)

	_, err := svc.GetProfile(context.Background(), target.ID)
	assert.ErrorIs(t, err, admin.ErrAdminNotFound)
}

func TestAdminService_EnsureAdmin(t *testing.T) {
	svc, _ := newTestAdminService()
	req := admin.CreateAdminRequest{
		FirstName:   "Super",
		LastName:    "Admin",
		Email:       "root@example.com",
		DateOfBirth: "1990-01-01",
		Gender:      "other",
		Password:    "password123",
	}

	created, err := svc.EnsureAdmin(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureAdmin(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, created)

	admins, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, admins, 1)
}
