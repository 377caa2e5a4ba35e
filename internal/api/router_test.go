package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"green_valley_api/internal/app/service"
	"green_valley_api/internal/common"
	"green_valley_api/internal/common/security"
	"green_valley_api/internal/domain/model"
	"green_valley_api/internal/platform/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory stand-ins for the Postgres repositories, enough for the
// full register/login/admin round-trips.

type memUserRepo struct {
	byEmail map[string]*model.User
}

func (m *memUserRepo) Create(_ context.Context, user *model.User) error {
	if _, exists := m.byEmail[user.Email]; exists {
		return fmt.Errorf("user with given email already exists: %w", common.ErrConflict)
	}
	u := *user
	m.byEmail[user.Email] = &u
	return nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *memUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memUserRepo) List(_ context.Context, _, _ int) ([]model.User, int, error) {
	var users []model.User
	for _, u := range m.byEmail {
		if u.Role == model.RoleUser {
			users = append(users, *u)
		}
	}
	return users, len(users), nil
}

func (m *memUserRepo) UpdateStatus(_ context.Context, id, status string) error {
	for _, u := range m.byEmail {
		if u.ID == id {
			u.Status = status
			return nil
		}
	}
	return common.ErrNotFound
}

func (m *memUserRepo) CountByRole(_ context.Context, role string) (int, error) {
	count := 0
	for _, u := range m.byEmail {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

type memNoticeRepo struct {
	notices []model.Notice
}

func (m *memNoticeRepo) Create(_ context.Context, n *model.Notice) error {
	for _, existing := range m.notices {
		if existing.Slug == n.Slug {
			return fmt.Errorf("notice with given slug already exists: %w", common.ErrConflict)
		}
	}
	m.notices = append(m.notices, *n)
	return nil
}

func (m *memNoticeRepo) FindByID(_ context.Context, id string) (*model.Notice, error) {
	for i := range m.notices {
		if m.notices[i].ID == id {
			copied := m.notices[i]
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memNoticeRepo) FindBySlug(_ context.Context, slug string) (*model.Notice, error) {
	for i := range m.notices {
		if m.notices[i].Slug == slug {
			copied := m.notices[i]
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memNoticeRepo) ListActive(_ context.Context) ([]model.Notice, error) {
	var active []model.Notice
	for _, n := range m.notices {
		if n.IsActive {
			active = append(active, n)
		}
	}
	return active, nil
}

func (m *memNoticeRepo) ListAll(_ context.Context, _, _ int) ([]model.Notice, int, error) {
	return m.notices, len(m.notices), nil
}

func (m *memNoticeRepo) Update(_ context.Context, n *model.Notice) error {
	for i := range m.notices {
		if m.notices[i].ID == n.ID {
			m.notices[i] = *n
			return nil
		}
	}
	return common.ErrNotFound
}

func (m *memNoticeRepo) Delete(_ context.Context, id string) error {
	for i := range m.notices {
		if m.notices[i].ID == id {
			m.notices = append(m.notices[:i], m.notices[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func (m *memNoticeRepo) CountActive(_ context.Context) (int, error) {
	count := 0
	for _, n := range m.notices {
		if n.IsActive {
			count++
		}
	}
	return count, nil
}

type memStaffRepo struct {
	members []model.Staff
}

func (m *memStaffRepo) Create(_ context.Context, s *model.Staff) error {
	m.members = append(m.members, *s)
	return nil
}

func (m *memStaffRepo) FindByID(_ context.Context, id string) (*model.Staff, error) {
	for i := range m.members {
		if m.members[i].ID == id {
			copied := m.members[i]
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memStaffRepo) List(_ context.Context) ([]model.Staff, error) {
	return m.members, nil
}

func (m *memStaffRepo) Update(_ context.Context, s *model.Staff) error {
	for i := range m.members {
		if m.members[i].ID == s.ID {
			m.members[i] = *s
			return nil
		}
	}
	return common.ErrNotFound
}

func (m *memStaffRepo) Delete(_ context.Context, id string) error {
	for i := range m.members {
		if m.members[i].ID == id {
			m.members = append(m.members[:i], m.members[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func (m *memStaffRepo) Count(_ context.Context) (int, error) {
	return len(m.members), nil
}

type memComplaintRepo struct {
	complaints []model.Complaint
}

func (m *memComplaintRepo) Create(_ context.Context, c *model.Complaint) error {
	m.complaints = append(m.complaints, *c)
	return nil
}

func (m *memComplaintRepo) FindByID(_ context.Context, id string) (*model.Complaint, error) {
	for i := range m.complaints {
		if m.complaints[i].ID == id {
			copied := m.complaints[i]
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memComplaintRepo) ListByResident(_ context.Context, residentID string) ([]model.Complaint, error) {
	var mine []model.Complaint
	for _, c := range m.complaints {
		if c.ResidentID == residentID {
			mine = append(mine, c)
		}
	}
	return mine, nil
}

func (m *memComplaintRepo) ListAll(_ context.Context, status string, _, _ int) ([]model.Complaint, int, error) {
	if status == "" {
		return m.complaints, len(m.complaints), nil
	}
	var filtered []model.Complaint
	for _, c := range m.complaints {
		if c.Status == status {
			filtered = append(filtered, c)
		}
	}
	return filtered, len(filtered), nil
}

func (m *memComplaintRepo) Update(_ context.Context, c *model.Complaint) error {
	for i := range m.complaints {
		if m.complaints[i].ID == c.ID {
			m.complaints[i] = *c
			return nil
		}
	}
	return common.ErrNotFound
}

func (m *memComplaintRepo) CountAll(_ context.Context) (int, error) {
	return len(m.complaints), nil
}

func (m *memComplaintRepo) CountByStatus(_ context.Context, status string) (int, error) {
	count := 0
	for _, c := range m.complaints {
		if c.Status == status {
			count++
		}
	}
	return count, nil
}

type memAmenityRepo struct{}

func (memAmenityRepo) Create(_ context.Context, _ *model.Amenity) error { return nil }
func (memAmenityRepo) FindByID(_ context.Context, _ string) (*model.Amenity, error) {
	return nil, common.ErrNotFound
}
func (memAmenityRepo) List(_ context.Context, _ bool) ([]model.Amenity, error) { return nil, nil }
func (memAmenityRepo) Update(_ context.Context, _ *model.Amenity) error        { return common.ErrNotFound }
func (memAmenityRepo) Delete(_ context.Context, _ string) error                { return common.ErrNotFound }

type memContactRepo struct{}

func (memContactRepo) Create(_ context.Context, _ *model.EmergencyContact) error { return nil }
func (memContactRepo) FindByID(_ context.Context, _ string) (*model.EmergencyContact, error) {
	return nil, common.ErrNotFound
}
func (memContactRepo) List(_ context.Context, _ bool) ([]model.EmergencyContact, error) {
	return nil, nil
}
func (memContactRepo) Update(_ context.Context, _ *model.EmergencyContact) error {
	return common.ErrNotFound
}
func (memContactRepo) Delete(_ context.Context, _ string) error { return common.ErrNotFound }

type testEnv struct {
	router   http.Handler
	userRepo *memUserRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	config.AppConfig = &config.Config{
		JWTKey: []byte("test-signing-secret"),
		JWTExp: 24 * time.Hour,
	}
	security.InitJWT()

	userRepo := &memUserRepo{byEmail: make(map[string]*model.User)}
	noticeRepo := &memNoticeRepo{}
	staffRepo := &memStaffRepo{}
	complaintRepo := &memComplaintRepo{}

	// Seed an admin; public registration cannot create one.
	hashed, err := security.HashPassword("admin-secret")
	require.NoError(t, err)
	userRepo.byEmail["admin@greenvalley.com"] = &model.User{
		ID: "admin-1", Name: "Society Admin", Email: "admin@greenvalley.com",
		HashedPassword: hashed, Role: model.RoleAdmin, Status: model.StatusActive,
	}

	router := NewRouter(
		service.NewAuthService(userRepo),
		service.NewNoticeService(noticeRepo),
		service.NewComplaintService(complaintRepo, userRepo),
		service.NewResidentService(userRepo),
		service.NewStaffService(staffRepo),
		service.NewAmenityService(memAmenityRepo{}),
		service.NewContactService(memContactRepo{}),
		service.NewDashboardService(userRepo, staffRepo, complaintRepo, noticeRepo),
		nil, // no rate limiting in tests
	)

	return &testEnv{router: router, userRepo: userRepo}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) login(t *testing.T, email, password string) (string, map[string]interface{}) {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string                 `json:"token"`
		User  map[string]interface{} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.User
}

func TestLivenessBanner(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Green Valley Society API is live")
}

func TestRegisterLoginFlow(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "A", "email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Registration successful")
	// Registration never hands out a token.
	assert.NotContains(t, rec.Body.String(), "token")

	rec = env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "B", "email": "a@x.com", "password": "different",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	_, user := env.login(t, "a@x.com", "secret1")
	assert.Equal(t, model.RoleUser, user["role"])
}

func TestRegister_MissingFieldsIs400(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "a@x.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_BadCredentialsIs401(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "A", "email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	wrongPw := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "a@x.com", "password": "wrong",
	})
	unknown := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "nobody@x.com", "password": "secret1",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	// Identical bodies keep account enumeration off the table.
	assert.Equal(t, wrongPw.Body.String(), unknown.Body.String())
}

func TestLogin_InactiveAccountIs403(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "A", "email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	env.userRepo.byEmail["a@x.com"].Status = model.StatusInactive

	rec = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "a@x.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "inactive")
}

func TestAuthMe(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, _ := env.login(t, "admin@greenvalley.com", "admin-secret")
	rec = env.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "admin@greenvalley.com")
}

func TestAdminRoutes_RequireAdminRole(t *testing.T) {
	env := newTestEnv(t)

	// No token at all.
	rec := env.do(t, http.MethodGet, "/api/admin/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Resident token.
	reg := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "A", "email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, reg.Code)
	userToken, _ := env.login(t, "a@x.com", "secret1")
	rec = env.do(t, http.MethodGet, "/api/admin/stats", userToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Admin token.
	adminToken, _ := env.login(t, "admin@greenvalley.com", "admin-secret")
	rec = env.do(t, http.MethodGet, "/api/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var stats model.DashboardStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.TotalResidents)
}

func TestProtectedRoute_RejectsBadTokens(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/auth/me", "garbage.token.here", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Token signed with the right key but already expired.
	config.AppConfig.JWTExp = -time.Minute
	expired, err := security.GenerateToken("u-1", model.RoleUser, "A")
	require.NoError(t, err)
	config.AppConfig.JWTExp = 24 * time.Hour

	rec = env.do(t, http.MethodGet, "/api/auth/me", expired, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestComplaintFlow(t *testing.T) {
	env := newTestEnv(t)

	reg := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "A", "email": "a@x.com", "password": "secret1", "flat_number": "B-204",
	})
	require.Equal(t, http.StatusCreated, reg.Code)
	userToken, user := env.login(t, "a@x.com", "secret1")

	// Unauthenticated filing is rejected.
	rec := env.do(t, http.MethodPost, "/api/complaints", "", map[string]string{
		"title": "Leaky tap", "description": "Kitchen tap drips", "category": "plumbing",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/complaints", userToken, map[string]string{
		"title": "Leaky tap", "description": "Kitchen tap drips", "category": "plumbing",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created model.Complaint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, model.ComplaintStatusPending, created.Status)
	assert.Equal(t, user["id"], created.ResidentID)

	// Admin moves it along.
	adminToken, _ := env.login(t, "admin@greenvalley.com", "admin-secret")
	rec = env.do(t, http.MethodPatch, "/api/admin/complaints/"+created.ID, adminToken, map[string]string{
		"status": "in-progress", "admin_remark": "Plumber scheduled",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated model.Complaint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, model.ComplaintStatusInProgress, updated.Status)

	// Resident does not get to use the admin endpoint.
	rec = env.do(t, http.MethodPatch, "/api/admin/complaints/"+created.ID, userToken, map[string]string{
		"status": "resolved",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestNoticeAdminCRUDAndPublicBoard(t *testing.T) {
	env := newTestEnv(t)
	adminToken, _ := env.login(t, "admin@greenvalley.com", "admin-secret")

	rec := env.do(t, http.MethodPost, "/api/admin/notices", adminToken, map[string]string{
		"title": "Water Supply Interruption", "content": "Maintenance on Saturday.", "priority": "urgent",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var notice model.Notice
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notice))
	assert.Equal(t, "water-supply-interruption", notice.Slug)

	// Public board sees it without any token.
	rec = env.do(t, http.MethodGet, "/api/notices/"+notice.Slug, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Deactivated notices drop off the public board.
	inactive := false
	rec = env.do(t, http.MethodPut, "/api/admin/notices/"+notice.ID, adminToken, map[string]interface{}{
		"is_active": inactive,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/notices/"+notice.Slug, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
