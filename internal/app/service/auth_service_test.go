package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"green_valley_api/internal/common"
	"green_valley_api/internal/common/security"
	"green_valley_api/internal/domain/model"
	"green_valley_api/internal/platform/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo emulates the users table, including the unique index on
// email that registration depends on.
type fakeUserRepo struct {
	byEmail map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*model.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if _, exists := f.byEmail[user.Email]; exists {
		return fmt.Errorf("user with given email already exists: %w", common.ErrConflict)
	}
	u := *user
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.byEmail[user.Email] = &u
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) List(_ context.Context, _, _ int) ([]model.User, int, error) {
	var users []model.User
	for _, u := range f.byEmail {
		if u.Role == model.RoleUser {
			users = append(users, *u)
		}
	}
	return users, len(users), nil
}

func (f *fakeUserRepo) UpdateStatus(_ context.Context, id, status string) error {
	for _, u := range f.byEmail {
		if u.ID == id {
			u.Status = status
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeUserRepo) CountByRole(_ context.Context, role string) (int, error) {
	count := 0
	for _, u := range f.byEmail {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func setupAuthTest(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	config.AppConfig = &config.Config{
		JWTKey: []byte("test-signing-secret"),
		JWTExp: 24 * time.Hour,
	}
	security.InitJWT()
	repo := newFakeUserRepo()
	return NewAuthService(repo), repo
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _ := setupAuthTest(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, RegisterRequest{
		Name: "Asha", Email: "asha@example.com", Password: "secret1", FlatNumber: "B-204",
	})
	require.NoError(t, err)
	assert.Equal(t, "Registration successful! Please login to continue.", resp.Message)

	login, err := svc.Login(ctx, LoginRequest{Email: "asha@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, model.RoleUser, login.User.Role)
	assert.Equal(t, "Asha", login.User.Name)
	require.NotNil(t, login.User.FlatNumber)
	assert.Equal(t, "B-204", *login.User.FlatNumber)
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _ := setupAuthTest(t)
	ctx := context.Background()

	for _, req := range []RegisterRequest{
		{Email: "a@x.com", Password: "p"},
		{Name: "A", Password: "p"},
		{Name: "A", Email: "a@x.com"},
	} {
		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, common.ErrValidation)
	}
}

func TestRegister_FlatNumberOptional(t *testing.T) {
	svc, repo := setupAuthTest(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	user, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Nil(t, user.FlatNumber)
	assert.Equal(t, model.StatusActive, user.Status)
	assert.NotEqual(t, "secret1", user.HashedPassword)
	assert.NotEmpty(t, user.HashedPassword)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := setupAuthTest(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	// Different name and password, same email: still a conflict.
	_, err = svc.Register(ctx, RegisterRequest{Name: "B", Email: "a@x.com", Password: "other"})
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestLogin_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	svc, _ := setupAuthTest(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, errUnknown := svc.Login(ctx, LoginRequest{Email: "nobody@x.com", Password: "whatever"})
	_, errWrongPw := svc.Login(ctx, LoginRequest{Email: "a@x.com", Password: "wrong"})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	// Same sentinel, same message: a caller cannot tell which field failed.
	assert.ErrorIs(t, errUnknown, common.ErrUnauthorized)
	assert.ErrorIs(t, errWrongPw, common.ErrUnauthorized)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestLogin_InactiveAccount(t *testing.T) {
	svc, repo := setupAuthTest(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	user, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(ctx, user.ID, model.StatusInactive))

	// Correct credentials still fail, and distinctly from bad credentials.
	_, err = svc.Login(ctx, LoginRequest{Email: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, common.ErrForbidden)
	assert.NotErrorIs(t, err, common.ErrUnauthorized)
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _ := setupAuthTest(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, LoginRequest{Email: "a@x.com"})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.Login(ctx, LoginRequest{Password: "p"})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestLogin_TokenCarriesIdentityClaims(t *testing.T) {
	svc, _ := setupAuthTest(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Name: "Asha", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	login, err := svc.Login(ctx, LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	claims, err := security.VerifyToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, login.User.ID, claims.UserID)
	assert.Equal(t, model.RoleUser, claims.Role)
	assert.Equal(t, "Asha", claims.Name)
}
