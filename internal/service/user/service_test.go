package user

import (
	"context"
	"testing"
	"time"

	"github.com/evidencija/attendance-backend-go/internal/domain/admin"
	"github.com/evidencija/attendance-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	employeeID = "01890000-0000-7000-8000-0000000000aa"
	managerID  = "01890000-0000-7000-8000-0000000000bb"
	adminID    = "01890000-0000-7000-8000-0000000000cc"
)

type fakeUserRepo struct {
	rows map[string]user.User
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	f := &fakeUserRepo{rows: make(map[string]user.User)}
	for _, u := range users {
		f.rows[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.rows[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.rows[id]
	if !ok {
		return user.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.rows {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error {
	f.rows[u.ID] = u
	return nil
}

func (f *fakeUserRepo) UpdatePasswordHash(ctx context.Context, id string, passwordHash string) error {
	u := f.rows[id]
	u.PasswordHash = &passwordHash
	f.rows[id] = u
	return nil
}

func (f *fakeUserRepo) TouchLastLogin(ctx context.Context, id string) error {
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context, filter user.ListUsersFilter) ([]user.User, error) {
	users := make([]user.User, 0, len(f.rows))
	for _, u := range f.rows {
		if !filter.IncludeInactive && !u.IsActive {
			continue
		}
		users = append(users, u)
	}
	return users, nil
}

type fakeActionRepo struct {
	recorded []admin.Action
}

func (f *fakeActionRepo) Record(ctx context.Context, action admin.Action) error {
	f.recorded = append(f.recorded, action)
	return nil
}

func authedCtx(t *testing.T, userID string, role user.Role) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"email":   "someone@example.com",
		"role":    string(role),
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func seedUsers() []user.User {
	return []user.User{
		{ID: employeeID, FirstName: "Ena", LastName: "Radic", Email: "ena@example.com", Role: user.RoleEmployee, IsActive: true, CreatedAt: time.Now()},
		{ID: managerID, FirstName: "Marko", LastName: "Ilic", Email: "marko@example.com", Role: user.RoleManager, IsActive: true, CreatedAt: time.Now()},
		{ID: adminID, FirstName: "Ana", LastName: "Savic", Email: "ana@example.com", Role: user.RoleAdmin, IsActive: true, CreatedAt: time.Now()},
	}
}

func TestListUserSummariesRejectsEmployee(t *testing.T) {
	svc := NewUserService(nil, newFakeUserRepo(seedUsers()...), &fakeActionRepo{})

	_, err := svc.ListUserSummaries(authedCtx(t, employeeID, user.RoleEmployee), "")

	assert.ErrorIs(t, err, user.ErrManagerAccessRequired)
}

func TestListUserSummariesAllowsManagerAndAdmin(t *testing.T) {
	svc := NewUserService(nil, newFakeUserRepo(seedUsers()...), &fakeActionRepo{})

	for _, role := range []struct {
		callerID string
		role     user.Role
	}{
		{managerID, user.RoleManager},
		{adminID, user.RoleAdmin},
	} {
		summaries, err := svc.ListUserSummaries(authedCtx(t, role.callerID, role.role), "")
		require.NoError(t, err)
		assert.Len(t, summaries, 3)
	}
}

func TestListUsersRequiresAdmin(t *testing.T) {
	svc := NewUserService(nil, newFakeUserRepo(seedUsers()...), &fakeActionRepo{})

	_, err := svc.ListUsers(authedCtx(t, managerID, user.RoleManager), user.ListUsersFilter{Mode: "admin"})
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)

	users, err := svc.ListUsers(authedCtx(t, adminID, user.RoleAdmin), user.ListUsersFilter{Mode: "admin"})
	require.NoError(t, err)
	assert.Len(t, users, 3)
}
