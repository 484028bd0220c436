package activity

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/evidencija/attendance-backend-go/internal/domain/activity"
	"github.com/evidencija/attendance-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	employeeID = "01890000-0000-7000-8000-0000000000aa"
	otherID    = "01890000-0000-7000-8000-0000000000bb"
	managerID  = "01890000-0000-7000-8000-0000000000cc"
)

type fakeActivityRepo struct {
	rows   map[string]activity.Activity
	nextID int
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{rows: make(map[string]activity.Activity)}
}

func (f *fakeActivityRepo) Create(ctx context.Context, act activity.Activity) (activity.Activity, error) {
	f.nextID++
	act.ID = "01890000-0000-7000-8000-00000000010" + string(rune('0'+f.nextID%10))
	f.rows[act.ID] = act
	return act, nil
}

func (f *fakeActivityRepo) GetByID(ctx context.Context, id string) (activity.Activity, error) {
	act, ok := f.rows[id]
	if !ok {
		return activity.Activity{}, pgx.ErrNoRows
	}
	email := "owner@example.com"
	first, last := "Test", "Owner"
	act.UserEmail, act.UserFirstName, act.UserLastName = &email, &first, &last
	return act, nil
}

func (f *fakeActivityRepo) Update(ctx context.Context, act activity.Activity) error {
	act.UserEmail, act.UserFirstName, act.UserLastName = nil, nil, nil
	f.rows[act.ID] = act
	return nil
}

func (f *fakeActivityRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeActivityRepo) ListRange(ctx context.Context, userID string, from, toExclusive time.Time) ([]activity.Activity, error) {
	var out []activity.Activity
	for _, act := range f.rows {
		if userID != "" && act.UserID != userID {
			continue
		}
		if !act.Date.Before(from) && act.Date.Before(toExclusive) {
			out = append(out, act)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, pgx.ErrNoRows
	}
	return u, nil
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, pgx.ErrNoRows
}
func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error { return nil }
func (f *fakeUserRepo) UpdatePasswordHash(ctx context.Context, id string, hash string) error {
	return nil
}
func (f *fakeUserRepo) TouchLastLogin(ctx context.Context, id string) error { return nil }
func (f *fakeUserRepo) List(ctx context.Context, filter user.ListUsersFilter) ([]user.User, error) {
	return nil, nil
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

func newTestService(repo *fakeActivityRepo, users *fakeUserRepo) *ActivityServiceImpl {
	if users == nil {
		users = &fakeUserRepo{users: map[string]user.User{
			otherID: {ID: otherID, IsActive: true, Role: user.RoleEmployee},
		}}
	}
	svc := NewActivityService(repo, users).(*ActivityServiceImpl)
	svc.now = func() time.Time { return time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func validCreate() activity.CreateActivityRequest {
	return activity.CreateActivityRequest{
		Name:      "Sprint planning",
		Date:      "2026-02-08",
		StartTime: "2026-02-08T09:00:00Z",
		EndTime:   "2026-02-08T10:00:00Z",
		Category:  "MEETING",
	}
}

func TestCreateOwnActivity(t *testing.T) {
	repo := newFakeActivityRepo()
	svc := newTestService(repo, nil)

	resp, err := svc.Create(authedCtx(t, employeeID, user.RoleEmployee), validCreate())
	require.NoError(t, err)
	assert.Equal(t, "Sprint planning", resp.Name)
	assert.Equal(t, "MEETING", resp.Category)
	assert.Equal(t, "2026-02-08", resp.Date)
	require.NotNil(t, resp.User)
}

func TestCreateRejectsEndBeforeStart(t *testing.T) {
	repo := newFakeActivityRepo()
	svc := newTestService(repo, nil)

	req := validCreate()
	req.EndTime = "2026-02-08T08:00:00Z"
	_, err := svc.Create(authedCtx(t, employeeID, user.RoleEmployee), req)
	require.Error(t, err)
}

func TestEmployeeCannotCreateForOthers(t *testing.T) {
	repo := newFakeActivityRepo()
	svc := newTestService(repo, nil)

	req := validCreate()
	req.UserID = otherID
	_, err := svc.Create(authedCtx(t, employeeID, user.RoleEmployee), req)
	assert.ErrorIs(t, err, user.ErrForbiddenScope)
}

func TestManagerCreatesForActiveUserOnly(t *testing.T) {
	repo := newFakeActivityRepo()
	users := &fakeUserRepo{users: map[string]user.User{
		otherID: {ID: otherID, IsActive: false},
	}}
	svc := newTestService(repo, users)

	req := validCreate()
	req.UserID = otherID
	_, err := svc.Create(authedCtx(t, managerID, user.RoleManager), req)
	assert.ErrorIs(t, err, activity.ErrTargetUserInactive)
}

func TestUpdateCrossFieldTimeCheck(t *testing.T) {
	repo := newFakeActivityRepo()
	svc := newTestService(repo, nil)
	ctx := authedCtx(t, employeeID, user.RoleEmployee)

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	// Moving start past the stored end must fail even though only one field changed
	newStart := "2026-02-08T11:00:00Z"
	_, err = svc.Update(ctx, activity.UpdateActivityRequest{ID: created.ID, StartTime: &newStart})
	assert.ErrorIs(t, err, activity.ErrEndBeforeStart)
}

func TestDeleteOthersActivityForbidden(t *testing.T) {
	repo := newFakeActivityRepo()
	svc := newTestService(repo, nil)

	created, err := svc.Create(authedCtx(t, managerID, user.RoleManager), validCreate())
	require.NoError(t, err)

	err = svc.Delete(authedCtx(t, employeeID, user.RoleEmployee), created.ID)
	assert.ErrorIs(t, err, user.ErrForbiddenScope)
}

func TestDeleteMissingActivity(t *testing.T) {
	repo := newFakeActivityRepo()
	svc := newTestService(repo, nil)

	err := svc.Delete(authedCtx(t, employeeID, user.RoleEmployee), "01890000-0000-7000-8000-000000000999")
	assert.ErrorIs(t, err, activity.ErrActivityNotFound)
}

func TestExportICS(t *testing.T) {
	repo := newFakeActivityRepo()
	svc := newTestService(repo, nil)
	ctx := authedCtx(t, employeeID, user.RoleEmployee)

	req := validCreate()
	req.Name = "Review; part 1, final"
	desc := "Line one\nLine two"
	req.Description = &desc
	created, err := svc.Create(ctx, req)
	require.NoError(t, err)

	out, err := svc.ExportICS(ctx, activity.ListFilter{From: "2026-02-01", To: "2026-02-28"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	assert.Contains(t, out, "PRODID:-//Evidencija//Calendar Export//SR")
	assert.Contains(t, out, "UID:activity-"+created.ID+"@evidencija")
	assert.Contains(t, out, "DTSTART:20260208T090000Z")
	assert.Contains(t, out, "DTEND:20260208T100000Z")
	assert.Contains(t, out, `SUMMARY:Review\; part 1\, final`)
	assert.Contains(t, out, `DESCRIPTION:Line one\nLine two`)
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR"))
}
