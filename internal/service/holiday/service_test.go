package holiday

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/evidencija/attendance-backend-go/internal/domain/holiday"
	"github.com/evidencija/attendance-backend-go/internal/pkg/nager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHolidayRepo struct {
	rows map[string]holiday.Holiday // key: date|country|name
}

func newFakeHolidayRepo() *fakeHolidayRepo {
	return &fakeHolidayRepo{rows: make(map[string]holiday.Holiday)}
}

func (f *fakeHolidayRepo) Upsert(ctx context.Context, h holiday.Holiday) (bool, error) {
	key := h.Date.Format("2006-01-02") + "|" + h.CountryCode + "|" + h.Name
	_, existed := f.rows[key]
	f.rows[key] = h
	return !existed, nil
}

func (f *fakeHolidayRepo) ListRange(ctx context.Context, country string, from, toExclusive time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.rows {
		if h.CountryCode == country && !h.Date.Before(from) && h.Date.Before(toExclusive) {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakeNager struct {
	holidays []nager.PublicHoliday
	err      error
}

func (f *fakeNager) PublicHolidays(ctx context.Context, year int, countryCode string) ([]nager.PublicHoliday, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.holidays, nil
}

func TestSyncUpsertsFetchedHolidays(t *testing.T) {
	repo := newFakeHolidayRepo()
	provider := &fakeNager{holidays: []nager.PublicHoliday{
		{Date: "2026-01-01", Name: "New Year's Day", LocalName: "Nova godina", CountryCode: "RS"},
		{Date: "2026-01-07", Name: "Orthodox Christmas", LocalName: "Orthodox Christmas", CountryCode: "RS"},
	}}
	svc := NewHolidayService(repo, provider, "RS")

	resp, err := svc.Sync(context.Background(), holiday.SyncRequest{Year: 2026})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Fetched)
	assert.Equal(t, 2, resp.Synced)
	assert.Len(t, repo.rows, 2)

	// Re-sync is idempotent
	resp, err = svc.Sync(context.Background(), holiday.SyncRequest{Year: 2026})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Synced)
	assert.Len(t, repo.rows, 2)
}

func TestSyncUpstreamFailure(t *testing.T) {
	repo := newFakeHolidayRepo()
	provider := &fakeNager{err: errors.New("timeout")}
	svc := NewHolidayService(repo, provider, "RS")

	_, err := svc.Sync(context.Background(), holiday.SyncRequest{Year: 2026})
	assert.ErrorIs(t, err, holiday.ErrUpstreamUnavailable)
}

func TestSyncRejectsBadYear(t *testing.T) {
	svc := NewHolidayService(newFakeHolidayRepo(), &fakeNager{}, "RS")

	_, err := svc.Sync(context.Background(), holiday.SyncRequest{Year: 26})
	require.Error(t, err)
}

func TestGetRangeDefaultsToCurrentYear(t *testing.T) {
	repo := newFakeHolidayRepo()
	provider := &fakeNager{holidays: []nager.PublicHoliday{
		{Date: "2026-05-01", Name: "Labour Day", LocalName: "Praznik rada", CountryCode: "RS"},
	}}
	svc := NewHolidayService(repo, provider, "RS").(*HolidayServiceImpl)
	svc.now = func() time.Time { return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC) }

	_, err := svc.Sync(context.Background(), holiday.SyncRequest{Year: 2026})
	require.NoError(t, err)

	items, err := svc.GetRange(context.Background(), holiday.RangeFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "2026-05-01", items[0].Date)
	assert.Equal(t, "nager", items[0].Source)
	require.NotNil(t, items[0].LocalName)
	assert.Equal(t, "Praznik rada", *items[0].LocalName)
}

func TestGetRangeWindow(t *testing.T) {
	repo := newFakeHolidayRepo()
	provider := &fakeNager{holidays: []nager.PublicHoliday{
		{Date: "2026-01-01", Name: "New Year's Day", CountryCode: "RS"},
		{Date: "2026-05-01", Name: "Labour Day", CountryCode: "RS"},
	}}
	svc := NewHolidayService(repo, provider, "RS")

	_, err := svc.Sync(context.Background(), holiday.SyncRequest{Year: 2026})
	require.NoError(t, err)

	items, err := svc.GetRange(context.Background(), holiday.RangeFilter{From: "2026-01-01", To: "2026-01-31"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "New Year's Day", items[0].Name)
}
