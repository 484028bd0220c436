package weather

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/evidencija/attendance-backend-go/internal/domain/weather"
	"github.com/evidencija/attendance-backend-go/internal/pkg/openmeteo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const locationKey = "belgrade"

type fakeWeatherRepo struct {
	rows map[string]weather.Daily // key: locationKey|YYYY-MM-DD
}

func newFakeWeatherRepo() *fakeWeatherRepo {
	return &fakeWeatherRepo{rows: make(map[string]weather.Daily)}
}

func (f *fakeWeatherRepo) key(loc string, date time.Time) string {
	return loc + "|" + date.UTC().Format("2006-01-02")
}

func (f *fakeWeatherRepo) Upsert(ctx context.Context, d weather.Daily) error {
	f.rows[f.key(d.LocationKey, d.Date)] = d
	return nil
}

func (f *fakeWeatherRepo) GetByDate(ctx context.Context, loc string, date time.Time) (*weather.Daily, error) {
	d, ok := f.rows[f.key(loc, date)]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (f *fakeWeatherRepo) ListRange(ctx context.Context, loc string, from, toExclusive time.Time) ([]weather.Daily, error) {
	var out []weather.Daily
	for day := from; day.Before(toExclusive); day = day.AddDate(0, 0, 1) {
		if d, ok := f.rows[f.key(loc, day)]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeProvider struct {
	archiveCalls  [][2]string
	forecastCalls [][2]string
	rowsFor       func(from, to string) []openmeteo.DailyRow
	err           error
}

func (f *fakeProvider) FetchArchive(ctx context.Context, from, to string) ([]openmeteo.DailyRow, error) {
	f.archiveCalls = append(f.archiveCalls, [2]string{from, to})
	if f.err != nil {
		return nil, f.err
	}
	return f.rowsFor(from, to), nil
}

func (f *fakeProvider) FetchForecast(ctx context.Context, from, to string) ([]openmeteo.DailyRow, error) {
	f.forecastCalls = append(f.forecastCalls, [2]string{from, to})
	if f.err != nil {
		return nil, f.err
	}
	return f.rowsFor(from, to), nil
}

// daysBetween generates one row per day in [from, to], inclusive.
func daysBetween(from, to string) []openmeteo.DailyRow {
	start, _ := time.Parse("2006-01-02", from)
	end, _ := time.Parse("2006-01-02", to)
	var rows []openmeteo.DailyRow
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		temp := 5.0
		rows = append(rows, openmeteo.DailyRow{Day: day.Format("2006-01-02"), TempMin: &temp})
	}
	return rows
}

func newTestService(repo weather.WeatherRepository, provider Provider, today time.Time) *WeatherServiceImpl {
	svc := NewWeatherService(repo, provider, locationKey).(*WeatherServiceImpl)
	svc.now = func() time.Time { return today }
	return svc
}

func TestSyncSplitsArchiveAndForecastAroundToday(t *testing.T) {
	repo := newFakeWeatherRepo()
	provider := &fakeProvider{rowsFor: daysBetween}
	today := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	svc := newTestService(repo, provider, today)

	result, err := svc.Sync(context.Background(), "2026-01-13", "2026-01-17")
	require.NoError(t, err)
	assert.Equal(t, 5, result.Upserted)

	require.Len(t, provider.archiveCalls, 1)
	assert.Equal(t, [2]string{"2026-01-13", "2026-01-14"}, provider.archiveCalls[0])
	require.Len(t, provider.forecastCalls, 1)
	assert.Equal(t, [2]string{"2026-01-15", "2026-01-17"}, provider.forecastCalls[0])
}

func TestSyncPastOnlyUsesArchiveOnly(t *testing.T) {
	repo := newFakeWeatherRepo()
	provider := &fakeProvider{rowsFor: daysBetween}
	today := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	svc := newTestService(repo, provider, today)

	_, err := svc.Sync(context.Background(), "2026-01-01", "2026-01-05")
	require.NoError(t, err)
	assert.Len(t, provider.archiveCalls, 1)
	assert.Empty(t, provider.forecastCalls)
}

func TestSyncProviderFailure(t *testing.T) {
	repo := newFakeWeatherRepo()
	provider := &fakeProvider{err: errors.New("boom")}
	today := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	svc := newTestService(repo, provider, today)

	_, err := svc.Sync(context.Background(), "2026-01-13", "2026-01-14")
	assert.ErrorIs(t, err, weather.ErrSyncFailed)
}

func TestGetRangeSyncsOnCacheMiss(t *testing.T) {
	repo := newFakeWeatherRepo()
	provider := &fakeProvider{rowsFor: daysBetween}
	today := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	svc := newTestService(repo, provider, today)

	days, err := svc.GetRange(context.Background(), "2026-01-10", "2026-01-12", "")
	require.NoError(t, err)
	assert.Len(t, days, 3)
	assert.Len(t, provider.archiveCalls, 1)

	// Second read is served from the cache
	provider.archiveCalls = nil
	days, err = svc.GetRange(context.Background(), "2026-01-10", "2026-01-12", "")
	require.NoError(t, err)
	assert.Len(t, days, 3)
	assert.Empty(t, provider.archiveCalls)
}

func TestSnapshotForMissingDay(t *testing.T) {
	repo := newFakeWeatherRepo()
	provider := &fakeProvider{err: errors.New("down")}
	today := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	svc := newTestService(repo, provider, today)

	_, err := svc.SnapshotFor(context.Background(), time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, weather.ErrNoData)
}

func TestSnapshotForSyncsThenReads(t *testing.T) {
	repo := newFakeWeatherRepo()
	provider := &fakeProvider{rowsFor: daysBetween}
	today := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	svc := newTestService(repo, provider, today)

	snap, err := svc.SnapshotFor(context.Background(), time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, snap.TempMin)
	assert.Equal(t, 5.0, *snap.TempMin)
	assert.Len(t, provider.forecastCalls, 1)
}
