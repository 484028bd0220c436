package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/evidencija/attendance-backend-go/internal/domain/weather"
	"github.com/evidencija/attendance-backend-go/internal/pkg/daterange"
	"github.com/evidencija/attendance-backend-go/internal/pkg/openmeteo"
)

// Provider is the slice of the Open-Meteo client the service needs.
type Provider interface {
	FetchArchive(ctx context.Context, from, to string) ([]openmeteo.DailyRow, error)
	FetchForecast(ctx context.Context, from, to string) ([]openmeteo.DailyRow, error)
}

type WeatherServiceImpl struct {
	repo        weather.WeatherRepository
	provider    Provider
	locationKey string
	now         func() time.Time
}

func NewWeatherService(repo weather.WeatherRepository, provider Provider, locationKey string) weather.WeatherService {
	return &WeatherServiceImpl{
		repo:        repo,
		provider:    provider,
		locationKey: locationKey,
		now:         time.Now,
	}
}

func toDayResponse(d weather.Daily) weather.DayResponse {
	return weather.DayResponse{
		Date:        daterange.FormatDay(d.Date),
		TempMax:     d.TempMax,
		TempMin:     d.TempMin,
		PrecipSum:   d.PrecipSum,
		WindMax:     d.WindMax,
		WeatherCode: d.WeatherCode,
	}
}

// fetch splits [rng.From, rng.To()] across the archive and forecast endpoints.
// Days strictly before today come from the archive; today and later from the
// forecast.
func (s *WeatherServiceImpl) fetch(ctx context.Context, rng daterange.Range) ([]openmeteo.DailyRow, error) {
	today := daterange.Truncate(s.now())
	var rows []openmeteo.DailyRow

	if rng.From.Before(today) {
		archiveTo := rng.To()
		if !archiveTo.Before(today) {
			archiveTo = daterange.AddDays(today, -1)
		}
		past, err := s.provider.FetchArchive(ctx, daterange.FormatDay(rng.From), daterange.FormatDay(archiveTo))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", weather.ErrSyncFailed, err)
		}
		rows = append(rows, past...)
	}

	if !rng.To().Before(today) {
		forecastFrom := rng.From
		if forecastFrom.Before(today) {
			forecastFrom = today
		}
		future, err := s.provider.FetchForecast(ctx, daterange.FormatDay(forecastFrom), daterange.FormatDay(rng.To()))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", weather.ErrSyncFailed, err)
		}
		rows = append(rows, future...)
	}

	return rows, nil
}

// Sync implements weather.WeatherService.
func (s *WeatherServiceImpl) Sync(ctx context.Context, from, to string) (weather.SyncResult, error) {
	rng, err := daterange.Parse(from, to)
	if err != nil {
		return weather.SyncResult{}, err
	}

	rows, err := s.fetch(ctx, rng)
	if err != nil {
		return weather.SyncResult{}, err
	}

	result := weather.SyncResult{LocationKey: s.locationKey}
	for _, row := range rows {
		day, err := daterange.ParseDay(row.Day)
		if err != nil {
			continue
		}
		err = s.repo.Upsert(ctx, weather.Daily{
			LocationKey: s.locationKey,
			Date:        day,
			TempMax:     row.TempMax,
			TempMin:     row.TempMin,
			PrecipSum:   row.PrecipSum,
			WindMax:     row.WindMax,
			WeatherCode: row.WeatherCode,
		})
		if err != nil {
			return weather.SyncResult{}, fmt.Errorf("failed to upsert weather row: %w", err)
		}
		result.Upserted++
	}

	return result, nil
}

// GetRange implements weather.WeatherService. When the cache holds fewer rows
// than the range has days, the range is synced once and re-read.
func (s *WeatherServiceImpl) GetRange(ctx context.Context, from, to, locationKey string) ([]weather.DayResponse, error) {
	if locationKey == "" {
		locationKey = s.locationKey
	}

	rng, err := daterange.Parse(from, to)
	if err != nil {
		return nil, err
	}

	cached, err := s.repo.ListRange(ctx, locationKey, rng.From, rng.ToExclusive)
	if err != nil {
		return nil, fmt.Errorf("failed to read weather cache: %w", err)
	}

	if len(cached) < rng.Days() && locationKey == s.locationKey {
		if _, err := s.Sync(ctx, from, to); err != nil {
			return nil, err
		}
		cached, err = s.repo.ListRange(ctx, locationKey, rng.From, rng.ToExclusive)
		if err != nil {
			return nil, fmt.Errorf("failed to re-read weather cache: %w", err)
		}
	}

	responses := make([]weather.DayResponse, 0, len(cached))
	for _, d := range cached {
		responses = append(responses, toDayResponse(d))
	}
	return responses, nil
}

// SnapshotFor implements weather.WeatherService. A miss syncs the single day
// before giving up with ErrNoData.
func (s *WeatherServiceImpl) SnapshotFor(ctx context.Context, date time.Time) (weather.Snapshot, error) {
	day := daterange.Truncate(date)

	row, err := s.repo.GetByDate(ctx, s.locationKey, day)
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("failed to read weather cache: %w", err)
	}
	if row == nil {
		dayStr := daterange.FormatDay(day)
		if _, syncErr := s.Sync(ctx, dayStr, dayStr); syncErr != nil {
			return weather.Snapshot{}, weather.ErrNoData
		}
		row, err = s.repo.GetByDate(ctx, s.locationKey, day)
		if err != nil {
			return weather.Snapshot{}, fmt.Errorf("failed to re-read weather cache: %w", err)
		}
		if row == nil {
			return weather.Snapshot{}, weather.ErrNoData
		}
	}

	return row.Snapshot(), nil
}
