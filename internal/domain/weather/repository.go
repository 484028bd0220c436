package weather

import (
	"context"
	"time"
)

// WeatherRepository defines data access for the daily weather cache.
type WeatherRepository interface {
	// Upsert inserts or refreshes the row for (locationKey, date).
	Upsert(ctx context.Context, d Daily) error

	// GetByDate returns nil (not an error) when no row exists for the day.
	GetByDate(ctx context.Context, locationKey string, date time.Time) (*Daily, error)

	// ListRange retrieves cached rows for [from, toExclusive), ascending by date.
	ListRange(ctx context.Context, locationKey string, from, toExclusive time.Time) ([]Daily, error)
}

type DayResponse struct {
	Date        string   `json:"date"`
	TempMax     *float64 `json:"temp_max"`
	TempMin     *float64 `json:"temp_min"`
	PrecipSum   *float64 `json:"precip_sum"`
	WindMax     *float64 `json:"wind_max"`
	WeatherCode *int     `json:"weather_code"`
}

type SyncResult struct {
	Upserted    int    `json:"upserted"`
	LocationKey string `json:"location_key"`
}

// WeatherService defines weather cache operations.
type WeatherService interface {
	// GetRange reads the cache, syncing missing days from the provider first.
	GetRange(ctx context.Context, from, to, locationKey string) ([]DayResponse, error)

	// Sync pulls the provider for [from, to] and upserts every returned day.
	Sync(ctx context.Context, from, to string) (SyncResult, error)

	// SnapshotFor returns the cached snapshot for a single day, or ErrNoData.
	SnapshotFor(ctx context.Context, date time.Time) (Snapshot, error)
}
