package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access for public holiday rows.
type HolidayRepository interface {
	// Upsert inserts or refreshes a row keyed by (date, country_code, name),
	// returning true when a new row was inserted.
	Upsert(ctx context.Context, h Holiday) (bool, error)

	// ListRange retrieves rows for [from, toExclusive) in a country, ascending
	// by date.
	ListRange(ctx context.Context, country string, from, toExclusive time.Time) ([]Holiday, error)
}

// HolidayService defines business logic for holiday lookups and sync.
type HolidayService interface {
	// GetRange returns stored holidays for the filter window.
	GetRange(ctx context.Context, filter RangeFilter) ([]HolidayResponse, error)

	// Sync fetches a year's holidays from the upstream provider and upserts
	// them. Upstream failures surface as ErrUpstreamUnavailable.
	Sync(ctx context.Context, req SyncRequest) (SyncResponse, error)
}
