package weather

import "errors"

var (
	// ErrNoData means no snapshot has been synced for the requested day yet.
	// Distinct from "conditions not met": the weather is unknown, not fine.
	ErrNoData = errors.New("no weather data synced for this date")

	ErrSyncFailed = errors.New("weather provider fetch failed")
)
