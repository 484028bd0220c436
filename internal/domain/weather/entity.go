package weather

import "time"

// Daily is one cached weather row per (location, UTC calendar day), populated
// by syncing from Open-Meteo. Nil fields mean the upstream had no value.
type Daily struct {
	ID          string
	LocationKey string
	Date        time.Time // UTC midnight
	TempMax     *float64
	TempMin     *float64
	PrecipSum   *float64
	WindMax     *float64
	WeatherCode *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Snapshot is the subset of a Daily row the WFH eligibility predicate reads.
type Snapshot struct {
	TempMin     *float64
	PrecipSum   *float64
	WindMax     *float64
	WeatherCode *int
}

func (d Daily) Snapshot() Snapshot {
	return Snapshot{
		TempMin:     d.TempMin,
		PrecipSum:   d.PrecipSum,
		WindMax:     d.WindMax,
		WeatherCode: d.WeatherCode,
	}
}
