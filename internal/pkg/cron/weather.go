package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/evidencija/attendance-backend-go/internal/domain/weather"
	"github.com/evidencija/attendance-backend-go/internal/pkg/daterange"
)

// WeatherJobs keeps the daily weather cache warm so the work-from-home
// eligibility check rarely has to sync inline.
type WeatherJobs struct {
	weatherSvc weather.WeatherService
	pastDays   int
	aheadDays  int
}

func NewWeatherJobs(weatherSvc weather.WeatherService, pastDays, aheadDays int) *WeatherJobs {
	if pastDays <= 0 {
		pastDays = 7
	}
	if aheadDays <= 0 {
		aheadDays = 3
	}
	return &WeatherJobs{
		weatherSvc: weatherSvc,
		pastDays:   pastDays,
		aheadDays:  aheadDays,
	}
}

func (j *WeatherJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("refresh_weather_cache", 6*time.Hour, j.RefreshWeatherCache)
}

// RefreshWeatherCache syncs a sliding window around today.
func (j *WeatherJobs) RefreshWeatherCache(ctx context.Context) error {
	today := daterange.Today()
	from := daterange.FormatDay(daterange.AddDays(today, -j.pastDays))
	to := daterange.FormatDay(daterange.AddDays(today, j.aheadDays))

	result, err := j.weatherSvc.Sync(ctx, from, to)
	if err != nil {
		return fmt.Errorf("failed to refresh weather cache: %w", err)
	}

	slog.Info("Cron: Weather cache refreshed",
		"from", from, "to", to, "upserted", result.Upserted)
	return nil
}
