package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/evidencija/attendance-backend-go/internal/domain/holiday"
)

// HolidayJobs keeps the public holiday table synced for the current year.
type HolidayJobs struct {
	holidaySvc holiday.HolidayService
	country    string
}

func NewHolidayJobs(holidaySvc holiday.HolidayService, country string) *HolidayJobs {
	return &HolidayJobs{
		holidaySvc: holidaySvc,
		country:    country,
	}
}

func (j *HolidayJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("sync_public_holidays", 24*time.Hour, j.SyncPublicHolidays)
}

// SyncPublicHolidays refreshes the current year, and near year end also the
// next one so January queries never hit an empty table.
func (j *HolidayJobs) SyncPublicHolidays(ctx context.Context) error {
	now := time.Now().UTC()
	years := []int{now.Year()}
	if now.Month() == time.December {
		years = append(years, now.Year()+1)
	}

	for _, year := range years {
		result, err := j.holidaySvc.Sync(ctx, holiday.SyncRequest{Year: year, Country: j.country})
		if err != nil {
			return fmt.Errorf("failed to sync holidays for %d: %w", year, err)
		}
		slog.Info("Cron: Public holidays synced",
			"year", year, "country", j.country, "synced", result.Synced)
	}
	return nil
}
