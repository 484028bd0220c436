package attendance

import (
	"github.com/evidencija/attendance-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	// Date is optional; empty means "today". YYYY-MM-DD.
	Date string `json:"date,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be a valid YYYY-MM-DD day",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	Date string `json:"date,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be a valid YYYY-MM-DD day",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RangeFilter selects a day range for a target user. From/To empty means the
// default window (last 30 days up to today, UTC).
type RangeFilter struct {
	UserID string
	From   string
	To     string
}

func (f *RangeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.UserID != "" && !validator.IsValidUUID(f.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid UUID",
		})
	}
	if (f.From == "") != (f.To == "") {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from and to must be provided together",
		})
	}
	if f.From != "" {
		if _, ok := validator.IsValidDate(f.From); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be a valid YYYY-MM-DD day",
			})
		}
	}
	if f.To != "" {
		if _, ok := validator.IsValidDate(f.To); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be a valid YYYY-MM-DD day",
			})
		}
	}
	if f.From != "" && f.To != "" {
		fromDay, okFrom := validator.IsValidDate(f.From)
		toDay, okTo := validator.IsValidDate(f.To)
		if okFrom && okTo && toDay.Before(fromDay) {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must not be before from",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DayRecord is one calendar day in a gap-filled range response. Synthesized
// days (no stored row) carry a nil ID, ABSENT status and nil timestamps.
type DayRecord struct {
	ID               *string `json:"id"`
	Date             string  `json:"date"`
	StartTime        *string `json:"start_time"`
	EndTime          *string `json:"end_time"`
	TotalWorkMinutes *int    `json:"total_work_minutes"`
	UserID           string  `json:"user_id"`
	Status           string  `json:"status"`
}

type RangeResponse struct {
	UserID string      `json:"user_id"`
	From   string      `json:"from"`
	To     string      `json:"to"`
	Items  []DayRecord `json:"items"`
}

type AttendanceResponse struct {
	ID               string  `json:"id"`
	Date             string  `json:"date"`
	StartTime        *string `json:"start_time"`
	EndTime          *string `json:"end_time"`
	TotalWorkMinutes *int    `json:"total_work_minutes"`
	Status           string  `json:"status"`
}

// StatsScope describes whose rows a stats aggregation covered.
type StatsScope struct {
	Type   string `json:"type"` // USER | ALL
	UserID string `json:"user_id,omitempty"`
}

type MonthBucket struct {
	Month   string `json:"month"` // YYYY-MM
	Present int    `json:"PRESENT"`
	Late    int    `json:"LATE"`
	Absent  int    `json:"ABSENT"`
}

type StatsResponse struct {
	From   string         `json:"from"`
	To     string         `json:"to"`
	Scope  StatsScope     `json:"scope"`
	Totals map[string]int `json:"totals"`
	Months []MonthBucket  `json:"months"`
}

// StatsFilter selects rows for aggregation. UserID "ALL" widens the scope for
// managers and admins.
type StatsFilter struct {
	UserID string
	From   string
	To     string
}

func (f *StatsFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.From) || validator.IsEmpty(f.To) {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from and to are required (YYYY-MM-DD)",
		})
	} else {
		fromDay, okFrom := validator.IsValidDate(f.From)
		toDay, okTo := validator.IsValidDate(f.To)
		if !okFrom {
			errs = append(errs, validator.ValidationError{Field: "from", Message: "from must be a valid YYYY-MM-DD day"})
		}
		if !okTo {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "to must be a valid YYYY-MM-DD day"})
		}
		if okFrom && okTo && toDay.Before(fromDay) {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "to must not be before from"})
		}
	}
	if f.UserID != "" && f.UserID != "ALL" && !validator.IsValidUUID(f.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid UUID or ALL",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
