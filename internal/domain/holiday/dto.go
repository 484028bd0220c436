package holiday

import (
	"github.com/evidencija/attendance-backend-go/internal/pkg/validator"
)

// RangeFilter selects holidays for a day range. From/To empty means the
// current calendar year.
type RangeFilter struct {
	From    string
	To      string
	Country string
}

func (f *RangeFilter) Validate() error {
	var errs validator.ValidationErrors

	if (f.From == "") != (f.To == "") {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from and to must be provided together",
		})
	}
	if f.From != "" {
		if _, ok := validator.IsValidDate(f.From); !ok {
			errs = append(errs, validator.ValidationError{Field: "from", Message: "from must be a valid YYYY-MM-DD day"})
		}
	}
	if f.To != "" {
		if _, ok := validator.IsValidDate(f.To); !ok {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "to must be a valid YYYY-MM-DD day"})
		}
	}
	if f.From != "" && f.To != "" {
		fromDay, okFrom := validator.IsValidDate(f.From)
		toDay, okTo := validator.IsValidDate(f.To)
		if okFrom && okTo && toDay.Before(fromDay) {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "to must not be before from"})
		}
	}
	if f.Country != "" && len(f.Country) != 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "country",
			Message: "country must be a two letter ISO code",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SyncRequest struct {
	Year    int    `json:"year"`
	Country string `json:"country,omitempty"`
}

func (r *SyncRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 1000 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a four digit year",
		})
	}
	if r.Country != "" && len(r.Country) != 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "country",
			Message: "country must be a two letter ISO code",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	Country   string  `json:"country"`
	Name      string  `json:"name"`
	LocalName *string `json:"local_name,omitempty"`
	Source    string  `json:"source"`
}

type SyncResponse struct {
	Year    int `json:"year"`
	Fetched int `json:"fetched"`
	Synced  int `json:"synced"`
}
