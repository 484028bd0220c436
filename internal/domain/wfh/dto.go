package wfh

import (
	"github.com/evidencija/attendance-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	// Date is optional; empty means "today". YYYY-MM-DD.
	Date   string `json:"date,omitempty"`
	Reason string `json:"reason,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be a valid YYYY-MM-DD day",
			})
		}
	}
	if len(r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must be at most 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideRequest struct {
	Status string `json:"status"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be APPROVED or REJECTED",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows the request listing. Status empty means all statuses.
type ListFilter struct {
	UserID string
	Status string
	From   string
	To     string
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.UserID != "" && f.UserID != "ALL" && !validator.IsValidUUID(f.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid UUID or ALL",
		})
	}
	if f.Status != "" && !validator.IsInSlice(f.Status, []string{
		string(StatusPending), string(StatusApproved), string(StatusRejected),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of PENDING, APPROVED, REJECTED",
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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestUser struct {
	ID        string `json:"id"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type WeatherSnapshot struct {
	TempMin     *float64 `json:"temperature_min"`
	PrecipSum   *float64 `json:"precipitation_sum"`
	WindMax     *float64 `json:"wind_speed_max"`
	WeatherCode *int     `json:"weather_code"`
}

type RequestResponse struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Status    string          `json:"status"`
	Reason    *string         `json:"reason"`
	Weather   WeatherSnapshot `json:"weather"`
	User      RequestUser     `json:"user"`
	DecidedBy *RequestUser    `json:"decided_by,omitempty"`
	DecidedAt *string         `json:"decided_at,omitempty"`
	CreatedAt string          `json:"created_at"`
}

type CreateResponse struct {
	Outcome string          `json:"outcome"`
	Request RequestResponse `json:"request"`
}
