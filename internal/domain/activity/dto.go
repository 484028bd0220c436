package activity

import (
	"strings"
	"time"

	"github.com/evidencija/attendance-backend-go/internal/pkg/validator"
)

type CreateActivityRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Date        string  `json:"date"`       // YYYY-MM-DD
	StartTime   string  `json:"start_time"` // RFC3339
	EndTime     string  `json:"end_time"`   // RFC3339
	UserID      string  `json:"user_id,omitempty"`
	Category    string  `json:"category,omitempty"`

	// Parsed by Validate
	ParsedDate  time.Time `json:"-"`
	ParsedStart time.Time `json:"-"`
	ParsedEnd   time.Time `json:"-"`
}

func (r *CreateActivityRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if day, ok := validator.IsValidDate(r.Date); ok {
		r.ParsedDate = day.UTC()
	} else {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be a valid YYYY-MM-DD day"})
	}

	if start, ok := validator.IsValidDateTime(r.StartTime); ok {
		r.ParsedStart = start.UTC()
	} else {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be an ISO-8601 timestamp"})
	}
	if end, ok := validator.IsValidDateTime(r.EndTime); ok {
		r.ParsedEnd = end.UTC()
	} else {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be an ISO-8601 timestamp"})
	}
	if !r.ParsedStart.IsZero() && !r.ParsedEnd.IsZero() && !r.ParsedEnd.After(r.ParsedStart) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be after start_time"})
	}

	if r.UserID != "" && !validator.IsValidUUID(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id must be a valid UUID"})
	}

	r.Category = strings.ToUpper(strings.TrimSpace(r.Category))
	if r.Category == "" {
		r.Category = string(CategoryWork)
	}
	if !validator.IsInSlice(r.Category, []string{string(CategoryWork), string(CategoryMeeting), string(CategoryPTO)}) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "category must be WORK, MEETING or PTO"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateActivityRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	StartTime   *string `json:"start_time,omitempty"`
	EndTime     *string `json:"end_time,omitempty"`
	UserID      *string `json:"user_id,omitempty"`

	ParsedDate  *time.Time `json:"-"`
	ParsedStart *time.Time `json:"-"`
	ParsedEnd   *time.Time `json:"-"`
}

func (r *UpdateActivityRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id must be a valid UUID"})
	}

	if r.Date != nil {
		if day, ok := validator.IsValidDate(*r.Date); ok {
			parsed := day.UTC()
			r.ParsedDate = &parsed
		} else {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be a valid YYYY-MM-DD day"})
		}
	}
	if r.StartTime != nil {
		if start, ok := validator.IsValidDateTime(*r.StartTime); ok {
			parsed := start.UTC()
			r.ParsedStart = &parsed
		} else {
			errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be an ISO-8601 timestamp"})
		}
	}
	if r.EndTime != nil {
		if end, ok := validator.IsValidDateTime(*r.EndTime); ok {
			parsed := end.UTC()
			r.ParsedEnd = &parsed
		} else {
			errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be an ISO-8601 timestamp"})
		}
	}
	if r.ParsedStart != nil && r.ParsedEnd != nil && !r.ParsedEnd.After(*r.ParsedStart) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be after start_time"})
	}
	if r.UserID != nil && !validator.IsValidUUID(*r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id must be a valid UUID"})
	}

	if r.Name == nil && r.Description == nil && r.Date == nil && r.StartTime == nil && r.EndTime == nil && r.UserID == nil {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "no fields provided for update"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter selects activities in a day range. UserID narrows to one owner;
// empty means every user the caller may see.
type ListFilter struct {
	From   string
	To     string
	UserID string
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.From) || validator.IsEmpty(f.To) {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "from and to are required (YYYY-MM-DD)"})
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
	if f.UserID != "" && !validator.IsValidUUID(f.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id must be a valid UUID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ActivityUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ActivityResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	Date        string        `json:"date"`
	StartTime   string        `json:"start_time"`
	EndTime     string        `json:"end_time"`
	Category    string        `json:"category"`
	CreatedAt   string        `json:"created_at"`
	User        *ActivityUser `json:"user,omitempty"`
}
