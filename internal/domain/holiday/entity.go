package holiday

import "time"

// Holiday is one public holiday row, synced from the Nager.Date API. The
// (date, country_code, name) triple is unique in storage so regional variants
// sharing a date survive side by side.
type Holiday struct {
	ID          string
	Date        time.Time // UTC midnight
	CountryCode string
	Name        string
	LocalName   *string
	Source      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const SourceNager = "nager"
