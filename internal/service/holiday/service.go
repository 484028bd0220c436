package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/evidencija/attendance-backend-go/internal/domain/holiday"
	"github.com/evidencija/attendance-backend-go/internal/pkg/daterange"
	"github.com/evidencija/attendance-backend-go/internal/pkg/nager"
)

// Provider is the slice of the Nager.Date client the service needs.
type Provider interface {
	PublicHolidays(ctx context.Context, year int, countryCode string) ([]nager.PublicHoliday, error)
}

type HolidayServiceImpl struct {
	repo           holiday.HolidayRepository
	provider       Provider
	defaultCountry string
	now            func() time.Time
}

func NewHolidayService(repo holiday.HolidayRepository, provider Provider, defaultCountry string) holiday.HolidayService {
	return &HolidayServiceImpl{
		repo:           repo,
		provider:       provider,
		defaultCountry: defaultCountry,
		now:            time.Now,
	}
}

func toResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:        h.ID,
		Date:      daterange.FormatDay(h.Date),
		Country:   h.CountryCode,
		Name:      h.Name,
		LocalName: h.LocalName,
		Source:    h.Source,
	}
}

// GetRange implements holiday.HolidayService. An empty window defaults to the
// current calendar year.
func (s *HolidayServiceImpl) GetRange(ctx context.Context, filter holiday.RangeFilter) ([]holiday.HolidayResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	country := filter.Country
	if country == "" {
		country = s.defaultCountry
	}

	var rng daterange.Range
	if filter.From == "" {
		year := s.now().UTC().Year()
		rng = daterange.Range{
			From:        time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC),
			ToExclusive: time.Date(year+1, 1, 1, 0, 0, 0, 0, time.UTC),
		}
	} else {
		var err error
		rng, err = daterange.Parse(filter.From, filter.To)
		if err != nil {
			return nil, err
		}
	}

	items, err := s.repo.ListRange(ctx, country, rng.From, rng.ToExclusive)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(items))
	for _, h := range items {
		responses = append(responses, toResponse(h))
	}
	return responses, nil
}

// Sync implements holiday.HolidayService.
func (s *HolidayServiceImpl) Sync(ctx context.Context, req holiday.SyncRequest) (holiday.SyncResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.SyncResponse{}, err
	}

	country := req.Country
	if country == "" {
		country = s.defaultCountry
	}

	fetched, err := s.provider.PublicHolidays(ctx, req.Year, country)
	if err != nil {
		return holiday.SyncResponse{}, fmt.Errorf("%w: %v", holiday.ErrUpstreamUnavailable, err)
	}

	resp := holiday.SyncResponse{Year: req.Year, Fetched: len(fetched)}
	for _, item := range fetched {
		day, err := daterange.ParseDay(item.Date)
		if err != nil {
			continue
		}
		var localName *string
		if item.LocalName != "" && item.LocalName != item.Name {
			localName = &item.LocalName
		}
		if _, err := s.repo.Upsert(ctx, holiday.Holiday{
			Date:        day,
			CountryCode: item.CountryCode,
			Name:        item.Name,
			LocalName:   localName,
			Source:      holiday.SourceNager,
		}); err != nil {
			return holiday.SyncResponse{}, fmt.Errorf("failed to upsert holiday: %w", err)
		}
		resp.Synced++
	}

	return resp, nil
}
