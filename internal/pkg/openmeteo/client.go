package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultForecastBaseURL = "https://api.open-meteo.com/v1/forecast"
	defaultArchiveBaseURL  = "https://archive-api.open-meteo.com/v1/archive"

	dailyFields = "temperature_2m_max,temperature_2m_min,precipitation_sum,wind_speed_10m_max,weathercode"
)

// DailyRow is one day of provider data. Nil fields mean the provider returned
// null for that metric.
type DailyRow struct {
	Day         string // YYYY-MM-DD
	TempMax     *float64
	TempMin     *float64
	PrecipSum   *float64
	WindMax     *float64
	WeatherCode *int
}

// Client fetches daily weather from the Open-Meteo APIs. Past days come from
// the archive endpoint, today and future days from the forecast endpoint.
type Client struct {
	httpClient      *http.Client
	forecastBaseURL string
	archiveBaseURL  string
	latitude        float64
	longitude       float64
	timezone        string
}

type Option func(*Client)

// WithBaseURLs overrides the endpoint URLs, for tests.
func WithBaseURLs(forecastURL, archiveURL string) Option {
	return func(c *Client) {
		c.forecastBaseURL = forecastURL
		c.archiveBaseURL = archiveURL
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(latitude, longitude float64, timezone string, opts ...Option) *Client {
	c := &Client{
		httpClient:      &http.Client{Timeout: 15 * time.Second},
		forecastBaseURL: defaultForecastBaseURL,
		archiveBaseURL:  defaultArchiveBaseURL,
		latitude:        latitude,
		longitude:       longitude,
		timezone:        timezone,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type dailyPayload struct {
	Daily struct {
		Time             []string   `json:"time"`
		TemperatureMax   []*float64 `json:"temperature_2m_max"`
		TemperatureMin   []*float64 `json:"temperature_2m_min"`
		PrecipitationSum []*float64 `json:"precipitation_sum"`
		WindSpeedMax     []*float64 `json:"wind_speed_10m_max"`
		WeatherCode      []*int     `json:"weathercode"`
	} `json:"daily"`
}

// FetchArchive fetches daily rows for past days in [from, to], inclusive,
// both formatted YYYY-MM-DD.
func (c *Client) FetchArchive(ctx context.Context, from, to string) ([]DailyRow, error) {
	return c.fetch(ctx, c.archiveBaseURL, from, to)
}

// FetchForecast fetches daily rows for today and future days in [from, to].
func (c *Client) FetchForecast(ctx context.Context, from, to string) ([]DailyRow, error) {
	return c.fetch(ctx, c.forecastBaseURL, from, to)
}

func (c *Client) fetch(ctx context.Context, baseURL, from, to string) ([]DailyRow, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%g", c.latitude))
	q.Set("longitude", fmt.Sprintf("%g", c.longitude))
	q.Set("daily", dailyFields)
	q.Set("timezone", c.timezone)
	q.Set("start_date", from)
	q.Set("end_date", to)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("open-meteo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open-meteo returned status %d", resp.StatusCode)
	}

	var payload dailyPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode open-meteo response: %w", err)
	}

	rows := make([]DailyRow, 0, len(payload.Daily.Time))
	for i, day := range payload.Daily.Time {
		row := DailyRow{Day: day}
		if i < len(payload.Daily.TemperatureMax) {
			row.TempMax = payload.Daily.TemperatureMax[i]
		}
		if i < len(payload.Daily.TemperatureMin) {
			row.TempMin = payload.Daily.TemperatureMin[i]
		}
		if i < len(payload.Daily.PrecipitationSum) {
			row.PrecipSum = payload.Daily.PrecipitationSum[i]
		}
		if i < len(payload.Daily.WindSpeedMax) {
			row.WindMax = payload.Daily.WindSpeedMax[i]
		}
		if i < len(payload.Daily.WeatherCode) {
			row.WeatherCode = payload.Daily.WeatherCode[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
