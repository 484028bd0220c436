package postgresql

import (
	"context"
	"time"

	"github.com/evidencija/attendance-backend-go/internal/domain/weather"
	"github.com/evidencija/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type weatherRepositoryImpl struct {
	db *database.DB
}

func NewWeatherRepository(db *database.DB) weather.WeatherRepository {
	return &weatherRepositoryImpl{db: db}
}

const weatherColumns = `id, location_key, date, temp_max, temp_min, precip_sum, wind_max, weather_code, created_at, updated_at`

func scanWeather(row interface{ Scan(dest ...any) error }) (weather.Daily, error) {
	var d weather.Daily
	err := row.Scan(
		&d.ID,
		&d.LocationKey,
		&d.Date,
		&d.TempMax,
		&d.TempMin,
		&d.PrecipSum,
		&d.WindMax,
		&d.WeatherCode,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	return d, err
}

// Upsert implements weather.WeatherRepository.
func (r *weatherRepositoryImpl) Upsert(ctx context.Context, d weather.Daily) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO weather (id, location_key, date, temp_max, temp_min, precip_sum, wind_max, weather_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (location_key, date) DO UPDATE
		SET temp_max = EXCLUDED.temp_max,
		    temp_min = EXCLUDED.temp_min,
		    precip_sum = EXCLUDED.precip_sum,
		    wind_max = EXCLUDED.wind_max,
		    weather_code = EXCLUDED.weather_code,
		    updated_at = NOW()
	`

	if d.ID == "" {
		d.ID = newID()
	}

	_, err := q.Exec(ctx, query,
		d.ID, d.LocationKey, d.Date,
		d.TempMax, d.TempMin, d.PrecipSum, d.WindMax, d.WeatherCode,
	)
	return err
}

// GetByDate implements weather.WeatherRepository.
func (r *weatherRepositoryImpl) GetByDate(ctx context.Context, locationKey string, date time.Time) (*weather.Daily, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + weatherColumns + ` FROM weather WHERE location_key = $1 AND date = $2`

	d, err := scanWeather(q.QueryRow(ctx, query, locationKey, date))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListRange implements weather.WeatherRepository.
func (r *weatherRepositoryImpl) ListRange(ctx context.Context, locationKey string, from, toExclusive time.Time) ([]weather.Daily, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + weatherColumns + `
		FROM weather
		WHERE location_key = $1 AND date >= $2 AND date < $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, locationKey, from, toExclusive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []weather.Daily
	for rows.Next() {
		d, err := scanWeather(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}
