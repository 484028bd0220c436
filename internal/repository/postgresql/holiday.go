package postgresql

import (
	"context"
	"time"

	"github.com/evidencija/attendance-backend-go/internal/domain/holiday"
	"github.com/evidencija/attendance-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Upsert implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Upsert(ctx context.Context, h holiday.Holiday) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, date, country_code, name, local_name, source)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (date, country_code, name) DO UPDATE
		SET local_name = EXCLUDED.local_name,
		    source = EXCLUDED.source,
		    updated_at = NOW()
		RETURNING (xmax = 0) AS inserted
	`

	if h.ID == "" {
		h.ID = newID()
	}

	var inserted bool
	err := q.QueryRow(ctx, query,
		h.ID, h.Date, h.CountryCode, h.Name, h.LocalName, h.Source,
	).Scan(&inserted)
	if err != nil {
		return false, err
	}
	return inserted, nil
}

// ListRange implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) ListRange(ctx context.Context, country string, from, toExclusive time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, country_code, name, local_name, source, created_at, updated_at
		FROM holidays
		WHERE country_code = $1 AND date >= $2 AND date < $3
		ORDER BY date, name
	`

	rows, err := q.Query(ctx, query, country, from, toExclusive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(
			&h.ID, &h.Date, &h.CountryCode, &h.Name, &h.LocalName, &h.Source,
			&h.CreatedAt, &h.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	return items, rows.Err()
}
