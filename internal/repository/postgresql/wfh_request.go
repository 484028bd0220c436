package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/evidencija/attendance-backend-go/internal/domain/wfh"
	"github.com/evidencija/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type wfhRepositoryImpl struct {
	db *database.DB
}

func NewWfhRepository(db *database.DB) wfh.WfhRepository {
	return &wfhRepositoryImpl{db: db}
}

const wfhColumns = `w.id, w.user_id, w.date, w.status, w.reason, w.temp_min, w.precip_sum, w.wind_max, w.weather_code, w.decided_by, w.decided_at, w.created_at, w.updated_at`

func scanWfh(row interface{ Scan(dest ...any) error }, withJoins bool) (wfh.Request, error) {
	var req wfh.Request
	dest := []any{
		&req.ID,
		&req.UserID,
		&req.Date,
		&req.Status,
		&req.Reason,
		&req.TempMin,
		&req.PrecipSum,
		&req.WindMax,
		&req.WeatherCode,
		&req.DecidedBy,
		&req.DecidedAt,
		&req.CreatedAt,
		&req.UpdatedAt,
	}
	if withJoins {
		dest = append(dest,
			&req.UserEmail, &req.UserFirstName, &req.UserLastName,
			&req.DeciderEmail, &req.DeciderFirstName, &req.DeciderLastName,
		)
	}
	err := row.Scan(dest...)
	return req, err
}

// Create implements wfh.WfhRepository.
func (r *wfhRepositoryImpl) Create(ctx context.Context, req wfh.Request) (wfh.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO wfh_requests AS w (id, user_id, date, status, reason, temp_min, precip_sum, wind_max, weather_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + wfhColumns

	if req.ID == "" {
		req.ID = newID()
	}

	return scanWfh(q.QueryRow(ctx, query,
		req.ID,
		req.UserID,
		req.Date,
		req.Status,
		req.Reason,
		req.TempMin,
		req.PrecipSum,
		req.WindMax,
		req.WeatherCode,
	), false)
}

// GetByUserAndDate implements wfh.WfhRepository.
func (r *wfhRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*wfh.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + wfhColumns + ` FROM wfh_requests w WHERE w.user_id = $1 AND w.date = $2`

	req, err := scanWfh(q.QueryRow(ctx, query, userID, date), false)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetByID implements wfh.WfhRepository.
func (r *wfhRepositoryImpl) GetByID(ctx context.Context, id string) (wfh.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + wfhColumns + `,
		       u.email, u.first_name, u.last_name,
		       d.email, d.first_name, d.last_name
		FROM wfh_requests w
		JOIN users u ON u.id = w.user_id
		LEFT JOIN users d ON d.id = w.decided_by
		WHERE w.id = $1
	`

	return scanWfh(q.QueryRow(ctx, query, id), true)
}

// UpdatePending implements wfh.WfhRepository.
func (r *wfhRepositoryImpl) UpdatePending(ctx context.Context, req wfh.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE wfh_requests
		SET reason = $1, temp_min = $2, precip_sum = $3, wind_max = $4, weather_code = $5, updated_at = NOW()
		WHERE id = $6 AND status = $7
	`
	_, err := q.Exec(ctx, query,
		req.Reason, req.TempMin, req.PrecipSum, req.WindMax, req.WeatherCode,
		req.ID, wfh.StatusPending,
	)
	return err
}

// Decide implements wfh.WfhRepository.
func (r *wfhRepositoryImpl) Decide(ctx context.Context, id string, status wfh.Status, deciderID string, decidedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE wfh_requests
		SET status = $1, decided_by = $2, decided_at = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
	`
	tag, err := q.Exec(ctx, query, status, deciderID, decidedAt, id, wfh.StatusPending)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// Either missing or already decided; the caller distinguishes by re-reading.
		return pgx.ErrNoRows
	}
	return nil
}

// List implements wfh.WfhRepository.
func (r *wfhRepositoryImpl) List(ctx context.Context, userID, status string, from, toExclusive *time.Time) ([]wfh.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + wfhColumns + `,
		       u.email, u.first_name, u.last_name,
		       d.email, d.first_name, d.last_name
		FROM wfh_requests w
		JOIN users u ON u.id = w.user_id
		LEFT JOIN users d ON d.id = w.decided_by
		WHERE 1=1
	`
	args := []interface{}{}
	argPos := 1

	if userID != "" {
		query += fmt.Sprintf(` AND w.user_id = $%d`, argPos)
		args = append(args, userID)
		argPos++
	}
	if status != "" {
		query += fmt.Sprintf(` AND w.status = $%d`, argPos)
		args = append(args, status)
		argPos++
	}
	if from != nil {
		query += fmt.Sprintf(` AND w.date >= $%d`, argPos)
		args = append(args, *from)
		argPos++
	}
	if toExclusive != nil {
		query += fmt.Sprintf(` AND w.date < $%d`, argPos)
		args = append(args, *toExclusive)
		argPos++
	}

	query += ` ORDER BY w.date DESC, w.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []wfh.Request
	for rows.Next() {
		req, err := scanWfh(rows, true)
		if err != nil {
			return nil, err
		}
		items = append(items, req)
	}
	return items, rows.Err()
}
