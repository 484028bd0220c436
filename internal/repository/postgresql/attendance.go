package postgresql

import (
	"context"
	"time"

	"github.com/evidencija/attendance-backend-go/internal/domain/attendance"
	"github.com/evidencija/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, user_id, date, start_time, end_time, total_work_minutes, status, created_at, updated_at`

func scanAttendance(row interface{ Scan(dest ...any) error }) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Date,
		&a.StartTime,
		&a.EndTime,
		&a.TotalWorkMinutes,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, user_id, date, start_time, end_time, total_work_minutes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + attendanceColumns

	if att.ID == "" {
		att.ID = newID()
	}

	return scanAttendance(q.QueryRow(ctx, query,
		att.ID,
		att.UserID,
		att.Date,
		att.StartTime,
		att.EndTime,
		att.TotalWorkMinutes,
		att.Status,
	))
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE user_id = $1 AND date = $2`

	a, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET start_time = $1, end_time = $2, total_work_minutes = $3, status = $4, updated_at = NOW()
		WHERE id = $5
	`
	_, err := q.Exec(ctx, query, att.StartTime, att.EndTime, att.TotalWorkMinutes, att.Status, att.ID)
	return err
}

// ListRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListRange(ctx context.Context, userID string, from, toExclusive time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, userID, from, toExclusive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// ListRangeAll implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListRangeAll(ctx context.Context, from, toExclusive time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE date >= $1 AND date < $2
		ORDER BY date, user_id
	`

	rows, err := q.Query(ctx, query, from, toExclusive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendances(rows)
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var items []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
