package attendance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/evidencija/attendance-backend-go/internal/domain/attendance"
	"github.com/evidencija/attendance-backend-go/internal/domain/user"
	"github.com/evidencija/attendance-backend-go/internal/pkg/daterange"
	"github.com/evidencija/attendance-backend-go/internal/pkg/jwt"
)

// defaultRangeDays is the window returned when no from/to is given.
const defaultRangeDays = 30

type AttendanceServiceImpl struct {
	repo attendance.AttendanceRepository
	loc  *time.Location
	now  func() time.Time
}

// NewAttendanceService builds the service. loc is the office wall-clock zone
// used for lateness classification; range membership always uses UTC days.
func NewAttendanceService(repo attendance.AttendanceRepository, loc *time.Location) attendance.AttendanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceServiceImpl{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

// isLate classifies a check-in moment against the 10:00 local cutoff.
// Exactly 10:00:00 is on time; any later minute is late.
func (s *AttendanceServiceImpl) isLate(t time.Time) bool {
	local := t.In(s.loc)
	return local.Hour() > 10 || (local.Hour() == 10 && local.Minute() > 0)
}

// workMinutes computes the stored duration: minutes between the two instants,
// rounded half up, clamped at zero.
func workMinutes(start, end time.Time) int {
	ms := end.Sub(start).Milliseconds()
	if ms < 0 {
		return 0
	}
	return int(float64(ms)/60000.0 + 0.5)
}

func (s *AttendanceServiceImpl) resolveDay(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return daterange.Truncate(s.now()), nil
	}
	return daterange.ParseDay(dateStr)
}

func toResponse(a attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:               a.ID,
		Date:             daterange.FormatDay(a.Date),
		StartTime:        formatTimePtr(a.StartTime),
		EndTime:          formatTimePtr(a.EndTime),
		TotalWorkMinutes: a.TotalWorkMinutes,
		Status:           string(a.Status),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	day, err := s.resolveDay(req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	existing, err := s.repo.GetByUserAndDate(ctx, caller.UserID, day)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	now := s.now().UTC()
	status := attendance.StatusPresent
	if s.isLate(now) {
		status = attendance.StatusLate
	}

	created, err := s.repo.Create(ctx, attendance.Attendance{
		UserID:    caller.UserID,
		Date:      day,
		StartTime: &now,
		Status:    status,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return toResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	day, err := s.resolveDay(req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	existing, err := s.repo.GetByUserAndDate(ctx, caller.UserID, day)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if existing == nil || existing.StartTime == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if existing.EndTime != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	now := s.now().UTC()
	minutes := workMinutes(*existing.StartTime, now)
	existing.EndTime = &now
	existing.TotalWorkMinutes = &minutes

	if err := s.repo.Update(ctx, *existing); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return toResponse(*existing), nil
}

func (s *AttendanceServiceImpl) resolveRange(from, to string) (daterange.Range, error) {
	if from == "" && to == "" {
		today := daterange.Truncate(s.now())
		return daterange.Range{
			From:        daterange.AddDays(today, -(defaultRangeDays - 1)),
			ToExclusive: daterange.AddDays(today, 1),
		}, nil
	}
	return daterange.Parse(from, to)
}

// GetRange implements attendance.AttendanceService. Stored rows are merged
// with synthesized ABSENT days so the response covers every day of the range.
func (s *AttendanceServiceImpl) GetRange(ctx context.Context, filter attendance.RangeFilter) (attendance.RangeResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return attendance.RangeResponse{}, err
	}
	if err := filter.Validate(); err != nil {
		return attendance.RangeResponse{}, err
	}

	targetID, err := user.ResolveAccessScope(caller.UserID, caller.Role, filter.UserID)
	if err != nil {
		return attendance.RangeResponse{}, err
	}

	rng, err := s.resolveRange(filter.From, filter.To)
	if err != nil {
		return attendance.RangeResponse{}, err
	}

	stored, err := s.repo.ListRange(ctx, targetID, rng.From, rng.ToExclusive)
	if err != nil {
		return attendance.RangeResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	byDay := make(map[string]attendance.Attendance, len(stored))
	for _, a := range stored {
		byDay[daterange.FormatDay(a.Date)] = a
	}

	items := make([]attendance.DayRecord, 0, rng.Days())
	for day := rng.From; day.Before(rng.ToExclusive); day = daterange.AddDays(day, 1) {
		key := daterange.FormatDay(day)
		if a, ok := byDay[key]; ok {
			id := a.ID
			items = append(items, attendance.DayRecord{
				ID:               &id,
				Date:             key,
				StartTime:        formatTimePtr(a.StartTime),
				EndTime:          formatTimePtr(a.EndTime),
				TotalWorkMinutes: a.TotalWorkMinutes,
				UserID:           a.UserID,
				Status:           string(a.Status),
			})
			continue
		}
		// No stored row: the day reads as ABSENT without writing anything.
		items = append(items, attendance.DayRecord{
			Date:   key,
			UserID: targetID,
			Status: string(attendance.StatusAbsent),
		})
	}

	return attendance.RangeResponse{
		UserID: targetID,
		From:   daterange.FormatDay(rng.From),
		To:     daterange.FormatDay(rng.To()),
		Items:  items,
	}, nil
}

// GetStats implements attendance.AttendanceService. Aggregation covers stored
// rows only; synthesized absences never enter the counts.
func (s *AttendanceServiceImpl) GetStats(ctx context.Context, filter attendance.StatsFilter) (attendance.StatsResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return attendance.StatsResponse{}, err
	}
	if err := filter.Validate(); err != nil {
		return attendance.StatsResponse{}, err
	}

	rng, err := daterange.Parse(filter.From, filter.To)
	if err != nil {
		return attendance.StatsResponse{}, err
	}

	var rows []attendance.Attendance
	scope := attendance.StatsScope{Type: "USER"}

	if filter.UserID == "ALL" {
		if caller.Role != user.RoleAdmin && caller.Role != user.RoleManager {
			return attendance.StatsResponse{}, user.ErrManagerAccessRequired
		}
		scope.Type = "ALL"
		rows, err = s.repo.ListRangeAll(ctx, rng.From, rng.ToExclusive)
	} else {
		var targetID string
		targetID, err = user.ResolveAccessScope(caller.UserID, caller.Role, filter.UserID)
		if err != nil {
			return attendance.StatsResponse{}, err
		}
		scope.UserID = targetID
		rows, err = s.repo.ListRange(ctx, targetID, rng.From, rng.ToExclusive)
	}
	if err != nil {
		return attendance.StatsResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	totals := map[string]int{
		string(attendance.StatusPresent): 0,
		string(attendance.StatusLate):    0,
		string(attendance.StatusAbsent):  0,
	}
	byMonth := make(map[string]*attendance.MonthBucket)

	for _, a := range rows {
		status := string(a.Status)
		totals[status]++

		month := a.Date.UTC().Format("2006-01")
		bucket, ok := byMonth[month]
		if !ok {
			bucket = &attendance.MonthBucket{Month: month}
			byMonth[month] = bucket
		}
		switch a.Status {
		case attendance.StatusPresent:
			bucket.Present++
		case attendance.StatusLate:
			bucket.Late++
		case attendance.StatusAbsent:
			bucket.Absent++
		}
	}

	months := make([]attendance.MonthBucket, 0, len(byMonth))
	for _, bucket := range byMonth {
		months = append(months, *bucket)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })

	return attendance.StatsResponse{
		From:   daterange.FormatDay(rng.From),
		To:     daterange.FormatDay(rng.To()),
		Scope:  scope,
		Totals: totals,
		Months: months,
	}, nil
}
