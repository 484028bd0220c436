package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/evidencija/attendance-backend-go/internal/domain/attendance"
	"github.com/evidencija/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetRange(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

// CheckIn implements AttendanceHandler. The body is optional; an empty body
// targets the current day.
func (a *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var checkInReq attendance.CheckInRequest

	// 1. Decode JSON (optional body)
	if err := json.NewDecoder(r.Body).Decode(&checkInReq); err != nil && err != io.EOF {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := checkInReq.Validate(); err != nil {
		slog.Error("CheckIn validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	record, err := a.attendanceService.CheckIn(r.Context(), checkInReq)
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Checked in successfully", "date", record.Date, "status", record.Status)
	response.Created(w, "Checked in successfully", record)
}

// CheckOut implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var checkOutReq attendance.CheckOutRequest

	// 1. Decode JSON (optional body)
	if err := json.NewDecoder(r.Body).Decode(&checkOutReq); err != nil && err != io.EOF {
		slog.Error("CheckOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := checkOutReq.Validate(); err != nil {
		slog.Error("CheckOut validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	record, err := a.attendanceService.CheckOut(r.Context(), checkOutReq)
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Checked out successfully", "date", record.Date, "work_minutes", record.TotalWorkMinutes)
	response.SuccessWithMessage(w, "Checked out successfully", record)
}

// GetRange implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetRange(w http.ResponseWriter, r *http.Request) {
	filter := attendance.RangeFilter{
		UserID: r.URL.Query().Get("user_id"),
		From:   r.URL.Query().Get("from"),
		To:     r.URL.Query().Get("to"),
	}

	// Validate DTO
	if err := filter.Validate(); err != nil {
		slog.Error("Attendance range validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	rangeResponse, err := a.attendanceService.GetRange(r.Context(), filter)
	if err != nil {
		slog.Error("Attendance range service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance retrieved successfully", rangeResponse)
}

// GetStats implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	filter := attendance.StatsFilter{
		UserID: r.URL.Query().Get("user_id"),
		From:   r.URL.Query().Get("from"),
		To:     r.URL.Query().Get("to"),
	}

	// Validate DTO
	if err := filter.Validate(); err != nil {
		slog.Error("Attendance stats validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	stats, err := a.attendanceService.GetStats(r.Context(), filter)
	if err != nil {
		slog.Error("Attendance stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance statistics retrieved successfully", stats)
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}
