package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/evidencija/attendance-backend-go/internal/domain/holiday"
	"github.com/evidencija/attendance-backend-go/internal/handler/http/response"
)

type HolidayHandler interface {
	GetRange(w http.ResponseWriter, r *http.Request)
	Sync(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

// GetRange implements HolidayHandler. With no window the current calendar year
// is returned.
func (h *HolidayHandlerImpl) GetRange(w http.ResponseWriter, r *http.Request) {
	filter := holiday.RangeFilter{
		From:    r.URL.Query().Get("from"),
		To:      r.URL.Query().Get("to"),
		Country: r.URL.Query().Get("country"),
	}

	// Validate DTO
	if err := filter.Validate(); err != nil {
		slog.Error("Holiday range validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	holidays, err := h.holidayService.GetRange(r.Context(), filter)
	if err != nil {
		slog.Error("Holiday range service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holidays retrieved successfully", holidays)
}

// Sync implements HolidayHandler.
func (h *HolidayHandlerImpl) Sync(w http.ResponseWriter, r *http.Request) {
	var syncReq holiday.SyncRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&syncReq); err != nil {
		slog.Error("Holiday sync decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := syncReq.Validate(); err != nil {
		slog.Error("Holiday sync validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	result, err := h.holidayService.Sync(r.Context(), syncReq)
	if err != nil {
		slog.Error("Holiday sync service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Holidays synced successfully", "year", result.Year, "synced", result.Synced)
	response.SuccessWithMessage(w, "Holidays synced successfully", result)
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &HolidayHandlerImpl{
		holidayService: holidayService,
	}
}
