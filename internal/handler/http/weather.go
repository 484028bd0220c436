package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/evidencija/attendance-backend-go/internal/domain/weather"
	"github.com/evidencija/attendance-backend-go/internal/handler/http/response"
	"github.com/evidencija/attendance-backend-go/internal/pkg/validator"
)

type WeatherHandler interface {
	GetRange(w http.ResponseWriter, r *http.Request)
	Sync(w http.ResponseWriter, r *http.Request)
}

type WeatherHandlerImpl struct {
	weatherService weather.WeatherService
}

type weatherSyncRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func validateDayWindow(from, to string) error {
	var errs validator.ValidationErrors

	fromDay, okFrom := validator.IsValidDate(from)
	toDay, okTo := validator.IsValidDate(to)
	if !okFrom {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "from must be a valid YYYY-MM-DD day"})
	}
	if !okTo {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "to must be a valid YYYY-MM-DD day"})
	}
	if okFrom && okTo && toDay.Before(fromDay) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "to must not be before from"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GetRange implements WeatherHandler.
func (h *WeatherHandlerImpl) GetRange(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	locationKey := r.URL.Query().Get("location_key")

	if err := validateDayWindow(from, to); err != nil {
		slog.Error("Weather range validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	days, err := h.weatherService.GetRange(r.Context(), from, to, locationKey)
	if err != nil {
		slog.Error("Weather range service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Weather retrieved successfully", days)
}

// Sync implements WeatherHandler.
func (h *WeatherHandlerImpl) Sync(w http.ResponseWriter, r *http.Request) {
	var syncReq weatherSyncRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&syncReq); err != nil {
		slog.Error("Weather sync decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate window
	if err := validateDayWindow(syncReq.From, syncReq.To); err != nil {
		slog.Error("Weather sync validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	result, err := h.weatherService.Sync(r.Context(), syncReq.From, syncReq.To)
	if err != nil {
		slog.Error("Weather sync service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Weather synced successfully", "upserted", result.Upserted, "location_key", result.LocationKey)
	response.SuccessWithMessage(w, "Weather synced successfully", result)
}

func NewWeatherHandler(weatherService weather.WeatherService) WeatherHandler {
	return &WeatherHandlerImpl{
		weatherService: weatherService,
	}
}
