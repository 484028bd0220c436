package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/evidencija/attendance-backend-go/internal/domain/activity"
	"github.com/evidencija/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ActivityHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ExportICS(w http.ResponseWriter, r *http.Request)
}

type ActivityHandlerImpl struct {
	activityService activity.ActivityService
}

func listFilterFromQuery(r *http.Request) activity.ListFilter {
	return activity.ListFilter{
		From:   r.URL.Query().Get("from"),
		To:     r.URL.Query().Get("to"),
		UserID: r.URL.Query().Get("user_id"),
	}
}

// List implements ActivityHandler.
func (a *ActivityHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := listFilterFromQuery(r)

	// Validate DTO
	if err := filter.Validate(); err != nil {
		slog.Error("List activities validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	activities, err := a.activityService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List activities service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Activities retrieved successfully", activities)
}

// Create implements ActivityHandler.
func (a *ActivityHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq activity.CreateActivityRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create activity decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Create activity validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	created, err := a.activityService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create activity service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Activity created successfully", "activity_id", created.ID)
	response.Created(w, "Activity created successfully", created)
}

// Update implements ActivityHandler.
func (a *ActivityHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq activity.UpdateActivityRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update activity decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	// Validate DTO
	if err := updateReq.Validate(); err != nil {
		slog.Error("Update activity validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	updated, err := a.activityService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update activity service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Activity updated successfully", "activity_id", updated.ID)
	response.SuccessWithMessage(w, "Activity updated successfully", updated)
}

// Delete implements ActivityHandler.
func (a *ActivityHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := a.activityService.Delete(r.Context(), id)
	if err != nil {
		slog.Error("Delete activity service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Activity deleted successfully", "activity_id", id)
	response.Success(w, "Activity deleted successfully")
}

// ExportICS implements ActivityHandler. The payload is served as a file
// download rather than the usual JSON envelope.
func (a *ActivityHandlerImpl) ExportICS(w http.ResponseWriter, r *http.Request) {
	filter := listFilterFromQuery(r)

	// Validate DTO
	if err := filter.Validate(); err != nil {
		slog.Error("Export activities validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	document, err := a.activityService.ExportICS(r.Context(), filter)
	if err != nil {
		slog.Error("Export activities service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="activities.ics"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(document))
}

func NewActivityHandler(activityService activity.ActivityService) ActivityHandler {
	return &ActivityHandlerImpl{
		activityService: activityService,
	}
}
