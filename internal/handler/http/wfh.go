package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/evidencija/attendance-backend-go/internal/domain/wfh"
	"github.com/evidencija/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WfhHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type WfhHandlerImpl struct {
	wfhService wfh.WfhService
}

// Create implements WfhHandler. The body is optional; an empty body targets
// the current day with no reason.
func (h *WfhHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq wfh.CreateRequest

	// 1. Decode JSON (optional body)
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil && err != io.EOF {
		slog.Error("Create WFH request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Create WFH request validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	created, err := h.wfhService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create WFH request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("WFH request processed", "outcome", created.Outcome, "date", created.Request.Date)
	if created.Outcome == string(wfh.OutcomeCreated) {
		response.Created(w, "Work-from-home request created", created)
		return
	}
	response.SuccessWithMessage(w, "Work-from-home request processed", created)
}

// List implements WfhHandler.
func (h *WfhHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := wfh.ListFilter{
		UserID: r.URL.Query().Get("user_id"),
		Status: r.URL.Query().Get("status"),
		From:   r.URL.Query().Get("from"),
		To:     r.URL.Query().Get("to"),
	}

	// Validate DTO
	if err := filter.Validate(); err != nil {
		slog.Error("List WFH requests validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	requests, err := h.wfhService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List WFH requests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work-from-home requests retrieved successfully", requests)
}

// Decide implements WfhHandler.
func (h *WfhHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var decideReq wfh.DecideRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&decideReq); err != nil {
		slog.Error("Decide WFH request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	id := chi.URLParam(r, "id")

	// Validate DTO
	if err := decideReq.Validate(); err != nil {
		slog.Error("Decide WFH request validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	decided, err := h.wfhService.Decide(r.Context(), id, decideReq)
	if err != nil {
		slog.Error("Decide WFH request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("WFH request decided", "request_id", decided.ID, "status", decided.Status)
	response.SuccessWithMessage(w, "Work-from-home request decided", decided)
}

func NewWfhHandler(wfhService wfh.WfhService) WfhHandler {
	return &WfhHandlerImpl{
		wfhService: wfhService,
	}
}
