package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/m-alharbi/aqarbook/libs/outbox"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/model"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/storage"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/tourtime"
)

type bookTourRequest struct {
	PropertyID string `json:"property_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	GuestName  string `json:"guest_name"`
	GuestPhone string `json:"guest_phone"`
}

// BookTour reserves a visit time. The time must be one of the half-hour
// choices enumerated for the date, not merely inside a raw window.
func (h *Handler) BookTour(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromHeader(r)
	if userID == "" {
		http.Error(w, "missing X-User-Id", http.StatusBadRequest)
		return
	}

	var req bookTourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.PropertyID = strings.TrimSpace(req.PropertyID)
	req.Time = strings.TrimSpace(req.Time)
	req.GuestName = strings.TrimSpace(req.GuestName)
	if req.PropertyID == "" || req.Time == "" || req.GuestName == "" {
		http.Error(w, "property_id, time and guest_name required", http.StatusBadRequest)
		return
	}
	date, err := time.ParseInLocation(dateLayout, strings.TrimSpace(req.Date), time.UTC)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	facts, ok := h.facts(ctx, w, req.PropertyID)
	if !ok {
		return
	}

	if !tourtime.DateAvailable(date, facts.Windows) {
		http.Error(w, "no tours on this date", http.StatusUnprocessableEntity)
		return
	}
	if !containsLabel(tourtime.Choices(date, facts.Windows), req.Time) {
		http.Error(w, "time is not an offered tour time", http.StatusUnprocessableEntity)
		return
	}

	tx, err := h.reservations.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tour := &model.Tour{
		PropertyID: req.PropertyID,
		UserID:     userID,
		GuestName:  req.GuestName,
		GuestPhone: strings.TrimSpace(req.GuestPhone),
		Date:       date,
		TimeLabel:  req.Time,
	}
	id, err := h.tours.Create(ctx, tx, tour)
	if err != nil {
		if storage.IsConflict(err) {
			http.Error(w, "tour already booked for this time", http.StatusConflict)
			return
		}
		http.Error(w, "failed to book tour", http.StatusInternalServerError)
		return
	}

	evtPayload, err := json.Marshal(map[string]any{
		"tour_id":     id,
		"property_id": req.PropertyID,
		"owner_id":    facts.OwnerID,
		"user_id":     userID,
		"date":        date.Format(dateLayout),
		"time":        req.Time,
	})
	if err != nil {
		http.Error(w, "failed to build event payload", http.StatusInternalServerError)
		return
	}
	if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "tour",
		AggregateID:   id,
		EventType:     "booking.tour.booked.v1",
		Payload:       evtPayload,
	}); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"tour_id":     id,
		"property_id": req.PropertyID,
		"date":        date.Format(dateLayout),
		"time":        req.Time,
	})
}

func containsLabel(choices []string, label string) bool {
	for _, c := range choices {
		if c == label {
			return true
		}
	}
	return false
}

func (h *Handler) ListTours(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromHeader(r)
	if userID == "" {
		http.Error(w, "missing X-User-Id", http.StatusBadRequest)
		return
	}

	limit := 50
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	list, err := h.tours.ListByUser(r.Context(), userID, limit)
	if err != nil {
		http.Error(w, "failed to list tours", http.StatusInternalServerError)
		return
	}

	type item struct {
		TourID     string `json:"tour_id"`
		PropertyID string `json:"property_id"`
		Date       string `json:"date"`
		Time       string `json:"time"`
		GuestName  string `json:"guest_name"`
		CreatedAt  string `json:"created_at"`
	}
	items := make([]item, 0, len(list))
	for _, t := range list {
		items = append(items, item{
			TourID:     t.ID,
			PropertyID: t.PropertyID,
			Date:       t.Date.Format(dateLayout),
			Time:       t.TimeLabel,
			GuestName:  t.GuestName,
			CreatedAt:  t.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(items)
}
