package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/m-alharbi/aqarbook/libs/outbox"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/catalog"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/grid"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/model"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/storage"
)

type createReservationRequest struct {
	PropertyID string         `json:"property_id"`
	GuestName  string         `json:"guest_name"`
	GuestPhone string         `json:"guest_phone"`
	SlotIDs    []int          `json:"slot_ids"`
	Units      map[string]int `json:"units"`
	FromDate   string         `json:"from_date"`
	ToDate     string         `json:"to_date"`
}

type createReservationResponse struct {
	ReservationID string  `json:"reservation_id"`
	Status        string  `json:"status"`
	DepositAmount float64 `json:"deposit_amount"`
	Currency      string  `json:"currency"`
}

func (h *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromHeader(r)
	if userID == "" {
		http.Error(w, "missing X-User-Id", http.StatusBadRequest)
		return
	}

	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.PropertyID = strings.TrimSpace(req.PropertyID)
	req.GuestName = strings.TrimSpace(req.GuestName)
	if req.PropertyID == "" || req.GuestName == "" {
		http.Error(w, "property_id and guest_name required", http.StatusBadRequest)
		return
	}
	if len(req.SlotIDs) == 0 && len(req.Units) == 0 {
		http.Error(w, "slot_ids or units required", http.StatusBadRequest)
		return
	}
	from, err := time.ParseInLocation(dateLayout, req.FromDate, time.UTC)
	if err != nil {
		http.Error(w, "invalid from_date", http.StatusBadRequest)
		return
	}
	to, err := time.ParseInLocation(dateLayout, req.ToDate, time.UTC)
	if err != nil {
		http.Error(w, "invalid to_date", http.StatusBadRequest)
		return
	}
	if to.Before(from) {
		http.Error(w, "to_date must not precede from_date", http.StatusBadRequest)
		return
	}
	for unitType, qty := range req.Units {
		if strings.TrimSpace(unitType) == "" || qty <= 0 {
			http.Error(w, "invalid units", http.StatusBadRequest)
			return
		}
	}

	ctx := r.Context()
	facts, ok := h.facts(ctx, w, req.PropertyID)
	if !ok {
		return
	}

	tx, err := h.reservations.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	idempotencyKey := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
	if idempotencyKey != "" {
		rec, exists, err := h.reservations.LockIdempotencyKey(ctx, tx, req.PropertyID, idempotencyKey)
		if err != nil {
			http.Error(w, "failed to lock idempotency key", http.StatusInternalServerError)
			return
		}
		if exists && rec.StatusCode > 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(rec.StatusCode)
			_, _ = w.Write(rec.ResponsePayload)
			return
		}
	}

	index := grid.BuildIndex(facts.Groups)
	if len(req.SlotIDs) > 0 {
		bookedIDs, err := h.reservations.BookedSlotIDsLocked(ctx, tx, req.PropertyID, from, to)
		if err != nil {
			http.Error(w, "failed to check slot availability", http.StatusInternalServerError)
			return
		}
		booked := grid.BookedSet(bookedIDs)
		for _, id := range req.SlotIDs {
			if !grid.Available(id, index, booked) {
				if idempotencyKey != "" && h.finalizeIdempotencyError(ctx, tx, req.PropertyID, idempotencyKey, http.StatusConflict, "slot unavailable") {
					_ = tx.Commit(ctx)
				}
				http.Error(w, "slot unavailable", http.StatusConflict)
				return
			}
		}
	}
	if len(req.Units) > 0 {
		if msg := h.checkUnitCapacity(ctx, tx, facts, req, from, to); msg != "" {
			if idempotencyKey != "" && h.finalizeIdempotencyError(ctx, tx, req.PropertyID, idempotencyKey, http.StatusConflict, msg) {
				_ = tx.Commit(ctx)
			}
			http.Error(w, msg, http.StatusConflict)
			return
		}
	}

	deposit := depositFor(facts, req.SlotIDs, index)
	status := model.ReservationConfirmed
	if deposit > 0 {
		status = model.ReservationPending
	}

	res := &model.Reservation{
		PropertyID:    req.PropertyID,
		UserID:        userID,
		GuestName:     req.GuestName,
		GuestPhone:    strings.TrimSpace(req.GuestPhone),
		SlotIDs:       req.SlotIDs,
		Units:         req.Units,
		FromDate:      from,
		ToDate:        to,
		DepositAmount: deposit,
		Currency:      facts.Currency,
		Status:        status,
	}
	id, err := h.reservations.Create(ctx, tx, res)
	if err != nil {
		if storage.IsConflict(err) {
			http.Error(w, "reservation conflicts with an existing booking", http.StatusConflict)
			return
		}
		http.Error(w, "failed to create reservation", http.StatusInternalServerError)
		return
	}

	evtPayload, err := json.Marshal(map[string]any{
		"reservation_id": id,
		"property_id":    req.PropertyID,
		"owner_id":       facts.OwnerID,
		"user_id":        userID,
		"slot_ids":       req.SlotIDs,
		"units":          req.Units,
		"from_date":      from.Format(dateLayout),
		"to_date":        to.Format(dateLayout),
		"deposit_amount": deposit,
		"currency":       facts.Currency,
		"status":         status,
	})
	if err != nil {
		http.Error(w, "failed to build event payload", http.StatusInternalServerError)
		return
	}
	if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "reservation",
		AggregateID:   id,
		EventType:     "booking.reservation.created.v1",
		Payload:       evtPayload,
	}); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	respBody, err := json.Marshal(createReservationResponse{
		ReservationID: id,
		Status:        status,
		DepositAmount: deposit,
		Currency:      facts.Currency,
	})
	if err != nil {
		http.Error(w, "failed to build response", http.StatusInternalServerError)
		return
	}
	if idempotencyKey != "" {
		if err := h.reservations.FinalizeIdempotency(ctx, tx, req.PropertyID, idempotencyKey, id, http.StatusCreated, respBody); err != nil {
			http.Error(w, "failed to finalize idempotency key", http.StatusInternalServerError)
			return
		}
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	h.slotCache.Invalidate(ctx, req.PropertyID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(respBody)
}

func (h *Handler) checkUnitCapacity(ctx context.Context, tx pgx.Tx, facts catalog.Facts, req createReservationRequest, from, to time.Time) string {
	caps := make(map[string]int, len(facts.Units))
	for _, u := range facts.Units {
		caps[u.Type] = u.Count
	}
	taken, err := h.reservations.BookedUnitCounts(ctx, tx, req.PropertyID, from, to)
	if err != nil {
		h.logger.Error("unit count check failed", "err", err)
		return "failed to check unit availability"
	}
	for unitType, qty := range req.Units {
		max, ok := caps[unitType]
		if !ok {
			return "unknown unit type " + unitType
		}
		if max > 0 && taken[unitType]+qty > max {
			return "unit type " + unitType + " is fully booked"
		}
	}
	return ""
}

// depositFor picks the deposit owed before a reservation confirms: the
// highest insurance among the selected slots' groups, falling back to the
// property-level insurance. Zero means no deposit and immediate confirmation.
func depositFor(facts catalog.Facts, slotIDs []int, index map[int]grid.Ref) float64 {
	deposit := 0.0
	for _, id := range slotIDs {
		if ref, ok := index[id]; ok && ref.Insurance != nil && *ref.Insurance > deposit {
			deposit = *ref.Insurance
		}
	}
	if deposit == 0 && facts.Insurance != nil && *facts.Insurance > 0 {
		deposit = *facts.Insurance
	}
	return deposit
}

type cancelReservationRequest struct {
	ReservationID string `json:"reservation_id"`
	Reason        string `json:"reason"`
}

func (h *Handler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromHeader(r)
	if userID == "" {
		http.Error(w, "missing X-User-Id", http.StatusBadRequest)
		return
	}

	var req cancelReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.ReservationID = strings.TrimSpace(req.ReservationID)
	req.Reason = strings.TrimSpace(req.Reason)
	if req.ReservationID == "" {
		http.Error(w, "reservation_id required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	tx, err := h.reservations.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := h.reservations.GetForUpdate(ctx, tx, req.ReservationID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "reservation not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load reservation", http.StatusInternalServerError)
		return
	}
	if res.UserID != userID {
		http.Error(w, "reservation not found", http.StatusNotFound)
		return
	}

	if res.Status == model.ReservationCancelled && res.CancelledAt != nil {
		h.writeCancelResponse(w, res.ID, res.CancelledAt.UTC())
		return
	}

	cancelledAt, err := h.reservations.Cancel(ctx, tx, res.ID, req.Reason)
	if err != nil {
		http.Error(w, "failed to cancel reservation", http.StatusInternalServerError)
		return
	}

	evtPayload, err := json.Marshal(map[string]any{
		"reservation_id": res.ID,
		"property_id":    res.PropertyID,
		"user_id":        res.UserID,
		"slot_ids":       res.SlotIDs,
		"from_date":      res.FromDate.Format(dateLayout),
		"to_date":        res.ToDate.Format(dateLayout),
		"cancelled_at":   cancelledAt.UTC().Format(time.RFC3339),
		"reason":         req.Reason,
	})
	if err != nil {
		http.Error(w, "failed to build cancellation event", http.StatusInternalServerError)
		return
	}
	if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "reservation",
		AggregateID:   res.ID,
		EventType:     "booking.reservation.cancelled.v1",
		Payload:       evtPayload,
	}); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	h.slotCache.Invalidate(ctx, res.PropertyID)
	h.writeCancelResponse(w, res.ID, cancelledAt.UTC())
}

func (h *Handler) ListReservations(w http.ResponseWriter, r *http.Request) {
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

	list, err := h.reservations.ListByUser(r.Context(), userID, limit)
	if err != nil {
		http.Error(w, "failed to list reservations", http.StatusInternalServerError)
		return
	}

	type item struct {
		ReservationID string         `json:"reservation_id"`
		PropertyID    string         `json:"property_id"`
		SlotIDs       []int          `json:"slot_ids,omitempty"`
		Units         map[string]int `json:"units,omitempty"`
		FromDate      string         `json:"from_date"`
		ToDate        string         `json:"to_date"`
		DepositAmount float64        `json:"deposit_amount"`
		Currency      string         `json:"currency"`
		Status        string         `json:"status"`
		CancelledAt   string         `json:"cancelled_at,omitempty"`
		CreatedAt     string         `json:"created_at"`
	}
	items := make([]item, 0, len(list))
	for _, res := range list {
		it := item{
			ReservationID: res.ID,
			PropertyID:    res.PropertyID,
			SlotIDs:       res.SlotIDs,
			Units:         res.Units,
			FromDate:      res.FromDate.Format(dateLayout),
			ToDate:        res.ToDate.Format(dateLayout),
			DepositAmount: res.DepositAmount,
			Currency:      res.Currency,
			Status:        res.Status,
			CreatedAt:     res.CreatedAt.UTC().Format(time.RFC3339),
		}
		if res.CancelledAt != nil {
			it.CancelledAt = res.CancelledAt.UTC().Format(time.RFC3339)
		}
		items = append(items, it)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(items)
}

func (h *Handler) writeCancelResponse(w http.ResponseWriter, reservationID string, cancelledAt time.Time) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"reservation_id": reservationID,
		"status":         model.ReservationCancelled,
		"cancelled_at":   cancelledAt.Format(time.RFC3339),
	})
}

func (h *Handler) finalizeIdempotencyError(ctx context.Context, tx pgx.Tx, propertyID, key string, statusCode int, msg string) bool {
	body, err := json.Marshal(map[string]string{"error": msg})
	if err != nil {
		return false
	}
	if err := h.reservations.FinalizeIdempotency(ctx, tx, propertyID, key, "", statusCode, body); err != nil {
		h.logger.Error("failed to finalize idempotency (error)", "err", err)
		return false
	}
	return true
}
