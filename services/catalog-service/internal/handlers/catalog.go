package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/m-alharbi/aqarbook/libs/outbox"
	"github.com/m-alharbi/aqarbook/services/catalog-service/internal/model"
	"github.com/m-alharbi/aqarbook/services/catalog-service/internal/search"
	"github.com/m-alharbi/aqarbook/services/catalog-service/internal/storage"
)

type Handler struct {
	repo       *storage.PropertyRepository
	outboxRepo *outbox.Repository
	index      *search.Index
	logger     *slog.Logger
}

func New(repo *storage.PropertyRepository, outboxRepo *outbox.Repository, index *search.Index, logger *slog.Logger) *Handler {
	return &Handler{repo: repo, outboxRepo: outboxRepo, index: index, logger: logger}
}

func ownerIDFromHeader(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-Owner-Id"))
}

var validOfferTypes = map[string]bool{
	"rent": true, "cash": true, "installment": true, "shared": true, "replacement": true,
}

var validPeriods = map[string]bool{
	"day": true, "week": true, "month": true, "weekdays": true, "holidays": true,
}

type propertyRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	OfferType   string                `json:"offer_type"`
	City        string                `json:"city"`
	District    string                `json:"district"`
	Currency    string                `json:"currency"`
	Price       *model.Numeric        `json:"price"`
	Discount    *model.Numeric        `json:"discount"`
	Insurance   *model.Numeric        `json:"insurance"`
	Rates       []model.PeriodRate    `json:"rates"`
	Groups      []model.SlotGroup     `json:"groups"`
	Units       []model.ApartmentUnit `json:"units"`
	Windows     []model.TourWindow    `json:"tour_windows"`
}

func (req *propertyRequest) validate() string {
	req.Title = strings.TrimSpace(req.Title)
	req.Category = strings.TrimSpace(strings.ToLower(req.Category))
	req.OfferType = strings.TrimSpace(strings.ToLower(req.OfferType))
	req.City = strings.TrimSpace(req.City)
	req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))

	if req.Title == "" || req.Category == "" || req.City == "" {
		return "title, category, and city are required"
	}
	if !validOfferTypes[req.OfferType] {
		return "invalid offer_type"
	}
	if req.Currency == "" {
		req.Currency = "SAR"
	}
	if req.Discount != nil {
		if d := float64(*req.Discount); d < 0 || d > 100 {
			return "discount must be between 0 and 100"
		}
	}
	for _, rate := range req.Rates {
		if !validPeriods[rate.Period] {
			return "invalid rate period " + rate.Period
		}
	}
	for _, g := range req.Groups {
		for _, id := range g.IDs {
			if id <= 0 {
				return "slot ids must be positive"
			}
		}
	}
	for _, w := range req.Windows {
		if w.From.IsZero() || w.To.IsZero() || w.To.Before(w.From) {
			return "tour window to must not precede from"
		}
	}
	return ""
}

func (req *propertyRequest) toProperty(ownerID string) *model.Property {
	return &model.Property{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: strings.TrimSpace(req.Description),
		Category:    req.Category,
		OfferType:   req.OfferType,
		City:        req.City,
		District:    strings.TrimSpace(req.District),
		Currency:    req.Currency,
		Price:       req.Price,
		Discount:    req.Discount,
		Insurance:   req.Insurance,
		Rates:       req.Rates,
		Groups:      req.Groups,
		Units:       req.Units,
		Windows:     req.Windows,
	}
}

func (h *Handler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	ownerID := ownerIDFromHeader(r)
	if ownerID == "" {
		http.Error(w, "missing X-Owner-Id", http.StatusBadRequest)
		return
	}

	var req propertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if msg := req.validate(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	prop := req.toProperty(ownerID)

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id, err := h.repo.Create(ctx, tx, prop)
	if err != nil {
		http.Error(w, "failed to create property", http.StatusInternalServerError)
		return
	}
	prop.ID = id
	prop.Status = "active"

	if err := h.insertUpdatedEvent(ctx, tx, prop); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}

	h.indexAsync(*prop)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{"id": id})
}

func (h *Handler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	ownerID := ownerIDFromHeader(r)
	if ownerID == "" {
		http.Error(w, "missing X-Owner-Id", http.StatusBadRequest)
		return
	}
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	var req propertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if msg := req.validate(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	prop := req.toProperty(ownerID)
	if err := h.repo.Update(ctx, tx, ownerID, id, prop); err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "property not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to update property", http.StatusInternalServerError)
		return
	}
	prop.ID = id
	prop.Status = "active"

	if err := h.insertUpdatedEvent(ctx, tx, prop); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}

	h.indexAsync(*prop)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ArchiveProperty(w http.ResponseWriter, r *http.Request) {
	ownerID := ownerIDFromHeader(r)
	if ownerID == "" {
		http.Error(w, "missing X-Owner-Id", http.StatusBadRequest)
		return
	}
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := h.repo.Archive(ctx, tx, ownerID, id); err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "property not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to archive property", http.StatusInternalServerError)
		return
	}

	prop, err := h.repo.Get(ctx, id)
	if err != nil {
		http.Error(w, "failed to load property", http.StatusInternalServerError)
		return
	}
	prop.Status = "archived"
	if err := h.insertUpdatedEvent(ctx, tx, &prop); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}

	if h.index != nil {
		if err := h.index.Delete(id); err != nil {
			h.logger.Warn("search delete failed", "property_id", id, "err", err)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	ownerID := ownerIDFromHeader(r)
	if ownerID == "" {
		http.Error(w, "missing X-Owner-Id", http.StatusBadRequest)
		return
	}

	props, err := h.repo.ListByOwner(r.Context(), ownerID, 100)
	if err != nil {
		http.Error(w, "failed to list properties", http.StatusInternalServerError)
		return
	}
	if props == nil {
		props = []model.Property{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(props)
}

// insertUpdatedEvent writes the full listing snapshot so consumers can keep a
// read model without calling back.
func (h *Handler) insertUpdatedEvent(ctx context.Context, tx pgx.Tx, prop *model.Property) error {
	payload, err := json.Marshal(map[string]any{"property": prop})
	if err != nil {
		return err
	}
	return h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "property",
		AggregateID:   prop.ID,
		EventType:     "catalog.property.updated.v1",
		Payload:       payload,
	})
}

func (h *Handler) indexAsync(prop model.Property) {
	if h.index == nil {
		return
	}
	go func() {
		if err := h.index.Upsert(prop); err != nil {
			h.logger.Warn("search index update failed", "property_id", prop.ID, "err", err)
		}
	}()
}
