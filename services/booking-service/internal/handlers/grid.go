package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/m-alharbi/aqarbook/libs/outbox"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/cache"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/catalog"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/grid"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/storage"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/tourtime"
)

const dateLayout = "2006-01-02"

type Handler struct {
	reservations *storage.ReservationRepository
	tours        *storage.TourRepository
	provider     catalog.Provider
	slotCache    *cache.SlotCache
	outboxRepo   *outbox.Repository
	logger       *slog.Logger
}

func New(reservations *storage.ReservationRepository, tours *storage.TourRepository, provider catalog.Provider, slotCache *cache.SlotCache, outboxRepo *outbox.Repository, logger *slog.Logger) *Handler {
	return &Handler{
		reservations: reservations,
		tours:        tours,
		provider:     provider,
		slotCache:    slotCache,
		outboxRepo:   outboxRepo,
		logger:       logger,
	}
}

func userIDFromHeader(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-User-Id"))
}

func (h *Handler) facts(ctx context.Context, w http.ResponseWriter, propertyID string) (catalog.Facts, bool) {
	facts, err := h.provider.BookingFacts(ctx, propertyID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.Error(w, "property not found", http.StatusNotFound)
			return catalog.Facts{}, false
		}
		h.logger.Error("booking facts fetch failed", "property_id", propertyID, "err", err)
		http.Error(w, "catalog unavailable", http.StatusServiceUnavailable)
		return catalog.Facts{}, false
	}
	if facts.Status != "" && facts.Status != "active" {
		http.Error(w, "property not found", http.StatusNotFound)
		return catalog.Facts{}, false
	}
	return facts, true
}

type gridCell struct {
	ID         int        `json:"id"`
	Assigned   bool       `json:"assigned"`
	Booked     bool       `json:"booked"`
	Selectable bool       `json:"selectable"`
	Group      *gridGroup `json:"group,omitempty"`
}

type gridGroup struct {
	Name        string   `json:"name"`
	Color       string   `json:"color,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Insurance   *float64 `json:"insurance,omitempty"`
	Area        *float64 `json:"area,omitempty"`
	Capacity    int      `json:"capacity,omitempty"`
}

// Grid renders the slot grid for a date range: fixed 10 columns, one cell
// per position up to the highest declared slot id.
func (h *Handler) Grid(w http.ResponseWriter, r *http.Request) {
	propertyID := strings.TrimSpace(r.URL.Query().Get("property_id"))
	from, to, msg := parseDateRange(r)
	if propertyID == "" {
		msg = "property_id is required"
	}
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	facts, ok := h.facts(ctx, w, propertyID)
	if !ok {
		return
	}

	booked, err := h.slotCache.BookedSlotIDs(ctx, propertyID, from, to, func(ctx context.Context) ([]int, error) {
		return h.reservations.BookedSlotIDs(ctx, propertyID, from, to)
	})
	if err != nil {
		http.Error(w, "failed to load booked slots", http.StatusInternalServerError)
		return
	}

	cells := grid.Cells(facts.Groups, grid.BookedSet(booked))
	out := make([]gridCell, 0, len(cells))
	for _, c := range cells {
		cell := gridCell{ID: c.ID, Assigned: c.Assigned, Booked: c.Booked, Selectable: c.Selectable}
		if c.Group != nil {
			cell.Group = &gridGroup{
				Name:        c.Group.Name,
				Color:       c.Group.Color,
				Description: c.Group.Description,
				Price:       c.Group.Price,
				Insurance:   c.Group.Insurance,
				Area:        c.Group.Area,
				Capacity:    c.Group.Capacity,
			}
		}
		out = append(out, cell)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"property_id": propertyID,
		"columns":     grid.Columns,
		"rows":        grid.Rows(facts.Groups),
		"cells":       out,
	})
}

// TourTimes lists the bookable visit times for a date.
func (h *Handler) TourTimes(w http.ResponseWriter, r *http.Request) {
	propertyID := strings.TrimSpace(r.URL.Query().Get("property_id"))
	dateStr := strings.TrimSpace(r.URL.Query().Get("date"))
	if propertyID == "" || dateStr == "" {
		http.Error(w, "property_id and date are required", http.StatusBadRequest)
		return
	}
	date, err := time.ParseInLocation(dateLayout, dateStr, time.UTC)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	facts, ok := h.facts(r.Context(), w, propertyID)
	if !ok {
		return
	}

	choices := tourtime.Choices(date, facts.Windows)
	if choices == nil {
		choices = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"property_id": propertyID,
		"date":        dateStr,
		"available":   tourtime.DateAvailable(date, facts.Windows),
		"choices":     choices,
	})
}

func parseDateRange(r *http.Request) (time.Time, time.Time, string) {
	fromStr := strings.TrimSpace(r.URL.Query().Get("from"))
	toStr := strings.TrimSpace(r.URL.Query().Get("to"))
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, "from and to are required (YYYY-MM-DD)"
	}
	from, err := time.ParseInLocation(dateLayout, fromStr, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, "invalid from"
	}
	to, err := time.ParseInLocation(dateLayout, toStr, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, "invalid to"
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, "to must not precede from"
	}
	return from, to, ""
}
