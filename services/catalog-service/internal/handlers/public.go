package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/m-alharbi/aqarbook/services/catalog-service/internal/model"
	"github.com/m-alharbi/aqarbook/services/catalog-service/internal/pricing"
	"github.com/m-alharbi/aqarbook/services/catalog-service/internal/search"
	"github.com/m-alharbi/aqarbook/services/catalog-service/internal/storage"
)

type quoteResponse struct {
	PropertyID  string               `json:"property_id"`
	Currency    string               `json:"currency"`
	Period      string               `json:"period,omitempty"`
	Price       *float64             `json:"price,omitempty"`
	Display     string               `json:"display,omitempty"`
	OtherPrices []pricing.OtherPrice `json:"other_prices,omitempty"`
}

func buildQuote(prop model.Property, discounted bool, locale string) quoteResponse {
	facts := model.PricingFacts(prop)
	resp := quoteResponse{
		PropertyID: prop.ID,
		Currency:   prop.Currency,
	}

	var primary pricing.Period
	if period, ok := pricing.ResolvePeriod(facts); ok {
		primary = period
		resp.Period = string(period)
	}
	if price := pricing.ResolvePrice(facts, discounted); price != nil {
		resp.Price = price
		resp.Display = pricing.FormatAmount(*price, prop.Currency, locale)
	}
	resp.OtherPrices = pricing.OtherPrices(facts, primary, prop.Currency, locale, nil)
	return resp
}

// GetProperty is the public listing read: the stored document plus the
// resolved quote the front-end renders on the detail page.
func (h *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	prop, err := h.repo.GetActive(r.Context(), id)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "property not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load property", http.StatusInternalServerError)
		return
	}

	locale := strings.TrimSpace(r.URL.Query().Get("locale"))
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"property": prop,
		"quote":    buildQuote(prop, true, locale),
	})
}

// Quote resolves the displayed price on demand. discounted defaults to true;
// pass discounted=false for the pre-discount figure.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("property_id"))
	if id == "" {
		http.Error(w, "property_id is required", http.StatusBadRequest)
		return
	}

	discounted := true
	if raw := strings.TrimSpace(r.URL.Query().Get("discounted")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			http.Error(w, "invalid discounted", http.StatusBadRequest)
			return
		}
		discounted = v
	}

	prop, err := h.repo.GetActive(r.Context(), id)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "property not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load property", http.StatusInternalServerError)
		return
	}

	locale := strings.TrimSpace(r.URL.Query().Get("locale"))
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(buildQuote(prop, discounted, locale))
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	if h.index == nil {
		http.Error(w, "search unavailable", http.StatusServiceUnavailable)
		return
	}

	q := search.Query{
		Text:      strings.TrimSpace(r.URL.Query().Get("q")),
		City:      strings.TrimSpace(r.URL.Query().Get("city")),
		Category:  strings.TrimSpace(strings.ToLower(r.URL.Query().Get("category"))),
		OfferType: strings.TrimSpace(strings.ToLower(r.URL.Query().Get("offer_type"))),
		Sort:      strings.TrimSpace(r.URL.Query().Get("sort")),
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("min_price")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			http.Error(w, "invalid min_price", http.StatusBadRequest)
			return
		}
		q.MinPrice = &v
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("max_price")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			http.Error(w, "invalid max_price", http.StatusBadRequest)
			return
		}
		q.MaxPrice = &v
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 && n <= 100 {
			q.Limit = n
		}
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("offset")); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n >= 0 {
			q.Offset = n
		}
	}

	res, err := h.index.Search(q)
	if err != nil {
		h.logger.Error("search failed", "err", err)
		http.Error(w, "search failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"hits":  res.Hits,
		"total": res.TotalHits,
	})
}
