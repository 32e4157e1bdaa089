// Package search maintains the Meilisearch listings index. Writes index
// incrementally; a nightly job rebuilds the whole index to pick up anything a
// failed best-effort update missed.
package search

import (
	"fmt"
	"strings"

	"github.com/m-alharbi/aqarbook/services/catalog-service/internal/model"
	"github.com/m-alharbi/aqarbook/services/catalog-service/internal/pricing"
	"github.com/meilisearch/meilisearch-go"
)

const indexUID = "properties"

type Index struct {
	client *meilisearch.Client
}

func New(host, apiKey string) *Index {
	return &Index{client: meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   host,
		APIKey: apiKey,
	})}
}

// Init creates the index and pushes attribute settings. Safe to call on every
// startup.
func (i *Index) Init() error {
	_, err := i.client.CreateIndex(&meilisearch.IndexConfig{
		Uid:        indexUID,
		PrimaryKey: "id",
	})
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		return err
	}

	idx := i.client.Index(indexUID)
	if _, err := idx.UpdateSearchableAttributes(&[]string{
		"title", "description", "city", "district", "category",
	}); err != nil {
		return err
	}
	if _, err := idx.UpdateFilterableAttributes(&[]string{
		"id", "city", "category", "offer_type", "price",
	}); err != nil {
		return err
	}
	if _, err := idx.UpdateSortableAttributes(&[]string{
		"price", "created_at",
	}); err != nil {
		return err
	}
	return nil
}

// Document is the flattened index entry. Price and period come from the
// pricing rules with the discount applied, matching what result cards show.
type Document struct {
	ID        string   `json:"id"`
	OwnerID   string   `json:"owner_id"`
	Title     string   `json:"title"`
	Desc      string   `json:"description,omitempty"`
	Category  string   `json:"category"`
	OfferType string   `json:"offer_type"`
	City      string   `json:"city"`
	District  string   `json:"district,omitempty"`
	Currency  string   `json:"currency"`
	Price     *float64 `json:"price,omitempty"`
	Period    string   `json:"period,omitempty"`
	CreatedAt int64    `json:"created_at"`
}

func DocumentFor(p model.Property) Document {
	facts := model.PricingFacts(p)
	doc := Document{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Title:     p.Title,
		Desc:      p.Description,
		Category:  p.Category,
		OfferType: p.OfferType,
		City:      p.City,
		District:  p.District,
		Currency:  p.Currency,
		Price:     pricing.ResolvePrice(facts, true),
		CreatedAt: p.CreatedAt.Unix(),
	}
	if period, ok := pricing.ResolvePeriod(facts); ok {
		doc.Period = string(period)
	}
	return doc
}

func (i *Index) Upsert(props ...model.Property) error {
	if len(props) == 0 {
		return nil
	}
	docs := make([]Document, 0, len(props))
	for _, p := range props {
		docs = append(docs, DocumentFor(p))
	}
	_, err := i.client.Index(indexUID).AddDocuments(docs)
	return err
}

func (i *Index) Delete(id string) error {
	_, err := i.client.Index(indexUID).DeleteDocument(id)
	return err
}

type Query struct {
	Text      string
	City      string
	Category  string
	OfferType string
	MinPrice  *float64
	MaxPrice  *float64
	Sort      string // "price_asc", "price_desc", "newest"
	Limit     int64
	Offset    int64
}

type Result struct {
	Hits      []Document
	TotalHits int64
}

func (i *Index) Search(q Query) (Result, error) {
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}
	req := &meilisearch.SearchRequest{
		Limit:  q.Limit,
		Offset: q.Offset,
	}
	if filter := buildFilter(q); filter != "" {
		req.Filter = filter
	}
	switch q.Sort {
	case "price_asc":
		req.Sort = []string{"price:asc"}
	case "price_desc":
		req.Sort = []string{"price:desc"}
	case "newest":
		req.Sort = []string{"created_at:desc"}
	}

	res, err := i.client.Index(indexUID).Search(q.Text, req)
	if err != nil {
		return Result{}, err
	}

	hits := make([]Document, 0, len(res.Hits))
	for _, hit := range res.Hits {
		hits = append(hits, documentFromHit(hit))
	}
	return Result{Hits: hits, TotalHits: res.EstimatedTotalHits}, nil
}

func buildFilter(q Query) string {
	var parts []string
	if q.City != "" {
		parts = append(parts, fmt.Sprintf("city = %q", q.City))
	}
	if q.Category != "" {
		parts = append(parts, fmt.Sprintf("category = %q", q.Category))
	}
	if q.OfferType != "" {
		parts = append(parts, fmt.Sprintf("offer_type = %q", q.OfferType))
	}
	if q.MinPrice != nil {
		parts = append(parts, fmt.Sprintf("price >= %g", *q.MinPrice))
	}
	if q.MaxPrice != nil {
		parts = append(parts, fmt.Sprintf("price <= %g", *q.MaxPrice))
	}
	return strings.Join(parts, " AND ")
}

func documentFromHit(hit any) Document {
	m, ok := hit.(map[string]any)
	if !ok {
		return Document{}
	}
	doc := Document{
		ID:        getString(m, "id"),
		OwnerID:   getString(m, "owner_id"),
		Title:     getString(m, "title"),
		Desc:      getString(m, "description"),
		Category:  getString(m, "category"),
		OfferType: getString(m, "offer_type"),
		City:      getString(m, "city"),
		District:  getString(m, "district"),
		Currency:  getString(m, "currency"),
		Period:    getString(m, "period"),
	}
	if price, ok := m["price"].(float64); ok {
		doc.Price = &price
	}
	if createdAt, ok := m["created_at"].(float64); ok {
		doc.CreatedAt = int64(createdAt)
	}
	return doc
}

func getString(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
