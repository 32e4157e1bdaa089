// Package catalog gives booking-service its view of a listing: slot groups,
// unit counts, tour windows, and the deposit-relevant amounts. The default
// provider reads the local snapshot table maintained from catalog update
// events; a gRPC client replaces it when built with the protogen tag.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/m-alharbi/aqarbook/services/booking-service/internal/grid"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/storage"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/tourtime"
)

var ErrNotFound = errors.New("property not found")

// UnitType is a bookable apartment unit type with its availability cap.
type UnitType struct {
	Type  string
	Title string
	Count int
}

type Facts struct {
	PropertyID string
	OwnerID    string
	Status     string
	Category   string
	OfferType  string
	Currency   string
	Insurance  *float64
	Groups     []grid.Group
	Units      []UnitType
	Windows    []tourtime.Window
}

type Provider interface {
	BookingFacts(ctx context.Context, propertyID string) (Facts, error)
}

// SnapshotProvider serves facts from the listing_snapshots read model.
type SnapshotProvider struct {
	snapshots *storage.SnapshotRepository
}

func NewSnapshotProvider(snapshots *storage.SnapshotRepository) *SnapshotProvider {
	return &SnapshotProvider{snapshots: snapshots}
}

func (p *SnapshotProvider) BookingFacts(ctx context.Context, propertyID string) (Facts, error) {
	payload, err := p.snapshots.GetPayload(ctx, propertyID)
	if err != nil {
		if storage.IsNotFound(err) {
			return Facts{}, ErrNotFound
		}
		return Facts{}, err
	}
	return decodeSnapshot(payload)
}

// snapshotDoc mirrors the catalog.property.updated.v1 payload.
type snapshotDoc struct {
	Property struct {
		ID        string   `json:"id"`
		OwnerID   string   `json:"owner_id"`
		Status    string   `json:"status"`
		Category  string   `json:"category"`
		OfferType string   `json:"offer_type"`
		Currency  string   `json:"currency"`
		Insurance *float64 `json:"insurance"`
		Groups    []struct {
			IDs         []int    `json:"ids"`
			Name        string   `json:"name"`
			Color       string   `json:"color"`
			Description string   `json:"description"`
			Price       *float64 `json:"price"`
			Insurance   *float64 `json:"insurance"`
			Area        *float64 `json:"area"`
			Capacity    int      `json:"capacity"`
		} `json:"groups"`
		Units []struct {
			Type  string `json:"type"`
			Title string `json:"title"`
			Count int    `json:"count"`
		} `json:"units"`
		Windows []struct {
			From time.Time `json:"from"`
			To   time.Time `json:"to"`
		} `json:"tour_windows"`
	} `json:"property"`
}

func decodeSnapshot(payload []byte) (Facts, error) {
	var doc snapshotDoc
	if err := json.Unmarshal(payload, &doc); err != nil {
		return Facts{}, err
	}
	p := doc.Property
	facts := Facts{
		PropertyID: p.ID,
		OwnerID:    p.OwnerID,
		Status:     p.Status,
		Category:   p.Category,
		OfferType:  p.OfferType,
		Currency:   p.Currency,
		Insurance:  p.Insurance,
	}
	for _, g := range p.Groups {
		facts.Groups = append(facts.Groups, grid.Group{
			IDs:         g.IDs,
			Name:        g.Name,
			Color:       g.Color,
			Description: g.Description,
			Price:       g.Price,
			Insurance:   g.Insurance,
			Area:        g.Area,
			Capacity:    g.Capacity,
		})
	}
	for _, u := range p.Units {
		facts.Units = append(facts.Units, UnitType{Type: u.Type, Title: u.Title, Count: u.Count})
	}
	for _, w := range p.Windows {
		facts.Windows = append(facts.Windows, tourtime.Window{From: w.From, To: w.To})
	}
	return facts, nil
}
