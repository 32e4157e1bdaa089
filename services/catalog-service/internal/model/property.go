package model

import "time"

// Property is a marketplace listing as stored by catalog-service. Rates,
// groups, units and tour windows live in JSONB columns, so the struct doubles
// as the wire shape for API responses and catalog update events.
type Property struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	OfferType   string          `json:"offer_type"`
	City        string          `json:"city"`
	District    string          `json:"district,omitempty"`
	Currency    string          `json:"currency"`
	Price       *Numeric        `json:"price,omitempty"`
	Discount    *Numeric        `json:"discount,omitempty"`
	Insurance   *Numeric        `json:"insurance,omitempty"`
	Rates       []PeriodRate    `json:"rates,omitempty"`
	Groups      []SlotGroup     `json:"groups,omitempty"`
	Units       []ApartmentUnit `json:"units,omitempty"`
	Windows     []TourWindow    `json:"tour_windows,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// PeriodRate is one period flag/price pair (day, week, month, weekdays,
// holidays).
type PeriodRate struct {
	Period  string   `json:"period"`
	Enabled bool     `json:"enabled"`
	Price   *Numeric `json:"price,omitempty"`
}

// SlotGroup is a named partition of numbered camp/booth slots.
type SlotGroup struct {
	IDs         []int    `json:"ids"`
	Name        string   `json:"name"`
	Color       string   `json:"color,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       *Numeric `json:"price,omitempty"`
	Insurance   *Numeric `json:"insurance,omitempty"`
	Area        *Numeric `json:"area,omitempty"`
	Capacity    int      `json:"capacity,omitempty"`
}

// ApartmentUnit is a bookable hotel-apartment unit type with its own rates.
type ApartmentUnit struct {
	Type      string       `json:"type"`
	Title     string       `json:"title,omitempty"`
	Bedrooms  int          `json:"bedrooms,omitempty"`
	Bathrooms int          `json:"bathrooms,omitempty"`
	Capacity  int          `json:"capacity,omitempty"`
	Count     int          `json:"count"`
	Rates     []PeriodRate `json:"rates,omitempty"`
}

// TourWindow is an owner-declared visit availability range.
type TourWindow struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}
