package handlers

import (
	"testing"
	"time"

	"github.com/m-alharbi/aqarbook/services/catalog-service/internal/model"
)

func num(v float64) *model.Numeric {
	n := model.Numeric(v)
	return &n
}

func TestPropertyRequestValidate(t *testing.T) {
	req := propertyRequest{
		Title:     "  Corniche camp  ",
		Category:  "Camp",
		OfferType: "Rent",
		City:      "Dammam",
	}
	if msg := req.validate(); msg != "" {
		t.Fatalf("expected valid request, got %q", msg)
	}
	if req.Category != "camp" || req.OfferType != "rent" {
		t.Fatalf("category and offer type normalize to lower case: %q %q", req.Category, req.OfferType)
	}
	if req.Currency != "SAR" {
		t.Fatalf("currency defaults to SAR, got %q", req.Currency)
	}

	bad := propertyRequest{Title: "x", Category: "villa", City: "Riyadh", OfferType: "lease"}
	if msg := bad.validate(); msg == "" {
		t.Fatal("unknown offer_type must be rejected")
	}

	badDiscount := propertyRequest{Title: "x", Category: "villa", City: "Riyadh", OfferType: "rent", Discount: num(140)}
	if msg := badDiscount.validate(); msg == "" {
		t.Fatal("discount above 100 must be rejected")
	}

	badWindow := propertyRequest{
		Title: "x", Category: "villa", City: "Riyadh", OfferType: "rent",
		Windows: []model.TourWindow{{
			From: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
			To:   time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC),
		}},
	}
	if msg := badWindow.validate(); msg == "" {
		t.Fatal("inverted tour window must be rejected")
	}
}

func TestBuildQuote_RentWithDiscount(t *testing.T) {
	prop := model.Property{
		ID:        "p1",
		OfferType: "rent",
		Category:  "villa",
		Currency:  "SAR",
		Discount:  num(20),
		Rates: []model.PeriodRate{
			{Period: "day", Enabled: true, Price: num(100)},
			{Period: "month", Enabled: true, Price: num(2000)},
		},
	}

	q := buildQuote(prop, true, "en")
	if q.Period != "day" {
		t.Fatalf("expected daily period, got %q", q.Period)
	}
	if q.Price == nil || *q.Price != 80 {
		t.Fatalf("expected discounted 80, got %v", q.Price)
	}
	if q.Display != "80 SAR" {
		t.Fatalf("expected display \"80 SAR\", got %q", q.Display)
	}
	if len(q.OtherPrices) != 1 || q.OtherPrices[0].Period != "month" {
		t.Fatalf("expected one other price (month), got %+v", q.OtherPrices)
	}

	raw := buildQuote(prop, false, "en")
	if raw.Price == nil || *raw.Price != 100 {
		t.Fatalf("undiscounted quote should be 100, got %v", raw.Price)
	}
}

func TestBuildQuote_SaleIgnoresRates(t *testing.T) {
	prop := model.Property{
		ID:        "p2",
		OfferType: "cash",
		Currency:  "SAR",
		Price:     num(750000),
		Rates:     []model.PeriodRate{{Period: "week", Enabled: true, Price: num(999)}},
	}
	q := buildQuote(prop, true, "en")
	if q.Period != "" {
		t.Fatalf("sale offers carry no period, got %q", q.Period)
	}
	if q.Price == nil || *q.Price != 750000 {
		t.Fatalf("expected plain price, got %v", q.Price)
	}
	if len(q.OtherPrices) != 0 {
		t.Fatalf("sale offers have no other prices: %+v", q.OtherPrices)
	}
}
