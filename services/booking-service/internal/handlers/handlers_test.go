package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-alharbi/aqarbook/services/booking-service/internal/catalog"
	"github.com/m-alharbi/aqarbook/services/booking-service/internal/grid"
)

func f(v float64) *float64 { return &v }

func TestDepositForPicksHighestGroupInsurance(t *testing.T) {
	groups := []grid.Group{
		{IDs: []int{1, 2}, Name: "front", Insurance: f(500)},
		{IDs: []int{3, 4}, Name: "back", Insurance: f(1200)},
		{IDs: []int{5}, Name: "side"},
	}
	facts := catalog.Facts{Insurance: f(300)}
	index := grid.BuildIndex(groups)

	if got := depositFor(facts, []int{1, 3}, index); got != 1200 {
		t.Fatalf("deposit = %v, want 1200", got)
	}
	if got := depositFor(facts, []int{1}, index); got != 500 {
		t.Fatalf("deposit = %v, want 500", got)
	}
}

func TestDepositForFallsBackToPropertyInsurance(t *testing.T) {
	groups := []grid.Group{{IDs: []int{5}, Name: "side"}}
	facts := catalog.Facts{Insurance: f(300)}
	index := grid.BuildIndex(groups)

	if got := depositFor(facts, []int{5}, index); got != 300 {
		t.Fatalf("deposit = %v, want 300", got)
	}
	if got := depositFor(catalog.Facts{}, []int{5}, index); got != 0 {
		t.Fatalf("deposit = %v, want 0", got)
	}
}

func TestParseDateRange(t *testing.T) {
	r := httptest.NewRequest("GET", "/grid?from=2026-04-01&to=2026-04-07", nil)
	from, to, msg := parseDateRange(r)
	if msg != "" {
		t.Fatalf("unexpected error: %s", msg)
	}
	if !from.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("from = %v", from)
	}
	if !to.Equal(time.Date(2026, 4, 7, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("to = %v", to)
	}

	r = httptest.NewRequest("GET", "/grid?from=2026-04-07&to=2026-04-01", nil)
	if _, _, msg := parseDateRange(r); msg == "" {
		t.Fatal("expected error for inverted range")
	}

	r = httptest.NewRequest("GET", "/grid?from=2026-04-01", nil)
	if _, _, msg := parseDateRange(r); msg == "" {
		t.Fatal("expected error for missing to")
	}

	r = httptest.NewRequest("GET", "/grid?from=04/01/2026&to=2026-04-07", nil)
	if _, _, msg := parseDateRange(r); msg == "" {
		t.Fatal("expected error for bad format")
	}
}

func TestContainsLabel(t *testing.T) {
	choices := []string{"09:00", "09:30", "10:00"}
	if !containsLabel(choices, "09:30") {
		t.Fatal("09:30 should be offered")
	}
	if containsLabel(choices, "09:15") {
		t.Fatal("09:15 should not be offered")
	}
	if containsLabel(nil, "09:00") {
		t.Fatal("no choices should offer nothing")
	}
}
