package pricing

import (
	"strings"
	"testing"
)

func fp(v float64) *float64 { return &v }

func rentFacts(rates ...Rate) Facts {
	return Facts{OfferType: OfferRent, Rates: rates}
}

func TestResolvePeriod_DailyRent(t *testing.T) {
	f := rentFacts(Rate{Period: PeriodDay, Enabled: true, Price: fp(50)})
	p, ok := ResolvePeriod(f)
	if !ok || p != PeriodDay {
		t.Fatalf("expected day period, got %q ok=%v", p, ok)
	}
	got := ResolvePrice(f, false)
	if got == nil || *got != 50 {
		t.Fatalf("expected price 50, got %v", got)
	}
}

func TestResolvePeriod_NonRent(t *testing.T) {
	f := Facts{
		OfferType: OfferCash,
		Price:     fp(75000),
		Rates:     []Rate{{Period: PeriodWeek, Enabled: true, Price: fp(999)}},
	}
	if _, ok := ResolvePeriod(f); ok {
		t.Fatal("non-rent offer must have no period")
	}
	got := ResolvePrice(f, false)
	if got == nil || *got != 75000 {
		t.Fatalf("expected plain price 75000 regardless of rate flags, got %v", got)
	}
}

func TestResolvePeriod_PriorityOrder(t *testing.T) {
	f := rentFacts(
		Rate{Period: PeriodMonth, Enabled: true, Price: fp(900)},
		Rate{Period: PeriodWeek, Enabled: true, Price: fp(300)},
	)
	p, ok := ResolvePeriod(f)
	if !ok || p != PeriodWeek {
		t.Fatalf("week outranks month in the fixed order, got %q", p)
	}
	got := ResolvePrice(f, false)
	if got == nil || *got != 300 {
		t.Fatalf("expected weekly price 300, got %v", got)
	}
}

func TestResolvePrice_CourtShortCircuit(t *testing.T) {
	f := Facts{
		OfferType: OfferRent,
		Category:  CategoryCourt,
		Price:     fp(10),
		Rates:     []Rate{{Period: PeriodWeek, Enabled: true, Price: fp(999)}},
	}
	got := ResolvePrice(f, false)
	if got == nil || *got != 10 {
		t.Fatalf("court must use the plain price before rate flags, got %v", got)
	}
	// Courts are hourly even with an enabled weekly flag.
	p, ok := ResolvePeriod(f)
	if !ok || p != PeriodHour {
		t.Fatalf("court is hourly regardless of rate flags, got %q ok=%v", p, ok)
	}
}

func TestResolvePrice_Discount(t *testing.T) {
	f := Facts{
		OfferType: OfferRent,
		Discount:  fp(20),
		Rates:     []Rate{{Period: PeriodDay, Enabled: true, Price: fp(100)}},
	}
	got := ResolvePrice(f, true)
	if got == nil || *got != 80 {
		t.Fatalf("expected discounted 80, got %v", got)
	}
	got = ResolvePrice(f, false)
	if got == nil || *got != 100 {
		t.Fatalf("discount must not apply unless requested, got %v", got)
	}
}

func TestResolvePrice_SkipsZeroAndMissing(t *testing.T) {
	f := rentFacts(
		Rate{Period: PeriodDay, Enabled: true, Price: fp(0)},
		Rate{Period: PeriodWeek, Enabled: true},
		Rate{Period: PeriodMonth, Enabled: true, Price: fp(1200)},
	)
	got := ResolvePrice(f, false)
	if got == nil || *got != 1200 {
		t.Fatalf("zero and missing prices are skipped, got %v", got)
	}
}

func TestResolvePrice_CampFallsBackToFirstGroup(t *testing.T) {
	f := Facts{
		OfferType: OfferRent,
		Category:  CategoryCamp,
		Groups: []Group{
			{IDs: []int{1, 2}, Price: fp(250)},
			{IDs: []int{3}, Price: fp(400)},
		},
	}
	got := ResolvePrice(f, false)
	if got == nil || *got != 250 {
		t.Fatalf("camp pricing uses the first group, got %v", got)
	}
	p, ok := ResolvePeriod(f)
	if !ok || p != PeriodDay {
		t.Fatalf("camp with no flags is daily, got %q", p)
	}
}

func TestResolvePrice_HotelApartmentUnitPreference(t *testing.T) {
	f := Facts{
		OfferType: OfferRent,
		Category:  CategoryHotelApartment,
		Units: []Unit{{
			Type: "studio",
			Rates: []Rate{
				{Period: PeriodMonth, Price: fp(3000)},
				{Period: PeriodWeek, Price: fp(800)},
			},
		}},
	}
	got := ResolvePrice(f, false)
	if got == nil || *got != 800 {
		t.Fatalf("unit pricing prefers day, then week, then month; got %v", got)
	}
}

func TestResolvePrice_NothingApplies(t *testing.T) {
	f := Facts{OfferType: OfferRent, Category: "villa"}
	if got := ResolvePrice(f, false); got != nil {
		t.Fatalf("expected nil price, got %v", *got)
	}
	if _, ok := ResolvePeriod(f); ok {
		t.Fatal("expected no period")
	}
}

func TestResolvePrice_Idempotent(t *testing.T) {
	f := Facts{
		OfferType: OfferRent,
		Discount:  fp(10),
		Rates:     []Rate{{Period: PeriodDay, Enabled: true, Price: fp(90)}},
	}
	first := ResolvePrice(f, true)
	second := ResolvePrice(f, true)
	if first == nil || second == nil || *first != *second {
		t.Fatalf("identical input must yield identical output: %v vs %v", first, second)
	}
}

func TestOtherPrices_SkipsPrimaryAndDisabled(t *testing.T) {
	f := rentFacts(
		Rate{Period: PeriodDay, Enabled: true, Price: fp(50)},
		Rate{Period: PeriodWeek, Enabled: true, Price: fp(300)},
		Rate{Period: PeriodMonth, Enabled: false, Price: fp(1000)},
		Rate{Period: PeriodHolidays, Enabled: true, Price: fp(75)},
	)
	out := OtherPrices(f, PeriodDay, "SAR", "en", nil)
	if len(out) != 2 {
		t.Fatalf("expected 2 other prices, got %d: %+v", len(out), out)
	}
	if out[0].Period != PeriodWeek || out[1].Period != PeriodHolidays {
		t.Fatalf("order must follow the fixed rate order: %+v", out)
	}
	if !strings.HasSuffix(out[0].Amount, " SAR") {
		t.Fatalf("amount carries the currency code as a suffix: %q", out[0].Amount)
	}
}

func TestOtherPrices_NonRent(t *testing.T) {
	f := Facts{OfferType: OfferInstallment, Price: fp(100000)}
	if out := OtherPrices(f, "", "SAR", "en", nil); out != nil {
		t.Fatalf("non-rent offers have no other prices, got %+v", out)
	}
}

func TestFormatAmount_Grouping(t *testing.T) {
	got := FormatAmount(1500, "SAR", "en")
	if got != "1,500 SAR" {
		t.Fatalf("expected \"1,500 SAR\", got %q", got)
	}
	got = FormatAmount(99.5, "KWD", "en")
	if got != "99.5 KWD" {
		t.Fatalf("expected \"99.5 KWD\", got %q", got)
	}
	// Unknown locales fall back to English formatting rather than erroring.
	if got := FormatAmount(10, "SAR", "zz-invalid"); !strings.HasSuffix(got, " SAR") {
		t.Fatalf("unexpected fallback formatting: %q", got)
	}
}
