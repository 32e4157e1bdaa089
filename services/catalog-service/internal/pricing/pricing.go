package pricing

// Period is the billing cadence of a rental price.
type Period string

const (
	PeriodHour     Period = "hour"
	PeriodDay      Period = "day"
	PeriodWeek     Period = "week"
	PeriodMonth    Period = "month"
	PeriodWeekdays Period = "weekdays"
	PeriodHolidays Period = "holidays"
)

// OfferType is the commercial arrangement for a listing. Only rent offers
// carry period-based prices; everything else uses the plain price field.
type OfferType string

const (
	OfferRent        OfferType = "rent"
	OfferCash        OfferType = "cash"
	OfferInstallment OfferType = "installment"
	OfferShared      OfferType = "shared"
	OfferReplacement OfferType = "replacement"
)

// Categories with special pricing behavior. Court listings are implicitly
// hourly on the plain price; camps and booths price per slot group; hotel
// apartments price per unit type.
const (
	CategoryCourt          = "court"
	CategoryCamp           = "camp"
	CategoryBooth          = "booth"
	CategoryHotelApartment = "hotelapartment"
)

// Rate is one period flag/price pair of the wire model.
type Rate struct {
	Period  Period
	Enabled bool
	Price   *float64
}

// RateOrder is the fixed precedence of period rates. Resolution walks this
// slice in order, so precedence is data rather than a conditional chain.
var RateOrder = []Period{PeriodDay, PeriodWeek, PeriodMonth, PeriodWeekdays, PeriodHolidays}

// Group is a named partition of numbered camp/booth slots with its own price.
type Group struct {
	IDs         []int
	Name        string
	Color       string
	Description string
	Price       *float64
	Insurance   *float64
	Area        *float64
	Capacity    int
}

// Unit is a bookable hotel-apartment unit type.
type Unit struct {
	Type      string
	Title     string
	Bedrooms  int
	Bathrooms int
	Capacity  int
	Count     int
	Rates     []Rate
}

// Facts is the pricing-relevant view of a listing.
type Facts struct {
	OfferType OfferType
	Category  string
	Price     *float64
	Discount  *float64 // percentage, 0-100
	Insurance *float64 // property-level fallback for group insurance
	Rates     []Rate
	Groups    []Group
	Units     []Unit
}

func (f Facts) rate(p Period) (Rate, bool) {
	for _, r := range f.Rates {
		if r.Period == p {
			return r, true
		}
	}
	return Rate{}, false
}

func truthy(p *float64) bool {
	return p != nil && *p != 0
}

// ResolvePeriod returns the billing period shown next to the primary price.
// Non-rent offers have no period. Court listings are hourly regardless of
// rate flags (mirroring the price short-circuit); otherwise enabled rates win
// in RateOrder, and camps and booths default to daily. Total over its input:
// the second return is false when no period applies.
func ResolvePeriod(f Facts) (Period, bool) {
	if f.OfferType != OfferRent {
		return "", false
	}
	if f.Category == CategoryCourt {
		return PeriodHour, true
	}
	for _, p := range RateOrder {
		if r, ok := f.rate(p); ok && r.Enabled {
			return p, true
		}
	}
	if f.Category == CategoryCamp || f.Category == CategoryBooth {
		return PeriodDay, true
	}
	return "", false
}

// ResolvePrice returns the single price displayed for a listing, or nil when
// none applies. applyDiscount multiplies by (1 - discount/100); the raw price
// is returned otherwise. Pure and total: never errors for well-formed facts.
func ResolvePrice(f Facts, applyDiscount bool) *float64 {
	if f.OfferType != OfferRent {
		if f.Price == nil {
			return nil
		}
		v := *f.Price
		return &v
	}

	factor := 1.0
	if applyDiscount && f.Discount != nil {
		factor = 1 - *f.Discount/100
	}

	// Court listings short-circuit on the plain price before any rate flag
	// is consulted.
	if f.Category == CategoryCourt && truthy(f.Price) {
		v := *f.Price * factor
		return &v
	}

	for _, p := range RateOrder {
		r, ok := f.rate(p)
		if ok && r.Enabled && truthy(r.Price) {
			v := *r.Price * factor
			return &v
		}
	}

	switch f.Category {
	case CategoryCamp, CategoryBooth:
		if len(f.Groups) > 0 && truthy(f.Groups[0].Price) {
			v := *f.Groups[0].Price * factor
			return &v
		}
	case CategoryHotelApartment:
		if len(f.Units) > 0 {
			if p := unitPrice(f.Units[0]); p != nil {
				v := *p * factor
				return &v
			}
		}
	}
	return nil
}

// unitPrice prefers the unit's daily, then weekly, then monthly price. Rate
// flags are not consulted: the first truthy price wins.
func unitPrice(u Unit) *float64 {
	for _, p := range []Period{PeriodDay, PeriodWeek, PeriodMonth} {
		for _, r := range u.Rates {
			if r.Period == p && truthy(r.Price) {
				return r.Price
			}
		}
	}
	return nil
}

// OtherPrice is a secondary rental price shown below the primary one.
type OtherPrice struct {
	Period Period
	Label  string
	Amount string
}

// OtherPrices lists the enabled period prices not already shown as the
// primary, in RateOrder, formatted for display. Only meaningful for rent
// offers; other offer types yield nil.
func OtherPrices(f Facts, primary Period, currency, locale string, label func(Period) string) []OtherPrice {
	if f.OfferType != OfferRent {
		return nil
	}
	var out []OtherPrice
	for _, p := range RateOrder {
		if p == primary {
			continue
		}
		r, ok := f.rate(p)
		if !ok || !r.Enabled || !truthy(r.Price) {
			continue
		}
		name := string(p)
		if label != nil {
			name = label(p)
		}
		out = append(out, OtherPrice{
			Period: p,
			Label:  name,
			Amount: FormatAmount(*r.Price, currency, locale),
		})
	}
	return out
}
