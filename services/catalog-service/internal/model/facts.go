package model

import "github.com/m-alharbi/aqarbook/services/catalog-service/internal/pricing"

// PricingFacts projects a property onto the view the pricing rules consume.
func PricingFacts(p Property) pricing.Facts {
	return pricing.Facts{
		OfferType: pricing.OfferType(p.OfferType),
		Category:  p.Category,
		Price:     p.Price.Float(),
		Discount:  p.Discount.Float(),
		Insurance: p.Insurance.Float(),
		Rates:     toRates(p.Rates),
		Groups:    toGroups(p.Groups),
		Units:     toUnits(p.Units),
	}
}

func toRates(in []PeriodRate) []pricing.Rate {
	out := make([]pricing.Rate, 0, len(in))
	for _, r := range in {
		out = append(out, pricing.Rate{
			Period:  pricing.Period(r.Period),
			Enabled: r.Enabled,
			Price:   r.Price.Float(),
		})
	}
	return out
}

func toGroups(in []SlotGroup) []pricing.Group {
	out := make([]pricing.Group, 0, len(in))
	for _, g := range in {
		out = append(out, pricing.Group{
			IDs:         g.IDs,
			Name:        g.Name,
			Color:       g.Color,
			Description: g.Description,
			Price:       g.Price.Float(),
			Insurance:   g.Insurance.Float(),
			Area:        g.Area.Float(),
			Capacity:    g.Capacity,
		})
	}
	return out
}

func toUnits(in []ApartmentUnit) []pricing.Unit {
	out := make([]pricing.Unit, 0, len(in))
	for _, u := range in {
		out = append(out, pricing.Unit{
			Type:      u.Type,
			Title:     u.Title,
			Bedrooms:  u.Bedrooms,
			Bathrooms: u.Bathrooms,
			Capacity:  u.Capacity,
			Count:     u.Count,
			Rates:     toRates(u.Rates),
		})
	}
	return out
}
