package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatAmount renders a price with locale-aware digit grouping, at most two
// fraction digits, and the currency code as a literal suffix. The suffix is
// deliberate: the marketplace shows "1,500 SAR" / "١٬٥٠٠ SAR" rather than the
// locale's native currency symbol placement.
func FormatAmount(amount float64, currency, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	formatted := p.Sprint(number.Decimal(amount, number.MaxFractionDigits(2)))
	if currency == "" {
		return formatted
	}
	return formatted + " " + currency
}
