// Package tourtime turns owner-declared tour availability windows into the
// half-hour time choices offered on the visit-scheduling calendar.
package tourtime

import (
	"sort"
	"time"
)

// Window is a raw owner availability range as returned by the schedule API.
// From and To bound an inclusive calendar-day range; their clock components
// bound the bookable hours. All times are expected to be in the same
// location (timezone).
type Window struct {
	From time.Time
	To   time.Time
}

// Span is a window normalized to half-hour boundaries.
type Span struct {
	Start time.Time
	End   time.Time
}

// Step is the spacing between bookable tour times.
const Step = 30 * time.Minute

// Normalize rounds a window inward to half-hour boundaries: the start is
// ceiled to the next half hour, the end floored to the previous one, times
// already on a boundary are unchanged. The second return is false when the
// window inverts (end <= start); such windows are dropped from enumeration
// rather than reported as errors.
func Normalize(w Window) (Span, bool) {
	start := ceilHalfHour(w.From)
	end := floorHalfHour(w.To)
	if !end.After(start) {
		return Span{}, false
	}
	return Span{Start: start, End: end}, true
}

func floorHalfHour(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, min, _ := t.Clock()
	return time.Date(year, month, day, hour, (min/30)*30, 0, 0, t.Location())
}

func ceilHalfHour(t time.Time) time.Time {
	floored := floorHalfHour(t)
	if floored.Equal(t) {
		return floored
	}
	// Adding the step carries into the hour and day as needed.
	return floored.Add(Step)
}

// DateAvailable reports whether the calendar day falls inside the inclusive
// day range of at least one raw window. Day-level availability ignores the
// intraday rounding: a window whose clock times normalize away still marks
// its days available.
func DateAvailable(date time.Time, windows []Window) bool {
	day := dayOf(date)
	for _, w := range windows {
		if !day.Before(dayOf(w.From)) && !day.After(dayOf(w.To)) {
			return true
		}
	}
	return false
}

func dayOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// Choices enumerates the bookable "HH:MM" labels for a date: every window
// whose raw day range covers the date contributes its normalized times in
// half-hour steps, inclusive of both boundaries. Results are deduplicated
// and sorted lexicographically, which for zero-padded 24-hour labels is also
// chronological. An empty slice (never an error) means nothing is bookable.
func Choices(date time.Time, windows []Window) []string {
	day := dayOf(date)
	seen := make(map[string]bool)
	for _, w := range windows {
		if day.Before(dayOf(w.From)) || day.After(dayOf(w.To)) {
			continue
		}
		span, ok := Normalize(w)
		if !ok {
			continue
		}
		for t := span.Start; !t.After(span.End); t = t.Add(Step) {
			seen[t.Format("15:04")] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for label := range seen {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}
