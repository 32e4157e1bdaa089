package tourtime

import (
	"testing"
	"time"
)

func at(day, hour, min int) time.Time {
	return time.Date(2026, time.March, day, hour, min, 0, 0, time.UTC)
}

func TestNormalize_RoundsInward(t *testing.T) {
	span, ok := Normalize(Window{From: at(10, 9, 7), To: at(10, 17, 52)})
	if !ok {
		t.Fatal("window should normalize")
	}
	if !span.Start.Equal(at(10, 9, 30)) {
		t.Fatalf("start ceils to 09:30, got %v", span.Start)
	}
	if !span.End.Equal(at(10, 17, 30)) {
		t.Fatalf("end floors to 17:30, got %v", span.End)
	}
}

func TestNormalize_BoundariesUnchanged(t *testing.T) {
	span, ok := Normalize(Window{From: at(10, 9, 0), To: at(10, 17, 30)})
	if !ok {
		t.Fatal("window should normalize")
	}
	if !span.Start.Equal(at(10, 9, 0)) || !span.End.Equal(at(10, 17, 30)) {
		t.Fatalf("exact boundaries must not move: %v", span)
	}
}

func TestNormalize_InvertedWindowIsInvalid(t *testing.T) {
	// 09:01-09:20 rounds to 09:30-09:00, which is inverted.
	if _, ok := Normalize(Window{From: at(10, 9, 1), To: at(10, 9, 20)}); ok {
		t.Fatal("window narrower than the rounding step must be invalid")
	}
}

func TestNormalize_CeilCarriesIntoNextDay(t *testing.T) {
	span, ok := Normalize(Window{From: at(10, 23, 45), To: at(11, 8, 0)})
	if !ok {
		t.Fatal("window should normalize")
	}
	if !span.Start.Equal(at(11, 0, 0)) {
		t.Fatalf("23:45 ceils into the next day, got %v", span.Start)
	}
}

func TestDateAvailable_RawInclusiveDayRange(t *testing.T) {
	windows := []Window{{From: at(10, 9, 7), To: at(12, 17, 52)}}
	for day := 10; day <= 12; day++ {
		if !DateAvailable(at(day, 0, 0), windows) {
			t.Fatalf("day %d is inside the window", day)
		}
	}
	if DateAvailable(at(9, 23, 59), windows) || DateAvailable(at(13, 0, 0), windows) {
		t.Fatal("days outside the window must not be available")
	}
}

func TestDateAvailable_IgnoresIntradayRounding(t *testing.T) {
	// The window normalizes away but its day still counts as available.
	windows := []Window{{From: at(10, 9, 1), To: at(10, 9, 20)}}
	if !DateAvailable(at(10, 12, 0), windows) {
		t.Fatal("day availability uses the raw range, not the normalized span")
	}
}

func TestChoices_HalfHourLabelsInclusive(t *testing.T) {
	windows := []Window{{From: at(10, 9, 7), To: at(10, 17, 52)}}
	got := Choices(at(10, 0, 0), windows)
	if len(got) != 17 {
		t.Fatalf("09:30 through 17:30 is 17 choices, got %d: %v", len(got), got)
	}
	if got[0] != "09:30" || got[len(got)-1] != "17:30" {
		t.Fatalf("both boundaries are bookable: %v", got)
	}
}

func TestChoices_UnionAndDedupe(t *testing.T) {
	windows := []Window{
		{From: at(10, 9, 0), To: at(10, 10, 0)},
		{From: at(10, 9, 30), To: at(10, 11, 0)},
	}
	got := Choices(at(10, 0, 0), windows)
	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestChoices_DropsInvalidWindows(t *testing.T) {
	windows := []Window{
		{From: at(10, 9, 1), To: at(10, 9, 20)},
		{From: at(10, 14, 0), To: at(10, 15, 0)},
	}
	got := Choices(at(10, 0, 0), windows)
	want := []string{"14:00", "14:30", "15:00"}
	if len(got) != len(want) {
		t.Fatalf("invalid windows contribute nothing: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestChoices_NoWindowsForDate(t *testing.T) {
	windows := []Window{{From: at(10, 9, 0), To: at(10, 17, 0)}}
	if got := Choices(at(11, 0, 0), windows); got != nil {
		t.Fatalf("dates outside every window yield no choices, got %v", got)
	}
}
