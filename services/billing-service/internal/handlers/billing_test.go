package handlers

import "testing"

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{0, 0},
		{1, 100},
		{499.99, 49999},
		{1200.5, 120050},
		{0.005, 1},
	}
	for _, c := range cases {
		if got := minorUnits(c.amount); got != c.want {
			t.Errorf("minorUnits(%v) = %d, want %d", c.amount, got, c.want)
		}
	}
}
