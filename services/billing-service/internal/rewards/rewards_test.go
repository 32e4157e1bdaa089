package rewards

import "testing"

func TestPointsFor(t *testing.T) {
	cases := []struct {
		amount float64
		want   int
	}{
		{0, 0},
		{-50, 0},
		{0.99, 0},
		{1, 1},
		{499.99, 499},
		{500, 500},
		{1200.5, 1200},
	}
	for _, c := range cases {
		if got := PointsFor(c.amount); got != c.want {
			t.Errorf("PointsFor(%v) = %d, want %d", c.amount, got, c.want)
		}
	}
}
