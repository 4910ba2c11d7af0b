package currency_test

import (
	"testing"

	"github.com/diegoabmdev/mi-ecommerce-sub000/pkg/currency"
)

func TestToCLP_Rounding(t *testing.T) {
	cases := []struct {
		usd  float64
		rate float64
		want int64
	}{
		{usd: 1, rate: 950, want: 950},
		{usd: 9.99, rate: 950, want: 9491}, // 9490.5 rounds up
		{usd: 0, rate: 950, want: 0},
		{usd: 2.5, rate: 100, want: 250},
	}
	for _, tc := range cases {
		if got := currency.ToCLP(tc.usd, tc.rate); got != tc.want {
			t.Fatalf("ToCLP(%v, %v): want %d, got %d", tc.usd, tc.rate, tc.want, got)
		}
	}
}

func TestToCLP_BadRateFallsBack(t *testing.T) {
	if got := currency.ToCLP(2, 0); got != 1900 {
		t.Fatalf("want default rate applied (1900), got %d", got)
	}
	if got := currency.ToCLP(2, -10); got != 1900 {
		t.Fatalf("negative rate: want 1900, got %d", got)
	}
}
