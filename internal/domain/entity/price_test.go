package entity

import "testing"

func TestPercentChange_Empty(t *testing.T) {
	var series PriceSeries

	if _, ok := series.PercentChange(); ok {
		t.Fatal("empty series should not produce a change")
	}
}

func TestPercentChange_SingleSample(t *testing.T) {
	series := PriceSeries{{TimestampMillis: 1, PriceUSD: 100}}

	change, ok := series.PercentChange()
	if !ok {
		t.Fatal("single sample should produce a change")
	}
	if change != 0 {
		t.Fatalf("expected 0%% for a single sample, got %v", change)
	}
}

func TestPercentChange_Rising(t *testing.T) {
	series := PriceSeries{
		{TimestampMillis: 1, PriceUSD: 100},
		{TimestampMillis: 2, PriceUSD: 105},
		{TimestampMillis: 3, PriceUSD: 110},
	}

	change, ok := series.PercentChange()
	if !ok {
		t.Fatal("expected a computable change")
	}
	if change != 10 {
		t.Fatalf("expected 10, got %v", change)
	}
}

func TestPercentChange_Rounding(t *testing.T) {
	series := PriceSeries{
		{TimestampMillis: 1, PriceUSD: 3},
		{TimestampMillis: 2, PriceUSD: 4},
	}

	change, ok := series.PercentChange()
	if !ok {
		t.Fatal("expected a computable change")
	}
	// (4-3)/3*100 = 33.333... -> 33.33
	if change != 33.33 {
		t.Fatalf("expected 33.33, got %v", change)
	}
}

func TestPercentChange_Falling(t *testing.T) {
	series := PriceSeries{
		{TimestampMillis: 1, PriceUSD: 200},
		{TimestampMillis: 2, PriceUSD: 150},
	}

	change, ok := series.PercentChange()
	if !ok {
		t.Fatal("expected a computable change")
	}
	if change != -25 {
		t.Fatalf("expected -25, got %v", change)
	}
}

func TestPercentChange_ZeroFirstPrice(t *testing.T) {
	series := PriceSeries{
		{TimestampMillis: 1, PriceUSD: 0},
		{TimestampMillis: 2, PriceUSD: 100},
	}

	if _, ok := series.PercentChange(); ok {
		t.Fatal("zero first price must not produce a change")
	}
}
