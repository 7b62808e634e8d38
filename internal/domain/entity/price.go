package entity

import "math"

// PricePoint is one sample of a market chart.
type PricePoint struct {
	TimestampMillis int64
	PriceUSD        float64
}

// PriceSeries is a chronological run of samples. It may legitimately be
// empty, which callers must treat as "no change computable".
type PriceSeries []PricePoint

// PercentChange computes the percentage move between the first and last
// sample, rounded to two decimals. ok is false when the series is empty or
// the first price is zero; it never returns NaN or Inf.
func (s PriceSeries) PercentChange() (change float64, ok bool) {
	if len(s) == 0 {
		return 0, false
	}
	first := s[0].PriceUSD
	last := s[len(s)-1].PriceUSD
	if first == 0 {
		return 0, false
	}
	change = (last - first) / first * 100
	return math.Round(change*100) / 100, true
}
