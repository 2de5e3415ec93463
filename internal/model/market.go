package model

import "time"

// Bar represents a single daily candlestick bar.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Series holds the ordered daily price history of one ticker.
// Bars are expected to be sorted by date ascending.
type Series struct {
	Ticker    string
	Bars      []Bar
	FetchedAt time.Time
}

// Len returns the number of bars in the series.
func (s *Series) Len() int {
	return len(s.Bars)
}

// Closes returns the close prices in bar order.
func (s *Series) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// LastClose returns the close of the most recent bar, or 0 for an empty series.
func (s *Series) LastClose() float64 {
	if len(s.Bars) == 0 {
		return 0
	}
	return s.Bars[len(s.Bars)-1].Close
}

// Observations maps the series onto (index, price) pairs for trend fitting.
// Indices are assigned from bar order: 0 for the oldest bar, counting up.
func (s *Series) Observations() []Observation {
	obs := make([]Observation, len(s.Bars))
	for i, b := range s.Bars {
		obs[i] = Observation{Index: i, Price: b.Close}
	}
	return obs
}
