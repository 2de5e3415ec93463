package model

// IndicatorSummary holds descriptive statistics computed alongside a fit.
type IndicatorSummary struct {
	LastClose   float64
	SMA20       float64
	SMA50       float64
	High52w     float64
	Low52w      float64
	Position52w float64 // 0.0 ~ 1.0
}
