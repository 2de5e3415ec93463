package model

import "time"

// TrendLabel classifies the direction of a fitted trend.
type TrendLabel string

const (
	TrendStrongUp   TrendLabel = "STRONG_UP"
	TrendUp         TrendLabel = "UP"
	TrendSideways   TrendLabel = "SIDEWAYS"
	TrendDown       TrendLabel = "DOWN"
	TrendStrongDown TrendLabel = "STRONG_DOWN"
)

// ConfidenceLabel grades how much weight a forecast deserves.
type ConfidenceLabel string

const (
	ConfidenceHigh   ConfidenceLabel = "HIGH"
	ConfidenceMedium ConfidenceLabel = "MEDIUM"
	ConfidenceLow    ConfidenceLabel = "LOW"
)

// TickerForecast is the final output of the forecast engine for one ticker.
type TickerForecast struct {
	Ticker      string
	GeneratedAt time.Time
	Model       TrendModel
	Quality     FitQuality
	Summary     IndicatorSummary
	Points      []PredictedPoint
	HorizonDays int
	Trend       TrendLabel
	Confidence  ConfidenceLabel
	ChangePct   float64 // expected close-to-horizon change, percent
}
