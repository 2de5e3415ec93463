package calculator

import (
	"errors"

	"TrendCast/internal/model"
)

// CalculateSMA computes the simple moving average of the given prices over the specified period.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for _, p := range prices[len(prices)-period:] {
		sum += p
	}
	return sum / float64(period), nil
}

// CalculateSMA20 returns the 20-day simple moving average from daily bars.
func CalculateSMA20(bars []model.Bar) (float64, error) {
	return CalculateSMA(extractCloses(bars), 20)
}

// CalculateSMA50 returns the 50-day simple moving average from daily bars.
func CalculateSMA50(bars []model.Bar) (float64, error) {
	return CalculateSMA(extractCloses(bars), 50)
}

func extractCloses(bars []model.Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
