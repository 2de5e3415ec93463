package collector

import "TrendCast/internal/model"

// Fetcher defines the interface for downloading daily price history.
type Fetcher interface {
	FetchDailyBars(ticker string, days int) ([]model.Bar, error)
	Name() string
}
