package collector

import (
	"fmt"
	"sort"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"

	"TrendCast/internal/model"
)

// AlpacaFetcher implements Fetcher using the Alpaca market data API.
type AlpacaFetcher struct {
	client *marketdata.Client
}

// NewAlpacaFetcher creates a fetcher authenticated with an Alpaca key pair.
func NewAlpacaFetcher(apiKey, apiSecret string) *AlpacaFetcher {
	return &AlpacaFetcher{
		client: marketdata.NewClient(marketdata.ClientOpts{
			APIKey:    apiKey,
			APISecret: apiSecret,
		}),
	}
}

func (f *AlpacaFetcher) Name() string { return "alpaca" }

func (f *AlpacaFetcher) FetchDailyBars(ticker string, days int) ([]model.Bar, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -(days*7/5 + 14))

	raw, err := f.client.GetBars(ticker, marketdata.GetBarsRequest{
		Start:     start,
		End:       end,
		TimeFrame: marketdata.OneDay,
		Feed:      marketdata.IEX,
	})
	if err != nil {
		return nil, fmt.Errorf("alpaca fetch %s: %w", ticker, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("alpaca: no data for %s", ticker)
	}

	bars := make([]model.Bar, len(raw))
	for i, b := range raw {
		bars[i] = model.Bar{
			Date:   b.Timestamp,
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: float64(b.Volume),
		}
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}
