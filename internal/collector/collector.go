package collector

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"TrendCast/internal/dataset"
	"TrendCast/internal/model"
)

// MockFetcher returns deterministic synthetic data for development and testing.
type MockFetcher struct {
	BasePrice float64
	Bars      []model.Bar
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, days int) ([]model.Bar, error) {
	if m.Bars != nil {
		return m.Bars, nil
	}
	base := m.BasePrice
	if base == 0 {
		base = 100
	}
	return generateMockBars(base, days), nil
}

// generateMockBars produces a gentle linear ramp around the base price.
func generateMockBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Date:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector downloads price history for a set of tickers and stores one CSV
// per ticker under DataDir.
type Collector struct {
	Fetcher     Fetcher
	Tickers     []string
	HistoryDays int
	DataDir     string
	MaxRetries  int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, tickers []string, historyDays int, dataDir string, maxRetries int) *Collector {
	return &Collector{
		Fetcher:     fetcher,
		Tickers:     tickers,
		HistoryDays: historyDays,
		DataDir:     dataDir,
		MaxRetries:  maxRetries,
	}
}

// Summary reports the outcome of one collection pass.
type Summary struct {
	Fetched []string
	Skipped []string
}

// CollectAll fetches every configured ticker. Individual failures are logged
// and skipped; it fails only when no ticker could be fetched at all.
func (c *Collector) CollectAll(ctx context.Context) (*Summary, error) {
	if len(c.Tickers) == 0 {
		return nil, fmt.Errorf("no tickers configured")
	}

	sum := &Summary{}
	for _, ticker := range c.Tickers {
		select {
		case <-ctx.Done():
			return sum, ctx.Err()
		default:
		}

		bars, err := c.fetchWithRetry(ctx, ticker)
		if err != nil {
			log.Printf("[WARN] fetch %s failed: %v, skipping", ticker, err)
			sum.Skipped = append(sum.Skipped, ticker)
			continue
		}

		series := &model.Series{Ticker: ticker, Bars: bars, FetchedAt: time.Now()}
		path := filepath.Join(c.DataDir, ticker+".csv")
		if err := dataset.Save(path, series); err != nil {
			log.Printf("[WARN] save %s failed: %v, skipping", ticker, err)
			sum.Skipped = append(sum.Skipped, ticker)
			continue
		}

		log.Printf("[INFO] fetched %s via %s: %d bars -> %s", ticker, c.Fetcher.Name(), len(bars), path)
		sum.Fetched = append(sum.Fetched, ticker)
	}

	if len(sum.Fetched) == 0 {
		return sum, fmt.Errorf("all %d tickers failed", len(c.Tickers))
	}
	return sum, nil
}

// fetchWithRetry retries transient download failures with exponential backoff.
func (c *Collector) fetchWithRetry(ctx context.Context, ticker string) ([]model.Bar, error) {
	var lastErr error
	for i := 0; i <= c.MaxRetries; i++ {
		bars, err := c.Fetcher.FetchDailyBars(ticker, c.HistoryDays)
		if err == nil {
			return bars, nil
		}
		lastErr = err
		if i == c.MaxRetries {
			break
		}
		backoff := time.Duration(1<<uint(i)) * time.Second
		log.Printf("[WARN] fetch %s failed (attempt %d/%d): %v, retrying in %v",
			ticker, i+1, c.MaxRetries+1, err, backoff)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
	return nil, fmt.Errorf("all %d attempts failed: %w", c.MaxRetries+1, lastErr)
}
