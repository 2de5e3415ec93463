package collector

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"TrendCast/internal/dataset"
	"TrendCast/internal/model"
)

// StooqFetcher implements Fetcher using the Stooq public CSV endpoint.
type StooqFetcher struct {
	BaseURL string
	Suffix  string // appended to plain tickers, e.g. ".us"
	Client  *http.Client
}

// NewStooqFetcher creates a new Stooq fetcher with optional proxy support.
func NewStooqFetcher(baseURL, suffix, proxyURL string) *StooqFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if baseURL == "" {
		baseURL = "https://stooq.com"
	}
	if suffix == "" {
		suffix = ".us"
	}
	return &StooqFetcher{
		BaseURL: baseURL,
		Suffix:  suffix,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *StooqFetcher) Name() string { return "stooq" }

// stooqSymbol lowercases the ticker and appends the market suffix unless the
// ticker already names a market (AAPL.DE) or an index (^SPX).
func (f *StooqFetcher) stooqSymbol(ticker string) string {
	t := strings.ToLower(ticker)
	if strings.ContainsAny(t, ".^") {
		return t
	}
	return t + f.Suffix
}

func (f *StooqFetcher) FetchDailyBars(ticker string, days int) ([]model.Bar, error) {
	// Calendar span padded for weekends and holidays.
	end := time.Now()
	start := end.AddDate(0, 0, -(days*7/5 + 14))
	endpoint := fmt.Sprintf("%s/q/d/l/?s=%s&d1=%s&d2=%s&i=d",
		f.BaseURL, url.QueryEscape(f.stooqSymbol(ticker)),
		start.Format("20060102"), end.Format("20060102"))

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stooq fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("stooq: status %d, body: %s", resp.StatusCode, string(body))
	}

	// Unknown symbols come back as a 200 with a plain "No data" body,
	// which parses to zero bars.
	bars, skipped, err := dataset.ParseBars(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("stooq decode: %w", err)
	}
	if skipped > 0 {
		log.Printf("[WARN] stooq %s: skipped %d malformed rows", ticker, skipped)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("stooq: no data for %s", ticker)
	}
	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}
