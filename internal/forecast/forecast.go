package forecast

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"TrendCast/internal/calculator"
	"TrendCast/internal/model"
	"TrendCast/internal/regressor"
)

// Options controls a single forecast run.
type Options struct {
	HorizonDays     int
	MinObservations int // floor of 2, the least a line fit needs
}

// Run fits a trend line to the series and projects it HorizonDays past the
// last observation.
func Run(series *model.Series, opts Options) (*model.TickerForecast, error) {
	if opts.HorizonDays <= 0 {
		return nil, fmt.Errorf("horizon must be positive, got %d", opts.HorizonDays)
	}
	minObs := opts.MinObservations
	if minObs < 2 {
		minObs = 2
	}

	obs := series.Observations()
	if len(obs) < minObs {
		return nil, fmt.Errorf("%s: %d observations, need at least %d: %w",
			series.Ticker, len(obs), minObs, regressor.ErrInsufficientData)
	}

	m, err := regressor.Fit(obs)
	if err != nil {
		return nil, fmt.Errorf("fit %s: %w", series.Ticker, err)
	}
	q := regressor.Quality(m, obs)

	lastIndex := obs[len(obs)-1].Index
	indices := make([]int, opts.HorizonDays)
	for i := range indices {
		indices[i] = lastIndex + 1 + i
	}
	points := regressor.Predict(m, indices)

	summary := buildSummary(series)
	trend, confidence := Classify(m, q, summary.LastClose)

	return &model.TickerForecast{
		Ticker:      series.Ticker,
		GeneratedAt: time.Now(),
		Model:       m,
		Quality:     q,
		Summary:     summary,
		Points:      points,
		HorizonDays: opts.HorizonDays,
		Trend:       trend,
		Confidence:  confidence,
		ChangePct:   changePercent(summary.LastClose, points[len(points)-1].Price),
	}, nil
}

// buildSummary computes the descriptive stats shown next to the forecast.
// Missing pieces degrade to the last close rather than failing the run.
func buildSummary(series *model.Series) model.IndicatorSummary {
	lastClose := series.LastClose()
	sum := model.IndicatorSummary{LastClose: lastClose}

	if ma, err := calculator.CalculateSMA20(series.Bars); err != nil {
		log.Printf("[WARN] %s: SMA20 unavailable: %v, using last close", series.Ticker, err)
		sum.SMA20 = lastClose
	} else {
		sum.SMA20 = ma
	}

	if ma, err := calculator.CalculateSMA50(series.Bars); err != nil {
		log.Printf("[WARN] %s: SMA50 unavailable: %v, using last close", series.Ticker, err)
		sum.SMA50 = lastClose
	} else {
		sum.SMA50 = ma
	}

	if h, l, err := calculator.Calculate52WeekRange(series.Bars); err != nil {
		log.Printf("[WARN] %s: 52-week range unavailable: %v", series.Ticker, err)
		sum.High52w = lastClose
		sum.Low52w = lastClose
	} else {
		sum.High52w = h
		sum.Low52w = l
	}

	if pos, err := calculator.CalculateRangePosition(lastClose, sum.High52w, sum.Low52w); err != nil {
		log.Printf("[WARN] %s: range position unavailable: %v", series.Ticker, err)
		sum.Position52w = 0.5
	} else {
		sum.Position52w = pos
	}

	return sum
}

// changePercent computes the expected percent change with decimal math so the
// reported figure rounds cleanly to two places.
func changePercent(last, projected float64) float64 {
	if last <= 0 {
		return 0
	}
	lastD := decimal.NewFromFloat(last)
	pct := decimal.NewFromFloat(projected).Sub(lastD).Div(lastD).Mul(decimal.NewFromInt(100))
	f, _ := pct.Round(2).Float64()
	return f
}
