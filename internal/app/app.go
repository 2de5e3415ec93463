package app

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"TrendCast/internal/collector"
	"TrendCast/internal/config"
	"TrendCast/internal/dataset"
	"TrendCast/internal/forecast"
	"TrendCast/internal/recorder"
	"TrendCast/internal/report"
	"TrendCast/internal/store"
)

// App wires the pipeline stages together.
type App struct {
	Config    *config.Config
	Collector *collector.Collector
	Store     *store.Store
	Recorder  recorder.Recorder
}

// New creates an App.
func New(cfg *config.Config, col *collector.Collector, st *store.Store, rec recorder.Recorder) *App {
	return &App{Config: cfg, Collector: col, Store: st, Recorder: rec}
}

// FetchOnce downloads price history for all configured tickers.
func (a *App) FetchOnce(ctx context.Context) error {
	started := time.Now()
	runID := uuid.New().String()
	log.Printf("[INFO] fetch run %s: %d tickers via %s", runID, len(a.Config.Tickers), a.Collector.Fetcher.Name())

	sum, err := a.Collector.CollectAll(ctx)
	failed := 0
	if sum != nil {
		failed = len(sum.Skipped)
	}
	a.recordRun(runID, "fetch", started, failed)

	if err != nil {
		return fmt.Errorf("fetch run %s: %w", runID, err)
	}
	log.Printf("[INFO] fetch run %s done: %d fetched, %d skipped", runID, len(sum.Fetched), len(sum.Skipped))
	return nil
}

// PredictOnce fits and projects every configured ticker from the data on disk.
// Per-ticker failures are logged and skipped; it fails only when nothing could
// be forecast at all.
func (a *App) PredictOnce(ctx context.Context) error {
	started := time.Now()
	runID := uuid.New().String()
	opts := forecast.Options{
		HorizonDays:     a.Config.Forecast.HorizonDays,
		MinObservations: a.Config.Forecast.MinObservations,
	}
	log.Printf("[INFO] predict run %s: %d tickers, horizon %d days", runID, len(a.Config.Tickers), opts.HorizonDays)

	var done, failed int
	for _, ticker := range a.Config.Tickers {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := a.predictTicker(runID, ticker, opts); err != nil {
			log.Printf("[WARN] predict %s failed: %v, skipping", ticker, err)
			failed++
			continue
		}
		done++
	}

	a.recordRun(runID, "predict", started, failed)
	if done == 0 {
		return fmt.Errorf("predict run %s: all %d tickers failed", runID, len(a.Config.Tickers))
	}
	log.Printf("[INFO] predict run %s done: %d forecasts, %d skipped", runID, done, failed)
	return nil
}

// RunOnce performs a fetch followed by a predict pass. A failed fetch does not
// stop prediction: data already on disk is still worth forecasting.
func (a *App) RunOnce(ctx context.Context) error {
	if err := a.FetchOnce(ctx); err != nil {
		if ctx.Err() != nil {
			return err
		}
		log.Printf("[WARN] fetch failed: %v, predicting from cached data", err)
	}
	return a.PredictOnce(ctx)
}

func (a *App) predictTicker(runID, ticker string, opts forecast.Options) error {
	path := filepath.Join(a.Config.Data.Dir, ticker+".csv")
	series, err := dataset.Load(path, ticker)
	if err != nil {
		return err
	}

	fc, err := forecast.Run(series, opts)
	if err != nil {
		return err
	}

	csvPath, err := report.WritePredictionCSV(a.Config.Output.Dir, fc)
	if err != nil {
		return err
	}
	txtPath, err := report.WriteTickerReport(a.Config.Output.Dir, fc)
	if err != nil {
		return err
	}
	log.Printf("[INFO] %s: trend %s (%s), %+.2f%% over %d days -> %s, %s",
		ticker, fc.Trend, fc.Confidence, fc.ChangePct, fc.HorizonDays, csvPath, txtPath)

	if err := a.Store.Put(ticker, store.ModelRecord{
		Slope:        fc.Model.Slope,
		Intercept:    fc.Model.Intercept,
		R2:           fc.Quality.R2,
		RMSE:         fc.Quality.RMSE,
		Observations: fc.Quality.Observations,
		Trend:        string(fc.Trend),
		RunID:        runID,
		FittedAt:     fc.GeneratedAt,
	}); err != nil {
		log.Printf("[ERROR] save model registry for %s: %v", ticker, err)
	}

	if err := a.Recorder.RecordFit(&recorder.FitRecord{
		RunID:        runID,
		Ticker:       ticker,
		Observations: fc.Quality.Observations,
		Slope:        fc.Model.Slope,
		Intercept:    fc.Model.Intercept,
		R2:           fc.Quality.R2,
		RMSE:         fc.Quality.RMSE,
		LastClose:    fc.Summary.LastClose,
		HorizonDays:  fc.HorizonDays,
		ChangePct:    fc.ChangePct,
		Trend:        string(fc.Trend),
		Confidence:   string(fc.Confidence),
	}); err != nil {
		log.Printf("[ERROR] record fit for %s: %v", ticker, err)
	}
	if err := a.Recorder.RecordPredictions(runID, ticker, fc.Points); err != nil {
		log.Printf("[ERROR] record predictions for %s: %v", ticker, err)
	}
	return nil
}

func (a *App) recordRun(runID, mode string, started time.Time, failed int) {
	if err := a.Recorder.RecordRun(&recorder.RunRecord{
		RunID:         runID,
		Mode:          mode,
		Provider:      a.Collector.Fetcher.Name(),
		StartedAt:     started,
		Duration:      time.Since(started),
		TickersTotal:  len(a.Config.Tickers),
		TickersFailed: failed,
	}); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
}
