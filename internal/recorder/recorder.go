package recorder

import (
	"time"

	"TrendCast/internal/model"
)

// RunRecord summarizes one pipeline run.
type RunRecord struct {
	RunID         string
	Mode          string // "fetch", "predict" or "run"
	Provider      string
	StartedAt     time.Time
	Duration      time.Duration
	TickersTotal  int
	TickersFailed int
}

// FitRecord holds one fitted model and its classification.
type FitRecord struct {
	RunID        string
	Ticker       string
	Observations int
	Slope        float64
	Intercept    float64
	R2           float64
	RMSE         float64
	LastClose    float64
	HorizonDays  int
	ChangePct    float64
	Trend        string
	Confidence   string
}

// Recorder persists run history for later analysis.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	RecordFit(rec *FitRecord) error
	RecordPredictions(runID, ticker string, points []model.PredictedPoint) error
	Close() error
}
