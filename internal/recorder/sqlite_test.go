package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"TrendCast/internal/model"
)

func openTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRecorder: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestSQLiteRecorder_RecordRun(t *testing.T) {
	r := openTestRecorder(t)

	err := r.RecordRun(&RunRecord{
		RunID:         "run-abc",
		Mode:          "run",
		Provider:      "mock",
		StartedAt:     time.Now(),
		Duration:      1500 * time.Millisecond,
		TickersTotal:  3,
		TickersFailed: 1,
	})
	if err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	var count int
	var mode string
	if err := r.db.QueryRow(`SELECT COUNT(*), MAX(mode) FROM runs`).Scan(&count, &mode); err != nil {
		t.Fatalf("query: %v", err)
	}
	if count != 1 || mode != "run" {
		t.Errorf("runs table: count=%d mode=%q", count, mode)
	}
}

func TestSQLiteRecorder_RecordFit(t *testing.T) {
	r := openTestRecorder(t)

	err := r.RecordFit(&FitRecord{
		RunID:        "run-abc",
		Ticker:       "AAPL",
		Observations: 250,
		Slope:        0.42,
		Intercept:    150.5,
		R2:           0.87,
		RMSE:         2.1,
		LastClose:    187.3,
		HorizonDays:  30,
		ChangePct:    6.7,
		Trend:        "UP",
		Confidence:   "HIGH",
	})
	if err != nil {
		t.Fatalf("RecordFit: %v", err)
	}

	var slope float64
	var trend string
	err = r.db.QueryRow(`SELECT slope, trend FROM fits WHERE ticker = ?`, "AAPL").Scan(&slope, &trend)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if slope != 0.42 || trend != "UP" {
		t.Errorf("fit row: slope=%v trend=%q", slope, trend)
	}
}

func TestSQLiteRecorder_RecordPredictions(t *testing.T) {
	r := openTestRecorder(t)

	points := []model.PredictedPoint{
		{Index: 250, Price: 188.0},
		{Index: 251, Price: 188.4},
		{Index: 252, Price: 188.8},
	}
	if err := r.RecordPredictions("run-abc", "AAPL", points); err != nil {
		t.Fatalf("RecordPredictions: %v", err)
	}

	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM predictions WHERE run_id = ?`, "run-abc").Scan(&count); err != nil {
		t.Fatalf("query: %v", err)
	}
	if count != 3 {
		t.Errorf("predictions count = %d, want 3", count)
	}

	var price float64
	err := r.db.QueryRow(`SELECT price FROM predictions WHERE ticker = ? AND idx = ?`, "AAPL", 252).Scan(&price)
	if err != nil {
		t.Fatalf("query idx 252: %v", err)
	}
	if price != 188.8 {
		t.Errorf("price at idx 252 = %v, want 188.8", price)
	}
}

func TestSQLiteRecorder_MigrateIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	r1, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	r1.Close()

	r2, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	r2.Close()
}
