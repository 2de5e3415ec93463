package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"TrendCast/internal/model"
)

func sampleForecast() *model.TickerForecast {
	return &model.TickerForecast{
		Ticker:      "AAPL",
		GeneratedAt: time.Date(2024, 6, 3, 18, 30, 0, 0, time.UTC),
		Model:       model.TrendModel{Slope: 0.5, Intercept: 100},
		Quality:     model.FitQuality{R2: 0.91, RMSE: 1.25, Observations: 120},
		Summary: model.IndicatorSummary{
			LastClose:   159.5,
			SMA20:       155.0,
			SMA50:       150.0,
			High52w:     170.0,
			Low52w:      120.0,
			Position52w: 0.79,
		},
		Points: []model.PredictedPoint{
			{Index: 120, Price: 160.0},
			{Index: 121, Price: 160.5},
			{Index: 122, Price: 161.0},
		},
		HorizonDays: 3,
		Trend:       model.TrendUp,
		Confidence:  model.ConfidenceHigh,
		ChangePct:   0.94,
	}
}

func TestFormatTickerReport_KeyLines(t *testing.T) {
	out := FormatTickerReport(sampleForecast())

	for _, want := range []string{
		"TrendCast forecast | AAPL | 2024-06-03",
		"Last close: 159.50",
		"SMA20: 155.00",
		"52-week range: 120.00 ~ 170.00 (position 79%)",
		"Fitted line: price = 0.500000 * index +100.0000",
		"Fit quality: R2 0.9100 | RMSE 1.2500 | 120 observations",
		"Trend: UP | confidence: HIGH",
		"Projection (3 trading days):",
		"next day (index 120): 160.00",
		"horizon end (index 122): 161.00",
		"expected change: +0.94%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n---\n%s", want, out)
		}
	}
}

func TestWritePredictionCSV(t *testing.T) {
	dir := t.TempDir()
	path, err := WritePredictionCSV(dir, sampleForecast())
	if err != nil {
		t.Fatalf("WritePredictionCSV: %v", err)
	}
	if filepath.Base(path) != "AAPL_forecast.csv" {
		t.Errorf("file name = %s, want AAPL_forecast.csv", filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want header + 3 points", len(rows))
	}
	if rows[0][0] != "index" || rows[0][1] != "predicted_close" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "120" || rows[1][1] != "160.0000" {
		t.Errorf("first row = %v, want [120 160.0000]", rows[1])
	}
}

func TestWriteTickerReport(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteTickerReport(dir, sampleForecast())
	if err != nil {
		t.Fatalf("WriteTickerReport: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.HasPrefix(string(data), "TrendCast forecast | AAPL") {
		t.Errorf("unexpected report start: %q", string(data)[:40])
	}
}

func TestWriteTickerReport_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	if _, err := WriteTickerReport(dir, sampleForecast()); err != nil {
		t.Fatalf("WriteTickerReport: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "AAPL_report.txt")); err != nil {
		t.Errorf("report file missing: %v", err)
	}
}
