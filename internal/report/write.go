package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"TrendCast/internal/model"
)

// WritePredictionCSV writes the projected points to <TICKER>_forecast.csv
// under dir and returns the file path.
func WritePredictionCSV(dir string, fc *model.TickerForecast) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, fc.Ticker+"_forecast.csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"index", "predicted_close"}); err != nil {
		return "", err
	}
	for _, p := range fc.Points {
		if err := w.Write([]string{strconv.Itoa(p.Index), fmt.Sprintf("%.4f", p.Price)}); err != nil {
			return "", err
		}
	}
	w.Flush()
	return path, w.Error()
}

// WriteTickerReport writes the flat text report to <TICKER>_report.txt
// under dir and returns the file path.
func WriteTickerReport(dir string, fc *model.TickerForecast) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, fc.Ticker+"_report.txt")
	if err := os.WriteFile(path, []byte(FormatTickerReport(fc)), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
