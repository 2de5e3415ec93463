package report

import (
	"fmt"
	"strings"

	"TrendCast/internal/model"
)

// FormatTickerReport renders a one-ticker forecast as a flat text report.
func FormatTickerReport(fc *model.TickerForecast) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("TrendCast forecast | %s | %s\n", fc.Ticker, fc.GeneratedAt.Format("2006-01-02 15:04")))
	b.WriteString(strings.Repeat("-", 48) + "\n")

	// Price and descriptive stats
	s := fc.Summary
	b.WriteString(fmt.Sprintf("Last close: %.2f\n", s.LastClose))
	sma20Dev := 0.0
	if s.SMA20 > 0 {
		sma20Dev = (s.LastClose - s.SMA20) / s.SMA20 * 100
	}
	b.WriteString(fmt.Sprintf("SMA20: %.2f (deviation %+.1f%%)\n", s.SMA20, sma20Dev))
	b.WriteString(fmt.Sprintf("SMA50: %.2f\n", s.SMA50))
	b.WriteString(fmt.Sprintf("52-week range: %.2f ~ %.2f (position %.0f%%)\n\n",
		s.Low52w, s.High52w, s.Position52w*100))

	// Fitted line
	b.WriteString(fmt.Sprintf("Fitted line: price = %.6f * index %+.4f\n", fc.Model.Slope, fc.Model.Intercept))
	b.WriteString(fmt.Sprintf("Fit quality: R2 %.4f | RMSE %.4f | %d observations\n",
		fc.Quality.R2, fc.Quality.RMSE, fc.Quality.Observations))
	b.WriteString(fmt.Sprintf("Trend: %s | confidence: %s\n\n", fc.Trend, fc.Confidence))

	// Projection
	b.WriteString(fmt.Sprintf("Projection (%d trading days):\n", fc.HorizonDays))
	if len(fc.Points) > 0 {
		first := fc.Points[0]
		last := fc.Points[len(fc.Points)-1]
		b.WriteString(fmt.Sprintf("  next day (index %d): %.2f\n", first.Index, first.Price))
		b.WriteString(fmt.Sprintf("  horizon end (index %d): %.2f\n", last.Index, last.Price))
	}
	b.WriteString(fmt.Sprintf("  expected change: %+.2f%%\n", fc.ChangePct))

	return b.String()
}
