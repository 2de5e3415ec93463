package forecast

import "TrendCast/internal/model"

// trendBands maps daily drift (slope as a percentage of the last close)
// to a direction label.
var trendBands = []struct {
	MinDrift float64
	Label    model.TrendLabel
}{
	{0.40, model.TrendStrongUp},
	{0.08, model.TrendUp},
	{-0.08, model.TrendSideways},
	{-0.40, model.TrendDown},
}

// defaultTrend is the label for drift below every band.
var defaultTrend = model.TrendStrongDown

// confidenceBands maps fit quality to a confidence grade.
var confidenceBands = []struct {
	MinR2 float64
	Label model.ConfidenceLabel
}{
	{0.75, model.ConfidenceHigh},
	{0.45, model.ConfidenceMedium},
}

var defaultConfidence = model.ConfidenceLow

// Classify grades a fitted trend: direction from the slope relative to the
// last close, confidence from R2. A non-positive last close reads as flat.
func Classify(m model.TrendModel, q model.FitQuality, lastClose float64) (model.TrendLabel, model.ConfidenceLabel) {
	drift := 0.0
	if lastClose > 0 {
		drift = m.Slope / lastClose * 100
	}

	trend := defaultTrend
	for _, b := range trendBands {
		if drift >= b.MinDrift {
			trend = b.Label
			break
		}
	}

	confidence := defaultConfidence
	for _, b := range confidenceBands {
		if q.R2 >= b.MinR2 {
			confidence = b.Label
			break
		}
	}

	return trend, confidence
}
