package regressor

import (
	"errors"
	"math"

	"TrendCast/internal/model"
)

var (
	// ErrInsufficientData is returned when fewer than two observations are supplied.
	ErrInsufficientData = errors.New("regressor: need at least two observations")

	// ErrDegenerateInput is returned when all observation indices are identical,
	// leaving the slope undefined.
	ErrDegenerateInput = errors.New("regressor: zero variance in observation indices")
)

// Fit computes the ordinary least-squares line through the given samples:
// slope = cov(index, price) / var(index), intercept = mean(price) - slope*mean(index).
// Index gaps are fine; only the variance of the indices matters.
func Fit(obs []model.Observation) (model.TrendModel, error) {
	if len(obs) < 2 {
		return model.TrendModel{}, ErrInsufficientData
	}

	n := float64(len(obs))
	var sumX, sumY float64
	for _, o := range obs {
		sumX += float64(o.Index)
		sumY += o.Price
	}
	meanX := sumX / n
	meanY := sumY / n

	var covXY, varX float64
	for _, o := range obs {
		dx := float64(o.Index) - meanX
		covXY += dx * (o.Price - meanY)
		varX += dx * dx
	}
	if varX == 0 {
		return model.TrendModel{}, ErrDegenerateInput
	}

	slope := covXY / varX
	return model.TrendModel{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
	}, nil
}

// Predict evaluates the fitted line at each requested index.
// The result preserves input order, one point per index.
func Predict(m model.TrendModel, indices []int) []model.PredictedPoint {
	points := make([]model.PredictedPoint, len(indices))
	for i, idx := range indices {
		points[i] = model.PredictedPoint{Index: idx, Price: m.At(idx)}
	}
	return points
}

// Quality measures how well a fitted line matches the given samples.
// A flat series fitted by a flat line counts as a perfect fit (R2 = 1).
func Quality(m model.TrendModel, obs []model.Observation) model.FitQuality {
	if len(obs) == 0 {
		return model.FitQuality{}
	}

	var sumY float64
	for _, o := range obs {
		sumY += o.Price
	}
	meanY := sumY / float64(len(obs))

	var rss, tss float64
	for _, o := range obs {
		resid := o.Price - m.At(o.Index)
		rss += resid * resid
		dy := o.Price - meanY
		tss += dy * dy
	}

	r2 := 1.0
	if tss > 0 {
		r2 = 1 - rss/tss
	}
	return model.FitQuality{
		R2:           r2,
		RMSE:         math.Sqrt(rss / float64(len(obs))),
		Observations: len(obs),
	}
}
