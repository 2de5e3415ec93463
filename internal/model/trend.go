package model

// Observation is a single (index, price) sample used for trend fitting.
// Indices are integer positions on the time axis; gaps are allowed.
type Observation struct {
	Index int
	Price float64
}

// TrendModel is a fitted least-squares line over (index, price) samples.
// It is a pure value: fitting produces it, prediction only reads it.
type TrendModel struct {
	Slope     float64
	Intercept float64
}

// At evaluates the fitted line at the given index.
func (m TrendModel) At(index int) float64 {
	return m.Slope*float64(index) + m.Intercept
}

// FitQuality describes how well a fitted line matches its input samples.
type FitQuality struct {
	R2           float64 // coefficient of determination, 1.0 for a perfect fit
	RMSE         float64
	Observations int
}

// PredictedPoint is one projected (index, price) value on a fitted line.
type PredictedPoint struct {
	Index int
	Price float64
}
