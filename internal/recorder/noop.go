package recorder

import "TrendCast/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRun(_ *RunRecord) error { return nil }
func (n *NoopRecorder) RecordFit(_ *FitRecord) error { return nil }
func (n *NoopRecorder) RecordPredictions(_, _ string, _ []model.PredictedPoint) error {
	return nil
}
func (n *NoopRecorder) Close() error { return nil }
