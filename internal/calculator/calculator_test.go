package calculator

import (
	"math"
	"testing"

	"TrendCast/internal/model"
)

func barsFromCloses(closes ...float64) []model.Bar {
	bars := make([]model.Bar, len(closes))
	for i, c := range closes {
		bars[i] = model.Bar{Open: c, High: c + 1, Low: c - 1, Close: c}
	}
	return bars
}

func TestCalculateSMA_Basic(t *testing.T) {
	got, err := CalculateSMA([]float64{1, 2, 3, 4, 5}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-4) > 1e-9 {
		t.Errorf("SMA(3) over tail [3 4 5] = %v, want 4", got)
	}
}

func TestCalculateSMA_Errors(t *testing.T) {
	if _, err := CalculateSMA([]float64{1, 2, 3}, 0); err == nil {
		t.Error("expected error for zero period")
	}
	if _, err := CalculateSMA([]float64{1, 2, 3}, -5); err == nil {
		t.Error("expected error for negative period")
	}
	if _, err := CalculateSMA([]float64{1, 2}, 3); err == nil {
		t.Error("expected error when prices shorter than period")
	}
}

func TestCalculate52WeekRange_ShortHistory(t *testing.T) {
	bars := barsFromCloses(10, 20, 15)
	high, low, err := Calculate52WeekRange(bars)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high != 21 {
		t.Errorf("high = %v, want 21", high)
	}
	if low != 9 {
		t.Errorf("low = %v, want 9", low)
	}
}

func TestCalculate52WeekRange_OnlyScansTail(t *testing.T) {
	// A spike older than 252 bars must not affect the range.
	closes := make([]float64, 300)
	for i := range closes {
		closes[i] = 100
	}
	closes[10] = 500
	bars := barsFromCloses(closes...)

	high, _, err := Calculate52WeekRange(bars)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high != 101 {
		t.Errorf("high = %v, want 101 (old spike should be ignored)", high)
	}
}

func TestCalculate52WeekRange_Empty(t *testing.T) {
	if _, _, err := Calculate52WeekRange(nil); err == nil {
		t.Error("expected error for empty bars")
	}
}

func TestCalculateRangePosition(t *testing.T) {
	tests := []struct {
		price, high, low float64
		want             float64
	}{
		{50, 100, 0, 0.5},
		{100, 100, 0, 1.0},
		{0, 100, 0, 0.0},
		{150, 100, 0, 1.0}, // clamp above
		{-10, 100, 0, 0.0}, // clamp below
		{77, 77, 77, 0.5},  // collapsed range
	}
	for _, tt := range tests {
		got, err := CalculateRangePosition(tt.price, tt.high, tt.low)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("position(%v in [%v, %v]) = %v, want %v", tt.price, tt.low, tt.high, got, tt.want)
		}
	}
}

func TestCalculateRangePosition_InvertedRange(t *testing.T) {
	if _, err := CalculateRangePosition(50, 10, 100); err == nil {
		t.Error("expected error when high < low")
	}
}
