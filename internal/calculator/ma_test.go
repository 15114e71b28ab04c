package calculator

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CandleView/internal/model"
)

func tuples(closes ...float64) []model.PriceTuple {
	out := make([]model.PriceTuple, len(closes))
	for i, c := range closes {
		out[i] = model.PriceTuple{0, c}
	}
	return out
}

func TestCalculateSMA(t *testing.T) {
	avg, err := CalculateSMA([]float64{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.5, avg)

	_, err = CalculateSMA([]float64{1}, 2)
	assert.Error(t, err)

	_, err = CalculateSMA([]float64{1}, 0)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestMovingAverage_TrailingWindow(t *testing.T) {
	prices := []model.PriceTuple{{10, 12}, {11, 13}, {12, 9}, {13, 14}, {14, 16}}

	got, err := MovingAverage(2, prices)
	require.NoError(t, err)
	require.Len(t, got, len(prices))

	data, err := json.Marshal(got)
	require.NoError(t, err)
	// (9+13)/2, (14+9)/2, (16+14)/2
	assert.JSONEq(t, `["-", "-", 11, 11.5, 15]`, string(data))
}

func TestMovingAverage_InsufficientHistory(t *testing.T) {
	for _, w := range []int{1, 3, 5, 8} {
		got, err := MovingAverage(w, tuples(1, 2, 3, 4, 5))
		require.NoError(t, err)
		require.Len(t, got, 5)
		for i, p := range got {
			if i < w {
				assert.False(t, p.Valid, "window %d index %d", w, i)
			} else {
				assert.True(t, p.Valid, "window %d index %d", w, i)
			}
		}
	}
}

func TestMovingAverage_WindowOfOne(t *testing.T) {
	got, err := MovingAverage(1, tuples(4, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, []model.MAPoint{{}, {Value: 5, Valid: true}, {Value: 6, Valid: true}}, got)
}

func TestMovingAverage_Rounding(t *testing.T) {
	got, err := MovingAverage(3, tuples(0, 1, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, model.MAPoint{Value: 1.333, Valid: true}, got[3])
}

func TestMovingAverage_MatchesMean(t *testing.T) {
	closes := []float64{101.25, 99.5, 98.75, 102, 104.5, 103.25, 100, 97.5, 99, 101}
	prices := tuples(closes...)
	w := 4

	got, err := MovingAverage(w, prices)
	require.NoError(t, err)
	for i := w; i < len(closes); i++ {
		sum := 0.0
		for j := i - w + 1; j <= i; j++ {
			sum += closes[j]
		}
		assert.InDelta(t, Round(sum/float64(w), 3), got[i].Value, 1e-9, "index %d", i)
	}
}

func TestMovingAverage_Errors(t *testing.T) {
	_, err := MovingAverage(0, tuples(1, 2))
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = MovingAverage(-3, tuples(1, 2))
	assert.ErrorIs(t, err, ErrInvalidWindow)

	prices := []model.PriceTuple{{1, 2}, {1}, {1, 2}}
	_, err = MovingAverage(1, prices)
	assert.True(t, errors.Is(err, ErrMissingClose))
}

func TestMovingAverage_Empty(t *testing.T) {
	got, err := MovingAverage(5, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
