package calculator

import (
	"errors"
	"fmt"

	"CandleView/internal/model"
)

var (
	// ErrInvalidWindow is returned for a non-positive averaging window.
	ErrInvalidWindow = errors.New("window must be positive")
	// ErrMissingClose is returned when a price tuple has no close value.
	ErrMissingClose = errors.New("price tuple has no close value")
)

// maPlaces is the rounding applied to every moving-average point.
const maPlaces = 3

// CalculateSMA computes the simple moving average of the last period prices.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, ErrInvalidWindow
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// MovingAverage returns a trailing simple moving average of the close values,
// aligned index-for-index with prices. Positions i < window carry no value;
// position i >= window averages closes [i-window+1, i] and is rounded to three
// decimal places.
func MovingAverage(window int, prices []model.PriceTuple) ([]model.MAPoint, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}
	out := make([]model.MAPoint, len(prices))
	if len(prices) <= window {
		return out, nil
	}

	closes, err := extractCloses(prices)
	if err != nil {
		return nil, err
	}
	for i := window; i < len(prices); i++ {
		avg, err := CalculateSMA(closes[:i+1], window)
		if err != nil {
			return nil, fmt.Errorf("sma at %d: %w", i, err)
		}
		out[i] = model.MAPoint{Value: Round(avg, maPlaces), Valid: true}
	}
	return out, nil
}

func extractCloses(prices []model.PriceTuple) ([]float64, error) {
	closes := make([]float64, len(prices))
	for i, p := range prices {
		c, ok := p.Close()
		if !ok {
			return nil, fmt.Errorf("tuple %d: %w", i, ErrMissingClose)
		}
		closes[i] = c
	}
	return closes, nil
}
