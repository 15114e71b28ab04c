package calculator

import (
	"errors"
	"math"

	"CandleView/internal/model"
)

// Offsets of low and high inside a PriceTuple.
const (
	lowOffset  = 2
	highOffset = 3
)

// PriceRange scans every tuple and returns the overall high and low.
func PriceRange(prices []model.PriceTuple) (high, low float64, err error) {
	if len(prices) == 0 {
		return 0, 0, errors.New("no prices provided")
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, p := range prices {
		if len(p) <= highOffset {
			return 0, 0, errors.New("price tuple has no low/high values")
		}
		if p[highOffset] > high {
			high = p[highOffset]
		}
		if p[lowOffset] < low {
			low = p[lowOffset]
		}
	}
	return high, low, nil
}
