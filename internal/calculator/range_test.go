package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CandleView/internal/model"
)

func TestPriceRange(t *testing.T) {
	prices := []model.PriceTuple{
		{5, 7, 4, 8, 100},
		{7, 6, 3.5, 7.5, 120},
		{6, 9, 5, 9.25, 90},
	}
	high, low, err := PriceRange(prices)
	require.NoError(t, err)
	assert.Equal(t, 9.25, high)
	assert.Equal(t, 3.5, low)
}

func TestPriceRange_Errors(t *testing.T) {
	_, _, err := PriceRange(nil)
	assert.Error(t, err)

	_, _, err = PriceRange([]model.PriceTuple{{1, 2, 3}})
	assert.Error(t, err)
}
