package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	tests := []struct {
		v      float64
		places int32
		want   float64
	}{
		{5.45, 1, 5.5},
		{-5.45, 1, -5.5},
		{2.0 / 3.0, 3, 0.667},
		{7499750.4, 0, 7499750},
		{7499750.5, 0, 7499751},
		{1.1999999999999997, 2, 1.2},
		{12, 2, 12},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.v, tt.places), "Round(%v, %d)", tt.v, tt.places)
	}
}
