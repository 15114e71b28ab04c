package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignOf(t *testing.T) {
	tests := []struct {
		name      string
		open      float64
		close     float64
		prevClose float64
		hasPrev   bool
		want      Direction
	}{
		{"falls", 10, 9, 0, true, Down},
		{"rises", 9, 10, 0, true, Up},
		{"flat first record", 10, 10, 0, false, Up},
		{"flat above previous close", 10, 10, 9, true, Up},
		{"flat equal to previous close", 10, 10, 10, true, Up},
		{"flat below previous close", 10, 10, 11, true, Down},
		{"history ignored when moving", 9, 10, 50, true, Up},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SignOf(tt.open, tt.close, tt.prevClose, tt.hasPrev))
		})
	}
}

func TestBarDirection(t *testing.T) {
	assert.Equal(t, 1, BarDirection(7, 5), "open above close")
	assert.Equal(t, -1, BarDirection(5, 7), "open below close")
	assert.Equal(t, -1, BarDirection(5, 5), "flat")
}
