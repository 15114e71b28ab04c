package model

import "encoding/json"

// NoValue is how a point without enough history is written out, so the chart
// draws a gap instead of a zero.
const NoValue = "-"

// MAPoint is one element of a moving-average series.
type MAPoint struct {
	Value float64
	Valid bool
}

// MarshalJSON writes either the numeric value or NoValue.
func (p MAPoint) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return json.Marshal(NoValue)
	}
	return json.Marshal(p.Value)
}
