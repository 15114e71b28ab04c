package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// RawRecord is one row of externally supplied data. The leading field of the
// source array is held apart as Label; Fields keeps the numeric remainder in
// source order (open, close, low, high, volume, ...).
type RawRecord struct {
	Label  string
	Fields []float64
}

// UnmarshalJSON accepts an array whose first element is either a string or a
// number, followed by numbers.
func (r *RawRecord) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("decode raw record: %w", err)
	}
	if len(fields) == 0 {
		return fmt.Errorf("decode raw record: empty array")
	}

	label, err := decodeLabel(fields[0])
	if err != nil {
		return err
	}

	values := make([]float64, len(fields)-1)
	for i, f := range fields[1:] {
		if err := json.Unmarshal(f, &values[i]); err != nil {
			return fmt.Errorf("decode raw record field %d: %w", i+1, err)
		}
	}
	r.Label = label
	r.Fields = values
	return nil
}

// MarshalJSON writes the record back as a flat array, label first.
func (r RawRecord) MarshalJSON() ([]byte, error) {
	out := make([]any, 0, len(r.Fields)+1)
	out = append(out, r.Label)
	for _, f := range r.Fields {
		out = append(out, f)
	}
	return json.Marshal(out)
}

func decodeLabel(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("decode raw record label: %w", err)
	}
	return strconv.FormatFloat(n, 'f', -1, 64), nil
}
