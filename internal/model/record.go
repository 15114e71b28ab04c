package model

import (
	"encoding/json"
	"fmt"
)

// Record is one time step of a generated series:
// [label, open, high, low, close, volume, sign].
type Record struct {
	Label  string
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
	Sign   Direction
}

// Series is an ordered run of records; position is the only ordering key.
type Series []Record

// MarshalJSON encodes the record as the canonical 7-tuple.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{r.Label, r.Open, r.High, r.Low, r.Close, r.Volume, int(r.Sign)})
}

// UnmarshalJSON decodes the canonical 7-tuple.
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	if len(fields) != 7 {
		return fmt.Errorf("decode record: want 7 fields, got %d", len(fields))
	}
	if err := json.Unmarshal(fields[0], &r.Label); err != nil {
		return fmt.Errorf("decode record label: %w", err)
	}
	nums := []*float64{&r.Open, &r.High, &r.Low, &r.Close, &r.Volume}
	for i, p := range nums {
		if err := json.Unmarshal(fields[i+1], p); err != nil {
			return fmt.Errorf("decode record field %d: %w", i+1, err)
		}
	}
	var sign int
	if err := json.Unmarshal(fields[6], &sign); err != nil {
		return fmt.Errorf("decode record sign: %w", err)
	}
	r.Sign = Direction(sign)
	return nil
}

// Raw converts the record into the splitter's raw layout:
// label followed by open, close, low, high, volume.
func (r Record) Raw() RawRecord {
	return RawRecord{
		Label:  r.Label,
		Fields: []float64{r.Open, r.Close, r.Low, r.High, r.Volume},
	}
}

// Raw converts every record of the series; see Record.Raw.
func (s Series) Raw() []RawRecord {
	out := make([]RawRecord, len(s))
	for i, r := range s {
		out[i] = r.Raw()
	}
	return out
}
