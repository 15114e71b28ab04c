package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordJSON(t *testing.T) {
	rec := Record{Label: "01-01-2021\n00:01:00", Open: 10.5, High: 12, Low: 9.25, Close: 11, Volume: 12000, Sign: Up}

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `["01-01-2021\n00:01:00", 10.5, 12, 9.25, 11, 12000, 1]`, string(data))

	var back Record
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, rec, back)
}

func TestRecordUnmarshalWrongWidth(t *testing.T) {
	var rec Record
	err := json.Unmarshal([]byte(`["x", 1, 2, 3]`), &rec)
	assert.Error(t, err)
}

func TestRecordRaw(t *testing.T) {
	rec := Record{Label: "d1", Open: 1, High: 4, Low: 0.5, Close: 2, Volume: 100, Sign: Up}
	raw := rec.Raw()
	assert.Equal(t, "d1", raw.Label)
	// open, close, low, high, volume
	assert.Equal(t, []float64{1, 2, 0.5, 4, 100}, raw.Fields)

	s := Series{rec, rec}
	assert.Len(t, s.Raw(), 2)
}

func TestRawRecordUnmarshal(t *testing.T) {
	var raw []RawRecord
	err := json.Unmarshal([]byte(`[[100, 5, 7, 4, 6, 200], ["2004-01-02", 1, 2, 3, 4, 5], [1.5e3, 1, 1, 1, 1, 1]]`), &raw)
	require.NoError(t, err)
	require.Len(t, raw, 3)

	assert.Equal(t, "100", raw[0].Label)
	assert.Equal(t, []float64{5, 7, 4, 6, 200}, raw[0].Fields)
	assert.Equal(t, "2004-01-02", raw[1].Label)
	assert.Equal(t, "1500", raw[2].Label)
}

func TestRawRecordUnmarshalErrors(t *testing.T) {
	var rec RawRecord
	assert.Error(t, json.Unmarshal([]byte(`[]`), &rec), "empty")
	assert.Error(t, json.Unmarshal([]byte(`[true, 1]`), &rec), "bad label")
	assert.Error(t, json.Unmarshal([]byte(`["x", "y"]`), &rec), "bad field")
	assert.Error(t, json.Unmarshal([]byte(`{"a": 1}`), &rec), "not an array")
}

func TestRawRecordMarshal(t *testing.T) {
	data, err := json.Marshal(RawRecord{Label: "100", Fields: []float64{5, 7}})
	require.NoError(t, err)
	assert.JSONEq(t, `["100", 5, 7]`, string(data))
}

func TestChannelJSON(t *testing.T) {
	data, err := json.Marshal(VolumeBar{Index: 0, Volume: 200, Direction: -1})
	require.NoError(t, err)
	assert.JSONEq(t, `[0, 200, -1]`, string(data))

	points := []MAPoint{{}, {Value: 11.5, Valid: true}}
	data, err = json.Marshal(points)
	require.NoError(t, err)
	assert.JSONEq(t, `["-", 11.5]`, string(data))
}

func TestPriceTupleClose(t *testing.T) {
	c, ok := PriceTuple{5, 7, 4, 6}.Close()
	assert.True(t, ok)
	assert.Equal(t, 7.0, c)

	_, ok = PriceTuple{5}.Close()
	assert.False(t, ok)
}
