package model

import "encoding/json"

// PriceTuple holds price fields in charting order: open, close, low, high,
// followed by any trailing fields carried over from the raw record.
type PriceTuple []float64

// CloseOffset is the position of the close value inside a PriceTuple.
const CloseOffset = 1

// Close returns the close value. ok is false when the tuple is too short.
func (p PriceTuple) Close() (v float64, ok bool) {
	if len(p) <= CloseOffset {
		return 0, false
	}
	return p[CloseOffset], true
}

// VolumeBar is one entry of the volume channel.
type VolumeBar struct {
	Index     int
	Volume    float64
	Direction int
}

// MarshalJSON encodes the bar as [index, volume, direction].
func (v VolumeBar) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{v.Index, v.Volume, v.Direction})
}

// ChannelSet is the output of splitting raw records: three index-aligned
// channels of equal length.
type ChannelSet struct {
	Categories []string     `json:"categoryData"`
	Prices     []PriceTuple `json:"values"`
	Volumes    []VolumeBar  `json:"volumes"`
}

// Len returns the number of aligned entries.
func (c ChannelSet) Len() int { return len(c.Categories) }
