// Package splitter separates raw records into the aligned category, price and
// volume channels a candlestick chart consumes.
package splitter

import (
	"errors"
	"fmt"

	"CandleView/internal/model"
)

// ErrShortRecord is returned when a record cannot supply a volume value.
var ErrShortRecord = errors.New("splitter: record has fewer than 5 numeric fields")

// volumeOffset is where volume sits in a record's numeric fields.
const volumeOffset = 4

// Split builds the channel set for raw. The input is left untouched and every
// price tuple is a fresh copy, so the same raw slice can be split again.
//
// For record i the channels receive:
//   - categories[i]: the record label
//   - prices[i]:     the numeric fields in source order (open, close, low, high, ...)
//   - volumes[i]:    (i, fields[4], 1 if open > close else -1)
func Split(raw []model.RawRecord) (model.ChannelSet, error) {
	out := model.ChannelSet{
		Categories: make([]string, 0, len(raw)),
		Prices:     make([]model.PriceTuple, 0, len(raw)),
		Volumes:    make([]model.VolumeBar, 0, len(raw)),
	}
	for i, rec := range raw {
		if len(rec.Fields) <= volumeOffset {
			return model.ChannelSet{}, fmt.Errorf("record %d (%q): %w", i, rec.Label, ErrShortRecord)
		}
		values := make(model.PriceTuple, len(rec.Fields))
		copy(values, rec.Fields)

		out.Categories = append(out.Categories, rec.Label)
		out.Prices = append(out.Prices, values)
		out.Volumes = append(out.Volumes, model.VolumeBar{
			Index:     i,
			Volume:    values[volumeOffset],
			Direction: model.BarDirection(values[0], values[1]),
		})
	}
	return out, nil
}
