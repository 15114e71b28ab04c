// Package generator produces synthetic OHLCV series for charts that have no
// external data source.
package generator

import (
	"errors"
	"sort"

	"CandleView/internal/calculator"
	"CandleView/internal/model"
)

// ErrInvalidCount is returned for a negative record count.
var ErrInvalidCount = errors.New("generator: count must not be negative")

const (
	baseCeiling = 12000.0 // initial base drawn from [0, baseCeiling)
	driftRange  = 20.0    // per-step drift drawn from [-driftRange/2, driftRange/2)
	dayRange    = 12.0    // box levels drawn from base ± dayRange/2
	volumeBase  = 1000.0
	volumeRange = 500.0

	pricePlaces  = 2
	volumePlaces = 0
)

// Generate returns count records built from a random walk. Each step draws
// four price levels around the walk, sorts them, and picks open and close from
// the sorted box; high and low are its extremes. Sign is folded left so a flat
// period is compared against the previous close.
func Generate(count int, opts ...Option) (model.Series, error) {
	if count < 0 {
		return nil, ErrInvalidCount
	}
	cfg := newConfig(opts...)
	src := cfg.src

	series := make(model.Series, count)
	at := cfg.start
	base := src.Float64() * baseCeiling
	var box [4]float64

	var prevClose float64
	for i := 0; i < count; i++ {
		base += src.Float64()*driftRange - driftRange/2
		for j := range box {
			box[j] = base + (src.Float64()-0.5)*dayRange
		}
		sort.Float64s(box[:])

		openIdx := src.IntN(4)
		// Collisions move up by one, so closeIdx leans toward higher levels.
		closeIdx := src.IntN(3)
		if closeIdx == openIdx {
			closeIdx++
		}
		volume := box[3] * (volumeBase + src.Float64()*volumeRange)

		at = at.Add(cfg.step)
		rec := model.Record{
			Label:  at.Format(cfg.layout),
			Open:   calculator.Round(box[openIdx], pricePlaces),
			High:   calculator.Round(box[3], pricePlaces),
			Low:    calculator.Round(box[0], pricePlaces),
			Close:  calculator.Round(box[closeIdx], pricePlaces),
			Volume: calculator.Round(volume, volumePlaces),
		}
		rec.Sign = model.SignOf(rec.Open, rec.Close, prevClose, i > 0)
		prevClose = rec.Close
		series[i] = rec
	}
	return series, nil
}
