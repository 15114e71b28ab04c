package collector

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"CandleView/internal/calculator"
	"CandleView/internal/chart"
	"CandleView/internal/generator"
	"CandleView/internal/splitter"
)

// Collector runs the chart pipeline: fetch, split, average, lay out.
type Collector struct {
	Fetcher  Fetcher
	Windows  []int
	Settings chart.Settings
}

// NewCollector creates a new Collector. Nil windows fall back to
// chart.DefaultWindows.
func NewCollector(fetcher Fetcher, windows []int, settings chart.Settings) *Collector {
	if windows == nil {
		windows = chart.DefaultWindows
	}
	return &Collector{Fetcher: fetcher, Windows: windows, Settings: settings}
}

// Result is a built chart and the number of records behind it.
type Result struct {
	Option  *chart.Option
	Records int
}

// BuildChart fetches raw records and turns them into a candlestick option.
func (c *Collector) BuildChart(ctx context.Context) (*Result, error) {
	raw, err := c.Fetcher.FetchRaw(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", c.Fetcher.Name(), err)
	}

	channels, err := splitter.Split(raw)
	if err != nil {
		return nil, fmt.Errorf("split: %w", err)
	}

	overlays := make([]chart.Overlay, 0, len(c.Windows))
	for _, w := range c.Windows {
		points, err := calculator.MovingAverage(w, channels.Prices)
		if err != nil {
			return nil, fmt.Errorf("MA%d: %w", w, err)
		}
		overlays = append(overlays, chart.Overlay{Window: w, Points: points})
	}

	opt, err := chart.BuildCandlestick(channels, overlays, c.Settings)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("source", c.Fetcher.Name()).
		Int("records", channels.Len()).
		Ints("windows", c.Windows).
		Msg("chart built")
	return &Result{Option: opt, Records: channels.Len()}, nil
}

// BuildSynthetic generates count records and lays them out as a dataset chart.
func BuildSynthetic(count int, opts ...generator.Option) (*Result, error) {
	series, err := generator.Generate(count, opts...)
	if err != nil {
		return nil, err
	}
	return &Result{Option: chart.BuildGenerated(series), Records: len(series)}, nil
}
