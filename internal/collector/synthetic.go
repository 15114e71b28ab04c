package collector

import (
	"context"

	"CandleView/internal/generator"
	"CandleView/internal/model"
)

// SyntheticFetcher stands in for a data source by generating records.
type SyntheticFetcher struct {
	Count   int
	Options []generator.Option
}

// NewSyntheticFetcher creates a fetcher that generates count records per call.
func NewSyntheticFetcher(count int, opts ...generator.Option) *SyntheticFetcher {
	return &SyntheticFetcher{Count: count, Options: opts}
}

func (s *SyntheticFetcher) Name() string { return "synthetic" }

func (s *SyntheticFetcher) FetchRaw(ctx context.Context) ([]model.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	series, err := generator.Generate(s.Count, s.Options...)
	if err != nil {
		return nil, err
	}
	return series.Raw(), nil
}
