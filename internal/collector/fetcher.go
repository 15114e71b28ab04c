package collector

import (
	"context"

	"CandleView/internal/model"
)

// Fetcher supplies raw records for the chart pipeline.
type Fetcher interface {
	FetchRaw(ctx context.Context) ([]model.RawRecord, error)
	Name() string
}
