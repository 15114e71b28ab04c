package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"CandleView/internal/model"
)

// FileFetcher reads a static JSON array of records from disk.
type FileFetcher struct {
	Path string
}

// NewFileFetcher creates a fetcher for the JSON file at path.
func NewFileFetcher(path string) *FileFetcher {
	return &FileFetcher{Path: path}
}

func (f *FileFetcher) Name() string { return "file" }

func (f *FileFetcher) FetchRaw(ctx context.Context) ([]model.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read raw data: %w", err)
	}
	var raw []model.RawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode raw data %s: %w", f.Path, err)
	}
	return raw, nil
}
