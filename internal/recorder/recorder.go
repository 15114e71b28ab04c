package recorder

import "time"

// Build kinds.
const (
	KindCandlestick = "CANDLESTICK"
	KindGenerated   = "GENERATED"
)

// BuildEvent describes one chart build. Only metadata is kept; computed
// series are never stored.
type BuildEvent struct {
	ID       string
	Kind     string // KindCandlestick or KindGenerated
	Source   string // fetcher name
	Records  int
	Windows  []int
	Duration time.Duration
	Err      string // empty on success
}

// Recorder persists chart build history.
type Recorder interface {
	RecordBuild(evt *BuildEvent) error
	Close() error
}
