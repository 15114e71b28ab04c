package generator

import (
	"math/rand/v2"
	"time"
)

// Source is the randomness the generator consumes. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// Defaults for generated series.
const (
	DefaultLayout = "02-01-2006\n15:04:05"
	DefaultStep   = time.Minute
)

// DefaultStart is the fixed epoch labels count from.
var DefaultStart = time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)

type config struct {
	src    Source
	start  time.Time
	step   time.Duration
	layout string
}

// Option customises a Generate call.
type Option func(*config)

// WithSource injects the random source. Panics on nil.
func WithSource(src Source) Option {
	if src == nil {
		panic("generator: WithSource(nil)")
	}
	return func(c *config) { c.src = src }
}

// WithStart sets the epoch; the first record is labelled start+step.
func WithStart(t time.Time) Option {
	return func(c *config) { c.start = t }
}

// WithStep sets the time distance between records. Panics on step <= 0.
func WithStep(d time.Duration) Option {
	if d <= 0 {
		panic("generator: WithStep requires a positive duration")
	}
	return func(c *config) { c.step = d }
}

// WithLayout sets the time layout used for labels.
func WithLayout(layout string) Option {
	return func(c *config) { c.layout = layout }
}

func newConfig(opts ...Option) config {
	c := config{
		start:  DefaultStart,
		step:   DefaultStep,
		layout: DefaultLayout,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.src == nil {
		now := uint64(time.Now().UnixNano())
		c.src = rand.New(rand.NewPCG(now, now>>1|1))
	}
	return c
}
