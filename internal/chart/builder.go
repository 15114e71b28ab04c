package chart

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"

	"CandleView/internal/calculator"
	"CandleView/internal/model"
)

// Candle colours. "Up" is red and "down" is green, as on the source charts.
const (
	UpColor         = "#ec0000"
	UpBorderColor   = "#8A0000"
	DownColor       = "#00da3c"
	DownBorderColor = "#008F28"

	volumeBarColor = "#7fbe9e"
)

// Defaults for a candlestick chart.
const (
	DefaultInstrument = "Dow-Jones index"
	DefaultZoomStart  = 98.0
	DefaultZoomEnd    = 100.0
)

// DefaultWindows are the moving-average overlays drawn by convention.
var DefaultWindows = []int{5, 10, 20, 30}

// Settings tunes BuildCandlestick.
type Settings struct {
	Instrument string
	ZoomStart  float64
	ZoomEnd    float64
}

func (s Settings) withDefaults() Settings {
	if s.Instrument == "" {
		s.Instrument = DefaultInstrument
	}
	if s.ZoomStart == 0 && s.ZoomEnd == 0 {
		s.ZoomStart, s.ZoomEnd = DefaultZoomStart, DefaultZoomEnd
	}
	return s
}

// Overlay is one moving-average line.
type Overlay struct {
	Window int
	Points []model.MAPoint
}

// Name is the legend label, e.g. "MA5".
func (o Overlay) Name() string { return "MA" + strconv.Itoa(o.Window) }

// ErrMisaligned is returned when channels or overlays differ in length.
var ErrMisaligned = errors.New("chart: series are not index-aligned")

// BuildCandlestick lays out a two-grid chart: candles plus moving averages on
// top, direction-coloured volume bars below.
func BuildCandlestick(ch model.ChannelSet, overlays []Overlay, s Settings) (*Option, error) {
	n := ch.Len()
	if len(ch.Prices) != n || len(ch.Volumes) != n {
		return nil, fmt.Errorf("channels: %w", ErrMisaligned)
	}
	for _, o := range overlays {
		if len(o.Points) != n {
			return nil, fmt.Errorf("%s: %w", o.Name(), ErrMisaligned)
		}
	}
	s = s.withDefaults()

	legend := []string{s.Instrument}
	series := []Series{{
		Name: s.Instrument,
		Type: "candlestick",
		Data: ch.Prices,
		ItemStyle: &ItemStyle{
			Color:  UpColor,
			Color0: DownColor,
		},
	}}
	for _, o := range overlays {
		legend = append(legend, o.Name())
		series = append(series, Series{
			Name:      o.Name(),
			Type:      "line",
			Data:      o.Points,
			Smooth:    true,
			LineStyle: &LineStyle{Opacity: 0.5},
		})
	}
	volumeIndex := len(series)
	series = append(series, Series{
		Name:       "Volume",
		Type:       "bar",
		XAxisIndex: 1,
		YAxisIndex: 1,
		Data:       ch.Volumes,
	})

	opt := &Option{
		Animation: boolp(false),
		Title:     rangeTitle(s.Instrument, ch.Prices),
		Legend: &Legend{
			Bottom: 10,
			Left:   "center",
			Data:   legend,
		},
		Tooltip: &Tooltip{
			Trigger:     "axis",
			AxisPointer: PointerStyle{Type: "cross"},
			BorderWidth: 1,
			BorderColor: "#ccc",
			Padding:     10,
			TextStyle:   &TextStyle{Color: "#000"},
		},
		AxisPointer: &AxisPointer{
			Link:  []AxisLink{{XAxisIndex: "all"}},
			Label: PointerLabel{BackgroundColor: "#777"},
		},
		Toolbox: &Toolbox{Feature: ToolboxFeature{
			DataZoom: ZoomFeature{YAxisIndex: false},
			Brush:    &BrushFeature{Type: []string{"lineX", "clear"}},
		}},
		Brush: &Brush{
			XAxisIndex: "all",
			BrushLink:  "all",
			OutOfBrush: OutOfBrush{ColorAlpha: 0.1},
		},
		// Volume bars carry model.BarDirection at dimension 2, where 1 means
		// the period fell.
		VisualMap: &VisualMap{
			Show:        false,
			SeriesIndex: volumeIndex,
			Dimension:   2,
			Pieces: []Piece{
				{Value: 1, Color: DownColor},
				{Value: -1, Color: UpColor},
			},
		},
		Grid: []Grid{
			{Left: "10%", Right: "8%", Height: "50%"},
			{Left: "10%", Right: "8%", Top: "63%", Height: "16%"},
		},
		XAxis: []Axis{
			{
				Type:        "category",
				Data:        ch.Categories,
				BoundaryGap: boolp(false),
				AxisLine:    &AxisLine{OnZero: boolp(false)},
				SplitLine:   &Toggle{Show: false},
				Min:         "dataMin",
				Max:         "dataMax",
				AxisPointer: &AxisZ{Z: 100},
			},
			{
				Type:        "category",
				GridIndex:   1,
				Data:        ch.Categories,
				BoundaryGap: boolp(false),
				AxisLine:    &AxisLine{OnZero: boolp(false)},
				AxisTick:    &Toggle{Show: false},
				SplitLine:   &Toggle{Show: false},
				AxisLabel:   &Toggle{Show: false},
				Min:         "dataMin",
				Max:         "dataMax",
			},
		},
		YAxis: valueAxes(),
		DataZoom: []DataZoom{
			{Type: "inside", XAxisIndex: []int{0, 1}, Start: s.ZoomStart, End: s.ZoomEnd},
			{Type: "slider", Show: true, XAxisIndex: []int{0, 1}, Top: "85%", Start: s.ZoomStart, End: s.ZoomEnd},
		},
		Series: series,
	}
	return opt, nil
}

// BuildGenerated lays out a chart over a generated series using a dataset and
// per-series dimension encodings instead of pre-split channels.
func BuildGenerated(series model.Series) *Option {
	source := series
	if source == nil {
		source = model.Series{}
	}
	return &Option{
		Dataset: &Dataset{Source: source},
		Title:   &Title{Text: "Data Amount: " + humanize.Comma(int64(len(series)))},
		Tooltip: &Tooltip{
			Trigger:     "axis",
			AxisPointer: PointerStyle{Type: "line"},
		},
		Toolbox: &Toolbox{Feature: ToolboxFeature{
			DataZoom: ZoomFeature{YAxisIndex: false},
		}},
		Grid: []Grid{
			{Left: "10%", Right: "10%", Bottom: 200},
			{Left: "10%", Right: "10%", Height: 80, Bottom: 80},
		},
		XAxis: []Axis{
			{
				Type:        "category",
				BoundaryGap: boolp(false),
				AxisLine:    &AxisLine{OnZero: boolp(true)},
				SplitLine:   &Toggle{Show: false},
				Min:         "dataMin",
				Max:         "dataMax",
			},
			{
				Type:        "category",
				GridIndex:   1,
				BoundaryGap: boolp(false),
				AxisLine:    &AxisLine{OnZero: boolp(false)},
				AxisTick:    &Toggle{Show: false},
				SplitLine:   &Toggle{Show: false},
				AxisLabel:   &Toggle{Show: false},
				Min:         "dataMin",
				Max:         "dataMax",
			},
		},
		YAxis: valueAxes(),
		DataZoom: []DataZoom{
			{Type: "inside", XAxisIndex: []int{0, 1}, Start: 10, End: 100},
			{Type: "slider", Show: true, XAxisIndex: []int{0, 1}, Bottom: 10, Start: 10, End: 100},
		},
		// Records carry model.SignOf at dimension 6.
		VisualMap: &VisualMap{
			Show:        false,
			SeriesIndex: 1,
			Dimension:   6,
			Pieces: []Piece{
				{Value: 1, Color: UpColor},
				{Value: -1, Color: DownColor},
			},
		},
		Series: []Series{
			{
				Type: "candlestick",
				ItemStyle: &ItemStyle{
					Color:        UpColor,
					Color0:       DownColor,
					BorderColor:  UpBorderColor,
					BorderColor0: DownBorderColor,
				},
				// Dataset rows are [label, open, high, low, close, volume, sign];
				// candlesticks read open, close, low, high.
				Encode: &Encode{X: 0, Y: []int{1, 4, 3, 2}},
			},
			{
				Name:       "Volume",
				Type:       "bar",
				XAxisIndex: 1,
				YAxisIndex: 1,
				ItemStyle:  &ItemStyle{Color: volumeBarColor},
				Large:      true,
				Encode:     &Encode{X: 0, Y: 5},
			},
		},
	}
}

func valueAxes() []Axis {
	return []Axis{
		{Scale: true, SplitArea: &Toggle{Show: true}},
		{
			Scale:       true,
			GridIndex:   1,
			SplitNumber: 2,
			AxisLabel:   &Toggle{Show: false},
			AxisLine:    &AxisLine{Show: boolp(false)},
			AxisTick:    &Toggle{Show: false},
			SplitLine:   &Toggle{Show: false},
		},
	}
}

func rangeTitle(instrument string, prices []model.PriceTuple) *Title {
	t := &Title{Text: instrument}
	if high, low, err := calculator.PriceRange(prices); err == nil {
		t.Subtext = fmt.Sprintf("low %s  high %s",
			humanize.CommafWithDigits(low, 2), humanize.CommafWithDigits(high, 2))
	}
	return t
}
