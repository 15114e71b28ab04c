// Package chart assembles the declarative configuration handed to the
// browser-side candlestick widget. It only describes the chart; drawing,
// zooming and tooltips belong to the widget.
package chart

// Option is the root of a chart configuration.
type Option struct {
	Animation   *bool        `json:"animation,omitempty"`
	Title       *Title       `json:"title,omitempty"`
	Legend      *Legend      `json:"legend,omitempty"`
	Tooltip     *Tooltip     `json:"tooltip,omitempty"`
	AxisPointer *AxisPointer `json:"axisPointer,omitempty"`
	Toolbox     *Toolbox     `json:"toolbox,omitempty"`
	Brush       *Brush       `json:"brush,omitempty"`
	VisualMap   *VisualMap   `json:"visualMap,omitempty"`
	Grid        []Grid       `json:"grid,omitempty"`
	XAxis       []Axis       `json:"xAxis,omitempty"`
	YAxis       []Axis       `json:"yAxis,omitempty"`
	DataZoom    []DataZoom   `json:"dataZoom,omitempty"`
	Dataset     *Dataset     `json:"dataset,omitempty"`
	Series      []Series     `json:"series"`
}

type Title struct {
	Text    string `json:"text"`
	Subtext string `json:"subtext,omitempty"`
}

type Legend struct {
	Bottom any      `json:"bottom,omitempty"`
	Left   string   `json:"left,omitempty"`
	Data   []string `json:"data"`
}

type Tooltip struct {
	Trigger     string       `json:"trigger"`
	AxisPointer PointerStyle `json:"axisPointer"`
	BorderWidth int          `json:"borderWidth,omitempty"`
	BorderColor string       `json:"borderColor,omitempty"`
	Padding     int          `json:"padding,omitempty"`
	TextStyle   *TextStyle   `json:"textStyle,omitempty"`
}

type PointerStyle struct {
	Type string `json:"type"`
}

type TextStyle struct {
	Color string `json:"color"`
}

type AxisPointer struct {
	Link  []AxisLink   `json:"link"`
	Label PointerLabel `json:"label"`
}

type AxisLink struct {
	XAxisIndex string `json:"xAxisIndex"`
}

type PointerLabel struct {
	BackgroundColor string `json:"backgroundColor"`
}

type Toolbox struct {
	Feature ToolboxFeature `json:"feature"`
}

type ToolboxFeature struct {
	DataZoom ZoomFeature   `json:"dataZoom"`
	Brush    *BrushFeature `json:"brush,omitempty"`
}

type ZoomFeature struct {
	YAxisIndex bool `json:"yAxisIndex"`
}

type BrushFeature struct {
	Type []string `json:"type"`
}

type Brush struct {
	XAxisIndex string     `json:"xAxisIndex"`
	BrushLink  string     `json:"brushLink"`
	OutOfBrush OutOfBrush `json:"outOfBrush"`
}

type OutOfBrush struct {
	ColorAlpha float64 `json:"colorAlpha"`
}

// VisualMap colours one series by the value found at Dimension.
type VisualMap struct {
	Show        bool    `json:"show"`
	SeriesIndex int     `json:"seriesIndex"`
	Dimension   int     `json:"dimension"`
	Pieces      []Piece `json:"pieces"`
}

type Piece struct {
	Value int    `json:"value"`
	Color string `json:"color"`
}

type Grid struct {
	Left   string `json:"left,omitempty"`
	Right  string `json:"right,omitempty"`
	Top    string `json:"top,omitempty"`
	Height any    `json:"height,omitempty"`
	Bottom any    `json:"bottom,omitempty"`
}

type Axis struct {
	Type        string    `json:"type,omitempty"`
	GridIndex   int       `json:"gridIndex,omitempty"`
	Data        []string  `json:"data,omitempty"`
	BoundaryGap *bool     `json:"boundaryGap,omitempty"`
	Scale       bool      `json:"scale,omitempty"`
	SplitNumber int       `json:"splitNumber,omitempty"`
	AxisLine    *AxisLine `json:"axisLine,omitempty"`
	AxisTick    *Toggle   `json:"axisTick,omitempty"`
	AxisLabel   *Toggle   `json:"axisLabel,omitempty"`
	SplitLine   *Toggle   `json:"splitLine,omitempty"`
	SplitArea   *Toggle   `json:"splitArea,omitempty"`
	Min         string    `json:"min,omitempty"`
	Max         string    `json:"max,omitempty"`
	AxisPointer *AxisZ    `json:"axisPointer,omitempty"`
}

type AxisLine struct {
	Show   *bool `json:"show,omitempty"`
	OnZero *bool `json:"onZero,omitempty"`
}

type Toggle struct {
	Show bool `json:"show"`
}

type AxisZ struct {
	Z int `json:"z"`
}

type DataZoom struct {
	Type       string  `json:"type"`
	Show       bool    `json:"show,omitempty"`
	XAxisIndex []int   `json:"xAxisIndex"`
	Top        string  `json:"top,omitempty"`
	Bottom     any     `json:"bottom,omitempty"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
}

type Dataset struct {
	Source any `json:"source"`
}

type Series struct {
	Name       string     `json:"name,omitempty"`
	Type       string     `json:"type"`
	Data       any        `json:"data,omitempty"`
	Smooth     bool       `json:"smooth,omitempty"`
	Large      bool       `json:"large,omitempty"`
	XAxisIndex int        `json:"xAxisIndex,omitempty"`
	YAxisIndex int        `json:"yAxisIndex,omitempty"`
	LineStyle  *LineStyle `json:"lineStyle,omitempty"`
	ItemStyle  *ItemStyle `json:"itemStyle,omitempty"`
	Encode     *Encode    `json:"encode,omitempty"`
}

type LineStyle struct {
	Opacity float64 `json:"opacity"`
}

type ItemStyle struct {
	Color        string `json:"color,omitempty"`
	Color0       string `json:"color0,omitempty"`
	BorderColor  string `json:"borderColor,omitempty"`
	BorderColor0 string `json:"borderColor0,omitempty"`
}

// Encode maps dataset dimensions onto axes.
type Encode struct {
	X int `json:"x"`
	Y any `json:"y"`
}

func boolp(b bool) *bool { return &b }
