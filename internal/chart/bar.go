// Package chart turns the dashboard's fixed datasets into drawable geometry.
//
// Geometry is computed by pure functions (Bars, Ring) that know nothing about
// the drawing surface. BarSVG and RingSVG render that geometry as inline SVG.
package chart

// BarDatum is one entry of an ordered bar series. Order is meaningful
// (it is a day-of-week sequence) and is never changed.
type BarDatum struct {
	Label string  `yaml:"label" json:"label"`
	Value float64 `yaml:"value" json:"value"`
}

// BarLayout controls bar geometry.
type BarLayout struct {
	MaxHeight float64 // height of the tallest bar
	BarWidth  float64 // uniform bar width
	Gap       float64 // uniform space before each bar
}

// DefaultBarLayout matches the dashboard's "Daily Bookings Trend" card.
func DefaultBarLayout() BarLayout {
	return BarLayout{
		MaxHeight: 200,
		BarWidth:  40,
		Gap:       32,
	}
}

// Width returns the horizontal extent needed for n bars, including a
// trailing gap so the series is centered.
func (l BarLayout) Width(n int) float64 {
	return l.Gap + float64(n)*(l.BarWidth+l.Gap)
}

// Bar is a drawable bar. Y is measured from the top of the plot area, so a
// bar's base always sits at Y+Height == MaxHeight.
type Bar struct {
	Label  string
	Value  float64
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Visible reports whether the bar occupies any vertical space.
func (b Bar) Visible() bool { return b.Height > 0 }

// Bars lays out data left to right in input order. Each height is
// value/max * MaxHeight; negative values clamp to zero. When the maximum is
// zero every bar keeps its label and gets zero height.
func Bars(data []BarDatum, layout BarLayout) []Bar {
	if len(data) == 0 {
		return nil
	}

	var maxVal float64
	for _, d := range data {
		if d.Value > maxVal {
			maxVal = d.Value
		}
	}

	bars := make([]Bar, len(data))
	for i, d := range data {
		var h float64
		if maxVal > 0 && d.Value > 0 {
			h = d.Value / maxVal * layout.MaxHeight
		}
		bars[i] = Bar{
			Label:  d.Label,
			Value:  d.Value,
			X:      layout.Gap + float64(i)*(layout.BarWidth+layout.Gap),
			Y:      layout.MaxHeight - h,
			Width:  layout.BarWidth,
			Height: h,
		}
	}
	return bars
}
