package chart

import "math"

// RingDatum is one slice of a ring chart. Color is used verbatim.
type RingDatum struct {
	Label string  `yaml:"label" json:"label"`
	Value float64 `yaml:"value" json:"value"`
	Color string  `yaml:"color" json:"color"`
}

// RingLayout controls ring geometry. Angles are degrees, clockwise from
// twelve o'clock.
type RingLayout struct {
	CX          float64
	CY          float64
	InnerRadius float64
	OuterRadius float64
	Gap         float64 // cosmetic separation between consecutive arcs
}

// DefaultRingLayout matches the dashboard's "Job Status Distribution" card.
func DefaultRingLayout() RingLayout {
	return RingLayout{
		CX:          100,
		CY:          100,
		InnerRadius: 60,
		OuterRadius: 80,
		Gap:         5,
	}
}

// Arc is one proportional slice. Start and Sweep describe the share of the
// full circle. DrawStart and DrawSweep are the painted extent: the gaps are
// taken off the circle first and the rest is shared by value, so every
// non-zero slice stays visible however small.
type Arc struct {
	Label     string
	Color     string
	Value     float64
	Start     float64
	Sweep     float64
	DrawStart float64
	DrawSweep float64
}

// Drawn returns the angular extent actually painted. ok is false for
// zero-value slices.
func (a Arc) Drawn() (start, end float64, ok bool) {
	return a.DrawStart, a.DrawStart + a.DrawSweep, a.DrawSweep > 0
}

// Ring computes arcs in input order. Each sweep is value/total * 360; sweeps
// always sum to 360 when total > 0. A zero total yields no arcs.
//
// One gap follows every non-zero slice. A lone non-zero slice gets no gap
// and is drawn as a full ring.
func Ring(data []RingDatum, layout RingLayout) []Arc {
	var total float64
	var visible int
	for _, d := range data {
		if d.Value > 0 {
			total += d.Value
			visible++
		}
	}
	if total <= 0 {
		return nil
	}

	gap := layout.Gap
	if visible < 2 || gap < 0 || float64(visible)*gap >= 360 {
		gap = 0
	}
	paintable := 360 - float64(visible)*gap

	arcs := make([]Arc, 0, len(data))
	var angle float64
	drawAt := gap / 2
	for _, d := range data {
		v := math.Max(d.Value, 0)
		share := v / total
		a := Arc{
			Label:     d.Label,
			Color:     d.Color,
			Value:     d.Value,
			Start:     angle,
			Sweep:     share * 360,
			DrawStart: drawAt,
			DrawSweep: share * paintable,
		}
		arcs = append(arcs, a)
		angle += a.Sweep
		if v > 0 {
			drawAt += a.DrawSweep + gap
		}
	}
	return arcs
}

// polar converts an angle on the ring to SVG coordinates.
func polar(cx, cy, r, deg float64) (x, y float64) {
	rad := deg * math.Pi / 180
	return cx + r*math.Sin(rad), cy - r*math.Cos(rad)
}
