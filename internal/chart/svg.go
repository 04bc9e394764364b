package chart

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"
)

// BarStyle holds presentation settings for BarSVG.
type BarStyle struct {
	Fill       string
	GridColor  string
	LabelColor string
	FontSize   int
	Radius     float64
}

// DefaultBarStyle returns the dashboard palette.
func DefaultBarStyle() BarStyle {
	return BarStyle{
		Fill:       "#3b82f6",
		GridColor:  "#f1f5f9",
		LabelColor: "#94a3b8",
		FontSize:   12,
		Radius:     4,
	}
}

// labelBand is the space reserved under the plot area for axis labels.
const labelBand = 24

// BarSVG renders bars as a standalone SVG document. Zero-height bars are
// omitted but their labels are still drawn.
func BarSVG(bars []Bar, layout BarLayout, style BarStyle) string {
	width := layout.Width(len(bars))
	height := layout.MaxHeight + labelBand

	var sb strings.Builder
	sb.WriteString(svgHeader(width, height, "Daily bookings"))

	// Horizontal dashed grid at quarter steps.
	for i := 0; i < 4; i++ {
		y := layout.MaxHeight * float64(i) / 4
		fmt.Fprintf(&sb, `<line x1="0" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-dasharray="3 3"/>`,
			num(y), num(width), num(y), style.GridColor)
	}

	for _, b := range bars {
		if b.Visible() {
			fmt.Fprintf(&sb, `<rect class="bar" x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s"><title>%s: %s</title></rect>`,
				num(b.X), num(b.Y), num(b.Width), num(b.Height), num(style.Radius), style.Fill,
				escapeXML(b.Label), num(b.Value))
		}
		fmt.Fprintf(&sb, `<text x="%s" y="%s" font-size="%d" fill="%s" text-anchor="middle">%s</text>`,
			num(b.X+b.Width/2), num(layout.MaxHeight+labelBand-6), style.FontSize, style.LabelColor, escapeXML(b.Label))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// RingSVG renders arcs as a standalone SVG document. An empty arc list
// produces an empty drawing.
func RingSVG(arcs []Arc, layout RingLayout) string {
	size := 2 * math.Max(layout.CX, layout.CY)

	var sb strings.Builder
	sb.WriteString(svgHeader(size, size, "Job status distribution"))

	for _, a := range arcs {
		start, end, ok := a.Drawn()
		if !ok {
			continue
		}
		if end-start >= 360 {
			// A lone slice covers the whole ring; an arc path cannot start and
			// end on the same point.
			mid := (layout.InnerRadius + layout.OuterRadius) / 2
			fmt.Fprintf(&sb, `<circle class="arc" cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s"><title>%s: %s</title></circle>`,
				num(layout.CX), num(layout.CY), num(mid), escapeXML(a.Color), num(layout.OuterRadius-layout.InnerRadius),
				escapeXML(a.Label), num(a.Value))
			continue
		}
		fmt.Fprintf(&sb, `<path class="arc" d="%s" fill="%s"><title>%s: %s</title></path>`,
			sectorPath(layout, start, end), escapeXML(a.Color), escapeXML(a.Label), num(a.Value))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// sectorPath builds the outline of an annular sector between two angles.
func sectorPath(l RingLayout, start, end float64) string {
	large := 0
	if end-start > 180 {
		large = 1
	}
	ox0, oy0 := polar(l.CX, l.CY, l.OuterRadius, start)
	ox1, oy1 := polar(l.CX, l.CY, l.OuterRadius, end)
	ix1, iy1 := polar(l.CX, l.CY, l.InnerRadius, end)
	ix0, iy0 := polar(l.CX, l.CY, l.InnerRadius, start)

	return fmt.Sprintf("M%s,%s A%s,%s 0 %d,1 %s,%s L%s,%s A%s,%s 0 %d,0 %s,%s Z",
		num(ox0), num(oy0),
		num(l.OuterRadius), num(l.OuterRadius), large, num(ox1), num(oy1),
		num(ix1), num(iy1),
		num(l.InnerRadius), num(l.InnerRadius), large, num(ix0), num(iy0))
}

func svgHeader(width, height float64, label string) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="100%%" role="img" aria-label="%s" font-family="sans-serif">`,
		num(width), num(height), escapeXML(label))
}

// num formats a coordinate with at most two decimals and no trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func escapeXML(s string) string {
	return html.EscapeString(s)
}
