// Package render draws a radar.Dataset as a polar tech radar chart.
//
// Drawing goes through go-chart's Renderer interface, so the same pass produces a
// raster PNG (chart.PNG) or an SVG document (chart.SVG). The figure follows a fixed
// layout: the polar plot on the left 60% of the figure, the legend to its right and
// the title above.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"strings"
	"time"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Sant1agoAm1go/OAIT/src/logging"
	"github.com/Sant1agoAm1go/OAIT/src/radar"
)

// Options controls the figure. Zero fields fall back to DefaultOptions.
type Options struct {
	Width  int
	Height int
	// DPI is the density of the 1600x1000 reference figure. Other sizes scale it by
	// the smaller of the width and height ratios, so text, swatches and strokes keep
	// their proportions to the plot and the legend always fits the figure.
	DPI         float64
	Title       string
	LegendTitle string
	// Hint, when non-empty, is stamped onto raster output (see DrawHint).
	Hint string
}

// Reference figure size the point-based sizes are laid out for.
const (
	refWidth  = 1600
	refHeight = 1000
)

// DefaultOptions is a 16x10 inch figure at 100 dpi.
func DefaultOptions() Options {
	return Options{
		Width:       1600,
		Height:      1000,
		DPI:         100,
		Title:       "Tech Radar",
		LegendTitle: "Tech Radar Details",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.DPI <= 0 {
		o.DPI = d.DPI
	}
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.LegendTitle == "" {
		o.LegendTitle = d.LegendTitle
	}
	return o
}

// Font sizes in points.
const (
	ringLabelSize     = 11
	quadrantLabelSize = 12
	legendSize        = 10
	titleSize         = 18
)

// Offsets in data units, relative to ring thresholds.
const (
	ringLabelInset      = 0.7
	quadrantLabelOffset = 1.2
)

var (
	colorWhite    = drawing.Color{R: 255, G: 255, B: 255, A: 255}
	colorBlack    = drawing.Color{R: 0, G: 0, B: 0, A: 255}
	colorDarkBlue = drawing.Color{R: 0, G: 0, B: 139, A: 255}
	colorGuide    = drawing.Color{R: 128, G: 128, B: 128, A: 128}
	colorFrame    = drawing.Color{R: 204, G: 204, B: 204, A: 255}
	boxWhite      = colorWhite.WithAlpha(230)
)

// sectorAlpha is the quadrant shading opacity (0.15).
const sectorAlpha = 38

// Renderer draws one dataset. It holds no mutable state once built, so Render may be
// called repeatedly and always produces the same output.
type Renderer struct {
	ds      radar.Dataset
	opts    Options
	dpi     float64 // effective, after scaling to the figure size
	lay     layout
	regular *truetype.Font
	bold    *truetype.Font
	colors  map[string]drawing.Color
}

// New validates the dataset and prepares fonts and geometry.
func New(ds radar.Dataset, opts Options) (*Renderer, error) {
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid radar: %w", err)
	}
	regular, bold, err := loadFonts()
	if err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	colors := make(map[string]drawing.Color, len(ds.Quadrants))
	for _, q := range ds.Quadrants {
		colors[q.Name] = drawing.ColorFromHex(strings.TrimPrefix(q.Color, "#"))
	}
	return &Renderer{
		ds:      ds,
		opts:    opts,
		dpi:     effectiveDPI(opts),
		lay:     newLayout(opts.Width, opts.Height, ds.MaxRadius()),
		regular: regular,
		bold:    bold,
		colors:  colors,
	}, nil
}

func effectiveDPI(o Options) float64 {
	scale := math.Min(float64(o.Width)/refWidth, float64(o.Height)/refHeight)
	return o.DPI * scale
}

// Options returns the effective options after defaults were applied.
func (rd *Renderer) Options() Options { return rd.opts }

// Render draws the whole figure on a surface from provider and writes it to w.
func (rd *Renderer) Render(provider chart.RendererProvider, w io.Writer) error {
	defer logging.Since(time.Now(), "render")
	r, err := provider(rd.opts.Width, rd.opts.Height)
	if err != nil {
		return fmt.Errorf("allocate %dx%d surface: %w", rd.opts.Width, rd.opts.Height, err)
	}
	r.SetDPI(rd.dpi)

	rd.initCanvas(r)
	// Sector shading sits below the ring guides, labels go on top of both.
	rd.drawSectors(r)
	rd.drawRings(r)
	rd.drawQuadrantLabels(r)
	rd.drawLegend(r)
	rd.drawTitle(r)

	if err := r.Save(w); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}

// Image renders to PNG and decodes the result, applying the hint overlay if set.
func (rd *Renderer) Image() (image.Image, error) {
	var buf bytes.Buffer
	if err := rd.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode rendered png: %w", err)
	}
	if rd.opts.Hint != "" {
		img = DrawHint(img, rd.opts.Hint)
	}
	return img, nil
}

// initCanvas paints the white background. The polar axes draws no ticks, spines or
// grid; only the elements below appear.
func (rd *Renderer) initCanvas(r chart.Renderer) {
	r.ResetStyle()
	r.SetFillColor(colorWhite)
	rect(r, chart.Box{Top: 0, Left: 0, Right: rd.opts.Width, Bottom: rd.opts.Height})
	r.Fill()
}

// drawSectors shades each quadrant's wedge across the full radial extent.
func (rd *Renderer) drawSectors(r chart.Renderer) {
	maxR := rd.ds.MaxRadius()
	for _, s := range rd.ds.Sectors() {
		r.ResetStyle()
		r.SetFillColor(rd.colors[s.Quadrant.Name].WithAlpha(sectorAlpha))
		cx, cy := rd.lay.point(0, 0)
		r.MoveTo(cx, cy)
		for _, theta := range linspace(s.Start, s.End, 50) {
			x, y := rd.lay.point(theta, maxR)
			r.LineTo(x, y)
		}
		r.Close()
		r.Fill()
	}
}

// drawRings draws a dashed guide circle per ring and its name just inside the
// threshold at the top of the circle.
func (rd *Renderer) drawRings(r chart.Renderer) {
	for _, ring := range rd.ds.Rings {
		r.ResetStyle()
		r.SetStrokeColor(colorGuide)
		r.SetStrokeWidth(rd.pt(0.7))
		r.SetStrokeDashArray([]float64{rd.pt(3.7), rd.pt(1.6)})
		for i, theta := range linspace(0, 2*math.Pi, 100) {
			x, y := rd.lay.point(theta, ring.Radius)
			if i == 0 {
				r.MoveTo(x, y)
				continue
			}
			r.LineTo(x, y)
		}
		r.Stroke()
	}
	for _, ring := range rd.ds.Rings {
		x, y := rd.lay.point(math.Pi/2, ring.Radius-ringLabelInset)
		rd.boxedText(r, ring.Name, x, y, rd.regular, ringLabelSize, colorDarkBlue, true)
	}
}

// drawQuadrantLabels centers each quadrant name on its sector's midpoint just
// outside the outermost ring.
func (rd *Renderer) drawQuadrantLabels(r chart.Renderer) {
	radius := rd.ds.MaxRadius() + quadrantLabelOffset
	for _, s := range rd.ds.Sectors() {
		x, y := rd.lay.point(s.Mid(), radius)
		rd.boxedText(r, s.Quadrant.Name, x, y, rd.regular, quadrantLabelSize, colorBlack, false)
	}
}

// drawLegend draws the framed key: a title row, then one swatch per legend entry.
// Quadrant headers get a filled swatch, ring rows a white swatch edged in the
// quadrant color.
func (rd *Renderer) drawLegend(r chart.Renderer) {
	entries := rd.ds.Legend()
	em := rd.pt(legendSize)
	pad := int(math.Round(1.5 * em))
	swatchW := int(math.Round(1.8 * em))
	swatchH := int(math.Round(2.4 * em))
	gap := int(math.Round(0.8 * em))
	spacing := int(math.Round(0.5 * em))

	rd.setText(r, rd.regular, legendSize, colorBlack)
	textW := 0
	for _, e := range entries {
		if w := r.MeasureText(e.Label).Width(); w > textW {
			textW = w
		}
	}
	rd.setText(r, rd.regular, legendSize+1, colorBlack)
	title := r.MeasureText(rd.opts.LegendTitle)
	titleH := title.Height() + spacing

	width := 2*pad + swatchW + gap + textW
	if w := 2*pad + title.Width(); w > width {
		width = w
	}
	height := 2*pad + titleH + len(entries)*swatchH + (len(entries)-1)*spacing

	left, cy := rd.lay.legendAnchor()
	frame := chart.Box{Left: left, Top: cy - height/2, Right: left + width, Bottom: cy - height/2 + height}
	r.ResetStyle()
	r.SetFillColor(boxWhite)
	r.SetStrokeColor(colorFrame)
	r.SetStrokeWidth(rd.pt(0.8))
	roundedRect(r, frame, int(math.Round(0.4*em)))
	r.FillStroke()

	rd.setText(r, rd.regular, legendSize+1, colorBlack)
	r.Text(rd.opts.LegendTitle, frame.Left+(width-title.Width())/2, frame.Top+pad+title.Height())

	y := frame.Top + pad + titleH
	for _, e := range entries {
		sw := chart.Box{Left: frame.Left + pad, Top: y, Right: frame.Left + pad + swatchW, Bottom: y + swatchH}
		qc := rd.colors[e.Quadrant.Name]
		r.ResetStyle()
		r.SetStrokeWidth(rd.pt(1))
		if e.Kind == radar.LegendQuadrant {
			r.SetFillColor(qc)
			r.SetStrokeColor(colorBlack)
		} else {
			r.SetFillColor(colorWhite)
			r.SetStrokeColor(qc)
		}
		rect(r, sw)
		r.FillStroke()

		rd.setText(r, rd.regular, legendSize, colorBlack)
		tb := r.MeasureText(e.Label)
		r.Text(e.Label, sw.Right+gap, y+(swatchH+tb.Height())/2)
		y += swatchH + spacing
	}
}

// drawTitle centers the bold figure title above the polar axes.
func (rd *Renderer) drawTitle(r chart.Renderer) {
	rd.setText(r, rd.bold, titleSize, colorBlack)
	tb := r.MeasureText(rd.opts.Title)
	x := int(math.Round(rd.lay.cx)) - tb.Width()/2
	y := rd.lay.axesTop() - int(math.Round(rd.pt(35)))
	if y < tb.Height() {
		y = tb.Height()
	}
	r.Text(rd.opts.Title, x, y)
}

// boxedText draws text centered on (x, y) over a white box.
func (rd *Renderer) boxedText(r chart.Renderer, text string, x, y int, f *truetype.Font, size float64, col drawing.Color, rounded bool) {
	rd.setText(r, f, size, col)
	tb := r.MeasureText(text)
	pad := int(math.Round(0.2 * rd.pt(size)))
	box := chart.Box{
		Left:   x - tb.Width()/2 - pad,
		Top:    y - tb.Height()/2 - pad,
		Right:  x + tb.Width()/2 + pad,
		Bottom: y + tb.Height()/2 + pad,
	}
	r.ResetStyle()
	r.SetFillColor(boxWhite)
	if rounded {
		r.SetStrokeColor(colorBlack)
		r.SetStrokeWidth(rd.pt(0.8))
		roundedRect(r, box, pad)
		r.FillStroke()
	} else {
		rect(r, box)
		r.Fill()
	}
	rd.setText(r, f, size, col)
	r.Text(text, x-tb.Width()/2, y+tb.Height()/2)
}

func (rd *Renderer) setText(r chart.Renderer, f *truetype.Font, size float64, col drawing.Color) {
	r.ResetStyle()
	r.SetFont(f)
	r.SetFontSize(size)
	r.SetFontColor(col)
}

// pt converts points to pixels at the figure DPI.
func (rd *Renderer) pt(points float64) float64 { return points * rd.dpi / 72 }

func rect(r chart.Renderer, b chart.Box) {
	r.MoveTo(b.Left, b.Top)
	r.LineTo(b.Right, b.Top)
	r.LineTo(b.Right, b.Bottom)
	r.LineTo(b.Left, b.Bottom)
	r.Close()
}

func roundedRect(r chart.Renderer, b chart.Box, rad int) {
	if rad <= 0 {
		rect(r, b)
		return
	}
	r.MoveTo(b.Left+rad, b.Top)
	r.LineTo(b.Right-rad, b.Top)
	r.QuadCurveTo(b.Right, b.Top, b.Right, b.Top+rad)
	r.LineTo(b.Right, b.Bottom-rad)
	r.QuadCurveTo(b.Right, b.Bottom, b.Right-rad, b.Bottom)
	r.LineTo(b.Left+rad, b.Bottom)
	r.QuadCurveTo(b.Left, b.Bottom, b.Left, b.Bottom-rad)
	r.LineTo(b.Left, b.Top+rad)
	r.QuadCurveTo(b.Left, b.Top, b.Left+rad, b.Top)
	r.Close()
}
