package render

import (
	"html"

	chart "github.com/wcharczuk/go-chart/v2"
)

// SVG is a chart.RendererProvider for SVG output whose text is XML-escaped. go-chart
// writes Text bodies verbatim, so a label such as "Languages & Frameworks" would
// otherwise produce a document XML parsers reject.
func SVG(width, height int) (chart.Renderer, error) {
	r, err := chart.SVG(width, height)
	if err != nil {
		return nil, err
	}
	return escapingRenderer{Renderer: r}, nil
}

// escapingRenderer escapes only what is written; MeasureText still sees the raw
// string so layout is identical to the PNG path.
type escapingRenderer struct {
	chart.Renderer
}

func (e escapingRenderer) Text(body string, x, y int) {
	e.Renderer.Text(html.EscapeString(body), x, y)
}
