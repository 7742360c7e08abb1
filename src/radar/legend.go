package radar

import "strings"

// LegendKind distinguishes quadrant headers from ring rows.
type LegendKind int

const (
	// LegendQuadrant is a header swatch filled with the quadrant color.
	LegendQuadrant LegendKind = iota
	// LegendRing lists one ring's technologies for the preceding quadrant.
	LegendRing
)

// LegendEntry is one row of the legend. Entries are a textual key only; they have
// no position on the chart.
type LegendEntry struct {
	Kind     LegendKind
	Quadrant Quadrant
	Ring     string
	Label    string
}

// Indentation used by the legend rows so ring rows read as children of their quadrant.
const (
	quadrantIndent = " "
	ringIndent     = "   "
)

// FormatCell renders one ring row, e.g. "   ADOPT: Git/GitHub, Docker".
func FormatCell(ring string, items []string) string {
	return ringIndent + ring + ": " + strings.Join(items, ", ")
}

// FormatQuadrant renders a quadrant header row.
func FormatQuadrant(name string) string { return quadrantIndent + name }

// Legend builds the legend rows: for every quadrant in order a header followed by
// one row per ring in ring order. A valid dataset yields
// len(Quadrants) * (1 + len(Rings)) entries. Missing cells render as empty rows.
func (d Dataset) Legend() []LegendEntry {
	out := make([]LegendEntry, 0, len(d.Quadrants)*(1+len(d.Rings)))
	for _, q := range d.Quadrants {
		out = append(out, LegendEntry{Kind: LegendQuadrant, Quadrant: q, Label: FormatQuadrant(q.Name)})
		for _, r := range d.Rings {
			items := d.Entries[q.Name][r.Name]
			out = append(out, LegendEntry{
				Kind:     LegendRing,
				Quadrant: q,
				Ring:     r.Name,
				Label:    FormatCell(r.Name, items),
			})
		}
	}
	return out
}

// LegendText returns all legend labels joined by newlines. Used to compare two
// renders without looking at pixels.
func (d Dataset) LegendText() string {
	entries := d.Legend()
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}
	return strings.Join(labels, "\n")
}
