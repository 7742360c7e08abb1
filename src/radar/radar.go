// Package radar holds the tech radar dataset: the maturity rings, the technology
// quadrants and the technology labels filed under each (quadrant, ring) cell.
//
// Everything here is derived from immutable literals; nothing in this package draws.
// The render package turns a Dataset into pixels, this package answers the questions
// the drawing needs: where each ring sits, how the circle is split into sectors and
// what text goes into the legend.
package radar

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Ring names, innermost (most adopted) first.
const (
	RingAdopt  = "ADOPT"
	RingTrial  = "TRIAL"
	RingAssess = "ASSESS"
	RingHold   = "HOLD"
)

// Quadrant names of the default radar.
const (
	QuadrantTechnologies = "Technologies"
	QuadrantLanguages    = "Languages & Frameworks"
	QuadrantTools        = "Tools"
	QuadrantPlatforms    = "Platforms"
)

// QuadrantCount is the fixed number of angular sectors of a radar.
const QuadrantCount = 4

var (
	// ErrRingRadiusMismatch means ring names and radii differ in count, or there are no rings.
	ErrRingRadiusMismatch = errors.New("ring count does not match radius count")
	// ErrRadiiNotIncreasing means a ring is not strictly outside the previous one.
	ErrRadiiNotIncreasing = errors.New("ring radii must be strictly increasing")
	// ErrQuadrantCount means the dataset does not have exactly QuadrantCount quadrants.
	ErrQuadrantCount = errors.New("radar needs exactly 4 quadrants")
	// ErrMissingCell means a (quadrant, ring) pair has no technology list.
	ErrMissingCell = errors.New("missing technology cell")
	// ErrUnknownQuadrant is returned by lookups naming a quadrant not in the dataset.
	ErrUnknownQuadrant = errors.New("unknown quadrant")
	// ErrUnknownRing is returned by lookups naming a ring not in the quadrant.
	ErrUnknownRing = errors.New("unknown ring")
)

// Ring is a maturity stage drawn as a concentric circle at Radius (data units).
type Ring struct {
	Name   string
	Radius float64
}

// Quadrant is a technology category drawn as a 90 degree sector. Color is a
// "#rrggbb" hex string.
type Quadrant struct {
	Name  string
	Color string
}

// Dataset is the complete radar content. Entries maps quadrant name -> ring name ->
// ordered technology labels. Treat a Dataset as read-only; use WithCell to derive
// a modified copy.
type Dataset struct {
	Rings     []Ring
	Quadrants []Quadrant
	Entries   map[string]map[string][]string
}

// NewRings pairs ring names with their radius thresholds.
func NewRings(names []string, radii []float64) ([]Ring, error) {
	if len(names) != len(radii) {
		return nil, fmt.Errorf("%w: %d rings, %d radii", ErrRingRadiusMismatch, len(names), len(radii))
	}
	rings := make([]Ring, len(names))
	for i := range names {
		rings[i] = Ring{Name: names[i], Radius: radii[i]}
	}
	return rings, nil
}

// Default returns the hardcoded radar shown by the program. Each call builds fresh
// slices and maps, so callers can never observe each other's mutations.
func Default() Dataset {
	rings, _ := NewRings(
		[]string{RingAdopt, RingTrial, RingAssess, RingHold},
		[]float64{2.0, 3.5, 5.0, 6.5},
	)
	return Dataset{
		Rings: rings,
		// First four colors of the tab10 palette.
		Quadrants: []Quadrant{
			{Name: QuadrantTechnologies, Color: "#1f77b4"},
			{Name: QuadrantLanguages, Color: "#ff7f0e"},
			{Name: QuadrantTools, Color: "#2ca02c"},
			{Name: QuadrantPlatforms, Color: "#d62728"},
		},
		Entries: map[string]map[string][]string{
			QuadrantTechnologies: {
				RingAdopt:  {"Socket.io", "REST API", "PostgreSQL"},
				RingTrial:  {"Cloudinary"},
				RingAssess: {"WebRTC", "RTMP Server"},
				RingHold:   {"MQTT/gRPC"},
			},
			QuadrantLanguages: {
				RingAdopt:  {"Python/Flask", "Node.js/Express", "React"},
				RingTrial:  {"Next.js"},
				RingAssess: {"SvelteKit", "NestJS"},
				RingHold:   {"Go/Ruby"},
			},
			QuadrantTools: {
				RingAdopt:  {"Git/GitHub", "Docker"},
				RingTrial:  {"VSCode Live Share"},
				RingAssess: {"Terraform", "Prometheus"},
				RingHold:   {"Kubernetes"},
			},
			QuadrantPlatforms: {
				RingAdopt:  {"Vercel/Heroku", "Firebase"},
				RingTrial:  {"DigitalOcean"},
				RingAssess: {"AWS Lightsail", "Supabase"},
				RingHold:   {"On-Prem"},
			},
		},
	}
}

// Validate checks the structural invariants the renderer relies on: strictly
// increasing radii, exactly four quadrants and a cell for every (quadrant, ring).
func (d Dataset) Validate() error {
	if len(d.Rings) == 0 {
		return fmt.Errorf("%w: no rings", ErrRingRadiusMismatch)
	}
	for i := 1; i < len(d.Rings); i++ {
		if !(d.Rings[i-1].Radius < d.Rings[i].Radius) {
			return fmt.Errorf("%w: %s (%.2f) >= %s (%.2f)", ErrRadiiNotIncreasing,
				d.Rings[i-1].Name, d.Rings[i-1].Radius, d.Rings[i].Name, d.Rings[i].Radius)
		}
	}
	if len(d.Quadrants) != QuadrantCount {
		return fmt.Errorf("%w: got %d", ErrQuadrantCount, len(d.Quadrants))
	}
	for _, q := range d.Quadrants {
		byRing, ok := d.Entries[q.Name]
		if !ok {
			return fmt.Errorf("%w: quadrant %q", ErrMissingCell, q.Name)
		}
		for _, r := range d.Rings {
			if _, ok := byRing[r.Name]; !ok {
				return fmt.Errorf("%w: %q/%q", ErrMissingCell, q.Name, r.Name)
			}
		}
	}
	return nil
}

// MaxRadius is the outermost ring threshold, which is also the radial bound of the plot.
func (d Dataset) MaxRadius() float64 {
	if len(d.Rings) == 0 {
		return 0
	}
	return d.Rings[len(d.Rings)-1].Radius
}

// Cell returns the technology labels for one (quadrant, ring) pair.
func (d Dataset) Cell(quadrant, ring string) ([]string, error) {
	byRing, ok := d.Entries[quadrant]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuadrant, quadrant)
	}
	items, ok := byRing[ring]
	if !ok {
		return nil, fmt.Errorf("%w: %q in %q", ErrUnknownRing, ring, quadrant)
	}
	return items, nil
}

// Joined returns the comma-joined labels of one cell, e.g. "Git/GitHub, Docker".
func (d Dataset) Joined(quadrant, ring string) (string, error) {
	items, err := d.Cell(quadrant, ring)
	if err != nil {
		return "", err
	}
	return strings.Join(items, ", "), nil
}

// WithCell returns a copy of d where one cell holds items. The receiver is untouched.
func (d Dataset) WithCell(quadrant, ring string, items []string) Dataset {
	out := Dataset{
		Rings:     append([]Ring(nil), d.Rings...),
		Quadrants: append([]Quadrant(nil), d.Quadrants...),
		Entries:   make(map[string]map[string][]string, len(d.Entries)),
	}
	for q, byRing := range d.Entries {
		cp := make(map[string][]string, len(byRing))
		for r, labels := range byRing {
			cp[r] = append([]string(nil), labels...)
		}
		out.Entries[q] = cp
	}
	if out.Entries[quadrant] == nil {
		out.Entries[quadrant] = map[string][]string{}
	}
	out.Entries[quadrant][ring] = append([]string(nil), items...)
	return out
}

// Sector is the angular span of one quadrant, in radians, counterclockwise from 0.
type Sector struct {
	Quadrant Quadrant
	Start    float64
	End      float64
}

// Mid is the angle the quadrant name is centered on.
func (s Sector) Mid() float64 { return (s.Start + s.End) / 2 }

// Sectors splits the full circle into equal spans starting at angle 0, one per
// quadrant in dataset order.
func (d Dataset) Sectors() []Sector {
	n := len(d.Quadrants)
	if n == 0 {
		return nil
	}
	span := 2 * math.Pi / float64(n)
	out := make([]Sector, n)
	for i, q := range d.Quadrants {
		out[i] = Sector{Quadrant: q, Start: float64(i) * span, End: float64(i+1) * span}
	}
	// Close the circle exactly; i*span accumulates rounding on the last sector.
	out[n-1].End = 2 * math.Pi
	return out
}

// TechnologyCount is the number of labels across all cells.
func (d Dataset) TechnologyCount() int {
	n := 0
	for _, byRing := range d.Entries {
		for _, labels := range byRing {
			n += len(labels)
		}
	}
	return n
}
