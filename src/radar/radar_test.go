package radar

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default dataset invalid: %v", err)
	}
}

func TestEveryQuadrantHasAllRings(t *testing.T) {
	d := Default()
	if len(d.Quadrants) != 4 {
		t.Fatalf("quadrants=%d want 4", len(d.Quadrants))
	}
	want := []string{RingAdopt, RingTrial, RingAssess, RingHold}
	for _, q := range d.Quadrants {
		byRing := d.Entries[q.Name]
		if len(byRing) != len(want) {
			t.Fatalf("%s: %d ring keys want %d", q.Name, len(byRing), len(want))
		}
		for _, r := range want {
			if _, ok := byRing[r]; !ok {
				t.Errorf("%s: missing ring %s", q.Name, r)
			}
		}
	}
}

func TestRingRadiiStrictlyIncreasing(t *testing.T) {
	d := Default()
	for i := 1; i < len(d.Rings); i++ {
		if !(d.Rings[i-1].Radius < d.Rings[i].Radius) {
			t.Fatalf("radius[%d]=%.2f not < radius[%d]=%.2f", i-1, d.Rings[i-1].Radius, i, d.Rings[i].Radius)
		}
	}
	if d.MaxRadius() != 6.5 {
		t.Fatalf("max radius=%.2f want 6.5", d.MaxRadius())
	}
}

func TestNewRingsMismatch(t *testing.T) {
	_, err := NewRings([]string{"A", "B"}, []float64{1})
	if !errors.Is(err, ErrRingRadiusMismatch) {
		t.Fatalf("expected ErrRingRadiusMismatch, got %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(d *Dataset)
		want error
	}{
		{"no rings", func(d *Dataset) { d.Rings = nil }, ErrRingRadiusMismatch},
		{"equal radii", func(d *Dataset) { d.Rings[1].Radius = d.Rings[0].Radius }, ErrRadiiNotIncreasing},
		{"decreasing radii", func(d *Dataset) { d.Rings[3].Radius = 1 }, ErrRadiiNotIncreasing},
		{"three quadrants", func(d *Dataset) { d.Quadrants = d.Quadrants[:3] }, ErrQuadrantCount},
		{"missing quadrant cells", func(d *Dataset) { delete(d.Entries, QuadrantTools) }, ErrMissingCell},
		{"missing ring cell", func(d *Dataset) { delete(d.Entries[QuadrantPlatforms], RingHold) }, ErrMissingCell},
	}
	for _, c := range cases {
		d := Default()
		c.mut(&d)
		if err := d.Validate(); !errors.Is(err, c.want) {
			t.Errorf("%s: got %v want %v", c.name, err, c.want)
		}
	}
}

func TestSectorsPartitionCircle(t *testing.T) {
	sectors := Default().Sectors()
	if len(sectors) != 4 {
		t.Fatalf("sectors=%d want 4", len(sectors))
	}
	const eps = 1e-12
	if sectors[0].Start != 0 {
		t.Fatalf("first sector starts at %v want 0", sectors[0].Start)
	}
	if sectors[3].End != 2*math.Pi {
		t.Fatalf("last sector ends at %v want 2pi", sectors[3].End)
	}
	for i, s := range sectors {
		if math.Abs((s.End-s.Start)-math.Pi/2) > eps {
			t.Errorf("sector %d spans %v want pi/2", i, s.End-s.Start)
		}
		if i > 0 && sectors[i-1].End != s.Start {
			t.Errorf("sector %d starts at %v, previous ends at %v", i, s.Start, sectors[i-1].End)
		}
		if math.Abs(s.Mid()-(s.Start+math.Pi/4)) > eps {
			t.Errorf("sector %d mid=%v", i, s.Mid())
		}
	}
}

func TestSectorsFollowQuadrantOrder(t *testing.T) {
	d := Default()
	for i, s := range d.Sectors() {
		if s.Quadrant != d.Quadrants[i] {
			t.Errorf("sector %d quadrant %q want %q", i, s.Quadrant.Name, d.Quadrants[i].Name)
		}
	}
}

func TestJoinedToolsAdopt(t *testing.T) {
	got, err := Default().Joined(QuadrantTools, RingAdopt)
	if err != nil {
		t.Fatalf("Joined: %v", err)
	}
	if got != "Git/GitHub, Docker" {
		t.Fatalf("got %q", got)
	}
}

func TestCellUnknown(t *testing.T) {
	d := Default()
	if _, err := d.Cell("Databases", RingAdopt); !errors.Is(err, ErrUnknownQuadrant) {
		t.Errorf("unknown quadrant: got %v", err)
	}
	if _, err := d.Cell(QuadrantTools, "RETIRE"); !errors.Is(err, ErrUnknownRing) {
		t.Errorf("unknown ring: got %v", err)
	}
}

func TestWithCellLeavesReceiverAlone(t *testing.T) {
	d := Default()
	mod := d.WithCell(QuadrantTools, RingAdopt, []string{"Git/GitHub"})
	if got, _ := d.Joined(QuadrantTools, RingAdopt); got != "Git/GitHub, Docker" {
		t.Fatalf("receiver mutated: %q", got)
	}
	if got, _ := mod.Joined(QuadrantTools, RingAdopt); got != "Git/GitHub" {
		t.Fatalf("copy not updated: %q", got)
	}
	// mutate the copy's slices and check the receiver again
	mod.Entries[QuadrantPlatforms][RingHold][0] = "Mainframe"
	if got, _ := d.Joined(QuadrantPlatforms, RingHold); got != "On-Prem" {
		t.Fatalf("copy shares slices with receiver: %q", got)
	}
}

func TestTechnologyCount(t *testing.T) {
	d := Default()
	if got := d.TechnologyCount(); got != 26 {
		t.Fatalf("count=%d want 26", got)
	}
	if got := d.WithCell(QuadrantTools, RingHold, nil).TechnologyCount(); got != 25 {
		t.Fatalf("count after clearing Tools/HOLD=%d want 25", got)
	}
}
