package components

import (
	"testing"
	"time"

	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/state"
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/vfd"
)

// fakeClock lets tests step wall-clock time explicitly.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time       { return c.t }
func (c *fakeClock) step(d time.Duration) { c.t = c.t.Add(d) }

func newTestGraph(timeBase float64) (*EnergyGraph, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fb := vfd.New()
	g := NewEnergyGraph(fb.Region(EnergyGraphX, 0, RegionWidth, RegionHeight), timeBase)
	g.now = clock.now
	g.reset(timeBase)
	return g, clock
}

func energyState(mg float64, ice bool) *state.VFDState {
	st := state.New()
	st.Energy.MGPower = mg
	st.Energy.ICERunning = ice
	return st
}

func TestRingLengthInvariant(t *testing.T) {
	g, clock := newTestGraph(15)

	if len(g.history) != RegionWidth {
		t.Fatalf("ring length = %d, want %d", len(g.history), RegionWidth)
	}
	for i := 0; i < 500; i++ {
		g.Update(energyState(0.5, true))
		clock.step(100 * time.Millisecond)
		g.tick()
		if len(g.history) != RegionWidth {
			t.Fatalf("ring length = %d after %d updates, want %d", len(g.history), i+1, RegionWidth)
		}
	}
}

func TestTimeBaseChangeResetsRing(t *testing.T) {
	g, clock := newTestGraph(15)

	for i := 0; i < 50; i++ {
		g.Update(energyState(0.8, true))
		clock.step(50 * time.Millisecond)
	}

	g.SetTimeBase(300)

	if len(g.history) != RegionWidth {
		t.Fatalf("ring length = %d after time base change", len(g.history))
	}
	for i, col := range g.history {
		if col.count != 0 || col.assist != 0 || col.regen != 0 || col.ice {
			t.Fatalf("column %d not empty after time base change: %+v", i, col)
		}
	}
	if g.timePerCol != 300.0/RegionWidth {
		t.Errorf("timePerCol = %v", g.timePerCol)
	}
}

func TestAssistAndRegenAreMutuallyExclusivePerSample(t *testing.T) {
	g, _ := newTestGraph(3600) // long time base: everything lands in one column

	values := []float64{0.5, -0.5, 0.25, -0.25, 0.75, -0.75}
	for _, mg := range values {
		g.Update(energyState(mg, false))
	}

	col := g.history[g.current]
	if col.count != len(values) {
		t.Fatalf("count = %d, want %d", col.count, len(values))
	}
	if col.assist != 1.5 {
		t.Errorf("assist = %v, want 1.5", col.assist)
	}
	if col.regen != 1.5 {
		t.Errorf("regen = %v, want 1.5", col.regen)
	}
	// Samples summed into both accumulators would double the totals.
	if col.assist+col.regen != 3.0 {
		t.Errorf("assist+regen = %v, want 3.0", col.assist+col.regen)
	}
}

func TestColumnAdvanceCollapsesMissedIntervals(t *testing.T) {
	g, clock := newTestGraph(64) // 1 second per column
	start := g.current

	g.Update(energyState(0.5, false))
	clock.step(3500 * time.Millisecond)
	g.tick()

	// current is pinned to the last slot; the window must have slid
	// instead: three whole intervals elapsed, so the sampled column is
	// now three slots from the end.
	if g.current != RegionWidth-1 {
		t.Fatalf("current = %d, want %d", g.current, RegionWidth-1)
	}
	if start != RegionWidth-1 {
		t.Fatalf("start = %d", start)
	}
	sampled := 0
	for i, col := range g.history {
		if col.count > 0 {
			sampled = i
		}
	}
	if sampled != RegionWidth-1-3 {
		t.Errorf("sampled column at %d, want %d (3 columns advanced)", sampled, RegionWidth-1-3)
	}
}

func TestWindowSlidesDroppingOldest(t *testing.T) {
	g, clock := newTestGraph(64)

	// Mark the active column, then advance one interval.
	g.Update(energyState(1.0, false))
	clock.step(1100 * time.Millisecond)
	g.tick()

	if g.history[RegionWidth-2].count != 1 {
		t.Fatalf("marked column did not shift left: %+v", g.history[RegionWidth-2])
	}
	if g.history[RegionWidth-1].count != 0 {
		t.Fatal("fresh column not empty")
	}
}

func TestIceMarkerFollowsColumn(t *testing.T) {
	fbGrid := vfd.New()
	region := fbGrid.Region(EnergyGraphX, 0, RegionWidth, RegionHeight)
	clock := &fakeClock{t: time.Unix(1000, 0)}
	g := NewEnergyGraph(region, 60)
	g.now = clock.now
	g.reset(60)

	g.Update(energyState(0.2, true))
	g.Render()

	if !region.Pixel(g.current, RegionHeight-1) {
		t.Error("ICE marker not lit for an ICE-active column")
	}
}

func TestRenderDrawsMirroredBars(t *testing.T) {
	fbGrid := vfd.New()
	region := fbGrid.Region(EnergyGraphX, 0, RegionWidth, RegionHeight)
	clock := &fakeClock{t: time.Unix(1000, 0)}
	g := NewEnergyGraph(region, 15)
	g.now = clock.now
	g.reset(15)

	// Strong assist on the active column.
	for i := 0; i < 5; i++ {
		g.Update(energyState(1.0, false))
	}
	g.Render()

	centerY := RegionHeight / 2
	x := g.current
	if !region.Pixel(x, centerY-1) {
		t.Error("assist bar missing above center line")
	}
	if region.Pixel(x, centerY+1) {
		t.Error("regen bar lit without regen samples")
	}

	// Now strong regen.
	g.SetTimeBase(15)
	for i := 0; i < 5; i++ {
		g.Update(energyState(-1.0, false))
	}
	g.Render()
	if !region.Pixel(x, centerY+1) {
		t.Error("regen bar missing below center line")
	}
}

func TestDisplayExponentRange(t *testing.T) {
	g, _ := newTestGraph(15)
	if e := g.displayExponent(); e != 1.0 {
		t.Errorf("exponent at 15s = %v, want 1.0", e)
	}
	g.SetTimeBase(3600)
	if e := g.displayExponent(); e < 0.299 || e > 0.301 {
		t.Errorf("exponent at 3600s = %v, want 0.3", e)
	}
}
