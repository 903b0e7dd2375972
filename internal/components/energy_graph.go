package components

import (
	"fmt"
	"math"
	"time"

	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/state"
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/vfd"
)

// column is one pixel-wide time bucket of the history window. Assist and
// regen accumulate separately; a single sample only ever lands in one of
// the two.
type column struct {
	assist float64
	regen  float64
	count  int
	ice    bool
}

// EnergyGraph renders the rolling MG power history: mirrored assist and
// regen bars around a center line, one column per pixel, spanning the
// configured time base. The window slides left; it is not a circular
// overwrite.
type EnergyGraph struct {
	region *vfd.Region

	timeBase   float64
	timePerCol float64
	history    []column
	current    int

	columnStart time.Time
	started     bool

	mg     float64
	ice    bool
	colIce bool

	now func() time.Time
}

const (
	// Compression exponent is interpolated logarithmically across the
	// selectable time base range so short windows stay near-linear.
	minTimeBase = 15.0
	maxTimeBase = 3600.0
)

func NewEnergyGraph(region *vfd.Region, timeBaseSec float64) *EnergyGraph {
	g := &EnergyGraph{region: region, now: time.Now}
	g.reset(timeBaseSec)
	return g
}

// SetTimeBase changes the span of the graph. All history is discarded:
// columns recorded at the old resolution have no meaning at the new one.
func (g *EnergyGraph) SetTimeBase(seconds float64) {
	g.reset(seconds)
}

func (g *EnergyGraph) reset(seconds float64) {
	g.timeBase = seconds
	g.timePerCol = seconds / float64(g.region.Width())
	g.history = make([]column, g.region.Width())
	g.current = g.region.Width() - 1
	g.columnStart = g.now()
	g.started = true
	g.colIce = false
}

// Update accumulates the current sample into the active column and
// advances the column when its time span has elapsed.
func (g *EnergyGraph) Update(s *state.VFDState) {
	now := g.now()
	if !g.started {
		g.columnStart = now
		g.started = true
	}

	g.mg = math.Max(-1, math.Min(1, s.Energy.MGPower))
	g.ice = s.Energy.ICERunning
	if g.ice {
		g.colIce = true
	}

	col := &g.history[g.current]
	if g.mg > 0 {
		col.assist += g.mg
	} else {
		col.regen += -g.mg
	}
	col.count++
	col.ice = col.ice || g.colIce

	if now.Sub(g.columnStart).Seconds() >= g.timePerCol {
		g.advance(now)
	}
}

// tick collapses any whole column intervals that elapsed since the last
// render, so a stalled frame loop catches up in one step.
func (g *EnergyGraph) tick() {
	now := g.now()
	if !g.started {
		g.columnStart = now
		g.started = true
		return
	}
	elapsed := now.Sub(g.columnStart).Seconds()
	for i := 0; i < int(elapsed/g.timePerCol); i++ {
		g.advance(now)
	}
}

func (g *EnergyGraph) advance(now time.Time) {
	g.colIce = g.ice
	g.current++
	if g.current >= len(g.history) {
		copy(g.history, g.history[1:])
		g.history[len(g.history)-1] = column{ice: g.ice}
		g.current = len(g.history) - 1
	}
	g.columnStart = now
}

// displayExponent interpolates the power-law compression exponent over
// log(timeBase): 1.0 at 15 s down to 0.3 at one hour.
func (g *EnergyGraph) displayExponent() float64 {
	tb := math.Max(minTimeBase, math.Min(maxTimeBase, g.timeBase))
	logRatio := (math.Log(tb) - math.Log(minTimeBase)) / (math.Log(maxTimeBase) - math.Log(minTimeBase))
	return 1.0 - 0.7*logRatio
}

func (g *EnergyGraph) Render() {
	g.tick()

	r := g.region
	r.Clear()

	exponent := g.displayExponent()
	centerY := r.Height() / 2
	maxOffset := r.Height()/2 - 1

	// Dotted center line.
	for x := 0; x < r.Width(); x += 3 {
		r.Set(x, centerY, true)
	}

	for i := 0; i <= g.current; i++ {
		col := g.history[i]

		if col.ice {
			r.Set(i, r.Height()-1, true)
		}

		var assist, regen float64
		if col.count > 0 {
			assist = col.assist / float64(col.count)
			regen = col.regen / float64(col.count)
		}
		if assist > 0.001 {
			assist = math.Pow(assist, exponent)
		}
		if regen > 0.001 {
			regen = math.Pow(regen, exponent)
		}

		if assist > 0.01 {
			px := min(int(assist*float64(maxOffset)), maxOffset)
			for dy := 0; dy < px; dy++ {
				r.Set(i, centerY-dy-1, true)
			}
		}
		if regen > 0.01 {
			px := min(int(regen*float64(maxOffset)), maxOffset)
			for dy := 0; dy < px; dy++ {
				r.Set(i, centerY+dy+1, true)
			}
		}
	}

	// Instantaneous readout, XORed so it stays legible over the bars.
	val := fmt.Sprintf("%+.0f", g.mg*30)
	textX := r.Width() - len(val)*4 - 2
	r.TextXOR(textX, 1, val)
}
