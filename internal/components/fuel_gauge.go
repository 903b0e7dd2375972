package components

import (
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/state"
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/vfd"
)

// FuelGauge renders the leftmost quarter: three segmented level bars
// (petrol, LPG, traction battery) above a row of fuel source indicators.
type FuelGauge struct {
	region *vfd.Region

	petrol     int
	lpg        int
	soc        float64
	activeFuel state.FuelType
}

const (
	gaugeSegments   = 8
	gaugeBarWidth   = 19
	gaugeBarGap     = 2
	gaugeSegHeight  = 4
	gaugeSegGap     = 1
	gaugeLabelWidth = 11 // "PTR" etc in the 3x5 font
	indicatorHeight = 9
)

func NewFuelGauge(region *vfd.Region) *FuelGauge {
	return &FuelGauge{region: region, soc: 0.6}
}

func (g *FuelGauge) Update(s *state.VFDState) {
	g.petrol = s.Energy.Petrol
	g.lpg = s.Energy.LPG
	g.soc = s.Energy.BatterySOC
	g.activeFuel = s.State.ActiveFuel
}

func (g *FuelGauge) Render() {
	r := g.region
	r.Clear()

	indicatorY := r.Height() - indicatorHeight
	barHeight := indicatorY

	petrolX := 2
	lpgX := petrolX + gaugeBarWidth + gaugeBarGap
	batteryX := lpgX + gaugeBarWidth + gaugeBarGap

	g.renderBar(petrolX, 0, barHeight, fuelSegments(g.petrol, state.PetrolCapacity))
	g.renderBar(lpgX, 0, barHeight, fuelSegments(g.lpg, state.LPGCapacity))
	g.renderBar(batteryX, 0, barHeight, batterySegments(g.soc))

	g.renderIndicators(indicatorY)
}

// fuelSegments quantizes a tank level into filled segments, rounding to
// the nearest segment.
func fuelSegments(level, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	ratio := float64(level) / float64(capacity)
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	return int(ratio*gaugeSegments + 0.5)
}

// batterySegments reproduces the instrument cluster's non-linear SOC
// gauge. The hybrid battery operates in a narrow SOC band, so the
// segments cluster between 35% and 75%; this is a fixed breakpoint
// table, not a linear scale.
func batterySegments(soc float64) int {
	switch {
	case soc >= 0.75:
		return 8
	case soc >= 0.70:
		return 7
	case soc >= 0.60:
		return 6
	case soc >= 0.55:
		return 5
	case soc >= 0.50:
		return 4
	case soc >= 0.45:
		return 3
	case soc >= 0.40:
		return 2
	case soc >= 0.35:
		return 1
	default:
		return 0
	}
}

// renderBar fills segments bottom-up inside a bar column.
func (g *FuelGauge) renderBar(x, y, h, filled int) {
	innerX := x + 1
	innerW := gaugeBarWidth - 2
	for i := 0; i < gaugeSegments; i++ {
		if i >= filled {
			break
		}
		segY := y + h - (i+1)*gaugeSegHeight - i*gaugeSegGap
		g.region.FillRect(innerX, segY, innerW, gaugeSegHeight, true)
	}
}

func (g *FuelGauge) renderIndicators(y int) {
	type indicator struct {
		label  string
		baseX  int
		active bool
	}
	indicators := []indicator{
		{"PTR", 2, g.activeFuel == state.FuelPetrol},
		{"LPG", 2 + gaugeBarWidth + gaugeBarGap, g.activeFuel == state.FuelLPG},
		{"BTT", 2 + 2*(gaugeBarWidth+gaugeBarGap), false},
	}

	for _, ind := range indicators {
		textX := ind.baseX + (gaugeBarWidth-gaugeLabelWidth)/2
		textY := y + 2
		g.region.Text(textX, textY, ind.label, true)
		if ind.active {
			g.renderArrows(textX, textY+2)
		}
	}
}

// renderArrows draws the small chevrons flanking the active fuel label.
func (g *FuelGauge) renderArrows(textX, centerY int) {
	r := g.region

	leftX := textX - 2
	r.Set(leftX, centerY, true)
	r.Set(leftX-1, centerY-1, true)
	r.Set(leftX-1, centerY+1, true)

	rightX := textX + gaugeLabelWidth + 1
	r.Set(rightX, centerY, true)
	r.Set(rightX+1, centerY-1, true)
	r.Set(rightX+1, centerY+1, true)
}
