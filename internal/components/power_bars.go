package components

import (
	"math"

	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/state"
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/vfd"
)

// PowerBars renders the rightmost quarter: two vertical bars filling from
// a center line. Left is MG power (up = assist, down = regen); right is
// fuel flow up or brake pressure down. Displayed values chase their
// targets with exponential smoothing so the bars move like meters, not
// square waves.
type PowerBars struct {
	region *vfd.Region

	mgPower   float64
	fuelBrake float64

	mgTarget        float64
	fuelBrakeTarget float64

	barWidth  int
	mgBarX    int
	fuelBarX  int
	barHeight int
}

const (
	emaAlpha       = 0.15
	brakeThreshold = 0.04
	flowMinimum    = 0.01
)

func NewPowerBars(region *vfd.Region) *PowerBars {
	p := &PowerBars{region: region, barWidth: 30, barHeight: region.Height()}
	spacing := 2
	total := p.barWidth*2 + spacing
	start := (region.Width() - total) / 2
	p.mgBarX = start
	p.fuelBarX = start + p.barWidth + spacing
	return p
}

// Update sets the smoothing targets. Braking takes priority on the right
// bar and shows as negative fill; otherwise active-ICE fuel flow shows
// as positive fill.
func (p *PowerBars) Update(s *state.VFDState) {
	p.mgTarget = math.Max(-1, math.Min(1, s.Energy.MGPower))

	switch {
	case s.Energy.Brake > brakeThreshold:
		p.fuelBrakeTarget = -s.Energy.Brake
	case s.Energy.ICERunning && s.Energy.FuelFlow > flowMinimum:
		p.fuelBrakeTarget = s.Energy.FuelFlow
	default:
		p.fuelBrakeTarget = 0
	}
}

func (p *PowerBars) tick() {
	p.mgPower = ema(p.mgPower, p.mgTarget)
	p.fuelBrake = ema(p.fuelBrake, p.fuelBrakeTarget)
}

func ema(current, target float64) float64 {
	return emaAlpha*target + (1-emaAlpha)*current
}

func (p *PowerBars) Render() {
	p.tick()
	p.region.Clear()
	p.renderBar(p.mgBarX, p.mgPower, vfd.IconLightning)
	p.renderBar(p.fuelBarX, p.fuelBrake, vfd.IconEngine)
}

func (p *PowerBars) renderBar(barX int, value float64, icon vfd.Icon) {
	r := p.region
	centerY := p.barHeight / 2

	// Dotted center line.
	for x := barX; x < barX+p.barWidth; x += 3 {
		r.Set(x, centerY, true)
	}

	maxFill := p.barHeight/2 - 1
	fill := int(math.Abs(value) * float64(maxFill))
	if fill > 0 {
		var y0, y1 int
		if value > 0 {
			y0, y1 = centerY-fill, centerY
		} else {
			y0, y1 = centerY+1, centerY+1+fill
		}
		for y := y0; y < y1; y++ {
			r.HLine(barX+1, y, p.barWidth-2, true)
		}
	}

	// Icon at quarter height, XORed so it reads against both the filled
	// and the empty part of the bar.
	iconW, iconH := icon.Size()
	iconX := barX + (p.barWidth-iconW)/2
	iconY := r.Height()/4 - iconH/2
	for row, bits := range icon {
		for colIdx, px := range bits {
			if px != 0 {
				r.Xor(iconX+colIdx, iconY+row)
			}
		}
	}
}
