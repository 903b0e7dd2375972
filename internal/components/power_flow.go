package components

import (
	"math"

	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/state"
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/vfd"
)

// PowerFlow renders the hybrid energy flow triangle: engine on top,
// battery and wheels at the bottom corners, with chevrons marching along
// each active edge.
type PowerFlow struct {
	region *vfd.Region

	iceToBattery    float64
	batteryToWheels float64
	wheelsToBattery float64
	iceToWheels     float64

	// Frame-count animation phase. The chevron march speed therefore
	// tracks the achieved frame rate, same as the hardware unit.
	animPhase int
}

const (
	// flowThreshold is roughly 1 kW on the 30 kW normalized scale.
	flowThreshold = 0.033
	// motionThreshold is the minimal normalized speed counted as moving.
	motionThreshold = 0.01

	chevronSpacing  = 14
	animPhasePeriod = 240
	animPhaseRate   = 1.5
)

func NewPowerFlow(region *vfd.Region) *PowerFlow {
	return &PowerFlow{region: region}
}

// Update recomputes the four flow intensities. Charging sources are
// mutually exclusive: regen from the wheels wins over ICE charging.
func (p *PowerFlow) Update(s *state.VFDState) {
	mg := s.Energy.MGPower
	speed := s.Energy.Speed
	ice := s.Energy.ICERunning

	p.iceToBattery = 0
	p.batteryToWheels = 0
	p.wheelsToBattery = 0
	p.iceToWheels = 0

	if mg > flowThreshold {
		p.batteryToWheels = math.Min(1, mg)
	}
	if mg < -flowThreshold && speed > motionThreshold {
		p.wheelsToBattery = math.Min(1, -mg)
	}
	if ice && mg < -flowThreshold && p.wheelsToBattery < flowThreshold {
		p.iceToBattery = math.Min(1, -mg)
	}
	if ice && speed > motionThreshold {
		p.iceToWheels = math.Min(1, speed)
	}
}

// FlowState reports the computed intensity of each edge, normalized 0..1.
type FlowState struct {
	EngineToBattery float64
	EngineToWheels  float64
	BatteryToWheels float64
	WheelsToBattery float64
}

// Flows returns the intensities computed by the last Update.
func (p *PowerFlow) Flows() FlowState {
	return FlowState{
		EngineToBattery: p.iceToBattery,
		EngineToWheels:  p.iceToWheels,
		BatteryToWheels: p.batteryToWheels,
		WheelsToBattery: p.wheelsToBattery,
	}
}

func (p *PowerFlow) tick() {
	p.animPhase = (p.animPhase + 1) % animPhasePeriod
}

func (p *PowerFlow) Render() {
	r := p.region
	r.Clear()
	p.tick()

	cx := r.Width() / 2
	iceX, iceY := cx, 10
	batteryX, batteryY := 16, 38
	wheelX, wheelY := r.Width()-16, 38

	r.IconCentered(iceX, iceY, vfd.IconEngine, true)
	r.IconCentered(batteryX, batteryY, vfd.IconBattery, true)
	r.IconCentered(wheelX, wheelY, vfd.IconWheel, true)

	if p.iceToBattery > 0.05 {
		p.drawFlow(iceX-3, iceY+5, batteryX+3, batteryY-3)
	}
	if p.batteryToWheels > 0.05 {
		p.drawFlow(batteryX+5, batteryY, wheelX-5, wheelY)
	}
	if p.wheelsToBattery > 0.05 {
		p.drawFlow(wheelX-5, wheelY, batteryX+5, batteryY)
	}
	if p.iceToWheels > 0.05 {
		p.drawFlow(iceX+3, iceY+5, wheelX-3, wheelY-3)
	}
}

// drawFlow draws marching chevrons along the straight line from (x0, y0)
// to (x1, y1), pointing toward the destination.
func (p *PowerFlow) drawFlow(x0, y0, x1, y1 int) {
	dx := x1 - x0
	dy := y1 - y0
	length := int(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}

	horizontal := abs(dx) > abs(dy)
	right := dx > 0
	down := dy > 0

	count := length / chevronSpacing
	if count < 3 {
		count = 3
	}
	for i := 0; i < count; i++ {
		offset := math.Mod(float64(i*chevronSpacing)+float64(p.animPhase)/animPhaseRate, float64(length))
		t := offset / float64(length)
		cx := x0 + int(float64(dx)*t)
		cy := y0 + int(float64(dy)*t)
		p.drawChevron(cx, cy, horizontal, right, down)
	}
}

func (p *PowerFlow) drawChevron(x, y int, horizontal, right, down bool) {
	r := p.region
	switch {
	case horizontal && right:
		r.Set(x, y, true)
		r.Set(x-1, y-1, true)
		r.Set(x-1, y+1, true)
	case horizontal:
		r.Set(x, y, true)
		r.Set(x+1, y-1, true)
		r.Set(x+1, y+1, true)
	case down:
		r.Set(x, y, true)
		r.Set(x-1, y-1, true)
		r.Set(x+1, y-1, true)
	default:
		r.Set(x, y, true)
		r.Set(x-1, y+1, true)
		r.Set(x+1, y+1, true)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
