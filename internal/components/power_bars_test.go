package components

import (
	"math"
	"testing"

	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/state"
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/vfd"
)

func newTestBars() *PowerBars {
	fb := vfd.New()
	return NewPowerBars(fb.Region(PowerBarsX, 0, RegionWidth, RegionHeight))
}

func barsState(mg, fuelFlow, brake float64, ice bool) *state.VFDState {
	st := state.New()
	st.Energy.MGPower = mg
	st.Energy.FuelFlow = fuelFlow
	st.Energy.Brake = brake
	st.Energy.ICERunning = ice
	return st
}

func TestPowerBarsSmoothingConverges(t *testing.T) {
	p := newTestBars()
	p.Update(barsState(1.0, 0, 0, false))

	prev := 0.0
	for i := 0; i < 200; i++ {
		p.tick()
		if p.mgPower > 1.0 {
			t.Fatalf("smoothed value overshot target: %v", p.mgPower)
		}
		if p.mgPower < prev {
			t.Fatalf("smoothed value not monotonic at step %d: %v < %v", i, p.mgPower, prev)
		}
		prev = p.mgPower
	}
	if math.Abs(p.mgPower-1.0) > 1e-9 {
		t.Errorf("smoothed value did not converge: %v", p.mgPower)
	}
}

func TestPowerBarsSmoothingStep(t *testing.T) {
	p := newTestBars()
	p.Update(barsState(1.0, 0, 0, false))
	p.tick()
	if math.Abs(p.mgPower-emaAlpha) > 1e-12 {
		t.Errorf("first step = %v, want %v", p.mgPower, emaAlpha)
	}
}

func TestFuelBrakeTargetSelection(t *testing.T) {
	tests := []struct {
		name     string
		fuelFlow float64
		brake    float64
		ice      bool
		want     float64
	}{
		{"brake wins over fuel flow", 0.5, 0.3, true, -0.3},
		{"brake below threshold ignored", 0.5, 0.03, true, 0.5},
		{"fuel flow needs running engine", 0.5, 0, false, 0},
		{"fuel flow below minimum ignored", 0.005, 0, true, 0},
		{"fuel flow shown", 0.4, 0, true, 0.4},
		{"idle", 0, 0, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestBars()
			p.Update(barsState(0, tt.fuelFlow, tt.brake, tt.ice))
			if p.fuelBrakeTarget != tt.want {
				t.Errorf("fuelBrakeTarget = %v, want %v", p.fuelBrakeTarget, tt.want)
			}
		})
	}
}

func TestPowerBarsRenderFillsFromCenter(t *testing.T) {
	fb := vfd.New()
	region := fb.Region(PowerBarsX, 0, RegionWidth, RegionHeight)
	p := NewPowerBars(region)

	p.Update(barsState(1.0, 0, 0, false))
	for i := 0; i < 100; i++ {
		p.Render()
	}

	centerY := RegionHeight / 2
	x := p.mgBarX + p.barWidth/2
	if !region.Pixel(x, centerY-1) {
		t.Error("assist fill missing just above center")
	}
	if region.Pixel(x, centerY+2) {
		t.Error("fill below center while target is positive")
	}

	// Negative target fills downward.
	p.Update(barsState(-1.0, 0, 0, false))
	for i := 0; i < 100; i++ {
		p.Render()
	}
	if !region.Pixel(x, centerY+1) {
		t.Error("regen fill missing just below center")
	}
}
