package components

import (
	"testing"

	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/state"
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/vfd"
)

func newTestPowerFlow() *PowerFlow {
	fb := vfd.New()
	return NewPowerFlow(fb.Region(PowerFlowX, 0, RegionWidth, RegionHeight))
}

func flowUpdate(p *PowerFlow, mg, speed float64, ice bool) FlowState {
	st := state.New()
	st.Energy.MGPower = mg
	st.Energy.Speed = speed
	st.Energy.ICERunning = ice
	p.Update(st)
	return p.Flows()
}

func TestPowerFlowPolicy(t *testing.T) {
	tests := []struct {
		name  string
		mg    float64
		speed float64
		ice   bool
		want  FlowState
	}{
		{
			name: "all quiet below thresholds",
			mg:   0.02, speed: 0.005, ice: false,
			want: FlowState{},
		},
		{
			name: "battery assist",
			mg:   0.5, speed: 0.4, ice: false,
			want: FlowState{BatteryToWheels: 0.5},
		},
		{
			name: "regen while moving",
			mg:   -0.6, speed: 0.3, ice: false,
			want: FlowState{WheelsToBattery: 0.6},
		},
		{
			name: "regen wins over engine charging",
			mg:   -0.6, speed: 0.3, ice: true,
			want: FlowState{WheelsToBattery: 0.6, EngineToWheels: 0.3},
		},
		{
			name: "engine charges at standstill",
			mg:   -0.4, speed: 0.0, ice: true,
			want: FlowState{EngineToBattery: 0.4},
		},
		{
			name: "engine drives and assists together",
			mg:   0.3, speed: 0.5, ice: true,
			want: FlowState{BatteryToWheels: 0.3, EngineToWheels: 0.5},
		},
		{
			name: "regen needs motion",
			mg:   -0.5, speed: 0.0, ice: false,
			want: FlowState{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flowUpdate(newTestPowerFlow(), tt.mg, tt.speed, tt.ice)
			if got != tt.want {
				t.Errorf("flows = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPowerFlowAnimationAdvancesPerFrame(t *testing.T) {
	p := newTestPowerFlow()
	flowUpdate(p, 0.5, 0.4, false)

	p.Render()
	first := p.animPhase
	p.Render()
	if p.animPhase != first+1 {
		t.Errorf("phase advanced by %d, want 1 per frame", p.animPhase-first)
	}

	p.animPhase = animPhasePeriod - 1
	p.Render()
	if p.animPhase != 0 {
		t.Errorf("phase = %d, want wrap to 0", p.animPhase)
	}
}

func TestPowerFlowDrawsChevronsOnActiveEdge(t *testing.T) {
	fb := vfd.New()
	region := fb.Region(PowerFlowX, 0, RegionWidth, RegionHeight)
	p := NewPowerFlow(region)

	flowUpdate(p, 0.5, 0.0, false) // battery->wheels only
	p.Render()

	// The battery->wheels edge runs along y=38 between the two bottom
	// nodes; at least one chevron pixel must be lit strictly between
	// the icons.
	lit := 0
	for x := 22; x <= RegionWidth-22; x++ {
		for _, y := range []int{37, 38, 39} {
			if region.Pixel(x, y) {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("no chevron pixels on the active battery->wheels edge")
	}
}
