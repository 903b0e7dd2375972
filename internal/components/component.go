package components

import (
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/state"
)

// Component is one rectangular area of the dashboard. Update pulls the
// fields it cares about from the state snapshot; Render converts them to
// pixels inside the component's own framebuffer region, advancing any
// internal smoothing or animation as it goes.
type Component interface {
	Update(s *state.VFDState)
	Render()
}

// Region geometry: the 256x48 panel is split into four equal quarters,
// rendered left to right.
const (
	RegionWidth  = 64
	RegionHeight = 48

	FuelGaugeX   = 0
	PowerFlowX   = 64
	EnergyGraphX = 128
	PowerBarsX   = 192
)
