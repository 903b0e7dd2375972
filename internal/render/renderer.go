package render

import (
	"context"
	"image"
	"sync"
	"time"

	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/components"
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/receiver"
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/state"
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/vfd"
)

// Logger is the slice of the application logger the renderer needs.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Warnf(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Sink consumes finished frames. Start opens the output device (a fatal
// error there aborts startup), Present hands over one completed grid,
// Run blocks until the sink or the context ends (sinks that own an event
// loop, like the development window, live in Run), Stop releases the
// device.
type Sink interface {
	Start(ctx context.Context) error
	Present(fb *vfd.Framebuffer)
	Run(ctx context.Context) error
	Stop() error
}

// Status is the read-only connection summary published once per frame
// for the HTTP monitor.
type Status struct {
	Connected      bool    `json:"connected"`
	MessageCount   int     `json:"message_count"`
	LastMessageAge float64 `json:"last_message_age_sec"`
	ActiveFuel     string  `json:"active_fuel"`
	Gear           string  `json:"gear"`
	Ready          bool    `json:"ready"`
	TimeBase       int     `json:"time_base"`
	Brightness     int     `json:"brightness"`
}

// Renderer owns the framebuffer, the display state and the four
// dashboard components, and drives the per-frame cycle: drain the
// receiver queue into the state, propagate config changes and resets,
// update and render every component, hand the grid to the sink.
//
// The render goroutine is the only writer of the VFDState; receivers
// only ever touch their own queue.
type Renderer struct {
	fb    *vfd.Framebuffer
	state *state.VFDState
	recv  receiver.Receiver
	sink  Sink
	log   Logger

	fuelGauge   *components.FuelGauge
	powerFlow   *components.PowerFlow
	energyGraph *components.EnergyGraph
	powerBars   *components.PowerBars
	ordered     []components.Component

	lastTimeBase int

	snapMu     sync.Mutex
	snapStatus Status
	snapFrame  *image.RGBA
}

func New(st *state.VFDState, recv receiver.Receiver, sink Sink, log Logger) *Renderer {
	fb := vfd.New()
	r := &Renderer{
		fb:           fb,
		state:        st,
		recv:         recv,
		sink:         sink,
		log:          log,
		lastTimeBase: st.Config.TimeBase,
	}

	r.fuelGauge = components.NewFuelGauge(fb.Region(components.FuelGaugeX, 0, components.RegionWidth, components.RegionHeight))
	r.powerFlow = components.NewPowerFlow(fb.Region(components.PowerFlowX, 0, components.RegionWidth, components.RegionHeight))
	r.energyGraph = components.NewEnergyGraph(fb.Region(components.EnergyGraphX, 0, components.RegionWidth, components.RegionHeight), float64(st.Config.TimeBase))
	r.powerBars = components.NewPowerBars(fb.Region(components.PowerBarsX, 0, components.RegionWidth, components.RegionHeight))

	// Fixed left-to-right order; regions never overlap.
	r.ordered = []components.Component{r.fuelGauge, r.powerFlow, r.energyGraph, r.powerBars}
	return r
}

// Framebuffer exposes the grid for tests and sinks.
func (r *Renderer) Framebuffer() *vfd.Framebuffer { return r.fb }

// Frame executes one complete render cycle.
func (r *Renderer) Frame() {
	// Drain everything the receivers queued since the last frame.
	for {
		env, ok := r.recv.Poll()
		if !ok {
			break
		}
		r.state.Apply(env)
	}

	if tb := r.state.Config.TimeBase; tb != r.lastTimeBase {
		r.log.Infof("render", "time base changed to %ds, clearing history", tb)
		r.energyGraph.SetTimeBase(float64(tb))
		r.lastTimeBase = tb
	}
	if r.state.TakeReset() {
		r.log.Infof("render", "reset requested, clearing history")
		r.energyGraph.SetTimeBase(float64(r.state.Config.TimeBase))
	}

	for _, c := range r.ordered {
		c.Update(r.state)
	}
	for _, c := range r.ordered {
		c.Render()
	}

	r.publishSnapshot()

	if r.sink != nil {
		r.sink.Present(r.fb)
	}
}

// RunLoop renders frames at the given rate until the context is done.
func (r *Renderer) RunLoop(ctx context.Context, fps int) {
	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Frame()
		}
	}
}

// publishSnapshot copies the per-frame monitor state under the snapshot
// lock; HTTP handlers read it from their own goroutines.
func (r *Renderer) publishSnapshot() {
	st := Status{
		Connected:    r.state.Connected,
		MessageCount: r.state.MessageCount,
		ActiveFuel:   r.state.State.ActiveFuel.String(),
		Gear:         r.state.State.Gear.String(),
		Ready:        r.state.State.ReadyMode,
		TimeBase:     r.state.Config.TimeBase,
		Brightness:   r.state.Config.Brightness,
	}
	if !r.state.LastMessage.IsZero() {
		st.LastMessageAge = time.Since(r.state.LastMessage).Seconds()
	}

	frame := Rasterize(r.fb)

	r.snapMu.Lock()
	r.snapStatus = st
	r.snapFrame = frame
	r.snapMu.Unlock()
}

// Status returns the latest published connection summary.
func (r *Renderer) Status() Status {
	r.snapMu.Lock()
	defer r.snapMu.Unlock()
	return r.snapStatus
}

// FrameImage returns the latest published frame in phosphor colors, or
// nil before the first frame.
func (r *Renderer) FrameImage() image.Image {
	r.snapMu.Lock()
	defer r.snapMu.Unlock()
	if r.snapFrame == nil {
		return nil
	}
	return r.snapFrame
}
