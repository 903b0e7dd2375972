package receiver

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/state"
)

const (
	demoTick  = 50 * time.Millisecond
	demoCycle = 30.0 // seconds per simulated driving cycle
)

// Demo generates a simulated 30-second driving cycle so the display can
// be exercised without the host computer: accelerating, coasting,
// braking with regen, then stopped with the ICE charging the battery.
type Demo struct {
	delivery
	running atomic.Bool
	done    chan struct{}
	simTime float64
}

func NewDemo(log Logger) *Demo {
	return &Demo{delivery: newDelivery("demo", log)}
}

func (d *Demo) Start() error {
	d.done = make(chan struct{})
	d.running.Store(true)
	go d.loop()
	d.log.Infof("demo", "generating simulated driving cycle")
	return nil
}

func (d *Demo) Stop() {
	if !d.running.CompareAndSwap(true, false) {
		return
	}
	select {
	case <-d.done:
	case <-time.After(joinTimeout):
		d.log.Errorf("demo", "generator loop did not stop within %v", joinTimeout)
	}
	d.log.Infof("demo", "stopped")
}

func (d *Demo) loop() {
	defer close(d.done)

	d.deliver(demoConfig())
	d.deliver(demoState())

	ticker := time.NewTicker(demoTick)
	defer ticker.Stop()
	for d.running.Load() {
		<-ticker.C
		d.simTime += demoTick.Seconds()
		d.deliver(demoEnergy(d.simTime))
	}
}

func demoConfig() state.Envelope {
	return state.Envelope{ID: state.DeviceID, Data: state.Payload{
		Type: state.TypeConfig, TimeBase: f64(60), Brightness: f64(100),
	}}
}

func demoState() state.Envelope {
	fuel, gear := "PTR", "D"
	rdy := true
	return state.Envelope{ID: state.DeviceID, Data: state.Payload{
		Type: state.TypeState, Fuel: &fuel, Gear: &gear, Ready: &rdy,
	}}
}

// demoEnergy produces the energy message for one point of the simulated
// drive. The cycle repeats every 30 seconds.
func demoEnergy(simTime float64) state.Envelope {
	mg, speed, fuelFlow, brake, ice := drivePhase(simTime)

	// SOC drifts slowly around its midpoint.
	soc := 0.55 + 0.1*math.Sin(simTime*0.1)

	iceVal := ice
	return state.Envelope{ID: state.DeviceID, Data: state.Payload{
		Type:     state.TypeEnergy,
		MG:       f64(round2(mg)),
		FuelFlow: f64(round2(fuelFlow)),
		Brake:    f64(round2(brake)),
		Speed:    f64(round2(speed)),
		SOC:      f64(round2(soc)),
		Petrol:   f64(25),
		LPG:      f64(42),
		ICE:      &iceVal,
	}}
}

// drivePhase maps a point in the 30-second cycle to instantaneous
// vehicle values.
func drivePhase(simTime float64) (mg, speed, fuelFlow, brake float64, ice bool) {
	phase := math.Mod(simTime, demoCycle)
	switch {
	case phase < 10: // accelerating
		mg = 0.3 + 0.2*math.Sin(phase*0.5)
		speed = math.Min(0.8, phase/12.0)
		fuelFlow = 0.4
		ice = true
	case phase < 15: // coasting
		mg = 0.05
		speed = 0.7
		fuelFlow = 0.1
	case phase < 22: // braking, regen
		mg = -0.5 + 0.2*math.Sin(phase*0.8)
		speed = math.Max(0.1, 0.7-(phase-15)/10.0)
		brake = 0.4
	default: // stopped, ICE charging
		mg = -0.2
		ice = true
	}
	return
}

func f64(v float64) *float64 { return &v }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
