package receiver

import (
	"testing"

	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/components"
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/state"
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/vfd"
)

func TestDrivePhaseWaveforms(t *testing.T) {
	tests := []struct {
		name    string
		simTime float64
		check   func(t *testing.T, mg, speed, fuelFlow, brake float64, ice bool)
	}{
		{
			name:    "accelerating",
			simTime: 5,
			check: func(t *testing.T, mg, speed, fuelFlow, brake float64, ice bool) {
				if !ice {
					t.Error("ICE off while accelerating")
				}
				if mg <= 0 {
					t.Errorf("mg = %v, want positive assist", mg)
				}
				if speed <= 0 {
					t.Errorf("speed = %v, want moving", speed)
				}
				if brake != 0 {
					t.Errorf("brake = %v, want 0", brake)
				}
			},
		},
		{
			name:    "coasting",
			simTime: 12,
			check: func(t *testing.T, mg, speed, fuelFlow, brake float64, ice bool) {
				if ice {
					t.Error("ICE on while coasting")
				}
				if mg != 0.05 {
					t.Errorf("mg = %v, want 0.05", mg)
				}
			},
		},
		{
			name:    "braking regen",
			simTime: 18,
			check: func(t *testing.T, mg, speed, fuelFlow, brake float64, ice bool) {
				if mg >= 0 {
					t.Errorf("mg = %v, want negative (regen)", mg)
				}
				if brake == 0 {
					t.Error("brake = 0 while braking")
				}
				if speed <= 0 {
					t.Errorf("speed = %v, want still rolling", speed)
				}
			},
		},
		{
			name:    "stopped charging",
			simTime: 25,
			check: func(t *testing.T, mg, speed, fuelFlow, brake float64, ice bool) {
				if !ice {
					t.Error("ICE off while idle-charging")
				}
				if mg != -0.2 {
					t.Errorf("mg = %v, want -0.2", mg)
				}
				if speed != 0 {
					t.Errorf("speed = %v, want 0", speed)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mg, speed, fuelFlow, brake, ice := drivePhase(tt.simTime)
			tt.check(t, mg, speed, fuelFlow, brake, ice)
		})
	}
}

func TestDemoEnergyEnvelope(t *testing.T) {
	env := demoEnergy(5)
	if env.ID != state.DeviceID {
		t.Errorf("ID = %d", env.ID)
	}
	if env.Data.Type != state.TypeEnergy {
		t.Errorf("Type = %q", env.Data.Type)
	}
	for name, p := range map[string]*float64{
		"mg": env.Data.MG, "fl": env.Data.FuelFlow, "br": env.Data.Brake,
		"spd": env.Data.Speed, "soc": env.Data.SOC,
		"ptr": env.Data.Petrol, "lpg": env.Data.LPG,
	} {
		if p == nil {
			t.Errorf("field %s absent", name)
		}
	}
	if env.Data.ICE == nil {
		t.Error("field ice absent")
	}
}

// Feeding the first simulated 30 seconds through the state into the
// power flow diagram must light engine->wheels while accelerating and
// wheels->battery while braking.
func TestDemoCycleDrivesPowerFlow(t *testing.T) {
	fb := vfd.New()
	flow := components.NewPowerFlow(fb.Region(components.PowerFlowX, 0, components.RegionWidth, components.RegionHeight))
	st := state.New()

	sample := func(simTime float64) components.FlowState {
		for ts := 0.05; ts <= simTime; ts += 0.05 {
			st.Apply(demoEnergy(ts))
		}
		flow.Update(st)
		return flow.Flows()
	}

	accel := sample(5)
	if accel.EngineToWheels == 0 {
		t.Error("engine->wheels inactive during acceleration")
	}
	if accel.WheelsToBattery != 0 {
		t.Error("wheels->battery active during acceleration")
	}

	braking := sample(18)
	if braking.WheelsToBattery == 0 {
		t.Error("wheels->battery inactive during braking")
	}
	if braking.EngineToWheels != 0 {
		t.Error("engine->wheels active with ICE off")
	}
	if braking.EngineToBattery != 0 {
		t.Error("engine->battery active while regen is charging")
	}
}
