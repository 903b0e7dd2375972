package state

import "time"

// DeviceID is the satellite's own address on the NDJSON bus. Envelopes
// addressed to any other device are ignored.
const DeviceID = 110

// FuelType is the fuel source currently feeding the ICE.
type FuelType int

const (
	FuelOff FuelType = iota
	FuelPetrol
	FuelLPG
)

func (f FuelType) String() string {
	switch f {
	case FuelOff:
		return "OFF"
	case FuelPetrol:
		return "PTR"
	case FuelLPG:
		return "LPG"
	}
	return "OFF"
}

// Gear is the transmission selector position.
type Gear int

const (
	GearP Gear = iota
	GearR
	GearN
	GearD
	GearB
)

func (g Gear) String() string {
	switch g {
	case GearP:
		return "P"
	case GearR:
		return "R"
	case GearN:
		return "N"
	case GearD:
		return "D"
	case GearB:
		return "B"
	}
	return "P"
}

// Tank capacities in liters.
const (
	PetrolCapacity = 45
	LPGCapacity    = 60
)

// validTimeBases are the selectable history graph spans in seconds.
var validTimeBases = map[int]bool{15: true, 60: true, 300: true, 900: true, 3600: true}

// EnergyData is the current power/energy snapshot from the host.
// All values are clamped on ingestion; nothing downstream re-validates.
type EnergyData struct {
	MGPower    float64 // -1..+1, positive = battery assisting propulsion
	FuelFlow   float64 // 0..1
	Brake      float64 // 0..1
	Speed      float64 // 0..1
	BatterySOC float64 // 0..1
	Petrol     int     // liters, 0..PetrolCapacity
	LPG        int     // liters, 0..LPGCapacity
	ICERunning bool
}

// StateData is the current set of discrete vehicle flags.
type StateData struct {
	ActiveFuel FuelType
	Gear       Gear
	ReadyMode  bool
}

// ConfigData is display configuration pushed by the host.
type ConfigData struct {
	TimeBase   int // seconds represented by the full graph width
	Brightness int // 0..100
}

// VFDState is the complete display state. Exactly one instance exists; it
// is owned by the render loop, which is the only writer (messages are
// queued by the receivers and applied between frames).
type VFDState struct {
	Energy EnergyData
	State  StateData
	Config ConfigData

	Connected    bool
	LastMessage  time.Time
	MessageCount int

	resetPending bool
}

// New returns a VFDState with the power-on defaults.
func New() *VFDState {
	return &VFDState{
		Energy: EnergyData{BatterySOC: 0.6, Petrol: 30, LPG: 45},
		Config: ConfigData{TimeBase: 60, Brightness: 100},
	}
}

// Apply merges one decoded envelope into the state. Envelopes for other
// devices and unknown type tags are ignored without error. Absent fields
// leave the current value untouched; out-of-range values are clamped.
func (s *VFDState) Apply(env Envelope) {
	if env.ID != DeviceID {
		return
	}
	switch env.Data.Type {
	case TypeEnergy:
		s.applyEnergy(env.Data)
	case TypeState:
		s.applyState(env.Data)
	case TypeConfig:
		s.applyConfig(env.Data)
	case TypeReset:
		s.resetPending = true
	default:
		return
	}
	s.Connected = true
	s.LastMessage = time.Now()
	s.MessageCount++
}

// TakeReset reports whether a reset message arrived since the last call
// and clears the flag. The renderer consumes this once per frame.
func (s *VFDState) TakeReset() bool {
	r := s.resetPending
	s.resetPending = false
	return r
}

func (s *VFDState) applyEnergy(p Payload) {
	if p.MG != nil {
		s.Energy.MGPower = clamp(*p.MG, -1, 1)
	}
	if p.FuelFlow != nil {
		s.Energy.FuelFlow = clamp(*p.FuelFlow, 0, 1)
	}
	if p.Brake != nil {
		s.Energy.Brake = clamp(*p.Brake, 0, 1)
	}
	if p.Speed != nil {
		s.Energy.Speed = clamp(*p.Speed, 0, 1)
	}
	if p.SOC != nil {
		s.Energy.BatterySOC = clamp(*p.SOC, 0, 1)
	}
	if p.Petrol != nil {
		s.Energy.Petrol = clampInt(int(*p.Petrol), 0, PetrolCapacity)
	}
	if p.LPG != nil {
		s.Energy.LPG = clampInt(int(*p.LPG), 0, LPGCapacity)
	}
	if p.ICE != nil {
		s.Energy.ICERunning = *p.ICE
	}
}

func (s *VFDState) applyState(p Payload) {
	if p.Fuel != nil {
		s.State.ActiveFuel = parseFuel(*p.Fuel)
	}
	if p.Gear != nil {
		s.State.Gear = parseGear(*p.Gear)
	}
	if p.Ready != nil {
		s.State.ReadyMode = *p.Ready
	}
}

func (s *VFDState) applyConfig(p Payload) {
	if p.TimeBase != nil {
		if tb := int(*p.TimeBase); validTimeBases[tb] {
			s.Config.TimeBase = tb
		}
	}
	if p.Brightness != nil {
		s.Config.Brightness = clampInt(int(*p.Brightness), 0, 100)
	}
}

func parseFuel(v string) FuelType {
	switch toUpper(v) {
	case "PTR", "PETROL":
		return FuelPetrol
	case "LPG":
		return FuelLPG
	default:
		return FuelOff
	}
}

func parseGear(v string) Gear {
	switch toUpper(v) {
	case "R":
		return GearR
	case "N":
		return GearN
	case "D":
		return GearD
	case "B":
		return GearB
	default:
		return GearP
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func toUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
