package state

import (
	"encoding/json"
	"fmt"
)

// Message type tags carried in the payload's "t" field.
const (
	TypeEnergy = "E"
	TypeState  = "S"
	TypeConfig = "C"
	TypeReset  = "R"
)

// Envelope is one line of the NDJSON wire protocol:
//
//	{"id": 110, "d": {"t": "E", "mg": 0.4, ...}}
//
// The payload is discriminated by the single-character type tag.
type Envelope struct {
	ID   int     `json:"id"`
	Data Payload `json:"d"`
}

// Payload carries the union of all message fields. Pointer fields
// distinguish absent from zero: absent fields leave the current state
// value unchanged. Numeric fields are decoded as float64 because hosts
// are free to send liters and seconds with or without a fraction.
type Payload struct {
	Type string `json:"t"`

	// Energy (t = "E")
	MG       *float64 `json:"mg,omitempty"`
	FuelFlow *float64 `json:"fl,omitempty"`
	Brake    *float64 `json:"br,omitempty"`
	Speed    *float64 `json:"spd,omitempty"`
	SOC      *float64 `json:"soc,omitempty"`
	Petrol   *float64 `json:"ptr,omitempty"`
	LPG      *float64 `json:"lpg,omitempty"`
	ICE      *bool    `json:"ice,omitempty"`

	// State flags (t = "S")
	Fuel  *string `json:"fuel,omitempty"`
	Gear  *string `json:"gear,omitempty"`
	Ready *bool   `json:"rdy,omitempty"`

	// Config (t = "C")
	TimeBase   *float64 `json:"tb,omitempty"`
	Brightness *float64 `json:"bri,omitempty"`
}

// DecodeLine parses one NDJSON line into an envelope.
func DecodeLine(line []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(line, &env); err != nil {
		return Envelope{}, fmt.Errorf("decode message: %w", err)
	}
	return env, nil
}
