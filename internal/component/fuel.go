package component

import "stranded/internal/ecs"

const (
	CFuel     ecs.ComponentType = 4
	CFuelText ecs.ComponentType = 5
)

// Fuel is the player's thrust resource. It has no floor or ceiling.
type Fuel struct {
	Amount float64
}

func (Fuel) Type() ecs.ComponentType { return CFuel }

// FuelText is the data of the on-screen fuel readout. Value is refreshed from
// the player's Fuel at the end of every tick.
type FuelText struct {
	Label string
	Value string
}

func (FuelText) Type() ecs.ComponentType { return CFuelText }

// String renders the readout as one line.
func (f FuelText) String() string { return f.Label + f.Value }
