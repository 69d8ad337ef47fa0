package factory

import (
	"stranded/internal/component"
	"stranded/internal/config"
	"stranded/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// Presentation colors.
var (
	PlayerColor   = tcell.NewRGBColor(230, 128, 255)
	FuelCellColor = tcell.NewRGBColor(120, 230, 120)
)

// FuelLabel prefixes the fuel readout.
const FuelLabel = "Fuel: "

// NewPlayer creates the player ship at the origin.
func NewPlayer(w *ecs.World, p config.Player) ecs.EntityID {
	return w.Spawn(
		component.Transform{Scale: component.Vec2{X: p.Size, Y: p.Size}},
		component.Velocity{Vec2: component.Vec2{X: p.StartVX, Y: p.StartVY}},
		component.Fuel{Amount: p.StartFuel},
		component.Renderable{Color: PlayerColor, Kind: component.KindPlayer},
		component.TagPlayer{},
		component.TagWrapAround{},
	)
}

// NewFuelDisplay creates the fuel readout proxy showing fuel.
func NewFuelDisplay(w *ecs.World, fuel float64) ecs.EntityID {
	return w.Spawn(
		component.FuelText{Label: FuelLabel, Value: FormatFuel(fuel)},
		component.TagFuelDisplay{},
	)
}

// NewFuelCell creates a collectible, rigid, wrapping fuel cell.
func NewFuelCell(w *ecs.World, pos, vel component.Vec2, size float64) ecs.EntityID {
	extent := component.Vec2{X: size, Y: size}
	return w.Spawn(
		component.Transform{Position: pos, Scale: extent},
		component.Velocity{Vec2: vel},
		component.BoundingBox{Extent: extent},
		component.Renderable{Color: FuelCellColor, Kind: component.KindFuelCell},
		component.TagRigid{},
		component.TagWrapAround{},
		component.TagPickupCell{},
	)
}
