package component

import (
	"stranded/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 6

// Kind is the presentation category of an entity.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindFuelCell
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindFuelCell:
		return "fuel-cell"
	}
	return "unknown"
}

type Renderable struct {
	Color tcell.Color
	Kind  Kind
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
