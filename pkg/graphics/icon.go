package graphics

import (
	"fmt"
	"image/color"
)

const (
	OpArc OpKind = iota
	OpPieSlice
	OpRectangle
	OpEllipse
)

type OpKind int

func (k OpKind) String() string {
	switch k {
	case OpArc:
		return "arc"
	case OpPieSlice:
		return "pieslice"
	case OpRectangle:
		return "rectangle"
	case OpEllipse:
		return "ellipse"
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// DrawOp is a single shape drawn onto an icon canvas.
//
// Angles are in degrees, 0 at 3 o'clock and growing clockwise on screen.
// Start and End are only used by arcs and pie slices, Width only by arcs.
type DrawOp struct {
	Kind  OpKind
	Box   Box
	Start float64
	End   float64
	Width float64
}

// Icon is the full description of one generated image: a square
// transparent canvas and the shapes painted on it in order.
type Icon struct {
	Name  string
	Size  int
	Color color.Color
	Ops   []DrawOp
}

func (ic *Icon) validate() error {
	if ic.Size <= 0 {
		return fmt.Errorf("icon %q: size must be greater than 0", ic.Name)
	}
	if ic.Color == nil {
		return fmt.Errorf("icon %q: color is not set", ic.Name)
	}
	for i, op := range ic.Ops {
		if !op.Box.Valid() {
			return fmt.Errorf("icon %q: op %d: invalid box %v", ic.Name, i, op.Box)
		}
		if !op.Box.Inside(ic.Size) {
			return fmt.Errorf("icon %q: op %d: box %v does not fit a %dx%d canvas", ic.Name, i, op.Box, ic.Size, ic.Size)
		}
		switch op.Kind {
		case OpArc:
			if op.Width <= 0 {
				return fmt.Errorf("icon %q: op %d: arc width must be greater than 0", ic.Name, i)
			}
		case OpPieSlice, OpRectangle, OpEllipse:
		default:
			return fmt.Errorf("icon %q: op %d: unknown op kind %v", ic.Name, i, op.Kind)
		}
	}
	return nil
}
