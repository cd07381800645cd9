package graphics

import (
	"image"

	"github.com/fogleman/gg"
)

// Render paints the icon onto a new transparent canvas.
func (ic *Icon) Render() (image.Image, error) {
	if err := ic.validate(); err != nil {
		return nil, err
	}

	c := gg.NewContext(ic.Size, ic.Size)
	c.SetColor(ic.Color)

	for _, op := range ic.Ops {
		cx, cy := op.Box.Center()
		rx, ry := op.Box.Radii()

		switch op.Kind {
		case OpArc:
			// keep the whole stroke inside the box
			rx -= op.Width / 2
			ry -= op.Width / 2
			c.NewSubPath()
			c.DrawEllipticalArc(cx, cy, rx, ry, gg.Radians(op.Start), gg.Radians(op.End))
			c.SetLineWidth(op.Width)
			c.SetLineCapButt()
			c.Stroke()
		case OpPieSlice:
			c.NewSubPath()
			c.MoveTo(cx, cy)
			c.DrawEllipticalArc(cx, cy, rx, ry, gg.Radians(op.Start), gg.Radians(op.End))
			c.ClosePath()
			c.Fill()
		case OpRectangle:
			x, y, w, h := op.Box.Rect()
			c.DrawRectangle(x, y, w, h)
			c.Fill()
		case OpEllipse:
			c.DrawEllipse(cx, cy, rx, ry)
			c.Fill()
		}
	}

	return c.Image(), nil
}
