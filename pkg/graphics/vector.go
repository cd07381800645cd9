package graphics

import (
	"image"
	"io"
	"math"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/canvas/renderers/svg"
)

// Vector builds the icon as a vector canvas with one unit per pixel.
func (ic *Icon) Vector() (*canvas.Canvas, error) {
	if err := ic.validate(); err != nil {
		return nil, err
	}

	size := float64(ic.Size)
	c := canvas.New(size, size)
	ctx := canvas.NewContext(c)

	for _, op := range ic.Ops {
		p := ic.vectorPath(op)
		if op.Kind == OpArc {
			ctx.SetFillColor(canvas.Transparent)
			ctx.SetStrokeColor(ic.Color)
			ctx.SetStrokeWidth(op.Width)
			ctx.SetStrokeCapper(canvas.ButtCap)
		} else {
			ctx.SetFillColor(ic.Color)
			ctx.SetStrokeColor(canvas.Transparent)
		}
		ctx.DrawPath(0, 0, p)
	}

	return c, nil
}

// WriteSVG writes the vector form of the icon as an SVG document.
func (ic *Icon) WriteSVG(w io.Writer) error {
	c, err := ic.Vector()
	if err != nil {
		return err
	}
	r := svg.New(w, c.W, c.H, nil)
	c.RenderTo(r)
	return r.Close()
}

// Rasterize renders the vector form of the icon at one pixel per unit.
func (ic *Icon) Rasterize() (image.Image, error) {
	c, err := ic.Vector()
	if err != nil {
		return nil, err
	}
	return rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace), nil
}

// vectorPath converts op into a canvas path. The canvas y axis points up,
// so every point is mirrored and arcs run with sweep=false to stay
// clockwise on screen.
func (ic *Icon) vectorPath(op DrawOp) *canvas.Path {
	size := float64(ic.Size)
	cx, cy := op.Box.Center()
	rx, ry := op.Box.Radii()
	if op.Kind == OpArc {
		rx -= op.Width / 2
		ry -= op.Width / 2
	}
	at := func(deg float64) (float64, float64) {
		rad := deg * math.Pi / 180
		return cx + rx*math.Cos(rad), size - (cy + ry*math.Sin(rad))
	}
	arcTo := func(p *canvas.Path, start, end float64) {
		for a := start; a < end; {
			next := math.Min(a+90, end)
			x, y := at(next)
			p.ArcTo(rx, ry, 0, false, false, x, y)
			a = next
		}
	}

	p := &canvas.Path{}
	switch op.Kind {
	case OpArc:
		p.MoveTo(at(op.Start))
		arcTo(p, op.Start, op.End)
	case OpPieSlice:
		p.MoveTo(cx, size-cy)
		p.LineTo(at(op.Start))
		arcTo(p, op.Start, op.End)
		p.Close()
	case OpRectangle:
		x, y, w, h := op.Box.Rect()
		p.MoveTo(x, size-y)
		p.LineTo(x+w, size-y)
		p.LineTo(x+w, size-y-h)
		p.LineTo(x, size-y-h)
		p.Close()
	case OpEllipse:
		p.MoveTo(at(0))
		arcTo(p, 0, 360)
		p.Close()
	}
	return p
}
