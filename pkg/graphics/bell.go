package graphics

import "image/color"

// Bell describes the notification bell: a half-ellipse dome over a body,
// a wider rim and a small clapper underneath.
type Bell struct {
	Name    string
	Color   color.Color
	Size    int
	Dome    Box
	Body    Box
	Rim     Box
	Clapper Box
}

func NewBell() *Bell {
	b := &Bell{}
	b.SetDefault()
	return b
}

func (b *Bell) SetDefault() {
	b.Name = "bell.png"
	b.Color = mustParseColor("#dc5028")
	b.Size = 16
	b.Dome = Box{X0: 3, Y0: 1, X1: 12, Y1: 10}
	b.Body = Box{X0: 3, Y0: 6, X1: 12, Y1: 11}
	b.Rim = Box{X0: 2, Y0: 11, X1: 13, Y1: 13}
	b.Clapper = Box{X0: 6, Y0: 13, X1: 9, Y1: 15}
}

// Icon returns the bell shapes in paint order.
func (b *Bell) Icon() *Icon {
	return &Icon{
		Name:  b.Name,
		Size:  b.Size,
		Color: b.Color,
		Ops: []DrawOp{
			{Kind: OpPieSlice, Box: b.Dome, Start: 180, End: 360},
			{Kind: OpRectangle, Box: b.Body},
			{Kind: OpRectangle, Box: b.Rim},
			{Kind: OpEllipse, Box: b.Clapper},
		},
	}
}
