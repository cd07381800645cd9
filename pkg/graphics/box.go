package graphics

import "fmt"

// Box is a bounding box given by two inclusive pixel corners. A box covers
// pixel columns X0..X1 and rows Y0..Y1, so the rectangle it describes in
// canvas coordinates is [X0, X1+1] x [Y0, Y1+1].
type Box struct {
	X0, Y0 int
	X1, Y1 int
}

func (b Box) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", b.X0, b.Y0, b.X1, b.Y1)
}

func (b Box) Valid() bool {
	return b.X0 <= b.X1 && b.Y0 <= b.Y1
}

// Rect returns the top-left corner and the size of the box in canvas units.
func (b Box) Rect() (x, y, w, h float64) {
	return float64(b.X0), float64(b.Y0), float64(b.X1 - b.X0 + 1), float64(b.Y1 - b.Y0 + 1)
}

// Center returns the center of the ellipse inscribed in the box.
func (b Box) Center() (cx, cy float64) {
	x, y, w, h := b.Rect()
	return x + w/2, y + h/2
}

// Radii returns the radii of the ellipse inscribed in the box.
func (b Box) Radii() (rx, ry float64) {
	_, _, w, h := b.Rect()
	return w / 2, h / 2
}

// Contains reports whether the pixel (x, y) lies inside the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Y0 && y <= b.Y1
}

// Inside reports whether the box fits on a square canvas of the given size.
func (b Box) Inside(size int) bool {
	return b.X0 >= 0 && b.Y0 >= 0 && b.X1 < size && b.Y1 < size
}
