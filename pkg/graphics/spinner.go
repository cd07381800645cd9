package graphics

import (
	"fmt"
	"image/color"
)

// Spinner describes a rotating arc animation. Frame i draws an arc of
// Sweep degrees starting at i*Step degrees.
type Spinner struct {
	Color       color.Color
	Size        int
	Box         Box
	StrokeWidth float64
	Sweep       float64
	Step        float64
	FrameCount  int
}

func NewSpinner() *Spinner {
	s := &Spinner{}
	s.SetDefault()
	return s
}

func (s *Spinner) SetDefault() {
	s.Color = mustParseColor("#0066cc")
	s.Size = 16
	s.Box = Box{X0: 1, Y0: 1, X1: 14, Y1: 14}
	s.StrokeWidth = 2
	s.Sweep = 90
	s.Step = 45
	s.FrameCount = 8
}

func (s *Spinner) StartAngle(i int) float64 {
	return float64(i) * s.Step
}

func (s *Spinner) FrameName(i int) string {
	return fmt.Sprintf("spinner_%d.png", i)
}

func (s *Spinner) Frame(i int) (*Icon, error) {
	if i < 0 || i >= s.FrameCount {
		return nil, fmt.Errorf("frame index %d out of range [0, %d)", i, s.FrameCount)
	}
	start := s.StartAngle(i)
	return &Icon{
		Name:  s.FrameName(i),
		Size:  s.Size,
		Color: s.Color,
		Ops: []DrawOp{
			{Kind: OpArc, Box: s.Box, Start: start, End: start + s.Sweep, Width: s.StrokeWidth},
		},
	}, nil
}

func (s *Spinner) Frames() ([]*Icon, error) {
	frames := make([]*Icon, 0, s.FrameCount)
	for i := 0; i < s.FrameCount; i++ {
		f, err := s.Frame(i)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}
