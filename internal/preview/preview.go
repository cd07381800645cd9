// Package preview turns generated icons into artifacts that are easier to
// review than 16px PNGs: an upscaled contact sheet, an animated spinner,
// a Windows icon and SVG sources.
package preview

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/esimov/stackblur-go"
	ico "github.com/sergeymakinen/go-ico"
	"github.com/setanarut/apng"

	"github.com/hrko/statusicons/pkg/graphics"
)

type Options struct {
	Scale        int
	Margin       int
	ShadowRadius uint32
	ShadowOffset int
	Background   color.Color
}

// spinnerDelay is the per-frame delay of the animated spinner in
// hundredths of a second.
const spinnerDelay = 10

func DefaultOptions() Options {
	return Options{
		Scale:        8,
		Margin:       16,
		ShadowRadius: 4,
		ShadowOffset: 3,
		Background:   color.NRGBA{R: 0xf4, G: 0xf4, B: 0xf4, A: 0xff},
	}
}

// Upscale enlarges img by opt.Scale keeping hard pixel edges.
func (opt Options) Upscale(img image.Image) *image.NRGBA {
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()*opt.Scale, b.Dy()*opt.Scale, imaging.NearestNeighbor)
}

// Sheet lays the images out in one row on an opaque background, each
// upscaled and lifted by a blurred drop shadow.
func (opt Options) Sheet(images []image.Image) (*image.NRGBA, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("no images to lay out")
	}

	cell := 0
	for _, img := range images {
		b := img.Bounds()
		cell = max(cell, b.Dx()*opt.Scale, b.Dy()*opt.Scale)
	}
	w := opt.Margin + len(images)*(cell+opt.Margin)
	h := cell + 2*opt.Margin
	sheet := imaging.New(w, h, opt.Background)

	for i, img := range images {
		big := opt.Upscale(img)
		x := opt.Margin + i*(cell+opt.Margin)
		y := opt.Margin

		shadow, err := opt.shadow(big)
		if err != nil {
			return nil, err
		}
		pad := int(opt.ShadowRadius)
		sheet = imaging.Overlay(sheet, shadow, image.Pt(x-pad+opt.ShadowOffset, y-pad+opt.ShadowOffset), 1.0)
		sheet = imaging.Overlay(sheet, big, image.Pt(x, y), 1.0)
	}

	return sheet, nil
}

// shadow returns a blurred, half transparent black silhouette of img,
// padded by the blur radius on every side.
func (opt Options) shadow(img *image.NRGBA) (*image.NRGBA, error) {
	pad := int(opt.ShadowRadius)
	b := img.Bounds()
	silhouette := imaging.New(b.Dx()+2*pad, b.Dy()+2*pad, color.Transparent)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			a := img.NRGBAAt(b.Min.X+x, b.Min.Y+y).A
			silhouette.SetNRGBA(x+pad, y+pad, color.NRGBA{A: a / 2})
		}
	}
	if opt.ShadowRadius == 0 {
		return silhouette, nil
	}
	return stackblur.Process(silhouette, opt.ShadowRadius)
}

// Write loads every icon from iconDir and writes the review artifacts into
// outDir. It returns the paths it wrote.
func (opt Options) Write(iconDir, outDir string, icons []*graphics.Icon) ([]string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, err
	}

	var (
		written []string
		all     []image.Image
		frames  []image.Image
	)
	for _, ic := range icons {
		img, err := imaging.Open(filepath.Join(iconDir, ic.Name))
		if err != nil {
			return written, fmt.Errorf("loading %s: %w", ic.Name, err)
		}
		all = append(all, img)

		stem := strings.TrimSuffix(ic.Name, filepath.Ext(ic.Name))
		if strings.HasPrefix(stem, "spinner_") {
			frames = append(frames, opt.Upscale(img))
		} else {
			path := filepath.Join(outDir, stem+".ico")
			if err := writeICO(path, opt.Upscale(img)); err != nil {
				return written, fmt.Errorf("writing %s: %w", path, err)
			}
			written = append(written, path)
		}

		path := filepath.Join(outDir, stem+".svg")
		if err := writeSVG(path, ic); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}

	sheet, err := opt.Sheet(all)
	if err != nil {
		return written, err
	}
	path := filepath.Join(outDir, "sheet.png")
	if err := imaging.Save(sheet, path); err != nil {
		return written, fmt.Errorf("writing %s: %w", path, err)
	}
	written = append(written, path)

	if len(frames) > 0 {
		path := filepath.Join(outDir, "spinner.apng")
		// the stat below must only see this run's file
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return written, fmt.Errorf("removing %s: %w", path, err)
		}
		apng.Save(path, frames, spinnerDelay)
		if _, err := os.Stat(path); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}

	return written, nil
}

func writeICO(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := ico.Encode(&buf, img); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

func writeSVG(path string, ic *graphics.Icon) error {
	var buf bytes.Buffer
	if err := ic.WriteSVG(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
