// Package iconcheck verifies a directory of generated icons.
package iconcheck

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fufuok/cmap"
	"github.com/tidwall/pretty"
)

type Result struct {
	Name        string `json:"name"`
	OK          bool   `json:"ok"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	DrawnPixels int    `json:"drawnPixels,omitempty"`
	SHA256      string `json:"sha256,omitempty"`
	Error       string `json:"error,omitempty"`
}

type Report struct {
	Dir     string   `json:"dir"`
	OK      bool     `json:"ok"`
	Results []Result `json:"results"`
}

// Check inspects dir concurrently. Every name in expected must be a
// decodable size x size PNG with an alpha channel and at least one
// non-transparent pixel; any other file in dir fails the report.
func Check(dir string, expected []string, size int) (*Report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	results := cmap.NewOf[string, Result]()
	want := make(map[string]bool, len(expected))
	for _, name := range expected {
		want[name] = true
	}
	for _, e := range entries {
		if !want[e.Name()] {
			results.Set(e.Name(), Result{Name: e.Name(), Error: "unexpected file"})
		}
	}

	var wg sync.WaitGroup
	for _, name := range expected {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			results.Set(name, checkFile(filepath.Join(dir, name), size))
		}(name)
	}
	wg.Wait()

	report := &Report{Dir: dir, OK: true}
	for _, r := range results.Items() {
		report.Results = append(report.Results, r)
		if !r.OK {
			report.OK = false
		}
	}
	sort.Slice(report.Results, func(i, j int) bool {
		return report.Results[i].Name < report.Results[j].Name
	})
	return report, nil
}

// JSON returns the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(b), nil
}

func checkFile(path string, size int) Result {
	r := Result{Name: filepath.Base(path)}

	data, err := os.ReadFile(path)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	sum := sha256.Sum256(data)
	r.SHA256 = hex.EncodeToString(sum[:])

	img, err := imaging.Open(path)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	b := img.Bounds()
	r.Width, r.Height = b.Dx(), b.Dy()
	r.DrawnPixels = countDrawn(img)

	switch {
	case r.Width != size || r.Height != size:
		r.Error = fmt.Sprintf("size is %dx%d, want %dx%d", r.Width, r.Height, size, size)
	case !hasAlpha(data, img):
		r.Error = "image has no alpha channel"
	case r.DrawnPixels == 0:
		r.Error = "image is empty"
	default:
		r.OK = true
	}
	return r
}

// hasAlpha reports whether the PNG file carries transparency: an alpha
// channel (gray+alpha or RGBA colour type) or a palette with a tRNS chunk.
// The decoded model is checked too, so non-PNG inputs never pass.
func hasAlpha(data []byte, img image.Image) bool {
	switch pngColorType(data) {
	case pngGrayAlpha, pngRGBA:
	case pngPaletted:
		if !hasPNGChunk(data, "tRNS") {
			return false
		}
	default:
		return false
	}
	switch img.ColorModel() {
	case color.NRGBAModel, color.NRGBA64Model:
		return true
	}
	_, ok := img.(*image.Paletted)
	return ok
}

const (
	pngPaletted  = 3
	pngGrayAlpha = 4
	pngRGBA      = 6
)

const pngSignature = "\x89PNG\r\n\x1a\n"

// pngColorType returns the colour type byte of the IHDR chunk, or -1.
func pngColorType(data []byte) int {
	// signature, IHDR length and type, width, height, bit depth
	const offset = 8 + 8 + 4 + 4 + 1
	if len(data) <= offset || string(data[:8]) != pngSignature || string(data[12:16]) != "IHDR" {
		return -1
	}
	return int(data[offset])
}

// hasPNGChunk reports whether a chunk of the given type appears before IDAT.
func hasPNGChunk(data []byte, typ string) bool {
	for pos := 8; pos+8 <= len(data); {
		n := int(binary.BigEndian.Uint32(data[pos:]))
		t := string(data[pos+4 : pos+8])
		if t == typ {
			return true
		}
		if t == "IDAT" || t == "IEND" || n < 0 {
			return false
		}
		pos += 12 + n
	}
	return false
}

func countDrawn(img image.Image) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				n++
			}
		}
	}
	return n
}
