// Package iconset renders the status icons and writes them to disk.
package iconset

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"github.com/hrko/statusicons/pkg/graphics"
)

// DefaultDir is where the generated icons live, relative to the repository root.
var DefaultDir = filepath.Join("src", "Resources")

type Generator struct {
	Dir     string
	Out     io.Writer
	Logger  zerolog.Logger
	Spinner *graphics.Spinner
	Bell    *graphics.Bell
}

func NewGenerator(dir string, out io.Writer) *Generator {
	return &Generator{
		Dir:     dir,
		Out:     out,
		Logger:  zerolog.Nop(),
		Spinner: graphics.NewSpinner(),
		Bell:    graphics.NewBell(),
	}
}

// Icons returns every icon the generator writes, spinner frames first.
func (g *Generator) Icons() ([]*graphics.Icon, error) {
	icons, err := g.Spinner.Frames()
	if err != nil {
		return nil, err
	}
	return append(icons, g.Bell.Icon()), nil
}

// Names returns the file names Run produces, in order.
func (g *Generator) Names() ([]string, error) {
	icons, err := g.Icons()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(icons))
	for i, ic := range icons {
		names[i] = ic.Name
	}
	return names, nil
}

// Run writes every icon into g.Dir and reports each file on g.Out.
// The first failure stops the run; files written before it are kept.
func (g *Generator) Run() error {
	if err := EnsureDir(g.Dir); err != nil {
		return fmt.Errorf("preparing output directory: %w", err)
	}

	icons, err := g.Icons()
	if err != nil {
		return err
	}

	for _, ic := range icons {
		if err := g.write(ic); err != nil {
			return fmt.Errorf("generating %s: %w", ic.Name, err)
		}
		fmt.Fprintf(g.Out, "Generated %s\n", ic.Name)
	}

	fmt.Fprintln(g.Out, "All icons generated successfully!")
	return nil
}

func (g *Generator) write(ic *graphics.Icon) error {
	img, err := ic.Render()
	if err != nil {
		return err
	}
	path := filepath.Join(g.Dir, ic.Name)
	n, err := WritePNG(path, img)
	if err != nil {
		return err
	}
	g.Logger.Debug().Str("path", path).Int("bytes", n).Msg("icon written")
	return nil
}

// EnsureDir creates dir and any missing parents. An existing directory is
// not an error.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// Encode writes img to w as PNG.
func Encode(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

// WritePNG encodes img and replaces the file at path with it. It returns
// the number of bytes written.
func WritePNG(path string, img image.Image) (int, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}
