package iconcheck

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrko/statusicons/internal/iconset"
)

func generate(t *testing.T) (string, []string) {
	t.Helper()
	dir := t.TempDir()
	g := iconset.NewGenerator(dir, io.Discard)
	require.NoError(t, g.Run())
	names, err := g.Names()
	require.NoError(t, err)
	return dir, names
}

func resultFor(t *testing.T, r *Report, name string) Result {
	t.Helper()
	for _, res := range r.Results {
		if res.Name == name {
			return res
		}
	}
	t.Fatalf("no result for %s", name)
	return Result{}
}

func TestCheckGeneratedIcons(t *testing.T) {
	dir, names := generate(t)

	report, err := Check(dir, names, 16)
	require.NoError(t, err)
	assert.True(t, report.OK)
	require.Len(t, report.Results, 9)
	for _, r := range report.Results {
		assert.True(t, r.OK, "%s: %s", r.Name, r.Error)
		assert.Equal(t, 16, r.Width)
		assert.Positive(t, r.DrawnPixels)
		assert.Len(t, r.SHA256, 64)
	}

	b, err := report.JSON()
	require.NoError(t, err)
	var decoded Report
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, report.Results, decoded.Results)
}

func TestCheckReportsProblems(t *testing.T) {
	dir, names := generate(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "stray.txt"), []byte("x"), 0644))
	require.NoError(t, os.Remove(filepath.Join(dir, "spinner_5.png")))

	f, err := os.Create(filepath.Join(dir, "bell.png"))
	require.NoError(t, err)
	big := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	big.Set(1, 1, color.Black)
	require.NoError(t, png.Encode(f, big))
	require.NoError(t, f.Close())

	report, err := Check(dir, names, 16)
	require.NoError(t, err)
	assert.False(t, report.OK)
	assert.Len(t, report.Results, 10)

	assert.Equal(t, "unexpected file", resultFor(t, report, "stray.txt").Error)
	assert.NotEmpty(t, resultFor(t, report, "spinner_5.png").Error)
	bell := resultFor(t, report, "bell.png")
	assert.False(t, bell.OK)
	assert.Contains(t, bell.Error, "20x20")
	assert.True(t, resultFor(t, report, "spinner_0.png").OK)
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestCheckRejectsOpaquePNGs(t *testing.T) {
	dir, names := generate(t)

	// fully opaque RGBA encodes as colour type 2, no alpha channel
	rgb := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			rgb.Set(x, y, color.RGBA{R: 0xdc, G: 0x50, B: 0x28, A: 0xff})
		}
	}
	writePNG(t, filepath.Join(dir, "bell.png"), rgb)

	// a palette without transparent entries is written without tRNS
	pal := image.NewPaletted(image.Rect(0, 0, 16, 16), color.Palette{color.Black, color.White})
	pal.SetColorIndex(3, 3, 1)
	writePNG(t, filepath.Join(dir, "spinner_1.png"), pal)

	report, err := Check(dir, names, 16)
	require.NoError(t, err)
	assert.False(t, report.OK)
	for _, name := range []string{"bell.png", "spinner_1.png"} {
		r := resultFor(t, report, name)
		assert.False(t, r.OK, name)
		assert.Equal(t, "image has no alpha channel", r.Error, name)
	}
	assert.True(t, resultFor(t, report, "spinner_0.png").OK)
}

func TestCheckAcceptsTransparentPalette(t *testing.T) {
	dir, names := generate(t)

	pal := image.NewPaletted(image.Rect(0, 0, 16, 16), color.Palette{color.Transparent, color.Black})
	pal.SetColorIndex(3, 3, 1)
	writePNG(t, filepath.Join(dir, "spinner_1.png"), pal)

	report, err := Check(dir, names, 16)
	require.NoError(t, err)
	r := resultFor(t, report, "spinner_1.png")
	assert.True(t, r.OK, r.Error)
	assert.True(t, report.OK)
}

func TestPNGColorType(t *testing.T) {
	assert.Equal(t, -1, pngColorType([]byte("not a png")))
	assert.False(t, hasPNGChunk([]byte("short"), "tRNS"))
}

func TestCheckMissingDir(t *testing.T) {
	_, err := Check(filepath.Join(t.TempDir(), "missing"), []string{"bell.png"}, 16)
	assert.Error(t, err)
}
