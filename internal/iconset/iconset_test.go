package iconset

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expectedNames = []string{
	"bell.png",
	"spinner_0.png", "spinner_1.png", "spinner_2.png", "spinner_3.png",
	"spinner_4.png", "spinner_5.png", "spinner_6.png", "spinner_7.png",
}

func readDir(t *testing.T, dir string) map[string][]byte {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	files := make(map[string][]byte, len(entries))
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		files[e.Name()] = data
	}
	return files
}

func TestRunWritesAllIcons(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	require.NoError(t, NewGenerator(dir, &out).Run())

	files := readDir(t, dir)
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	require.Equal(t, expectedNames, names)

	for name, data := range files {
		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err, name)
		assert.Equal(t, image.Rect(0, 0, 16, 16), img.Bounds(), name)
		assert.Equal(t, color.NRGBAModel, img.ColorModel(), name)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 10)
	for i := 0; i < 8; i++ {
		assert.Contains(t, lines[i], "spinner_")
		assert.Contains(t, lines[i], string(rune('0'+i)))
	}
	assert.Equal(t, "Generated bell.png", lines[8])
	assert.Equal(t, "All icons generated successfully!", lines[9])
}

func TestRunIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, NewGenerator(dir, &bytes.Buffer{}).Run())
	first := readDir(t, dir)
	require.NoError(t, NewGenerator(dir, &bytes.Buffer{}).Run())
	second := readDir(t, dir)

	assert.Equal(t, first, second)
}

func TestRunCreatesParents(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "src", "Resources")

	require.NoError(t, NewGenerator(dir, &bytes.Buffer{}).Run())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Len(t, readDir(t, dir), 9)
}

func TestRunFailsOnFileInPlaceOfDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "icons")
	require.NoError(t, os.WriteFile(dir, []byte("x"), 0644))

	var out bytes.Buffer
	err := NewGenerator(dir, &out).Run()
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	// a directory named like a frame makes that write fail
	require.NoError(t, os.Mkdir(filepath.Join(dir, "spinner_3.png"), 0755))

	var out bytes.Buffer
	err := NewGenerator(dir, &out).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spinner_3.png")

	assert.FileExists(t, filepath.Join(dir, "spinner_2.png"))
	assert.NoFileExists(t, filepath.Join(dir, "spinner_4.png"))
	assert.NoFileExists(t, filepath.Join(dir, "bell.png"))
	assert.NotContains(t, out.String(), "All icons generated")
}

func TestEnsureDirExisting(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, EnsureDir(dir))
	assert.NoError(t, EnsureDir(dir))
}

func TestNames(t *testing.T) {
	names, err := NewGenerator("", nil).Names()
	require.NoError(t, err)
	require.Len(t, names, 9)
	assert.Equal(t, "spinner_0.png", names[0])
	assert.Equal(t, "bell.png", names[8])
}

func TestDefaultDir(t *testing.T) {
	assert.Equal(t, filepath.Join("src", "Resources"), DefaultDir)
}
