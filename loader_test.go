package carve

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_PlainTextRaster(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "sample.pgm")
	data := "P2\n# comment\n2 2\n255\n10 20\n30 40\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("could not write the test raster: %v", err)
	}

	img, maxValue, err := Load(path)
	assert.NoError(err)
	assert.Equal(Grid{{10, 20}, {30, 40}}, img)
	assert.Equal(255, maxValue)
}

func TestLoad_BinaryImage(t *testing.T) {
	assert := assert.New(t)

	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			src.Set(x, y, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("could not encode the test image: %v", err)
	}

	path := filepath.Join(t.TempDir(), "sample.png")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("could not write the test image: %v", err)
	}

	img, maxValue, err := Load(path)
	assert.NoError(err)
	assert.Equal(255, maxValue)
	assert.Equal(Grid{{100, 100}, {100, 100}}, img)
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.pgm"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nope.pgm")
}
