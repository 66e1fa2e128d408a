package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func bmpBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, img))
	return buf.Bytes()
}

func TestDirectTierPassesThroughPNG(t *testing.T) {
	n := NewNormalizer(nil)
	data := pngBytes(t, 4, 4)

	out, err := n.ToRGBDirect(Pixmap{Data: data, FileType: "png"})
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDirectTierRejectsBMP(t *testing.T) {
	n := NewNormalizer(nil)
	_, err := n.ToRGBDirect(Pixmap{Data: bmpBytes(t, 4, 4), FileType: "bmp"})
	assert.Error(t, err)
}

func TestReencodeTierConvertsBMPToPNG(t *testing.T) {
	n := NewNormalizer(nil)

	out, err := n.ToRGB(Pixmap{Data: bmpBytes(t, 6, 3), FileType: "bmp"})
	require.NoError(t, err)

	img, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 6, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())
}

func TestAllTiersFailOnGarbage(t *testing.T) {
	n := NewNormalizer(nil)
	_, err := n.ToRGB(Pixmap{Data: []byte("definitely not an image"), FileType: "png"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all conversion tiers failed")
}

func TestCMYKConversion(t *testing.T) {
	src := image.NewCMYK(image.Rect(0, 0, 2, 2))
	// Pure black via K channel.
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i+3] = 0xff
	}

	dst := cmykToNRGBA(src)
	c := dst.NRGBAAt(0, 0)
	assert.Equal(t, uint8(0), c.R)
	assert.Equal(t, uint8(0), c.G)
	assert.Equal(t, uint8(0), c.B)
	assert.Equal(t, uint8(0xff), c.A)
}

func TestCanvasTierUsesDeclaredDimensions(t *testing.T) {
	n := NewNormalizer(nil)

	out, err := n.convertCanvas(Pixmap{Data: pngBytes(t, 2, 2), Width: 10, Height: 8})
	require.NoError(t, err)

	img, _, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}
