package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"

	// Registered decoders for tier-2 re-encoding. TIFF matters most: CMYK
	// scans show up as embedded TIFFs in print-oriented study PDFs.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Pixmap is one embedded image as pulled from the document: the encoded bytes
// plus whatever metadata the object dictionary declared.
type Pixmap struct {
	Data     []byte
	FileType string // lowercase extension-style type: "png", "jpg", "tiff", ...
	Width    int    // declared width; 0 when the dictionary didn't say
	Height   int
}

// Normalizer converts arbitrary pixel formats (CMYK, DeviceN, indexed, ...)
// to RGB through a layered fallback chain. Each tier is tried only if the
// previous one failed; exhausting all tiers means the image is skipped by the
// caller, never that the extraction call fails.
type Normalizer struct {
	logger *slog.Logger
	tiers  []conversionTier
}

type conversionTier struct {
	name string
	fn   func(Pixmap) ([]byte, error)
}

func NewNormalizer(logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	n := &Normalizer{logger: logger}
	n.tiers = []conversionTier{
		{"direct", n.convertDirect},
		{"reencode", n.convertReencode},
		{"canvas", n.convertCanvas},
	}
	return n
}

// ToRGB runs the full fallback chain and returns RGB-encoded bytes (PNG, or
// the source bytes verbatim when they were already a usable PNG/JPEG).
func (n *Normalizer) ToRGB(p Pixmap) ([]byte, error) {
	var lastErr error
	for _, tier := range n.tiers {
		out, err := tier.fn(p)
		if err == nil {
			return out, nil
		}
		n.logger.Debug("pdf.colorspace.tier_failed", "tier", tier.name, "file_type", p.FileType, "error", err)
		lastErr = err
	}
	return nil, fmt.Errorf("all conversion tiers failed: %w", lastErr)
}

// ToRGBDirect runs tier 1 only. The simple extraction path uses it; the
// robust path behind ToRGB is reserved for the zero-image fallback walk.
func (n *Normalizer) ToRGBDirect(p Pixmap) ([]byte, error) {
	return n.convertDirect(p)
}

// convertDirect is tier 1: direct pixel-buffer colorspace conversion. Images
// whose non-alpha channel count is already <= 3 pass through unchanged when
// their encoding is web-usable; CMYK buffers are rewritten channel by channel.
func (n *Normalizer) convertDirect(p Pixmap) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(p.Data))
	if err != nil {
		return nil, fmt.Errorf("direct decode: %w", err)
	}

	if cmyk, ok := img.(*image.CMYK); ok {
		return encodePNG(cmykToNRGBA(cmyk))
	}

	if nonAlphaChannels(img) <= 3 {
		if format == "png" || format == "jpeg" {
			return p.Data, nil
		}
		return nil, fmt.Errorf("direct: %s needs re-encoding", format)
	}
	return nil, fmt.Errorf("direct: unsupported pixel format %T", img)
}

// convertReencode is tier 2: treat the bytes as a generic image object. A
// PNG/JPEG that decodes at all is used verbatim; everything else is decoded
// with the general image libraries and re-encoded as RGB PNG.
func (n *Normalizer) convertReencode(p Pixmap) ([]byte, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(p.Data))
	if err != nil {
		return nil, fmt.Errorf("reencode probe: %w", err)
	}
	if (format == "png" || format == "jpeg") && cfg.Width > 0 && cfg.Height > 0 {
		return p.Data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(p.Data))
	if err != nil {
		return nil, fmt.Errorf("reencode decode: %w", err)
	}
	return encodePNG(toNRGBA(img))
}

// convertCanvas is tier 3: re-render onto a blank RGB canvas sized to the
// image's declared dimensions and copy/convert the source onto it.
func (n *Normalizer) convertCanvas(p Pixmap) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(p.Data))
	if err != nil {
		return nil, fmt.Errorf("canvas decode: %w", err)
	}

	w, h := p.Width, p.Height
	if w <= 0 || h <= 0 {
		b := img.Bounds()
		w, h = b.Dx(), b.Dy()
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("canvas: no usable dimensions")
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(canvas, canvas.Bounds(), img, img.Bounds().Min, draw.Over)
	return encodePNG(canvas)
}

// nonAlphaChannels reports the color channel count of the decoded image,
// alpha excluded. Indexed images count as their expanded RGB.
func nonAlphaChannels(img image.Image) int {
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return 1
	case color.CMYKModel:
		return 4
	default:
		return 3
	}
}

func cmykToNRGBA(src *image.CMYK) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := src.PixOffset(x, y)
			r, g, bl := color.CMYKToRGB(src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3])
			dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, color.NRGBA{R: r, G: g, B: bl, A: 0xff})
		}
	}
	return dst
}

func toNRGBA(img image.Image) *image.NRGBA {
	if out, ok := img.(*image.NRGBA); ok {
		return out
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
