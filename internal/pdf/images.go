package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/hansaki/quizforge/internal/entity"
)

// NormalizeMode selects how hard the extractor tries to convert an image.
type NormalizeMode int

const (
	// NormalizeSimple uses only the direct conversion tier. Used by the
	// regular extraction path where speed matters and most images are fine.
	NormalizeSimple NormalizeMode = iota
	// NormalizeRobust runs the full three-tier fallback chain. Used when the
	// layout pass found no images and we are recovering what we can.
	NormalizeRobust
)

// ImageExtractor walks a document's embedded image objects. Images are
// deduplicated by object reference across the whole document: a figure
// reused on several pages (a common PDF optimization) is extracted exactly
// once, attributed to the first page referencing it.
type ImageExtractor struct {
	norm   *Normalizer
	logger *slog.Logger
}

func NewImageExtractor(norm *Normalizer, logger *slog.Logger) *ImageExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	if norm == nil {
		norm = NewNormalizer(logger)
	}
	return &ImageExtractor{norm: norm, logger: logger}
}

// rawImage is one embedded image reference before normalization.
type rawImage struct {
	ObjNr    int
	PageNr   int
	Name     string
	FileType string
	Data     []byte
}

// ExtractAll returns every unique embedded image, normalized to RGB. Per-image
// failures are logged and omitted; the call errors only when the document
// itself cannot be parsed.
func (e *ImageExtractor) ExtractAll(ctx context.Context, doc []byte, mode NormalizeMode) ([]entity.ExtractedImage, error) {
	raws, err := e.collect(doc)
	if err != nil {
		return nil, err
	}
	return e.normalizeAll(ctx, raws, mode), nil
}

// collect enumerates embedded image objects page by page via pdfcpu.
func (e *ImageExtractor) collect(doc []byte) ([]rawImage, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pageImages, err := api.ExtractImagesRaw(bytes.NewReader(doc), nil, conf)
	if err != nil {
		return nil, fmt.Errorf("extract images: %w", err)
	}

	var raws []rawImage
	for pageIdx, byObj := range pageImages {
		objNrs := make([]int, 0, len(byObj))
		for objNr := range byObj {
			objNrs = append(objNrs, objNr)
		}
		sort.Ints(objNrs)

		for _, objNr := range objNrs {
			img := byObj[objNr]
			data, err := io.ReadAll(img)
			if err != nil {
				e.logger.Warn("pdf.images.read_failed", "page", pageIdx+1, "obj", objNr, "error", err)
				continue
			}
			raws = append(raws, rawImage{
				ObjNr:    objNr,
				PageNr:   pageIdx + 1,
				Name:     img.Name,
				FileType: img.FileType,
				Data:     data,
			})
		}
	}
	return raws, nil
}

// normalizeAll applies the xref dedup invariant and converts each unique
// image exactly once. A failed conversion skips that image only.
func (e *ImageExtractor) normalizeAll(ctx context.Context, raws []rawImage, mode NormalizeMode) []entity.ExtractedImage {
	seen := make(map[int]struct{}, len(raws))
	out := make([]entity.ExtractedImage, 0, len(raws))

	for _, raw := range raws {
		select {
		case <-ctx.Done():
			return out
		default:
		}

		if _, dup := seen[raw.ObjNr]; dup {
			continue
		}
		seen[raw.ObjNr] = struct{}{}

		pix := Pixmap{Data: raw.Data, FileType: raw.FileType}
		var (
			data []byte
			err  error
		)
		switch mode {
		case NormalizeRobust:
			data, err = e.norm.ToRGB(pix)
		default:
			data, err = e.norm.ToRGBDirect(pix)
		}
		if err != nil {
			e.logger.Warn("pdf.images.skipped",
				"page", raw.PageNr, "obj", raw.ObjNr, "file_type", raw.FileType, "error", err)
			continue
		}

		out = append(out, entity.ExtractedImage{
			Identity: imageIdentity(raw),
			Data:     data,
			Page:     raw.PageNr,
			Position: len(out),
		})
	}
	return out
}

// imageIdentity builds a stable filename-style identity from the object
// reference, matching how extracted images are referred to elsewhere.
func imageIdentity(raw rawImage) string {
	ext := raw.FileType
	if ext == "" {
		ext = "png"
	}
	return fmt.Sprintf("img_p%d_obj%d.%s", raw.PageNr, raw.ObjNr, ext)
}
