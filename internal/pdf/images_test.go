package pdf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAllDeduplicatesByObjectRef(t *testing.T) {
	e := NewImageExtractor(nil, nil)
	data := pngBytes(t, 4, 4)

	// Object 7 appears on pages 1 and 3, a shared-figure layout.
	raws := []rawImage{
		{ObjNr: 7, PageNr: 1, FileType: "png", Data: data},
		{ObjNr: 8, PageNr: 2, FileType: "png", Data: data},
		{ObjNr: 7, PageNr: 3, FileType: "png", Data: data},
	}

	out := e.normalizeAll(context.Background(), raws, NormalizeSimple)

	require.Len(t, out, 2)
	assert.Equal(t, "img_p1_obj7.png", out[0].Identity)
	assert.Equal(t, 1, out[0].Page)
	assert.Equal(t, "img_p2_obj8.png", out[1].Identity)
	assert.Equal(t, []int{0, 1}, []int{out[0].Position, out[1].Position})
}

func TestNormalizeAllSkipsFailedConversions(t *testing.T) {
	e := NewImageExtractor(nil, nil)

	raws := []rawImage{
		{ObjNr: 1, PageNr: 1, FileType: "png", Data: []byte("broken")},
		{ObjNr: 2, PageNr: 1, FileType: "png", Data: pngBytes(t, 4, 4)},
	}

	out := e.normalizeAll(context.Background(), raws, NormalizeSimple)

	require.Len(t, out, 1)
	assert.Equal(t, "img_p1_obj2.png", out[0].Identity)
	assert.Equal(t, 0, out[0].Position)
}

func TestNormalizeAllRobustModeRecoversBMP(t *testing.T) {
	e := NewImageExtractor(nil, nil)
	raws := []rawImage{
		{ObjNr: 3, PageNr: 1, FileType: "bmp", Data: bmpBytes(t, 4, 4)},
	}

	// Simple mode cannot use a BMP; robust mode re-encodes it.
	assert.Empty(t, e.normalizeAll(context.Background(), raws, NormalizeSimple))

	out := e.normalizeAll(context.Background(), raws, NormalizeRobust)
	require.Len(t, out, 1)
	assert.Equal(t, "img_p1_obj3.bmp", out[0].Identity)
	assert.NotEmpty(t, out[0].Data)
}

func TestNormalizeAllStopsOnCancelledContext(t *testing.T) {
	e := NewImageExtractor(nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := e.normalizeAll(ctx, []rawImage{
		{ObjNr: 1, PageNr: 1, FileType: "png", Data: pngBytes(t, 4, 4)},
	}, NormalizeSimple)
	assert.Empty(t, out)
}
