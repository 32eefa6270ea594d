package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlicePlan(t *testing.T) {
	t.Run("zero height yields zero pages", func(t *testing.T) {
		assert.Nil(t, slicePlan(0, 100))
		assert.Nil(t, slicePlan(-5, 100))
	})

	t.Run("exact multiple", func(t *testing.T) {
		assert.Equal(t, []pageSlice{{Y: 0, H: 100}, {Y: 100, H: 100}}, slicePlan(200, 100))
	})

	t.Run("trailing partial page keeps natural height", func(t *testing.T) {
		assert.Equal(t, []pageSlice{{Y: 0, H: 100}, {Y: 100, H: 30}}, slicePlan(130, 100))
	})

	t.Run("shorter than one page", func(t *testing.T) {
		assert.Equal(t, []pageSlice{{Y: 0, H: 60}}, slicePlan(60, 100))
	})
}

func TestBuildPDF(t *testing.T) {
	// 1190px wide is exactly 2px per point; 3000px tall spans two pages.
	img := image.NewRGBA(image.Rect(0, 0, 1190, 3000))
	for y := 0; y < 3000; y++ {
		for x := 0; x < 1190; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	out, err := BuildPDF(buf.Bytes())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output should be a PDF")
	assert.NotEmpty(t, out)
}

func TestBuildPDFRejectsGarbage(t *testing.T) {
	_, err := BuildPDF([]byte("not a png"))
	assert.Error(t, err)
}
