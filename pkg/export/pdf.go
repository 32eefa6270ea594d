package export

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"math"

	"github.com/signintech/gopdf"
)

// A4 page box in PDF points.
const (
	pageWidthPt  = 595.28
	pageHeightPt = 841.89
)

// pageSlice is one horizontal band of the source image, in pixels.
type pageSlice struct {
	Y, H int
}

// slicePlan cuts an image of imgHeight pixels into full pages plus one
// shorter trailing page. A zero or negative height yields no pages.
func slicePlan(imgHeight, pageHeightPx int) []pageSlice {
	if imgHeight <= 0 || pageHeightPx <= 0 {
		return nil
	}
	var plan []pageSlice
	for y := 0; y < imgHeight; y += pageHeightPx {
		h := pageHeightPx
		if rest := imgHeight - y; rest < h {
			h = rest
		}
		plan = append(plan, pageSlice{Y: y, H: h})
	}
	return plan
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// BuildPDF slices a full-height page screenshot into A4 pages. Every page
// but the last is exactly A4; the last is shortened to the remaining
// content so no trailing whitespace is emitted.
func BuildPDF(screenshot []byte) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(screenshot))
	if err != nil {
		return nil, err
	}
	src, ok := img.(subImager)
	if !ok {
		return nil, errors.New("screenshot image does not support slicing")
	}

	bounds := img.Bounds()
	pxPerPt := float64(bounds.Dx()) / pageWidthPt
	pageHeightPx := int(math.Floor(pageHeightPt * pxPerPt))

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})

	for _, s := range slicePlan(bounds.Dy(), pageHeightPx) {
		rect := image.Rect(bounds.Min.X, bounds.Min.Y+s.Y, bounds.Max.X, bounds.Min.Y+s.Y+s.H)
		var sliceBuf bytes.Buffer
		if err := png.Encode(&sliceBuf, src.SubImage(rect)); err != nil {
			return nil, err
		}

		heightPt := float64(s.H) / pxPerPt
		pdf.AddPageWithOption(gopdf.PageOption{
			PageSize: &gopdf.Rect{W: pageWidthPt, H: heightPt},
		})
		holder, err := gopdf.ImageHolderByBytes(sliceBuf.Bytes())
		if err != nil {
			return nil, err
		}
		if err := pdf.ImageByHolder(holder, 0, 0, &gopdf.Rect{W: pageWidthPt, H: heightPt}); err != nil {
			return nil, err
		}
	}

	return pdf.GetBytesPdfReturnErr()
}
