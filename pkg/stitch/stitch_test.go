package stitch_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/gitoon/gitoon/pkg/domain/model"
	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/gitoon/gitoon/pkg/stitch"
	"github.com/m-mizutani/gt"
)

func solidPNG(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	gt.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func pixelAt(t *testing.T, img image.Image, x, y int) color.RGBA {
	t.Helper()
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestHorizontal(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	t.Run("two panels with uneven heights", func(t *testing.T) {
		panels := []model.RenderedPanel{
			{Index: 1, Data: solidPNG(t, 3, 2, red)},
			{Index: 2, Data: solidPNG(t, 2, 4, blue)},
		}

		out := gt.R1(stitch.Horizontal(panels, stitch.WithGap(5))).NoError(t)
		composed := gt.R1(png.Decode(bytes.NewReader(out))).NoError(t)

		// width: 3 + 5 + 2, height: max(2, 4)
		gt.V(t, composed.Bounds().Dx()).Equal(10)
		gt.V(t, composed.Bounds().Dy()).Equal(4)

		gt.V(t, pixelAt(t, composed, 0, 0)).Equal(red)
		gt.V(t, pixelAt(t, composed, 2, 1)).Equal(red)
		gt.V(t, pixelAt(t, composed, 8, 0)).Equal(blue)
		gt.V(t, pixelAt(t, composed, 9, 3)).Equal(blue)

		// gap stays white, and so does the area below the short panel
		gt.V(t, pixelAt(t, composed, 4, 1)).Equal(white)
		gt.V(t, pixelAt(t, composed, 1, 3)).Equal(white)
	})

	t.Run("width follows panel count", func(t *testing.T) {
		threePanels := []model.RenderedPanel{
			{Index: 1, Data: solidPNG(t, 4, 3, red)},
			{Index: 2, Data: solidPNG(t, 4, 3, blue)},
			{Index: 3, Data: solidPNG(t, 4, 3, red)},
		}

		out := gt.R1(stitch.Horizontal(threePanels)).NoError(t)
		composed := gt.R1(png.Decode(bytes.NewReader(out))).NoError(t)
		gt.V(t, composed.Bounds().Dx()).Equal(4*3 + stitch.DefaultGap*2)
	})

	t.Run("panel order is preserved", func(t *testing.T) {
		panels := []model.RenderedPanel{
			{Index: 2, Data: solidPNG(t, 2, 2, blue)},
			{Index: 4, Data: solidPNG(t, 2, 2, red)},
		}

		out := gt.R1(stitch.Horizontal(panels, stitch.WithGap(1))).NoError(t)
		composed := gt.R1(png.Decode(bytes.NewReader(out))).NoError(t)
		gt.V(t, pixelAt(t, composed, 0, 0)).Equal(blue)
		gt.V(t, pixelAt(t, composed, 4, 0)).Equal(red)
	})

	t.Run("jpeg panels are decodable", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 4, 4))
		var buf bytes.Buffer
		gt.NoError(t, jpeg.Encode(&buf, img, nil))

		panels := []model.RenderedPanel{
			{Index: 1, Data: buf.Bytes()},
			{Index: 2, Data: solidPNG(t, 4, 4, red)},
		}

		out := gt.R1(stitch.Horizontal(panels, stitch.WithGap(2))).NoError(t)
		composed := gt.R1(png.Decode(bytes.NewReader(out))).NoError(t)
		gt.V(t, composed.Bounds().Dx()).Equal(10)
	})

	t.Run("single panel is rejected", func(t *testing.T) {
		panels := []model.RenderedPanel{
			{Index: 1, Data: solidPNG(t, 2, 2, red)},
		}

		_, err := stitch.Horizontal(panels)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrNotEnoughPanels))
	})

	t.Run("broken panel bytes are rejected", func(t *testing.T) {
		panels := []model.RenderedPanel{
			{Index: 1, Data: []byte("not an image")},
			{Index: 2, Data: solidPNG(t, 2, 2, red)},
		}

		_, err := stitch.Horizontal(panels)
		gt.Error(t, err)
	})
}
