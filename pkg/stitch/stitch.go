package stitch

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"

	_ "image/jpeg"

	"github.com/gitoon/gitoon/pkg/domain/model"
	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultGap is the pixel gap between adjacent panels.
const DefaultGap = 20

type config struct {
	gap int
}

type Option func(*config)

// WithGap overrides the pixel gap between panels.
func WithGap(px int) Option {
	return func(c *config) {
		c.gap = px
	}
}

// Horizontal composes rendered panels side by side on a white canvas, in
// panel order. The canvas width follows the panels that actually rendered,
// the height follows the tallest panel, and shorter panels are top-aligned
// without scaling. The result is PNG encoded.
func Horizontal(panels []model.RenderedPanel, opts ...Option) ([]byte, error) {
	cfg := &config{gap: DefaultGap}
	for _, opt := range opts {
		opt(cfg)
	}

	if len(panels) < model.MinViablePanels {
		return nil, goerr.Wrap(types.ErrNotEnoughPanels, "compositor needs at least 2 panels",
			goerr.V("panels", len(panels)),
		)
	}

	images := make([]image.Image, len(panels))
	var width, height int
	for i, panel := range panels {
		img, _, err := image.Decode(bytes.NewReader(panel.Data))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to decode panel image", goerr.V("panel", panel.Index))
		}
		images[i] = img

		size := img.Bounds().Size()
		width += size.X
		if size.Y > height {
			height = size.Y
		}
	}
	width += cfg.gap * (len(panels) - 1)

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	x := 0
	for _, img := range images {
		size := img.Bounds().Size()
		draw.Draw(canvas, image.Rect(x, 0, x+size.X, size.Y), img, img.Bounds().Min, draw.Src)
		x += size.X + cfg.gap
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, goerr.Wrap(err, "failed to encode strip image")
	}

	return buf.Bytes(), nil
}
