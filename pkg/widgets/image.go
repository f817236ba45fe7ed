package widgets

import (
	"github.com/go-drift/strata/pkg/core"
	"github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/render"
)

// Default image size when the config leaves it unset.
const defaultImageSize = 100

// ImageConfig configures an Image.
type ImageConfig struct {
	ID     string
	Path   string
	Width  float64
	Height float64
}

// Image draws a picture loaded through the surface. When loading fails it
// draws a placeholder fill instead and reports the failure once.
type Image struct {
	core.Base
	config ImageConfig
	handle render.ImageHandle
	failed bool
}

// NewImage returns an Image.
func NewImage(cfg ImageConfig) *Image {
	return &Image{Base: core.NewBase(cfg.ID), config: cfg}
}

// Failed reports whether the last load attempt failed.
func (img *Image) Failed() bool { return img.failed }

func (img *Image) Layout(available graphics.Rect) graphics.Size {
	size := graphics.Size{Width: img.config.Width, Height: img.config.Height}
	if size.Width <= 0 {
		size.Width = defaultImageSize
	}
	if size.Height <= 0 {
		size.Height = defaultImageSize
	}
	img.SetBounds(graphics.RectFromPosSize(available.Sanitize().Position(), size))
	return size
}

func (img *Image) Render(pc *core.PaintContext) {
	if !img.handle.Valid() && !img.failed {
		img.load(pc.Surface)
	}
	if img.failed {
		bounds := img.Bounds()
		pc.Surface.DrawFilledRect(bounds, pc.Theme.Colors.DisabledBackground)
		pc.Surface.DrawStrokedRect(bounds, pc.Theme.Colors.Danger, 1)
		return
	}
	pc.Surface.DrawImage(img.Bounds(), img.handle)
}

func (img *Image) load(s render.Surface) {
	h, err := s.LoadImage(img.config.Path)
	if err != nil {
		img.failed = true
		errors.Report(&errors.Error{
			Op:      "widgets.Image.Render",
			Kind:    errors.KindResource,
			Subject: img.config.Path,
			Err:     err,
		})
		return
	}
	img.handle = h
}
