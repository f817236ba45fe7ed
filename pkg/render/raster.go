package render

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/strata/pkg/graphics"
)

// Raster is a Surface backed by an RGBA image. Text is drawn with a fixed
// bitmap face regardless of the requested font size.
type Raster struct {
	img    *image.RGBA
	face   font.Face
	images []image.Image
	paths  map[string]ImageHandle
}

// NewRaster allocates a width x height surface.
func NewRaster(width, height int) *Raster {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Raster{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		face:  basicfont.Face7x13,
		paths: make(map[string]ImageHandle),
	}
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Size() graphics.Size {
	b := r.img.Bounds()
	return graphics.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (r *Raster) Clear(c graphics.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

func (r *Raster) DrawFilledRect(rect graphics.Rect, c graphics.Color) {
	draw.Draw(r.img, pixelRect(rect), image.NewUniform(c.NRGBA()), image.Point{}, draw.Over)
}

func (r *Raster) DrawStrokedRect(rect graphics.Rect, c graphics.Color, width float64) {
	if width <= 0 {
		return
	}
	w := width
	r.DrawFilledRect(graphics.Rect{X: rect.X, Y: rect.Y, Width: rect.Width, Height: w}, c)
	r.DrawFilledRect(graphics.Rect{X: rect.X, Y: rect.Bottom() - w, Width: rect.Width, Height: w}, c)
	r.DrawFilledRect(graphics.Rect{X: rect.X, Y: rect.Y + w, Width: w, Height: rect.Height - 2*w}, c)
	r.DrawFilledRect(graphics.Rect{X: rect.Right() - w, Y: rect.Y + w, Width: w, Height: rect.Height - 2*w}, c)
}

func (r *Raster) DrawText(text string, pos graphics.Vec2, style graphics.TextStyle) {
	ascent := r.face.Metrics().Ascent
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(style.Color.NRGBA()),
		Face: r.face,
		Dot:  fixed.Point26_6{X: fixed.I(int(math.Round(pos.X))), Y: fixed.I(int(math.Round(pos.Y))) + ascent},
	}
	d.DrawString(text)
}

func (r *Raster) DrawImage(rect graphics.Rect, h ImageHandle) {
	if !h.Valid() || int(h) > len(r.images) {
		return
	}
	src := r.images[h-1]
	draw.BiLinear.Scale(r.img, pixelRect(rect), src, src.Bounds(), draw.Over, nil)
}

func (r *Raster) LoadImage(path string) (ImageHandle, error) {
	if h, ok := r.paths[path]; ok {
		return h, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return 0, fmt.Errorf("decode %s: %w", path, err)
	}
	r.images = append(r.images, img)
	h := ImageHandle(len(r.images))
	r.paths[path] = h
	return h, nil
}

// EncodePNG writes the surface contents as a PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

func pixelRect(rect graphics.Rect) image.Rectangle {
	rect = rect.Sanitize()
	return image.Rect(
		int(math.Floor(rect.X)),
		int(math.Floor(rect.Y)),
		int(math.Ceil(rect.Right())),
		int(math.Ceil(rect.Bottom())),
	)
}
