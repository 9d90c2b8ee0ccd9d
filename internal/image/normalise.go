package image

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// SampleSize is the edge length of the grid every image is resized to before
// colours are counted.
const SampleSize = 50

// ToRGB converts any image to an opaque, non-premultiplied RGB bitmap with
// its origin at (0, 0). Alpha is discarded rather than composited, so a
// semi-transparent pixel keeps its straight colour values. Palette images are
// expanded to their palette colours.
func ToRGB(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			c.A = 0xff
			dst.SetNRGBA(x-bounds.Min.X, y-bounds.Min.Y, c)
		}
	}

	return dst
}

// Resize scales src to width x height using Catmull-Rom (bicubic)
// resampling.
func Resize(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Normalise converts src to opaque RGB and resizes it to a
// SampleSize x SampleSize grid.
func Normalise(src image.Image) (*image.RGBA, error) {
	if src == nil {
		return nil, errors.New("image cannot be nil")
	}
	if src.Bounds().Empty() {
		return nil, errors.New("image has no pixels")
	}
	return Resize(ToRGB(src), SampleSize, SampleSize), nil
}
