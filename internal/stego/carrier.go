package stego

import (
	"image"
	"image/draw"
	"slices"
)

// NewCarrier allocates an opaque black carrier of the given size.
func NewCarrier(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	opaque(img)
	return img
}

// ToCarrier converts src to a non-premultiplied carrier with the same bounds.
// Alpha is forced to fully opaque so that only the colour channels carry
// meaning, matching an RGB conversion.
func ToCarrier(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		dst := clone(n)
		opaque(dst)
		return dst
	}

	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	opaque(dst)
	return dst
}

func opaque(img *image.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.PixOffset(b.Min.X, y)
		for x := 0; x < b.Dx(); x++ {
			img.Pix[row+x*4+3] = 0xff
		}
	}
}

func clone(img *image.NRGBA) *image.NRGBA {
	return &image.NRGBA{
		Pix:    slices.Clone(img.Pix),
		Stride: img.Stride,
		Rect:   img.Rect,
	}
}
