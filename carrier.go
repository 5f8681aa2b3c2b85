package cbess

import (
	"image"
	"io"

	"github.com/prajithravisankar/cbess/internal/imageio"
	"github.com/prajithravisankar/cbess/internal/stego"
)

// NewCarrier allocates an opaque black carrier image.
func NewCarrier(width, height int) *image.NRGBA {
	return stego.NewCarrier(width, height)
}

// ToCarrier converts any image to a carrier, keeping its colour channels and
// making it fully opaque.
func ToCarrier(img image.Image) *image.NRGBA {
	return stego.ToCarrier(img)
}

func asCarrier(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	return stego.ToCarrier(img)
}

// Capacity returns the number of bits img can hide, including the 32-bit
// length prefix.
func Capacity(img image.Image) int64 {
	return stego.Capacity(img)
}

// MaxPayload returns the largest payload in bytes that fits in img. It
// returns -1 for images with fewer bits than the 32-bit length prefix.
func MaxPayload(img image.Image) int64 {
	return stego.MaxPayload(img)
}

// Embed returns a copy of img with data hidden in its least significant bits.
// img is never modified. If data does not fit, Embed returns a *CapacityError.
func Embed(img image.Image, data []byte) (*image.NRGBA, error) {
	return stego.Embed(asCarrier(img), data)
}

// Extract returns the payload hidden in img by Embed. A length prefix larger
// than the image can back yields a *TruncatedError.
func Extract(img image.Image) ([]byte, error) {
	return stego.Extract(asCarrier(img))
}

// DecodeImage reads a PNG carrier from r.
func DecodeImage(r io.Reader) (*image.NRGBA, error) {
	return imageio.Decode(r)
}

// EncodeImage writes img to w as a PNG.
func EncodeImage(w io.Writer, img image.Image) error {
	return imageio.Encode(w, img)
}

// LoadImage reads the PNG carrier at path.
func LoadImage(path string) (*image.NRGBA, error) {
	return imageio.Load(path)
}

// SaveImage writes img to path as a PNG, replacing any existing file atomically.
func SaveImage(path string, img image.Image) error {
	return imageio.Save(path, img)
}
