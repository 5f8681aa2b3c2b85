package stego

import (
	"encoding/binary"
	"image"
	"math"
)

const (
	// LengthPrefixBits is the size of the big-endian payload length prefix.
	LengthPrefixBits = 32
	// BitsPerPixel is the number of embeddable bits per pixel (R, G, B).
	BitsPerPixel = 3
	// MaxPayloadSize is the largest payload the length prefix can describe.
	MaxPayloadSize = math.MaxUint32
)

// channels addresses colour channels of an image by bit position.
type channels struct {
	img   *image.NRGBA
	width int
}

func newChannels(img *image.NRGBA) channels {
	return channels{img: img, width: img.Rect.Dx()}
}

// offset returns the Pix index of the channel holding bit i.
func (c channels) offset(i int64) int {
	p := int(i / BitsPerPixel)
	x := c.img.Rect.Min.X + p%c.width
	y := c.img.Rect.Min.Y + p/c.width
	return c.img.PixOffset(x, y) + int(i%BitsPerPixel)
}

func (c channels) bit(i int64) byte {
	return c.img.Pix[c.offset(i)] & 1
}

func (c channels) setBit(i int64, bit byte) {
	off := c.offset(i)
	c.img.Pix[off] = c.img.Pix[off]&^1 | bit
}

// Capacity returns the number of embeddable bits in img.
func Capacity(img image.Image) int64 {
	r := img.Bounds()
	if r.Empty() {
		return 0
	}
	return int64(r.Dx()) * int64(r.Dy()) * BitsPerPixel
}

// RequiredBits returns the number of bits needed to embed n payload bytes.
func RequiredBits(n int64) int64 {
	return LengthPrefixBits + n*8
}

// MaxPayload returns the largest payload in bytes that fits in img, or -1
// when img cannot hold the length prefix and so cannot carry even an empty
// payload.
func MaxPayload(img image.Image) int64 {
	avail := Capacity(img) - LengthPrefixBits
	if avail < 0 {
		return -1
	}
	return min(avail/8, MaxPayloadSize)
}

// Embed returns a copy of img with data hidden in its channel LSBs.
// The capacity check runs before anything is written; img itself is never
// modified.
func Embed(img *image.NRGBA, data []byte) (*image.NRGBA, error) {
	need := RequiredBits(int64(len(data)))
	have := Capacity(img)
	if need > have || int64(len(data)) > MaxPayloadSize {
		return nil, &CapacityError{Need: need, Have: have}
	}

	var prefix [LengthPrefixBits / 8]byte
	binary.BigEndian.PutUint32(prefix[:], uint32(len(data)))

	out := clone(img)
	ch := newChannels(out)

	var i int64
	for _, chunk := range [][]byte{prefix[:], data} {
		for _, b := range chunk {
			for shift := 7; shift >= 0; shift-- {
				ch.setBit(i, (b>>shift)&1)
				i++
			}
		}
	}

	return out, nil
}

// Extract reads a payload written by Embed. The declared length is checked
// against the carrier's capacity before any payload bit is read.
func Extract(img *image.NRGBA) ([]byte, error) {
	have := Capacity(img)
	if have < LengthPrefixBits {
		return nil, &TruncatedError{Available: have}
	}

	ch := newChannels(img)
	readByte := func(start int64) byte {
		var b byte
		for j := int64(0); j < 8; j++ {
			b = b<<1 | ch.bit(start+j)
		}
		return b
	}

	var prefix [LengthPrefixBits / 8]byte
	for k := range prefix {
		prefix[k] = readByte(int64(k) * 8)
	}
	declared := int64(binary.BigEndian.Uint32(prefix[:]))

	if RequiredBits(declared) > have {
		return nil, &TruncatedError{Declared: declared, Available: have}
	}

	data := make([]byte, declared)
	for k := range data {
		data[k] = readByte(LengthPrefixBits + int64(k)*8)
	}

	return data, nil
}
