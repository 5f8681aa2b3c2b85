// Package imageio loads and stores carrier images losslessly.
//
// Only PNG is accepted. JPEG is lossy and GIF is palettised; both destroy
// least-significant-bit payloads, so they are rejected instead of silently
// producing an unreadable carrier.
package imageio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/prajithravisankar/cbess/internal/stego"
)

// ErrUnsupportedFormat is returned for any input that is not a PNG image.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format identifies an image encoding by its magic bytes.
type Format string

const (
	FormatPNG     Format = "png"
	FormatJPEG    Format = "jpeg"
	FormatGIF     Format = "gif"
	FormatBMP     Format = "bmp"
	FormatWebP    Format = "webp"
	FormatUnknown Format = "unknown"
)

var signatures = []struct {
	magic  []byte
	format Format
}{
	{[]byte("\x89PNG\r\n\x1a\n"), FormatPNG},
	{[]byte{0xff, 0xd8, 0xff}, FormatJPEG},
	{[]byte("GIF87a"), FormatGIF},
	{[]byte("GIF89a"), FormatGIF},
	{[]byte("BM"), FormatBMP},
	{[]byte("RIFF"), FormatWebP},
}

// Sniff reports the format of an encoded image from its leading bytes.
func Sniff(header []byte) Format {
	for _, s := range signatures {
		if bytes.HasPrefix(header, s.magic) {
			return s.format
		}
	}
	return FormatUnknown
}

// Decode reads a PNG image from r and converts it to a carrier.
func Decode(r io.Reader) (*image.NRGBA, error) {
	br := bufio.NewReader(r)

	header, err := br.Peek(8)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read image header: %w", err)
	}

	switch f := Sniff(header); f {
	case FormatPNG:
	case FormatJPEG:
		return nil, fmt.Errorf("%w: %s is lossy and cannot carry LSB data", ErrUnsupportedFormat, f)
	case FormatGIF:
		return nil, fmt.Errorf("%w: %s is palettised and cannot carry LSB data", ErrUnsupportedFormat, f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}

	img, err := png.Decode(br)
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}

	return stego.ToCarrier(img), nil
}

// Encode writes img to w as a PNG.
func Encode(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Load reads the PNG at path and converts it to a carrier.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Save writes img to path as a PNG. The data goes to a temporary file in the
// same directory first and is renamed into place, so a failed write never
// leaves a partial carrier behind.
func Save(path string, img image.Image) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, img); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
