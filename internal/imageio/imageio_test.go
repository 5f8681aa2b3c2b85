package imageio

import (
	"bytes"
	"crypto/rand"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/prajithravisankar/cbess/internal/stego"
)

func noisyCarrier(t *testing.T, w, h int) *image.NRGBA {
	t.Helper()
	img := stego.NewCarrier(w, h)
	for i := range img.Pix {
		if i%4 == 3 {
			continue
		}
		var b [1]byte
		if _, err := rand.Read(b[:]); err != nil {
			t.Fatal(err)
		}
		img.Pix[i] = b[0]
	}
	return img
}

func TestSniff(t *testing.T) {
	tests := []struct {
		name   string
		header []byte
		want   Format
	}{
		{"png", []byte("\x89PNG\r\n\x1a\n"), FormatPNG},
		{"jpeg", []byte{0xff, 0xd8, 0xff, 0xe0}, FormatJPEG},
		{"gif87", []byte("GIF87a.."), FormatGIF},
		{"gif89", []byte("GIF89a.."), FormatGIF},
		{"bmp", []byte("BM......"), FormatBMP},
		{"webp", []byte("RIFF....WEBP"), FormatWebP},
		{"empty", nil, FormatUnknown},
		{"text", []byte("hello"), FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sniff(tt.header); got != tt.want {
				t.Errorf("Sniff() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEncodeDecode_BitExact(t *testing.T) {
	img := noisyCarrier(t, 31, 17)

	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if got.Bounds() != img.Bounds() {
		t.Fatalf("bounds = %v, want %v", got.Bounds(), img.Bounds())
	}
	if !bytes.Equal(got.Pix, img.Pix) {
		t.Error("pixels changed across a PNG round trip")
	}
}

func TestEncodeDecode_PreservesPayload(t *testing.T) {
	carrier, err := stego.Embed(noisyCarrier(t, 40, 40), []byte("e4 e5 Nf3"))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, carrier); err != nil {
		t.Fatal(err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}

	got, err := stego.Extract(decoded)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "e4 e5 Nf3" {
		t.Errorf("payload = %q", got)
	}
}

func TestDecode_RejectsLossyFormats(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	src.Set(1, 1, color.RGBA{255, 0, 0, 255})

	var jpg bytes.Buffer
	if err := jpeg.Encode(&jpg, src, nil); err != nil {
		t.Fatal(err)
	}
	var gf bytes.Buffer
	if err := gif.Encode(&gf, src, nil); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"jpeg", jpg.Bytes()},
		{"gif", gf.Bytes()},
		{"empty", nil},
		{"garbage", []byte("not an image at all")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("expected ErrUnsupportedFormat, got %v", err)
			}
		})
	}
}

func TestDecode_CorruptPNG(t *testing.T) {
	data := append([]byte("\x89PNG\r\n\x1a\n"), 0x00, 0x01, 0x02)

	_, err := Decode(bytes.NewReader(data))
	if err == nil {
		t.Fatal("expected error for corrupt PNG")
	}
	if errors.Is(err, ErrUnsupportedFormat) {
		t.Error("corrupt PNG reported as unsupported format")
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cipher_board.png")
	img := noisyCarrier(t, 12, 9)

	if err := Save(path, img); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !bytes.Equal(got.Pix, img.Pix) {
		t.Error("pixels changed across Save/Load")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1 (no temp files left)", len(entries))
	}
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key_board.png")

	if err := Save(path, stego.NewCarrier(2, 2)); err != nil {
		t.Fatal(err)
	}
	if err := Save(path, stego.NewCarrier(3, 3)); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds().Dx() != 3 {
		t.Errorf("width = %d, want 3", got.Bounds().Dx())
	}
}

func TestSave_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	if err := Save(path, stego.NewCarrier(1, 1)); err == nil {
		t.Error("expected error saving into a missing directory")
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "nope.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}

	jpgPath := filepath.Join(dir, "photo.png")
	var jpg bytes.Buffer
	if err := jpeg.Encode(&jpg, image.NewRGBA(image.Rect(0, 0, 4, 4)), nil); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(jpgPath, jpg.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(jpgPath); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat for JPEG named .png, got %v", err)
	}
}
