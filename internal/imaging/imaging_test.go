package imaging

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestToWebP_Downscales(t *testing.T) {
	out, err := ToWebP(pngOf(t, 3200, 800))
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not webp: %v", err)
	}
	if cfg.Width != MaxWidth || cfg.Height != 400 {
		t.Errorf("expected %dx400, got %dx%d", MaxWidth, cfg.Width, cfg.Height)
	}
}

func TestToWebP_KeepsSmallImages(t *testing.T) {
	out, err := ToWebP(pngOf(t, 100, 50))
	if err != nil {
		t.Fatal(err)
	}
	cfg, _ := webp.DecodeConfig(bytes.NewReader(out))
	if cfg.Width != 100 || cfg.Height != 50 {
		t.Errorf("unexpected size %dx%d", cfg.Width, cfg.Height)
	}
}

func TestToWebP_RejectsGarbage(t *testing.T) {
	if _, err := ToWebP([]byte("not an image")); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

// pngHeader returns only the signature and IHDR chunk of a PNG claiming
// the given dimensions, which is all DecodeConfig reads.
func pngHeader(w, h uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], w)
	binary.BigEndian.PutUint32(ihdr[4:], h)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // RGBA

	chunk := append([]byte("IHDR"), ihdr...)
	binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	buf.Write(chunk)
	binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func TestToWebP_RejectsHugeDimensions(t *testing.T) {
	if _, err := ToWebP(pngHeader(20000, 20000)); !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
}
