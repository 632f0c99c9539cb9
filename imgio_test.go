package subtxt

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG encodes img to a fresh file under dir and returns its path.
func writeTestPNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %v: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding %v: %v", path, err)
	}
	return path
}

// transparentNRGBA returns a w x h image whose top half is fully transparent
// (carrier pixels) and bottom half opaque.
func transparentNRGBA(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := uint8(0)
			if y >= h/2 {
				a = 255
			}
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 3), G: uint8(y * 5), B: 9, A: a})
		}
	}
	return img
}

func TestLoadImagePNG(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "in.png", transparentNRGBA(8, 4))

	buf, err := LoadImage(path, OutputNothing)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if buf.W != 8 || buf.H != 4 {
		t.Fatalf("dimensions: got %dx%d, want 8x4", buf.W, buf.H)
	}
	if buf.Model != ModelRGBA8 {
		t.Fatalf("model: got %v, want %v", buf.Model, ModelRGBA8)
	}
	if got := len(buf.Carriers()); got != 16 {
		t.Fatalf("carriers: got %d, want 16", got)
	}
}

func TestLoadImageConvertsOtherModels(t *testing.T) {
	dir := t.TempDir()
	gray := image.NewGray(image.Rect(0, 0, 6, 6))
	path := writeTestPNG(t, dir, "gray.png", gray)

	buf, err := LoadImage(path, OutputNothing)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if buf.Model != ModelUnknown {
		t.Fatalf("model: got %v, want %v", buf.Model, ModelUnknown)
	}
	if _, ok := buf.AvailableBytes(); ok {
		t.Fatal("a converted image must report no available bytes")
	}
}

func TestLoadImage16BitDownconversion(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA64(image.Rect(0, 0, 2, 2))
	img.SetNRGBA64(0, 0, color.NRGBA64{R: 0xab12, G: 0x34cd, B: 0x5678, A: 0xffff})
	path := writeTestPNG(t, dir, "deep.png", img)

	buf, err := LoadImage(path, OutputNothing)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if buf.Model != ModelUnknown {
		t.Fatalf("model: got %v, want %v", buf.Model, ModelUnknown)
	}
	if buf.Data[0] != 0xab || buf.Data[1] != 0x34 || buf.Data[2] != 0x56 || buf.Data[3] != 0xff {
		t.Fatalf("first pixel: got %v, want [ab 34 56 ff]", buf.Data[:4])
	}
}

func TestImageRoundTrip(t *testing.T) {
	payload := makePayload(40)

	for _, name := range []string{"out.png", "out.tiff"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			buf := makeTransparent(t, 8, 8)
			if err := buf.Hide(payload, false); err != nil {
				t.Fatalf("Hide: %v", err)
			}

			path := filepath.Join(dir, name)
			if err := WriteImage(buf, path, true, OutputNothing); err != nil {
				t.Fatalf("WriteImage: %v", err)
			}

			loaded, err := LoadImage(path, OutputNothing)
			if err != nil {
				t.Fatalf("LoadImage: %v", err)
			}
			if loaded.Model != ModelRGBA8 {
				t.Fatalf("model after round trip: got %v, want %v", loaded.Model, ModelRGBA8)
			}

			got, err := loaded.Dig()
			if err != nil {
				t.Fatalf("Dig: %v", err)
			}
			if !bytes.Equal(got, payload) {
				t.Fatal("payload did not survive the image round trip")
			}
		})
	}
}

func TestWriteImageRefusesLossyFormatsWhenEmbedded(t *testing.T) {
	dir := t.TempDir()
	buf := makeTransparent(t, 4, 4)

	for _, name := range []string{"out.jpg", "out.jpeg", "out.bmp"} {
		path := filepath.Join(dir, name)
		err := WriteImage(buf, path, true, OutputNothing)

		var target *UnsupportedFormatError
		if !errors.As(err, &target) {
			t.Fatalf("%v: got %v, want an UnsupportedFormatError", name, err)
		}
		if _, serr := os.Stat(path); !os.IsNotExist(serr) {
			t.Fatalf("%v was created despite the format being refused", name)
		}
	}
}

func TestWriteImageUnknownExtension(t *testing.T) {
	buf := makeTransparent(t, 4, 4)
	err := WriteImage(buf, filepath.Join(t.TempDir(), "out.xyz"), false, OutputNothing)

	var target *UnsupportedFormatError
	if !errors.As(err, &target) {
		t.Fatalf("got %v, want an UnsupportedFormatError", err)
	}
}

func TestWriteImageLossyFormatsWithoutEmbedding(t *testing.T) {
	dir := t.TempDir()
	buf := makeTransparent(t, 4, 4)
	buf.MaxAlpha()

	for _, name := range []string{"out.bmp", "out.jpg"} {
		path := filepath.Join(dir, name)
		if err := WriteImage(buf, path, false, OutputNothing); err != nil {
			t.Fatalf("WriteImage %v: %v", name, err)
		}
		loaded, err := LoadImage(path, OutputNothing)
		if err != nil {
			t.Fatalf("LoadImage %v: %v", name, err)
		}
		if loaded.W != 4 || loaded.H != 4 {
			t.Fatalf("%v dimensions: got %dx%d, want 4x4", name, loaded.W, loaded.H)
		}
	}
}
