package image

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestReadable(t *testing.T) {
	tests := []struct {
		name    string
		bm      *Bitmap
		wantErr bool
	}{
		{"nil bitmap", nil, true},
		{"nil data", &Bitmap{Width: 2, Height: 2, Stride: 8, BytesPerPixel: 4}, true},
		{"zero bpp", &Bitmap{Width: 2, Height: 2, Stride: 8, Data: make([]byte, 16)}, true},
		{"short stride", &Bitmap{Width: 2, Height: 2, Stride: 4, BytesPerPixel: 4, Data: make([]byte, 16)}, true},
		{"short buffer", &Bitmap{Width: 2, Height: 2, Stride: 8, BytesPerPixel: 4, Data: make([]byte, 15)}, true},
		{"exact buffer", &Bitmap{Width: 2, Height: 2, Stride: 8, BytesPerPixel: 4, Data: make([]byte, 16)}, false},
		{"padded last row not required", &Bitmap{Width: 2, Height: 2, Stride: 12, BytesPerPixel: 4, Data: make([]byte, 20)}, false},
		{"empty image", &Bitmap{Width: 0, Height: 0, BytesPerPixel: 4, Data: []byte{}}, false},
		{"row overflows int", &Bitmap{Width: math.MaxInt/2 + 1, Height: 1, Stride: 8, BytesPerPixel: 4, Data: make([]byte, 16)}, true},
		{"rows overflow int", &Bitmap{Width: 1, Height: math.MaxInt, Stride: 4, BytesPerPixel: 4, Data: make([]byte, 16)}, true},
		{"stride overflows int", &Bitmap{Width: 1, Height: 3, Stride: math.MaxInt/2 + 1, BytesPerPixel: 4, Data: make([]byte, 16)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bm.Readable()
			if (err != nil) != tt.wantErr {
				t.Errorf("Readable() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRGBASampleLayouts(t *testing.T) {
	tests := []struct {
		name       string
		bpp        int
		data       []byte
		r, g, b, a uint8
	}{
		{"rgba", 4, []byte{1, 2, 3, 4}, 1, 2, 3, 4},
		{"rgbx with padding", 5, []byte{1, 2, 3, 4, 9}, 1, 2, 3, 4},
		{"rgb", 3, []byte{1, 2, 3}, 1, 2, 3, 255},
		{"gray alpha", 2, []byte{7, 8}, 7, 7, 7, 8},
		{"gray", 1, []byte{7}, 7, 7, 7, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm := &Bitmap{Width: 1, Height: 1, Stride: tt.bpp, BytesPerPixel: tt.bpp, Data: tt.data}
			r, g, b, a := bm.RGBA(0, 0)
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("RGBA = (%d, %d, %d, %d), want (%d, %d, %d, %d)", r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func TestFromImageModels(t *testing.T) {
	rect := image.Rect(0, 0, 3, 2)
	tests := []struct {
		name  string
		img   image.Image
		model ColorModel
		bpp   int
	}{
		{"gray", image.NewGray(rect), ModelMonochrome, 1},
		{"cmyk", image.NewCMYK(rect), ModelCMYK, 4},
		{"rgba", image.NewRGBA(rect), ModelRGB, 4},
		{"nrgba", image.NewNRGBA(rect), ModelRGB, 4},
		{"paletted", image.NewPaletted(rect, color.Palette{color.Black, color.White}), ModelRGB, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm := FromImage(tt.img)
			if bm.Model != tt.model {
				t.Errorf("Model = %v, want %v", bm.Model, tt.model)
			}
			if bm.BytesPerPixel != tt.bpp {
				t.Errorf("BytesPerPixel = %d, want %d", bm.BytesPerPixel, tt.bpp)
			}
			if w, h := bm.Size(); w != 3 || h != 2 {
				t.Errorf("Size = %dx%d, want 3x2", w, h)
			}
			if err := bm.Readable(); err != nil {
				t.Errorf("Readable: %v", err)
			}
		})
	}
}

func TestFromImageSubImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(2, 3, color.NRGBA{R: 0, G: 0, B: 0, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 9, G: 9, B: 9, A: 255})
	sub := img.SubImage(image.Rect(1, 1, 4, 4))

	bm := FromImage(sub)
	if w, h := bm.Size(); w != 3 || h != 3 {
		t.Fatalf("Size = %dx%d, want 3x3", w, h)
	}
	if r, _, _, a := bm.RGBA(0, 0); r != 9 || a != 255 {
		t.Errorf("RGBA(0,0) = r %d a %d, want r 9 a 255", r, a)
	}
	if r, g, b, a := bm.RGBA(1, 2); r != 0 || g != 0 || b != 0 || a != 255 {
		t.Errorf("RGBA(1,2) = (%d, %d, %d, %d), want opaque black", r, g, b, a)
	}
}

func TestLoadPNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 5, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	img.SetNRGBA(4, 3, color.NRGBA{A: 255})

	path := filepath.Join(t.TempDir(), "sig.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	bm, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if w, h := bm.Size(); w != 5 || h != 4 {
		t.Errorf("Size = %dx%d, want 5x4", w, h)
	}
	if r, g, b, a := bm.RGBA(4, 3); r != 0 || g != 0 || b != 0 || a != 255 {
		t.Errorf("RGBA(4,3) = (%d, %d, %d, %d), want opaque black", r, g, b, a)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
}
