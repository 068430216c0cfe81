package parser

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	pimage "sig-tracer/internal/image"
	"sig-tracer/pkg/geometry"
)

func whiteImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	return img
}

func TestParseAllWhite(t *testing.T) {
	got, err := ParseImage(whiteImage(10, 10), DefaultOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got.Vectors) != 0 {
		t.Errorf("got %d vectors, want 0", len(got.Vectors))
	}
	if got.Stats.InkPixels != 0 {
		t.Errorf("InkPixels = %d, want 0", got.Stats.InkPixels)
	}
	if got.Snapshots != nil {
		t.Error("snapshots captured without the option")
	}
	if len(got.Timings) != len(Phases) {
		t.Errorf("timed %d phases, want %d", len(got.Timings), len(Phases))
	}
}

func TestParseDiagonal(t *testing.T) {
	img := whiteImage(10, 10)
	for i := 0; i < 10; i++ {
		img.SetNRGBA(i, i, color.NRGBA{A: 0xFF})
	}

	got, err := ParseImage(img, DefaultOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got.Vectors) != 1 {
		t.Fatalf("got %d vectors, want 1", len(got.Vectors))
	}
	v := got.Vectors[0]
	if v.Len() != 10 {
		t.Errorf("vector spans %d pixels, want 10", v.Len())
	}
	if v.Start() != (image.Point{0, 0}) || v.End() != (image.Point{9, 9}) {
		t.Errorf("vector runs %v..%v", v.Start(), v.End())
	}
	if math.Abs(v.Angle()-45) > 1e-9 {
		t.Errorf("angle = %v, want 45", v.Angle())
	}
	if v.Quadrant != geometry.TopLeft || !v.Processed {
		t.Errorf("quadrant = %v processed = %v", v.Quadrant, v.Processed)
	}
	if got.Stats.Strokes != 1 || got.Stats.SkeletonPixels != 10 {
		t.Errorf("Stats = %+v", got.Stats)
	}
}

func TestParseMonochrome(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 12, 12))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	for x := 0; x <= 10; x++ {
		img.SetGray(x, 5, color.Gray{})
	}

	got, err := ParseImage(img, DefaultOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got.Vectors) != 1 || got.Vectors[0].Angle() != 90 {
		t.Fatalf("want one horizontal vector, got %d", len(got.Vectors))
	}
}

func TestParseThickStroke(t *testing.T) {
	img := whiteImage(12, 12)
	for y := 4; y <= 6; y++ {
		for x := 1; x <= 10; x++ {
			img.SetNRGBA(x, y, color.NRGBA{A: 0xFF})
		}
	}

	got, err := ParseImage(img, DefaultOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got.Vectors) != 1 {
		t.Fatalf("got %d vectors, want 1", len(got.Vectors))
	}
	v := got.Vectors[0]
	if v.Start() != (image.Point{2, 5}) || v.End() != (image.Point{9, 5}) || v.Angle() != 90 {
		t.Errorf("vector %v..%v angle %v", v.Start(), v.End(), v.Angle())
	}
	if got.Stats.InkPixels != 30 || got.Stats.SkeletonPixels != 8 || got.Stats.Thin.Deleted != 22 {
		t.Errorf("Stats = %+v", got.Stats)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		bm   *pimage.Bitmap
		want error
	}{
		{
			name: "cmyk",
			bm:   pimage.FromImage(image.NewCMYK(image.Rect(0, 0, 10, 10))),
			want: ErrInvalidImageSupplied,
		},
		{
			name: "indexed",
			bm: &pimage.Bitmap{Width: 2, Height: 2, Stride: 2, BytesPerPixel: 1,
				Data: make([]byte, 4), Model: pimage.ModelIndexed},
			want: ErrInvalidImageSupplied,
		},
		{
			name: "short buffer",
			bm: &pimage.Bitmap{Width: 10, Height: 10, Stride: 40, BytesPerPixel: 4,
				Data: make([]byte, 100), Model: pimage.ModelRGB},
			want: ErrUnableToParseImage,
		},
		{
			name: "dimensions overflow",
			bm: &pimage.Bitmap{Width: math.MaxInt / 2, Height: math.MaxInt / 2, Stride: math.MaxInt/2 + 1, BytesPerPixel: 4,
				Data: make([]byte, 64), Model: pimage.ModelRGB},
			want: ErrUnableToParseImage,
		},
		{
			name: "no data",
			bm:   &pimage.Bitmap{Width: 1, Height: 1, Stride: 4, BytesPerPixel: 4, Model: pimage.ModelRGB},
			want: ErrUnableToParseImage,
		},
		{
			name: "nil bitmap",
			bm:   nil,
			want: ErrUnableToParseImage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.bm, Options{CaptureDebugSnapshots: true})
			if got != nil {
				t.Errorf("Parse returned a result alongside the error")
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var pe *ParseError
			if !errors.As(err, &pe) || pe.Reason == "" {
				t.Errorf("err %v carries no reason", err)
			}
		})
	}
}

func TestParseErrorKindsDiffer(t *testing.T) {
	_, err := Parse(pimage.FromImage(image.NewCMYK(image.Rect(0, 0, 1, 1))), DefaultOptions())
	if errors.Is(err, ErrUnableToParseImage) {
		t.Errorf("%v matched the wrong kind", err)
	}
	if err.Error() != "InvalidImageSupplied: "+reasonBadModel {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestParseSnapshots(t *testing.T) {
	img := whiteImage(6, 6)
	for y := 2; y <= 3; y++ {
		for x := 2; x <= 3; x++ {
			img.SetNRGBA(x, y, color.NRGBA{A: 0xFF})
		}
	}

	got, err := ParseImage(img, Options{CaptureDebugSnapshots: true})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for _, p := range Phases {
		rows, ok := got.Snapshots[p]
		if !ok {
			t.Fatalf("missing snapshot %v", p)
		}
		if len(rows) != 6 || len(rows[0]) != 6 {
			t.Errorf("%v snapshot is %dx%d", p, len(rows[0]), len(rows))
		}
		if got.Snapshot(p) == nil {
			t.Errorf("Snapshot(%v) = nil", p)
		}
	}

	const black, white, red, purple = 0x000000FF, 0xFFFFFFFF, 0xFF0000FF, 0x6A0DADFF
	if v := got.Snapshots[Phase1][2][2]; v != black {
		t.Errorf("phase1 ink = %#08x", v)
	}
	if v := got.Snapshots[Phase1][0][0]; v != white {
		t.Errorf("phase1 paper = %#08x", v)
	}
	// The 2x2 square thins to (3,2); the other three pixels are deleted.
	if v := got.Snapshots[Phase3][2][2]; v != red {
		t.Errorf("phase3 deleted pixel = %#08x, want red", v)
	}
	if v := got.Snapshots[Phase3][2][3]; v != black {
		t.Errorf("phase3 kept pixel = %#08x, want black", v)
	}
	if v := got.Snapshots[Phase4][2][3]; v != purple {
		t.Errorf("phase4 lone pixel = %#08x, want purple", v)
	}
	// Phase 1 is captured before thinning changes the grid.
	if v := got.Snapshots[Phase1][3][3]; v != black {
		t.Errorf("phase1 snapshot changed by a later phase: %#08x", v)
	}

	if len(got.Vectors) != 1 || !got.Vectors[0].Isolated {
		t.Errorf("want a single isolated vector, got %d", len(got.Vectors))
	}
	if got.Snapshot(Phase(9)) != nil {
		t.Error("Snapshot of an unknown phase should be nil")
	}
}

func TestPhaseTitles(t *testing.T) {
	want := []string{"Black White Image", "Neighbor Graph", "Thinned Image", "Processed Image"}
	for i, p := range Phases {
		if p.Title() != want[i] {
			t.Errorf("%v title = %q, want %q", p, p.Title(), want[i])
		}
	}
}
