package fingerprint

import (
	"image"
	"image/color"
	"math"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"sig-tracer/internal/parser"
)

func ptr(f float64) *float64 { return &f }

func parsed(t *testing.T) *parser.ParsedImage {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 12, 12))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	ink := color.NRGBA{A: 0xFF}
	for x := 0; x <= 10; x++ {
		img.SetNRGBA(x, 2, ink)
	}
	img.SetNRGBA(9, 9, ink)

	p, err := parser.ParseImage(img, parser.DefaultOptions())
	if err != nil {
		t.Fatalf("ParseImage: %v", err)
	}
	return p
}

func TestNew(t *testing.T) {
	f := New(parsed(t))

	if f.Version != CurrentVersion || f.Width != 12 || f.Height != 12 {
		t.Errorf("header = v%d %dx%d", f.Version, f.Width, f.Height)
	}
	if len(f.Vectors) != 2 {
		t.Fatalf("got %d vectors, want 2", len(f.Vectors))
	}

	line := f.Vectors[0]
	if line.Angle == nil || *line.Angle != 90 {
		t.Errorf("line angle = %v, want 90", line.Angle)
	}
	if len(line.Path) != 11 || line.Path[0] != [2]int{0, 2} {
		t.Errorf("line path = %v", line.Path)
	}
	if math.Abs(line.Straightness-1) > 1e-9 {
		t.Errorf("line straightness = %v, want 1", line.Straightness)
	}

	dot := f.Vectors[1]
	if dot.Angle != nil || !dot.Isolated || dot.Quadrant != 3 {
		t.Errorf("lone pixel = %+v", dot)
	}

	if f.Summary.Vectors != 2 || f.Summary.Isolated != 1 || f.Summary.Pixels != 12 {
		t.Errorf("Summary = %+v", f.Summary)
	}
}

func TestSaveLoad(t *testing.T) {
	for _, name := range []string{"sig.json", "sig.yaml"} {
		t.Run(name, func(t *testing.T) {
			f := New(parsed(t))
			f.Created = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
			path := filepath.Join(t.TempDir(), name)

			if err := f.Save(path); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}

			if !got.Created.Equal(f.Created) {
				t.Errorf("Created = %v, want %v", got.Created, f.Created)
			}
			got.Created = f.Created
			if !reflect.DeepEqual(got, f) {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, f)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestSummarize(t *testing.T) {
	vectors := []Vector{
		{Path: make([][2]int, 5), Angle: ptr(10), Quadrant: 0},
		{Path: make([][2]int, 3), Angle: ptr(30), Quadrant: 0},
		{Path: make([][2]int, 1), Quadrant: 0, Isolated: true},
		{Path: make([][2]int, 4), Angle: ptr(1), Quadrant: 2},
		{Path: make([][2]int, 2), Angle: ptr(179), Quadrant: 2},
	}

	s := Summarize(vectors)

	if s.Vectors != 5 || s.Isolated != 1 || s.Pixels != 15 {
		t.Errorf("totals = %+v", s)
	}
	if len(s.Quadrants) != 4 || s.Quadrants[1].Quadrant != "TopRight" {
		t.Fatalf("quadrants = %+v", s.Quadrants)
	}

	tl := s.Quadrants[0]
	if tl.Vectors != 3 || tl.Isolated != 1 || tl.Longest != 5 || tl.Pixels != 9 {
		t.Errorf("top left = %+v", tl)
	}
	if tl.MeanAngle != 20 {
		t.Errorf("top left mean = %v, want 20", tl.MeanAngle)
	}
	if math.Abs(tl.AngleStdDev-math.Sqrt(200)) > 1e-9 {
		t.Errorf("top left stddev = %v, want %v", tl.AngleStdDev, math.Sqrt(200))
	}
	if math.Abs(tl.AxialMeanAngle-20) > 1e-9 {
		t.Errorf("top left axial mean = %v, want 20", tl.AxialMeanAngle)
	}

	bl := s.Quadrants[2]
	if bl.MeanAngle != 90 {
		t.Errorf("bottom left mean = %v, want 90", bl.MeanAngle)
	}
	if d := math.Min(bl.AxialMeanAngle, 180-bl.AxialMeanAngle); d > 1e-9 {
		t.Errorf("bottom left axial mean = %v, want 0", bl.AxialMeanAngle)
	}

	empty := s.Quadrants[3]
	if empty.Vectors != 0 || empty.MeanAngle != 0 || empty.Longest != 0 {
		t.Errorf("empty quadrant = %+v", empty)
	}
}

func TestSummarizeSingleAngle(t *testing.T) {
	s := Summarize([]Vector{{Path: make([][2]int, 2), Angle: ptr(90), Quadrant: 1}})
	q := s.Quadrants[1]
	if q.AngleStdDev != 0 {
		t.Errorf("stddev of one angle = %v, want 0", q.AngleStdDev)
	}
	if math.Abs(q.AxialMeanAngle-90) > 1e-9 {
		t.Errorf("axial mean = %v, want 90", q.AxialMeanAngle)
	}
}

func TestStraightness(t *testing.T) {
	tests := []struct {
		name string
		path [][2]int
		want float64
	}{
		{"lone pixel", [][2]int{{3, 3}}, 0},
		{"pair", [][2]int{{0, 0}, {1, 0}}, 1},
		{"diagonal", [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}, 1},
		{"square corners", [][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Straightness(tt.path); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Straightness = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSourcePaths(t *testing.T) {
	var f File
	f.SetSource("/data/out/sig.json", "/data/in/sig.png")
	if f.Source != "../in/sig.png" {
		t.Errorf("Source = %q", f.Source)
	}
	if got := f.SourcePath("/data/out/sig.json"); got != "/data/in/sig.png" {
		t.Errorf("SourcePath = %q", got)
	}

	if got := PathFor("/out", "/scans/alice.v2.png", FormatYAML); got != "/out/alice.v2.yaml" {
		t.Errorf("PathFor = %q", got)
	}
	if FormatFor("a.YML") != FormatYAML || FormatFor("a.txt") != FormatJSON {
		t.Error("FormatFor picked the wrong format")
	}
}
