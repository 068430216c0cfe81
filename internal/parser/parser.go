// Package parser turns a decoded signature bitmap into its vector
// fingerprint. A parse runs four phases over a pixel grid it owns:
// binarization, neighbor linking, thinning and tracing with quadrant
// mapping.
package parser

import (
	"image"
	"log/slog"
	"time"

	"sig-tracer/internal/grid"
	pimage "sig-tracer/internal/image"
	"sig-tracer/internal/skeleton"
	"sig-tracer/internal/trace"
)

// Phase names one stage of a parse.
type Phase int

const (
	Phase1 Phase = iota + 1 // binarized
	Phase2                  // neighbor graph built
	Phase3                  // thinned
	Phase4                  // traced
)

// Phases lists the stages in execution order.
var Phases = [4]Phase{Phase1, Phase2, Phase3, Phase4}

func (p Phase) String() string {
	switch p {
	case Phase1:
		return "phase1"
	case Phase2:
		return "phase2"
	case Phase3:
		return "phase3"
	case Phase4:
		return "phase4"
	default:
		return "unknown"
	}
}

// Title is a human readable label for debug output.
func (p Phase) Title() string {
	switch p {
	case Phase1:
		return "Black White Image"
	case Phase2:
		return "Neighbor Graph"
	case Phase3:
		return "Thinned Image"
	case Phase4:
		return "Processed Image"
	default:
		return "Unknown"
	}
}

// Options configures a parse.
type Options struct {
	// CaptureDebugSnapshots stores a raster of the grid after every phase
	// in ParsedImage.Snapshots. Phases 3 and 4 show debug colors.
	CaptureDebugSnapshots bool
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{}
}

// Stats are pixel level counters collected during a parse.
type Stats struct {
	InkPixels      int // active pixels after binarization
	SkeletonPixels int // active pixels after thinning
	Strokes        int // 8-connected ink components before thinning
	Thin           skeleton.Result
}

// ParsedImage is the fingerprint of one bitmap.
type ParsedImage struct {
	Width   int
	Height  int
	Vectors []*trace.Vector // ordered by quadrant, then discovery

	// Snapshots holds packed 0xRRGGBBAA rows per phase. It is nil unless
	// Options.CaptureDebugSnapshots was set.
	Snapshots map[Phase][][]uint32
	Timings   map[Phase]time.Duration
	Stats     Stats
}

// Snapshot renders one captured phase as an RGBA image, or returns nil if
// the phase was not captured.
func (p *ParsedImage) Snapshot(phase Phase) *image.RGBA {
	rows, ok := p.Snapshots[phase]
	if !ok {
		return nil
	}
	return grid.RasterImage(rows)
}

// Total returns the summed phase durations.
func (p *ParsedImage) Total() time.Duration {
	var d time.Duration
	for _, t := range p.Timings {
		d += t
	}
	return d
}

// Parse runs the full pipeline over bm. Input problems are reported as a
// *ParseError before any grid is allocated. Parse is safe to call from
// multiple goroutines; every call owns its own grid.
func Parse(bm *pimage.Bitmap, opts Options) (*ParsedImage, error) {
	if err := bm.Readable(); err != nil {
		Logger().Warn("rejecting image", "reason", reasonUnreadable, "err", err)
		return nil, &ParseError{Kind: UnableToParseImage, Reason: reasonUnreadable, Err: err}
	}
	if bm.Model != pimage.ModelRGB && bm.Model != pimage.ModelMonochrome {
		Logger().Warn("rejecting image", "reason", reasonBadModel, "model", bm.Model)
		return nil, &ParseError{Kind: InvalidImageSupplied, Reason: reasonBadModel}
	}

	r := &run{
		opts: opts,
		out: &ParsedImage{
			Width:   bm.Width,
			Height:  bm.Height,
			Timings: make(map[Phase]time.Duration, len(Phases)),
		},
	}
	if opts.CaptureDebugSnapshots {
		r.out.Snapshots = make(map[Phase][][]uint32, len(Phases))
	}

	var g *grid.Grid
	r.phase(Phase1, func() {
		g = grid.Binarize(bm)
		r.out.Stats.InkPixels = len(g.Active())
	}, func() [][]uint32 { return g.Raster() })

	r.phase(Phase2, func() {
		grid.Link(g)
		r.out.Stats.Strokes = skeleton.Components(g)
	}, func() [][]uint32 { return g.Raster() })

	r.phase(Phase3, func() {
		r.out.Stats.Thin = skeleton.Thin(g)
		r.out.Stats.SkeletonPixels = len(g.Active())
	}, func() [][]uint32 { return g.Overlay() })

	r.phase(Phase4, func() {
		vectors := trace.Trace(g)
		r.out.Vectors = trace.MapQuadrants(vectors, g.Width, g.Height)
		if opts.CaptureDebugSnapshots {
			trace.Paint(g, r.out.Vectors)
		}
	}, func() [][]uint32 { return g.Overlay() })

	Logger().Debug("parsed image",
		slog.Int("width", bm.Width),
		slog.Int("height", bm.Height),
		slog.Int("ink", r.out.Stats.InkPixels),
		slog.Int("skeleton", r.out.Stats.SkeletonPixels),
		slog.Int("vectors", len(r.out.Vectors)),
		slog.Duration("total", r.out.Total()),
	)
	return r.out, nil
}

// run carries one parse through its phases.
type run struct {
	opts Options
	out  *ParsedImage
}

// phase times fn, then captures a snapshot before the next phase can
// change the grid.
func (r *run) phase(p Phase, fn func(), snapshot func() [][]uint32) {
	start := time.Now()
	fn()
	elapsed := time.Since(start)
	r.out.Timings[p] = elapsed
	Logger().Debug("phase complete", slog.String("phase", p.String()), slog.Duration("elapsed", elapsed))

	if r.opts.CaptureDebugSnapshots {
		r.out.Snapshots[p] = snapshot()
	}
}

// ParseImage wraps img with image.FromImage and parses it.
func ParseImage(img image.Image, opts Options) (*ParsedImage, error) {
	return Parse(pimage.FromImage(img), opts)
}
