package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"sig-tracer/internal/config"
	"sig-tracer/internal/fingerprint"
	pimage "sig-tracer/internal/image"
	"sig-tracer/internal/parser"
	"sig-tracer/internal/render"
)

// result is the outcome of one image.
type result struct {
	Path    string
	Output  string
	Width   int
	Height  int
	Summary fingerprint.Summary
	Elapsed time.Duration
	Err     error
}

// processFile loads, parses and saves the fingerprint of one image, plus
// the diagnostic PNGs cfg asks for.
func processFile(cfg config.Config, path string) result {
	r := result{Path: path}

	bm, err := pimage.Load(path)
	if err != nil {
		r.Err = err
		return r
	}

	parsed, err := parser.Parse(bm, parser.Options{CaptureDebugSnapshots: cfg.CaptureDebugSnapshots})
	if err != nil {
		r.Err = err
		return r
	}
	r.Width, r.Height = parsed.Width, parsed.Height
	r.Elapsed = parsed.Total()

	r.Output = fingerprint.PathFor(cfg.OutputDir, path, cfg.Format)
	fp := fingerprint.New(parsed)
	if abs, err := filepath.Abs(path); err == nil {
		fp.SetSource(r.Output, abs)
	} else {
		fp.SetSource(r.Output, path)
	}
	if err := fp.Save(r.Output); err != nil {
		r.Err = err
		return r
	}
	r.Summary = fp.Summary

	base := strings.TrimSuffix(r.Output, filepath.Ext(r.Output))
	if cfg.CaptureDebugSnapshots {
		for _, phase := range parser.Phases {
			name := fmt.Sprintf("%s_%s.png", base, phase)
			if err := render.SaveRaster(name, parsed.Snapshots[phase]); err != nil {
				r.Err = err
				return r
			}
		}
	}
	if cfg.Overlay {
		opts := render.DefaultOverlayOptions()
		opts.Scale = cfg.OverlayScale
		if err := render.SaveOverlay(base+"_overlay.png", parsed.Width, parsed.Height, parsed.Vectors, opts); err != nil {
			r.Err = err
			return r
		}
	}
	return r
}
