// Command sig-tracer turns signature images into vector fingerprints.
//
// Usage:
//
//	sig-tracer [flags] image...
//
// Each image is parsed independently; images are processed concurrently up
// to -workers at a time. One fingerprint file per image is written to the
// output directory, optionally with phase snapshots and a vector overlay.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"sig-tracer/internal/config"
	"sig-tracer/internal/fingerprint"
	"sig-tracer/internal/parser"
	"sig-tracer/internal/version"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	configPath := flag.String("config", "", "YAML config file")
	outDir := flag.String("out", "", "Output directory (default from config: out)")
	format := flag.String("format", "", "Fingerprint format: json or yaml")
	snapshots := flag.Bool("snapshots", false, "Write a PNG of every parse phase")
	overlay := flag.Bool("overlay", false, "Write a PNG overlay of the traced vectors")
	scale := flag.Int("scale", 0, "Overlay pixels per image pixel")
	workers := flag.Int("workers", 0, "Images parsed in parallel (default: number of CPUs)")
	verbose := flag.Bool("v", false, "Log parse phases")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: sig-tracer [flags] image...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.OutputDir = *outDir
		case "format":
			cfg.Format = fingerprint.Format(*format)
		case "snapshots":
			cfg.CaptureDebugSnapshots = *snapshots
		case "overlay":
			cfg.Overlay = *overlay
		case "scale":
			cfg.OverlayScale = *scale
		case "workers":
			cfg.Workers = *workers
		case "v":
			cfg.Verbose = *verbose
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	if cfg.Verbose {
		parser.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	results := processAll(cfg, flag.Args())
	fmt.Println(renderReport(results))

	for _, r := range results {
		if r.Err != nil {
			os.Exit(1)
		}
	}
}

// processAll parses every path, at most cfg.Workers at a time. A failing
// image does not stop the others.
func processAll(cfg config.Config, paths []string) []result {
	results := make([]result, len(paths))

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = processFile(cfg, path)
			if results[i].Err != nil {
				log.Printf("%s: %v", path, results[i].Err)
			}
			return nil
		})
	}
	_ = g.Wait()
	return results
}
